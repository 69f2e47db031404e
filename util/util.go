// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package util 构造交易与测试数据的辅助函数
package util

import (
	"os"
	"os/user"
	"path/filepath"

	"github.com/33cn/twothirds/common"
	"github.com/33cn/twothirds/common/address"
	"github.com/33cn/twothirds/common/crypto"
	dbm "github.com/33cn/twothirds/common/db"
	"github.com/33cn/twothirds/common/log"
	"github.com/33cn/twothirds/types"
)

func secp256k1() crypto.Crypto {
	cr, err := crypto.New(crypto.GetName(types.SECP256K1))
	if err != nil {
		panic(err)
	}
	return cr
}

// HexToPrivkey 测试与工具使用, 格式错误直接 panic
func HexToPrivkey(key string) crypto.PrivKey {
	bkey, err := common.FromHex(key)
	if err != nil {
		panic(err)
	}
	priv, err := secp256k1().PrivKeyFromBytes(bkey)
	if err != nil {
		panic(err)
	}
	return priv
}

// Genaddress 随机生成一个账户, 返回地址和私钥
func Genaddress() (string, crypto.PrivKey) {
	priv, err := secp256k1().GenKey()
	if err != nil {
		panic(err)
	}
	return address.PubKeyToAddr(priv.PubKey().Bytes()), priv
}

// CreateTx 构造并签名交易, param 为 action 参数
func CreateTx(priv crypto.PrivKey, execer, action string, param interface{}) (*types.Transaction, error) {
	exec := types.LoadExecutor(execer)
	if exec == nil {
		return nil, types.ErrUnknowDriver
	}
	tx, err := exec.CreateTx(action, types.Encode(param))
	if err != nil {
		return nil, err
	}
	if priv != nil {
		tx.Sign(types.SECP256K1, priv)
	}
	return tx, nil
}

// CreateCoinsTx : Create Coins Tx
func CreateCoinsTx(priv crypto.PrivKey, to string, amount int64) *types.Transaction {
	tx := CreateCoinsTxUnsigned(to, amount)
	tx.Sign(types.SECP256K1, priv)
	return tx
}

// CreateCoinsTxUnsigned 未签名的转账交易, To 为收款地址
func CreateCoinsTxUnsigned(to string, amount int64) *types.Transaction {
	tx, err := CreateTx(nil, types.CoinsX, "Transfer", map[string]interface{}{"to": to, "amount": amount})
	if err != nil {
		panic(err)
	}
	tx.To = to
	return tx
}

// SaveKVList 把执行产生的 kv 一次写入, value 为 nil 表示删除
func SaveKVList(kvdb dbm.DB, kvs []*types.KeyValue) {
	batch := kvdb.NewBatch(true)
	for _, kv := range kvs {
		if kv.Value == nil {
			batch.Delete(kv.Key)
		} else {
			batch.Set(kv.Key, kv.Value)
		}
	}
	if err := batch.Write(); err != nil {
		panic(err)
	}
}

var ulog = log.New("module", "util")

// ResetDatadir 重写datadir
func ResetDatadir(cfg *types.Config, datadir string) string {
	// Check in case of paths like "/something/~/something/"
	if len(datadir) >= 2 && datadir[:2] == "~/" {
		usr, err := user.Current()
		if err != nil {
			panic(err)
		}
		datadir = filepath.Join(usr.HomeDir, datadir[2:])
	}
	if len(datadir) >= 6 && datadir[:6] == "$TEMP/" {
		dir, err := os.MkdirTemp("", "twothirdsdatadir-")
		if err != nil {
			panic(err)
		}
		datadir = filepath.Join(dir, datadir[6:])
	}
	ulog.Info("current user data dir is ", "dir", datadir)
	cfg.Log.LogFile = filepath.Join(datadir, cfg.Log.LogFile)
	cfg.Store.DbPath = filepath.Join(datadir, cfg.Store.DbPath)
	return datadir
}
