// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"

	drivers "github.com/33cn/twothirds/system/dapp"
	"github.com/33cn/twothirds/types"
)

// 执行器 -> db 环境
type executor struct {
	stateDB   *StateDB
	height    int64
	blocktime int64
}

func newExecutor(stateDB *StateDB, height, blocktime int64) *executor {
	return &executor{
		stateDB:   stateDB,
		height:    height,
		blocktime: blocktime,
	}
}

func (e *executor) checkTx(tx *types.Transaction, index int) error {
	if err := tx.Check(e.height); err != nil {
		return err
	}
	exec, err := e.loadDriver(tx)
	if err != nil {
		return err
	}
	return exec.CheckTx(tx, index)
}

func (e *executor) loadDriver(tx *types.Transaction) (drivers.Driver, error) {
	exec, err := drivers.LoadDriver(string(tx.Execer), e.height)
	if err != nil {
		return nil, err
	}
	exec.SetStateDB(e.stateDB)
	exec.SetEnv(e.height, e.blocktime)
	return exec, nil
}

func (e *executor) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	exec, err := e.loadDriver(tx)
	if err != nil {
		return nil, err
	}
	//第一步先检查 CheckTx
	if err := exec.CheckTx(tx, index); err != nil {
		return nil, err
	}
	return exec.Exec(tx, index)
}

func (e *executor) execTxOne(tx *types.Transaction, index int) (*types.Receipt, error) {
	receipt, err := e.Exec(tx, index)
	if err != nil {
		elog.Error("exec tx error = ", "err", err, "exec", string(tx.Execer), "action", tx.ActionName())
		return nil, err
	}
	if receipt == nil {
		receipt = &types.Receipt{}
	}
	//需要检查两个东西:
	//1. statedb 中 Set的 key 必须是 在 receipt.KV 这个集合中
	//2. receipt.KV 中的 key, 必须符合权限控制要求
	if err := e.checkKV(e.stateDB.GetSetKeys(), receipt.KV); err != nil {
		return nil, err
	}
	if err := e.checkKeyAllow(tx, receipt.KV); err != nil {
		return nil, err
	}
	receipt.Ty = types.ExecOk
	for _, kv := range receipt.KV {
		if err := e.stateDB.Set(kv.Key, kv.Value); err != nil {
			panic(err)
		}
	}
	return receipt, nil
}

func (e *executor) checkKV(memset []string, kvs []*types.KeyValue) error {
	keys := make(map[string]bool)
	for _, kv := range kvs {
		keys[string(kv.Key)] = true
	}
	for _, key := range memset {
		if _, ok := keys[key]; !ok {
			elog.Error("err memset key", "key", key)
			//非法的receipt，交易执行失败
			return types.ErrNotAllowMemSetKey
		}
	}
	return nil
}

// 执行器只能写自己的状态以及 coins 账户
func (e *executor) checkKeyAllow(tx *types.Transaction, kvs []*types.KeyValue) error {
	own := CalcStatePrefix(tx.Execer)
	coins := CalcStatePrefix([]byte(types.CoinsX))
	for _, kv := range kvs {
		if bytes.HasPrefix(kv.Key, own) || bytes.HasPrefix(kv.Key, coins) {
			continue
		}
		elog.Error("err receipt key", "key", string(kv.Key), "tx.exec", string(tx.Execer),
			"tx.action", tx.ActionName())
		return types.ErrNotAllowKey
	}
	return nil
}

func (e *executor) begin() {
	e.stateDB.Begin()
}

func (e *executor) commit() {
	e.stateDB.Commit()
}

func (e *executor) rollback() {
	e.stateDB.Rollback()
}

// execTx 返回 error 表示交易不合法, 不进入账本
// 执行失败的交易返回 ExecErr 级别的 receipt, 状态全部回滚
func (e *executor) execTx(tx *types.Transaction, index int) (*types.Receipt, error) {
	if err := e.checkTx(tx, index); err != nil {
		return nil, err
	}
	e.begin()
	receipt, err := e.execTxOne(tx, index)
	if err != nil {
		e.rollback()
		elog.Debug("exec tx = ", "index", index, "execer", string(tx.Execer), "err", err)
		return types.NewErrReceipt(err), nil
	}
	e.commit()
	elog.Debug("exec tx = ", "index", index, "execer", string(tx.Execer), "kv", len(receipt.KV))
	return receipt, nil
}

// CalcStatePrefix 执行器的状态前缀
func CalcStatePrefix(execer []byte) []byte {
	s := []byte("mavl-")
	s = append(s, execer...)
	s = append(s, '-')
	return s
}
