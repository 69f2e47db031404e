// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package account 实现 coins 资产的账户操作
*/
package account

//package for account manger
//1. load from db
//2. save to db
//3. KVSet
//4. Transfer
//5. Lock / Unlock
//6. Account balance query

import (
	"fmt"

	"github.com/33cn/twothirds/common/address"
	dbm "github.com/33cn/twothirds/common/db"
	log "github.com/33cn/twothirds/common/log"
	"github.com/33cn/twothirds/types"
)

var alog = log.New("module", "account")

// DB for account
type DB struct {
	db               dbm.KV
	accountKeyPerfix []byte
}

// NewCoinsAccount coins 账户
func NewCoinsAccount(db dbm.KV) *DB {
	return newAccountDB(SymbolPrefix(types.CoinsX, "bty")).SetDB(db)
}

func newAccountDB(prefix string) *DB {
	return &DB{accountKeyPerfix: []byte(prefix)}
}

// SetDB 设置状态数据库
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

// LoadAccount 读取账户, 不存在时返回零余额账户
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return &types.Account{Addr: addr}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return &acc1
}

// LoadAccounts 批量读取
func (acc *DB) LoadAccounts(addrs []string) []*types.Account {
	accs := make([]*types.Account, 0, len(addrs))
	for _, addr := range addrs {
		accs = append(accs, acc.LoadAccount(addr))
	}
	return accs
}

// CheckAmount 金额必须在 (0, MaxCoin]
func CheckAmount(amount int64) bool {
	return amount > 0 && amount <= types.MaxCoin
}

func safeAdd(balance, amount int64) (int64, error) {
	if balance+amount < amount || balance+amount > types.MaxCoin {
		return balance, types.ErrBalanceOverflow
	}
	return balance + amount, nil
}

// CheckTransfer 检查转账是否可以成功, 不修改状态
func (acc *DB) CheckTransfer(from, to string, amount int64) error {
	if !CheckAmount(amount) {
		return types.ErrAmount
	}
	if from == to {
		return types.ErrSendSameToRecv
	}
	accFrom := acc.LoadAccount(from)
	if accFrom.Balance-amount < 0 {
		return types.ErrNoBalance
	}
	accTo := acc.LoadAccount(to)
	if accTo.Locked {
		return types.ErrAccountLocked
	}
	if _, err := safeAdd(accTo.Balance, amount); err != nil {
		return err
	}
	return nil
}

// Transfer 转账, 接收方锁定或余额溢出时失败且不写任何状态
func (acc *DB) Transfer(from, to string, amount int64) (*types.Receipt, error) {
	if err := acc.CheckTransfer(from, to, amount); err != nil {
		alog.Debug("Transfer check", "from", from, "to", to, "amount", amount, "err", err)
		return nil, err
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	copyfrom := *accFrom
	copyto := *accTo

	accFrom.Balance -= amount
	accTo.Balance += amount

	receiptBalanceFrom := &types.ReceiptAccountTransfer{
		Prev:    &copyfrom,
		Current: accFrom,
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}

	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	return acc.transferReceipt(accFrom, accTo, receiptBalanceFrom, receiptBalanceTo), nil
}

func (acc *DB) transferReceipt(accFrom, accTo *types.Account, receiptFrom, receiptTo interface{}) *types.Receipt {
	ty := int32(types.TyLogTransfer)
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptFrom),
	}
	log2 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptTo),
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}

// SetLocked 锁定或解锁账户, 锁定的账户不能接收转账
func (acc *DB) SetLocked(addr string, locked bool) (*types.Receipt, error) {
	if err := address.CheckAddress(addr); err != nil {
		return nil, types.ErrInvalidAddress
	}
	acc1 := acc.LoadAccount(addr)
	copyacc := *acc1
	acc1.Locked = locked
	acc.SaveAccount(acc1)
	log1 := &types.ReceiptLog{
		Ty:  types.TyLogAccountLock,
		Log: types.Encode(&types.ReceiptAccountTransfer{Prev: &copyacc, Current: acc1}),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetKVSet(acc1),
		Logs: []*types.ReceiptLog{log1},
	}, nil
}

// SaveAccount 写入状态数据库
func (acc *DB) SaveAccount(acc1 *types.Account) {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		err := acc.db.Set(set[i].Key, set[i].Value)
		if err != nil {
			panic(err)
		}
	}
}

// GetKVSet 账户对应的 kv
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}

// AccountKey return the key of address in DB
func (acc *DB) AccountKey(address string) (key []byte) {
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

// SymbolPrefix 账户 key 前缀
func SymbolPrefix(execer string, symbol string) string {
	return fmt.Sprintf("mavl-%s-%s-", execer, symbol)
}
