// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 串行执行交易, 每笔交易在 StateDB 的事务里执行, 失败整体回滚
package executor

import (
	"github.com/33cn/twothirds/account"
	dbm "github.com/33cn/twothirds/common/db"
	log "github.com/33cn/twothirds/common/log"
	"github.com/33cn/twothirds/pluginmgr"
	drivers "github.com/33cn/twothirds/system/dapp"
	"github.com/33cn/twothirds/types"
)

var elog = log.New("module", "execs")

// Executor 交易执行器, 不是并发安全的, 由 blockchain 的单个协程调用
type Executor struct {
	store   dbm.KV
	stateDB *StateDB
}

// New 创建执行器并初始化所有插件的执行器驱动
func New(store dbm.KV, sub *types.ConfigSubModule) *Executor {
	var subcfg map[string][]byte
	if sub != nil {
		subcfg = sub.Exec
	}
	pluginmgr.InitExec(subcfg)
	return &Executor{
		store:   store,
		stateDB: NewStateDB(store),
	}
}

// CheckTx 交易进入队列之前的检查, 不修改状态
func (exec *Executor) CheckTx(tx *types.Transaction, height int64) error {
	e := newExecutor(NewStateDB(exec.store), height, 0)
	return e.checkTx(tx, 0)
}

// ExecTx 执行一笔交易
// 返回 error 表示交易不合法, 不进入账本; 执行失败的交易返回 Ty = ExecErr 的 receipt
// 执行成功的 kv 留在 StateDB 中, 调用者写入存储后调用 Reset
func (exec *Executor) ExecTx(tx *types.Transaction, index int, height, blocktime int64) (*types.Receipt, error) {
	e := newExecutor(exec.stateDB, height, blocktime)
	return e.execTx(tx, index)
}

// Genesis 高度 0 的初始分配, amount 单位为 coin
func (exec *Executor) Genesis(allocs []*types.GenesisAlloc) (*types.Receipt, error) {
	exec.stateDB.Begin()
	acc := account.NewCoinsAccount(exec.stateDB)
	receipt := &types.Receipt{Ty: types.ExecOk}
	for _, alloc := range allocs {
		r, err := acc.GenesisInit(alloc.Addr, alloc.Amount*types.Coin)
		if err != nil {
			exec.stateDB.Rollback()
			elog.Error("Genesis", "addr", alloc.Addr, "amount", alloc.Amount, "err", err)
			return nil, err
		}
		receipt = types.MergeReceipt(receipt, r)
	}
	exec.stateDB.Commit()
	return receipt, nil
}

// PendingKVs 执行成功但还没有写入存储的 kv
func (exec *Executor) PendingKVs() []*types.KeyValue {
	return exec.stateDB.KVs()
}

// Reset kv 已经写入存储
func (exec *Executor) Reset() {
	exec.stateDB.Reset()
}

// Query 在已提交的状态上查询
func (exec *Executor) Query(driver string, funcName string, params []byte, height int64) (interface{}, error) {
	d, err := drivers.LoadDriver(driver, height)
	if err != nil {
		return nil, err
	}
	d.SetStateDB(NewStateDB(exec.store))
	d.SetEnv(height, 0)
	return d.Query(funcName, params)
}
