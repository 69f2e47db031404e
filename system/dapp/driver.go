// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器驱动的接口与基础实现
package dapp

import (
	"reflect"

	"github.com/33cn/twothirds/account"
	dbm "github.com/33cn/twothirds/common/db"
	log "github.com/33cn/twothirds/common/log"
	"github.com/33cn/twothirds/types"
)

var blog = log.New("module", "execs.base")

// Driver 执行器驱动
type Driver interface {
	SetStateDB(dbm.KV)
	GetCoinsAccount() *account.DB
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	GetName() string
	GetActionName(tx *types.Transaction) string
	SetEnv(height, blocktime int64)
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	Query(funcName string, params []byte) (interface{}, error)
	GetExecutorType() types.ExecutorType
}

// DriverBase 执行器的通用实现
// Exec 按 action 名称调用子类的 Exec_<Action>, Query 调用 Query_<FuncName>
type DriverBase struct {
	statedb      dbm.KV
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	child        Driver
	childValue   reflect.Value
	ety          types.ExecutorType
}

// SetEnv 设置执行高度与时间
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

// SetExecutorType 设置执行器类型
func (d *DriverBase) SetExecutorType(e types.ExecutorType) {
	d.ety = e
}

// GetExecutorType 执行器类型
func (d *DriverBase) GetExecutorType() types.ExecutorType {
	return d.ety
}

// SetChild 设置子类
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
}

// Exec 调用子类的 Exec_<Action>(action, tx, index)
func (d *DriverBase) Exec(tx *types.Transaction, index int) (receipt *types.Receipt, err error) {
	if d.ety == nil {
		return nil, types.ErrActionNotSupport
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call exec error", "tx.exec", string(tx.Execer), "info", r)
			err = types.ErrActionNotSupport
			receipt = nil
		}
	}()
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	method := d.childValue.MethodByName("Exec_" + name)
	if !method.IsValid() {
		return nil, types.ErrActionNotSupport
	}
	valueret := method.Call([]reflect.Value{value, reflect.ValueOf(tx), reflect.ValueOf(index)})
	return receiptResult(valueret)
}

func receiptResult(valueret []reflect.Value) (*types.Receipt, error) {
	if len(valueret) != 2 {
		return nil, types.ErrActionNotSupport
	}
	var receipt *types.Receipt
	if r1 := valueret[0].Interface(); r1 != nil {
		r, ok := r1.(*types.Receipt)
		if !ok {
			return nil, types.ErrActionNotSupport
		}
		receipt = r
	}
	if r2 := valueret[1].Interface(); r2 != nil {
		if err, ok := r2.(error); ok {
			return nil, err
		}
		return nil, types.ErrActionNotSupport
	}
	return receipt, nil
}

// Query 调用子类的 Query_<funcName>(req), params 为 req 的 json
func (d *DriverBase) Query(funcname string, params []byte) (interface{}, error) {
	method := d.childValue.MethodByName("Query_" + funcname)
	if !method.IsValid() {
		return nil, types.ErrQueryNotSupport
	}
	mtype := method.Type()
	if mtype.NumIn() != 1 || mtype.NumOut() != 2 || mtype.In(0).Kind() != reflect.Ptr {
		return nil, types.ErrQueryNotSupport
	}
	arg := reflect.New(mtype.In(0).Elem())
	if len(params) > 0 {
		if err := types.Decode(params, arg.Interface()); err != nil {
			return nil, err
		}
	}
	valueret := method.Call([]reflect.Value{arg})
	if r2 := valueret[1].Interface(); r2 != nil {
		if err, ok := r2.(error); ok {
			return nil, err
		}
		return nil, types.ErrQueryNotSupport
	}
	return valueret[0].Interface(), nil
}

// CheckTx 默认情况下，tx.To 地址指向合约地址
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	execer := string(tx.Execer)
	if ExecAddress(execer) != tx.To {
		return types.ErrToAddrNotSameToExecAddr
	}
	return nil
}

// SetStateDB 设置状态数据库
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
	d.coinsaccount = account.NewCoinsAccount(db)
}

// GetStateDB 状态数据库
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// GetHeight 执行高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime 执行时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// GetName 执行器名称
func (d *DriverBase) GetName() string {
	return d.child.GetDriverName()
}

// GetAddr 执行器地址
func (d *DriverBase) GetAddr() string {
	return ExecAddress(d.child.GetDriverName())
}

// GetActionName 动作名称
func (d *DriverBase) GetActionName(tx *types.Transaction) string {
	if d.ety == nil {
		return "unknown"
	}
	return d.ety.ActionName(tx)
}

// GetCoinsAccount coins 账户
func (d *DriverBase) GetCoinsAccount() *account.DB {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount(d.statedb)
	}
	return d.coinsaccount
}
