// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
)

// ExecutorType 执行器的类型信息, 交易构造与解析
type ExecutorType interface {
	ActionName(tx *Transaction) string
	CreateTx(action string, message json.RawMessage) (*Transaction, error)
	DecodePayload(tx *Transaction) (interface{}, error)
	DecodePayloadValue(tx *Transaction) (string, reflect.Value, error)
}

// LogType 日志解析
type LogType interface {
	Name() string
	Decode([]byte) (interface{}, error)
}

var executorMap = map[string]ExecutorType{}
var receiptLogMap = map[int32]LogType{}

// RegistorExecutor 注册执行器类型
func RegistorExecutor(exec string, util ExecutorType) {
	if _, exist := executorMap[exec]; exist {
		panic("DupExecutorType " + exec)
	}
	executorMap[exec] = util
}

// LoadExecutor 获取执行器类型
func LoadExecutor(exec string) ExecutorType {
	if e, exist := executorMap[exec]; exist {
		return e
	}
	return nil
}

// ExecutorNames 已注册的执行器
func ExecutorNames() []string {
	names := make([]string, 0, len(executorMap))
	for name := range executorMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegistorLog 注册日志类型
func RegistorLog(logTy int32, util LogType) {
	if _, exist := receiptLogMap[logTy]; exist {
		panic(fmt.Sprintf("DupLogType RegistorLog type existed logTy=%d", logTy))
	}
	receiptLogMap[logTy] = util
}

// LoadLog 获取日志类型
func LoadLog(ty int32) LogType {
	if log, exist := receiptLogMap[ty]; exist {
		return log
	}
	return nil
}

// NewLogType 用 json 解码的日志类型
func NewLogType(name string, newValue func() interface{}) LogType {
	return &jsonLog{name: name, newValue: newValue}
}

type jsonLog struct {
	name     string
	newValue func() interface{}
}

func (l *jsonLog) Name() string {
	return l.name
}

func (l *jsonLog) Decode(msg []byte) (interface{}, error) {
	v := l.newValue()
	if err := Decode(msg, v); err != nil {
		return nil, err
	}
	return v, nil
}

func init() {
	RegistorLog(TyLogErr, NewLogType("LogErr", func() interface{} { return new(string) }))
	RegistorLog(TyLogTransfer, NewLogType("LogTransfer", func() interface{} { return &ReceiptAccountTransfer{} }))
	RegistorLog(TyLogGenesis, NewLogType("LogGenesis", func() interface{} { return &ReceiptAccountTransfer{} }))
	RegistorLog(TyLogDeposit, NewLogType("LogDeposit", func() interface{} { return &ReceiptAccountTransfer{} }))
	RegistorLog(TyLogAccountLock, NewLogType("LogAccountLock", func() interface{} { return &ReceiptAccountTransfer{} }))
}
