// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types coins 执行器的交易类型
package types

import (
	"github.com/33cn/twothirds/types"
)

// coins action ty
const (
	CoinsActionTransfer = 1
	CoinsActionLock     = 2
	CoinsActionUnlock   = 3
)

// query func name
const (
	FuncNameBalance = "Balance"
)

var (
	// CoinsX 执行器名称
	CoinsX     = types.CoinsX
	actionName = map[string]int32{
		"Transfer": CoinsActionTransfer,
		"Lock":     CoinsActionLock,
		"Unlock":   CoinsActionUnlock,
	}
)

func init() {
	types.RegistorExecutor(CoinsX, NewType())
}

// CoinsAction coins 交易的 payload
type CoinsAction struct {
	Ty       int32          `json:"ty"`
	Transfer *CoinsTransfer `json:"transfer,omitempty"`
	Lock     *CoinsLock     `json:"lock,omitempty"`
	Unlock   *CoinsUnlock   `json:"unlock,omitempty"`
}

// CoinsTransfer 转账
type CoinsTransfer struct {
	To     string `json:"to"`
	Amount int64  `json:"amount"`
	Note   string `json:"note,omitempty"`
}

// CoinsLock 锁定自己的账户, 锁定后拒绝转入
type CoinsLock struct{}

// CoinsUnlock 解锁自己的账户
type CoinsUnlock struct{}

// CoinsType coins 执行器类型
type CoinsType struct {
	types.ExecTypeBase
}

// NewType new
func NewType() *CoinsType {
	c := &CoinsType{}
	c.SetChild(c)
	return c
}

// GetName 执行器名称
func (coins *CoinsType) GetName() string {
	return CoinsX
}

// GetPayload action 结构
func (coins *CoinsType) GetPayload() interface{} {
	return &CoinsAction{}
}

// GetTypeMap 动作名与 ty
func (coins *CoinsType) GetTypeMap() map[string]int32 {
	return actionName
}
