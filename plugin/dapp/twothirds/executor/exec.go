// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	tt "github.com/33cn/twothirds/plugin/dapp/twothirds/types"
	"github.com/33cn/twothirds/types"
)

// Exec_Deploy 创建游戏
func (t *TwoThirds) Exec_Deploy(payload *tt.TwoThirdsDeploy, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(t, tx, index)
	return action.Deploy(payload)
}

// Exec_Join 押注
func (t *TwoThirds) Exec_Join(payload *tt.TwoThirdsJoin, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(t, tx, index)
	return action.Join(payload)
}

// Exec_Expire 超时退款
func (t *TwoThirds) Exec_Expire(payload *tt.TwoThirdsExpire, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(t, tx, index)
	return action.Expire(payload)
}
