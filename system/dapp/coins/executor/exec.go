// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/twothirds/common/address"
	drivers "github.com/33cn/twothirds/system/dapp"
	cty "github.com/33cn/twothirds/system/dapp/coins/types"
	"github.com/33cn/twothirds/types"
)

// Exec_Transfer 转账, 不允许直接转入执行器地址
func (c *Coins) Exec_Transfer(transfer *cty.CoinsTransfer, tx *types.Transaction, index int) (*types.Receipt, error) {
	if err := address.CheckAddress(transfer.To); err != nil {
		return nil, types.ErrInvalidAddress
	}
	if drivers.IsDriverAddress(transfer.To, c.GetHeight()) {
		return nil, types.ErrToAddrNotSameToExecAddr
	}
	from := tx.From()
	clog.Debug("Exec_Transfer", "from", from, "to", transfer.To, "amount", transfer.Amount)
	return c.GetCoinsAccount().Transfer(from, transfer.To, transfer.Amount)
}

// Exec_Lock 锁定发送者账户
func (c *Coins) Exec_Lock(lock *cty.CoinsLock, tx *types.Transaction, index int) (*types.Receipt, error) {
	return c.GetCoinsAccount().SetLocked(tx.From(), true)
}

// Exec_Unlock 解锁发送者账户
func (c *Coins) Exec_Unlock(unlock *cty.CoinsUnlock, tx *types.Transaction, index int) (*types.Receipt, error) {
	return c.GetCoinsAccount().SetLocked(tx.From(), false)
}
