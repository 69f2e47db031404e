// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
coins 是一个货币的exec。内置货币的执行器。

主要提供的操作：
Transfer -> 转移资产
Lock / Unlock -> 锁定账户拒绝转入 / 解锁
*/

import (
	log "github.com/33cn/twothirds/common/log"
	drivers "github.com/33cn/twothirds/system/dapp"
	cty "github.com/33cn/twothirds/system/dapp/coins/types"
	"github.com/33cn/twothirds/types"
)

var clog = log.New("module", "execs.coins")

var driverName = cty.CoinsX

// Init 注册 coins 执行器
func Init(name string, sub []byte) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	drivers.Register(driverName, newCoins, 0)
}

// GetName 执行器名称
func GetName() string {
	return newCoins().GetName()
}

// Coins 执行器
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	c.SetExecutorType(types.LoadExecutor(driverName))
	return c
}

// GetDriverName 驱动名称
func (c *Coins) GetDriverName() string {
	return driverName
}

// CheckTx coins 交易的 to 为收款地址, 不校验执行器地址
func (c *Coins) CheckTx(tx *types.Transaction, index int) error {
	return nil
}
