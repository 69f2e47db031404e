// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Account 账户, Locked 的账户拒绝一切转入
type Account struct {
	Balance int64  `json:"balance"`
	Frozen  int64  `json:"frozen"`
	Addr    string `json:"addr"`
	Locked  bool   `json:"locked,omitempty"`
}

// Clone 复制
func (acc *Account) Clone() *Account {
	if acc == nil {
		return nil
	}
	copyacc := *acc
	return &copyacc
}

// ReceiptAccountTransfer 账户变化前后的状态
type ReceiptAccountTransfer struct {
	Prev    *Account `json:"prev"`
	Current *Account `json:"current"`
}

// ReceiptExecAccountTransfer 执行器账户变化
type ReceiptExecAccountTransfer struct {
	ExecAddr string   `json:"execAddr"`
	Prev     *Account `json:"prev"`
	Current  *Account `json:"current"`
}

// ReqBalance 查询余额
type ReqBalance struct {
	Addresses []string `json:"addresses"`
}

// ReqAddr 地址参数
type ReqAddr struct {
	Addr string `json:"addr"`
}

// GenesisAlloc 创世分配, Amount 以 coin 为单位
type GenesisAlloc struct {
	Addr   string `toml:"addr" json:"addr"`
	Amount int64  `toml:"amount" json:"amount"`
}
