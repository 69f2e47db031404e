// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types commands中结构体定义
package types

// AccountResult defines account result command
type AccountResult struct {
	Addr    string `json:"addr"`
	Balance string `json:"balance"`
	Locked  bool   `json:"locked,omitempty"`
}

// KeyResult 新生成的账户
type KeyResult struct {
	Addr    string `json:"addr"`
	PrivKey string `json:"privkey"`
}
