// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/twothirds/common/address"
	"github.com/33cn/twothirds/types"
)

// Query_Balance 查询账户余额
func (c *Coins) Query_Balance(in *types.ReqBalance) (interface{}, error) {
	if len(in.Addresses) == 0 {
		return nil, types.ErrInvalidParam
	}
	for _, addr := range in.Addresses {
		if err := address.CheckAddress(addr); err != nil {
			return nil, types.ErrInvalidAddress
		}
	}
	return c.GetCoinsAccount().LoadAccounts(in.Addresses), nil
}
