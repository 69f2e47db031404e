// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"context"
	"time"

	"github.com/33cn/twothirds/common"
	rpctypes "github.com/33cn/twothirds/rpc/types"
	"github.com/33cn/twothirds/types"
)

// 等待交易执行的最长时间
var sendTxTimeout = 30 * time.Second

// SendTransaction 发送签名交易, 交易执行后返回 hash
func (c *Chain33) SendTransaction(in rpctypes.RawParm, result *interface{}) error {
	data, err := common.FromHex(in.Data)
	if err != nil {
		return types.ErrInvalidParam
	}
	var tx types.Transaction
	if err := tx.Unmarshal(data); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), sendTxTimeout)
	defer cancel()
	reply, err := c.cli.SendTx(ctx, &tx)
	if err != nil {
		rlog.Debug("SendTransaction", "hash", common.ToHex(tx.Hash()), "err", err)
		return err
	}
	*result = common.ToHex(reply.Tx.Hash())
	return nil
}

// QueryTransaction 交易详情
func (c *Chain33) QueryTransaction(in rpctypes.QueryParm, result *interface{}) error {
	hash, err := common.FromHex(in.Hash)
	if err != nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.QueryTx(hash)
	if err != nil {
		return err
	}
	*result = rpctypes.DecodeTxResult(reply)
	return nil
}

// GetBalance coins 余额
func (c *Chain33) GetBalance(in rpctypes.ReqBalance, result *interface{}) error {
	accs, err := c.cli.GetBalance(in.Addresses)
	if err != nil {
		return err
	}
	*result = accs
	return nil
}

// Query 调用执行器的 Query_<funcName>
func (c *Chain33) Query(in rpctypes.Query4Jrpc, result *interface{}) error {
	reply, err := c.cli.Query(in.Execer, in.FuncName, in.Payload)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

// GetLastHeight 最新高度
func (c *Chain33) GetLastHeight(in *rpctypes.ReqNil, result *interface{}) error {
	*result = c.cli.GetLastHeight()
	return nil
}
