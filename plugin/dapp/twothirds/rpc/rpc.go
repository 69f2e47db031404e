// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	tt "github.com/33cn/twothirds/plugin/dapp/twothirds/types"
	rpctypes "github.com/33cn/twothirds/rpc/types"
	"github.com/33cn/twothirds/types"
)

type channelClient struct {
	rpctypes.ChannelClient
}

// Jrpc TwoThirds 的 jsonrpc
type Jrpc struct {
	cli *channelClient
}

// Init 注册 TwoThirds jsonrpc
func Init(name string, s rpctypes.RPCServer) {
	cli := &channelClient{}
	cli.Init(tt.JRPCName, s, &Jrpc{cli: cli})
}

// createTx 构造未签名交易, 返回十六进制编码
func (c *channelClient) createTx(action string, param interface{}) (string, error) {
	exec := types.LoadExecutor(tt.TwoThirdsX)
	if exec == nil {
		return "", types.ErrUnknowDriver
	}
	tx, err := exec.CreateTx(action, types.Encode(param))
	if err != nil {
		return "", err
	}
	return tx.HexString(), nil
}

func (c *channelClient) query(funcName string, param interface{}) (interface{}, error) {
	return c.Query(tt.TwoThirdsX, funcName, types.Encode(param))
}
