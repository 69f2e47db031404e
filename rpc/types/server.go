// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types rpc 服务端与插件 rpc 共用的接口和参数
package types

import (
	"context"
	"net/rpc"

	"github.com/33cn/twothirds/types"
)

// ChainAPI 节点提供给 rpc 的接口
type ChainAPI interface {
	SendTx(ctx context.Context, tx *types.Transaction) (*types.TxResult, error)
	QueryTx(hash []byte) (*types.TxResult, error)
	Query(driver, funcName string, params []byte) (interface{}, error)
	GetBalance(addrs []string) ([]*types.Account, error)
	GetLastHeight() int64
}

// RPCServer 插件注册 rpc 时使用
type RPCServer interface {
	JRPC() *rpc.Server
	API() ChainAPI
}

// ChannelClient 插件 rpc 的基础结构
type ChannelClient struct {
	ChainAPI
	jrpc interface{}
}

// Init 注册插件的 jsonrpc 对象, name 为 jsonrpc 的服务名
func (c *ChannelClient) Init(name string, s RPCServer, jrpc interface{}) {
	if c.ChainAPI == nil {
		c.ChainAPI = s.API()
	}
	if jrpc != nil {
		if err := s.JRPC().RegisterName(name, jrpc); err != nil {
			panic(err)
		}
	}
	c.jrpc = jrpc
}
