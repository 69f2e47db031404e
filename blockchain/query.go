// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/33cn/twothirds/common"
	"github.com/33cn/twothirds/types"
)

// QueryTx 按 hash 查询交易结果
func (chain *BlockChain) QueryTx(hash []byte) (*types.TxResult, error) {
	if v, ok := chain.cache.Get(string(hash)); ok {
		return v.(*types.TxResult), nil
	}
	return chain.store.GetTx(hash)
}

// QueryTxByHeight 按高度查询交易结果
func (chain *BlockChain) QueryTxByHeight(height int64) (*types.TxResult, error) {
	return chain.store.GetTxByHeight(height)
}

// Query 调用执行器的 Query_<funcName>, 只读已提交的状态
func (chain *BlockChain) Query(driver, funcName string, params []byte) (interface{}, error) {
	return chain.exec.Query(driver, funcName, params, chain.store.Height())
}

// GetBalance coins 余额
func (chain *BlockChain) GetBalance(addrs []string) ([]*types.Account, error) {
	reply, err := chain.Query(types.CoinsX, "Balance", types.Encode(&types.ReqBalance{Addresses: addrs}))
	if err != nil {
		return nil, err
	}
	return reply.([]*types.Account), nil
}

func hashString(hash []byte) string {
	return common.ToHex(hash)
}
