// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockchain

import (
	"context"
	"testing"
	"time"

	dbm "github.com/33cn/twothirds/common/db"
	_ "github.com/33cn/twothirds/system"
	"github.com/33cn/twothirds/types"
	"github.com/33cn/twothirds/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	privGenesis = util.HexToPrivkey("CC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")
	addrGenesis = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
)

func newTestChain(t *testing.T) (*BlockChain, dbm.DB) {
	db, err := dbm.NewDB("chain", dbm.MemDBBackendStr, "", 0)
	require.NoError(t, err)
	cfg := types.DefaultConfig()
	cfg.Genesis = []*types.GenesisAlloc{{Addr: addrGenesis, Amount: 100}}
	chain, err := New(cfg, nil, db)
	require.NoError(t, err)
	chain.Start()
	t.Cleanup(chain.Close)
	return chain, db
}

func balanceOf(t *testing.T, chain *BlockChain, addr string) int64 {
	accs, err := chain.GetBalance([]string{addr})
	require.NoError(t, err)
	require.Len(t, accs, 1)
	return accs[0].Balance
}

func TestGenesis(t *testing.T) {
	chain, _ := newTestChain(t)
	assert.Equal(t, int64(0), chain.GetLastHeight())
	assert.Equal(t, 100*types.Coin, balanceOf(t, chain, addrGenesis))
}

func TestSendTx(t *testing.T) {
	chain, _ := newTestChain(t)
	to, _ := util.Genaddress()
	tx := util.CreateCoinsTx(privGenesis, to, types.Coin)
	result, err := chain.SendTx(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Height)
	assert.Equal(t, int32(types.ExecOk), result.Receipt.Ty)
	assert.Equal(t, "transfer", result.ActionName)
	assert.Equal(t, int64(1), chain.GetLastHeight())
	assert.Equal(t, types.Coin, balanceOf(t, chain, to))

	//重复交易
	_, err = chain.SendTx(context.Background(), tx)
	assert.Equal(t, types.ErrTxDup, err)
	assert.Equal(t, int64(1), chain.GetLastHeight())

	got, err := chain.QueryTx(tx.Hash())
	require.NoError(t, err)
	assert.Equal(t, tx.Hash(), got.Tx.Hash())
}

func TestSendTxExecErr(t *testing.T) {
	chain, _ := newTestChain(t)
	to, _ := util.Genaddress()
	tx := util.CreateCoinsTx(privGenesis, to, 101*types.Coin)
	result, err := chain.SendTx(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecErr), result.Receipt.Ty)
	require.Len(t, result.Receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogErr), result.Receipt.Logs[0].Ty)
	//失败的交易也占用高度
	assert.Equal(t, int64(1), chain.GetLastHeight())
	assert.Equal(t, 100*types.Coin, balanceOf(t, chain, addrGenesis))
	assert.Equal(t, int64(0), balanceOf(t, chain, to))
}

func TestSendTxRejected(t *testing.T) {
	chain, _ := newTestChain(t)
	to, _ := util.Genaddress()
	tx := util.CreateCoinsTx(privGenesis, to, types.Coin)
	tx.Nonce++
	_, err := chain.SendTx(context.Background(), tx)
	assert.Equal(t, types.ErrSign, err)
	assert.Equal(t, int64(0), chain.GetLastHeight())
	_, err = chain.QueryTx(tx.Hash())
	assert.Equal(t, types.ErrNotFound, err)
}

func TestReopen(t *testing.T) {
	db, err := dbm.NewDB("chain", dbm.MemDBBackendStr, "", 0)
	require.NoError(t, err)
	cfg := types.DefaultConfig()
	cfg.Genesis = []*types.GenesisAlloc{{Addr: addrGenesis, Amount: 100}}
	chain, err := New(cfg, nil, db)
	require.NoError(t, err)
	chain.Start()
	to, _ := util.Genaddress()
	tx := util.CreateCoinsTx(privGenesis, to, 2*types.Coin)
	_, err = chain.SendTx(context.Background(), tx)
	require.NoError(t, err)
	chain.Close()

	_, err = chain.SendTx(context.Background(), util.CreateCoinsTx(privGenesis, to, types.Coin))
	assert.Equal(t, types.ErrChainClosed, err)

	//genesis 不会再执行
	chain2, err := New(cfg, nil, db)
	require.NoError(t, err)
	chain2.Start()
	defer chain2.Close()
	assert.Equal(t, int64(1), chain2.GetLastHeight())
	assert.Equal(t, 98*types.Coin, balanceOf(t, chain2, addrGenesis))
	got, err := chain2.QueryTx(tx.Hash())
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Height)
	assert.Equal(t, tx.Hash(), got.Tx.Hash())
	got, err = chain2.QueryTxByHeight(1)
	require.NoError(t, err)
	assert.Equal(t, tx.Hash(), got.Tx.Hash())
}

func TestSubscribe(t *testing.T) {
	chain, _ := newTestChain(t)
	ch, cancel := chain.Subscribe()
	defer cancel()
	to, _ := util.Genaddress()
	tx := util.CreateCoinsTx(privGenesis, to, types.Coin)
	_, err := chain.SendTx(context.Background(), tx)
	require.NoError(t, err)
	select {
	case r := <-ch:
		assert.Equal(t, tx.Hash(), r.Tx.Hash())
	case <-time.After(time.Second):
		t.Fatal("no push")
	}
	cancel()
	_, ok := <-ch
	assert.False(t, ok)
}

func TestSendTxContext(t *testing.T) {
	chain, _ := newTestChain(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	to, _ := util.Genaddress()
	_, err := chain.SendTx(ctx, util.CreateCoinsTx(privGenesis, to, types.Coin))
	//可能已经执行, 也可能被取消
	if err != nil {
		assert.Equal(t, context.Canceled, err)
	}
}
