// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blockchain 单节点的交易排序器
// 交易在一个协程里逐笔执行, 每笔交易占用一个高度, 状态与结果在一个 batch 里落盘
package blockchain

import (
	"context"
	"sync"
	"time"

	dbm "github.com/33cn/twothirds/common/db"
	log "github.com/33cn/twothirds/common/log"
	"github.com/33cn/twothirds/executor"
	"github.com/33cn/twothirds/metrics"
	"github.com/33cn/twothirds/types"
	lru "github.com/hashicorp/golang-lru"
)

var (
	chainlog = log.New("module", "blockchain")
	storeLog = log.New("module", "blockchain.store")
)

// DefCacheSize 缓存最近的交易结果个数
var DefCacheSize = 1024

const txQueueSize = 1024

type txTask struct {
	tx    *types.Transaction
	reply chan txReply
}

type txReply struct {
	result *types.TxResult
	err    error
}

// BlockChain 交易排序器
type BlockChain struct {
	cfg   *types.Config
	store *BlockStore
	exec  *executor.Executor
	cache *lru.Cache
	push  *pushService

	txCh chan *txTask
	quit chan struct{}
	wg   sync.WaitGroup
	// 保护 closed, 关闭以后不再有交易进入队列
	mu     sync.RWMutex
	closed bool
}

// New 打开存储, 空数据库时执行 genesis
func New(cfg *types.Config, sub *types.ConfigSubModule, db dbm.DB) (*BlockChain, error) {
	store, err := NewBlockStore(db, cfg.Store.Sync)
	if err != nil {
		return nil, err
	}
	cache, err := lru.New(DefCacheSize)
	if err != nil {
		return nil, err
	}
	chain := &BlockChain{
		cfg:   cfg,
		store: store,
		exec:  executor.New(db, sub),
		cache: cache,
		push:  newPushService(),
		txCh:  make(chan *txTask, txQueueSize),
		quit:  make(chan struct{}),
	}
	if store.Height() == -1 {
		if err := chain.genesis(); err != nil {
			return nil, err
		}
	}
	metrics.Height.Update(store.Height())
	chainlog.Info("New blockchain", "height", store.Height())
	return chain, nil
}

func (chain *BlockChain) genesis() error {
	receipt, err := chain.exec.Genesis(chain.cfg.Genesis)
	if err != nil {
		return err
	}
	defer chain.exec.Reset()
	if err := chain.store.SaveBlock(0, nil, chain.exec.PendingKVs()); err != nil {
		return err
	}
	chainlog.Info("genesis done", "allocs", len(chain.cfg.Genesis), "kvs", len(receipt.KV))
	return nil
}

// Start 启动执行协程
func (chain *BlockChain) Start() {
	chain.wg.Add(1)
	go chain.procTxs()
}

// Close 停止执行协程, 队列中的交易返回 ErrChainClosed
func (chain *BlockChain) Close() {
	chain.mu.Lock()
	if chain.closed {
		chain.mu.Unlock()
		return
	}
	chain.closed = true
	chain.mu.Unlock()
	close(chain.quit)
	chain.wg.Wait()
	chain.drain()
	chain.push.close()
	chainlog.Info("blockchain closed", "height", chain.store.Height())
}

// SendTx 提交交易并等待执行结果
// 返回 error 表示交易被拒绝, 执行失败的交易返回 Receipt.Ty == ExecErr 的结果
func (chain *BlockChain) SendTx(ctx context.Context, tx *types.Transaction) (*types.TxResult, error) {
	if err := chain.exec.CheckTx(tx, chain.store.Height()+1); err != nil {
		metrics.TxRejected.Inc(1)
		return nil, err
	}
	task := &txTask{tx: tx, reply: make(chan txReply, 1)}
	chain.mu.RLock()
	if chain.closed {
		chain.mu.RUnlock()
		return nil, types.ErrChainClosed
	}
	select {
	case chain.txCh <- task:
		chain.mu.RUnlock()
	case <-ctx.Done():
		chain.mu.RUnlock()
		return nil, ctx.Err()
	}
	select {
	case reply := <-task.reply:
		return reply.result, reply.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (chain *BlockChain) procTxs() {
	defer chain.wg.Done()
	for {
		select {
		case <-chain.quit:
			chain.drain()
			return
		case task := <-chain.txCh:
			result, err := chain.execTx(task.tx)
			task.reply <- txReply{result: result, err: err}
		}
	}
}

func (chain *BlockChain) drain() {
	for {
		select {
		case task := <-chain.txCh:
			task.reply <- txReply{err: types.ErrChainClosed}
		default:
			return
		}
	}
}

func (chain *BlockChain) execTx(tx *types.Transaction) (*types.TxResult, error) {
	hash := tx.Hash()
	if chain.cache.Contains(string(hash)) || chain.store.HasTx(hash) {
		metrics.TxRejected.Inc(1)
		return nil, types.ErrTxDup
	}
	height := chain.store.Height() + 1
	blocktime := time.Now().Unix()
	begin := time.Now()
	receipt, err := chain.exec.ExecTx(tx, 0, height, blocktime)
	if err != nil {
		metrics.TxRejected.Inc(1)
		chainlog.Debug("execTx rejected", "hash", hashString(hash), "err", err)
		return nil, err
	}
	defer chain.exec.Reset()
	result := &types.TxResult{
		Height:     height,
		Index:      0,
		Tx:         tx,
		Receipt:    receipt.Data(),
		Blocktime:  blocktime,
		ActionName: tx.ActionName(),
	}
	if err := chain.store.SaveBlock(height, result, chain.exec.PendingKVs()); err != nil {
		chainlog.Crit("execTx save block", "height", height, "err", err)
		return nil, err
	}
	metrics.TxExecTime.UpdateSince(begin)
	metrics.Height.Update(height)
	if receipt.Ty == types.ExecOk {
		metrics.TxOk.Inc(1)
	} else {
		metrics.TxErr.Inc(1)
	}
	chain.cache.Add(string(hash), result)
	chain.push.push(result)
	chainlog.Debug("execTx", "height", height, "hash", hashString(hash), "action", result.ActionName,
		"ty", types.ExecTyName(receipt.Ty))
	return result, nil
}

// Subscribe 订阅交易结果, 返回的函数取消订阅
func (chain *BlockChain) Subscribe() (<-chan *types.TxResult, func()) {
	return chain.push.subscribe()
}

// GetLastHeight 当前高度
func (chain *BlockChain) GetLastHeight() int64 {
	return chain.store.Height()
}
