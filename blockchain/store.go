// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
	"sync/atomic"

	"github.com/33cn/twothirds/common"
	dbm "github.com/33cn/twothirds/common/db"
	"github.com/33cn/twothirds/types"
	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

var (
	blockLastHeight = []byte("blockLastHeight")
)

// 交易结果 snappy 压缩后保存
func calcTxKey(hash []byte) []byte {
	return append([]byte("TX:"), hash...)
}

func calcHeightToHashKey(height int64) []byte {
	return []byte(fmt.Sprintf("H:%012d", height))
}

// BlockStore 保存高度以及每个高度上的交易结果
// 状态数据与交易结果在同一个 batch 里写入
type BlockStore struct {
	db     dbm.DB
	height int64
	sync   bool
}

// NewBlockStore new
func NewBlockStore(db dbm.DB, sync bool) (*BlockStore, error) {
	height, err := LoadBlockStoreHeight(db)
	if err != nil {
		return nil, err
	}
	return &BlockStore{db: db, height: height, sync: sync}, nil
}

// LoadBlockStoreHeight 已经保存的高度, 空数据库返回 -1
func LoadBlockStoreHeight(db dbm.DB) (int64, error) {
	value, err := db.Get(blockLastHeight)
	if err == dbm.ErrNotFoundInDb {
		return -1, nil
	}
	if err != nil {
		return -1, err
	}
	var height int64
	if err := types.Decode(value, &height); err != nil {
		return -1, err
	}
	return height, nil
}

// Height 返回BlockStore保存的当前高度
func (bs *BlockStore) Height() int64 {
	return atomic.LoadInt64(&bs.height)
}

// HasTx 交易是否已经上链
func (bs *BlockStore) HasTx(hash []byte) bool {
	_, err := bs.db.Get(calcTxKey(hash))
	return err == nil
}

// GetTx 获取交易结果
func (bs *BlockStore) GetTx(hash []byte) (*types.TxResult, error) {
	value, err := bs.db.Get(calcTxKey(hash))
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeTxResult(value)
}

// GetTxByHeight 获取某个高度的交易结果
func (bs *BlockStore) GetTxByHeight(height int64) (*types.TxResult, error) {
	hash, err := bs.db.Get(calcHeightToHashKey(height))
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return bs.GetTx(hash)
}

// SaveBlock 在一个 batch 里写入状态 kv, 交易结果与高度
// result 为 nil 时只写状态 (genesis)
func (bs *BlockStore) SaveBlock(height int64, result *types.TxResult, kvs []*types.KeyValue) error {
	batch := bs.db.NewBatch(bs.sync)
	for _, kv := range kvs {
		if kv.Value == nil {
			batch.Delete(kv.Key)
			continue
		}
		batch.Set(kv.Key, kv.Value)
	}
	if result != nil {
		hash := result.Tx.Hash()
		batch.Set(calcTxKey(hash), encodeTxResult(result))
		batch.Set(calcHeightToHashKey(height), hash)
	}
	batch.Set(blockLastHeight, types.Encode(height))
	if err := batch.Write(); err != nil {
		storeLog.Error("SaveBlock", "height", height, "err", err)
		return errors.Wrapf(err, "save block %d", height)
	}
	atomic.StoreInt64(&bs.height, height)
	storeLog.Debug("SaveBlock", "height", height, "kvs", len(kvs))
	return nil
}

type storedTxResult struct {
	Height     int64              `json:"height"`
	Index      int32              `json:"index"`
	Tx         string             `json:"tx"`
	Receipt    *types.ReceiptData `json:"receipt"`
	Blocktime  int64              `json:"blocktime"`
	ActionName string             `json:"actionName"`
}

func encodeTxResult(r *types.TxResult) []byte {
	stored := &storedTxResult{
		Height:     r.Height,
		Index:      r.Index,
		Tx:         common.ToHex(r.Tx.Marshal()),
		Receipt:    r.Receipt,
		Blocktime:  r.Blocktime,
		ActionName: r.ActionName,
	}
	return snappy.Encode(nil, types.Encode(stored))
}

func decodeTxResult(value []byte) (*types.TxResult, error) {
	data, err := snappy.Decode(nil, value)
	if err != nil {
		return nil, errors.Wrap(types.ErrDecode, err.Error())
	}
	var stored storedTxResult
	if err := types.Decode(data, &stored); err != nil {
		return nil, err
	}
	tx, err := types.DecodeTxHex(stored.Tx)
	if err != nil {
		return nil, err
	}
	return &types.TxResult{
		Height:     stored.Height,
		Index:      stored.Index,
		Tx:         tx,
		Receipt:    stored.Receipt,
		Blocktime:  stored.Blocktime,
		ActionName: stored.ActionName,
	}, nil
}
