// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"

	dbm "github.com/33cn/twothirds/common/db"
	"github.com/33cn/twothirds/types"
)

// StateDB 执行交易时使用的状态数据库
// 读: txcache -> cache -> 已提交的存储
// 写: 交易内的写入先进 txcache, Commit 后合并进 cache, Rollback 丢弃
type StateDB struct {
	store   dbm.KV
	cache   map[string][]byte
	txcache map[string][]byte
	keys    []string
	intx    bool
}

// NewStateDB new state db
func NewStateDB(store dbm.KV) *StateDB {
	return &StateDB{
		store: store,
		cache: make(map[string][]byte),
	}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.keys = nil
	s.txcache = nil
}

// Rollback reset tx
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit 交易内的写入合并到 cache
func (s *StateDB) Commit() {
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.resetTx()
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
	s.keys = nil
}

// Get get value from state db
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx && s.txcache != nil {
		if value, ok := s.txcache[skey]; ok {
			return value, nil
		}
	}
	if value, ok := s.cache[skey]; ok {
		return value, nil
	}
	if s.store == nil {
		return nil, types.ErrNotFound
	}
	value, err := s.store.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, types.ErrNotFound
	}
	return value, nil
}

// Set set key value to state db
func (s *StateDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if s.intx {
		if s.txcache == nil {
			s.txcache = make(map[string][]byte)
		}
		s.keys = append(s.keys, skey)
		s.txcache[skey] = value
	} else {
		s.cache[skey] = value
	}
	return nil
}

// GetSetKeys 当前交易内写过的 key
func (s *StateDB) GetSetKeys() (keys []string) {
	return s.keys
}

// KVs 已提交但还没有写入存储的 kv, 按 key 排序
func (s *StateDB) KVs() []*types.KeyValue {
	kvs := make([]*types.KeyValue, 0, len(s.cache))
	for k, v := range s.cache {
		kvs = append(kvs, &types.KeyValue{Key: []byte(k), Value: v})
	}
	sort.Slice(kvs, func(i, j int) bool {
		return string(kvs[i].Key) < string(kvs[j].Key)
	})
	return kvs
}

// Reset 清空 cache, 存储写入成功后调用
func (s *StateDB) Reset() {
	s.cache = make(map[string][]byte)
	s.resetTx()
}
