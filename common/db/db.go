// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 键值存储抽象, 支持 goleveldb, badger 与内存数据库
package db

import (
	"errors"
	"sort"

	log "github.com/33cn/twothirds/common/log"
	pkgerr "github.com/pkg/errors"
)

var (
	dlog = log.New("module", "db")
	llog = log.New("module", "db.goleveldb")
	blog = log.New("module", "db.gobadgerdb")
)

// ErrNotFoundInDb key 不存在
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// KV 状态读写接口
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
}

// DB 数据库接口
type DB interface {
	KV
	Delete(key []byte) error
	NewBatch(sync bool) Batch
	// PrefixScan 按 key 升序返回前缀匹配的全部 value
	PrefixScan(prefix []byte) ([][]byte, error)
	Close()
}

// Batch 批量写
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

// backends
const (
	LevelDBBackendStr    = "leveldb" // legacy, defaults to goleveldb.
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// Backends 已注册的数据库类型
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewDB 创建数据库
func NewDB(name string, backend string, dir string, cache int) (DB, error) {
	creator, ok := backends[backend]
	if !ok {
		return nil, pkgerr.Errorf("unknown db backend %q", backend)
	}
	db, err := creator(name, dir, cache)
	if err != nil {
		dlog.Error("NewDB", "backend", backend, "dir", dir, "err", err)
		return nil, pkgerr.Wrapf(err, "open %s db", backend)
	}
	return db, nil
}

// KeyValue 批量写入的 kv 对, value 为 nil 表示删除
type KeyValue struct {
	Key   []byte
	Value []byte
}

// WriteKVs 在一个 batch 里写入 kvs
func WriteKVs(db DB, kvs []KeyValue, sync bool) error {
	batch := db.NewBatch(sync)
	for _, kv := range kvs {
		if kv.Value == nil {
			batch.Delete(kv.Key)
		} else {
			batch.Set(kv.Key, kv.Value)
		}
	}
	return batch.Write()
}

func cloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}
