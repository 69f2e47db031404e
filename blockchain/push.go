// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockchain

import (
	"sync"

	"github.com/33cn/twothirds/types"
)

// 订阅者缓冲满了以后丢弃, 不阻塞交易执行
const subscribeBufferSize = 128

type pushService struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan *types.TxResult
}

func newPushService() *pushService {
	return &pushService{subs: make(map[int]chan *types.TxResult)}
}

func (p *pushService) subscribe() (<-chan *types.TxResult, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextID
	p.nextID++
	ch := make(chan *types.TxResult, subscribeBufferSize)
	p.subs[id] = ch
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			if _, ok := p.subs[id]; ok {
				delete(p.subs, id)
				close(ch)
			}
		})
	}
	return ch, cancel
}

func (p *pushService) push(result *types.TxResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for id, ch := range p.subs {
		select {
		case ch <- result:
		default:
			chainlog.Warn("push subscriber full, drop", "id", id, "height", result.Height)
		}
	}
}

func (p *pushService) close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for id, ch := range p.subs {
		delete(p.subs, id)
		close(ch)
	}
}
