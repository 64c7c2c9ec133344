// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package snapshot

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ChainSafe/chainfork/lib/common"
)

var testBlockHash = common.Hash{1, 2, 3}

// fakeNode serves the storage given, recording the number of
// requests it received and the maximum number of requests in flight.
type fakeNode struct {
	keys    []string
	storage map[string]*string
	latency time.Duration
	errs    map[string]error

	inFlight    int64
	maxInFlight int64
	calls       int64

	mutex     sync.Mutex
	startKeys []string
}

func newFakeNode(storage map[string]string) *fakeNode {
	node := &fakeNode{
		storage: make(map[string]*string, len(storage)),
		errs:    make(map[string]error),
	}
	for key, value := range storage {
		value := value
		node.keys = append(node.keys, key)
		node.storage[key] = &value
	}
	sort.Strings(node.keys)
	return node
}

func makeStorage(size int) map[string]string {
	storage := make(map[string]string, size)
	for i := 0; i < size; i++ {
		key := fmt.Sprintf("0x%08x", i)
		storage[key] = fmt.Sprintf("0x%04x", i%0xffff)
	}
	return storage
}

func (n *fakeNode) enter() {
	atomic.AddInt64(&n.calls, 1)
	current := atomic.AddInt64(&n.inFlight, 1)
	for {
		previousMax := atomic.LoadInt64(&n.maxInFlight)
		if current <= previousMax || atomic.CompareAndSwapInt64(&n.maxInFlight, previousMax, current) {
			break
		}
	}
	time.Sleep(n.latency)
}

func (n *fakeNode) leave() {
	atomic.AddInt64(&n.inFlight, -1)
}

func (n *fakeNode) GetKeysPaged(ctx context.Context, keyPrefix string, count uint32,
	startKey string, at common.Hash) (keys []string, err error) {
	n.enter()
	defer n.leave()

	n.mutex.Lock()
	n.startKeys = append(n.startKeys, startKey)
	n.mutex.Unlock()

	if at != testBlockHash {
		return nil, fmt.Errorf("unexpected block %s", at)
	}

	start := sort.SearchStrings(n.keys, startKey)
	if start < len(n.keys) && n.keys[start] == startKey {
		start++
	}
	end := start + int(count)
	if end > len(n.keys) {
		end = len(n.keys)
	}
	return append([]string{}, n.keys[start:end]...), nil
}

func (n *fakeNode) GetStorage(ctx context.Context, key string, at common.Hash) (value *string, err error) {
	n.enter()
	defer n.leave()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err, ok := n.errs[key]; ok {
		return nil, err
	}
	return n.storage[key], nil
}

type countingProgress struct {
	mutex    sync.Mutex
	count    int
	finished int
}

func (p *countingProgress) Inc(n int) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.count += n
}

func (p *countingProgress) Finish() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.finished++
}
