// File: pool/blockpool.go
// Package pool implements free-list block pooling with burst growth.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/seqkit/api"
)

// block: one fixed-length storage unit plus the origin bookkeeping that
// makes Release a checked operation instead of trusting the caller.
type block[T any] struct {
	data []T
	home *blockPool[T]
	idle bool
}

// Elems returns the block's element storage.
func (b *block[T]) Elems() []T { return b.data }

// blockPool: fixed-length []T blocks recycled through a LIFO free list.
// Exhaustion is answered with a burst: one block for the caller plus
// grow-1 extras pushed onto the free list, amortizing lock and
// allocator overhead. Issued blocks are never moved or resized, so
// slices held by callers stay valid for the pool's lifetime.
type blockPool[T any] struct {
	mu       sync.Mutex
	blockLen int
	grow     int
	freeList []*block[T]
	closed   bool

	allocated atomic.Int64
	_         cpu.CacheLinePad
	freeCnt   atomic.Int64
	_         cpu.CacheLinePad
	bursts    atomic.Int64
}

// NewBlockPool creates a pool of blocks holding blockLen elements each,
// growing by grow blocks per exhaustion burst. Both must be positive.
func NewBlockPool[T any](blockLen, grow int) (api.BlockPool[T], error) {
	if blockLen <= 0 || grow <= 0 {
		return nil, api.NewError(api.CodeInvalidArgument, "block length and growth must be positive").
			WithContext("blockLen", blockLen).
			WithContext("grow", grow)
	}
	return &blockPool[T]{
		blockLen: blockLen,
		grow:     grow,
	}, nil
}

// Acquire pops the free-list head, or grows the pool by one burst when
// the list is empty.
func (p *blockPool[T]) Acquire() (api.Block[T], error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, api.NewError(api.CodeInvalidArgument, "block pool is destroyed")
	}

	if n := len(p.freeList); n > 0 {
		b := p.freeList[n-1]
		p.freeList = p.freeList[:n-1]
		b.idle = false
		p.allocated.Add(1)
		p.freeCnt.Add(-1)
		return b, nil
	}

	// Burst: the caller's block first, then grow-1 spares.
	out := &block[T]{data: make([]T, p.blockLen), home: p}
	for i := 1; i < p.grow; i++ {
		p.freeList = append(p.freeList, &block[T]{data: make([]T, p.blockLen), home: p, idle: true})
	}
	p.allocated.Add(1)
	p.freeCnt.Add(int64(p.grow - 1))
	p.bursts.Add(1)
	return out, nil
}

// Release pushes a block back onto the free list. Nil handles, handles
// from another pool and double releases are rejected.
func (p *blockPool[T]) Release(h api.Block[T]) error {
	if h == nil {
		return api.ErrNullPointer
	}
	b, ok := h.(*block[T])
	if !ok || b.home != p {
		return api.NewError(api.CodeInvalidArgument, "block does not belong to this pool")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return api.NewError(api.CodeInvalidArgument, "block pool is destroyed")
	}
	if b.idle {
		return api.NewError(api.CodeInvalidArgument, "block released twice")
	}

	b.idle = true
	p.freeList = append(p.freeList, b)
	p.allocated.Add(-1)
	p.freeCnt.Add(1)
	return nil
}

// BlockLen reports the fixed element count of every block.
func (p *blockPool[T]) BlockLen() int { return p.blockLen }

// Stats returns a lock-free snapshot of the pool counters.
func (p *blockPool[T]) Stats() api.BlockPoolStats {
	return api.BlockPoolStats{
		BlockLen:  p.blockLen,
		Allocated: p.allocated.Load(),
		Free:      p.freeCnt.Load(),
		Bursts:    p.bursts.Load(),
	}
}

// Destroy drops the free list and closes the pool. Blocks still held by
// callers are abandoned to the garbage collector; the original design
// leaked them outright, and either way returning them afterwards fails.
func (p *blockPool[T]) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	p.freeList = nil
	p.freeCnt.Store(0)
}

var _ api.BlockPool[int] = (*blockPool[int])(nil)
