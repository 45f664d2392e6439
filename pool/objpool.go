// File: pool/objpool.go
// Package pool implements growable object pooling with destructor hooks.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/seqkit/api"
)

// ObjectOption configures an object pool at construction.
type ObjectOption[T any] func(*objectPool[T])

// WithConstructor replaces the default new(T) with a custom factory.
func WithConstructor[T any](ctor func() *T) ObjectOption[T] {
	return func(p *objectPool[T]) { p.ctor = ctor }
}

// WithDestructor installs a hook invoked on objects the pool drops:
// idle objects at Destroy, and objects returned past the retention cap.
func WithDestructor[T any](dtor func(*T)) ObjectOption[T] {
	return func(p *objectPool[T]) { p.dtor = dtor }
}

// WithMaxIdle bounds the idle array. A Put finding the pool already
// holding maxIdle objects destroys the object instead of retaining it.
// The original design destroyed on allocation failure of the growing
// pointer array; allocation failure is not observable here, so the
// backpressure valve is expressed as this explicit cap. Zero or
// negative means unbounded.
func WithMaxIdle[T any](maxIdle int) ObjectOption[T] {
	return func(p *objectPool[T]) { p.maxIdle = maxIdle }
}

// objectPool: a LIFO array of idle *T. Get pops or allocates a burst of
// grow objects; Put pushes or, at the retention cap, destroys. The idle
// array may be reallocated as it grows; the objects themselves never
// move, so pointers issued to callers stay stable forever.
//
// Counter semantics: totalAlloc counts constructor calls, totalFree
// counts destroyed objects (both monotonic); inUse and idleCnt are
// gauges of objects in caller hands and on the idle array.
type objectPool[T any] struct {
	mu      sync.Mutex
	idle    []*T
	grow    int
	maxIdle int
	ctor    func() *T
	dtor    func(*T)
	closed  bool

	totalAlloc atomic.Int64
	_          cpu.CacheLinePad
	totalFree  atomic.Int64
	_          cpu.CacheLinePad
	inUse      atomic.Int64
	_          cpu.CacheLinePad
	idleCnt    atomic.Int64
}

// NewObjectPool creates a pool pre-filled with initial idle objects,
// growing by grow objects per exhaustion burst. initial must be >= 0
// and grow positive.
func NewObjectPool[T any](initial, grow int, opts ...ObjectOption[T]) (api.ObjectPool[T], error) {
	if initial < 0 || grow <= 0 {
		return nil, api.NewError(api.CodeInvalidArgument, "initial size must be >= 0 and growth positive").
			WithContext("initial", initial).
			WithContext("grow", grow)
	}

	p := &objectPool[T]{
		idle: make([]*T, 0, initial),
		grow: grow,
		ctor: func() *T { return new(T) },
	}
	for _, opt := range opts {
		opt(p)
	}
	for i := 0; i < initial; i++ {
		p.idle = append(p.idle, p.ctor())
	}
	p.totalAlloc.Store(int64(initial))
	p.idleCnt.Store(int64(initial))
	return p, nil
}

// Get pops the most recently returned object, or allocates a burst of
// grow objects when the pool is exhausted.
func (p *objectPool[T]) Get() (*T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, api.NewError(api.CodeInvalidArgument, "object pool is destroyed")
	}

	if n := len(p.idle); n > 0 {
		obj := p.idle[n-1]
		p.idle = p.idle[:n-1]
		p.idleCnt.Add(-1)
		p.inUse.Add(1)
		return obj, nil
	}

	// Burst: one for the caller, grow-1 spares.
	out := p.ctor()
	for i := 1; i < p.grow; i++ {
		p.idle = append(p.idle, p.ctor())
	}
	p.totalAlloc.Add(int64(p.grow))
	p.idleCnt.Add(int64(p.grow - 1))
	p.inUse.Add(1)
	return out, nil
}

// Put returns an object for reuse, or destroys it when the pool already
// retains its maximum of idle objects. Objects are typed by
// construction; like the original, origin is not tracked, so returning
// a compatible foreign pointer is accepted.
func (p *objectPool[T]) Put(obj *T) error {
	if obj == nil {
		return api.ErrNullPointer
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return api.NewError(api.CodeInvalidArgument, "object pool is destroyed")
	}

	p.inUse.Add(-1)

	if p.maxIdle > 0 && len(p.idle) >= p.maxIdle {
		if p.dtor != nil {
			p.dtor(obj)
		}
		p.totalFree.Add(1)
		return nil
	}

	p.idle = append(p.idle, obj)
	p.idleCnt.Add(1)
	return nil
}

// Stats returns a lock-free snapshot of the pool counters.
func (p *objectPool[T]) Stats() api.ObjectPoolStats {
	return api.ObjectPoolStats{
		TotalAlloc: p.totalAlloc.Load(),
		TotalFree:  p.totalFree.Load(),
		InUse:      p.inUse.Load(),
		Idle:       p.idleCnt.Load(),
	}
}

// Destroy runs the destructor over every idle object and closes the
// pool. Objects in caller hands are not tracked and not destroyed.
func (p *objectPool[T]) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	if p.dtor != nil {
		for _, obj := range p.idle {
			p.dtor(obj)
		}
	}
	p.totalFree.Add(int64(len(p.idle)))
	p.idleCnt.Store(0)
	p.idle = nil
}

var _ api.ObjectPool[int] = (*objectPool[int])(nil)
