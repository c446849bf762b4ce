// File: pool/fixedpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FixedPool hands out pointers into a contiguous preallocated slot
// array. Free slots are tracked by one bit per slot; a set bit means
// free. The pool never allocates after construction and never moves a
// slot, so every pointer it issues stays valid for the pool lifetime.

package pool

import (
	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/bitset"
)

// Ensure compile-time interface compliance.
var _ api.Pool[int] = (*FixedPool[int])(nil)

// FixedPool is a fixed-capacity object pool. Not safe for concurrent
// use; drive it from one execution context or serialize externally.
type FixedPool[T any] struct {
	slots   []T
	free    *bitset.BitSet
	freeCnt int
}

// NewFixedPool creates a pool of n slots, all free.
func NewFixedPool[T any](n int) (*FixedPool[T], error) {
	if n < 1 {
		return nil, api.ErrInvalidArgument
	}
	p := &FixedPool[T]{
		slots: make([]T, n),
		free:  bitset.New(n),
	}
	p.free.SetAll()
	p.freeCnt = n
	return p, nil
}

// Alloc returns the free slot with the lowest index, or
// ErrCapacityExhausted. The fast path fails on the counter alone,
// without scanning the bitmap.
func (p *FixedPool[T]) Alloc() (*T, error) {
	if p.freeCnt == 0 {
		return nil, api.ErrCapacityExhausted
	}
	i, ok := p.free.NextSet(0)
	if !ok {
		return nil, api.ErrCapacityExhausted
	}
	p.free.Clear(i)
	p.freeCnt--
	return &p.slots[i], nil
}

// Free returns a slot to the pool. A nil pointer is a no-op. A pointer
// that does not address one of the pool's slots, or that addresses a
// slot which is already free, yields ErrUnrecognizedHandle; a foreign
// pointer and a double free are indistinguishable and share the code.
func (p *FixedPool[T]) Free(ptr *T) error {
	if ptr == nil {
		return nil
	}
	for i := range p.slots {
		if &p.slots[i] != ptr {
			continue
		}
		if p.free.Test(i) {
			return api.ErrUnrecognizedHandle
		}
		p.free.Set(i)
		p.freeCnt++
		return nil
	}
	return api.ErrUnrecognizedHandle
}

// Size returns the number of free slots.
func (p *FixedPool[T]) Size() int {
	return p.freeCnt
}

// Cap returns the total number of slots.
func (p *FixedPool[T]) Cap() int {
	return len(p.slots)
}
