// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-mem/api"
)

// Ring is an unbounded, single-context ring stub for testing code that
// drives a Producer/Consumer pair. It preserves FIFO order and the
// fixed element size, but never reports capacity exhaustion on Put.
type Ring struct {
	elemSize int
	q        *queue.Queue
}

// NewRing creates a fake ring carrying elemSize-byte elements.
func NewRing(elemSize int) *Ring {
	if elemSize < 1 {
		elemSize = 1
	}
	return &Ring{elemSize: elemSize, q: queue.New()}
}

// Put copies the element into the unbounded backlog.
func (f *Ring) Put(elem []byte) error {
	if len(elem) < f.elemSize {
		return api.ErrInvalidArgument
	}
	cp := make([]byte, f.elemSize)
	copy(cp, elem)
	f.q.Add(cp)
	return nil
}

// Get copies the oldest element out; ErrCapacityExhausted when empty.
func (f *Ring) Get(out []byte) error {
	if len(out) < f.elemSize {
		return api.ErrInvalidArgument
	}
	if f.q.Length() == 0 {
		return api.ErrCapacityExhausted
	}
	copy(out[:f.elemSize], f.q.Remove().([]byte))
	return nil
}

// Len returns the number of queued elements.
func (f *Ring) Len() int { return f.q.Length() }

// ElemSize returns the fixed element size in bytes.
func (f *Ring) ElemSize() int { return f.elemSize }

var (
	_ api.Producer = (*Ring)(nil)
	_ api.Consumer = (*Ring)(nil)
)
