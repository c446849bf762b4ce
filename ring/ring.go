// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free SPSC ring buffer over borrowed memory.
//
// The ring copies fixed-size elements through a byte buffer the caller
// owns. head is written only by the producer, tail only by the
// consumer; neither is ever wrapped into [0, count). Occupancy is the
// modular difference head-tail, which distinguishes full from empty
// without a reserved slot even after the counters overflow.

package ring

import (
	"sync/atomic"

	"github.com/momentics/hioload-mem/api"
)

// Attr describes the geometry and backing storage of one ring. The
// caller supplies and owns Buffer; the ring borrows it for its
// lifetime and never copies or reallocates it.
type Attr struct {
	ElemSize  int    // size of each element in bytes, > 0
	ElemCount int    // number of elements, a power of two
	Buffer    []byte // at least ElemSize*ElemCount bytes
}

// Descriptor is an opaque handle identifying one ring within a
// Registry. Once issued it stays valid for the registry lifetime.
type Descriptor uint32

// Ring is an SPSC ring buffer. Obtain the operative sides through
// Producer and Consumer; the Ring itself only observes.
type Ring struct {
	buf      []byte
	elemSize uint64
	count    uint64
	mask     uint64

	head uint64
	_    [64]byte // padding between the hot counters
	tail uint64
	_    [64]byte
}

// Ensure compile-time interface compliance.
var (
	_ api.Ring     = (*Ring)(nil)
	_ api.Producer = (*Producer)(nil)
	_ api.Consumer = (*Consumer)(nil)
)

// newRing validates attr and builds a ring over the borrowed buffer.
func newRing(attr Attr) (*Ring, error) {
	if attr.ElemSize < 1 || attr.ElemCount < 1 {
		return nil, api.ErrInvalidArgument
	}
	n := uint64(attr.ElemCount)
	if (n-1)&n != 0 {
		return nil, api.ErrInvalidArgument
	}
	need := uint64(attr.ElemSize) * n
	if attr.Buffer == nil || uint64(len(attr.Buffer)) < need {
		return nil, api.ErrInvalidArgument
	}
	return &Ring{
		buf:      attr.Buffer[:need],
		elemSize: uint64(attr.ElemSize),
		count:    n,
		mask:     n - 1,
	}, nil
}

// put copies one element in and publishes it. Producer context only.
func (r *Ring) put(elem []byte) error {
	if uint64(len(elem)) < r.elemSize {
		return api.ErrInvalidArgument
	}
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	if head-tail == r.count {
		return api.ErrCapacityExhausted
	}
	off := (head & r.mask) * r.elemSize
	copy(r.buf[off:off+r.elemSize], elem[:r.elemSize])
	// The copy above must complete before the head moves: a consumer
	// that observes the new head must find the slot already valid.
	atomic.AddUint64(&r.head, 1)
	return nil
}

// get copies the oldest element out and consumes it. Consumer context only.
func (r *Ring) get(out []byte) error {
	if uint64(len(out)) < r.elemSize {
		return api.ErrInvalidArgument
	}
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	if head-tail == 0 {
		return api.ErrCapacityExhausted
	}
	off := (tail & r.mask) * r.elemSize
	copy(out[:r.elemSize], r.buf[off:off+r.elemSize])
	// Same discipline on the read side: the slot is released to the
	// producer only after its bytes are out.
	atomic.AddUint64(&r.tail, 1)
	return nil
}

// Len returns the current number of queued elements.
func (r *Ring) Len() int {
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	return int(head - tail)
}

// Cap returns the fixed element capacity.
func (r *Ring) Cap() int {
	return int(r.count)
}

// ElemSize returns the fixed element size in bytes.
func (r *Ring) ElemSize() int {
	return int(r.elemSize)
}

// Full reports whether the ring holds Cap elements.
func (r *Ring) Full() bool {
	return atomic.LoadUint64(&r.head)-atomic.LoadUint64(&r.tail) == r.count
}

// Empty reports whether the ring holds no elements.
func (r *Ring) Empty() bool {
	return atomic.LoadUint64(&r.head) == atomic.LoadUint64(&r.tail)
}

// Producer returns the write half. Hand it to exactly one execution
// context; a second producer invalidates every ring invariant.
func (r *Ring) Producer() *Producer {
	return &Producer{r: r}
}

// Consumer returns the read half. Same single-context rule applies.
func (r *Ring) Consumer() *Consumer {
	return &Consumer{r: r}
}

// Producer is the write half of a ring. Only this type can put, so the
// single-writer-per-counter discipline is enforced by construction
// rather than by convention.
type Producer struct {
	r *Ring
}

// Put copies one element into the ring; ErrCapacityExhausted if full.
func (p *Producer) Put(elem []byte) error {
	return p.r.put(elem)
}

// Consumer is the read half of a ring.
type Consumer struct {
	r *Ring
}

// Get copies the oldest element out; ErrCapacityExhausted if empty.
func (c *Consumer) Get(out []byte) error {
	return c.r.get(out)
}
