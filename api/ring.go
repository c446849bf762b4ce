// File: api/ring.go
// Author: momentics <momentics@gmail.com>
//
// SPSC ring buffer contracts. The producer and consumer sides are
// split into distinct types so that only the correct execution context
// can ever invoke put or get.

package api

// Producer is the write half of an SPSC ring. Exactly one execution
// context may hold and drive a Producer for a given ring.
type Producer interface {
	// Put copies one element into the ring; ErrCapacityExhausted if full.
	Put(elem []byte) error
}

// Consumer is the read half of an SPSC ring. Exactly one execution
// context may hold and drive a Consumer for a given ring.
type Consumer interface {
	// Get copies the oldest element out of the ring;
	// ErrCapacityExhausted if empty.
	Get(out []byte) error
}

// Ring exposes the observers every ring carries. Len and the derived
// Full/Empty are safe to call from either side.
type Ring interface {
	// Len returns the current number of queued elements.
	Len() int
	// Cap returns the fixed element capacity.
	Cap() int
	// ElemSize returns the fixed element size in bytes.
	ElemSize() int
	// Full reports whether Len equals Cap.
	Full() bool
	// Empty reports whether Len is zero.
	Empty() bool
}
