// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Defines abstract pooling APIs: fixed-capacity allocators over
// preallocated storage, with no heap use after construction.

package api

// Pool hands out slots from a fixed set of preallocated objects.
//
// Implementations carry no concurrency contract: callers drive a Pool
// from a single execution context or serialize access externally.
type Pool[T any] interface {
	// Alloc returns a free slot, or ErrCapacityExhausted when none remain.
	// The lowest free slot index always wins.
	Alloc() (*T, error)

	// Free returns a slot previously obtained from Alloc. A nil pointer
	// is a no-op. A pointer the pool does not own, or a slot that is
	// already free, yields ErrUnrecognizedHandle.
	Free(*T) error

	// Size returns the number of free slots.
	Size() int

	// Cap returns the total number of slots.
	Cap() int
}

// BytePool hands out equal-size byte slices from preallocated storage.
type BytePool interface {
	// GetBuffer returns a free slot-sized buffer.
	GetBuffer() ([]byte, error)

	// PutBuffer returns a buffer obtained from GetBuffer.
	PutBuffer([]byte) error

	// Size returns the number of free buffers.
	Size() int

	// Cap returns the total number of buffers.
	Cap() int
}
