// File: pool/byteslots.go
// Author: momentics <momentics@gmail.com>
//
// ByteSlotPool carves one contiguous allocation into equal-size byte
// slots, the common case of pooling wire buffers next to a ring. Slot
// identity on PutBuffer is the address of the first byte, so callers
// may reslice a checked-out buffer freely as long as they return the
// original.

package pool

import (
	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/bitset"
)

// Ensure compile-time interface compliance.
var _ api.BytePool = (*ByteSlotPool)(nil)

// ByteSlotPool is a fixed pool of equal-size byte buffers. Not safe
// for concurrent use.
type ByteSlotPool struct {
	storage  []byte
	slotSize int
	free     *bitset.BitSet
	freeCnt  int
}

// NewByteSlotPool creates a pool of n buffers of slotSize bytes each,
// backed by a single contiguous allocation.
func NewByteSlotPool(slotSize, n int) (*ByteSlotPool, error) {
	if slotSize < 1 || n < 1 {
		return nil, api.ErrInvalidArgument
	}
	p := &ByteSlotPool{
		storage:  make([]byte, slotSize*n),
		slotSize: slotSize,
		free:     bitset.New(n),
	}
	p.free.SetAll()
	p.freeCnt = n
	return p, nil
}

// GetBuffer returns the free buffer with the lowest slot index, or
// ErrCapacityExhausted. The returned slice has len == cap == SlotSize.
func (p *ByteSlotPool) GetBuffer() ([]byte, error) {
	if p.freeCnt == 0 {
		return nil, api.ErrCapacityExhausted
	}
	i, ok := p.free.NextSet(0)
	if !ok {
		return nil, api.ErrCapacityExhausted
	}
	p.free.Clear(i)
	p.freeCnt--
	off := i * p.slotSize
	return p.storage[off : off+p.slotSize : off+p.slotSize], nil
}

// PutBuffer returns a buffer to the pool. A nil buffer is a no-op.
// A buffer whose first byte does not address a slot boundary, or whose
// slot is already free, yields ErrUnrecognizedHandle.
func (p *ByteSlotPool) PutBuffer(buf []byte) error {
	if buf == nil {
		return nil
	}
	if len(buf) == 0 {
		return api.ErrUnrecognizedHandle
	}
	for i := 0; i < p.Cap(); i++ {
		if &buf[0] != &p.storage[i*p.slotSize] {
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

// Size returns the number of free buffers.
func (p *ByteSlotPool) Size() int {
	return p.freeCnt
}

// Cap returns the total number of buffers.
func (p *ByteSlotPool) Cap() int {
	return len(p.storage) / p.slotSize
}

// SlotSize returns the fixed buffer size in bytes.
func (p *ByteSlotPool) SlotSize() int {
	return p.slotSize
}
