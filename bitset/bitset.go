// File: bitset/bitset.go
// Package bitset implements a bounded bitset for slot bookkeeping.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// BitSet tracks one flag per storage slot without dynamic memory after
// construction. The boundary policy is absorbing rather than reporting:
// a caller probing past the capacity gets false, a caller mutating past
// the capacity mutates nothing. Pools rely on this to keep their slot
// scans branch-free.

package bitset

import (
	bbits "github.com/bits-and-blooms/bitset"

	"github.com/momentics/hioload-mem/api"
)

// Ensure compile-time interface compliance.
var _ api.BitSet = (*BitSet)(nil)

// BitSet is a set of exactly n flags, fixed at construction.
type BitSet struct {
	n    uint
	bits *bbits.BitSet
}

// New creates a BitSet of capacity n with all bits clear.
func New(n int) *BitSet {
	if n < 0 {
		n = 0
	}
	return &BitSet{
		n:    uint(n),
		bits: bbits.New(uint(n)),
	}
}

// Test reports whether bit i is set; false for any i outside [0, n).
func (b *BitSet) Test(i int) bool {
	if i < 0 || uint(i) >= b.n {
		return false
	}
	return b.bits.Test(uint(i))
}

// Set sets bit i. Out-of-range indices are absorbed, never reported;
// the bounds check also keeps the backing set from auto-growing.
func (b *BitSet) Set(i int) {
	if i < 0 || uint(i) >= b.n {
		return
	}
	b.bits.Set(uint(i))
}

// Clear clears bit i. Out-of-range indices are absorbed.
func (b *BitSet) Clear(i int) {
	if i < 0 || uint(i) >= b.n {
		return
	}
	b.bits.Clear(uint(i))
}

// SetAll sets every bit in [0, n).
func (b *BitSet) SetAll() {
	for i := uint(0); i < b.n; i++ {
		b.bits.Set(i)
	}
}

// ClearAll clears every bit.
func (b *BitSet) ClearAll() {
	b.bits.ClearAll()
}

// NextSet returns the index of the lowest set bit at or above from,
// and whether one exists.
func (b *BitSet) NextSet(from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	if uint(from) >= b.n {
		return 0, false
	}
	i, ok := b.bits.NextSet(uint(from))
	if !ok || i >= b.n {
		return 0, false
	}
	return int(i), true
}

// Count returns the number of set bits.
func (b *BitSet) Count() int {
	return int(b.bits.Count())
}

// Len returns the fixed capacity in bits.
func (b *BitSet) Len() int {
	return int(b.n)
}

// None reports whether no bit is set.
func (b *BitSet) None() bool {
	return b.bits.None()
}
