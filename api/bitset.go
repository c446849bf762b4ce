// File: api/bitset.go
// Author: momentics <momentics@gmail.com>

package api

// BitSet is a fixed-capacity set of boolean flags with an absorbing
// boundary policy: out-of-range indices are never an error. Test
// returns false for them; Set and Clear ignore them.
type BitSet interface {
	// Test reports whether bit i is set; false when i is out of range.
	Test(i int) bool

	// Set sets bit i; out-of-range i is silently ignored.
	Set(i int)

	// Clear clears bit i; out-of-range i is silently ignored.
	Clear(i int)

	// Count returns the number of set bits.
	Count() int

	// Len returns the fixed capacity in bits.
	Len() int
}
