// File: mem/mem.go
// Package mem provisions backing storage for rings and pools.
// Author: momentics <momentics@gmail.com>
//
// Rings borrow their buffers and never allocate; something has to own
// that memory. Alloc returns page-aligned storage mapped outside the
// Go heap on Linux, with a plain heap fallback elsewhere. The caller
// owns the result and releases it with Free after the last borrower is
// done.

package mem

import "github.com/momentics/hioload-mem/api"

// Alloc returns a zeroed buffer of exactly n bytes, page-aligned where
// the platform supports it.
func Alloc(n int) ([]byte, error) {
	if n < 1 {
		return nil, api.ErrInvalidArgument
	}
	return allocPlatform(n)
}

// Free releases a buffer obtained from Alloc. Pass the slice exactly
// as Alloc returned it. nil is a no-op.
func Free(b []byte) error {
	if b == nil {
		return nil
	}
	return freePlatform(b)
}
