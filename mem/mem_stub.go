//go:build !linux
// +build !linux

// File: mem/mem_stub.go
// Author: momentics <momentics@gmail.com>
//
// Heap fallback for platforms without the mmap path.

package mem

// allocPlatform allocates from the Go heap.
func allocPlatform(n int) ([]byte, error) {
	return make([]byte, n), nil
}

// freePlatform leaves reclamation to the garbage collector.
func freePlatform(_ []byte) error {
	return nil
}
