// File: mem/mem_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux backing storage via anonymous mmap. Mappings are page-aligned
// and invisible to the garbage collector, which keeps ring hot paths
// off the Go heap entirely.

package mem

import "golang.org/x/sys/unix"

// allocPlatform maps whole pages and hands back the requested prefix.
// The slice capacity keeps the full mapping size for freePlatform.
func allocPlatform(n int) ([]byte, error) {
	pageSize := unix.Getpagesize()
	mapped := ((n + pageSize - 1) / pageSize) * pageSize
	b, err := unix.Mmap(-1, 0, mapped,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return b[:n], nil
}

// freePlatform unmaps the full pages behind the slice.
func freePlatform(b []byte) error {
	return unix.Munmap(b[:cap(b)])
}
