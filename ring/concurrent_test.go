// Copyright 2025 momentics@gmail.com
// License: Apache 2.0

// concurrent_test.go — One producer goroutine, one consumer goroutine,
// no coordination beyond the ring itself.
package ring_test

import (
	"runtime"
	"testing"

	"github.com/momentics/hioload-mem/ring"
)

// TestRing_SPSCConcurrent streams a monotone sequence through a small
// ring under real concurrency and requires exact FIFO delivery.
func TestRing_SPSCConcurrent(t *testing.T) {
	const total = 200000
	const capacity = 32

	reg := ring.NewRegistry(1)
	d, err := reg.Init(ring.Attr{ElemSize: 4, ElemCount: capacity, Buffer: make([]byte, 4*capacity)})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	w, _ := reg.Producer(d)
	r, _ := reg.Consumer(d)
	rb, _ := reg.Ring(d)

	done := make(chan struct{})
	go func() {
		defer close(done)
		elem := make([]byte, 4)
		for i := uint32(0); i < total; i++ {
			elem[0] = byte(i)
			elem[1] = byte(i >> 8)
			elem[2] = byte(i >> 16)
			elem[3] = byte(i >> 24)
			for w.Put(elem) != nil {
				runtime.Gosched()
			}
		}
	}()

	out := make([]byte, 4)
	for i := uint32(0); i < total; i++ {
		for r.Get(out) != nil {
			runtime.Gosched()
		}
		got := uint32(out[0]) | uint32(out[1])<<8 | uint32(out[2])<<16 | uint32(out[3])<<24
		if got != i {
			t.Fatalf("element %d: got %d (lost/duplicated/reordered)", i, got)
		}
		if n := rb.Len(); n < 0 || n > capacity {
			t.Fatalf("occupancy out of bounds: %d", n)
		}
	}
	<-done

	if !rb.Empty() {
		t.Errorf("ring not empty after drain: Len=%d", rb.Len())
	}
}

// TestRing_SPSCConcurrentBytes repeats the stream with 1-byte elements,
// the UART receive shape, and a modulo-256 expected sequence.
func TestRing_SPSCConcurrentBytes(t *testing.T) {
	const total = 100000

	reg := ring.NewRegistry(1)
	d, err := reg.Init(ring.Attr{ElemSize: 1, ElemCount: 8, Buffer: make([]byte, 8)})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	w, _ := reg.Producer(d)
	r, _ := reg.Consumer(d)

	go func() {
		for i := 0; i < total; i++ {
			for w.Put([]byte{byte(i)}) != nil {
				runtime.Gosched()
			}
		}
	}()

	out := make([]byte, 1)
	for i := 0; i < total; i++ {
		for r.Get(out) != nil {
			runtime.Gosched()
		}
		if out[0] != byte(i) {
			t.Fatalf("element %d: got %d", i, out[0])
		}
	}
}
