// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// registry_test.go — Registry lifecycle and exhaustion tests.
package ring_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/ring"
)

// TestRegistry_ExhaustionLeavesEntriesIntact fills the table, verifies
// the next Init fails, and checks every earlier descriptor still works
// with its own backing buffer.
func TestRegistry_ExhaustionLeavesEntriesIntact(t *testing.T) {
	const max = 3
	reg := ring.NewRegistry(max)
	if reg.Cap() != max {
		t.Fatalf("Cap = %d", reg.Cap())
	}

	descs := make([]ring.Descriptor, max)
	for i := range descs {
		d, err := reg.Init(ring.Attr{ElemSize: 1, ElemCount: 4, Buffer: make([]byte, 4)})
		if err != nil {
			t.Fatalf("Init %d: %v", i, err)
		}
		descs[i] = d
		if err := reg.Put(d, []byte{byte('0' + i)}); err != nil {
			t.Fatalf("Put %d: %v", i, err)
		}
	}
	if reg.Size() != max {
		t.Errorf("Size = %d, want %d", reg.Size(), max)
	}

	_, err := reg.Init(ring.Attr{ElemSize: 1, ElemCount: 4, Buffer: make([]byte, 4)})
	if !errors.Is(err, api.ErrRegistryExhausted) {
		t.Errorf("Init on full registry: %v, want ErrRegistryExhausted", err)
	}
	if reg.Size() != max {
		t.Errorf("failed Init changed Size to %d", reg.Size())
	}

	out := make([]byte, 1)
	for i, d := range descs {
		if err := reg.Get(d, out); err != nil {
			t.Fatalf("Get %d after exhaustion: %v", i, err)
		}
		if out[0] != byte('0'+i) {
			t.Errorf("ring %d returned %q", i, out[0])
		}
	}
}

// TestRegistry_FailedInitBurnsNoSlot checks a rejected attr does not
// consume table capacity.
func TestRegistry_FailedInitBurnsNoSlot(t *testing.T) {
	reg := ring.NewRegistry(1)
	if _, err := reg.Init(ring.Attr{ElemSize: 1, ElemCount: 3, Buffer: make([]byte, 3)}); err == nil {
		t.Fatal("Init accepted count=3")
	}
	if reg.Size() != 0 {
		t.Fatalf("failed Init consumed a slot: Size=%d", reg.Size())
	}
	if _, err := reg.Init(ring.Attr{ElemSize: 1, ElemCount: 4, Buffer: make([]byte, 4)}); err != nil {
		t.Errorf("Init after rejection: %v", err)
	}
}

// TestRegistry_DefaultCapacity applies DefaultCapacity for
// non-positive sizes.
func TestRegistry_DefaultCapacity(t *testing.T) {
	for _, c := range []int{0, -5} {
		reg := ring.NewRegistry(c)
		if reg.Cap() != ring.DefaultCapacity {
			t.Errorf("NewRegistry(%d).Cap() = %d, want %d", c, reg.Cap(), ring.DefaultCapacity)
		}
	}
}

// TestRegistry_ConcurrentInit registers channels from several startup
// goroutines and checks every issued descriptor is distinct and usable.
func TestRegistry_ConcurrentInit(t *testing.T) {
	const workers = 8
	reg := ring.NewRegistry(workers)
	var wg sync.WaitGroup
	descs := make([]ring.Descriptor, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			d, err := reg.Init(ring.Attr{ElemSize: 1, ElemCount: 2, Buffer: make([]byte, 2)})
			if err != nil {
				t.Errorf("Init: %v", err)
				return
			}
			descs[w] = d
			if err := reg.Put(d, []byte{byte(w)}); err != nil {
				t.Errorf("Put: %v", err)
			}
		}(w)
	}
	wg.Wait()

	seen := make(map[ring.Descriptor]struct{})
	for _, d := range descs {
		if _, dup := seen[d]; dup {
			t.Fatalf("duplicate descriptor %d", d)
		}
		seen[d] = struct{}{}
	}
	if reg.Size() != workers {
		t.Errorf("Size = %d, want %d", reg.Size(), workers)
	}
}
