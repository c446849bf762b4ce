// File: ring/registry.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Registry owns a bounded table of rings and issues stable
// descriptors. The table index counter only ever grows; there is no
// unregister, so a descriptor stays valid for the registry lifetime.
// Each Registry is an explicit value, letting applications run several
// independent tables and letting tests stay hermetic.

package ring

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-mem/api"
)

// DefaultCapacity is the registry table size used when the caller
// passes a non-positive capacity.
const DefaultCapacity = 16

// Registry is a fixed-capacity table of rings. Init may be called from
// several goroutines during startup; Put and Get stay lock-free.
type Registry struct {
	mu    sync.Mutex
	table []*Ring
	next  uint32 // monotonic count of registered rings
}

// NewRegistry creates a registry for at most capacity rings.
func NewRegistry(capacity int) *Registry {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Registry{table: make([]*Ring, capacity)}
}

// Init validates attr, registers a new ring, and returns its
// descriptor. On any failure no existing entry is touched.
func (g *Registry) Init(attr Attr) (Descriptor, error) {
	r, err := newRing(attr)
	if err != nil {
		return 0, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	idx := g.next
	if int(idx) >= len(g.table) {
		return 0, api.ErrRegistryExhausted
	}
	g.table[idx] = r
	// Publish after the slot is written so concurrent lookups never
	// see a descriptor ahead of its ring.
	atomic.AddUint32(&g.next, 1)
	return Descriptor(idx), nil
}

// lookup bounds-checks d against the issued range.
func (g *Registry) lookup(d Descriptor) (*Ring, error) {
	if uint32(d) >= atomic.LoadUint32(&g.next) {
		return nil, api.ErrUnrecognizedHandle
	}
	return g.table[d], nil
}

// Put copies one element into ring d. Producer context only.
func (g *Registry) Put(d Descriptor, elem []byte) error {
	r, err := g.lookup(d)
	if err != nil {
		return err
	}
	return r.put(elem)
}

// Get copies the oldest element out of ring d. Consumer context only.
func (g *Registry) Get(d Descriptor, out []byte) error {
	r, err := g.lookup(d)
	if err != nil {
		return err
	}
	return r.get(out)
}

// Producer returns the write half of ring d.
func (g *Registry) Producer(d Descriptor) (*Producer, error) {
	r, err := g.lookup(d)
	if err != nil {
		return nil, err
	}
	return r.Producer(), nil
}

// Consumer returns the read half of ring d.
func (g *Registry) Consumer(d Descriptor) (*Consumer, error) {
	r, err := g.lookup(d)
	if err != nil {
		return nil, err
	}
	return r.Consumer(), nil
}

// Ring returns the observer surface of ring d.
func (g *Registry) Ring(d Descriptor) (api.Ring, error) {
	return g.lookup(d)
}

// Size returns the number of registered rings.
func (g *Registry) Size() int {
	return int(atomic.LoadUint32(&g.next))
}

// Cap returns the registry table capacity.
func (g *Registry) Cap() int {
	return len(g.table)
}
