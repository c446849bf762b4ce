// File: facade/hioload.go
// Unified facade layer for hioload-mem library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the HioloadMem struct, which aggregates the ring
// registry and its backing storage behind a single facade. It
// provisions one buffer and one ring per configured channel from
// immutable configuration, and exposes the registry, per-channel
// descriptors, and teardown of the owned memory.

package facade

import (
	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/mem"
	"github.com/momentics/hioload-mem/ring"
)

// Config holds parameters immutable per run.
type Config struct {
	RegistryCapacity int  // Maximum number of rings in the registry
	Channels         int  // Number of rings provisioned up front
	ElemSize         int  // Element size in bytes for each channel
	ElemCount        int  // Element count per channel, a power of two
	UseMappedMemory  bool // Whether to back channels with page-aligned mappings
}

// DefaultConfig returns default configuration values.
// These sane defaults support typical use cases without extensive tuning.
func DefaultConfig() *Config {
	return &Config{
		RegistryCapacity: ring.DefaultCapacity,
		Channels:         1,    // One SPSC channel
		ElemSize:         1,    // Byte stream, the UART shape
		ElemCount:        1024, // 1024 elements per ring
		UseMappedMemory:  true, // Page-aligned backing where supported
	}
}

// HioloadMem is the main facade type. It owns the backing buffers it
// provisioned and releases them on Close; the rings themselves follow
// the registry and are never destroyed individually.
type HioloadMem struct {
	cfg      *Config
	registry *ring.Registry
	descs    []ring.Descriptor
	buffers  [][]byte
	closed   bool
}

// New builds a registry plus one backed ring per configured channel.
// On any failure, already-provisioned buffers are released and nothing
// is returned.
func New(cfg *Config) (*HioloadMem, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Channels < 1 || cfg.Channels > cfg.registryCapacity() {
		return nil, api.ErrInvalidArgument
	}

	h := &HioloadMem{
		cfg:      cfg,
		registry: ring.NewRegistry(cfg.registryCapacity()),
	}
	for i := 0; i < cfg.Channels; i++ {
		buf, err := h.provision(cfg.ElemSize * cfg.ElemCount)
		if err != nil {
			h.release()
			return nil, err
		}
		h.buffers = append(h.buffers, buf)
		d, err := h.registry.Init(ring.Attr{
			ElemSize:  cfg.ElemSize,
			ElemCount: cfg.ElemCount,
			Buffer:    buf,
		})
		if err != nil {
			h.release()
			return nil, err
		}
		h.descs = append(h.descs, d)
	}
	return h, nil
}

func (cfg *Config) registryCapacity() int {
	if cfg.RegistryCapacity < 1 {
		return ring.DefaultCapacity
	}
	return cfg.RegistryCapacity
}

func (h *HioloadMem) provision(n int) ([]byte, error) {
	if n < 1 {
		return nil, api.ErrInvalidArgument
	}
	if h.cfg.UseMappedMemory {
		return mem.Alloc(n)
	}
	return make([]byte, n), nil
}

func (h *HioloadMem) release() {
	if h.cfg.UseMappedMemory {
		for _, buf := range h.buffers {
			mem.Free(buf)
		}
	}
	h.buffers = nil
}

// Registry returns the underlying ring registry. Applications that
// register additional channels supply their own backing memory.
func (h *HioloadMem) Registry() *ring.Registry {
	return h.registry
}

// Channel returns the descriptor of provisioned channel i.
func (h *HioloadMem) Channel(i int) (ring.Descriptor, error) {
	if i < 0 || i >= len(h.descs) {
		return 0, api.ErrUnrecognizedHandle
	}
	return h.descs[i], nil
}

// Channels returns the number of provisioned channels.
func (h *HioloadMem) Channels() int {
	return len(h.descs)
}

// Close releases the facade-owned backing memory. Every descriptor and
// handle issued through this facade is invalid afterwards; callers
// stop both sides of every channel first.
func (h *HioloadMem) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	h.release()
	return nil
}
