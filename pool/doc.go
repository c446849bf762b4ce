// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity allocation for hioload-mem.
// Implements bitmap-tracked object and byte-slot pools with bounded
// memory, zero heap use after construction, and deterministic
// lowest-index allocation order.
// See fixedpool.go and byteslots.go for implementation details.
package pool
