// Package ring
// Author: momentics <momentics@gmail.com>
//
// Lock-free single-producer/single-consumer byte rings over
// caller-owned backing storage, plus a bounded registry that hands out
// stable descriptors. Head and tail are free-running unsigned counters;
// only their difference carries meaning, so wraparound is benign.
// See ring.go and registry.go for implementation details.
package ring
