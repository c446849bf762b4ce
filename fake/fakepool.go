// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"math"

	"github.com/momentics/hioload-mem/api"
)

// Pool is a trivial heap-backed stub satisfying api.Pool for testing.
// It never runs out and never recognizes a bad free.
type Pool[T any] struct{}

func (f *Pool[T]) Alloc() (*T, error) { return new(T), nil }
func (f *Pool[T]) Free(_ *T) error    { return nil }
func (f *Pool[T]) Size() int          { return math.MaxInt }
func (f *Pool[T]) Cap() int           { return math.MaxInt }

var _ api.Pool[int] = (*Pool[int])(nil)
