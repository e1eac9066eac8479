// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ranges

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// Count is the number of values in an integer half-open range.
func Count[T constraints.Integer](r Range[T]) uint64 {
	return uint64(r.hi) - uint64(r.lo)
}

// CountClosed is the number of values in an integer closed range.
// A closed range over a full 64-bit domain holds 2^64 values, one more
// than uint64 can report; that single case panics.
func CountClosed[T constraints.Integer](r ClosedRange[T]) uint64 {
	n := uint64(r.hi) - uint64(r.lo) + 1
	if n == 0 {
		panic("ranges: count overflows uint64")
	}
	return n
}

// ToClosed converts [lo, hi) to [lo, hi-1]. It panics if r is empty,
// since a closed range cannot represent emptiness.
func ToClosed[T constraints.Integer](r Range[T]) ClosedRange[T] {
	if r.Empty() {
		panic(fmt.Sprintf("ranges: %v has no closed equivalent", r))
	}
	return ClosedRange[T]{lo: r.lo, hi: r.hi - 1}
}

// ToHalfOpen converts [lo, hi] to [lo, hi+1). It panics if hi is the
// maximum value of T.
func ToHalfOpen[T constraints.Integer](r ClosedRange[T]) Range[T] {
	hi := r.hi + 1
	if hi < r.hi {
		panic(fmt.Sprintf("ranges: %v has no half-open equivalent", r))
	}
	return Range[T]{lo: r.lo, hi: hi}
}

// All yields the values of an integer half-open range in order.
func All[T constraints.Integer](r Range[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := r.lo; v < r.hi; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// AllClosed yields the values of an integer closed range in order.
// The upper bound may be the maximum value of T.
func AllClosed[T constraints.Integer](r ClosedRange[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := r.lo; ; v++ {
			if !yield(v) {
				return
			}
			if v == r.hi {
				return
			}
		}
	}
}

// Stepper walks a FromRange upwards one value at a time, with no upper
// termination: the caller supplies the stopping condition. A Stepper is
// not restartable; build a fresh one to walk again.
type Stepper[T constraints.Integer] struct {
	next     T
	overflow bool
}

// NewStepper returns a walker over r starting at its lower bound.
func NewStepper[T constraints.Integer](r FromRange[T]) *Stepper[T] {
	return &Stepper[T]{next: r.lo}
}

// Next returns the current value and advances by one. Advancing past
// the maximum value of T is a fatal condition: the call after the one
// returning the maximum panics instead of wrapping around.
func (s *Stepper[T]) Next() T {
	if s.overflow {
		panic("ranges: stepped past the maximum value")
	}
	v := s.next
	s.next = v + 1
	if s.next < v {
		s.overflow = true
	}
	return v
}
