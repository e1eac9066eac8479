// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package ranges provides half-open, closed and one-sided intervals
// over any ordered type, with a uniform resolution contract: every
// shape can resolve itself against an indexed collection into a
// concrete half-open range of positions.
//
// Constructors panic on inverted bounds; emptiness is representable
// only by the half-open shape.
package ranges

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Indexed is the minimal view of an ordered collection needed to
// resolve a range expression: the first and one-past-last positions
// and the position following a given one. Element contents are never
// inspected.
type Indexed[T constraints.Ordered] interface {
	StartIndex() T
	EndIndex() T
	IndexAfter(T) T
}

// Expression is any range shape resolvable to a concrete half-open
// range of positions in a collection. Contains must agree with the
// resolved range for every position inside the collection.
type Expression[T constraints.Ordered] interface {
	Contains(T) bool
	Relative(Indexed[T]) Range[T]
}

var (
	_ Expression[int] = Range[int]{}
	_ Expression[int] = ClosedRange[int]{}
	_ Expression[int] = FromRange[int]{}
	_ Expression[int] = UpToRange[int]{}
	_ Expression[int] = ThroughRange[int]{}
)

// Range is a half-open interval [Lo, Hi). It is empty iff Lo == Hi.
type Range[T constraints.Ordered] struct {
	lo, hi T
}

// New returns the half-open range [lo, hi). It panics if lo > hi.
func New[T constraints.Ordered](lo, hi T) Range[T] {
	if lo > hi {
		panic(fmt.Sprintf("ranges: inverted bounds [%v, %v)", lo, hi))
	}
	return Range[T]{lo: lo, hi: hi}
}

// Lo returns the inclusive lower bound.
func (r Range[T]) Lo() T { return r.lo }

// Hi returns the exclusive upper bound.
func (r Range[T]) Hi() T { return r.hi }

// Empty reports whether the range contains no values.
func (r Range[T]) Empty() bool { return r.lo == r.hi }

// Contains reports lo <= v < hi.
func (r Range[T]) Contains(v T) bool { return r.lo <= v && v < r.hi }

// Relative returns r itself: a half-open range is already concrete.
func (r Range[T]) Relative(Indexed[T]) Range[T] { return r }

// Overlaps reports whether the two ranges share at least one value.
// For convex intervals it is enough that one range contains the
// other's lower bound.
func (r Range[T]) Overlaps(o Range[T]) bool {
	return (!o.Empty() && r.Contains(o.lo)) || (!r.Empty() && o.Contains(r.lo))
}

// OverlapsClosed reports whether r shares at least one value with a
// closed range.
func (r Range[T]) OverlapsClosed(o ClosedRange[T]) bool {
	return r.Contains(o.lo) || (!r.Empty() && o.Contains(r.lo))
}

// Clamped limits both bounds of r to limits, leaving bounds already
// inside untouched.
func (r Range[T]) Clamped(limits Range[T]) Range[T] {
	return Range[T]{
		lo: clamp(r.lo, limits.lo, limits.hi),
		hi: clamp(r.hi, limits.lo, limits.hi),
	}
}

func (r Range[T]) String() string { return fmt.Sprintf("[%v, %v)", r.lo, r.hi) }

// ClosedRange is a closed interval [Lo, Hi]. It is never empty: a
// single-point range has Lo == Hi.
type ClosedRange[T constraints.Ordered] struct {
	lo, hi T
}

// Closed returns the closed range [lo, hi]. It panics if lo > hi.
func Closed[T constraints.Ordered](lo, hi T) ClosedRange[T] {
	if lo > hi {
		panic(fmt.Sprintf("ranges: inverted bounds [%v, %v]", lo, hi))
	}
	return ClosedRange[T]{lo: lo, hi: hi}
}

// Lo returns the inclusive lower bound.
func (r ClosedRange[T]) Lo() T { return r.lo }

// Hi returns the inclusive upper bound.
func (r ClosedRange[T]) Hi() T { return r.hi }

// Contains reports lo <= v <= hi.
func (r ClosedRange[T]) Contains(v T) bool { return r.lo <= v && v <= r.hi }

// Relative resolves r to the half-open [lo, indexAfter(hi)). The upper
// position is requested from the collection because hi may be its last
// valid position.
func (r ClosedRange[T]) Relative(c Indexed[T]) Range[T] {
	return Range[T]{lo: r.lo, hi: c.IndexAfter(r.hi)}
}

// Overlaps reports whether the two closed ranges share at least one
// value.
func (r ClosedRange[T]) Overlaps(o ClosedRange[T]) bool {
	return r.Contains(o.lo) || o.Contains(r.lo)
}

// OverlapsRange reports whether r shares at least one value with a
// half-open range.
func (r ClosedRange[T]) OverlapsRange(o Range[T]) bool {
	return o.OverlapsClosed(r)
}

// Clamped limits both bounds of r to limits, leaving bounds already
// inside untouched.
func (r ClosedRange[T]) Clamped(limits ClosedRange[T]) ClosedRange[T] {
	return ClosedRange[T]{
		lo: clamp(r.lo, limits.lo, limits.hi),
		hi: clamp(r.hi, limits.lo, limits.hi),
	}
}

func (r ClosedRange[T]) String() string { return fmt.Sprintf("[%v, %v]", r.lo, r.hi) }

// FromRange is the one-sided interval [Lo, ∞).
type FromRange[T constraints.Ordered] struct {
	lo T
}

// From returns the interval of everything at or above lo.
func From[T constraints.Ordered](lo T) FromRange[T] { return FromRange[T]{lo: lo} }

// Lo returns the inclusive lower bound.
func (r FromRange[T]) Lo() T { return r.lo }

// Contains reports lo <= v.
func (r FromRange[T]) Contains(v T) bool { return r.lo <= v }

// Relative resolves r to [lo, endIndex).
func (r FromRange[T]) Relative(c Indexed[T]) Range[T] {
	return Range[T]{lo: r.lo, hi: c.EndIndex()}
}

func (r FromRange[T]) String() string { return fmt.Sprintf("[%v, ...)", r.lo) }

// UpToRange is the one-sided interval (-∞, Hi).
type UpToRange[T constraints.Ordered] struct {
	hi T
}

// UpTo returns the interval of everything strictly below hi.
func UpTo[T constraints.Ordered](hi T) UpToRange[T] { return UpToRange[T]{hi: hi} }

// Hi returns the exclusive upper bound.
func (r UpToRange[T]) Hi() T { return r.hi }

// Contains reports v < hi.
func (r UpToRange[T]) Contains(v T) bool { return v < r.hi }

// Relative resolves r to [startIndex, hi).
func (r UpToRange[T]) Relative(c Indexed[T]) Range[T] {
	return Range[T]{lo: c.StartIndex(), hi: r.hi}
}

func (r UpToRange[T]) String() string { return fmt.Sprintf("(..., %v)", r.hi) }

// ThroughRange is the one-sided interval (-∞, Hi].
type ThroughRange[T constraints.Ordered] struct {
	hi T
}

// Through returns the interval of everything at or below hi.
func Through[T constraints.Ordered](hi T) ThroughRange[T] { return ThroughRange[T]{hi: hi} }

// Hi returns the inclusive upper bound.
func (r ThroughRange[T]) Hi() T { return r.hi }

// Contains reports v <= hi.
func (r ThroughRange[T]) Contains(v T) bool { return v <= r.hi }

// Relative resolves r to [startIndex, indexAfter(hi)).
func (r ThroughRange[T]) Relative(c Indexed[T]) Range[T] {
	return Range[T]{lo: c.StartIndex(), hi: c.IndexAfter(r.hi)}
}

func (r ThroughRange[T]) String() string { return fmt.Sprintf("(..., %v]", r.hi) }

func clamp[T constraints.Ordered](v, lo, hi T) T {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
