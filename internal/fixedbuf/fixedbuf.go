// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fixedbuf provides a small fixed-capacity inline buffer.
// It never allocates: values live in a 16-element array next to a
// length counter, and every accessor is bounds-checked.
package fixedbuf

import "fmt"

// Cap is the inline capacity of a Buf.
const Cap = 16

// Buf is a fixed-capacity buffer of up to Cap elements.
// The zero value is an empty buffer ready to use.
type Buf[T any] struct {
	n     int
	items [Cap]T
}

// Len returns the number of stored elements.
func (b *Buf[T]) Len() int {
	return b.n
}

// Append adds v at the end. It panics when the buffer is full.
func (b *Buf[T]) Append(v T) {
	if b.n == Cap {
		panic("fixedbuf: append to a full buffer")
	}
	b.items[b.n] = v
	b.n++
}

// At returns the i-th element. It panics if i is out of bounds.
func (b *Buf[T]) At(i int) T {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("fixedbuf: index %d out of range [0, %d)", i, b.n))
	}
	return b.items[i]
}

// Set replaces the i-th element. It panics if i is out of bounds.
func (b *Buf[T]) Set(i int, v T) {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("fixedbuf: index %d out of range [0, %d)", i, b.n))
	}
	b.items[i] = v
}

// Slice returns the stored elements backed by the buffer's own array.
func (b *Buf[T]) Slice() []T {
	return b.items[:b.n]
}
