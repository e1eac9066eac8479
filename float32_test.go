// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func randBits32(r *rand.Rand) Float32 {
	return Float32FromBits(uint32(r.Uint64()))
}

func randFloat32(r *rand.Rand) float32 {
	for {
		f := randBits32(r)
		if !f.IsNaN() {
			return f.Float32()
		}
	}
}

func TestFloat32ArithVsNative(t *testing.T) {
	ops := []struct {
		name   string
		op     func(a, b Float32) Float32
		native func(x, y float32) float32
	}{
		{"add", Float32.Add, func(x, y float32) float32 { return x + y }},
		{"sub", Float32.Sub, func(x, y float32) float32 { return x - y }},
		{"mul", Float32.Mul, func(x, y float32) float32 { return x * y }},
		{"div", Float32.Div, func(x, y float32) float32 { return x / y }},
		{"mod", Float32.Mod, func(x, y float32) float32 {
			return float32(math.Mod(float64(x), float64(y)))
		}},
	}
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			r := rand.New(rand.NewSource(23))
			for i := 0; i < 30000; i++ {
				x, y := randFloat32(r), randFloat32(r)
				got := op.op(FromFloat32(x), FromFloat32(y))
				want := op.native(x, y)
				if math.IsNaN(float64(want)) {
					if !got.IsNaN() {
						t.Fatalf("%s(%g, %g): got %#v, want NaN", op.name, x, y, got)
					}
					continue
				}
				if got != FromFloat32(want) {
					t.Fatalf("%s(%g, %g): got %#v, want %#v", op.name, x, y, got, FromFloat32(want))
				}
			}
		})
	}
}

func TestFloat32FromIntExact(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v    int64
		want Float32
		ok   bool
	}{
		{0, FromFloat32(0), true},
		{1, FromFloat32(1), true},
		{-1, FromFloat32(-1), true},
		// 2^24 is the last exactly representable integer run.
		{1 << 24, FromFloat32(1 << 24), true},
		{1<<24 + 1, FromFloat32(1 << 24), false},
		{1<<24 + 2, FromFloat32(1<<24 + 2), true},
		{-(1<<24 + 1), FromFloat32(-(1 << 24)), false},
		{math.MaxInt64, FromFloat32(math.MaxInt64), false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			got, ok := Float32FromIntExact(test.v)
			a.Equal(test.want, got)
			a.Equal(test.ok, ok)
			a.Equal(test.want, Float32FromInt(test.v))
		})
	}
	// Works for any integer type.
	v8, ok := Float32FromIntExact(int8(-5))
	a.True(ok)
	a.Equal(FromFloat32(-5), v8)
	vu, ok := Float32FromIntExact(uint64(1) << 63)
	a.True(ok)
	a.Equal(FromFloat32(0x1p63), vu)
}

func TestFloat32Predicates(t *testing.T) {
	a := assert.New(t)
	a.True(SmallestNonzero32.IsSubnormal())
	a.False(SmallestNonzero32.IsNormal())
	a.True(MinNormal32.IsNormal())
	a.True(Max32.NextUp().IsInf(1))
	a.True(FromFloat32(float32(math.Inf(-1))).IsInf(-1))
	a.False(Inf32(true).IsInf(1))
	a.True(Inf32(true).IsInf(0))
	a.True(FromFloat32(0).IsZero())
	a.True(FromFloat32(0).Neg().IsZero())
	a.True(FromFloat32(0).Neg().Signbit())
	a.True(NaN32().IsNaN())
	a.False(NaN32().IsSignalingNaN())
	a.True(NaN32Payload(3, true).IsSignalingNaN())
	a.Panics(func() { NaN32Payload(1<<21, false) })
}

func TestFloat32RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(29))
	for i := 0; i < 10000; i++ {
		f := randBits32(r)
		if got := Float32FromParts(f.Parts()); got != f {
			t.Fatalf("parts of %#v -> %#v", f, got)
		}
		if got := FromFloat32(f.Float32()); got != f && !f.IsNaN() {
			t.Fatalf("native of %#v -> %#v", f, got)
		}
	}
}

func TestFloat32Round(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v    float32
		mode RoundingMode
		want float32
	}{
		{2.5, ToNearestEven, 2},
		{2.5, ToNearestAway, 3},
		{2.5, TowardZero, 2},
		{-2.5, AwayFromZero, -3},
		{-2.5, Down, -3},
		{-2.5, Up, -2},
		{0.5, ToNearestEven, 0},
		{1.5, ToNearestEven, 2},
		{-0.25, Up, float32(math.Copysign(0, -1))},
		{1 << 24, ToNearestAway, 1 << 24},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(FromFloat32(test.want), FromFloat32(test.v).Round(test.mode))
		})
	}
}

func TestFloat32Exponent(t *testing.T) {
	a := assert.New(t)
	a.Equal(4, FromFloat32(31).Exponent())
	a.Equal(-149, SmallestNonzero32.Exponent())
	a.Equal(FromFloat32(1.9375), FromFloat32(31).Significand())
	a.Equal(FromFloat32(31), Compose32(false, 4, FromFloat32(1.9375)))
}
