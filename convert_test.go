// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWiden(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(41))
	for i := 0; i < 20000; i++ {
		f := randBits32(r)
		if f.IsNaN() {
			continue
		}
		// Widening is exact and narrows back to the same pattern.
		w, ok := f.To64Exact()
		a.True(ok)
		a.Equal(FromFloat64(float64(f.Float32())), w)
		a.Equal(f, w.To32())
		e, ok := f.To80Exact()
		a.True(ok)
		a.Equal(f, e.To32())
		a.Equal(w, e.To64())
	}
	// Exact widening refuses NaNs.
	_, ok := NaN32().To64Exact()
	a.False(ok)
	_, ok = NaN64().To80Exact()
	a.False(ok)
}

func TestNarrow(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f    Float64
		want Float32
		ok   bool
	}{
		{FromFloat64(0.5), FromFloat32(0.5), true},
		{FromFloat64(math.Copysign(0, -1)), FromFloat32(0).Neg(), true},
		{FromFloat64(0.1), FromFloat32(0.1), false},
		{Max64, Inf32(false), false},
		{FromFloat64(0x1p-1074), FromFloat32(0), false},
		{Inf64(true), Inf32(true), true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			got, ok := test.f.To32Exact()
			a.Equal(test.want, got)
			a.Equal(test.ok, ok)
			a.Equal(test.want, test.f.To32())
		})
	}
	r := rand.New(rand.NewSource(43))
	for i := 0; i < 20000; i++ {
		f := randBits64(r)
		if f.IsNaN() {
			continue
		}
		if got, want := f.To32(), FromFloat32(float32(f.Float64())); got != want {
			t.Fatalf("narrow %#v: got %#v, want %#v", f, got, want)
		}
		if got, want := f.To80().To64(), f; got != want {
			t.Fatalf("through extended %#v: got %#v", f, got)
		}
	}
}

func TestNaNPayloadAcrossWidths(t *testing.T) {
	a := assert.New(t)
	// The payload rides the top of the significand field, hardware style.
	n := NaN32Payload(5, false)
	a.Equal(NaN64Payload(5<<29, false), n.To64())
	a.Equal(n, n.To64().To32())
	s := NaN64Payload(3, true)
	w := s.To80()
	a.True(w.IsSignalingNaN())
	a.Equal(NaN80Payload(3<<11, true), w)
	// A signaling payload narrowed out of existence turns quiet rather
	// than decaying into an infinity.
	a.Equal(NaN32(), NaN64Payload(1, true).To32())
}

func TestIntExtraction(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f    Float64
		i    int64
		iok  bool
		u    uint64
		uok  bool
	}{
		{FromFloat64(0), 0, true, 0, true},
		{FromFloat64(math.Copysign(0, -1)), 0, true, 0, true},
		{FromFloat64(42), 42, true, 42, true},
		{FromFloat64(-42), -42, true, 0, false},
		{FromFloat64(42.5), 0, false, 0, false},
		{FromFloat64(0x1p63), 0, false, 1 << 63, true},
		{FromFloat64(-0x1p63), math.MinInt64, true, 0, false},
		{FromFloat64(0x1p64), 0, false, 0, false},
		{Inf64(false), 0, false, 0, false},
		{NaN64(), 0, false, 0, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			gi, ok := test.f.Int64()
			a.Equal(test.iok, ok)
			a.Equal(test.i, gi)
			gu, ok := test.f.Uint64()
			a.Equal(test.uok, ok)
			a.Equal(test.u, gu)
		})
	}
}

func TestIntConversionRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(47))
	for i := 0; i < 20000; i++ {
		v := r.Int63()
		f, ok := Float64FromIntExact(v)
		got, gok := f.Int64()
		if ok {
			if !gok || got != v {
				t.Fatalf("%d: exact conversion lost the value: %#v", v, f)
			}
		} else if f != FromFloat64(float64(v)) {
			t.Fatalf("%d: rounded conversion disagrees with native", v)
		}
		// 80 bits hold every int64 exactly.
		w, ok := Float80FromIntExact(v)
		if !ok {
			t.Fatalf("%d: not exact in 80 bits", v)
		}
		if got, gok := w.Int64(); !gok || got != v {
			t.Fatalf("%d: lost through 80 bits", v)
		}
	}
}
