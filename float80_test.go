// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func randFinite80(r *rand.Rand) Float80 {
	for {
		f := Float80FromBits(uint16(r.Uint64()), r.Uint64()).Canonicalize()
		if f.IsFinite() {
			return f
		}
	}
}

func TestFloat80Canonicalization(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		se        uint16
		m         uint64
		exp       uint16
		sig       uint64
		canonical bool
		nan       bool
	}{
		// Canonical zero and subnormal.
		{0, 0, 0, 0, true, false},
		{0, 5, 0, 5, true, false},
		// Canonical normal.
		{0x3fff, 1 << 63, 0x3fff, 0, true, false},
		// Pseudo-denormal: reads as a normal with exponent pattern 1.
		{0, 1<<63 | 5, 1, 5, false, false},
		// Unnormal: invalid, reads as a quiet NaN.
		{5, 0b101, 0x7fff, 1<<62 | 0b101, false, true},
		// Pseudo-infinity: invalid, reads as a quiet NaN.
		{0x7fff, 0, 0x7fff, 1 << 62, false, true},
		// Pseudo-NaN: quiet flag forced on.
		{0x7fff, 3, 0x7fff, 1<<62 | 3, false, true},
		// Canonical infinity and NaN.
		{0x7fff, 1 << 63, 0x7fff, 0, true, false},
		{0x7fff, 1<<63 | 1<<62, 0x7fff, 1 << 62, true, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f := Float80FromBits(test.se, test.m)
			neg, exp, sig := f.Parts()
			a.False(neg)
			a.Equal(test.exp, exp)
			a.Equal(test.sig, sig)
			a.Equal(test.canonical, f.IsCanonical())
			a.Equal(test.nan, f.IsNaN())
			a.True(f.Canonicalize().IsCanonical())
			// Raw patterns always survive a bit round-trip.
			se, m := f.Bits()
			a.Equal(Float80FromBits(se, m), f)
		})
	}
	// A pseudo-denormal is numerically equal to its canonical form.
	pd := Float80FromBits(0, 1<<63)
	a.True(pd.Eq(MinNormal80))
	a.True(pd.IsNormal())
	a.False(pd.IsCanonical())
}

func TestFloat80FromPartsCanonical(t *testing.T) {
	a := assert.New(t)
	// A nonzero exponent always gets the integer bit in storage.
	f := Float80FromParts(false, 1, 0)
	a.Equal(MinNormal80, f)
	se, m := f.Bits()
	a.Equal(uint16(1), se)
	a.Equal(intBit80, m)
	// A zero exponent never does.
	_, m = Float80FromParts(false, 0, 5).Bits()
	a.Equal(uint64(5), m)
	// Out-of-range fields are masked, not rejected.
	a.Equal(Float80FromParts(true, 1, 0), Float80FromParts(true, 0x8001, 1<<63))
}

func TestFloat80OneThird(t *testing.T) {
	a := assert.New(t)
	third := Float80FromInt(1).Div(Float80FromInt(3))
	se, m := third.Bits()
	a.Equal(uint16(0x3ffd), se)
	a.Equal(uint64(0xaaaaaaaaaaaaaaab), m)
	a.Equal(Float80FromInt(1), third.Mul(Float80FromInt(3)))
}

func TestFloat80ExactIntegers(t *testing.T) {
	a := assert.New(t)
	// Every uint64 fits the 64-bit significand.
	v, ok := Float80FromIntExact(uint64(math.MaxUint64))
	a.True(ok)
	got, ok := v.Uint64()
	a.True(ok)
	a.Equal(uint64(math.MaxUint64), got)

	x, _ := Float80FromIntExact(int64(math.MinInt64))
	i, ok := x.Int64()
	a.True(ok)
	a.Equal(int64(math.MinInt64), i)

	// 2^63+1 is not a float64, but is a Float80.
	big := Float80FromInt(uint64(1)<<63 + 1)
	a.False(big.Eq(Float80FromInt(uint64(1) << 63)))
	_, ok = big.To64Exact()
	a.False(ok)
}

func TestFloat80ArithVsFloat64(t *testing.T) {
	// On float64-representable operands with float64-representable
	// results, 80-bit arithmetic narrowed back must agree bit for bit
	// when the wide result is itself exactly a float64 value. Keeping
	// products below 2^26 in significand width guarantees that.
	r := rand.New(rand.NewSource(31))
	for i := 0; i < 20000; i++ {
		x := float64(r.Int63n(1<<26)) / 8
		y := float64(r.Int63n(1<<26)-1<<25) / 4
		fx, fy := FromFloat64(x).To80(), FromFloat64(y).To80()
		if got := fx.Add(fy).To64(); got != FromFloat64(x+y) {
			t.Fatalf("add(%g, %g): got %#v", x, y, got)
		}
		if got := fx.Mul(fy).To64(); got != FromFloat64(x*y) {
			t.Fatalf("mul(%g, %g): got %#v", x, y, got)
		}
	}
}

func TestFloat80StringParse(t *testing.T) {
	a := assert.New(t)
	a.Equal("1", Float80FromInt(1).String())
	a.Equal("-0", Float80FromInt(1).Neg().Mul(Float80FromParts(false, 0, 0)).String())
	a.Equal("NaN", NaN80().String())
	a.Equal("+Inf", Inf80(false).String())
	a.Equal("-Inf", Inf80(true).String())

	r := rand.New(rand.NewSource(37))
	for i := 0; i < 2000; i++ {
		f := randFinite80(r)
		got, err := Parse80(f.String())
		if err != nil {
			t.Fatalf("parse %q: %v", f.String(), err)
		}
		if got != f {
			t.Fatalf("parse %q: got %#v, want %#v", f.String(), got, f)
		}
	}
	// Subnormal parses round once, straight to the subnormal quantum:
	// a hair above half of the least subnormal must round up even
	// though the excess sits below the 64th significand bit.
	v, err := Parse80("0x1.0000000000000001p-16446")
	a.NoError(err)
	a.Equal(SmallestNonzero80, v)
	// The exact half ties to even, which is zero here.
	v, err = Parse80("0x1p-16446")
	a.NoError(err)
	a.Equal(Float80{}, v)
	v, err = Parse80("0x1.8p-16446")
	a.NoError(err)
	a.Equal(SmallestNonzero80, v)
	// Out of range magnitudes saturate.
	v, err = Parse80("1e99999")
	a.NoError(err)
	a.True(v.IsInf(1))
	v, err = Parse80("-1e-99999")
	a.NoError(err)
	a.True(v.IsZero())
	a.True(v.Signbit())
	_, err = Parse80("bogus")
	a.Error(err)
}

func TestFloat80StepAndULP(t *testing.T) {
	a := assert.New(t)
	a.Equal(Inf80(false), Max80.NextUp())
	a.True(SmallestNonzero80.Neg().NextUp().IsZero())
	a.True(SmallestNonzero80.Neg().NextUp().Signbit())
	a.Equal(SmallestNonzero80, Float80{}.NextUp())
	a.Equal(SmallestNonzero80, Float80FromParts(false, 0, 0).ULP())
	one := Float80FromInt(1)
	a.Equal(Float80FromParts(false, 0x3fff-63, 0), one.ULP())
	a.Equal(one, one.NextUp().NextDown())
}

func TestFloat80Mixed(t *testing.T) {
	a := assert.New(t)
	five, three := Float80FromInt(5), Float80FromInt(3)
	a.Equal(Float80FromInt(2), five.Mod(three))
	a.Equal(Float80FromInt(1).Neg(), five.Remainder(three))
	a.True(five.Div(Float80{}).IsInf(1))
	a.True(Inf80(false).Mul(Float80{}).IsNaN())
	a.True(five.Less(Inf80(false)))
	a.True(Inf80(true).Less(five.Neg()))
	a.Equal(five.HashKey(), Float80FromBits(0, 0).Mul(five).Add(five).HashKey())
}

func TestFloat80HashKey(t *testing.T) {
	a := assert.New(t)
	// Non-canonical patterns collapse to their canonical key.
	pd := Float80FromBits(0, 1<<63)
	a.Equal(MinNormal80.HashKey(), pd.HashKey())
	a.Equal(Float80{}, Float80{}.Neg().HashKey())
}

func BenchmarkFloat80Mul(b *testing.B) {
	f0 := FromFloat64(123456789.0).To80()
	f1 := FromFloat64(1234.0).To80()

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulOtherFixed(b *testing.B) {
	f0 := of.NewF(123456789.9)
	f1 := of.NewF(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulDecimal(b *testing.B) {
	f0 := decimal.NewFromFloat(123456789.0)
	f1 := decimal.NewFromFloat(1234.0)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkFloat80Div(b *testing.B) {
	f0 := FromFloat64(123456789.0).To80()
	f1 := FromFloat64(1234.0).To80()

	for i := 0; i < b.N; i++ {
		f0.Div(f1)
	}
}
