// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"math"

	"github.com/avdva/ieee754/internal/floatbits"
)

// Float32 is an IEEE 754 binary32 value held as its bit pattern.
// The zero value is +0. Comparing with == compares patterns, so a NaN
// equals itself and +0 differs from -0; use Eq for numeric equality.
type Float32 uint32

const (
	expBits32 = 8
	sigBits32 = 23

	signMask32 = Float32(1) << 31
	expMask32  = Float32(1<<expBits32-1) << sigBits32
	sigMask32  = Float32(1)<<sigBits32 - 1
)

// Common binary32 patterns.
const (
	// Max32 is the greatest finite value.
	Max32 Float32 = 0x7f7fffff
	// MinNormal32 is the least positive normal value, 2^-126.
	MinNormal32 Float32 = 0x00800000
	// SmallestNonzero32 is the least positive subnormal value, 2^-149.
	SmallestNonzero32 Float32 = 0x00000001
)

var params32 = floatbits.P32

func fields32(f Float32) floatbits.Fields {
	return floatbits.Fields{
		Neg: f&signMask32 != 0,
		Exp: uint64(f >> sigBits32 & (1<<expBits32 - 1)),
		Sig: uint64(f & sigMask32),
	}
}

func make32(fl floatbits.Fields) Float32 {
	f := Float32(fl.Exp)<<sigBits32 | Float32(fl.Sig)
	if fl.Neg {
		f |= signMask32
	}
	return f
}

// Float32FromBits reinterprets b as a binary32 pattern.
func Float32FromBits(b uint32) Float32 { return Float32(b) }

// FromFloat32 wraps a native float32.
func FromFloat32(v float32) Float32 { return Float32(math.Float32bits(v)) }

// Float32FromParts assembles a pattern from raw fields, masking each
// argument to its field width.
func Float32FromParts(neg bool, exp uint16, sig uint32) Float32 {
	return make32(floatbits.Fields{
		Neg: neg,
		Exp: uint64(exp) & (1<<expBits32 - 1),
		Sig: uint64(sig) & uint64(sigMask32),
	})
}

// Inf32 returns an infinity, negative if neg is set.
func Inf32(neg bool) Float32 { return make32(params32.Inf(neg)) }

// NaN32 returns the default quiet NaN.
func NaN32() Float32 { return make32(params32.NaN()) }

// NaN32Payload returns a NaN carrying payload in its low significand
// bits. It panics if the payload needs more than 21 bits.
func NaN32Payload(payload uint32, signaling bool) Float32 {
	return make32(nanFields(params32, false, uint64(payload), signaling))
}

// Compose32 builds ±significand × 2^exponent with a single rounding.
// The significand's own sign is ignored.
func Compose32(neg bool, exponent int, significand Float32) Float32 {
	return make32(composeFields(params32, neg, exponent, fields32(significand)))
}

// Bits returns the raw pattern.
func (f Float32) Bits() uint32 { return uint32(f) }

// Parts splits the pattern into its sign, exponent and significand fields.
func (f Float32) Parts() (neg bool, exp uint16, sig uint32) {
	fl := fields32(f)
	return fl.Neg, uint16(fl.Exp), uint32(fl.Sig)
}

// Float32 converts to the native type.
func (f Float32) Float32() float32 { return math.Float32frombits(uint32(f)) }

// Float64 widens to a native float64. Widening is exact for every
// non-NaN value.
func (f Float32) Float64() float64 { return f.To64().Float64() }

// Signbit reports whether the sign bit is set.
func (f Float32) Signbit() bool { return f&signMask32 != 0 }

// IsNaN reports whether f is any NaN.
func (f Float32) IsNaN() bool { return f&expMask32 == expMask32 && f&sigMask32 != 0 }

// IsSignalingNaN reports whether f is a NaN with the quiet flag clear.
func (f Float32) IsSignalingNaN() bool {
	return f.IsNaN() && uint64(f)&params32.QuietBit() == 0
}

// IsInf reports whether f is an infinity matching sign: positive if
// sign > 0, negative if sign < 0, either if sign == 0.
func (f Float32) IsInf(sign int) bool {
	if f&^signMask32 != expMask32 {
		return false
	}
	return sign == 0 || (sign > 0) != f.Signbit()
}

// IsFinite reports whether f is neither an infinity nor a NaN.
func (f Float32) IsFinite() bool { return f&expMask32 != expMask32 }

// IsNormal reports whether f is a finite value with a nonzero biased
// exponent.
func (f Float32) IsNormal() bool {
	return f&expMask32 != expMask32 && f&expMask32 != 0
}

// IsSubnormal reports whether f is subnormal.
func (f Float32) IsSubnormal() bool {
	return f&expMask32 == 0 && f&sigMask32 != 0
}

// IsZero reports whether f is a zero of either sign.
func (f Float32) IsZero() bool { return f&^signMask32 == 0 }

// IsCanonical is true for every binary32 pattern.
func (Float32) IsCanonical() bool { return true }

// Exponent is the unbiased exponent of the leading significand bit:
// math.MaxInt for infinities and NaNs, math.MinInt for zeros.
func (f Float32) Exponent() int { return exponentValue(params32, fields32(f)) }

// Significand is |f| scaled into [1, 2). Zeros and infinities keep
// their exponent field with the significand cleared; NaNs map to
// themselves.
func (f Float32) Significand() Float32 {
	return make32(significandFields(params32, fields32(f)))
}

// ULP is the distance to the next representable magnitude: the least
// subnormal near zero, NaN for non-finite inputs.
func (f Float32) ULP() Float32 { return make32(params32.ULP(fields32(f))) }

// NextUp is the least value greater than f. +Inf and NaNs map to
// themselves; -SmallestNonzero32 steps to -0.
func (f Float32) NextUp() Float32 { return make32(params32.NextUp(fields32(f))) }

// NextDown is the greatest value less than f.
func (f Float32) NextDown() Float32 { return f.Neg().NextUp().Neg() }

// Round rounds f to an integral value according to mode.
func (f Float32) Round(mode RoundingMode) Float32 {
	return make32(roundFields(params32, fields32(f), mode))
}

// Neg flips the sign bit.
func (f Float32) Neg() Float32 { return f ^ signMask32 }

// Abs clears the sign bit.
func (f Float32) Abs() Float32 { return f &^ signMask32 }

// Add returns f+o with a single rounding.
func (f Float32) Add(o Float32) Float32 {
	return make32(params32.Add(fields32(f), fields32(o)))
}

// Sub returns f-o with a single rounding.
func (f Float32) Sub(o Float32) Float32 {
	return make32(params32.Sub(fields32(f), fields32(o)))
}

// Mul returns f×o with a single rounding.
func (f Float32) Mul(o Float32) Float32 {
	return make32(params32.Mul(fields32(f), fields32(o)))
}

// Div returns f/o with a single rounding.
func (f Float32) Div(o Float32) Float32 {
	return make32(params32.Div(fields32(f), fields32(o)))
}

// Mod is the truncating remainder of f/o, exact and with the sign of f.
func (f Float32) Mod(o Float32) Float32 {
	return make32(params32.Mod(fields32(f), fields32(o)))
}

// Remainder is the IEEE 754 remainder of f/o.
func (f Float32) Remainder(o Float32) Float32 {
	return make32(params32.Remainder(fields32(f), fields32(o)))
}

// Eq reports numeric equality: both zeros are equal, a NaN equals
// nothing, itself included.
func (f Float32) Eq(o Float32) bool {
	if f.IsNaN() || o.IsNaN() {
		return false
	}
	return params32.Cmp(fields32(f), fields32(o)) == 0
}

// Less reports f < o numerically; false if either operand is NaN.
func (f Float32) Less(o Float32) bool {
	if f.IsNaN() || o.IsNaN() {
		return false
	}
	return params32.Cmp(fields32(f), fields32(o)) < 0
}

// LessEq reports f <= o numerically; false if either operand is NaN.
func (f Float32) LessEq(o Float32) bool {
	if f.IsNaN() || o.IsNaN() {
		return false
	}
	return params32.Cmp(fields32(f), fields32(o)) <= 0
}

// HashKey returns a pattern usable as a map key consistent with Eq for
// non-NaN values: both zeros collapse to +0. NaNs keep their payload
// bits, so equal-pattern NaNs share a key even though Eq rejects them.
func (f Float32) HashKey() Float32 {
	if f.IsZero() {
		return 0
	}
	return f
}
