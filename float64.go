// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"math"

	"github.com/avdva/ieee754/internal/floatbits"
)

// Float64 is an IEEE 754 binary64 value held as its bit pattern.
// The zero value is +0. Comparing with == compares patterns, so a NaN
// equals itself and +0 differs from -0; use Eq for numeric equality.
type Float64 uint64

const (
	expBits64 = 11
	sigBits64 = 52

	signMask64 = Float64(1) << 63
	expMask64  = Float64(1<<expBits64-1) << sigBits64
	sigMask64  = Float64(1)<<sigBits64 - 1
)

// Common binary64 patterns.
const (
	// Max64 is the greatest finite value.
	Max64 Float64 = 0x7fefffffffffffff
	// MinNormal64 is the least positive normal value, 2^-1022.
	MinNormal64 Float64 = 0x0010000000000000
	// SmallestNonzero64 is the least positive subnormal value, 2^-1074.
	SmallestNonzero64 Float64 = 0x0000000000000001
)

var params64 = floatbits.P64

func fields64(f Float64) floatbits.Fields {
	return floatbits.Fields{
		Neg: f&signMask64 != 0,
		Exp: uint64(f >> sigBits64 & (1<<expBits64 - 1)),
		Sig: uint64(f & sigMask64),
	}
}

func make64(fl floatbits.Fields) Float64 {
	f := Float64(fl.Exp)<<sigBits64 | Float64(fl.Sig)
	if fl.Neg {
		f |= signMask64
	}
	return f
}

// Float64FromBits reinterprets b as a binary64 pattern.
func Float64FromBits(b uint64) Float64 { return Float64(b) }

// FromFloat64 wraps a native float64.
func FromFloat64(v float64) Float64 { return Float64(math.Float64bits(v)) }

// Float64FromParts assembles a pattern from raw fields, masking each
// argument to its field width.
func Float64FromParts(neg bool, exp uint16, sig uint64) Float64 {
	return make64(floatbits.Fields{
		Neg: neg,
		Exp: uint64(exp) & (1<<expBits64 - 1),
		Sig: sig & uint64(sigMask64),
	})
}

// Inf64 returns an infinity, negative if neg is set.
func Inf64(neg bool) Float64 { return make64(params64.Inf(neg)) }

// NaN64 returns the default quiet NaN.
func NaN64() Float64 { return make64(params64.NaN()) }

// NaN64Payload returns a NaN carrying payload in its low significand
// bits. It panics if the payload needs more than 50 bits.
func NaN64Payload(payload uint64, signaling bool) Float64 {
	return make64(nanFields(params64, false, payload, signaling))
}

// Compose64 builds ±significand × 2^exponent with a single rounding.
// The significand's own sign is ignored.
func Compose64(neg bool, exponent int, significand Float64) Float64 {
	return make64(composeFields(params64, neg, exponent, fields64(significand)))
}

// Bits returns the raw pattern.
func (f Float64) Bits() uint64 { return uint64(f) }

// Parts splits the pattern into its sign, exponent and significand fields.
func (f Float64) Parts() (neg bool, exp uint16, sig uint64) {
	fl := fields64(f)
	return fl.Neg, uint16(fl.Exp), fl.Sig
}

// Float64 converts to the native type.
func (f Float64) Float64() float64 { return math.Float64frombits(uint64(f)) }

// Signbit reports whether the sign bit is set.
func (f Float64) Signbit() bool { return f&signMask64 != 0 }

// IsNaN reports whether f is any NaN.
func (f Float64) IsNaN() bool { return f&expMask64 == expMask64 && f&sigMask64 != 0 }

// IsSignalingNaN reports whether f is a NaN with the quiet flag clear.
func (f Float64) IsSignalingNaN() bool {
	return f.IsNaN() && uint64(f)&params64.QuietBit() == 0
}

// IsInf reports whether f is an infinity matching sign: positive if
// sign > 0, negative if sign < 0, either if sign == 0.
func (f Float64) IsInf(sign int) bool {
	if f&^signMask64 != expMask64 {
		return false
	}
	return sign == 0 || (sign > 0) != f.Signbit()
}

// IsFinite reports whether f is neither an infinity nor a NaN.
func (f Float64) IsFinite() bool { return f&expMask64 != expMask64 }

// IsNormal reports whether f is a finite value with a nonzero biased
// exponent.
func (f Float64) IsNormal() bool {
	return f&expMask64 != expMask64 && f&expMask64 != 0
}

// IsSubnormal reports whether f is subnormal.
func (f Float64) IsSubnormal() bool {
	return f&expMask64 == 0 && f&sigMask64 != 0
}

// IsZero reports whether f is a zero of either sign.
func (f Float64) IsZero() bool { return f&^signMask64 == 0 }

// IsCanonical is true for every binary64 pattern.
func (Float64) IsCanonical() bool { return true }

// Exponent is the unbiased exponent of the leading significand bit:
// math.MaxInt for infinities and NaNs, math.MinInt for zeros.
func (f Float64) Exponent() int { return exponentValue(params64, fields64(f)) }

// Significand is |f| scaled into [1, 2). Zeros and infinities keep
// their exponent field with the significand cleared; NaNs map to
// themselves.
func (f Float64) Significand() Float64 {
	return make64(significandFields(params64, fields64(f)))
}

// ULP is the distance to the next representable magnitude: the least
// subnormal near zero, NaN for non-finite inputs.
func (f Float64) ULP() Float64 { return make64(params64.ULP(fields64(f))) }

// NextUp is the least value greater than f. +Inf and NaNs map to
// themselves; -SmallestNonzero64 steps to -0.
func (f Float64) NextUp() Float64 { return make64(params64.NextUp(fields64(f))) }

// NextDown is the greatest value less than f.
func (f Float64) NextDown() Float64 { return f.Neg().NextUp().Neg() }

// Round rounds f to an integral value according to mode.
func (f Float64) Round(mode RoundingMode) Float64 {
	return make64(roundFields(params64, fields64(f), mode))
}

// Neg flips the sign bit.
func (f Float64) Neg() Float64 { return f ^ signMask64 }

// Abs clears the sign bit.
func (f Float64) Abs() Float64 { return f &^ signMask64 }

// Add returns f+o with a single rounding.
func (f Float64) Add(o Float64) Float64 {
	return make64(params64.Add(fields64(f), fields64(o)))
}

// Sub returns f-o with a single rounding.
func (f Float64) Sub(o Float64) Float64 {
	return make64(params64.Sub(fields64(f), fields64(o)))
}

// Mul returns f×o with a single rounding.
func (f Float64) Mul(o Float64) Float64 {
	return make64(params64.Mul(fields64(f), fields64(o)))
}

// Div returns f/o with a single rounding.
func (f Float64) Div(o Float64) Float64 {
	return make64(params64.Div(fields64(f), fields64(o)))
}

// Mod is the truncating remainder of f/o, exact and with the sign of f.
func (f Float64) Mod(o Float64) Float64 {
	return make64(params64.Mod(fields64(f), fields64(o)))
}

// Remainder is the IEEE 754 remainder of f/o.
func (f Float64) Remainder(o Float64) Float64 {
	return make64(params64.Remainder(fields64(f), fields64(o)))
}

// Eq reports numeric equality: both zeros are equal, a NaN equals
// nothing, itself included.
func (f Float64) Eq(o Float64) bool {
	if f.IsNaN() || o.IsNaN() {
		return false
	}
	return params64.Cmp(fields64(f), fields64(o)) == 0
}

// Less reports f < o numerically; false if either operand is NaN.
func (f Float64) Less(o Float64) bool {
	if f.IsNaN() || o.IsNaN() {
		return false
	}
	return params64.Cmp(fields64(f), fields64(o)) < 0
}

// LessEq reports f <= o numerically; false if either operand is NaN.
func (f Float64) LessEq(o Float64) bool {
	if f.IsNaN() || o.IsNaN() {
		return false
	}
	return params64.Cmp(fields64(f), fields64(o)) <= 0
}

// HashKey returns a pattern usable as a map key consistent with Eq for
// non-NaN values: both zeros collapse to +0. NaNs keep their payload
// bits, so equal-pattern NaNs share a key even though Eq rejects them.
func (f Float64) HashKey() Float64 {
	if f.IsZero() {
		return 0
	}
	return f
}
