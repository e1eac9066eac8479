// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"github.com/avdva/ieee754/internal/floatbits"
)

// Float80 is an x87 80-bit extended value: a 16-bit sign+exponent word
// and a 64-bit significand whose integer bit is explicit at bit 63.
// The zero value is +0.
//
// The explicit integer bit admits encodings no IEEE interchange format
// has: pseudo-denormals (zero exponent, integer bit set) read back as
// the normal value they actually encode, while unnormals,
// pseudo-infinities and pseudo-NaNs are invalid operands and read back
// as quiet NaNs, the way the x87 treats them. Comparing with ==
// compares raw patterns; use Eq for numeric equality and IsCanonical to
// detect the redundant encodings.
type Float80 struct {
	se uint16
	m  uint64
}

const (
	expBits80 = 15
	sigBits80 = 63

	seSignMask = uint16(1) << 15
	seExpMask  = uint16(1)<<expBits80 - 1
	intBit80   = uint64(1) << 63
	sigMask80  = intBit80 - 1
)

// Common extended-format patterns.
var (
	// Max80 is the greatest finite value.
	Max80 = Float80{se: 0x7ffe, m: ^uint64(0)}
	// MinNormal80 is the least positive normal value, 2^-16382.
	MinNormal80 = Float80{se: 0x0001, m: intBit80}
	// SmallestNonzero80 is the least positive subnormal value, 2^-16445.
	SmallestNonzero80 = Float80{se: 0, m: 1}
)

var params80 = floatbits.P80

func fields80(f Float80) floatbits.Fields {
	neg := f.se&seSignMask != 0
	exp := uint64(f.se & seExpMask)
	intSet := f.m&intBit80 != 0
	sig := f.m & sigMask80
	switch {
	case exp == 0:
		if intSet {
			// A pseudo-denormal encodes the same value as the
			// normal with exponent pattern 1.
			return floatbits.Fields{Neg: neg, Exp: 1, Sig: sig}
		}
		return floatbits.Fields{Neg: neg, Sig: sig}
	case exp == uint64(seExpMask):
		if !intSet {
			// Pseudo-infinities and pseudo-NaNs are invalid
			// operands; they read as quiet NaNs.
			return floatbits.Fields{Neg: neg, Exp: exp, Sig: sig | params80.QuietBit()}
		}
		return floatbits.Fields{Neg: neg, Exp: exp, Sig: sig}
	default:
		if !intSet {
			// Unnormals are invalid operands too.
			return floatbits.Fields{Neg: neg, Exp: uint64(seExpMask), Sig: sig | params80.QuietBit()}
		}
		return floatbits.Fields{Neg: neg, Exp: exp, Sig: sig}
	}
}

func make80(fl floatbits.Fields) Float80 {
	se := uint16(fl.Exp)
	if fl.Neg {
		se |= seSignMask
	}
	m := fl.Sig
	if fl.Exp != 0 {
		m |= intBit80
	}
	return Float80{se: se, m: m}
}

// Float80FromBits reinterprets a raw sign+exponent word and significand,
// integer bit included, as an extended value. Non-canonical patterns
// are kept as given.
func Float80FromBits(se uint16, m uint64) Float80 {
	return Float80{se: se, m: m}
}

// Float80FromParts assembles a canonical pattern from logical fields:
// exp is masked to 15 bits, sig to 63, and the integer bit is derived
// from the exponent.
func Float80FromParts(neg bool, exp uint16, sig uint64) Float80 {
	return make80(floatbits.Fields{
		Neg: neg,
		Exp: uint64(exp & seExpMask),
		Sig: sig & sigMask80,
	})
}

// Inf80 returns an infinity, negative if neg is set.
func Inf80(neg bool) Float80 { return make80(params80.Inf(neg)) }

// NaN80 returns the default quiet NaN.
func NaN80() Float80 { return make80(params80.NaN()) }

// NaN80Payload returns a NaN carrying payload in its low significand
// bits. It panics if the payload needs more than 61 bits.
func NaN80Payload(payload uint64, signaling bool) Float80 {
	return make80(nanFields(params80, false, payload, signaling))
}

// Compose80 builds ±significand × 2^exponent with a single rounding.
// The significand's own sign is ignored.
func Compose80(neg bool, exponent int, significand Float80) Float80 {
	return make80(composeFields(params80, neg, exponent, fields80(significand)))
}

// Bits returns the raw sign+exponent word and significand.
func (f Float80) Bits() (se uint16, m uint64) { return f.se, f.m }

// Parts splits f into its logical sign, exponent and 63-bit significand
// fields, reading non-canonical patterns as their canonical values.
func (f Float80) Parts() (neg bool, exp uint16, sig uint64) {
	fl := fields80(f)
	return fl.Neg, uint16(fl.Exp), fl.Sig
}

// Float64 narrows to a native float64 with a single rounding.
func (f Float80) Float64() float64 { return f.To64().Float64() }

// Signbit reports whether the sign bit is set.
func (f Float80) Signbit() bool { return f.se&seSignMask != 0 }

// IsNaN reports whether f reads as a NaN; pseudo-infinities,
// pseudo-NaNs and unnormals do.
func (f Float80) IsNaN() bool {
	fl := fields80(f)
	return fl.Exp == uint64(seExpMask) && fl.Sig != 0
}

// IsSignalingNaN reports whether f is a NaN with the quiet flag clear.
// Invalid encodings read as quiet NaNs, so only canonical signaling
// NaNs qualify.
func (f Float80) IsSignalingNaN() bool {
	return f.IsNaN() && fields80(f).Sig&params80.QuietBit() == 0
}

// IsInf reports whether f is an infinity matching sign: positive if
// sign > 0, negative if sign < 0, either if sign == 0.
func (f Float80) IsInf(sign int) bool {
	fl := fields80(f)
	if fl.Exp != uint64(seExpMask) || fl.Sig != 0 {
		return false
	}
	return sign == 0 || (sign > 0) != fl.Neg
}

// IsFinite reports whether f is neither an infinity nor a NaN.
func (f Float80) IsFinite() bool { return fields80(f).Exp != uint64(seExpMask) }

// IsNormal reports whether f reads as a finite value with a nonzero
// exponent pattern; pseudo-denormals do.
func (f Float80) IsNormal() bool {
	fl := fields80(f)
	return fl.Exp != uint64(seExpMask) && fl.Exp != 0
}

// IsSubnormal reports whether f is subnormal.
func (f Float80) IsSubnormal() bool {
	fl := fields80(f)
	return fl.Exp == 0 && fl.Sig != 0
}

// IsZero reports whether f is a zero of either sign.
func (f Float80) IsZero() bool {
	fl := fields80(f)
	return fl.Exp == 0 && fl.Sig == 0
}

// IsCanonical reports whether f is the unique preferred encoding of the
// value it reads as.
func (f Float80) IsCanonical() bool { return f == make80(fields80(f)) }

// Canonicalize returns the preferred encoding of the value f reads as;
// invalid encodings come back as quiet NaNs.
func (f Float80) Canonicalize() Float80 { return make80(fields80(f)) }

// Exponent is the unbiased exponent of the leading significand bit:
// math.MaxInt for infinities and NaNs, math.MinInt for zeros.
func (f Float80) Exponent() int { return exponentValue(params80, fields80(f)) }

// Significand is |f| scaled into [1, 2). Zeros and infinities keep
// their exponent field with the significand cleared; NaNs map to
// themselves.
func (f Float80) Significand() Float80 {
	return make80(significandFields(params80, fields80(f)))
}

// ULP is the distance to the next representable magnitude: the least
// subnormal near zero, NaN for non-finite inputs.
func (f Float80) ULP() Float80 { return make80(params80.ULP(fields80(f))) }

// NextUp is the least value greater than f. +Inf and NaNs map to
// themselves; -SmallestNonzero80 steps to -0.
func (f Float80) NextUp() Float80 { return make80(params80.NextUp(fields80(f))) }

// NextDown is the greatest value less than f.
func (f Float80) NextDown() Float80 { return f.Neg().NextUp().Neg() }

// Round rounds f to an integral value according to mode.
func (f Float80) Round(mode RoundingMode) Float80 {
	return make80(roundFields(params80, fields80(f), mode))
}

// Neg flips the sign bit, keeping the rest of the pattern as is.
func (f Float80) Neg() Float80 {
	f.se ^= seSignMask
	return f
}

// Abs clears the sign bit, keeping the rest of the pattern as is.
func (f Float80) Abs() Float80 {
	f.se &^= seSignMask
	return f
}

// Add returns f+o with a single rounding.
func (f Float80) Add(o Float80) Float80 {
	return make80(params80.Add(fields80(f), fields80(o)))
}

// Sub returns f-o with a single rounding.
func (f Float80) Sub(o Float80) Float80 {
	return make80(params80.Sub(fields80(f), fields80(o)))
}

// Mul returns f×o with a single rounding.
func (f Float80) Mul(o Float80) Float80 {
	return make80(params80.Mul(fields80(f), fields80(o)))
}

// Div returns f/o with a single rounding.
func (f Float80) Div(o Float80) Float80 {
	return make80(params80.Div(fields80(f), fields80(o)))
}

// Mod is the truncating remainder of f/o, exact and with the sign of f.
func (f Float80) Mod(o Float80) Float80 {
	return make80(params80.Mod(fields80(f), fields80(o)))
}

// Remainder is the IEEE 754 remainder of f/o.
func (f Float80) Remainder(o Float80) Float80 {
	return make80(params80.Remainder(fields80(f), fields80(o)))
}

// Eq reports numeric equality: both zeros are equal, non-canonical
// patterns compare by the value they read as, a NaN equals nothing.
func (f Float80) Eq(o Float80) bool {
	if f.IsNaN() || o.IsNaN() {
		return false
	}
	return params80.Cmp(fields80(f), fields80(o)) == 0
}

// Less reports f < o numerically; false if either operand is NaN.
func (f Float80) Less(o Float80) bool {
	if f.IsNaN() || o.IsNaN() {
		return false
	}
	return params80.Cmp(fields80(f), fields80(o)) < 0
}

// LessEq reports f <= o numerically; false if either operand is NaN.
func (f Float80) LessEq(o Float80) bool {
	if f.IsNaN() || o.IsNaN() {
		return false
	}
	return params80.Cmp(fields80(f), fields80(o)) <= 0
}

// HashKey returns a pattern usable as a map key consistent with Eq for
// non-NaN values: the pattern is canonicalized and both zeros collapse
// to +0. NaNs keep their payload bits, so equal-pattern NaNs share a
// key even though Eq rejects them.
func (f Float80) HashKey() Float80 {
	c := make80(fields80(f))
	if c.IsZero() {
		return Float80{}
	}
	return c
}
