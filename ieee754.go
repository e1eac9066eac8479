// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package ieee754 implements fixed-width binary floating-point values as
// explicit bit patterns: Float32 (binary32), Float64 (binary64) and
// Float80 (the x87 80-bit extended format with an explicit integer bit).
//
// Unlike the built-in float types, every value here is just its
// interchange bit pattern, so all 2^N patterns are constructible and
// inspectable, NaN payloads survive every operation, and the extended
// format's non-canonical encodings are detected and read back as their
// canonical equivalents. Raw constructors mask out-of-range inputs
// instead of rejecting them; only the "exact" conversions can fail, and
// they report it with an ok result rather than an error.
package ieee754

import (
	"math/bits"

	"github.com/avdva/ieee754/internal/floatbits"
)

// RoundingMode selects how Round resolves values between two integers.
type RoundingMode int

const (
	// ToNearestAway rounds to the closest integral value, breaking
	// ties away from zero.
	ToNearestAway RoundingMode = iota
	// ToNearestEven rounds to the closest integral value, breaking
	// ties towards the even one.
	ToNearestEven
	// TowardZero truncates.
	TowardZero
	// AwayFromZero rounds to the integral value of greater magnitude.
	AwayFromZero
	// Up rounds towards positive infinity.
	Up
	// Down rounds towards negative infinity.
	Down
)

// roundFields rounds a value to an integral one according to mode.
// NaNs, infinities and zeros map to themselves.
func roundFields(p floatbits.Params, f floatbits.Fields, mode RoundingMode) floatbits.Fields {
	switch p.Class(f) {
	case floatbits.ClassNaN, floatbits.ClassInf, floatbits.ClassZero:
		return f
	}
	e, frac := p.Decode(f)
	if e >= 63 {
		return f
	}
	if e < 0 {
		// The magnitude is in (0, 1): the result is a signed zero
		// or a signed one.
		var up bool
		switch mode {
		case Down:
			up = f.Neg
		case Up:
			up = !f.Neg
		case TowardZero:
			up = false
		case AwayFromZero:
			up = true
		case ToNearestAway:
			up = e == -1
		case ToNearestEven:
			up = e == -1 && frac != 1<<63
		}
		if up {
			return floatbits.Fields{Neg: f.Neg, Exp: uint64(p.Bias())}
		}
		return floatbits.Fields{Neg: f.Neg}
	}
	intPart := frac >> uint(63-e)
	rem := frac << uint(e+1)
	if rem == 0 {
		return f
	}
	var up bool
	switch mode {
	case Down:
		up = f.Neg
	case Up:
		up = !f.Neg
	case TowardZero:
		up = false
	case AwayFromZero:
		up = true
	case ToNearestAway:
		up = rem >= 1<<63
	case ToNearestEven:
		up = rem > 1<<63 || (rem == 1<<63 && intPart&1 == 1)
	}
	if up {
		intPart++
	}
	bl := bits.Len64(intPart)
	return p.Encode(f.Neg, bl-1, intPart<<uint(64-bl), 0, false)
}

// composeFields builds ±significand × 2^exponent, saturating to infinity
// and flushing through the subnormal range when the exponent lies far
// outside the format. The significand's own sign is ignored.
func composeFields(p floatbits.Params, neg bool, exponent int, sig floatbits.Fields) floatbits.Fields {
	f := p.ScaleB(floatbits.Fields{Exp: sig.Exp, Sig: sig.Sig}, exponent)
	f.Neg = neg
	return f
}

// significandFields extracts the significand scaled into [1, 2): the
// exponent field is forced to the bias, subnormals are shifted left so
// their leading bit takes the implicit position. NaNs are returned as
// is, zeros and infinities keep the exponent field with the significand
// cleared.
func significandFields(p floatbits.Params, f floatbits.Fields) floatbits.Fields {
	switch p.Class(f) {
	case floatbits.ClassNaN:
		return f
	case floatbits.ClassZero, floatbits.ClassInf:
		return floatbits.Fields{Exp: f.Exp}
	case floatbits.ClassSubnormal:
		bl := uint(bits.Len64(f.Sig))
		sig := f.Sig << (p.SigBits + 1 - bl) & p.SigMask()
		return floatbits.Fields{Exp: uint64(p.Bias()), Sig: sig}
	default:
		return floatbits.Fields{Exp: uint64(p.Bias()), Sig: f.Sig}
	}
}

// exponentValue returns the unbiased exponent, with maxInt for
// infinities and NaNs and minInt for zeros.
func exponentValue(p floatbits.Params, f floatbits.Fields) int {
	const (
		maxInt = int(^uint(0) >> 1)
		minInt = -maxInt - 1
	)
	switch p.Class(f) {
	case floatbits.ClassNaN, floatbits.ClassInf:
		return maxInt
	case floatbits.ClassZero:
		return minInt
	case floatbits.ClassSubnormal:
		return bits.Len64(f.Sig) - int(p.SigBits) - p.Bias()
	default:
		return int(f.Exp) - p.Bias()
	}
}

// nanFields encodes a NaN with the given payload. The payload must fit
// the low SigBits-2 significand bits; signaling NaNs get a marker bit
// just below the quiet flag so they can never collapse into an infinity.
func nanFields(p floatbits.Params, neg bool, payload uint64, signaling bool) floatbits.Fields {
	if payload >= p.QuietBit()>>1 {
		panic("ieee754: NaN payload is not encodable")
	}
	sig := payload
	if signaling {
		sig |= p.QuietBit() >> 1
	} else {
		sig |= p.QuietBit()
	}
	return floatbits.Fields{Neg: neg, Exp: p.MaxExpPat(), Sig: sig}
}

// convertExact converts between formats, reporting whether the value
// survived bit-exactly. NaNs always fail.
func convertExact(src, dst floatbits.Params, f floatbits.Fields) (floatbits.Fields, bool) {
	g := floatbits.Convert(src, dst, f)
	if src.Class(f) == floatbits.ClassNaN {
		return g, false
	}
	return g, floatbits.Convert(dst, src, g) == f
}

// intMagnitude decomposes a value into an integer magnitude and sign,
// failing when the value is not an integer in [0, 2^64).
func intMagnitude(p floatbits.Params, f floatbits.Fields) (mag uint64, neg bool, ok bool) {
	switch p.Class(f) {
	case floatbits.ClassZero:
		return 0, f.Neg, true
	case floatbits.ClassInf, floatbits.ClassNaN:
		return 0, false, false
	}
	e, frac := p.Decode(f)
	if e < 0 || e > 63 {
		return 0, false, false
	}
	if frac<<uint(e+1) != 0 {
		return 0, false, false
	}
	return frac >> uint(63-e), f.Neg, true
}
