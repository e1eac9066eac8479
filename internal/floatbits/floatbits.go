// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package floatbits holds the width-parameterized field logic shared by
// the binary floating-point types: classification, normalized encode with
// a single round-to-nearest-even step, cross-format conversion, ulp and
// nextUp stepping, and 64-bit-significand soft arithmetic.
//
// A value is handled here as a canonical (sign, exponent pattern,
// significand pattern) triple. Explicit integer bits of extended formats
// never appear in a Fields value; the owning type strips or restores them.
package floatbits

import "math/bits"

// Params describes one binary format: the exponent field width and the
// number of logical significand bits (23, 52 or 63), excluding any
// implicit or explicit integer bit.
type Params struct {
	ExpBits uint
	SigBits uint
}

var (
	// P32 is the IEEE 754 binary32 format.
	P32 = Params{ExpBits: 8, SigBits: 23}
	// P64 is the IEEE 754 binary64 format.
	P64 = Params{ExpBits: 11, SigBits: 52}
	// P80 is the x87 80-bit extended format, counted without its
	// explicit integer bit.
	P80 = Params{ExpBits: 15, SigBits: 63}
)

// Bias is the exponent bias, 2^(E-1)-1.
func (p Params) Bias() int { return 1<<(p.ExpBits-1) - 1 }

// MaxExpPat is the all-ones exponent pattern denoting infinities and NaNs.
func (p Params) MaxExpPat() uint64 { return 1<<p.ExpBits - 1 }

// SigMask covers the significand field.
func (p Params) SigMask() uint64 { return 1<<p.SigBits - 1 }

// QuietBit is the top significand bit: set for quiet NaNs.
func (p Params) QuietBit() uint64 { return 1 << (p.SigBits - 1) }

// MinExp is the unbiased exponent of the least normal value.
func (p Params) MinExp() int { return 1 - p.Bias() }

// MaxExp is the unbiased exponent of the greatest finite value.
func (p Params) MaxExp() int { return p.Bias() }

// Fields is a canonical decomposition of one value.
// Exp is the exponent bit pattern, Sig the significand bit pattern.
type Fields struct {
	Neg bool
	Exp uint64
	Sig uint64
}

// Class partitions every bit pattern into exactly one kind.
type Class int

const (
	ClassZero Class = iota
	ClassSubnormal
	ClassNormal
	ClassInf
	ClassNaN
)

// Class reports the kind of f.
func (p Params) Class(f Fields) Class {
	switch {
	case f.Exp == p.MaxExpPat():
		if f.Sig == 0 {
			return ClassInf
		}
		return ClassNaN
	case f.Exp == 0:
		if f.Sig == 0 {
			return ClassZero
		}
		return ClassSubnormal
	default:
		return ClassNormal
	}
}

// Inf returns a signed infinity.
func (p Params) Inf(neg bool) Fields {
	return Fields{Neg: neg, Exp: p.MaxExpPat()}
}

// NaN returns the default quiet NaN.
func (p Params) NaN() Fields {
	return Fields{Exp: p.MaxExpPat(), Sig: p.QuietBit()}
}

// quiet returns f with the quiet flag forced on, keeping the payload.
func (p Params) quiet(f Fields) Fields {
	f.Exp = p.MaxExpPat()
	f.Sig |= p.QuietBit()
	return f
}

// Decode expresses a finite nonzero value as ±frac × 2^(e-63), with the
// leading significand bit normalized to position 63.
func (p Params) Decode(f Fields) (e int, frac uint64) {
	if f.Exp != 0 {
		full := 1<<p.SigBits | f.Sig
		return int(f.Exp) - p.Bias(), full << (63 - p.SigBits)
	}
	bl := bits.Len64(f.Sig)
	return bl - int(p.SigBits) - p.Bias(), f.Sig << (64 - bl)
}

// Encode rounds ±(frac + rem·2^-64 + ε) × 2^(e-63) to the nearest
// representable value, ties to even. frac must be zero or have bit 63
// set; rem holds the next 64 bits of the true significand; sticky
// reports any nonzero bits beyond rem. Overflow saturates to infinity,
// underflow is folded through the same single rounding into the
// subnormal range or to zero.
func (p Params) Encode(neg bool, e int, frac, rem uint64, sticky bool) Fields {
	if frac == 0 {
		return Fields{Neg: neg}
	}
	drop := 63 - int(p.SigBits)
	if e < p.MinExp() {
		if diff := p.MinExp() - e; diff > 66 {
			drop = 67
		} else {
			drop += diff
		}
		e = p.MinExp()
	}
	var kept, window uint64
	rest := sticky
	switch {
	case drop == 0:
		kept, window = frac, rem
	case drop < 64:
		kept = frac >> uint(drop)
		window = frac<<uint(64-drop) | rem>>uint(drop)
		rest = rest || rem<<uint(64-drop) != 0
	case drop == 64:
		window = frac
		rest = rest || rem != 0
	default:
		// The whole value sits strictly below half of the least
		// subnormal, so it can only round down to zero.
		window, rest = 1, true
	}
	const half = 1 << 63
	if window > half || (window == half && (rest || kept&1 == 1)) {
		kept++
	}
	if kept == 0 {
		if drop != 0 {
			// Everything rounded away.
			return Fields{Neg: neg}
		}
		// Rounding carried out of bit 63 (possible only at 63
		// significand bits): the result is the next power of two.
		kept = 1 << 63
		e++
	} else if p.SigBits < 63 && kept >= 2<<p.SigBits {
		kept >>= 1
		e++
	}
	if kept < 1<<p.SigBits {
		// e == MinExp here: a subnormal (or zero, if everything
		// rounded away).
		return Fields{Neg: neg, Sig: kept}
	}
	if e > p.MaxExp() {
		return p.Inf(neg)
	}
	return Fields{Neg: neg, Exp: uint64(e + p.Bias()), Sig: kept & p.SigMask()}
}

// Convert reencodes f from format src to format dst. Finite values are
// rounded to nearest (even); NaN payloads are carried across by shifting
// the significand field by the width difference, the way hardware
// widening and narrowing moves them. A payload that does not survive the
// narrowing shift intact decays to the default quiet NaN.
func Convert(src, dst Params, f Fields) Fields {
	switch src.Class(f) {
	case ClassZero:
		return Fields{Neg: f.Neg}
	case ClassInf:
		return dst.Inf(f.Neg)
	case ClassNaN:
		quiet := f.Sig&src.QuietBit() != 0
		payload := f.Sig &^ src.QuietBit()
		var sig uint64
		if src.SigBits > dst.SigBits {
			shift := src.SigBits - dst.SigBits
			if payload<<(64-shift) != 0 {
				// Narrowing dropped payload bits; the result
				// cannot claim to carry what it lost and decays
				// to the default quiet NaN.
				return Fields{Neg: f.Neg, Exp: dst.MaxExpPat(), Sig: dst.QuietBit()}
			}
			sig = payload >> shift
		} else {
			sig = payload << (dst.SigBits - src.SigBits)
		}
		sig &= dst.SigMask() &^ dst.QuietBit()
		if quiet || sig == 0 {
			// A signaling NaN must not decay into an infinity.
			sig |= dst.QuietBit()
		}
		return Fields{Neg: f.Neg, Exp: dst.MaxExpPat(), Sig: sig}
	}
	e, frac := src.Decode(f)
	return dst.Encode(f.Neg, e, frac, 0, false)
}

// ULP is the gap between f and the next representable value of the same
// magnitude order. NaN for non-finite inputs, the least subnormal for
// zeros and subnormals.
func (p Params) ULP(f Fields) Fields {
	if f.Exp == p.MaxExpPat() {
		return p.NaN()
	}
	switch {
	case f.Exp > uint64(p.SigBits):
		return Fields{Exp: f.Exp - uint64(p.SigBits)}
	case f.Exp >= 1:
		return Fields{Sig: 1 << (f.Exp - 1)}
	default:
		return Fields{Sig: 1}
	}
}

// NextUp is the least value strictly greater than f, with NaN mapping to
// itself, ±0 to the least subnormal, and -leastSubnormal to -0 exactly.
func (p Params) NextUp(f Fields) Fields {
	if p.Class(f) == ClassNaN {
		return f
	}
	if !f.Neg && f.Exp == p.MaxExpPat() {
		return f // +Inf saturates
	}
	if f.Exp == 0 && f.Sig == 0 {
		return Fields{Sig: 1}
	}
	if f.Neg {
		// Decrement the magnitude, borrowing across the field
		// boundary; -leastNonzero lands on -0 exactly.
		if f.Sig == 0 {
			f.Exp--
			f.Sig = p.SigMask()
		} else {
			f.Sig--
		}
		return f
	}
	f.Sig++
	if f.Sig > p.SigMask() {
		f.Sig = 0
		f.Exp++
	}
	return f
}

// ScaleB is f × 2^n, correctly rounded (only subnormal results can
// actually round).
func (p Params) ScaleB(f Fields, n int) Fields {
	switch p.Class(f) {
	case ClassZero, ClassInf:
		return f
	case ClassNaN:
		return p.quiet(f)
	}
	e, frac := p.Decode(f)
	return p.Encode(f.Neg, clampAdd(e, n), frac, 0, false)
}

// Cmp orders two non-NaN values: -1, 0 or 1. Both zeros compare equal.
func (p Params) Cmp(a, b Fields) int {
	za, zb := p.Class(a) == ClassZero, p.Class(b) == ClassZero
	if za && zb {
		return 0
	}
	if za {
		return cmpSign(!b.Neg)
	}
	if zb {
		return cmpSign(a.Neg)
	}
	if a.Neg != b.Neg {
		return cmpSign(a.Neg)
	}
	var c int
	switch {
	case a.Exp != b.Exp:
		if a.Exp > b.Exp {
			c = 1
		} else {
			c = -1
		}
	case a.Sig > b.Sig:
		c = 1
	case a.Sig < b.Sig:
		c = -1
	}
	if a.Neg {
		return -c
	}
	return c
}

func cmpSign(neg bool) int {
	if neg {
		return -1
	}
	return 1
}

// Add sums two values with a single rounding.
func (p Params) Add(a, b Fields) Fields {
	ca, cb := p.Class(a), p.Class(b)
	switch {
	case ca == ClassNaN:
		return p.quiet(a)
	case cb == ClassNaN:
		return p.quiet(b)
	case ca == ClassInf && cb == ClassInf:
		if a.Neg != b.Neg {
			return p.NaN()
		}
		return a
	case ca == ClassInf:
		return a
	case cb == ClassInf:
		return b
	case ca == ClassZero && cb == ClassZero:
		return Fields{Neg: a.Neg && b.Neg}
	case ca == ClassZero:
		return b
	case cb == ClassZero:
		return a
	}
	ea, fa := p.Decode(a)
	eb, fb := p.Decode(b)
	if ea < eb || (ea == eb && fa < fb) {
		a, b = b, a
		ea, fa, eb, fb = eb, fb, ea, fa
	}
	// Spread b over a 128-bit window aligned to a's exponent.
	var bhi, blo uint64
	var bsticky bool
	switch d := uint(ea - eb); {
	case d == 0:
		bhi = fb
	case d < 64:
		bhi, blo = fb>>d, fb<<(64-d)
	case d < 128:
		blo = fb >> (d - 64)
		bsticky = fb<<(128-d) != 0
	default:
		bsticky = true
	}
	if a.Neg == b.Neg {
		lo := blo
		hi, carry := bits.Add64(fa, bhi, 0)
		if carry == 1 {
			bsticky = bsticky || lo&1 == 1
			lo = lo>>1 | hi<<63
			hi = hi>>1 | 1<<63
			ea++
		}
		return p.Encode(a.Neg, ea, hi, lo, bsticky)
	}
	// Opposite signs; |a| >= |b| after the swap above.
	lo, borrow := bits.Sub64(0, blo, 0)
	hi, _ := bits.Sub64(fa, bhi, borrow)
	if bsticky {
		// b is a hair larger than its window: borrow one more
		// unit and keep the remainder sticky.
		lo, borrow = bits.Sub64(lo, 1, 0)
		hi -= borrow
	}
	if hi == 0 && lo == 0 {
		if bsticky {
			return Fields{Neg: a.Neg}
		}
		return Fields{} // exact cancellation is +0
	}
	if hi == 0 {
		hi, lo = lo, 0
		ea -= 64
	}
	if s := uint(bits.LeadingZeros64(hi)); s > 0 {
		hi = hi<<s | lo>>(64-s)
		lo <<= s
		ea -= int(s)
	}
	return p.Encode(a.Neg, ea, hi, lo, bsticky)
}

// Sub is a - b.
func (p Params) Sub(a, b Fields) Fields {
	if p.Class(b) == ClassNaN {
		return p.quiet(b)
	}
	b.Neg = !b.Neg
	return p.Add(a, b)
}

// Mul multiplies two values with a single rounding.
func (p Params) Mul(a, b Fields) Fields {
	ca, cb := p.Class(a), p.Class(b)
	neg := a.Neg != b.Neg
	switch {
	case ca == ClassNaN:
		return p.quiet(a)
	case cb == ClassNaN:
		return p.quiet(b)
	case ca == ClassInf || cb == ClassInf:
		if ca == ClassZero || cb == ClassZero {
			return p.NaN() // 0 × Inf
		}
		return p.Inf(neg)
	case ca == ClassZero || cb == ClassZero:
		return Fields{Neg: neg}
	}
	ea, fa := p.Decode(a)
	eb, fb := p.Decode(b)
	hi, lo := bits.Mul64(fa, fb)
	e := clampAdd(ea, eb) + 1
	if hi>>63 == 0 {
		hi = hi<<1 | lo>>63
		lo <<= 1
		e--
	}
	return p.Encode(neg, e, hi, lo, false)
}

// Div divides two values with a single rounding. x/±0 is a signed
// infinity for nonzero x; 0/0 and Inf/Inf are NaN.
func (p Params) Div(a, b Fields) Fields {
	ca, cb := p.Class(a), p.Class(b)
	neg := a.Neg != b.Neg
	switch {
	case ca == ClassNaN:
		return p.quiet(a)
	case cb == ClassNaN:
		return p.quiet(b)
	case ca == ClassInf:
		if cb == ClassInf {
			return p.NaN()
		}
		return p.Inf(neg)
	case cb == ClassInf:
		return Fields{Neg: neg}
	case cb == ClassZero:
		if ca == ClassZero {
			return p.NaN()
		}
		return p.Inf(neg)
	case ca == ClassZero:
		return Fields{Neg: neg}
	}
	ea, fa := p.Decode(a)
	eb, fb := p.Decode(b)
	e := ea - eb
	var q, r uint64
	if fa >= fb {
		q, r = bits.Div64(fa>>1, fa<<63, fb)
	} else {
		q, r = bits.Div64(fa, 0, fb)
		e--
	}
	w, r2 := bits.Div64(r, 0, fb)
	return p.Encode(neg, e, q, w, r2 != 0)
}

// Mod is the truncating (C-style) remainder. It is always exact.
func (p Params) Mod(a, b Fields) Fields {
	ca, cb := p.Class(a), p.Class(b)
	switch {
	case ca == ClassNaN:
		return p.quiet(a)
	case cb == ClassNaN:
		return p.quiet(b)
	case ca == ClassInf || cb == ClassZero:
		return p.NaN()
	case cb == ClassInf || ca == ClassZero:
		return a
	}
	ex, mx := p.Decode(a)
	ey, my := p.Decode(b)
	if ex < ey || (ex == ey && mx < my) {
		return a // |a| < |b|
	}
	// Long division on the normalized mantissas; my has bit 63 set, so
	// every intermediate fits 64 bits (the wrapped subtraction below is
	// exact modulo 2^64 when the shift overflows).
	for ; ex > ey; ex-- {
		if mx >= my {
			if mx == my {
				return Fields{Neg: a.Neg}
			}
			mx = (mx - my) << 1
		} else if mx >= 1<<63 {
			mx = mx<<1 - my
		} else {
			mx <<= 1
		}
	}
	if mx >= my {
		if mx == my {
			return Fields{Neg: a.Neg}
		}
		mx -= my
	}
	if mx == 0 {
		return Fields{Neg: a.Neg}
	}
	s := uint(bits.LeadingZeros64(mx))
	return p.Encode(a.Neg, ex-int(s), mx<<s, 0, false)
}

// Remainder is the IEEE 754 remainder: a - b×q with q the nearest
// integer (even on ties) to a/b. It is always exact.
func (p Params) Remainder(a, b Fields) Fields {
	ca, cb := p.Class(a), p.Class(b)
	switch {
	case ca == ClassNaN:
		return p.quiet(a)
	case cb == ClassNaN:
		return p.quiet(b)
	case ca == ClassInf || cb == ClassZero:
		return p.NaN()
	case cb == ClassInf || ca == ClassZero:
		return a
	}
	neg := a.Neg
	x := Fields{Exp: a.Exp, Sig: a.Sig}
	y := Fields{Exp: b.Exp, Sig: b.Sig}
	if yy := p.ScaleB(y, 1); p.Class(yy) != ClassInf {
		x = p.Mod(x, yy)
	}
	if y.Exp < 2 {
		// Halving y would lose bits, so compare 2x against y instead.
		if p.Cmp(p.ScaleB(x, 1), y) > 0 {
			x = p.Sub(x, y)
			if p.Cmp(p.ScaleB(x, 1), y) >= 0 {
				x = p.Sub(x, y)
			}
		}
	} else {
		yHalf := p.ScaleB(y, -1)
		if p.Cmp(x, yHalf) > 0 {
			x = p.Sub(x, y)
			if p.Cmp(x, yHalf) >= 0 {
				x = p.Sub(x, y)
			}
		}
	}
	if neg {
		x.Neg = !x.Neg
	}
	return x
}

// clampAdd adds exponents, saturating far outside any representable
// range so the sum never wraps around.
func clampAdd(a, b int) int {
	const lim = 1 << 30
	s := a + b
	switch {
	case a > 0 && b > 0 && s < 0, s > lim:
		return lim
	case a < 0 && b < 0 && s >= 0, s < -lim:
		return -lim
	default:
		return s
	}
}

// AbsInt is a branch-free |v|.
func AbsInt(v int) int {
	mask := v >> (bits.UintSize - 1)
	return (v + mask) ^ mask
}
