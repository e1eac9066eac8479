// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/avdva/ieee754/internal/floatbits"
)

// String formats f as the shortest decimal that reads back exactly.
func (f Float32) String() string {
	return strconv.FormatFloat(float64(f.Float32()), 'g', -1, 32)
}

// String formats f as the shortest decimal that reads back exactly.
func (f Float64) String() string {
	return strconv.FormatFloat(f.Float64(), 'g', -1, 64)
}

// String formats f as the shortest decimal that reads back exactly at
// 64 significand bits.
func (f Float80) String() string {
	fl := fields80(f)
	switch params80.Class(fl) {
	case floatbits.ClassNaN:
		return "NaN"
	case floatbits.ClassInf:
		if fl.Neg {
			return "-Inf"
		}
		return "+Inf"
	case floatbits.ClassZero:
		if fl.Neg {
			return "-0"
		}
		return "0"
	}
	e, frac := params80.Decode(fl)
	v := new(big.Float).SetPrec(sigBits80 + 1).SetUint64(frac)
	v.SetMantExp(v, e-63)
	if fl.Neg {
		v.Neg(v)
	}
	return v.Text('g', -1)
}

// GoString formats f as a Go expression rebuilding the exact pattern.
func (f Float32) GoString() string {
	return fmt.Sprintf("ieee754.Float32FromBits(0x%08x)", uint32(f))
}

// GoString formats f as a Go expression rebuilding the exact pattern.
func (f Float64) GoString() string {
	return fmt.Sprintf("ieee754.Float64FromBits(0x%016x)", uint64(f))
}

// GoString formats f as a Go expression rebuilding the exact pattern.
func (f Float80) GoString() string {
	return fmt.Sprintf("ieee754.Float80FromBits(0x%04x, 0x%016x)", f.se, f.m)
}

// Parse32 reads a decimal or hexadecimal float literal, rounding to
// binary32. Out-of-range magnitudes saturate to infinity or flush
// towards zero rather than failing.
func Parse32(s string) (Float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil && !isRangeErr(err) {
		return 0, err
	}
	return FromFloat32(float32(v)), nil
}

// Parse64 reads a decimal or hexadecimal float literal, rounding to
// binary64. Out-of-range magnitudes saturate to infinity or flush
// towards zero rather than failing.
func Parse64(s string) (Float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeErr(err) {
		return 0, err
	}
	return FromFloat64(v), nil
}

// Parse80 reads a decimal or hexadecimal float literal, rounding to
// the extended format. Out-of-range magnitudes saturate to infinity or
// flush towards zero rather than failing.
func Parse80(s string) (Float80, error) {
	switch s {
	case "NaN", "nan":
		return NaN80(), nil
	case "Inf", "+Inf", "inf", "+inf":
		return Inf80(false), nil
	case "-Inf", "-inf":
		return Inf80(true), nil
	}
	// Truncate at 128 bits and keep the inexactness as a sticky flag,
	// so the single rounding in Encode is the only one. Rounding here
	// first would double-round inputs landing in the subnormal range.
	v, _, err := big.ParseFloat(s, 0, 128, big.ToZero)
	if err != nil {
		return Float80{}, err
	}
	if v.IsInf() {
		return Inf80(v.Signbit()), nil
	}
	if v.Sign() == 0 {
		return make80(floatbits.Fields{Neg: v.Signbit()}), nil
	}
	sticky := v.Acc() != big.Exact
	neg := v.Signbit()
	mant := new(big.Float)
	exp := v.MantExp(mant)
	// |mant| is in [0.5, 1) at 128 truncated bits, so shifted up by 128
	// it is an exact 128-bit integer with its top bit set.
	i, _ := mant.Abs(mant).SetMantExp(mant, 128).Int(nil)
	rem := new(big.Int).And(i, new(big.Int).SetUint64(^uint64(0))).Uint64()
	frac := i.Rsh(i, 64).Uint64()
	return make80(params80.Encode(neg, exp-1, frac, rem, sticky)), nil
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
