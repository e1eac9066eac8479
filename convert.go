// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/avdva/ieee754/internal/floatbits"
)

// To64 widens f to binary64. Widening is exact for every non-NaN
// value; NaN payloads shift into the wider significand field.
func (f Float32) To64() Float64 {
	return make64(floatbits.Convert(params32, params64, fields32(f)))
}

// To64Exact widens f and reports whether the value survived
// bit-exactly; only NaNs fail.
func (f Float32) To64Exact() (Float64, bool) {
	fl, ok := convertExact(params32, params64, fields32(f))
	return make64(fl), ok
}

// To80 widens f to the extended format.
func (f Float32) To80() Float80 {
	return make80(floatbits.Convert(params32, params80, fields32(f)))
}

// To80Exact widens f and reports whether the value survived
// bit-exactly; only NaNs fail.
func (f Float32) To80Exact() (Float80, bool) {
	fl, ok := convertExact(params32, params80, fields32(f))
	return make80(fl), ok
}

// To32 narrows f to binary32 with a single rounding.
func (f Float64) To32() Float32 {
	return make32(floatbits.Convert(params64, params32, fields64(f)))
}

// To32Exact narrows f and reports whether the value survived without
// rounding, overflow or underflow. NaNs always fail.
func (f Float64) To32Exact() (Float32, bool) {
	fl, ok := convertExact(params64, params32, fields64(f))
	return make32(fl), ok
}

// To80 widens f to the extended format.
func (f Float64) To80() Float80 {
	return make80(floatbits.Convert(params64, params80, fields64(f)))
}

// To80Exact widens f and reports whether the value survived
// bit-exactly; only NaNs fail.
func (f Float64) To80Exact() (Float80, bool) {
	fl, ok := convertExact(params64, params80, fields64(f))
	return make80(fl), ok
}

// To32 narrows f to binary32 with a single rounding. Non-canonical
// patterns convert by the value they read as.
func (f Float80) To32() Float32 {
	return make32(floatbits.Convert(params80, params32, fields80(f)))
}

// To32Exact narrows f and reports whether the value survived without
// rounding, overflow or underflow. NaNs always fail.
func (f Float80) To32Exact() (Float32, bool) {
	fl, ok := convertExact(params80, params32, fields80(f))
	return make32(fl), ok
}

// To64 narrows f to binary64 with a single rounding.
func (f Float80) To64() Float64 {
	return make64(floatbits.Convert(params80, params64, fields80(f)))
}

// To64Exact narrows f and reports whether the value survived without
// rounding, overflow or underflow. NaNs always fail.
func (f Float80) To64Exact() (Float64, bool) {
	fl, ok := convertExact(params80, params64, fields80(f))
	return make64(fl), ok
}

// Float32FromInt converts any integer with a single rounding.
func Float32FromInt[T constraints.Integer](v T) Float32 {
	return make32(intFields(params32, v))
}

// Float32FromIntExact converts v and reports whether it is
// representable without rounding.
func Float32FromIntExact[T constraints.Integer](v T) (Float32, bool) {
	fl := intFields(params32, v)
	return make32(fl), intRoundTrips(params32, fl, v)
}

// Float64FromInt converts any integer with a single rounding.
func Float64FromInt[T constraints.Integer](v T) Float64 {
	return make64(intFields(params64, v))
}

// Float64FromIntExact converts v and reports whether it is
// representable without rounding.
func Float64FromIntExact[T constraints.Integer](v T) (Float64, bool) {
	fl := intFields(params64, v)
	return make64(fl), intRoundTrips(params64, fl, v)
}

// Float80FromInt converts any integer; the 64-bit significand makes
// the conversion exact for every Go integer type.
func Float80FromInt[T constraints.Integer](v T) Float80 {
	return make80(intFields(params80, v))
}

// Float80FromIntExact converts v and reports whether it is
// representable without rounding; with a 64-bit significand it
// always is.
func Float80FromIntExact[T constraints.Integer](v T) (Float80, bool) {
	fl := intFields(params80, v)
	return make80(fl), intRoundTrips(params80, fl, v)
}

// Int64 extracts f as an integer, reporting whether f is integral and
// fits int64.
func (f Float32) Int64() (int64, bool) { return fieldsInt64(params32, fields32(f)) }

// Uint64 extracts f as an unsigned integer, reporting whether f is
// integral, non-negative and fits uint64.
func (f Float32) Uint64() (uint64, bool) { return fieldsUint64(params32, fields32(f)) }

// Int64 extracts f as an integer, reporting whether f is integral and
// fits int64.
func (f Float64) Int64() (int64, bool) { return fieldsInt64(params64, fields64(f)) }

// Uint64 extracts f as an unsigned integer, reporting whether f is
// integral, non-negative and fits uint64.
func (f Float64) Uint64() (uint64, bool) { return fieldsUint64(params64, fields64(f)) }

// Int64 extracts f as an integer, reporting whether f is integral and
// fits int64.
func (f Float80) Int64() (int64, bool) { return fieldsInt64(params80, fields80(f)) }

// Uint64 extracts f as an unsigned integer, reporting whether f is
// integral, non-negative and fits uint64.
func (f Float80) Uint64() (uint64, bool) { return fieldsUint64(params80, fields80(f)) }

func splitInt[T constraints.Integer](v T) (neg bool, mag uint64) {
	neg = v < 0
	mag = uint64(v)
	if neg {
		mag = -mag
	}
	return neg, mag
}

func intFields[T constraints.Integer](p floatbits.Params, v T) floatbits.Fields {
	neg, mag := splitInt(v)
	if mag == 0 {
		return floatbits.Fields{}
	}
	bl := bits.Len64(mag)
	return p.Encode(neg, bl-1, mag<<uint(64-bl), 0, false)
}

func intRoundTrips[T constraints.Integer](p floatbits.Params, f floatbits.Fields, v T) bool {
	mag, neg, ok := intMagnitude(p, f)
	if !ok {
		return false
	}
	vneg, vmag := splitInt(v)
	return mag == vmag && (mag == 0 || neg == vneg)
}

func fieldsInt64(p floatbits.Params, f floatbits.Fields) (int64, bool) {
	mag, neg, ok := intMagnitude(p, f)
	if !ok {
		return 0, false
	}
	if neg {
		if mag > 1<<63 {
			return 0, false
		}
		return -int64(mag), true
	}
	if mag >= 1<<63 {
		return 0, false
	}
	return int64(mag), true
}

func fieldsUint64(p floatbits.Params, f floatbits.Fields) (uint64, bool) {
	mag, neg, ok := intMagnitude(p, f)
	if !ok || (neg && mag != 0) {
		return 0, false
	}
	return mag, true
}
