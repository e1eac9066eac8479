// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/avdva/ieee754/internal/fixedbuf"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeCompact
)

const (
	// JSONModeString produces values as decimal strings, like `"1234.5"`.
	// NaN payloads and the NaN sign do not survive this mode.
	JSONModeString = iota
	// JSONModeBits produces the exact bit pattern as a hex string,
	// like `"0x3f800000"`.
	JSONModeBits
	// JSONModeParts marshals the logical fields, like
	// `{"neg":false,"exp":127,"sig":0}`.
	JSONModeParts
	// JSONModeCompact marshals finite values as plain json numbers and
	// everything else as bit strings.
	JSONModeCompact
)

// MarshalJSON marshals f according to the current JSONMode.
// See JSONMode and JSONMode* constants.
func (f Float32) MarshalJSON() ([]byte, error) { return f.toJSON(JSONMode), nil }

func (f Float32) toJSON(mode int) []byte {
	switch mode {
	case JSONModeBits:
		return []byte(fmt.Sprintf(`"0x%08x"`, uint32(f)))
	case JSONModeParts:
		neg, exp, sig := f.Parts()
		return []byte(fmt.Sprintf(`{"neg":%t,"exp":%d,"sig":%d}`, neg, exp, sig))
	case JSONModeCompact:
		if f.IsFinite() {
			return []byte(f.String())
		}
		return f.toJSON(JSONModeBits)
	default:
		return []byte(`"` + f.String() + `"`)
	}
}

// UnmarshalJSON unmarshals a number, a decimal or bit string, or a
// parts object, whatever the current JSONMode says.
func (f *Float32) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	switch data[0] {
	case '{':
		var d struct {
			Neg bool   `json:"neg"`
			Exp uint16 `json:"exp"`
			Sig uint32 `json:"sig"`
		}
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		*f = Float32FromParts(d.Neg, d.Exp, d.Sig)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if b, ok := parseBitsString(s, 8); ok {
			*f = Float32FromBits(uint32(b))
			return nil
		}
		v, err := Parse32(s)
		if err != nil {
			return err
		}
		*f = v
		return nil
	default:
		v, err := Parse32(string(data))
		if err != nil {
			return err
		}
		*f = v
		return nil
	}
}

// MarshalJSON marshals f according to the current JSONMode.
// See JSONMode and JSONMode* constants.
func (f Float64) MarshalJSON() ([]byte, error) { return f.toJSON(JSONMode), nil }

func (f Float64) toJSON(mode int) []byte {
	switch mode {
	case JSONModeBits:
		return []byte(fmt.Sprintf(`"0x%016x"`, uint64(f)))
	case JSONModeParts:
		neg, exp, sig := f.Parts()
		return []byte(fmt.Sprintf(`{"neg":%t,"exp":%d,"sig":%d}`, neg, exp, sig))
	case JSONModeCompact:
		if f.IsFinite() {
			return []byte(f.String())
		}
		return f.toJSON(JSONModeBits)
	default:
		return []byte(`"` + f.String() + `"`)
	}
}

// UnmarshalJSON unmarshals a number, a decimal or bit string, or a
// parts object, whatever the current JSONMode says.
func (f *Float64) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	switch data[0] {
	case '{':
		var d struct {
			Neg bool   `json:"neg"`
			Exp uint16 `json:"exp"`
			Sig uint64 `json:"sig"`
		}
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		*f = Float64FromParts(d.Neg, d.Exp, d.Sig)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if b, ok := parseBitsString(s, 16); ok {
			*f = Float64FromBits(b)
			return nil
		}
		v, err := Parse64(s)
		if err != nil {
			return err
		}
		*f = v
		return nil
	default:
		v, err := Parse64(string(data))
		if err != nil {
			return err
		}
		*f = v
		return nil
	}
}

// MarshalJSON marshals f according to the current JSONMode.
// See JSONMode and JSONMode* constants.
func (f Float80) MarshalJSON() ([]byte, error) { return f.toJSON(JSONMode), nil }

func (f Float80) toJSON(mode int) []byte {
	switch mode {
	case JSONModeBits:
		return []byte(fmt.Sprintf(`"0x%04x%016x"`, f.se, f.m))
	case JSONModeParts:
		neg, exp, sig := f.Parts()
		return []byte(fmt.Sprintf(`{"neg":%t,"exp":%d,"sig":%d}`, neg, exp, sig))
	case JSONModeCompact:
		if f.IsFinite() {
			return []byte(f.String())
		}
		return f.toJSON(JSONModeBits)
	default:
		return []byte(`"` + f.String() + `"`)
	}
}

// UnmarshalJSON unmarshals a number, a decimal or bit string, or a
// parts object, whatever the current JSONMode says.
func (f *Float80) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	switch data[0] {
	case '{':
		var d struct {
			Neg bool   `json:"neg"`
			Exp uint16 `json:"exp"`
			Sig uint64 `json:"sig"`
		}
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		*f = Float80FromParts(d.Neg, d.Exp, d.Sig)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if len(s) == 22 && s[0] == '0' && s[1] == 'x' {
			se, err1 := strconv.ParseUint(s[2:6], 16, 16)
			m, err2 := strconv.ParseUint(s[6:], 16, 64)
			if err1 == nil && err2 == nil {
				*f = Float80FromBits(uint16(se), m)
				return nil
			}
		}
		v, err := Parse80(s)
		if err != nil {
			return err
		}
		*f = v
		return nil
	default:
		v, err := Parse80(string(data))
		if err != nil {
			return err
		}
		*f = v
		return nil
	}
}

func parseBitsString(s string, digits int) (uint64, bool) {
	if len(s) != digits+2 || s[0] != '0' || s[1] != 'x' {
		return 0, false
	}
	v, err := strconv.ParseUint(s[2:], 16, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// MarshalBinary encodes the pattern as 4 little-endian bytes.
func (f Float32) MarshalBinary() ([]byte, error) {
	var b fixedbuf.Buf[byte]
	putLE(&b, uint64(f), 4)
	return b.Slice(), nil
}

// UnmarshalBinary decodes 4 little-endian bytes.
func (f *Float32) UnmarshalBinary(data []byte) error {
	if len(data) != 4 {
		return fmt.Errorf("binary32 takes 4 bytes, got %d", len(data))
	}
	*f = Float32(binary.LittleEndian.Uint32(data))
	return nil
}

// MarshalBinary encodes the pattern as 8 little-endian bytes.
func (f Float64) MarshalBinary() ([]byte, error) {
	var b fixedbuf.Buf[byte]
	putLE(&b, uint64(f), 8)
	return b.Slice(), nil
}

// UnmarshalBinary decodes 8 little-endian bytes.
func (f *Float64) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return fmt.Errorf("binary64 takes 8 bytes, got %d", len(data))
	}
	*f = Float64(binary.LittleEndian.Uint64(data))
	return nil
}

// MarshalBinary encodes the x87 memory image: 8 significand bytes then
// the 2-byte sign+exponent word, all little-endian.
func (f Float80) MarshalBinary() ([]byte, error) {
	var b fixedbuf.Buf[byte]
	putLE(&b, f.m, 8)
	putLE(&b, uint64(f.se), 2)
	return b.Slice(), nil
}

// UnmarshalBinary decodes a 10-byte x87 memory image.
func (f *Float80) UnmarshalBinary(data []byte) error {
	if len(data) != 10 {
		return fmt.Errorf("extended format takes 10 bytes, got %d", len(data))
	}
	f.m = binary.LittleEndian.Uint64(data[:8])
	f.se = binary.LittleEndian.Uint16(data[8:])
	return nil
}

func putLE(b *fixedbuf.Buf[byte], v uint64, n int) {
	for i := 0; i < n; i++ {
		b.Append(byte(v >> (8 * i)))
	}
}
