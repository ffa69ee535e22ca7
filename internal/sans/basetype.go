package sans

import (
	"errors"
	"fmt"
)

// Kind identifies the Go representation a base type decodes to, and which
// FromRecord sink method a decoded value is ultimately dispatched through.
type Kind uint8

// The ten sink-dispatch kinds. Several base-type codes share a Kind (for
// example enum, byte, and uint8z all decode through KindU8) because the FIT
// format distinguishes them only for the purposes of the invalid-marker
// rule, not for the width or signedness of the wire value.
const (
	KindU8 Kind = iota
	KindI8
	KindU16
	KindI16
	KindU32
	KindI32
	KindU64
	KindI64
	KindF32
	KindF64
)

// String returns a human-readable name for a Kind.
func (k Kind) String() string {
	switch k {
	case KindU8:
		return "u8"
	case KindI8:
		return "i8"
	case KindU16:
		return "u16"
	case KindI16:
		return "i16"
	case KindU32:
		return "u32"
	case KindI32:
		return "i32"
	case KindU64:
		return "u64"
	case KindI64:
		return "i64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// BaseType describes one FIT base-type code: its storage width in bytes,
// the Kind used to decode and dispatch its wire value, and whether its
// invalid marker is the Kind's maximum value ("normal": all ones for
// unsigned kinds, 0x7F... for signed kinds, MaxFloat32/MaxFloat64 for
// floats) or all-zero bytes ("z-variant", e.g. uint8z, uint16z, string).
type BaseType struct {
	Code      byte
	Width     uint8
	Kind      Kind
	ZeroIsBad bool
}

// baseTypes is the concrete code table from the FIT protocol. It MUST
// reproduce the specification's table exactly, including the two base-type
// codes (0x02 enum, 0x0D byte) that alias 0x00 (uint8), and the two (0x07
// string, 0x0A byte/uint8z) that alias each other's invalid-marker rule.
var baseTypes = map[byte]BaseType{
	0x00: {Code: 0x00, Width: 1, Kind: KindU8},            // uint8 / enum
	0x01: {Code: 0x01, Width: 1, Kind: KindI8},             // sint8
	0x02: {Code: 0x02, Width: 1, Kind: KindU8},             // enum
	0x83: {Code: 0x83, Width: 2, Kind: KindI16},            // sint16
	0x84: {Code: 0x84, Width: 2, Kind: KindU16},            // uint16
	0x85: {Code: 0x85, Width: 4, Kind: KindI32},            // sint32
	0x86: {Code: 0x86, Width: 4, Kind: KindU32},            // uint32
	0x07: {Code: 0x07, Width: 1, Kind: KindU8, ZeroIsBad: true}, // string (uint8z array)
	0x88: {Code: 0x88, Width: 4, Kind: KindF32},            // float32
	0x89: {Code: 0x89, Width: 8, Kind: KindF64},            // float64
	0x0A: {Code: 0x0A, Width: 1, Kind: KindU8, ZeroIsBad: true}, // uint8z / byte
	0x8B: {Code: 0x8B, Width: 2, Kind: KindU16, ZeroIsBad: true}, // uint16z
	0x8C: {Code: 0x8C, Width: 4, Kind: KindU32, ZeroIsBad: true}, // uint32z
	0x0D: {Code: 0x0D, Width: 1, Kind: KindU8},             // byte
	0x8E: {Code: 0x8E, Width: 8, Kind: KindI64},             // sint64
	0x8F: {Code: 0x8F, Width: 8, Kind: KindU64},             // uint64
	0x90: {Code: 0x90, Width: 8, Kind: KindU64, ZeroIsBad: true}, // uint64z
}

// ErrUnknownBaseType is returned when a definition field descriptor names a
// base-type code not present in the FIT code table.
var ErrUnknownBaseType = errors.New("unknown base type code")

// LookupBaseType resolves a wire base-type code to its BaseType descriptor.
func LookupBaseType(code byte) (BaseType, error) {
	bt, ok := baseTypes[code]
	if !ok {
		return BaseType{}, fmt.Errorf("%w: 0x%02X", ErrUnknownBaseType, code)
	}
	return bt, nil
}
