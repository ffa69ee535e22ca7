package sans

import "math"

// Field decodes one base-type-width element of a data record's field
// value. When a field descriptor's declared size exceeds the base type's
// width (an array field), the caller repeats Advance, once per element,
// until the field is exhausted.
type Field struct {
	fieldsRemaining uint8
	bytesRemaining  uint8
	littleEndian    bool
	base            BaseType
	advanced        bool
}

// Width reports how many bytes the next Advance call must be given.
func (t *Field) Width() uint8 { return t.base.Width }

// Kind reports the sink-dispatch kind of the value Advance will decode.
func (t *Field) Kind() Kind { return t.base.Kind }

// FieldTransitionKind tags which successor a Field transition yields.
type FieldTransitionKind uint8

const (
	// FieldToElement means more elements of the same array field remain;
	// use the returned Field to decode the next one.
	FieldToElement FieldTransitionKind = iota
	// FieldToDefinitionFieldAlt means this field is exhausted and another
	// field descriptor follows in the current definition.
	FieldToDefinitionFieldAlt
	// FieldToRecordHeader means this field is exhausted and it was the
	// last field descriptor in the current definition.
	FieldToRecordHeader
)

// Value carries one decoded field element, tagged by Kind. Valid is false
// when the wire bytes matched the base type's invalid marker; callers
// should suppress dispatch to the sink in that case.
type Value struct {
	Kind  Kind
	Valid bool
	U8    uint8
	I8    int8
	U16   uint16
	I16   int16
	U32   uint32
	I32   int32
	U64   uint64
	I64   int64
	F32   float32
	F64   float64
}

// Advance decodes one element of this field from r, whose length must
// equal Width(). It returns the decoded value and the successor
// transition; next is non-nil only when kind is FieldToElement.
func (t *Field) Advance(r []byte) (value Value, kind FieldTransitionKind, next *Field) {
	if t.advanced {
		panic("sans: Field advanced twice")
	}
	t.advanced = true

	value = decodeElement(t.base, t.littleEndian, r)

	size := t.base.Width
	if t.bytesRemaining == size {
		if t.fieldsRemaining != 0 {
			kind = FieldToDefinitionFieldAlt
		} else {
			kind = FieldToRecordHeader
		}
		return value, kind, nil
	}

	next = &Field{
		fieldsRemaining: t.fieldsRemaining,
		bytesRemaining:  t.bytesRemaining - size,
		littleEndian:    t.littleEndian,
		base:            t.base,
	}
	return value, FieldToElement, next
}

// FieldsRemaining and LittleEndian expose the counters a driver needs to
// resume the definition-field loop once this field (and its array
// elements, if any) is fully decoded.
func (t *Field) FieldsRemaining() uint8 { return t.fieldsRemaining }
func (t *Field) LittleEndian() bool     { return t.littleEndian }

func decodeElement(base BaseType, le bool, r []byte) Value {
	v := Value{Kind: base.Kind}

	switch base.Kind {
	case KindU8:
		x := r[0]
		v.U8 = x
		v.Valid = validU8(x, base.ZeroIsBad)
	case KindI8:
		x := int8(r[0])
		v.I8 = x
		v.Valid = x != math.MaxInt8
	case KindU16:
		x := getUint16(r, le)
		v.U16 = x
		v.Valid = validU16(x, base.ZeroIsBad)
	case KindI16:
		x := int16(getUint16(r, le))
		v.I16 = x
		v.Valid = x != math.MaxInt16
	case KindU32:
		x := getUint32(r, le)
		v.U32 = x
		v.Valid = validU32(x, base.ZeroIsBad)
	case KindI32:
		x := int32(getUint32(r, le))
		v.I32 = x
		v.Valid = x != math.MaxInt32
	case KindU64:
		x := getUint64(r, le)
		v.U64 = x
		v.Valid = validU64(x, base.ZeroIsBad)
	case KindI64:
		x := int64(getUint64(r, le))
		v.I64 = x
		v.Valid = x != math.MaxInt64
	case KindF32:
		x := math.Float32frombits(getUint32(r, le))
		v.F32 = x
		v.Valid = x != math.MaxFloat32
	case KindF64:
		x := math.Float64frombits(getUint64(r, le))
		v.F64 = x
		v.Valid = x != math.MaxFloat64
	}

	return v
}

func validU8(x byte, zeroIsBad bool) bool {
	if zeroIsBad {
		return x != 0
	}
	return x != 0xFF
}

func validU16(x uint16, zeroIsBad bool) bool {
	if zeroIsBad {
		return x != 0
	}
	return x != 0xFFFF
}

func validU32(x uint32, zeroIsBad bool) bool {
	if zeroIsBad {
		return x != 0
	}
	return x != 0xFFFFFFFF
}

func validU64(x uint64, zeroIsBad bool) bool {
	if zeroIsBad {
		return x != 0
	}
	return x != 0xFFFFFFFFFFFFFFFF
}

func getUint16(r []byte, le bool) uint16 {
	if le {
		return uint16(r[0]) | uint16(r[1])<<8
	}
	return uint16(r[1]) | uint16(r[0])<<8
}

func getUint32(r []byte, le bool) uint32 {
	if le {
		return uint32(r[0]) | uint32(r[1])<<8 | uint32(r[2])<<16 | uint32(r[3])<<24
	}
	return uint32(r[3]) | uint32(r[2])<<8 | uint32(r[1])<<16 | uint32(r[0])<<24
}

func getUint64(r []byte, le bool) uint64 {
	if le {
		return uint64(r[0]) | uint64(r[1])<<8 | uint64(r[2])<<16 | uint64(r[3])<<24 |
			uint64(r[4])<<32 | uint64(r[5])<<40 | uint64(r[6])<<48 | uint64(r[7])<<56
	}
	return uint64(r[7]) | uint64(r[6])<<8 | uint64(r[5])<<16 | uint64(r[4])<<24 |
		uint64(r[3])<<32 | uint64(r[2])<<40 | uint64(r[1])<<48 | uint64(r[0])<<56
}

// NewFieldForTest constructs a Field token directly, so that tests can
// exercise array-field continuation and invalid-marker handling without a
// full definition/data byte stream. Only this package's own tests use it.
func NewFieldForTest(fieldsRemaining uint8, bytesRemaining uint8, littleEndian bool, base BaseType) *Field {
	return &Field{
		fieldsRemaining: fieldsRemaining,
		bytesRemaining:  bytesRemaining,
		littleEndian:    littleEndian,
		base:            base,
	}
}
