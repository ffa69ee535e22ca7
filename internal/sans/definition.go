package sans

import "encoding/binary"

// DefinitionTransitionKind tags which successor a Definition or
// DefinitionField transition yields.
type DefinitionTransitionKind uint8

const (
	// DefinitionToField means more field descriptors follow in this
	// definition message.
	DefinitionToField DefinitionTransitionKind = iota
	// DefinitionToRecordHeader means the definition message is exhausted.
	DefinitionToRecordHeader
)

// Definition performs a first-pass decoding of a definition message: it
// extracts only how many field descriptors follow, so the driver knows how
// many raw bytes to capture for the second pass. It does not interpret
// architecture, global message number, or field descriptors; DefinitionAlt
// does that once the captured bytes are re-fed.
type Definition struct {
	advanced bool
}

// NewDefinition constructs the token.
func NewDefinition() *Definition { return &Definition{} }

// Advance decodes the fixed 5-byte portion of a definition message
// (reserved, architecture, global_message[2], fields_remaining).
func (t *Definition) Advance(r [5]byte) (DefinitionTransitionKind, *DefinitionField, *RecordHeader) {
	if t.advanced {
		panic("sans: Definition advanced twice")
	}
	t.advanced = true

	fieldsRemaining := r[4]
	if fieldsRemaining != 0 {
		return DefinitionToField, &DefinitionField{fieldsRemaining: fieldsRemaining}, nil
	}
	return DefinitionToRecordHeader, nil, NewRecordHeader()
}

// DefinitionField performs a first-pass decoding of a definition field
// descriptor: it counts the descriptor down, discarding its 3 raw bytes.
type DefinitionField struct {
	fieldsRemaining uint8
	advanced        bool
}

// Advance consumes one field descriptor's 3 raw bytes.
func (t *DefinitionField) Advance(_ [3]byte) (DefinitionTransitionKind, *DefinitionField, *RecordHeader) {
	if t.advanced {
		panic("sans: DefinitionField advanced twice")
	}
	t.advanced = true

	remaining := t.fieldsRemaining - 1
	if remaining != 0 {
		return DefinitionToField, &DefinitionField{fieldsRemaining: remaining}, nil
	}
	return DefinitionToRecordHeader, nil, NewRecordHeader()
}

// DefinitionAltTransitionKind tags which successor a DefinitionAlt
// transition yields.
type DefinitionAltTransitionKind uint8

const (
	// DefinitionAltToFieldAlt means at least one field descriptor follows.
	DefinitionAltToFieldAlt DefinitionAltTransitionKind = iota
	// DefinitionAltToRecordHeader means the definition carries no fields.
	DefinitionAltToRecordHeader
)

// DefinitionAlt decodes a definition message on the second pass, using
// bytes re-fed from the buffer the first pass captured rather than bytes
// read fresh off the cursor.
type DefinitionAlt struct {
	advanced bool
}

// NewDefinitionAlt constructs the token.
func NewDefinitionAlt() *DefinitionAlt { return &DefinitionAlt{} }

// Advance decodes the definition message and returns the resolved global
// message number alongside the successor.
func (t *DefinitionAlt) Advance(r [5]byte) (globalMessage uint16, kind DefinitionAltTransitionKind, field *DefinitionFieldAlt, rec *RecordHeader) {
	if t.advanced {
		panic("sans: DefinitionAlt advanced twice")
	}
	t.advanced = true

	architecture := r[1]
	littleEndian := architecture == 0

	if littleEndian {
		globalMessage = binary.LittleEndian.Uint16(r[2:4])
	} else {
		globalMessage = binary.BigEndian.Uint16(r[2:4])
	}

	fieldsRemaining := r[4]
	if fieldsRemaining != 0 {
		return globalMessage, DefinitionAltToFieldAlt, &DefinitionFieldAlt{
			fieldsRemaining: fieldsRemaining,
			littleEndian:    littleEndian,
		}, nil
	}
	return globalMessage, DefinitionAltToRecordHeader, nil, NewRecordHeader()
}

// DefinitionFieldAlt decodes a definition field descriptor on the second
// pass and yields the Field token ready to decode the corresponding data
// record value.
type DefinitionFieldAlt struct {
	fieldsRemaining uint8
	littleEndian    bool
	advanced        bool
}

// NewDefinitionFieldAltResume reconstructs a DefinitionFieldAlt with the
// given counters. Drivers use this to resume decoding the remaining field
// descriptors of a definition after a Field token finishes decoding the
// data value of the previous descriptor; the original token cannot be
// reused because it was already consumed producing that Field.
func NewDefinitionFieldAltResume(fieldsRemaining uint8, littleEndian bool) *DefinitionFieldAlt {
	return &DefinitionFieldAlt{fieldsRemaining: fieldsRemaining, littleEndian: littleEndian}
}

// Advance decodes one field descriptor (field number, size, base type) and
// constructs the Field token that will decode its data-record value.
func (t *DefinitionFieldAlt) Advance(r [3]byte) (fieldNum uint8, field *Field, err error) {
	if t.advanced {
		panic("sans: DefinitionFieldAlt advanced twice")
	}
	t.advanced = true

	fieldNum = r[0]
	size := r[1]
	baseTypeCode := r[2]

	bt, err := LookupBaseType(baseTypeCode)
	if err != nil {
		return 0, nil, err
	}

	field = &Field{
		fieldsRemaining: t.fieldsRemaining - 1,
		bytesRemaining:  size,
		littleEndian:    t.littleEndian,
		base:            bt,
	}
	return fieldNum, field, nil
}
