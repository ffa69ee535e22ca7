package sans

import (
	"errors"
	"fmt"
)

// ErrNotFitData is returned when a document header's signature bytes do not
// spell ".FIT".
var ErrNotFitData = errors.New("incorrect file type marker")

// UnknownHeaderLengthError is returned when a document header's length byte
// is neither 12 nor 14.
type UnknownHeaderLengthError struct {
	Length byte
}

func (e *UnknownHeaderLengthError) Error() string {
	return fmt.Sprintf("unknown header length (%d)", e.Length)
}

// ErrDeveloperData is returned when a record header flags developer-defined
// fields, which this decoder does not support.
var ErrDeveloperData = errors.New("found developer data")

// DocumentHeader is the sole entry point to the kernel. It decodes the
// first 12 bytes of a FIT document.
type DocumentHeader struct {
	advanced bool
}

// NewDocumentHeader constructs the initial state token.
func NewDocumentHeader() *DocumentHeader {
	return &DocumentHeader{}
}

// Advance decodes the 12-byte document header. It returns the declared
// length of the record section, whether the header carries two extra
// reserved bytes (header_size == 14), and an error if the signature or
// header length is invalid.
func (t *DocumentHeader) Advance(r [12]byte) (dataSize uint32, extended bool, err error) {
	if t.advanced {
		panic("sans: DocumentHeader advanced twice")
	}
	t.advanced = true

	headerSize := r[0]
	dataSize = uint32(r[4]) | uint32(r[5])<<8 | uint32(r[6])<<16 | uint32(r[7])<<24
	signature := r[8:12]

	if string(signature) != ".FIT" {
		return 0, false, ErrNotFitData
	}

	switch headerSize {
	case 14:
		return dataSize, true, nil
	case 12:
		return dataSize, false, nil
	default:
		return 0, false, &UnknownHeaderLengthError{Length: headerSize}
	}
}

// ExtendedDocumentHeader consumes the two reserved bytes present when
// header_size == 14 (typically a CRC over the header itself, which this
// decoder does not validate separately from the trailing document CRC).
type ExtendedDocumentHeader struct {
	advanced bool
}

// NewExtendedDocumentHeader constructs the token.
func NewExtendedDocumentHeader() *ExtendedDocumentHeader {
	return &ExtendedDocumentHeader{}
}

// Advance consumes the 2 reserved bytes and yields a RecordHeader token.
func (t *ExtendedDocumentHeader) Advance(_ [2]byte) *RecordHeader {
	if t.advanced {
		panic("sans: ExtendedDocumentHeader advanced twice")
	}
	t.advanced = true

	return NewRecordHeader()
}

// RecordHeader decodes a single one-byte record header: either a normal
// header (definition or data) or a compressed-timestamp header.
type RecordHeader struct {
	advanced bool
}

// NewRecordHeader constructs the token.
func NewRecordHeader() *RecordHeader {
	return &RecordHeader{}
}

// RecordHeaderKind tags which successor a RecordHeader transition yields.
type RecordHeaderKind uint8

const (
	// ToDefinition means the record is a (first-pass) definition record.
	ToDefinition RecordHeaderKind = iota
	// ToDefinitionAlt means the record is a data record; TimeOffset is set
	// only when the header used the compressed-timestamp encoding.
	ToDefinitionAlt
)

// Advance decodes the record header byte. LocalMessage is always in
// 0..15 (0..3 under a compressed header). TimeOffset is non-nil only when
// the compressed-timestamp encoding was used.
func (t *RecordHeader) Advance(r [1]byte) (localMessage uint8, kind RecordHeaderKind, timeOffset *uint8, err error) {
	if t.advanced {
		panic("sans: RecordHeader advanced twice")
	}
	t.advanced = true

	b := r[0]

	if b&0x80 != 0 {
		offset := b & 0x1F
		local := (b >> 5) & 0x03
		return local, ToDefinitionAlt, &offset, nil
	}

	local := b & 0x0F
	isDeveloper := b&0x20 != 0
	isDefinition := b&0x40 != 0

	if isDeveloper {
		return 0, 0, nil, ErrDeveloperData
	}

	if isDefinition {
		return local, ToDefinition, nil, nil
	}
	return local, ToDefinitionAlt, nil, nil
}
