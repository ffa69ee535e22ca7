package fit

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/fit/internal/sans"
)

type capturedRecord struct {
	NopRecord
	Global uint16
	Values map[uint8]uint32
}

func (r *capturedRecord) AddU32(field uint8, v uint32) {
	r.Values[field] = v
}

func (r *capturedRecord) AddU16(field uint8, v uint16) {
	r.Values[field] = uint32(v)
}

type capturingSink struct {
	Records []*capturedRecord
}

func (s *capturingSink) AddRecord(global uint16) (FromRecord, bool) {
	rec := &capturedRecord{Global: global, Values: make(map[uint8]uint32)}
	s.Records = append(s.Records, rec)
	return rec, true
}

// buildDocument assembles a complete, CRC-terminated FIT document from a
// record-section body.
func buildDocument(body []byte) []byte {
	header := make([]byte, 12)
	header[0] = 12
	header[1] = 0x10
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(body)))
	copy(header[8:12], ".FIT")

	doc := append(header, body...)
	crc := sans.UpdateCRCBytes(0, doc)

	crcBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(crcBytes, crc)
	return append(doc, crcBytes...)
}

// oneRecordBody builds a record section with a single definition (local 0,
// global 20, two little-endian fields: uint32 field 253, uint16 field 7)
// followed by one data record.
func oneRecordBody(timestamp uint32, power uint16) []byte {
	var body []byte

	body = append(body, 0x40) // definition record, local 0
	body = append(body, 0, 0, 0x14, 0x00, 2)
	body = append(body, 253, 4, 0x86) // field 253, size 4, uint32
	body = append(body, 7, 2, 0x84)   // field 7, size 2, uint16

	body = append(body, 0x00) // data record, local 0
	ts := make([]byte, 4)
	binary.LittleEndian.PutUint32(ts, timestamp)
	body = append(body, ts...)
	pw := make([]byte, 2)
	binary.LittleEndian.PutUint16(pw, power)
	body = append(body, pw...)

	return body
}

func TestDecodeSlice_GoldenPath(t *testing.T) {
	doc := buildDocument(oneRecordBody(1000, 250))

	sink := &capturingSink{}
	err := DecodeSlice(doc, sink)
	require.NoError(t, err)
	require.Len(t, sink.Records, 1)
	require.Equal(t, uint16(20), sink.Records[0].Global)
	require.Equal(t, uint32(1000), sink.Records[0].Values[253])
	require.Equal(t, uint32(250), sink.Records[0].Values[7])
}

func TestDecodeSlice_InvalidMarkerSuppressed(t *testing.T) {
	doc := buildDocument(oneRecordBody(0xFFFFFFFF, 250))

	sink := &capturingSink{}
	err := DecodeSlice(doc, sink)
	require.NoError(t, err)
	require.Len(t, sink.Records, 1)

	_, hasTimestamp := sink.Records[0].Values[253]
	require.False(t, hasTimestamp)
	require.Equal(t, uint32(250), sink.Records[0].Values[7])
}

func TestDecodeSlice_BadSignature(t *testing.T) {
	doc := buildDocument(oneRecordBody(1, 1))
	doc[8] = 'X'

	sink := &capturingSink{}
	err := DecodeSlice(doc, sink)
	require.ErrorIs(t, err, sans.ErrNotFitData)
}

func TestDecodeSlice_CRCMismatch(t *testing.T) {
	doc := buildDocument(oneRecordBody(1, 1))
	doc[len(doc)-1] ^= 0xFF

	sink := &capturingSink{}
	err := DecodeSlice(doc, sink)

	var crcErr *CRCError
	require.ErrorAs(t, err, &crcErr)
}

func TestDecodeSlice_TruncatedDocument(t *testing.T) {
	doc := buildDocument(oneRecordBody(1, 1))
	truncated := doc[:len(doc)-5]

	sink := &capturingSink{}
	err := DecodeSlice(truncated, sink)
	require.Error(t, err)
}

func TestDecodeSlice_DeveloperDataRejected(t *testing.T) {
	body := []byte{0x20} // developer-data flag set
	doc := buildDocument(body)

	sink := &capturingSink{}
	err := DecodeSlice(doc, sink)
	require.ErrorIs(t, err, sans.ErrDeveloperData)
}

func TestDecodeSlice_DiscardedRecordStillAdvancesCursor(t *testing.T) {
	body := oneRecordBody(10, 20)
	body = append(body, 0x00) // second data record, same definition
	ts := make([]byte, 4)
	binary.LittleEndian.PutUint32(ts, 30)
	body = append(body, ts...)
	pw := make([]byte, 2)
	binary.LittleEndian.PutUint16(pw, 40)
	body = append(body, pw...)

	doc := buildDocument(body)

	sink := &discardingSink{}
	err := DecodeSlice(doc, sink)
	require.NoError(t, err)
	require.Equal(t, 2, sink.count)
}

type discardingSink struct{ count int }

func (s *discardingSink) AddRecord(uint16) (FromRecord, bool) {
	s.count++
	return nil, false
}

func TestDecodeSlice_ObservedFingerprint(t *testing.T) {
	doc := buildDocument(oneRecordBody(1, 2))

	var observed []uint64
	sink := &capturingSink{}
	err := DecodeSliceObserved(doc, sink, func(local uint8, global uint16, fp uint64) {
		observed = append(observed, fp)
		require.Equal(t, uint8(0), local)
		require.Equal(t, uint16(20), global)
	})
	require.NoError(t, err)
	require.Len(t, observed, 1)
	require.NotZero(t, observed[0])
}
