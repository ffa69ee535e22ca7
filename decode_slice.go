package fit

import (
	"github.com/scigolib/fit/internal/sans"
	"github.com/scigolib/fit/internal/utils"
)

// DecodeSlice decodes every record in a complete in-memory FIT document,
// dispatching decoded values to sink. The trailing CRC-16 is validated
// eagerly, against a value computed over the document header and the whole
// record section, before any record is dispatched.
func DecodeSlice(r []byte, sink FromRecords) error {
	return decodeSlice(r, sink, nil)
}

// DecodeSliceObserved behaves like DecodeSlice but additionally reports to
// observe, once per data record, a fingerprint of the raw bytes of the
// definition message governing that record.
func DecodeSliceObserved(r []byte, sink FromRecords, observe func(local uint8, global uint16, fingerprint uint64)) error {
	return decodeSlice(r, sink, observe)
}

func decodeSlice(r []byte, sink FromRecords, observe func(local uint8, global uint16, fingerprint uint64)) error {
	pos := 0

	cursor := func(n int) ([]byte, error) {
		if pos+n > len(r) {
			return nil, ErrEndOfSlice
		}
		b := r[pos : pos+n]
		pos += n
		return b, nil
	}

	var header [12]byte
	raw, err := cursor(12)
	if err != nil {
		return utils.WrapError("decoding document header", err)
	}
	copy(header[:], raw)

	dh := sans.NewDocumentHeader()
	size, extended, err := dh.Advance(header)
	if err != nil {
		return utils.WrapError("decoding document header", err)
	}

	var recordHeader *sans.RecordHeader
	if extended {
		eraw, err := cursor(2)
		if err != nil {
			return utils.WrapError("decoding extended document header", err)
		}
		var ebuf [2]byte
		copy(ebuf[:], eraw)
		recordHeader = sans.NewExtendedDocumentHeader().Advance(ebuf)
	} else {
		recordHeader = sans.NewRecordHeader()
	}

	end := pos + int(size)
	if end+2 > len(r) {
		return ErrEndOfSlice
	}

	found := uint16(r[end]) | uint16(r[end+1])<<8
	calculated := sans.UpdateCRCBytes(0, r[:end])
	if found != calculated {
		return &CRCError{Found: found, Calculated: calculated}
	}

	var definitionOffset [16]int
	var definitionLength [16]int

	for pos < end {
		hraw, err := cursor(1)
		if err != nil {
			return utils.WrapError("decoding record header", err)
		}
		var hbuf [1]byte
		copy(hbuf[:], hraw)

		local, kind, timeOffset, err := recordHeader.Advance(hbuf)
		if err != nil {
			return utils.WrapError("decoding record header", err)
		}

		switch kind {
		case sans.ToDefinition:
			start := pos
			def := sans.NewDefinition()

			draw, err := cursor(5)
			if err != nil {
				return utils.WrapError("decoding definition", err)
			}
			var dbuf [5]byte
			copy(dbuf[:], draw)

			dkind, dfield, drec := def.Advance(dbuf)
			for dkind == sans.DefinitionToField {
				fraw, err := cursor(3)
				if err != nil {
					return utils.WrapError("decoding definition field", err)
				}
				var fbuf [3]byte
				copy(fbuf[:], fraw)
				dkind, dfield, drec = dfield.Advance(fbuf)
			}

			recordHeader = drec
			definitionOffset[local] = start
			definitionLength[local] = pos - start

		case sans.ToDefinitionAlt:
			start := definitionOffset[local]
			length := definitionLength[local]
			if start+length > len(r) {
				return ErrEndOfSlice
			}
			defBytes := r[start : start+length]

			rec, err := decodeDataRecord(local, defBytes, cursor, timeOffset, sink, observe)
			if err != nil {
				return utils.WrapError("decoding data record", err)
			}
			recordHeader = rec
		}
	}

	return nil
}
