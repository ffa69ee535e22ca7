package fit

import (
	"io"

	"github.com/scigolib/fit/internal/sans"
	"github.com/scigolib/fit/internal/utils"
)

// DecodeReader decodes every record in a FIT document read incrementally
// from r, dispatching decoded values to sink. Unlike DecodeSlice, the
// trailing CRC-16 is accumulated record-by-record as bytes are read and
// checked only once the record section is exhausted; this lets it decode
// documents larger than memory, or sourced from a non-seekable stream.
func DecodeReader(r io.Reader, sink FromRecords) error {
	return decodeReader(r, sink, nil)
}

// DecodeReaderObserved behaves like DecodeReader but additionally reports
// to observe, once per data record, a fingerprint of the raw bytes of the
// definition message governing that record.
func DecodeReaderObserved(r io.Reader, sink FromRecords, observe func(local uint8, global uint16, fingerprint uint64)) error {
	return decodeReader(r, sink, observe)
}

func decodeReader(r io.Reader, sink FromRecords, observe func(local uint8, global uint16, fingerprint uint64)) error {
	var crc uint16
	consumed := 0

	read := func(n int) ([]byte, error) {
		buf := utils.GetBuffer(n)
		if _, err := io.ReadFull(r, buf); err != nil {
			utils.ReleaseBuffer(buf)
			return nil, err
		}
		crc = sans.UpdateCRCBytes(crc, buf)
		consumed += n

		out := make([]byte, n)
		copy(out, buf)
		utils.ReleaseBuffer(buf)
		return out, nil
	}

	// readRaw is identical to read except it does not fold the bytes into
	// the running CRC accumulator; it exists solely to consume the
	// trailing CRC field itself, which is not covered by its own check.
	readRaw := func(n int) ([]byte, error) {
		buf := utils.GetBuffer(n)
		if _, err := io.ReadFull(r, buf); err != nil {
			utils.ReleaseBuffer(buf)
			return nil, err
		}
		out := make([]byte, n)
		copy(out, buf)
		utils.ReleaseBuffer(buf)
		return out, nil
	}

	var header [12]byte
	raw, err := read(12)
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
		eraw, err := read(2)
		if err != nil {
			return utils.WrapError("decoding extended document header", err)
		}
		var ebuf [2]byte
		copy(ebuf[:], eraw)
		recordHeader = sans.NewExtendedDocumentHeader().Advance(ebuf)
	} else {
		recordHeader = sans.NewRecordHeader()
	}

	end := consumed + int(size)
	var definitions [16][]byte

	for consumed < end {
		hraw, err := read(1)
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
			def := sans.NewDefinition()

			draw, err := read(5)
			if err != nil {
				return utils.WrapError("decoding definition", err)
			}
			captured := append([]byte(nil), draw...)

			var dbuf [5]byte
			copy(dbuf[:], draw)
			dkind, dfield, drec := def.Advance(dbuf)

			for dkind == sans.DefinitionToField {
				fraw, err := read(3)
				if err != nil {
					return utils.WrapError("decoding definition field", err)
				}
				captured = append(captured, fraw...)

				var fbuf [3]byte
				copy(fbuf[:], fraw)
				dkind, dfield, drec = dfield.Advance(fbuf)
			}

			recordHeader = drec
			definitions[local] = captured

		case sans.ToDefinitionAlt:
			defBytes := definitions[local]

			rec, err := decodeDataRecord(local, defBytes, read, timeOffset, sink, observe)
			if err != nil {
				return utils.WrapError("decoding data record", err)
			}
			recordHeader = rec
		}
	}

	traw, err := readRaw(2)
	if err != nil {
		return utils.WrapError("decoding trailing crc", err)
	}
	found := uint16(traw[0]) | uint16(traw[1])<<8

	if found != crc {
		return &CRCError{Found: found, Calculated: crc}
	}

	return nil
}
