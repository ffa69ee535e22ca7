package fit

import "github.com/scigolib/fit/internal/sans"

// take pulls the next n bytes needed to decode a field element from
// wherever a driver sources live record bytes: a slice cursor or a
// buffered io.Reader. Implementations report an error if fewer than n
// bytes are available.
type take func(n int) ([]byte, error)

// observeFunc reports a decoded definition's fingerprint, together with
// the local and global message numbers it belongs to, to a caller-supplied
// observer (see DecodeSliceObserved / DecodeReaderObserved).
type observeFunc func(local uint8, global uint16, fingerprint uint64)

// decodeDataRecord decodes the second pass of one data record: the
// definition bytes captured during the first pass (defBytes, replayed
// byte-for-byte rather than re-read from the cursor) combined with field
// value bytes sourced freshly through valueTake. It dispatches decoded
// values to sink and returns the RecordHeader token for the next record.
//
// A data record can reference a local message slot no definition has
// touched yet. Per the format's zero-initialised default, decodeDataRecord
// treats that as a record with no known fields: it dispatches nothing and
// returns immediately, rather than failing the whole decode.
func decodeDataRecord(local uint8, defBytes []byte, valueTake take, timeOffset *uint8, sink FromRecords, observe observeFunc) (*sans.RecordHeader, error) {
	if len(defBytes) == 0 {
		return sans.NewRecordHeader(), nil
	}

	defPos := 0
	defTake := func(n int) ([]byte, error) {
		if defPos+n > len(defBytes) {
			return nil, ErrEndOfSlice
		}
		b := defBytes[defPos : defPos+n]
		defPos += n
		return b, nil
	}

	hdr, err := defTake(5)
	if err != nil {
		return nil, err
	}
	var arr5 [5]byte
	copy(arr5[:], hdr)

	da := sans.NewDefinitionAlt()
	global, dkind, dfa, rec := da.Advance(arr5)

	obs, sinkObserves := sink.(DefinitionObserver)
	if observe != nil || sinkObserves {
		fp := fingerprintDefinition(defBytes)
		if observe != nil {
			observe(local, global, fp)
		}
		if sinkObserves {
			obs.ObserveDefinition(local, global, fp)
		}
	}

	record, hasRecord := sink.AddRecord(global)
	if hasRecord && timeOffset != nil {
		record.AddTimeOffset(*timeOffset)
	}

	if dkind == sans.DefinitionAltToRecordHeader {
		return rec, nil
	}

	for {
		fieldRaw, err := defTake(3)
		if err != nil {
			return nil, err
		}
		var arr3 [3]byte
		copy(arr3[:], fieldRaw)

		fieldNum, field, err := dfa.Advance(arr3)
		if err != nil {
			return nil, err
		}

		var tkind sans.FieldTransitionKind
		for {
			valBytes, err := valueTake(int(field.Width()))
			if err != nil {
				return nil, err
			}

			value, k, next := field.Advance(valBytes)
			if hasRecord {
				dispatchValue(record, fieldNum, value)
			}

			tkind = k
			if k == sans.FieldToElement {
				field = next
				continue
			}
			break
		}

		if tkind == sans.FieldToRecordHeader {
			return sans.NewRecordHeader(), nil
		}

		dfa = sans.NewDefinitionFieldAltResume(field.FieldsRemaining(), field.LittleEndian())
	}
}

func dispatchValue(rec FromRecord, field uint8, v sans.Value) {
	if !v.Valid {
		return
	}

	switch v.Kind {
	case sans.KindU8:
		rec.AddU8(field, v.U8)
	case sans.KindI8:
		rec.AddI8(field, v.I8)
	case sans.KindU16:
		rec.AddU16(field, v.U16)
	case sans.KindI16:
		rec.AddI16(field, v.I16)
	case sans.KindU32:
		rec.AddU32(field, v.U32)
	case sans.KindI32:
		rec.AddI32(field, v.I32)
	case sans.KindU64:
		rec.AddU64(field, v.U64)
	case sans.KindI64:
		rec.AddI64(field, v.I64)
	case sans.KindF32:
		rec.AddF32(field, v.F32)
	case sans.KindF64:
		rec.AddF64(field, v.F64)
	}
}
