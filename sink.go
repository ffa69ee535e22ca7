package fit

// FromRecords receives decoded data records as they're parsed. AddRecord
// is called once per data record with its global message number;
// returning (nil, false) still lets the record's fields decode (to keep
// cursors and the CRC in sync) but discards them without dispatch.
type FromRecords interface {
	AddRecord(global uint16) (FromRecord, bool)
}

// FromRecord receives the field values of a single data record. Embed
// NopRecord to pick up a no-op default for every method and override only
// the ones a given record cares about.
type FromRecord interface {
	AddTimeOffset(offset uint8)

	AddU8(field uint8, v uint8)
	AddI8(field uint8, v int8)
	AddU16(field uint8, v uint16)
	AddI16(field uint8, v int16)
	AddU32(field uint8, v uint32)
	AddI32(field uint8, v int32)
	AddU64(field uint8, v uint64)
	AddI64(field uint8, v int64)
	AddF32(field uint8, v float32)
	AddF64(field uint8, v float64)
}

// NopRecord implements FromRecord by discarding every value. Go has no
// default trait methods, so embedding NopRecord in a concrete record type
// is the substitute: only override the Add* methods that record actually
// cares about.
type NopRecord struct{}

func (NopRecord) AddTimeOffset(uint8) {}

func (NopRecord) AddU8(uint8, uint8)    {}
func (NopRecord) AddI8(uint8, int8)     {}
func (NopRecord) AddU16(uint8, uint16)  {}
func (NopRecord) AddI16(uint8, int16)   {}
func (NopRecord) AddU32(uint8, uint32)  {}
func (NopRecord) AddI32(uint8, int32)   {}
func (NopRecord) AddU64(uint8, uint64)  {}
func (NopRecord) AddI64(uint8, int64)   {}
func (NopRecord) AddF32(uint8, float32) {}
func (NopRecord) AddF64(uint8, float64) {}

// DefinitionObserver is an optional interface a FromRecords sink may
// implement to receive a diagnostic for every data record: a non-semantic
// fingerprint of the raw bytes of the definition message governing that
// record. A definition that no data record uses is never reported. Comparing
// fingerprints across definitions of the same local message number is a
// cheap way to notice when a device redefines a local message slot with a
// different field layout mid-stream, without keeping the layouts around
// for byte-by-byte comparison.
type DefinitionObserver interface {
	ObserveDefinition(localMessage uint8, globalMessage uint16, fingerprint uint64)
}
