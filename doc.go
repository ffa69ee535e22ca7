// Package fit decodes Garmin's FIT binary activity format: a
// self-describing, record-oriented container made of interleaved
// definition and data records, framed by a short document header and
// closed with a CRC-16 checksum.
//
// Two decoders are provided, matching the two ways a caller might have the
// bytes available: DecodeSlice for an already-loaded document (it checks
// the CRC eagerly, before dispatching any record), and DecodeReader for a
// document streamed incrementally from an io.Reader (it accumulates the
// CRC as it reads and checks it once the record section ends). Both
// dispatch decoded values to a FromRecords sink; see that type's
// documentation, and NopRecord's, for how to bind sink methods to a
// concrete record's fields.
//
// The decoding state machine itself lives in internal/sans: a set of
// linearly-consumed tokens with no knowledge of where their bytes come
// from. The two drivers in this package are what supplies those bytes,
// tracks cursors, and accumulates the CRC.
package fit
