package fit

import (
	"errors"
	"fmt"
)

// ErrEndOfSlice is returned when a slice-based decode runs out of bytes
// before the record section's declared length is reached.
var ErrEndOfSlice = errors.New("unexpectedly reached the end of the slice")

// CRCError reports a mismatch between the CRC-16 value found at the end of
// a document and the value this decoder computed over the document header
// and record section.
type CRCError struct {
	Found      uint16
	Calculated uint16
}

func (e *CRCError) Error() string {
	return fmt.Sprintf("crc mismatch: found 0x%04X, calculated 0x%04X", e.Found, e.Calculated)
}
