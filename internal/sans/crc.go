package sans

// crcTable is the 16-entry half-byte lookup table for the FIT CRC-16.
var crcTable = [16]uint16{
	0x0000, 0xCC01, 0xD801, 0x1400, 0xF001, 0x3C00, 0x2800, 0xE401,
	0xA001, 0x6C00, 0x7800, 0xB401, 0x5000, 0x9C01, 0x8801, 0x4400,
}

// UpdateCRC folds a single byte into a running CRC-16 accumulator. The
// initial state is 0; callers fold the document header and every record
// byte (but not the trailing CRC bytes themselves) through this function.
func UpdateCRC(crc uint16, b byte) uint16 {
	tmp := crcTable[crc&0xF]
	crc = (crc >> 4) & 0x0FFF
	crc ^= tmp ^ crcTable[b&0xF]

	tmp = crcTable[(crc)&0xF]
	crc = (crc >> 4) & 0x0FFF
	crc ^= tmp ^ crcTable[(b>>4)&0xF]

	return crc
}

// UpdateCRCBytes folds a slice of bytes into a running CRC-16 accumulator.
func UpdateCRCBytes(crc uint16, bs []byte) uint16 {
	for _, b := range bs {
		crc = UpdateCRC(crc, b)
	}
	return crc
}
