package fit

import "github.com/cespare/xxhash/v2"

// fingerprintDefinition hashes a definition message's raw bytes (header
// plus field descriptors) for DefinitionObserver. The hash carries no
// decoding meaning; it exists purely so a caller can cheaply tell whether
// two definitions for the same local message number are byte-identical.
func fingerprintDefinition(raw []byte) uint64 {
	return xxhash.Sum64(raw)
}
