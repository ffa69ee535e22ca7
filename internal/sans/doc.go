// Package sans implements the finite-state machine at the core of the FIT
// decoder: a set of linearly-consumed state tokens that resolve document
// framing, definition-record layout, and data-record field values.
//
// Each token carries only a consumed flag plus the minimum counters needed
// for the next transition. None of them performs I/O; callers (the slice and
// reader drivers in the root package) are responsible for sourcing bytes,
// tracking cursors, and accumulating the CRC. Tokens are handed out as
// pointers, and each transition allocates its successor token on the heap,
// so the kernel is not allocation-free.
//
// Since Go has neither linear types nor sum types, two conventions are used
// throughout: a token's Advance method panics if called on an
// already-consumed token (a runtime substitute for move-only types), and a
// transition returns a kind tag alongside one pointer result per possible
// successor, of which only the one named by the tag is non-nil (a
// substitute for an Either).
package sans
