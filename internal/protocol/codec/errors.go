// Package codec implements the primitive and container wire encodings used
// throughout the protocol: fixed-width integers, VarInt/VarLong, bounded
// strings, prefixed arrays, bitfields and the small set of composite types
// built from them.
package codec

import "errors"

// Sentinel error kinds. Every codec failure wraps one of these so callers
// can classify a failure with errors.Is without parsing message text.
var (
	// ErrInvalidData covers malformed VarInts, bad UTF-8, bounded strings
	// over their length limit, unknown enum discriminants, and arrays over
	// their declared maximum.
	ErrInvalidData = errors.New("codec: invalid data")

	// ErrUnexpectedEOF covers a truncated frame or a field cut short.
	ErrUnexpectedEOF = errors.New("codec: unexpected eof")
)
