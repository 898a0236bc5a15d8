package conn

import "errors"

// Sentinel error kinds specific to connection-level handling, beyond the
// codec-level ErrInvalidData/ErrUnexpectedEOF.
var (
	// ErrProtocolViolation is a legal field value that is illegal in the
	// connection's current state.
	ErrProtocolViolation = errors.New("conn: protocol violation")

	// ErrCrypto covers RSA decrypt failures and verify-token mismatches.
	ErrCrypto = errors.New("conn: crypto failure")

	// ErrExternal covers a non-200 response from the session service.
	ErrExternal = errors.New("conn: external service failure")
)
