package codec

import (
	"fmt"
	"io"

	uuid "github.com/satori/go.uuid"
)

// EncodeUUID writes a UUID as its 16 raw bytes (the big-endian concatenation
// of the most- and least-significant 64-bit halves, matching java.util.UUID).
func EncodeUUID(w io.Writer, id uuid.UUID) error {
	_, err := w.Write(id.Bytes())
	return err
}

// DecodeUUID reads 16 raw bytes into a UUID.
func DecodeUUID(r io.Reader) (uuid.UUID, error) {
	var buf [16]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return uuid.UUID{}, fmt.Errorf("%w: truncated uuid", ErrUnexpectedEOF)
	}
	id, err := uuid.FromBytes(buf[:])
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return id, nil
}
