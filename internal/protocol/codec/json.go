package codec

import (
	"encoding/json"
	"fmt"
	"io"
)

// EncodeJSON marshals value to JSON and writes it as a BoundedString<32767>.
func EncodeJSON(w io.Writer, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	bs, err := NewBoundedString(string(data), MaxStringLength)
	if err != nil {
		return err
	}
	return bs.EncodeTo(w)
}

// DecodeJSON reads a BoundedString<32767> and unmarshals it into out.
func DecodeJSON(r io.Reader, out any) error {
	bs, err := DecodeBoundedString(r, MaxStringLength)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(bs.Value), out); err != nil {
		return fmt.Errorf("%w: malformed json: %v", ErrInvalidData, err)
	}
	return nil
}
