package codec

import "io"

// EncodeOptional writes a boolean presence flag, then the value if present.
func EncodeOptional[T any](w io.Writer, value *T, encode func(io.Writer, T) error) error {
	if value == nil {
		return EncodeBool(w, false)
	}
	if err := EncodeBool(w, true); err != nil {
		return err
	}
	return encode(w, *value)
}

// DecodeOptional reads the presence flag and the value if present.
func DecodeOptional[T any](r io.Reader, decode func(io.Reader) (T, error)) (*T, error) {
	present, err := DecodeBool(r)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	value, err := decode(r)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
