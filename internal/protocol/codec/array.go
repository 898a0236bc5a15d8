package codec

import (
	"fmt"
	"io"
)

// EncodePrefixedArray writes a VarInt length followed by each element
// encoded in order via encodeItem.
func EncodePrefixedArray[T any](w io.Writer, items []T, encodeItem func(io.Writer, T) error) error {
	if err := VarInt(len(items)).EncodeTo(w); err != nil {
		return err
	}
	for _, item := range items {
		if err := encodeItem(w, item); err != nil {
			return err
		}
	}
	return nil
}

// DecodePrefixedArray reads a VarInt length N then decodes N items.
func DecodePrefixedArray[T any](r io.Reader, decodeItem func(io.Reader) (T, error)) ([]T, error) {
	n, err := DecodeVarInt(r)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative array length", ErrInvalidData)
	}
	items := make([]T, 0, n)
	for i := VarInt(0); i < n; i++ {
		item, err := decodeItem(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// EncodeBoundedPrefixedArray is EncodePrefixedArray with an encode-time
// maximum-length check.
func EncodeBoundedPrefixedArray[T any](w io.Writer, items []T, max int, encodeItem func(io.Writer, T) error) error {
	if len(items) > max {
		return fmt.Errorf("%w: array length %d exceeds max %d", ErrInvalidData, len(items), max)
	}
	return EncodePrefixedArray(w, items, encodeItem)
}

// DecodeBoundedPrefixedArray reads the VarInt length and rejects it before
// decoding any element if it exceeds max.
func DecodeBoundedPrefixedArray[T any](r io.Reader, max int, decodeItem func(io.Reader) (T, error)) ([]T, error) {
	n, err := DecodeVarInt(r)
	if err != nil {
		return nil, err
	}
	if n < 0 || int(n) > max {
		return nil, fmt.Errorf("%w: array length %d exceeds max %d", ErrInvalidData, n, max)
	}
	items := make([]T, 0, n)
	for i := VarInt(0); i < n; i++ {
		item, err := decodeItem(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// EncodeByteSlice writes a byte slice as a PrefixedArray<u8>.
func EncodeByteSlice(w io.Writer, data []byte) error {
	if err := VarInt(len(data)).EncodeTo(w); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// DecodeByteSlice reads a PrefixedArray<u8>.
func DecodeByteSlice(r io.Reader) ([]byte, error) {
	n, err := DecodeVarInt(r)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative byte array length", ErrInvalidData)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: truncated byte array", ErrUnexpectedEOF)
	}
	return buf, nil
}

// EncodeRawTail writes data with no length prefix at all. Only valid as the
// trailing field of a frame, where the frame length implicitly bounds it.
func EncodeRawTail(w io.Writer, data []byte) error {
	_, err := w.Write(data)
	return err
}

// DecodeRawTail reads every remaining byte from r.
func DecodeRawTail(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}
