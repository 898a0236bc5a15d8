package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// EncodeBool writes v as a single 0x00/0x01 byte.
func EncodeBool(w io.Writer, v bool) error {
	b := byte(0x00)
	if v {
		b = 0x01
	}
	_, err := w.Write([]byte{b})
	return err
}

// DecodeBool reads a single byte, failing with ErrInvalidData for any value
// other than 0x00 or 0x01.
func DecodeBool(r io.Reader) (bool, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return false, fmt.Errorf("%w: truncated bool", ErrUnexpectedEOF)
	}
	switch b[0] {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, fmt.Errorf("%w: invalid bool byte 0x%02x", ErrInvalidData, b[0])
	}
}

// EncodeByte writes a signed 8-bit integer.
func EncodeByte(w io.Writer, v int8) error {
	_, err := w.Write([]byte{byte(v)})
	return err
}

// DecodeByte reads a signed 8-bit integer.
func DecodeByte(r io.Reader) (int8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("%w: truncated byte", ErrUnexpectedEOF)
	}
	return int8(b[0]), nil
}

// EncodeUnsignedByte writes an unsigned 8-bit integer.
func EncodeUnsignedByte(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

// DecodeUnsignedByte reads an unsigned 8-bit integer.
func DecodeUnsignedByte(r io.Reader) (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("%w: truncated unsigned byte", ErrUnexpectedEOF)
	}
	return b[0], nil
}

// EncodeShort writes a big-endian signed 16-bit integer.
func EncodeShort(w io.Writer, v int16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(v))
	_, err := w.Write(buf[:])
	return err
}

// DecodeShort reads a big-endian signed 16-bit integer.
func DecodeShort(r io.Reader) (int16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: truncated short", ErrUnexpectedEOF)
	}
	return int16(binary.BigEndian.Uint16(buf[:])), nil
}

// EncodeUnsignedShort writes a big-endian unsigned 16-bit integer, used for
// port numbers.
func EncodeUnsignedShort(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// DecodeUnsignedShort reads a big-endian unsigned 16-bit integer.
func DecodeUnsignedShort(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: truncated unsigned short", ErrUnexpectedEOF)
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// EncodeInt writes a big-endian signed 32-bit integer.
func EncodeInt(w io.Writer, v int32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	_, err := w.Write(buf[:])
	return err
}

// DecodeInt reads a big-endian signed 32-bit integer.
func DecodeInt(r io.Reader) (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: truncated int", ErrUnexpectedEOF)
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

// EncodeLong writes a big-endian signed 64-bit integer.
func EncodeLong(w io.Writer, v int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	_, err := w.Write(buf[:])
	return err
}

// DecodeLong reads a big-endian signed 64-bit integer.
func DecodeLong(r io.Reader) (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: truncated long", ErrUnexpectedEOF)
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

// EncodeFloat writes a big-endian IEEE-754 single-precision float.
func EncodeFloat(w io.Writer, v float32) error {
	return EncodeInt(w, int32(math.Float32bits(v)))
}

// DecodeFloat reads a big-endian IEEE-754 single-precision float.
func DecodeFloat(r io.Reader) (float32, error) {
	bits, err := DecodeInt(r)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(bits)), nil
}

// EncodeDouble writes a big-endian IEEE-754 double-precision float.
func EncodeDouble(w io.Writer, v float64) error {
	return EncodeLong(w, int64(math.Float64bits(v)))
}

// DecodeDouble reads a big-endian IEEE-754 double-precision float.
func DecodeDouble(r io.Reader) (float64, error) {
	bits, err := DecodeLong(r)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(bits)), nil
}
