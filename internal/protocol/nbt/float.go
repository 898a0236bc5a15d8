package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

func encodeFloatPayload(w io.Writer, v float32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], math.Float32bits(v))
	_, err := w.Write(buf[:])
	return err
}

func decodeFloatPayload(r io.Reader) (float32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: truncated float", ErrInvalidData)
	}
	return math.Float32frombits(binary.BigEndian.Uint32(buf[:])), nil
}

func encodeDoublePayload(w io.Writer, v float64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
	_, err := w.Write(buf[:])
	return err
}

func decodeDoublePayload(r io.Reader) (float64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: truncated double", ErrInvalidData)
	}
	return math.Float64frombits(binary.BigEndian.Uint64(buf[:])), nil
}
