package packet

import (
	"bytes"
	"fmt"
	"io"

	"github.com/meesudzu/ocelot/internal/protocol/codec"
)

// MaxFrameLength bounds the VarInt length prefix of an inbound frame,
// guarding against a malicious or corrupt length field requesting an
// unreasonable allocation.
const MaxFrameLength = 2 * 1024 * 1024

// ReadFrame reads one length-prefixed frame from r and returns its body as
// an owned buffer, decoupled from the underlying stream: codec failures
// while decoding the body can never leave the stream mid-field.
func ReadFrame(r io.Reader) ([]byte, error) {
	length, err := codec.DecodeVarInt(r)
	if err != nil {
		return nil, err
	}
	if length < 0 || int(length) > MaxFrameLength {
		return nil, fmt.Errorf("%w: frame length %d out of bounds", codec.ErrInvalidData, length)
	}
	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("%w: truncated frame body", codec.ErrUnexpectedEOF)
	}
	return body, nil
}

// WriteFrame prefixes body with a VarInt length and writes both to w in a
// single call.
func WriteFrame(w io.Writer, body []byte) error {
	var framed bytes.Buffer
	if err := codec.VarInt(len(body)).EncodeTo(&framed); err != nil {
		return err
	}
	framed.Write(body)
	_, err := w.Write(framed.Bytes())
	return err
}

// BuildPacket serializes id followed by the packet body produced by encode,
// ready to be passed to WriteFrame.
func BuildPacket(id codec.VarInt, encode func(io.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := id.EncodeTo(&buf); err != nil {
		return nil, err
	}
	if err := encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
