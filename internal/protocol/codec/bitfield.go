package codec

import "io"

// Bitfield8 is a packed set of flags over an unsigned 8-bit backing integer,
// matching fields such as ClientInformation's DisplayedSkinParts.
type Bitfield8 uint8

// Has reports whether the bit at the given index is set.
func (b Bitfield8) Has(bit uint) bool {
	return b&(1<<bit) != 0
}

// WithBit returns b with the given bit index set to v.
func (b Bitfield8) WithBit(bit uint, v bool) Bitfield8 {
	if v {
		return b | (1 << bit)
	}
	return b &^ (1 << bit)
}

// EncodeTo writes the backing byte.
func (b Bitfield8) EncodeTo(w io.Writer) error {
	return EncodeUnsignedByte(w, uint8(b))
}

// DecodeBitfield8 reads the backing byte and returns it unchanged. Unknown
// bits are not cleared: every bit of the byte, recognized or not, is kept in
// the returned value.
func DecodeBitfield8(r io.Reader) (Bitfield8, error) {
	v, err := DecodeUnsignedByte(r)
	if err != nil {
		return 0, err
	}
	return Bitfield8(v), nil
}
