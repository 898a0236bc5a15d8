package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ErrInvalidData mirrors the protocol codec's sentinel so dispatch code can
// classify NBT failures the same way it classifies primitive/container
// failures.
var ErrInvalidData = fmt.Errorf("nbt: invalid data")

// EncodeTraditional writes nt in traditional framing: TagType, u16 name
// length, name bytes, then the tag payload.
func EncodeTraditional(w io.Writer, nt NamedTag) error {
	if nt.Tag == nil {
		return fmt.Errorf("%w: cannot encode nil tag", ErrInvalidData)
	}
	if err := writeTagType(w, nt.Tag.tagType()); err != nil {
		return err
	}
	if err := encodeNameString(w, nt.Name); err != nil {
		return err
	}
	return encodePayload(w, nt.Tag)
}

// DecodeTraditional reads a traditionally-framed NamedTag. A root TagType of
// End is rejected.
func DecodeTraditional(r io.Reader) (NamedTag, error) {
	tt, err := readTagType(r)
	if err != nil {
		return NamedTag{}, err
	}
	if tt == TagEnd {
		return NamedTag{}, fmt.Errorf("%w: root tag cannot be End", ErrInvalidData)
	}
	name, err := decodeNameString(r)
	if err != nil {
		return NamedTag{}, err
	}
	tag, err := decodePayload(r, tt)
	if err != nil {
		return NamedTag{}, err
	}
	return NamedTag{Name: name, Tag: tag}, nil
}

// EncodeNetwork writes nt in network framing: TagType followed directly by
// the payload, with no name or name-length slot at all.
func EncodeNetwork(w io.Writer, tag Tag) error {
	if tag == nil {
		return fmt.Errorf("%w: cannot encode nil tag", ErrInvalidData)
	}
	if err := writeTagType(w, tag.tagType()); err != nil {
		return err
	}
	return encodePayload(w, tag)
}

// DecodeNetwork reads a network-framed tag (synthesized with name ""). A
// root TagType of End is rejected.
func DecodeNetwork(r io.Reader) (NamedTag, error) {
	tt, err := readTagType(r)
	if err != nil {
		return NamedTag{}, err
	}
	if tt == TagEnd {
		return NamedTag{}, fmt.Errorf("%w: root tag cannot be End", ErrInvalidData)
	}
	tag, err := decodePayload(r, tt)
	if err != nil {
		return NamedTag{}, err
	}
	return NamedTag{Name: "", Tag: tag}, nil
}

func writeTagType(w io.Writer, tt TagType) error {
	_, err := w.Write([]byte{byte(tt)})
	return err
}

func readTagType(r io.Reader) (TagType, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("%w: truncated tag type", ErrInvalidData)
	}
	tt, ok := tagTypeFromID(b[0])
	if !ok {
		return 0, fmt.Errorf("%w: invalid tag type id %d", ErrInvalidData, b[0])
	}
	return tt, nil
}

// encodeNameString/decodeNameString implement NBT's u16-length-prefixed
// string framing. encodeNameString writes root names, Compound entry names
// and String tags; decodeNameString reads root names only.
func encodeNameString(w io.Writer, s string) error {
	if len(s) > 0xFFFF {
		return fmt.Errorf("%w: name too long", ErrInvalidData)
	}
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(s)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func decodeNameString(r io.Reader) (string, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return "", fmt.Errorf("%w: truncated name length", ErrInvalidData)
	}
	n := binary.BigEndian.Uint16(lenBuf[:])
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("%w: truncated name", ErrInvalidData)
	}
	return string(buf), nil
}

func encodePayload(w io.Writer, tag Tag) error {
	switch t := tag.(type) {
	case Byte:
		_, err := w.Write([]byte{byte(t)})
		return err
	case Short:
		var buf [2]byte
		binary.BigEndian.PutUint16(buf[:], uint16(t))
		_, err := w.Write(buf[:])
		return err
	case Int:
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], uint32(t))
		_, err := w.Write(buf[:])
		return err
	case Long:
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], uint64(t))
		_, err := w.Write(buf[:])
		return err
	case Float:
		return encodeFloatPayload(w, float32(t))
	case Double:
		return encodeDoublePayload(w, float64(t))
	case ByteArray:
		if err := writeInt32(w, int32(len(t))); err != nil {
			return err
		}
		for _, b := range t {
			if _, err := w.Write([]byte{byte(b)}); err != nil {
				return err
			}
		}
		return nil
	case String:
		return encodeNameString(w, string(t))
	case List:
		if err := writeTagType(w, t.ElementType); err != nil {
			return err
		}
		if err := writeInt32(w, int32(len(t.Items))); err != nil {
			return err
		}
		for _, item := range t.Items {
			if item.tagType() != t.ElementType {
				return fmt.Errorf("%w: list element type mismatch", ErrInvalidData)
			}
			if err := encodePayload(w, item); err != nil {
				return err
			}
		}
		return nil
	case Compound:
		for name, value := range t {
			if err := writeTagType(w, value.tagType()); err != nil {
				return err
			}
			if err := encodeNameString(w, name); err != nil {
				return err
			}
			if err := encodePayload(w, value); err != nil {
				return err
			}
		}
		return writeTagType(w, TagEnd)
	case IntArray:
		if err := writeInt32(w, int32(len(t))); err != nil {
			return err
		}
		for _, v := range t {
			if err := writeInt32(w, v); err != nil {
				return err
			}
		}
		return nil
	case LongArray:
		if err := writeInt32(w, int32(len(t))); err != nil {
			return err
		}
		for _, v := range t {
			var buf [8]byte
			binary.BigEndian.PutUint64(buf[:], uint64(v))
			if _, err := w.Write(buf[:]); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unsupported tag type %T", ErrInvalidData, tag)
	}
}

func decodePayload(r io.Reader, tt TagType) (Tag, error) {
	switch tt {
	case TagEnd:
		return nil, fmt.Errorf("%w: cannot decode payload of type End", ErrInvalidData)
	case TagByte:
		var b [1]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, fmt.Errorf("%w: truncated byte", ErrInvalidData)
		}
		return Byte(int8(b[0])), nil
	case TagShort:
		var buf [2]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("%w: truncated short", ErrInvalidData)
		}
		return Short(int16(binary.BigEndian.Uint16(buf[:]))), nil
	case TagInt:
		v, err := readInt32(r)
		if err != nil {
			return nil, err
		}
		return Int(v), nil
	case TagLong:
		var buf [8]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("%w: truncated long", ErrInvalidData)
		}
		return Long(int64(binary.BigEndian.Uint64(buf[:]))), nil
	case TagFloat:
		v, err := decodeFloatPayload(r)
		if err != nil {
			return nil, err
		}
		return Float(v), nil
	case TagDouble:
		v, err := decodeDoublePayload(r)
		if err != nil {
			return nil, err
		}
		return Double(v), nil
	case TagByteArray:
		n, err := readInt32(r)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: negative byte array length", ErrInvalidData)
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("%w: truncated byte array", ErrInvalidData)
		}
		out := make(ByteArray, n)
		for i, b := range buf {
			out[i] = int8(b)
		}
		return out, nil
	case TagString:
		s, err := decodeNameStringAsNBT(r)
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case TagList:
		elemType, err := readTagType(r)
		if err != nil {
			return nil, err
		}
		n, err := readInt32(r)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: negative list length", ErrInvalidData)
		}
		items := make([]Tag, 0, n)
		for i := int32(0); i < n; i++ {
			item, err := decodePayload(r, elemType)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return List{ElementType: elemType, Items: items}, nil
	case TagCompound:
		out := make(Compound)
		for {
			tt, err := readTagType(r)
			if err != nil {
				return nil, err
			}
			if tt == TagEnd {
				break
			}
			name, err := decodeNameStringAsNBT(r)
			if err != nil {
				return nil, err
			}
			value, err := decodePayload(r, tt)
			if err != nil {
				return nil, err
			}
			out[name] = value
		}
		return out, nil
	case TagIntArray:
		n, err := readInt32(r)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: negative int array length", ErrInvalidData)
		}
		out := make(IntArray, n)
		for i := int32(0); i < n; i++ {
			v, err := readInt32(r)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case TagLongArray:
		n, err := readInt32(r)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: negative long array length", ErrInvalidData)
		}
		out := make(LongArray, n)
		for i := int32(0); i < n; i++ {
			var buf [8]byte
			if _, err := io.ReadFull(r, buf[:]); err != nil {
				return nil, fmt.Errorf("%w: truncated long array element", ErrInvalidData)
			}
			out[i] = int64(binary.BigEndian.Uint64(buf[:]))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unknown tag type %d", ErrInvalidData, tt)
	}
}

func writeInt32(w io.Writer, v int32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	_, err := w.Write(buf[:])
	return err
}

func readInt32(r io.Reader) (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: truncated int32", ErrInvalidData)
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

// decodeNameStringAsNBT reads the same framing as decodeNameString and is
// used for Compound entry names and String tags. Both wrap errors in
// ErrInvalidData; they differ only in their error messages.
func decodeNameStringAsNBT(r io.Reader) (string, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return "", fmt.Errorf("%w: truncated string length", ErrInvalidData)
	}
	n := binary.BigEndian.Uint16(lenBuf[:])
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("%w: truncated string", ErrInvalidData)
	}
	return string(buf), nil
}
