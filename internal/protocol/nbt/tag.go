// Package nbt implements the Named Binary Tag format: the tag taxonomy and
// both its traditional (root name present) and network (root name
// suppressed) binary framings.
package nbt

import "fmt"

// TagType is the single-byte discriminant preceding every tag payload
// (except inside a List, which carries one element TagType for the whole
// list). 0 is End, reserved as a Compound terminator; it is never valid as
// the type of a standalone value.
type TagType uint8

const (
	TagEnd TagType = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

func (t TagType) String() string {
	switch t {
	case TagEnd:
		return "End"
	case TagByte:
		return "Byte"
	case TagShort:
		return "Short"
	case TagInt:
		return "Int"
	case TagLong:
		return "Long"
	case TagFloat:
		return "Float"
	case TagDouble:
		return "Double"
	case TagByteArray:
		return "ByteArray"
	case TagString:
		return "String"
	case TagList:
		return "List"
	case TagCompound:
		return "Compound"
	case TagIntArray:
		return "IntArray"
	case TagLongArray:
		return "LongArray"
	default:
		return fmt.Sprintf("TagType(%d)", uint8(t))
	}
}

func tagTypeFromID(id uint8) (TagType, bool) {
	if id > uint8(TagLongArray) {
		return 0, false
	}
	return TagType(id), true
}

// Tag is the sum type over every representable NBT value. End is
// deliberately unrepresentable as a Tag — it only ever appears as a
// Compound terminator or a List's declared-but-empty element type.
type Tag interface {
	tagType() TagType
}

type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []int8
	String    string
	IntArray  []int32
	LongArray []int64
)

func (Byte) tagType() TagType      { return TagByte }
func (Short) tagType() TagType     { return TagShort }
func (Int) tagType() TagType       { return TagInt }
func (Long) tagType() TagType      { return TagLong }
func (Float) tagType() TagType     { return TagFloat }
func (Double) tagType() TagType    { return TagDouble }
func (ByteArray) tagType() TagType { return TagByteArray }
func (String) tagType() TagType    { return TagString }
func (IntArray) tagType() TagType  { return TagIntArray }
func (LongArray) tagType() TagType { return TagLongArray }

// List is a homogeneous sequence of tags sharing ElementType.
type List struct {
	ElementType TagType
	Items       []Tag
}

func (List) tagType() TagType { return TagList }

// Compound is an unordered name→tag map. Duplicate names are ill-formed
// input but are not rejected on decode — the last one read wins, matching a
// plain Go map's insert semantics.
type Compound map[string]Tag

func (Compound) tagType() TagType { return TagCompound }

// NamedTag pairs a tag with its root name. In network framing the name is
// always "".
type NamedTag struct {
	Name string
	Tag  Tag
}
