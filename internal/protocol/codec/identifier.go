package codec

import (
	"fmt"
	"io"
	"strings"
)

// DefaultNamespace is assumed when an Identifier's canonical string carries
// no explicit namespace prefix.
const DefaultNamespace = "minecraft"

// Identifier is a namespaced key of the form "<namespace>:<path>".
type Identifier struct {
	Namespace string
	Path      string
}

// NewIdentifier parses a canonical "ns:path" or bare "path" string.
func NewIdentifier(s string) (Identifier, error) {
	if ns, path, ok := strings.Cut(s, ":"); ok {
		return Identifier{Namespace: ns, Path: path}, nil
	}
	return Identifier{Namespace: DefaultNamespace, Path: s}, nil
}

// String renders the canonical "ns:path" form.
func (id Identifier) String() string {
	return id.Namespace + ":" + id.Path
}

// EncodeTo writes the identifier as a BoundedString<32767>.
func (id Identifier) EncodeTo(w io.Writer) error {
	bs, err := NewBoundedString(id.String(), MaxStringLength)
	if err != nil {
		return err
	}
	return bs.EncodeTo(w)
}

// DecodeIdentifier reads a BoundedString<32767> and parses it.
func DecodeIdentifier(r io.Reader) (Identifier, error) {
	bs, err := DecodeBoundedString(r, MaxStringLength)
	if err != nil {
		return Identifier{}, err
	}
	if bs.Value == "" {
		return Identifier{}, fmt.Errorf("%w: empty identifier", ErrInvalidData)
	}
	return NewIdentifier(bs.Value)
}
