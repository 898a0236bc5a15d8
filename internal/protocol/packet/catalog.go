package packet

import (
	"io"

	"github.com/meesudzu/ocelot/internal/protocol/codec"
)

// Decoder reads one packet body (the frame's owned buffer, positioned just
// past the packet id) and returns the typed packet value.
type Decoder func(io.Reader) (any, error)

type catalogKey struct {
	state     State
	direction Direction
	id        codec.VarInt
}

var catalog = make(map[catalogKey]Decoder)

// Register adds a decode function for (state, direction, id) to the
// runtime-built packet catalog. Called from each phase file's init().
func Register(state State, direction Direction, id codec.VarInt, decode Decoder) {
	catalog[catalogKey{state, direction, id}] = decode
}

// Lookup returns the decoder registered for (state, direction, id), if any.
func Lookup(state State, direction Direction, id codec.VarInt) (Decoder, bool) {
	d, ok := catalog[catalogKey{state, direction, id}]
	return d, ok
}
