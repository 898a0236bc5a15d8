package packet

import (
	"io"

	"github.com/meesudzu/ocelot/internal/protocol/codec"
)

// HandshakePacketID is Handshaking SB 0x00.
const HandshakePacketID codec.VarInt = 0x00

// HandshakePacket is the first packet of every connection.
type HandshakePacket struct {
	ProtocolVersion codec.VarInt
	ServerAddress   string
	ServerPort      uint16
	Intent          Intent
}

func init() {
	Register(StateHandshaking, Serverbound, HandshakePacketID, func(r io.Reader) (any, error) {
		protocolVersion, err := codec.DecodeVarInt(r)
		if err != nil {
			return nil, err
		}
		addr, err := codec.DecodeBoundedString(r, 255)
		if err != nil {
			return nil, err
		}
		port, err := codec.DecodeUnsignedShort(r)
		if err != nil {
			return nil, err
		}
		intent, err := DecodeIntent(r)
		if err != nil {
			return nil, err
		}
		return &HandshakePacket{
			ProtocolVersion: protocolVersion,
			ServerAddress:   addr.Value,
			ServerPort:      port,
			Intent:          intent,
		}, nil
	})
}
