package packet

import (
	"io"

	uuid "github.com/satori/go.uuid"

	"github.com/meesudzu/ocelot/internal/protocol/codec"
)

const (
	LoginStartPacketID          codec.VarInt = 0x00
	EncryptionResponsePacketID  codec.VarInt = 0x01
	LoginPluginResponsePacketID codec.VarInt = 0x02
	LoginAcknowledgedPacketID   codec.VarInt = 0x03
	CookieResponsePacketID      codec.VarInt = 0x04

	DisconnectLoginPacketID    codec.VarInt = 0x00
	EncryptionRequestPacketID  codec.VarInt = 0x01
	LoginSuccessPacketID       codec.VarInt = 0x02
	SetCompressionPacketID     codec.VarInt = 0x03
)

// LoginStartPacket is Login SB 0x00.
type LoginStartPacket struct {
	Name       string
	PlayerUUID uuid.UUID
}

// EncryptionResponsePacket is Login SB 0x01.
type EncryptionResponsePacket struct {
	SharedSecret []byte
	VerifyToken  []byte
}

// LoginAcknowledgedPacket is Login SB 0x03, carrying no fields.
type LoginAcknowledgedPacket struct{}

// LoginPluginResponsePacket is Login SB 0x02. The response payload is a raw
// tail, bounded only by the enclosing frame.
type LoginPluginResponsePacket struct {
	MessageID   codec.VarInt
	Successful  bool
	Data        []byte
}

// CookieResponsePacket is Login SB 0x04.
type CookieResponsePacket struct {
	Key     codec.Identifier
	Payload []byte
}

func init() {
	Register(StateLogin, Serverbound, LoginStartPacketID, func(r io.Reader) (any, error) {
		name, err := codec.DecodeBoundedString(r, 16)
		if err != nil {
			return nil, err
		}
		id, err := codec.DecodeUUID(r)
		if err != nil {
			return nil, err
		}
		return &LoginStartPacket{Name: name.Value, PlayerUUID: id}, nil
	})

	Register(StateLogin, Serverbound, EncryptionResponsePacketID, func(r io.Reader) (any, error) {
		secret, err := codec.DecodeByteSlice(r)
		if err != nil {
			return nil, err
		}
		token, err := codec.DecodeByteSlice(r)
		if err != nil {
			return nil, err
		}
		return &EncryptionResponsePacket{SharedSecret: secret, VerifyToken: token}, nil
	})

	Register(StateLogin, Serverbound, LoginAcknowledgedPacketID, func(r io.Reader) (any, error) {
		return &LoginAcknowledgedPacket{}, nil
	})

	Register(StateLogin, Serverbound, LoginPluginResponsePacketID, func(r io.Reader) (any, error) {
		msgID, err := codec.DecodeVarInt(r)
		if err != nil {
			return nil, err
		}
		successful, err := codec.DecodeBool(r)
		if err != nil {
			return nil, err
		}
		data, err := codec.DecodeRawTail(r)
		if err != nil {
			return nil, err
		}
		return &LoginPluginResponsePacket{MessageID: msgID, Successful: successful, Data: data}, nil
	})

	Register(StateLogin, Serverbound, CookieResponsePacketID, func(r io.Reader) (any, error) {
		key, err := codec.DecodeIdentifier(r)
		if err != nil {
			return nil, err
		}
		payload, err := codec.DecodeOptional(r, codec.DecodeByteSlice)
		if err != nil {
			return nil, err
		}
		var p []byte
		if payload != nil {
			p = *payload
		}
		return &CookieResponsePacket{Key: key, Payload: p}, nil
	})
}

// DisconnectLoginPacket is Login CB 0x00.
type DisconnectLoginPacket struct {
	Reason TextComponent
}

func (p DisconnectLoginPacket) EncodeTo(w io.Writer) error {
	return codec.EncodeJSON(w, p.Reason)
}

// EncryptionRequestPacket is Login CB 0x01.
type EncryptionRequestPacket struct {
	ServerID          string
	PublicKeyDER      []byte
	VerifyToken       []byte
	ShouldAuthenticate bool
}

func (p EncryptionRequestPacket) EncodeTo(w io.Writer) error {
	serverID, err := codec.NewBoundedString(p.ServerID, 20)
	if err != nil {
		return err
	}
	if err := serverID.EncodeTo(w); err != nil {
		return err
	}
	if err := codec.EncodeByteSlice(w, p.PublicKeyDER); err != nil {
		return err
	}
	if err := codec.EncodeByteSlice(w, p.VerifyToken); err != nil {
		return err
	}
	return codec.EncodeBool(w, p.ShouldAuthenticate)
}

// LoginSuccessPacket is Login CB 0x02.
type LoginSuccessPacket struct {
	UUID       uuid.UUID
	Username   string
	Properties []Property
}

func (p LoginSuccessPacket) EncodeTo(w io.Writer) error {
	if err := codec.EncodeUUID(w, p.UUID); err != nil {
		return err
	}
	username, err := codec.NewBoundedString(p.Username, 16)
	if err != nil {
		return err
	}
	if err := username.EncodeTo(w); err != nil {
		return err
	}
	return codec.EncodeBoundedPrefixedArray(w, p.Properties, 16, func(w io.Writer, prop Property) error {
		return prop.EncodeTo(w)
	})
}

// SetCompressionPacket is Login CB 0x03.
type SetCompressionPacket struct {
	Threshold codec.VarInt
}

func (p SetCompressionPacket) EncodeTo(w io.Writer) error {
	return p.Threshold.EncodeTo(w)
}
