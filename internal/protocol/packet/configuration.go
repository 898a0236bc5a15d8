package packet

import (
	"io"

	"github.com/meesudzu/ocelot/internal/protocol/codec"
)

const (
	ClientInformationPacketID           codec.VarInt = 0x00
	PluginMessagePacketServerboundID    codec.VarInt = 0x02
	AckFinishConfigurationPacketID      codec.VarInt = 0x03
	KnownPacksPacketServerboundID       codec.VarInt = 0x07

	FinishConfigurationPacketID codec.VarInt = 0x03
	RegistryDataPacketID        codec.VarInt = 0x07
	KnownPacksPacketClientboundID codec.VarInt = 0x0E
)

// ClientInformationPacket is Configuration SB 0x00.
type ClientInformationPacket struct {
	Locale              string
	ViewDistance        int8
	ChatMode            ChatMode
	ChatColors          bool
	DisplayedSkinParts  codec.Bitfield8
	MainHand            MainHand
	EnableTextFiltering bool
	AllowServerListings bool
	ParticleStatus      ParticleStatus
}

// PluginMessagePacket is Configuration SB 0x02.
type PluginMessagePacket struct {
	Channel codec.Identifier
	Data    []byte
}

// AckFinishConfigurationPacket is Configuration SB 0x03, carrying no fields.
type AckFinishConfigurationPacket struct{}

// KnownPacksServerboundPacket is Configuration SB 0x07.
type KnownPacksServerboundPacket struct {
	KnownPacks []KnownPack
}

func init() {
	Register(StateConfiguration, Serverbound, ClientInformationPacketID, func(r io.Reader) (any, error) {
		locale, err := codec.DecodeBoundedString(r, 16)
		if err != nil {
			return nil, err
		}
		viewDistance, err := codec.DecodeByte(r)
		if err != nil {
			return nil, err
		}
		chatMode, err := DecodeChatMode(r)
		if err != nil {
			return nil, err
		}
		chatColors, err := codec.DecodeBool(r)
		if err != nil {
			return nil, err
		}
		skinParts, err := codec.DecodeBitfield8(r)
		if err != nil {
			return nil, err
		}
		mainHand, err := DecodeMainHand(r)
		if err != nil {
			return nil, err
		}
		textFiltering, err := codec.DecodeBool(r)
		if err != nil {
			return nil, err
		}
		serverListings, err := codec.DecodeBool(r)
		if err != nil {
			return nil, err
		}
		particleStatus, err := DecodeParticleStatus(r)
		if err != nil {
			return nil, err
		}
		return &ClientInformationPacket{
			Locale:              locale.Value,
			ViewDistance:        viewDistance,
			ChatMode:            chatMode,
			ChatColors:          chatColors,
			DisplayedSkinParts:  skinParts,
			MainHand:            mainHand,
			EnableTextFiltering: textFiltering,
			AllowServerListings: serverListings,
			ParticleStatus:      particleStatus,
		}, nil
	})

	Register(StateConfiguration, Serverbound, PluginMessagePacketServerboundID, func(r io.Reader) (any, error) {
		channel, err := codec.DecodeIdentifier(r)
		if err != nil {
			return nil, err
		}
		data, err := codec.DecodeRawTail(r)
		if err != nil {
			return nil, err
		}
		return &PluginMessagePacket{Channel: channel, Data: data}, nil
	})

	Register(StateConfiguration, Serverbound, AckFinishConfigurationPacketID, func(r io.Reader) (any, error) {
		return &AckFinishConfigurationPacket{}, nil
	})

	Register(StateConfiguration, Serverbound, KnownPacksPacketServerboundID, func(r io.Reader) (any, error) {
		packs, err := codec.DecodePrefixedArray(r, DecodeKnownPack)
		if err != nil {
			return nil, err
		}
		return &KnownPacksServerboundPacket{KnownPacks: packs}, nil
	})
}

// FinishConfigurationPacket is Configuration CB 0x03, carrying no fields.
type FinishConfigurationPacket struct{}

func (FinishConfigurationPacket) EncodeTo(w io.Writer) error { return nil }

// RegistryDataPacket is Configuration CB 0x07.
type RegistryDataPacket struct {
	RegistryID codec.Identifier
	Entries    []RegistryEntry
}

func (p RegistryDataPacket) EncodeTo(w io.Writer) error {
	if err := p.RegistryID.EncodeTo(w); err != nil {
		return err
	}
	return codec.EncodePrefixedArray(w, p.Entries, func(w io.Writer, e RegistryEntry) error {
		return e.EncodeTo(w)
	})
}

// KnownPacksClientboundPacket is Configuration CB 0x0E.
type KnownPacksClientboundPacket struct {
	KnownPacks []KnownPack
}

func (p KnownPacksClientboundPacket) EncodeTo(w io.Writer) error {
	return codec.EncodePrefixedArray(w, p.KnownPacks, func(w io.Writer, k KnownPack) error {
		return k.EncodeTo(w)
	})
}
