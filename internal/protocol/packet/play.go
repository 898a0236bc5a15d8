package packet

import (
	"io"

	"github.com/meesudzu/ocelot/internal/protocol/codec"
)

const (
	GameEventPacketID                  codec.VarInt = 0x26
	LoginPlayPacketID                  codec.VarInt = 0x30
	SynchronizePlayerPositionPacketID  codec.VarInt = 0x46
)

// DeathLocation is the optional (dimension, position) pair carried by the
// Play Login packet when the player died in a different dimension.
type DeathLocation struct {
	Dimension codec.Identifier
	Position  codec.Position
}

// LoginPlayPacket is Play CB 0x30, sent once on entering Play.
type LoginPlayPacket struct {
	EntityID            int32
	IsHardcore          bool
	DimensionNames       []codec.Identifier
	MaxPlayers          codec.VarInt
	ViewDistance        codec.VarInt
	SimulationDistance  codec.VarInt
	ReducedDebugInfo    bool
	EnableRespawnScreen bool
	DoLimitedCrafting   bool
	DimensionType       codec.VarInt
	DimensionName       codec.Identifier
	HashedSeed          int64
	GameMode            GameMode
	PreviousGameMode    GameMode
	IsDebug             bool
	IsFlat              bool
	DeathLocation       *DeathLocation
	PortalCooldown      codec.VarInt
	SeaLevel            codec.VarInt
	EnforcesSecureChat  bool
}

func (p LoginPlayPacket) EncodeTo(w io.Writer) error {
	if err := codec.EncodeInt(w, p.EntityID); err != nil {
		return err
	}
	if err := codec.EncodeBool(w, p.IsHardcore); err != nil {
		return err
	}
	if err := codec.EncodePrefixedArray(w, p.DimensionNames, func(w io.Writer, id codec.Identifier) error {
		return id.EncodeTo(w)
	}); err != nil {
		return err
	}
	if err := p.MaxPlayers.EncodeTo(w); err != nil {
		return err
	}
	if err := p.ViewDistance.EncodeTo(w); err != nil {
		return err
	}
	if err := p.SimulationDistance.EncodeTo(w); err != nil {
		return err
	}
	if err := codec.EncodeBool(w, p.ReducedDebugInfo); err != nil {
		return err
	}
	if err := codec.EncodeBool(w, p.EnableRespawnScreen); err != nil {
		return err
	}
	if err := codec.EncodeBool(w, p.DoLimitedCrafting); err != nil {
		return err
	}
	if err := p.DimensionType.EncodeTo(w); err != nil {
		return err
	}
	if err := p.DimensionName.EncodeTo(w); err != nil {
		return err
	}
	if err := codec.EncodeLong(w, p.HashedSeed); err != nil {
		return err
	}
	if err := codec.EncodeByte(w, int8(p.GameMode)); err != nil {
		return err
	}
	if err := codec.EncodeByte(w, int8(p.PreviousGameMode)); err != nil {
		return err
	}
	if err := codec.EncodeBool(w, p.IsDebug); err != nil {
		return err
	}
	if err := codec.EncodeBool(w, p.IsFlat); err != nil {
		return err
	}
	if err := codec.EncodeOptional(w, p.DeathLocation, func(w io.Writer, d DeathLocation) error {
		if err := d.Dimension.EncodeTo(w); err != nil {
			return err
		}
		return d.Position.EncodeTo(w)
	}); err != nil {
		return err
	}
	if err := p.PortalCooldown.EncodeTo(w); err != nil {
		return err
	}
	if err := p.SeaLevel.EncodeTo(w); err != nil {
		return err
	}
	return codec.EncodeBool(w, p.EnforcesSecureChat)
}

// GameEventPacket is Play CB 0x26.
type GameEventPacket struct {
	Event GameEvent
	Value float32
}

func (p GameEventPacket) EncodeTo(w io.Writer) error {
	if err := codec.EncodeUnsignedByte(w, uint8(p.Event)); err != nil {
		return err
	}
	return codec.EncodeFloat(w, p.Value)
}

// SynchronizePlayerPositionPacket is Play CB 0x46.
type SynchronizePlayerPositionPacket struct {
	TeleportID  codec.VarInt
	X, Y, Z     float64
	VelocityX   float64
	VelocityY   float64
	VelocityZ   float64
	Yaw, Pitch  float32
	Flags       int32
}

func (p SynchronizePlayerPositionPacket) EncodeTo(w io.Writer) error {
	if err := p.TeleportID.EncodeTo(w); err != nil {
		return err
	}
	for _, v := range []float64{p.X, p.Y, p.Z, p.VelocityX, p.VelocityY, p.VelocityZ} {
		if err := codec.EncodeDouble(w, v); err != nil {
			return err
		}
	}
	if err := codec.EncodeFloat(w, p.Yaw); err != nil {
		return err
	}
	if err := codec.EncodeFloat(w, p.Pitch); err != nil {
		return err
	}
	return codec.EncodeInt(w, p.Flags)
}
