package packet

import (
	"fmt"
	"io"

	"github.com/meesudzu/ocelot/internal/protocol/codec"
)

// Intent is the Handshake packet's enum-via-VarInt connection intent.
type Intent codec.VarInt

const (
	IntentStatus   Intent = 1
	IntentLogin    Intent = 2
	IntentTransfer Intent = 3
)

func (i Intent) String() string {
	switch i {
	case IntentStatus:
		return "Status"
	case IntentLogin:
		return "Login"
	case IntentTransfer:
		return "Transfer"
	default:
		return fmt.Sprintf("Intent(%d)", int32(i))
	}
}

func (i Intent) EncodeTo(w io.Writer) error {
	return codec.VarInt(i).EncodeTo(w)
}

func DecodeIntent(r io.Reader) (Intent, error) {
	v, err := codec.DecodeVarInt(r)
	if err != nil {
		return 0, err
	}
	switch Intent(v) {
	case IntentStatus, IntentLogin, IntentTransfer:
		return Intent(v), nil
	default:
		return 0, fmt.Errorf("%w: unknown intent %d", codec.ErrInvalidData, v)
	}
}

// ChatMode is ClientInformation's enum-via-VarInt chat visibility setting.
type ChatMode codec.VarInt

const (
	ChatModeEnabled       ChatMode = 0
	ChatModeCommandsOnly  ChatMode = 1
	ChatModeHidden        ChatMode = 2
)

func (c ChatMode) EncodeTo(w io.Writer) error { return codec.VarInt(c).EncodeTo(w) }

func DecodeChatMode(r io.Reader) (ChatMode, error) {
	v, err := codec.DecodeVarInt(r)
	if err != nil {
		return 0, err
	}
	switch ChatMode(v) {
	case ChatModeEnabled, ChatModeCommandsOnly, ChatModeHidden:
		return ChatMode(v), nil
	default:
		return 0, fmt.Errorf("%w: unknown chat mode %d", codec.ErrInvalidData, v)
	}
}

// MainHand is ClientInformation's enum-via-VarInt handedness setting.
type MainHand codec.VarInt

const (
	MainHandLeft  MainHand = 0
	MainHandRight MainHand = 1
)

func (m MainHand) EncodeTo(w io.Writer) error { return codec.VarInt(m).EncodeTo(w) }

func DecodeMainHand(r io.Reader) (MainHand, error) {
	v, err := codec.DecodeVarInt(r)
	if err != nil {
		return 0, err
	}
	switch MainHand(v) {
	case MainHandLeft, MainHandRight:
		return MainHand(v), nil
	default:
		return 0, fmt.Errorf("%w: unknown main hand %d", codec.ErrInvalidData, v)
	}
}

// ParticleStatus is ClientInformation's enum-via-VarInt particle density
// setting.
type ParticleStatus codec.VarInt

const (
	ParticleStatusAll     ParticleStatus = 0
	ParticleStatusDecreased ParticleStatus = 1
	ParticleStatusMinimal ParticleStatus = 2
)

func (p ParticleStatus) EncodeTo(w io.Writer) error { return codec.VarInt(p).EncodeTo(w) }

func DecodeParticleStatus(r io.Reader) (ParticleStatus, error) {
	v, err := codec.DecodeVarInt(r)
	if err != nil {
		return 0, err
	}
	switch ParticleStatus(v) {
	case ParticleStatusAll, ParticleStatusDecreased, ParticleStatusMinimal:
		return ParticleStatus(v), nil
	default:
		return 0, fmt.Errorf("%w: unknown particle status %d", codec.ErrInvalidData, v)
	}
}

// GameMode is the Play Login packet's enum-via-byte game mode. Undefined
// (-1) is the sentinel "no previous game mode" value.
type GameMode int8

const (
	GameModeUndefined GameMode = -1
	GameModeSurvival  GameMode = 0
	GameModeCreative  GameMode = 1
	GameModeAdventure GameMode = 2
	GameModeSpectator GameMode = 3
)

// GameEvent is the enum-via-unsigned-byte GameEvent packet discriminant.
type GameEvent uint8

const (
	GameEventStartWaitingForLevelChunks GameEvent = 13
)

// TeleportFlags is an 8-bit teleport flag set. SynchronizePlayerPosition
// does not use it: that packet's Flags field is an int32 written as a
// 4-byte Int.
type TeleportFlags = codec.Bitfield8

// KnownPack identifies a client/server-shared resource pack bundle.
type KnownPack struct {
	Namespace string
	ID        string
	Version   string
}

func (k KnownPack) EncodeTo(w io.Writer) error {
	for _, s := range []string{k.Namespace, k.ID, k.Version} {
		bs, err := codec.NewBoundedString(s, codec.MaxStringLength)
		if err != nil {
			return err
		}
		if err := bs.EncodeTo(w); err != nil {
			return err
		}
	}
	return nil
}

func DecodeKnownPack(r io.Reader) (KnownPack, error) {
	ns, err := codec.DecodeBoundedString(r, codec.MaxStringLength)
	if err != nil {
		return KnownPack{}, err
	}
	id, err := codec.DecodeBoundedString(r, codec.MaxStringLength)
	if err != nil {
		return KnownPack{}, err
	}
	ver, err := codec.DecodeBoundedString(r, codec.MaxStringLength)
	if err != nil {
		return KnownPack{}, err
	}
	return KnownPack{Namespace: ns.Value, ID: id.Value, Version: ver.Value}, nil
}

// RegistryEntry is one (id, optional nbt payload) pair within a RegistryData
// packet.
type RegistryEntry struct {
	ID   codec.Identifier
	Data []byte // pre-encoded network-NBT; nil means "no data, use default"
}

func (e RegistryEntry) EncodeTo(w io.Writer) error {
	if err := e.ID.EncodeTo(w); err != nil {
		return err
	}
	present := e.Data != nil
	if err := codec.EncodeBool(w, present); err != nil {
		return err
	}
	if present {
		_, err := w.Write(e.Data)
		return err
	}
	return nil
}

// Property is a LoginSuccess signed profile property. Unused in the
// offline/no-signing path but part of the declared wire shape.
type Property struct {
	Name      string
	Value     string
	Signature *string
}

func (p Property) EncodeTo(w io.Writer) error {
	name, err := codec.NewBoundedString(p.Name, codec.MaxStringLength)
	if err != nil {
		return err
	}
	if err := name.EncodeTo(w); err != nil {
		return err
	}
	value, err := codec.NewBoundedString(p.Value, codec.MaxStringLength)
	if err != nil {
		return err
	}
	if err := value.EncodeTo(w); err != nil {
		return err
	}
	return codec.EncodeOptional(w, p.Signature, func(w io.Writer, s string) error {
		bs, err := codec.NewBoundedString(s, codec.MaxStringLength)
		if err != nil {
			return err
		}
		return bs.EncodeTo(w)
	})
}

// TextComponent is the minimal JSON chat component shape used by Disconnect.
type TextComponent struct {
	Text string `json:"text"`
}
