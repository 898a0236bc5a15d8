package packet_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meesudzu/ocelot/internal/protocol/codec"
	"github.com/meesudzu/ocelot/internal/protocol/packet"
)

func TestReadFrameDecodesHandshakeToStatus(t *testing.T) {
	raw, err := hex.DecodeString("1000ff05096c6f63616c686f737463dd01")
	require.NoError(t, err)

	body, err := packet.ReadFrame(bytes.NewReader(raw))
	require.NoError(t, err)

	r := bytes.NewReader(body)
	id, err := codec.DecodeVarInt(r)
	require.NoError(t, err)
	assert.Equal(t, codec.VarInt(0x00), id)

	decode, ok := packet.Lookup(packet.StateHandshaking, packet.Serverbound, id)
	require.True(t, ok)

	p, err := decode(r)
	require.NoError(t, err)

	hs, ok := p.(*packet.HandshakePacket)
	require.True(t, ok)
	assert.Equal(t, codec.VarInt(767), hs.ProtocolVersion)
	assert.Equal(t, "localhost", hs.ServerAddress)
	assert.Equal(t, uint16(25565), hs.ServerPort)
	assert.Equal(t, packet.IntentStatus, hs.Intent)
}

func TestReadFrameRejectsOversizedLength(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, codec.VarInt(packet.MaxFrameLength+1).EncodeTo(&buf))
	_, err := packet.ReadFrame(&buf)
	assert.Error(t, err)
}

func TestWriteFrameThenReadFrameRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	body, err := packet.BuildPacket(packet.FinishConfigurationPacketID, packet.FinishConfigurationPacket{}.EncodeTo)
	require.NoError(t, err)
	require.NoError(t, packet.WriteFrame(&buf, body))

	got, err := packet.ReadFrame(&buf)
	require.NoError(t, err)
	assert.Equal(t, body, got)
}

func TestLookupMissesUnregisteredID(t *testing.T) {
	_, ok := packet.Lookup(packet.StatePlay, packet.Serverbound, codec.VarInt(0x7F))
	assert.False(t, ok)
}
