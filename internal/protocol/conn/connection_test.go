package conn

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"io"
	"net"
	"testing"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meesudzu/ocelot/internal/config"
	"github.com/meesudzu/ocelot/internal/protocol/codec"
	"github.com/meesudzu/ocelot/internal/protocol/packet"
	"github.com/meesudzu/ocelot/internal/protocol/registry"
)

func testConnection(t *testing.T, online bool) (*Connection, net.Conn) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)

	serverSide, clientSide := net.Pipe()
	t.Cleanup(func() { serverSide.Close(); clientSide.Close() })

	cfg := &config.Config{Server: config.ServerSection{
		OnlineMode: online,
		ServerID:   "",
	}}

	c := New(serverSide, key, cfg, zap.NewNop())
	return c, clientSide
}

func readPacket(t *testing.T, r net.Conn) (codec.VarInt, []byte) {
	t.Helper()
	body, err := packet.ReadFrame(r)
	require.NoError(t, err)
	br := bytes.NewReader(body)
	id, err := codec.DecodeVarInt(br)
	require.NoError(t, err)
	rest := make([]byte, br.Len())
	_, err = io.ReadFull(br, rest)
	require.NoError(t, err)
	return id, rest
}

func TestLoginStartOfflineSendsLoginSuccess(t *testing.T) {
	c, clientSide := testConnection(t, false)

	playerID, err := uuid.FromString("00000000-0000-0000-0000-000000000001")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- c.handleLoginStart(&packet.LoginStartPacket{Name: "Steve", PlayerUUID: playerID})
	}()

	id, body := readPacket(t, clientSide)
	require.NoError(t, <-done)
	assert.Equal(t, packet.LoginSuccessPacketID, id)

	r := bytes.NewReader(body)
	gotUUID, err := codec.DecodeUUID(r)
	require.NoError(t, err)
	assert.Equal(t, playerID, gotUUID)

	name, err := codec.DecodeBoundedString(r, 16)
	require.NoError(t, err)
	assert.Equal(t, "Steve", name.Value)

	propsCount, err := codec.DecodeVarInt(r)
	require.NoError(t, err)
	assert.Equal(t, codec.VarInt(0), propsCount)
}

func TestEncryptionResponseVerifyTokenMismatchFailsWithoutLoginSuccess(t *testing.T) {
	c, _ := testConnection(t, true)

	require.NoError(t, c.handleHandshake(&packet.HandshakePacket{Intent: packet.IntentLogin}))

	sharedSecret := make([]byte, 16)
	_, err := rand.Read(sharedSecret)
	require.NoError(t, err)
	wrongToken := []byte{0xAA, 0xBB, 0xCC, 0xDD}

	encSecret, err := rsa.EncryptPKCS1v15(rand.Reader, &c.rsaKey.PublicKey, sharedSecret)
	require.NoError(t, err)
	encToken, err := rsa.EncryptPKCS1v15(rand.Reader, &c.rsaKey.PublicKey, wrongToken)
	require.NoError(t, err)

	err = c.handleEncryptionResponse(&packet.EncryptionResponsePacket{
		SharedSecret: encSecret,
		VerifyToken:  encToken,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCrypto)
}

func TestConfigurationThroughPlaySequence(t *testing.T) {
	c, clientSide := testConnection(t, false)

	results := make(chan error, 3)
	go func() {
		results <- c.handleClientInformation(&packet.ClientInformationPacket{Locale: "en_US"})
	}()
	id, _ := readPacket(t, clientSide)
	require.NoError(t, <-results)
	assert.Equal(t, packet.KnownPacksPacketClientboundID, id)

	go func() {
		results <- c.handleKnownPacks(&packet.KnownPacksServerboundPacket{})
	}()
	for range registry.All {
		regID, _ := readPacket(t, clientSide)
		assert.Equal(t, packet.RegistryDataPacketID, regID)
	}
	finishID, _ := readPacket(t, clientSide)
	require.NoError(t, <-results)
	assert.Equal(t, packet.FinishConfigurationPacketID, finishID)

	go func() {
		results <- c.handleAckFinishConfiguration(&packet.AckFinishConfigurationPacket{})
	}()
	loginID, _ := readPacket(t, clientSide)
	assert.Equal(t, packet.LoginPlayPacketID, loginID)
	gameEventID, gameEventBody := readPacket(t, clientSide)
	assert.Equal(t, packet.GameEventPacketID, gameEventID)
	assert.Equal(t, uint8(packet.GameEventStartWaitingForLevelChunks), gameEventBody[0])
	syncID, _ := readPacket(t, clientSide)
	require.NoError(t, <-results)
	assert.Equal(t, packet.SynchronizePlayerPositionPacketID, syncID)

	assert.Equal(t, packet.StatePlay, c.state)
}
