// Package conn implements the per-connection protocol state machine:
// Handshaking, Status, Login, Configuration and Play, including the
// encryption handshake and the registry-data broadcast.
package conn

import (
	"bytes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"io"
	"net"

	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/meesudzu/ocelot/internal/config"
	"github.com/meesudzu/ocelot/internal/protocol/codec"
	"github.com/meesudzu/ocelot/internal/protocol/packet"
	"github.com/meesudzu/ocelot/internal/protocol/registry"
)

// Connection is the mutable state of one TCP session, confined to that
// session's own goroutine. No cross-connection state is ever touched by its
// handlers.
type Connection struct {
	netConn net.Conn
	reader  io.Reader
	writer  io.Writer

	state      packet.State
	remoteAddr string

	username   string
	hasUsername bool
	playerUUID uuid.UUID
	hasUUID    bool

	verifyToken [4]byte

	rsaKey        *rsa.PrivateKey
	cfg           *config.Config
	sessionClient *SessionClient
	limiter       *rate.Limiter
	logger        *zap.Logger

	packetsHandled uint64
}

// New builds a Connection ready to serve netConn. rsaKey is shared
// read-only across every connection; it is generated once in main.
func New(netConn net.Conn, rsaKey *rsa.PrivateKey, cfg *config.Config, logger *zap.Logger) *Connection {
	addr := netConn.RemoteAddr().String()
	return &Connection{
		netConn:       netConn,
		reader:        netConn,
		writer:        netConn,
		state:         packet.StateHandshaking,
		remoteAddr:    addr,
		rsaKey:        rsaKey,
		cfg:           cfg,
		sessionClient: NewSessionClient(),
		// 50 packets/sec sustained, bursts up to 100 — generous enough for
		// normal configuration/play traffic while still bounding a flooding
		// connection. Constructed once per connection, never per packet.
		limiter: rate.NewLimiter(rate.Limit(50), 100),
		logger:  logger.With(zap.String("remote_addr", addr)),
	}
}

// Serve runs the connection's read loop until the peer disconnects or a
// framing/crypto/protocol failure terminates it. It always returns (nil on
// a clean peer-initiated close).
func (c *Connection) Serve() error {
	defer c.netConn.Close()
	c.logger.Info("connection accepted")

	for {
		if !c.limiter.Allow() {
			c.logger.Warn("connection exceeded packet rate limit, closing")
			return fmt.Errorf("%w: rate limit exceeded", ErrProtocolViolation)
		}

		body, err := packet.ReadFrame(c.reader)
		if err != nil {
			if err == io.EOF {
				c.logger.Info("connection closed by peer")
				return nil
			}
			c.logger.Warn("framing failure, closing connection", zap.Error(err))
			return err
		}

		if err := c.dispatch(body); err != nil {
			c.logger.Warn("connection terminated", zap.Error(err))
			return err
		}
	}
}

// dispatch decodes the packet id from the owned frame buffer, looks up a
// decoder for (state, serverbound, id), and routes the typed packet to its
// handler. An unrecognized id is logged and dropped without terminating the
// connection, per the state table's "unknown IDs log a warning and are
// dropped" rule.
func (c *Connection) dispatch(body []byte) error {
	r := bytes.NewReader(body)
	id, err := codec.DecodeVarInt(r)
	if err != nil {
		return err
	}

	decode, ok := packet.Lookup(c.state, packet.Serverbound, id)
	if !ok {
		c.logger.Warn("unknown packet id, dropping",
			zap.Stringer("state", c.state), zap.Int32("packet_id", int32(id)))
		return nil
	}

	p, err := decode(r)
	if err != nil {
		c.logger.Warn("packet decode failed, dropping",
			zap.Stringer("state", c.state), zap.Int32("packet_id", int32(id)), zap.Error(err))
		return nil
	}
	c.packetsHandled++

	switch pkt := p.(type) {
	case *packet.HandshakePacket:
		return c.handleHandshake(pkt)
	case *packet.LoginStartPacket:
		return c.handleLoginStart(pkt)
	case *packet.EncryptionResponsePacket:
		return c.handleEncryptionResponse(pkt)
	case *packet.LoginAcknowledgedPacket:
		return c.handleLoginAcknowledged(pkt)
	case *packet.ClientInformationPacket:
		return c.handleClientInformation(pkt)
	case *packet.KnownPacksServerboundPacket:
		return c.handleKnownPacks(pkt)
	case *packet.AckFinishConfigurationPacket:
		return c.handleAckFinishConfiguration(pkt)
	case *packet.LoginPluginResponsePacket, *packet.CookieResponsePacket, *packet.PluginMessagePacket:
		// Recognized but carry no required server action in this core.
		return nil
	default:
		return nil
	}
}

func (c *Connection) handleHandshake(p *packet.HandshakePacket) error {
	c.logger.Info("handshake",
		zap.Int32("protocol_version", int32(p.ProtocolVersion)),
		zap.String("server_address", p.ServerAddress),
		zap.Uint16("server_port", p.ServerPort),
		zap.Stringer("intent", p.Intent))

	switch p.Intent {
	case packet.IntentStatus:
		c.state = packet.StateStatus
	case packet.IntentLogin, packet.IntentTransfer:
		c.state = packet.StateLogin
		if _, err := rand.Read(c.verifyToken[:]); err != nil {
			return fmt.Errorf("%w: %v", ErrCrypto, err)
		}
	}
	return nil
}

func (c *Connection) handleLoginStart(p *packet.LoginStartPacket) error {
	c.username = p.Name
	c.hasUsername = true
	c.playerUUID = p.PlayerUUID
	c.hasUUID = true

	if !c.cfg.Server.OnlineMode {
		return c.sendPacket(packet.LoginSuccessPacketID, packet.LoginSuccessPacket{
			UUID:       c.playerUUID,
			Username:   c.username,
			Properties: nil,
		})
	}

	pubKeyDER, err := PublicKeyDER(c.rsaKey)
	if err != nil {
		return err
	}
	return c.sendPacket(packet.EncryptionRequestPacketID, packet.EncryptionRequestPacket{
		ServerID:           c.cfg.Server.ServerID,
		PublicKeyDER:       pubKeyDER,
		VerifyToken:        c.verifyToken[:],
		ShouldAuthenticate: true,
	})
}

func (c *Connection) handleEncryptionResponse(p *packet.EncryptionResponsePacket) error {
	sharedSecret, err := decryptPKCS1v15(c.rsaKey, p.SharedSecret)
	if err != nil {
		return err
	}
	decryptedToken, err := decryptPKCS1v15(c.rsaKey, p.VerifyToken)
	if err != nil {
		return err
	}
	if len(decryptedToken) < 4 || !bytes.Equal(decryptedToken[:4], c.verifyToken[:]) {
		return fmt.Errorf("%w: verify token mismatch", ErrCrypto)
	}

	pubKeyDER, err := PublicKeyDER(c.rsaKey)
	if err != nil {
		return err
	}
	hash := sessionHash(c.cfg.Server.ServerID, sharedSecret, pubKeyDER)

	joined, err := c.sessionClient.HasJoined(c.username, hash)
	if err != nil {
		return err
	}
	if !joined {
		return fmt.Errorf("%w: session service rejected join", ErrExternal)
	}

	if err := c.sendPacket(packet.LoginSuccessPacketID, packet.LoginSuccessPacket{
		UUID:       c.playerUUID,
		Username:   c.username,
		Properties: nil,
	}); err != nil {
		return err
	}

	// REDESIGN: enable CFB-8 AES on both directions now that LoginSuccess
	// has been sent, closing the gap left open in the source.
	encryptStream, decryptStream, err := newAESCFB8Pair(sharedSecret[:16])
	if err != nil {
		return err
	}
	c.reader = &cipher.StreamReader{S: decryptStream, R: c.netConn}
	c.writer = &cipher.StreamWriter{S: encryptStream, W: c.netConn}
	return nil
}

func (c *Connection) handleLoginAcknowledged(*packet.LoginAcknowledgedPacket) error {
	c.state = packet.StateConfiguration
	return nil
}

func (c *Connection) handleClientInformation(p *packet.ClientInformationPacket) error {
	c.logger.Debug("client information",
		zap.String("locale", p.Locale),
		zap.Int8("view_distance", p.ViewDistance))

	return c.sendPacket(packet.KnownPacksPacketClientboundID, packet.KnownPacksClientboundPacket{
		KnownPacks: []packet.KnownPack{
			{Namespace: "minecraft", ID: "core", Version: "1.21.11"},
		},
	})
}

func (c *Connection) handleKnownPacks(*packet.KnownPacksServerboundPacket) error {
	for _, reg := range registry.All {
		registryID, err := codec.NewIdentifier(reg.ID)
		if err != nil {
			return err
		}
		entries := make([]packet.RegistryEntry, 0, len(reg.Entries))
		for _, entry := range reg.Entries {
			entryID, err := codec.NewIdentifier(entry.ID)
			if err != nil {
				return err
			}
			entries = append(entries, packet.RegistryEntry{ID: entryID, Data: entry.Data})
		}
		if err := c.sendPacket(packet.RegistryDataPacketID, packet.RegistryDataPacket{
			RegistryID: registryID,
			Entries:    entries,
		}); err != nil {
			return err
		}
	}
	return c.sendPacket(packet.FinishConfigurationPacketID, packet.FinishConfigurationPacket{})
}

func (c *Connection) handleAckFinishConfiguration(*packet.AckFinishConfigurationPacket) error {
	c.state = packet.StatePlay

	overworld, err := codec.NewIdentifier("overworld")
	if err != nil {
		return err
	}
	if err := c.sendPacket(packet.LoginPlayPacketID, packet.LoginPlayPacket{
		EntityID:            0,
		IsHardcore:           false,
		DimensionNames:       nil,
		MaxPlayers:           1,
		ViewDistance:         8,
		SimulationDistance:   8,
		ReducedDebugInfo:     false,
		EnableRespawnScreen:  false,
		DoLimitedCrafting:    false,
		DimensionType:        0,
		DimensionName:        overworld,
		HashedSeed:           0,
		GameMode:             packet.GameModeSurvival,
		PreviousGameMode:     packet.GameModeUndefined,
		IsDebug:              false,
		IsFlat:               false,
		DeathLocation:        nil,
		PortalCooldown:       0,
		SeaLevel:             60,
		EnforcesSecureChat:   false,
	}); err != nil {
		return err
	}

	if err := c.sendPacket(packet.GameEventPacketID, packet.GameEventPacket{
		Event: packet.GameEventStartWaitingForLevelChunks,
		Value: 0.0,
	}); err != nil {
		return err
	}

	return c.sendPacket(packet.SynchronizePlayerPositionPacketID, packet.SynchronizePlayerPositionPacket{
		TeleportID: 1,
		X:          0,
		Y:          -128,
		Z:          0,
		VelocityX:  0,
		VelocityY:  0,
		VelocityZ:  0,
		Yaw:        0,
		Pitch:      0,
		Flags:      0,
	})
}

// outboundPacket is implemented by every clientbound packet struct.
type outboundPacket interface {
	EncodeTo(io.Writer) error
}

func (c *Connection) sendPacket(id codec.VarInt, p outboundPacket) error {
	body, err := packet.BuildPacket(id, p.EncodeTo)
	if err != nil {
		return err
	}
	if err := packet.WriteFrame(c.writer, body); err != nil {
		return err
	}
	c.logger.Debug("sent packet", zap.Stringer("state", c.state), zap.Int32("packet_id", int32(id)))
	return nil
}
