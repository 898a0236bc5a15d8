package server

import (
	"crypto/rsa"
	"fmt"
	"net"
	"sync"

	"go.uber.org/zap"

	"github.com/meesudzu/ocelot/internal/config"
	"github.com/meesudzu/ocelot/internal/protocol/conn"
)

// Server accepts TCP connections and hands each one to its own
// protocol-state-machine goroutine.
type Server struct {
	ip       string
	port     int
	listener net.Listener
	cfg      *config.Config
	rsaKey   *rsa.PrivateKey
	logger   *zap.Logger
	wg       sync.WaitGroup
	shutdown chan struct{}
}

// New creates a Server bound to ip:port. rsaKey is generated once at process
// startup and shared read-only by every accepted connection.
func New(ip string, port int, cfg *config.Config, rsaKey *rsa.PrivateKey, logger *zap.Logger) *Server {
	return &Server{
		ip:       ip,
		port:     port,
		cfg:      cfg,
		rsaKey:   rsaKey,
		logger:   logger,
		shutdown: make(chan struct{}),
	}
}

// Start listens and accepts connections until Stop is called. It blocks the
// calling goroutine; callers that want to keep doing other work should run
// it in its own goroutine.
func (s *Server) Start() error {
	address := fmt.Sprintf("%s:%d", s.ip, s.port)

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", address, err)
	}
	s.listener = listener
	s.logger.Info("listening", zap.String("address", address))

	for {
		select {
		case <-s.shutdown:
			return nil
		default:
			netConn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.shutdown:
					return nil
				default:
					s.logger.Warn("accept failed", zap.Error(err))
					continue
				}
			}

			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				c := conn.New(netConn, s.rsaKey, s.cfg, s.logger)
				if err := c.Serve(); err != nil {
					s.logger.Debug("connection ended with error", zap.Error(err))
				}
			}()
		}
	}
}

// Stop closes the listener and waits until every accepted connection's
// Serve has returned. It does not close open connections itself, so it
// returns only once each peer has disconnected or its connection has failed.
func (s *Server) Stop() {
	s.logger.Info("shutting down")
	close(s.shutdown)
	if s.listener != nil {
		s.listener.Close()
	}
	s.wg.Wait()
	s.logger.Info("shutdown complete")
}
