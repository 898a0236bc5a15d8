package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/meesudzu/ocelot/internal/config"
	"github.com/meesudzu/ocelot/internal/protocol/conn"
	"github.com/meesudzu/ocelot/internal/server"
)

func main() {
	cfg, err := config.LoadConfig("ocelot.ini")
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}

	logger, err := buildLogger(cfg.Server.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("build logger: %v", err))
	}
	defer logger.Sync()

	rsaKey, err := conn.GenerateKeyPair(cfg.Server.RSAKeyBits)
	if err != nil {
		logger.Fatal("generate rsa key pair", zap.Error(err))
	}

	srv := server.New(cfg.Server.ListenAddress, cfg.Server.ListenPort, cfg, rsaKey, logger)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	logger.Info("ocelot started",
		zap.String("address", cfg.Server.ListenAddress),
		zap.Int("port", cfg.Server.ListenPort),
		zap.Bool("online_mode", cfg.Server.OnlineMode))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	logger.Info("shutting down")
	srv.Stop()
}

func buildLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
