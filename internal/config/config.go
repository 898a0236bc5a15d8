// Package config loads the server's listen address, crypto, and logging
// settings from an INI file, with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config is the full set of process-start settings. It is loaded once and
// never mutated afterward.
type Config struct {
	Server ServerSection
}

// ServerSection mirrors the [Server] INI section.
type ServerSection struct {
	ListenAddress string
	ListenPort    int
	RSAKeyBits    int
	OnlineMode    bool
	LogLevel      string
	ServerID      string
}

func defaults() *Config {
	return &Config{
		Server: ServerSection{
			ListenAddress: "0.0.0.0",
			ListenPort:    25565,
			RSAKeyBits:    1024,
			OnlineMode:    false,
			LogLevel:      "info",
			ServerID:      "",
		},
	}
}

// LoadConfig reads filename as an INI file and overlays OCELOT_* environment
// variables on top of it. A missing file is not an error: LoadConfig simply
// returns the documented defaults with the environment overlay still
// applied.
func LoadConfig(filename string) (*Config, error) {
	cfg := defaults()

	content, err := os.ReadFile(filename)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		if err := parseINI(string(content), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func parseINI(content string, cfg *Config) error {
	lines := strings.Split(content, "\n")
	var currentSection string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.Trim(line, "[]")
			continue
		}

		if idx := strings.Index(line, "="); idx >= 0 {
			key := strings.TrimSpace(line[:idx])
			value := strings.TrimSpace(line[idx+1:])
			if err := setConfigValue(cfg, currentSection, key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

func setConfigValue(cfg *Config, section, key, value string) error {
	if section != "Server" {
		// Unknown sections are tolerated rather than rejected: the core is
		// forward-tolerant of trailing/unrecognized input elsewhere on the
		// wire, and config loading follows the same philosophy.
		return nil
	}
	switch key {
	case "ListenAddress":
		cfg.Server.ListenAddress = value
	case "ListenPort":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid ListenPort value: %s", value)
		}
		cfg.Server.ListenPort = port
	case "RSAKeyBits":
		bits, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid RSAKeyBits value: %s", value)
		}
		cfg.Server.RSAKeyBits = bits
	case "OnlineMode":
		online, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid OnlineMode value: %s", value)
		}
		cfg.Server.OnlineMode = online
	case "LogLevel":
		cfg.Server.LogLevel = value
	case "ServerID":
		cfg.Server.ServerID = value
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("OCELOT_LISTEN_ADDR"); ok {
		cfg.Server.ListenAddress = v
	}
	if v, ok := os.LookupEnv("OCELOT_LISTEN_PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.ListenPort = port
		}
	}
	if v, ok := os.LookupEnv("OCELOT_ONLINE_MODE"); ok {
		if online, err := strconv.ParseBool(v); err == nil {
			cfg.Server.OnlineMode = online
		}
	}
	if v, ok := os.LookupEnv("OCELOT_LOG_LEVEL"); ok {
		cfg.Server.LogLevel = v
	}
}
