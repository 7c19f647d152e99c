// Package config loads the mcpbridge server configuration.
//
// Precedence, lowest to highest: built-in defaults, the optional YAML
// config file, environment variables. Command-line flags override all of
// these and are applied by the start command.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Environment variables recognized by the server.
const (
	BindPortEnvVar         = "PORT"
	ServerNameEnvVar       = "SERVER_NAME"
	ProtocolVersionEnvVar  = "MCP_PROTOCOL_VERSION"
	TelemetryEnabledEnvVar = "OTEL_ENABLED"
	LogLevelEnvVar         = "LOG_LEVEL"
)

// Defaults applied when neither file nor environment specifies a value.
const (
	BindPortDefault        = "8080"
	ServerNameDefault      = "mcpbridge"
	ProtocolVersionDefault = "2025-03-26"
	LogLevelDefault        = "info"
)

// ServerConfig holds the resolved server configuration.
type ServerConfig struct {
	Port             string `yaml:"port"`
	ServerName       string `yaml:"server_name"`
	ProtocolVersion  string `yaml:"protocol_version"`
	TelemetryEnabled bool   `yaml:"telemetry_enabled"`
	LogLevel         string `yaml:"log_level"`
}

// Load resolves the configuration from defaults, the YAML file at path (if
// path is non-empty) and the environment. The filesystem is abstracted so
// tests can load from an in-memory fs.
func Load(fs afero.Fs, path string) (*ServerConfig, error) {
	c := &ServerConfig{
		Port:            BindPortDefault,
		ServerName:      ServerNameDefault,
		ProtocolVersion: ProtocolVersionDefault,
		LogLevel:        LogLevelDefault,
	}

	if path != "" {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	return c, nil
}

// applyEnv overlays environment variables onto the config.
func (c *ServerConfig) applyEnv() error {
	if port := os.Getenv(BindPortEnvVar); port != "" {
		c.Port = port
	}
	if name := os.Getenv(ServerNameEnvVar); name != "" {
		c.ServerName = name
	}
	if pv := os.Getenv(ProtocolVersionEnvVar); pv != "" {
		c.ProtocolVersion = pv
	}
	if level := os.Getenv(LogLevelEnvVar); level != "" {
		c.LogLevel = strings.ToLower(level)
	}

	envTelemetry := os.Getenv(TelemetryEnabledEnvVar)
	if envTelemetry != "" {
		switch strings.ToLower(envTelemetry) {
		case "true", "1":
			c.TelemetryEnabled = true
		case "false", "0":
			c.TelemetryEnabled = false
		default:
			return fmt.Errorf(
				"invalid value for %s environment variable: '%s', valid values are 'true' or 'false'",
				TelemetryEnabledEnvVar, envTelemetry,
			)
		}
	}

	return nil
}
