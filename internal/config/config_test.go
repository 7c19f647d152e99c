package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	assert.Equal(t, BindPortDefault, c.Port)
	assert.Equal(t, ServerNameDefault, c.ServerName)
	assert.Equal(t, ProtocolVersionDefault, c.ProtocolVersion)
	assert.Equal(t, LogLevelDefault, c.LogLevel)
	assert.False(t, c.TelemetryEnabled)
}

func TestLoadFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := []byte(
		"port: \"9090\"\n" +
			"server_name: custom-bridge\n" +
			"telemetry_enabled: true\n" +
			"log_level: debug\n",
	)
	require.NoError(t, afero.WriteFile(fs, "/etc/mcpbridge.yaml", content, 0o644))

	c, err := Load(fs, "/etc/mcpbridge.yaml")
	require.NoError(t, err)

	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "custom-bridge", c.ServerName)
	assert.True(t, c.TelemetryEnabled)
	assert.Equal(t, "debug", c.LogLevel)
	// untouched keys keep their defaults
	assert.Equal(t, ProtocolVersionDefault, c.ProtocolVersion)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/nope.yaml")
	assert.Error(t, err)
}

func TestLoadInvalidYAMLFails(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("port: [unclosed"), 0o644))

	_, err := Load(fs, "/bad.yaml")
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/c.yaml", []byte("port: \"9090\"\n"), 0o644))

	t.Setenv(BindPortEnvVar, "7070")
	t.Setenv(ServerNameEnvVar, "env-bridge")
	t.Setenv(LogLevelEnvVar, "WARN")

	c, err := Load(fs, "/c.yaml")
	require.NoError(t, err)

	assert.Equal(t, "7070", c.Port)
	assert.Equal(t, "env-bridge", c.ServerName)
	assert.Equal(t, "warn", c.LogLevel, "log level from the environment is lowercased")
}

func TestLoadTelemetryEnvValues(t *testing.T) {
	tests := []struct {
		value   string
		want    bool
		wantErr bool
	}{
		{"true", true, false},
		{"1", true, false},
		{"TRUE", true, false},
		{"false", false, false},
		{"0", false, false},
		{"yes", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(TelemetryEnabledEnvVar, tt.value)

			c, err := Load(afero.NewMemMapFs(), "")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.TelemetryEnabled)
		})
	}
}
