package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	// An explicitly given but missing file is an error
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:3001", cfg.Listen)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 172800, cfg.SessionMaxAge)
	assert.Equal(t, "./data/propdesk.db", cfg.Database.Path)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "admin123", cfg.Admin.Password)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
listen: 127.0.0.1:8080
log_level: debug
session_key: super-secret
session_max_age: 3600
database:
  path: /tmp/propdesk-test.db
admin:
  username: chief
  password: hunter2
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Listen)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "super-secret", cfg.SessionKey)
	assert.Equal(t, 3600, cfg.SessionMaxAge)
	assert.Equal(t, "/tmp/propdesk-test.db", cfg.Database.Path)
	assert.Equal(t, "chief", cfg.Admin.Username)
	assert.Equal(t, "hunter2", cfg.Admin.Password)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PROPDESK_LISTEN", "127.0.0.1:9999")
	t.Setenv("PROPDESK_DATABASE_PATH", "/tmp/env.db")

	cfg, err := Load(writeConfig(t, "listen: 127.0.0.1:8080"))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Listen)
	assert.Equal(t, "/tmp/env.db", cfg.Database.Path)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty listen", "listen: \"\""},
		{"empty admin username", "admin:\n  username: \"\""},
		{"empty admin password", "admin:\n  password: \"\""},
		{"non-positive session max age", "session_max_age: 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
