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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
app:
  name: statusfeed-test
jwt:
  signing_key: "0123456789abcdef0123456789abcdef"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "statusfeed-test", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "debug", cfg.App.Mode)
	assert.Equal(t, "plaintext", cfg.App.CredentialScheme)
	assert.Equal(t, "./statusfeed.db", cfg.Database.Path)
	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
	assert.Equal(t, 3, cfg.JWT.MaxLoginAttempts)
}

func TestLoadConfigRejectsShortSigningKey(t *testing.T) {
	path := writeConfig(t, `
app:
  name: statusfeed-test
jwt:
  signing_key: "too-short"
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsUnknownScheme(t *testing.T) {
	path := writeConfig(t, `
app:
  name: statusfeed-test
  credential_scheme: md5
jwt:
  signing_key: "0123456789abcdef0123456789abcdef"
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
