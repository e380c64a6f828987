package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
api:
  url: http://localhost:9000
session:
  path: /tmp/blogsy-session.json
devserver:
  addr: ":9000"
  database: test.db
  jwt_secret: yaml-secret
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	require.NoError(t, LoadConfig(path))

	assert.Equal(t, "http://localhost:9000", AppConfig.API.URL)
	assert.Equal(t, "/tmp/blogsy-session.json", AppConfig.Session.Path)
	assert.Equal(t, ":9000", AppConfig.Devserver.Addr)
	assert.Equal(t, "yaml-secret", AppConfig.Devserver.JWTSecret)
}

func TestLoadConfigMissingFile(t *testing.T) {
	assert.Error(t, LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")))
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("BLOGSY_API_URL", "http://example.com")
	t.Setenv("BLOGSY_JWT_SECRET", "env-secret")

	LoadDefaults()

	assert.Equal(t, "http://example.com", AppConfig.API.URL)
	assert.Equal(t, "env-secret", AppConfig.Devserver.JWTSecret)
	assert.Equal(t, ":5000", AppConfig.Devserver.Addr)
}

func TestLoadDefaults(t *testing.T) {
	LoadDefaults()
	assert.Equal(t, "http://localhost:5000", AppConfig.API.URL)
	assert.Equal(t, "blogsy_dev.db", AppConfig.Devserver.Database)
}
