package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingAPIKey(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")

	config, err := LoadConfig("")
	assert.Nil(t, config)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "env-key")
	t.Setenv("UNIOFFICE_LICENSE_KEY", "license")

	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-key", config.YouTube.APIKey)
	assert.Equal(t, "license", config.Export.LicenseKey)
	assert.Equal(t, "0.0.0.0", config.Server.Host)
	assert.Equal(t, 8000, config.Server.Port)
	assert.Equal(t, 30*time.Second, config.YouTube.Timeout)
	assert.Equal(t, "www.youtube.com", config.YouTube.WatchHost)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "0.0.0.0:8000", config.Server.Addr())
}

func TestLoadConfig_FromFile(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  host: 127.0.0.1
  port: 9090
youtube:
  api_key: file-key
  timeout: 5s
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", config.YouTube.APIKey)
	assert.Equal(t, "127.0.0.1:9090", config.Server.Addr())
	assert.Equal(t, 5*time.Second, config.YouTube.Timeout)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "console", config.Log.Format)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("youtube:\n  api_key: file-key\n"), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", config.YouTube.APIKey)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "valid", config: Config{Server: ServerConfig{Port: 8000}, YouTube: YouTubeConfig{APIKey: "k"}}},
		{name: "blank key", config: Config{Server: ServerConfig{Port: 8000}, YouTube: YouTubeConfig{APIKey: "  "}}, wantErr: true},
		{name: "bad port", config: Config{Server: ServerConfig{Port: 0}, YouTube: YouTubeConfig{APIKey: "k"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
