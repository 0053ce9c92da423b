package conf

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey the YouTube credential is not configured
var ErrMissingAPIKey = errors.New("YOUTUBE_API_KEY environment variable is required")

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	YouTube YouTubeConfig `mapstructure:"youtube"`
	Export  ExportConfig  `mapstructure:"export"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type YouTubeConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	Endpoint  string        `mapstructure:"endpoint"`
	Timeout   time.Duration `mapstructure:"timeout"`
	WatchHost string        `mapstructure:"watch_host"`
}

type ExportConfig struct {
	LicenseKey string `mapstructure:"license_key"`
	TempDir    string `mapstructure:"temp_dir"`
}

type LogConfig struct {
	Level            string        `mapstructure:"level"`
	Format           string        `mapstructure:"format"`
	Output           string        `mapstructure:"output"`
	File             FileLogConfig `mapstructure:"file"`
	EnableCaller     bool          `mapstructure:"enablecaller"`
	EnableStacktrace bool          `mapstructure:"enablestacktrace"`
}

type FileLogConfig struct {
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"maxsize"`
	MaxAge     int    `mapstructure:"maxage"`
	MaxBackups int    `mapstructure:"maxbackups"`
	Compress   bool   `mapstructure:"compress"`
}

// envBindings maps config keys to the environment variables that override them
var envBindings = map[string]string{
	"youtube.api_key":    "YOUTUBE_API_KEY",
	"export.license_key": "UNIOFFICE_LICENSE_KEY",
	"server.port":        "PORT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)

	v.SetDefault("youtube.timeout", 30*time.Second)
	v.SetDefault("youtube.watch_host", "www.youtube.com")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "console")
	v.SetDefault("log.enablecaller", true)
	v.SetDefault("log.enablestacktrace", true)
	v.SetDefault("log.file.filename", "logs/app.log")
	v.SetDefault("log.file.maxsize", 100)
	v.SetDefault("log.file.maxage", 30)
	v.SetDefault("log.file.maxbackups", 10)
	v.SetDefault("log.file.compress", true)
}

// LoadConfig reads the optional config file at path, then applies the
// environment. A missing file is not an error; the credential usually
// arrives through YOUTUBE_API_KEY alone.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks settings the service cannot start without
func (c *Config) Validate() error {
	if strings.TrimSpace(c.YouTube.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	return nil
}

// Addr returns host:port for the HTTP listener
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
