package injector

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/lk2023060901/yt-scraper-api/internal/conf"
	"github.com/lk2023060901/yt-scraper-api/internal/pkg/logger"
	"github.com/lk2023060901/yt-scraper-api/internal/video/data"
	"github.com/lk2023060901/yt-scraper-api/internal/video/export"
	"github.com/lk2023060901/yt-scraper-api/internal/video/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *conf.Config {
	return &conf.Config{
		Server:  conf.ServerConfig{Host: "127.0.0.1", Port: 8000},
		YouTube: conf.YouTubeConfig{APIKey: "test-key", Endpoint: "http://127.0.0.1:1/"},
		Export:  conf.ExportConfig{TempDir: ""},
	}
}

func TestInitializeApp(t *testing.T) {
	app, cleanup, err := InitializeApp(context.Background(), testConfig(), logger.Nop())
	require.NoError(t, err)
	defer cleanup()

	assert.NotNil(t, app.HTTPServer)
	assert.Equal(t, "127.0.0.1:8000", app.HTTPServer.Addr())
	assert.NotNil(t, app.HTTPServer.Handler())
}

func TestInitializeApp_MissingAPIKey(t *testing.T) {
	config := testConfig()
	config.YouTube.APIKey = ""

	_, _, err := InitializeApp(context.Background(), config, logger.Nop())
	assert.ErrorIs(t, err, data.ErrMissingAPIKey)
}

func TestLoggerConfig(t *testing.T) {
	cfg := LoggerConfig(conf.LogConfig{
		Level:  "debug",
		Format: "console",
		Output: "file",
		File:   conf.FileLogConfig{Filename: "logs/app.log", MaxSize: 10, MaxAge: 7, MaxBackups: 3},
	})

	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "file", cfg.Output)
	assert.Equal(t, "logs/app.log", cfg.File.Filename)
	assert.Equal(t, 10, cfg.File.MaxSize)
	assert.NoError(t, cfg.Validate())
}

func TestProvideSpreadsheetWriter_Unlicensed(t *testing.T) {
	writer, err := provideSpreadsheetWriter(testConfig())
	require.NoError(t, err)
	assert.IsType(t, &export.ExcelizeExporter{}, writer)

	path := filepath.Join(t.TempDir(), "videos.xlsx")
	assert.NoError(t, writer.WriteFile(path, []*types.EnrichedVideo{{VideoTitle: "cats", Views: types.Unavailable}}))
}
