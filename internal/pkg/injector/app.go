package injector

import (
	"github.com/lk2023060901/yt-scraper-api/internal/conf"
	"github.com/lk2023060901/yt-scraper-api/internal/pkg/logger"
	"github.com/lk2023060901/yt-scraper-api/internal/server"
)

// App encapsulates all application dependencies
type App struct {
	Config     *conf.Config
	Logger     *logger.Logger
	HTTPServer *server.HTTPServer
	cleanup    func()
}

// Cleanup releases all resources
func (a *App) Cleanup() {
	if a.cleanup != nil {
		a.cleanup()
	}
}

// LoggerConfig converts the log section of the service config
func LoggerConfig(c conf.LogConfig) *logger.Config {
	return &logger.Config{
		Level:            c.Level,
		Format:           c.Format,
		Output:           c.Output,
		EnableCaller:     c.EnableCaller,
		EnableStacktrace: c.EnableStacktrace,
		File: logger.FileConfig{
			Filename:   c.File.Filename,
			MaxSize:    c.File.MaxSize,
			MaxAge:     c.File.MaxAge,
			MaxBackups: c.File.MaxBackups,
			Compress:   c.File.Compress,
		},
	}
}
