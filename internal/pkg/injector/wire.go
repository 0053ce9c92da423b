//go:build wireinject
// +build wireinject

package injector

import (
	"context"

	"github.com/google/wire"
	"github.com/lk2023060901/yt-scraper-api/internal/conf"
	"github.com/lk2023060901/yt-scraper-api/internal/pkg/logger"
	"github.com/lk2023060901/yt-scraper-api/internal/server"
	"github.com/lk2023060901/yt-scraper-api/internal/video/biz"
	"github.com/lk2023060901/yt-scraper-api/internal/video/data"
	"github.com/lk2023060901/yt-scraper-api/internal/video/export"
	"github.com/lk2023060901/yt-scraper-api/internal/video/service"
	"go.uber.org/zap"
)

// ProviderSet is the Wire provider set for all dependencies
var ProviderSet = wire.NewSet(
	// Data layer
	dataProviderSet,

	// Use cases
	useCaseProviderSet,

	// HTTP services
	httpServiceProviderSet,

	// Servers
	serverProviderSet,
)

var dataProviderSet = wire.NewSet(
	provideYouTubeProvider,
	wire.Bind(new(biz.VideoProvider), new(*data.YouTubeProvider)),
)

var useCaseProviderSet = wire.NewSet(
	provideZapLogger,
	provideAggregatorUseCase,
)

var httpServiceProviderSet = wire.NewSet(
	provideSpreadsheetWriter,
	provideVideoService,
)

var serverProviderSet = wire.NewSet(
	server.NewHTTPServer,
)

// InitializeApp initializes the application with Wire
func InitializeApp(ctx context.Context, config *conf.Config, log *logger.Logger) (*App, func(), error) {
	wire.Build(ProviderSet, newApp)
	return nil, nil, nil
}

func provideYouTubeProvider(ctx context.Context, config *conf.Config) (*data.YouTubeProvider, error) {
	return data.NewYouTubeProvider(ctx, data.YouTubeConfig{
		APIKey:   config.YouTube.APIKey,
		Endpoint: config.YouTube.Endpoint,
		Timeout:  config.YouTube.Timeout,
	})
}

func provideZapLogger(log *logger.Logger) *zap.Logger {
	return log.Logger
}

func provideAggregatorUseCase(provider biz.VideoProvider, config *conf.Config, log *zap.Logger) *biz.AggregatorUseCase {
	return biz.NewAggregatorUseCase(provider, config.YouTube.WatchHost, log.Named("aggregator"))
}

func provideSpreadsheetWriter(config *conf.Config) (service.SpreadsheetWriter, error) {
	return export.NewWriter(config.Export.LicenseKey)
}

func provideVideoService(
	uc *biz.AggregatorUseCase,
	exporter service.SpreadsheetWriter,
	config *conf.Config,
	log *logger.Logger,
) *service.VideoService {
	return service.NewVideoService(uc, exporter, config.Export.TempDir, log)
}

func newApp(
	config *conf.Config,
	log *logger.Logger,
	httpServer *server.HTTPServer,
) (*App, func()) {
	cleanup := func() {
		_ = log.Sync()
	}

	return &App{
		Config:     config,
		Logger:     log,
		HTTPServer: httpServer,
		cleanup:    cleanup,
	}, cleanup
}
