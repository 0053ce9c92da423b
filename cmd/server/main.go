package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lk2023060901/yt-scraper-api/internal/conf"
	"github.com/lk2023060901/yt-scraper-api/internal/pkg/injector"
	"github.com/lk2023060901/yt-scraper-api/internal/pkg/logger"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "config.yaml", "config file path")
)

func main() {
	flag.Parse()

	// Load configuration; a missing YOUTUBE_API_KEY stops here
	config, err := conf.LoadConfig(*configFile)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logConfig := injector.LoggerConfig(config.Log)
	log, err := logger.New(logConfig)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	logger.SetGlobal(log)

	log.Info("config loaded successfully")

	app, cleanup, err := injector.InitializeApp(context.Background(), config, log)
	if err != nil {
		log.Fatal("failed to initialize application", zap.Error(err))
	}
	defer cleanup()

	go func() {
		if err := app.HTTPServer.Start(); err != nil {
			log.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	log.Info("server started successfully", zap.String("addr", app.HTTPServer.Addr()))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.HTTPServer.Stop(ctx); err != nil {
		log.Error("HTTP server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
