// Command scrape runs a single search and writes the enriched videos to disk.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lk2023060901/yt-scraper-api/internal/conf"
	"github.com/lk2023060901/yt-scraper-api/internal/pkg/logger"
	"github.com/lk2023060901/yt-scraper-api/internal/video/biz"
	"github.com/lk2023060901/yt-scraper-api/internal/video/data"
	"github.com/lk2023060901/yt-scraper-api/internal/video/export"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "config.yaml", "config file path")
	query      = flag.String("query", "", "search query (required)")
	maxResults = flag.Int("max", 100, "maximum number of videos, 1-500")
	output     = flag.String("out", "", "output path, defaults to the generated spreadsheet name")
	asJSON     = flag.Bool("json", false, "write JSON instead of a spreadsheet")
)

func main() {
	flag.Parse()

	if *query == "" {
		fmt.Fprintln(os.Stderr, "usage: scrape -query <text> [-max 100] [-out file] [-json]")
		os.Exit(2)
	}

	log, err := logger.Development()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Fatal("scrape failed", zap.Error(err))
	}
}

func run(log *logger.Logger) error {
	config, err := conf.LoadConfig(*configFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := data.NewYouTubeProvider(ctx, data.YouTubeConfig{
		APIKey:   config.YouTube.APIKey,
		Endpoint: config.YouTube.Endpoint,
		Timeout:  config.YouTube.Timeout,
	})
	if err != nil {
		return err
	}

	uc := biz.NewAggregatorUseCase(provider, config.YouTube.WatchHost, log.Logger)
	videos, err := uc.Aggregate(ctx, *query, *maxResults)
	if err != nil {
		return err
	}

	path := *output
	if *asJSON {
		if path == "" {
			path = "-"
		}
		return writeJSON(path, videos)
	}

	if path == "" {
		path = export.DefaultFilename(*query, len(videos))
	}
	exporter, err := export.NewWriter(config.Export.LicenseKey)
	if err != nil {
		return err
	}
	if err := exporter.WriteFile(path, videos); err != nil {
		return err
	}

	log.Info("spreadsheet written", zap.String("path", path), zap.Int("videos", len(videos)))
	return nil
}

func writeJSON(path string, v any) error {
	out := os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
