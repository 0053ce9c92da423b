package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/yt-scraper-api/internal/conf"
	"github.com/lk2023060901/yt-scraper-api/internal/pkg/logger"
	"github.com/lk2023060901/yt-scraper-api/internal/pkg/response"
	"github.com/lk2023060901/yt-scraper-api/internal/video/service"
	"go.uber.org/zap"
)

const (
	apiName    = "YouTube Video Scraper API"
	apiVersion = "1.0.0"
)

type HTTPServer struct {
	server       *http.Server
	logger       *logger.Logger
	videoService *service.VideoService
}

func NewHTTPServer(
	config *conf.Config,
	log *logger.Logger,
	videoService *service.VideoService,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(logger.GinRecovery(log))
	router.Use(logger.GinLoggerWithConfig(log, logger.MiddlewareOptions{
		SkipPaths: []string{"/health"},
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": apiName,
			"version": apiVersion,
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "API is running",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	videoService.RegisterRoutes(router)

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, c.Request.URL.Path)
	})

	return &HTTPServer{
		server: &http.Server{
			Addr:              config.Server.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger:       log,
		videoService: videoService,
	}
}

// Handler exposes the router, mainly for tests
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

func (s *HTTPServer) Addr() string {
	return s.server.Addr
}

func (s *HTTPServer) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	s.logger.Info("stopping HTTP server")
	return s.server.Shutdown(ctx)
}
