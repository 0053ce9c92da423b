package service

import (
	"context"
	"errors"
	"os"

	"github.com/gin-gonic/gin"
	apperrors "github.com/lk2023060901/yt-scraper-api/internal/pkg/errors"
	"github.com/lk2023060901/yt-scraper-api/internal/pkg/logger"
	"github.com/lk2023060901/yt-scraper-api/internal/pkg/response"
	"github.com/lk2023060901/yt-scraper-api/internal/video/biz"
	"github.com/lk2023060901/yt-scraper-api/internal/video/export"
	"github.com/lk2023060901/yt-scraper-api/internal/video/types"
	"go.uber.org/zap"
)

// SpreadsheetWriter serializes videos to a file on disk
type SpreadsheetWriter interface {
	WriteFile(path string, videos []*types.EnrichedVideo) error
}

// VideoService serves search results as JSON or as a spreadsheet
type VideoService struct {
	uc       *biz.AggregatorUseCase
	exporter SpreadsheetWriter
	tempDir  string
	logger   *logger.Logger
}

// NewVideoService creates the video HTTP service. tempDir holds the
// per-download workbook; empty means os.TempDir().
func NewVideoService(uc *biz.AggregatorUseCase, exporter SpreadsheetWriter, tempDir string, logger *logger.Logger) *VideoService {
	return &VideoService{
		uc:       uc,
		exporter: exporter,
		tempDir:  tempDir,
		logger:   logger,
	}
}

// RegisterRoutes mounts /search and /download
func (s *VideoService) RegisterRoutes(r gin.IRoutes) {
	r.GET("/search", s.Search)
	r.GET("/download", s.Download)
}

// Search aggregates videos and returns them as JSON
func (s *VideoService) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	videos, err := s.uc.Aggregate(s.requestContext(c), req.Query, req.maxResults())
	if err != nil {
		s.handleError(c, err, apperrors.ErrVideoSearchFailed)
		return
	}

	response.JSON(c, types.SearchResult{
		Query:        req.Query,
		TotalResults: len(videos),
		Videos:       videos,
	})
}

// Download aggregates videos and returns them as an xlsx attachment
func (s *VideoService) Download(c *gin.Context) {
	var req DownloadRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	videos, err := s.uc.Aggregate(s.requestContext(c), req.Query, req.maxResults())
	if err != nil {
		s.handleError(c, err, apperrors.ErrVideoExportFailed)
		return
	}

	tmp, err := os.CreateTemp(s.tempDir, "youtube_videos_*"+export.Extension)
	if err != nil {
		s.handleError(c, err, apperrors.ErrVideoExportFailed)
		return
	}
	path := tmp.Name()
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.FromContext(s.requestContext(c)).Warn("failed to remove temp workbook", zap.String("path", path), zap.Error(err))
		}
	}()
	if err := tmp.Close(); err != nil {
		s.handleError(c, err, apperrors.ErrVideoExportFailed)
		return
	}

	if err := s.exporter.WriteFile(path, videos); err != nil {
		s.handleError(c, err, apperrors.ErrVideoExportFailed)
		return
	}

	filename := export.Filename(req.Filename, req.Query, len(videos))
	logger.InfoContext(s.requestContext(c), "serving spreadsheet",
		zap.String("filename", filename),
		zap.Int("videos", len(videos)),
	)
	c.Header("Content-Type", export.ContentType)
	c.FileAttachment(path, filename)
}

// requestContext scopes the service logger to the request, keeping its request ID
func (s *VideoService) requestContext(c *gin.Context) context.Context {
	return logger.ToContext(c.Request.Context(), s.logger)
}

// handleError maps validation failures to 400 and everything else to code
func (s *VideoService) handleError(c *gin.Context, err error, code int) {
	if errors.Is(err, biz.ErrInvalidQuery) || errors.Is(err, biz.ErrInvalidMaxResults) {
		response.HandleError(c, apperrors.Wrap(err, apperrors.ErrInvalidParams))
		return
	}

	logger.ErrorContext(s.requestContext(c), "video request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	response.HandleError(c, apperrors.Wrap(err, code))
}
