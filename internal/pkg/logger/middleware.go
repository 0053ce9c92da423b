package logger

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request ID in and out
const RequestIDHeader = "X-Request-ID"

// MiddlewareOptions configures the request logger
type MiddlewareOptions struct {
	// SkipPaths are not logged, e.g. liveness probes
	SkipPaths []string
	// SkipPathPrefixes is a list of path prefixes to skip logging
	SkipPathPrefixes []string
}

// GinLogger returns a gin middleware logging every request
func GinLogger(logger *Logger) gin.HandlerFunc {
	return GinLoggerWithConfig(logger, MiddlewareOptions{})
}

// GinLoggerWithConfig tags each request with an ID, stores a request scoped
// logger in its context and logs the outcome by status class.
func GinLoggerWithConfig(logger *Logger, opts MiddlewareOptions) gin.HandlerFunc {
	skipPaths := make(map[string]bool, len(opts.SkipPaths))
	for _, path := range opts.SkipPaths {
		skipPaths[path] = true
	}

	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(RequestIDHeader, requestID)

		ctx := WithRequestID(c.Request.Context(), requestID)
		ctx = ToContext(ctx, logger)
		c.Request = c.Request.WithContext(ctx)

		path := c.Request.URL.Path
		if skipPaths[path] || hasAnyPrefix(path, opts.SkipPathPrefixes) {
			c.Next()
			return
		}

		start := time.Now()
		query := c.Request.URL.RawQuery

		c.Next()

		statusCode := c.Writer.Status()
		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", statusCode),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case statusCode >= http.StatusInternalServerError:
			logger.Error("HTTP Request", fields...)
		case statusCode >= http.StatusBadRequest:
			logger.Warn("HTTP Request", fields...)
		default:
			logger.Info("HTTP Request", fields...)
		}
	}
}

// GinRecovery returns a gin middleware for recovering from panics
func GinRecovery(logger *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered",
					zap.String("request_id", GetRequestID(c.Request.Context())),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Any("error", err),
					zap.Stack("stacktrace"),
				)
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()

		c.Next()
	}
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
