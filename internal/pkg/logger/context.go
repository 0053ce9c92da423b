package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	loggerKey    contextKey = "logger"
	requestIDKey contextKey = "request_id"
)

// WithContext returns a logger carrying the request ID found in ctx
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}
	if requestID := GetRequestID(ctx); requestID != "" {
		return l.With(zap.String("request_id", requestID))
	}
	return l
}

// FromContext extracts logger from context, falling back to the global logger
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return L()
	}
	if logger, ok := ctx.Value(loggerKey).(*Logger); ok && logger != nil {
		return logger.WithContext(ctx)
	}
	return L().WithContext(ctx)
}

// ToContext adds logger to context
func ToContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithRequestID adds request ID to context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID extracts request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// InfoContext logs through the request scoped logger in ctx
func InfoContext(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Info(msg, fields...)
}

// ErrorContext logs through the request scoped logger in ctx
func ErrorContext(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Error(msg, fields...)
}
