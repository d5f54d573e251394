package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/patient_decisions_app/internal/apperrors"
	"github.com/SscSPs/patient_decisions_app/internal/middleware"
	"github.com/SscSPs/patient_decisions_app/internal/platform/logger"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.LoggerOrDefault(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	s.logAt(ctx, slog.LevelError, err, msg, keyvals...)
}

// LogCritical logs an error that needs operator attention
func (s *BaseService) LogCritical(ctx context.Context, err error, msg string, keyvals ...any) {
	s.logAt(ctx, logger.LevelCritical, err, msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).InfoContext(ctx, msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).DebugContext(ctx, msg, keyvals...)
}

// LogFailure logs a classified failure once, at the severity its tier dictates.
func (s *BaseService) LogFailure(ctx context.Context, svcErr *apperrors.ServiceError, operation string) {
	attrs := []any{
		slog.String("entity", svcErr.Entity),
		slog.String("operation", operation),
		slog.String("tier", svcErr.Tier.String()),
		slog.String("kind", string(apperrors.KindOf(svcErr))),
	}
	if failure, ok := svcErr.Failure(); ok && len(failure.Fields) > 0 {
		attrs = append(attrs, slog.Any("fields", failure.Fields))
	}

	if svcErr.Severity == apperrors.SeverityCritical {
		s.LogCritical(ctx, svcErr, svcErr.Message, attrs...)
		return
	}
	s.LogError(ctx, svcErr, svcErr.Message, attrs...)
}

func (s *BaseService) logAt(ctx context.Context, level slog.Level, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Log(ctx, level, msg, args...)
}
