package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/transaction_insights_api/internal/middleware"
)

// BaseService gives every service a request-scoped logger tagged with the service name.
type BaseService struct {
	component string
}

func newBaseService(component string) BaseService {
	return BaseService{component: component}
}

// GetLogger returns the request logger carried by ctx, tagged with the service name.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if s.component == "" {
		return logger
	}
	return logger.With(slog.String("service", s.component))
}

// LogError logs err under msg together with keyvals.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	s.GetLogger(ctx).Error(msg, append([]any{slog.String("error", err.Error())}, keyvals...)...)
}

// LogWarn logs a recoverable problem, such as a skipped ingestion row.
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}
