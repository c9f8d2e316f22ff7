package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pto_ledger_service/internal/apperrors"
	"github.com/SscSPs/pto_ledger_service/internal/middleware"
	"github.com/SscSPs/pto_ledger_service/internal/platform/validation"
	"github.com/go-playground/validator/v10"
)

// BaseService provides common functionality for all services
type BaseService struct {
	validate *validator.Validate
}

func newBaseService() BaseService {
	return BaseService{validate: validation.New()}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Validate checks a request DTO against its binding tags. Handlers already bind with the
// same tags; this covers callers that reach services without going through gin.
func (s *BaseService) Validate(req any) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}
