package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pto_ledger_service/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// toAppError maps a service error onto the HTTP status and message sent to the client.
// Server-side failures get the generic fallback message; the cause is only logged.
func toAppError(err error, fallback string) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr
	}
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return apperrors.NewAppError(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NewAppError(http.StatusNotFound, err.Error(), err)
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrDataIntegrity):
		return apperrors.NewAppError(http.StatusConflict, err.Error(), err)
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		return apperrors.NewAppError(http.StatusBadGateway, "Record store unavailable, try again later", err)
	default:
		return apperrors.NewAppError(http.StatusInternalServerError, fallback, err)
	}
}

// respondError logs err at a level matching its status and writes {"error": message}.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	appErr := toAppError(err, fallback)
	if appErr.Code >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()), slog.Int("status", appErr.Code))
	} else {
		logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", appErr.Code))
	}
	c.JSON(appErr.Code, gin.H{"error": appErr.Message})
}
