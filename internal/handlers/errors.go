package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/transaction_insights_api/internal/apperrors"
	"github.com/SscSPs/transaction_insights_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondServiceError maps a service error onto an HTTP status.
// Other errors are logged and hidden behind fallback; a store AppError keeps its Code.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		status := http.StatusInternalServerError
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code >= http.StatusBadRequest {
			status = appErr.Code
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error(fallback,
			slog.String("error", err.Error()),
			slog.Int("status", status))
		c.JSON(status, ErrorResponse{Error: fallback})
	}
}
