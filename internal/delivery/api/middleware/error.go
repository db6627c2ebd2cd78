// Package middleware holds the shell-only echo middlewares.
package middleware

import (
	"log/slog"
	"net/http"

	"waiter/internal/delivery/api/response"
	deliverycontext "waiter/internal/delivery/context"
	domainerrors "waiter/internal/domain/errors"
	"waiter/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		_ = response.HandleAppError(c, err)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, response.ErrorInfo{Code: "HTTP_ERROR", Message: message})

		return
	}

	logger := deliverycontext.Logger(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, response.ErrorInfo{
		Code:    domainerrors.ErrInternalError.ErrorCode(),
		Kind:    string(domainerrors.KindNetworkOrServer),
		Message: "Internal server error, please try again later",
	})
}
