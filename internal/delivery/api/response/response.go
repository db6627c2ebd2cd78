// Package response writes the JSON envelope every shell endpoint answers with.
package response

import (
	"net/http"

	deliverycontext "waiter/internal/delivery/context"
	domainerrors "waiter/internal/domain/errors"
	"waiter/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code     string `json:"code"`               // Machine-readable error code, e.g., "INSUFFICIENT_PAYMENT"
	Kind     string `json:"kind,omitempty"`     // NETWORK_OR_SERVER, VALIDATION or AUTH
	Message  string `json:"message"`            // User-friendly error message
	Details  string `json:"details,omitempty"`  // Only for validation errors
	Redirect string `json:"redirect,omitempty"` // Where the client should navigate
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response. Details are dropped for server and auth failures.
func Error(c echo.Context, statusCode int, info ErrorInfo) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		info.Details = ""
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &info,
		Meta:  meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, ErrorInfo{Code: errorCode, Kind: string(domainerrors.KindValidation), Message: message})
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return BadRequest(c, "INVALID_INPUT", message)
}

// RedirectToLogin answers 401 pointing the client at the login screen.
func RedirectToLogin(c echo.Context, location string) error {
	c.Response().Header().Set(echo.HeaderLocation, location)

	return Error(c, http.StatusUnauthorized, ErrorInfo{
		Code:     domainerrors.ErrNotAuthenticated.ErrorCode(),
		Kind:     string(domainerrors.KindAuth),
		Message:  domainerrors.ErrNotAuthenticated.Message(),
		Redirect: location,
	})
}

// HandleAppError converts an AppError to its envelope and passes anything else on.
func HandleAppError(c echo.Context, err error) error {
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	if !ok {
		return errors.WithStack(err)
	}

	info := ErrorInfo{
		Code:    appErr.ErrorCode(),
		Kind:    string(appErr.Kind()),
		Message: appErr.Message(),
	}
	if appErr.Kind() == domainerrors.KindValidation {
		info.Details = appErr.Details()
	}

	return Error(c, appErr.HTTPCode(), info)
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.RequestID(c)}
}
