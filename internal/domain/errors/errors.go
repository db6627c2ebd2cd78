package errors

import (
	"fmt"
	"net/http"

	"waiter/internal/errors"
)

// Kind groups application errors by how the client reacts to them.
type Kind string

const (
	// KindNetworkOrServer is a failed fetch or a non-2xx backend answer.
	KindNetworkOrServer Kind = "NETWORK_OR_SERVER"
	// KindValidation is client-side input rejection; it never reaches the network.
	KindValidation Kind = "VALIDATION"
	// KindAuth is a missing or unacceptable session, handled by the route guard.
	KindAuth Kind = "AUTH"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Reaction class
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError with the same business code, so copies made by
// WithDetails still match their predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the reaction class
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithDetailsf adds formatted detailed error information
func (e *BaseError) WithDetailsf(format string, args ...any) *BaseError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// Predefined error types
var (
	// Validation errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	ErrInvalidTableNumber = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_TABLE_NUMBER",
		"Table number must be a positive number",
		"",
	)

	ErrEmptyOrder = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"EMPTY_ORDER",
		"Add at least one item",
		"",
	)

	ErrInvalidItem = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_ITEM",
		"Every item needs a name, a quantity and a price",
		"",
	)

	ErrMissingOrderID = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"MISSING_ORDER_ID",
		"Order ID is missing",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Select a status",
		"",
	)

	ErrStatusRegression = NewBaseError(
		KindValidation,
		http.StatusConflict,
		"STATUS_REGRESSION",
		"Order status can only move forward",
		"",
	)

	ErrInvalidPaymentMethod = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_PAYMENT_METHOD",
		"Unsupported payment method",
		"",
	)

	ErrInvalidAmount = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_AMOUNT",
		"Invalid amount",
		"",
	)

	ErrInsufficientPayment = NewBaseError(
		KindValidation,
		http.StatusUnprocessableEntity,
		"INSUFFICIENT_PAYMENT",
		"Insufficient amount",
		"",
	)

	ErrInvalidQRCode = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_QR_CODE",
		"Scanned code is not an attendance code",
		"",
	)

	// Authentication errors
	ErrNotAuthenticated = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"Please sign in",
		"",
	)

	ErrRoleMismatch = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"ROLE_MISMATCH",
		"This account cannot use the waiter console",
		"",
	)

	ErrInvalidLoginResponse = NewBaseError(
		KindAuth,
		http.StatusBadGateway,
		"INVALID_LOGIN_RESPONSE",
		"Invalid response from server",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindNetworkOrServer,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong",
		"",
	)
)

// NetworkError represents a failed backend call, implementing the AppError interface.
// Status is zero when the request never got an HTTP answer.
type NetworkError struct {
	err     error
	status  int
	message string
	route   string
}

// NewNetworkError creates a backend transport or status error
func NewNetworkError(err error, status int, message, route string) AppError {
	return &NetworkError{
		err:     err,
		status:  status,
		message: message,
		route:   route,
	}
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	switch {
	case e.err != nil:
		return errors.Wrapf(e.err, "request %s failed", e.route).Error()
	case e.message != "":
		return fmt.Sprintf("request %s failed with status %d: %s", e.route, e.status, e.message)
	default:
		return fmt.Sprintf("request %s failed with status %d", e.route, e.status)
	}
}

// Unwrap exposes the transport error
func (e *NetworkError) Unwrap() error {
	return e.err
}

// Kind returns the reaction class
func (e *NetworkError) Kind() Kind {
	return KindNetworkOrServer
}

// Status returns the backend HTTP status, or zero
func (e *NetworkError) Status() int {
	return e.status
}

// HTTPCode returns the HTTP status code relayed to shell clients
func (e *NetworkError) HTTPCode() int {
	if e.status >= http.StatusBadRequest {
		return e.status
	}

	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *NetworkError) ErrorCode() string {
	if e.status == 0 {
		return "BACKEND_UNREACHABLE"
	}

	return "BACKEND_REJECTED"
}

// Message returns the user-friendly error message
func (e *NetworkError) Message() string {
	if e.message != "" {
		return e.message
	}

	return "Something went wrong. Please try again."
}

// Details returns detailed error information
func (e *NetworkError) Details() string {
	return e.Error()
}

// KindOf returns the kind of the first AppError in err's tree, or
// KindNetworkOrServer for anything unclassified.
func KindOf(err error) Kind {
	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.Kind()
	}

	return KindNetworkOrServer
}
