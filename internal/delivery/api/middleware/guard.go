package middleware

import (
	"context"
	"log/slog"

	"waiter/internal/delivery/api/response"
	deliverycontext "waiter/internal/delivery/context"
	"waiter/internal/domain/entity"
	"waiter/internal/guard"

	"github.com/labstack/echo/v4"
)

// LoginPath is where rejected requests are sent.
const LoginPath = "/waiter/login"

// SessionChecker decides whether the stored session may enter the console.
type SessionChecker interface {
	Check(ctx context.Context) (guard.Decision, entity.Session, error)
}

// GuardMiddleware puts the route guard in front of the /waiter routes.
type GuardMiddleware struct {
	guard  SessionChecker
	logger *slog.Logger
}

// NewGuardMiddleware creates the middleware around guard.
func NewGuardMiddleware(guard SessionChecker, logger *slog.Logger) *GuardMiddleware {
	return &GuardMiddleware{guard: guard, logger: logger}
}

// Authenticate redirects to login unless the guard allows the session. The
// admitted session is bound to the request for handlers and use cases.
func (m *GuardMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		decision, session, err := m.guard.Check(c.Request().Context())
		if err != nil {
			deliverycontext.Logger(c.Request().Context(), m.logger).
				Warn("route guard failed", slog.Any("error", err))
		}
		if decision != guard.Allow {
			return response.RedirectToLogin(c, LoginPath)
		}

		deliverycontext.BindSession(c, session)

		return next(c)
	}
}
