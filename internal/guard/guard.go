// Package guard decides whether the current session may enter the waiter
// console. It is consulted before every protected screen and command.
package guard

import (
	"context"
	"log/slog"

	"waiter/config"
	"waiter/internal/domain/entity"
	"waiter/internal/domain/repository"
	"waiter/internal/errors"

	"go.uber.org/fx"
)

// Decision is the outcome of a guard check.
type Decision int

const (
	// RedirectToLogin sends the waiter to the login screen.
	RedirectToLogin Decision = iota
	// Allow lets the request through.
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}

	return "redirect_to_login"
}

// Guard checks the stored session against the required role.
type Guard struct {
	sessions     repository.SessionRepository
	requiredRole entity.Role
	logger       *slog.Logger
}

// NewGuard creates a guard. An empty requiredRole defaults to WAITER.
func NewGuard(sessions repository.SessionRepository, requiredRole entity.Role, logger *slog.Logger) *Guard {
	if requiredRole.IsZero() {
		requiredRole = entity.RoleWaiter
	}

	return &Guard{
		sessions:     sessions,
		requiredRole: requiredRole,
		logger:       logger,
	}
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config   *config.Config
	Sessions repository.SessionRepository
	Logger   *slog.Logger
}

func New(params Params) *Guard {
	return NewGuard(params.Sessions, entity.Role(params.Config.Auth.RequiredRole), params.Logger)
}

// Check allows a session holding a token whose role is absent or equal to
// the required one. A session with any other role is cleared before the
// redirect is returned. Store failures redirect and report the error.
func (g *Guard) Check(ctx context.Context) (Decision, entity.Session, error) {
	session, err := g.sessions.Load(ctx)
	if err != nil {
		return RedirectToLogin, entity.Session{}, errors.Wrap(err, "load session")
	}

	if !session.Authenticated() {
		return RedirectToLogin, entity.Session{}, nil
	}

	if session.Role.IsZero() || session.Role == g.requiredRole {
		return Allow, session, nil
	}

	g.logger.Info("session role not allowed, clearing session",
		slog.String("role", session.Role.String()),
		slog.String("required_role", g.requiredRole.String()),
	)
	if err := g.sessions.Clear(ctx); err != nil {
		return RedirectToLogin, entity.Session{}, errors.Wrap(err, "clear session")
	}

	return RedirectToLogin, entity.Session{}, nil
}
