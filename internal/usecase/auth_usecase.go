// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"waiter/internal/domain/entity"
)

// AuthUsecase defines the interface for the waiter's session lifecycle.
type AuthUsecase interface {
	Login(ctx context.Context, creds entity.Credentials) (entity.Session, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (entity.Session, error)
	// EnsureDisplayName backfills a missing display name from the backend's identity routes.
	EnsureDisplayName(ctx context.Context) (string, error)
}
