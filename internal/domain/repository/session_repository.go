// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"waiter/internal/domain/entity"
)

// SessionReader is the read capability every component may hold.
type SessionReader interface {
	// Load returns the stored session. A missing session is the zero value, not an error.
	Load(ctx context.Context) (entity.Session, error)
}

// SessionWriter is the write capability. Only the login/logout flows,
// the display-name backfill and the route guard are handed one.
type SessionWriter interface {
	// Save replaces the stored session; empty fields are removed.
	Save(ctx context.Context, session entity.Session) error

	// SaveDisplayName stores only the display name.
	SaveDisplayName(ctx context.Context, name string) error

	// Clear removes token, role and display name together.
	Clear(ctx context.Context) error
}

// SessionRepository combines both capabilities.
type SessionRepository interface {
	SessionReader
	SessionWriter
}
