package usecase

import (
	"context"

	"waiter/internal/domain/entity"
)

// DashboardUsecase defines the interface for the overview page and the shell chrome around it.
type DashboardUsecase interface {
	Overview(ctx context.Context) (*entity.Dashboard, error)
	// Branding never fails; it falls back to the default restaurant name.
	Branding(ctx context.Context) entity.RestaurantSettings
	ReportIssue(ctx context.Context, screen, message string) error
}
