package usecase

import (
	"context"

	"waiter/internal/domain/entity"
)

// OrderUsecase defines the interface for the order workflow.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, draft entity.OrderDraft) (*entity.Order, error)
	ListActiveOrders(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
	GetOrder(ctx context.Context, id string) (*entity.Order, error)
	// UpdateStatus applies the change and returns the re-fetched list for filter.
	UpdateStatus(ctx context.Context, change StatusChange, filter OrderFilter) ([]*entity.Order, error)
}

// --- Input DTOs ---

// OrderFilter selects the orders of the active orders view.
type OrderFilter struct {
	// Statuses defaults to the active statuses when empty.
	Statuses []entity.OrderStatus `json:"statuses,omitempty" query:"status"`
	// TableQuery keeps orders whose table number contains it.
	TableQuery string `json:"table,omitempty" query:"table"`
}

// StatusChange moves one order to a new status.
type StatusChange struct {
	OrderID string             `json:"orderId" validate:"required"`
	From    entity.OrderStatus `json:"from"`
	To      entity.OrderStatus `json:"status" validate:"required"`
}
