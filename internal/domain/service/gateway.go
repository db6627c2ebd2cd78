package service

import (
	"context"

	"waiter/internal/domain/entity"
)

// AuthGateway covers the backend's authentication endpoints.
type AuthGateway interface {
	// Login exchanges credentials for an access token and the staff user.
	Login(ctx context.Context, creds entity.Credentials) (*entity.LoginResult, error)

	// CurrentUser probes the "me" endpoints in order and returns the first user found.
	CurrentUser(ctx context.Context) (*entity.StaffUser, error)
}

// OrderGateway covers the order endpoints.
type OrderGateway interface {
	// ListOrders returns orders in any of the given statuses.
	ListOrders(ctx context.Context, statuses []entity.OrderStatus) ([]*entity.Order, error)

	// GetOrder returns one order by id.
	GetOrder(ctx context.Context, id string) (*entity.Order, error)

	// CreateOrder posts a new order. The returned order is nil when the backend
	// accepted the order without echoing it back.
	CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error)

	// UpdateOrderStatus sets the status of one order.
	UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error

	// PayOrder captures a payment.
	PayOrder(ctx context.Context, payment entity.Payment) error
}

// WaiterGateway covers the waiter's own record.
type WaiterGateway interface {
	GetProfile(ctx context.Context) (*entity.Profile, error)

	// MarkAttendanceToday records attendance. stationID is empty unless the
	// waiter scanned a station code.
	MarkAttendanceToday(ctx context.Context, stationID string) error
}

// RestaurantGateway covers restaurant-wide endpoints.
type RestaurantGateway interface {
	GetSettings(ctx context.Context) (*entity.RestaurantSettings, error)
	ReportIssue(ctx context.Context, report entity.IssueReport) error
}
