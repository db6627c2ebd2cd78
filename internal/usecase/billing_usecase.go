package usecase

import (
	"context"

	"waiter/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// BillingUsecase defines the interface for settling an order.
type BillingUsecase interface {
	LoadBill(ctx context.Context, orderID string) (*entity.Order, error)
	Pay(ctx context.Context, order *entity.Order, method entity.PaymentMethod, paid decimal.Decimal) (*entity.Receipt, error)
}
