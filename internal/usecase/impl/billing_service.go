package impl

import (
	"context"
	"log/slog"
	"strings"

	"waiter/internal/domain/entity"
	domainerrors "waiter/internal/domain/errors"
	"waiter/internal/domain/service"
	"waiter/internal/usecase"

	"github.com/shopspring/decimal"
)

type billingService struct {
	gateway service.OrderGateway
	errorReporter
}

// NewBillingService creates a new billing service instance
func NewBillingService(gateway service.OrderGateway, notifier service.Notifier, logger *slog.Logger) usecase.BillingUsecase {
	return &billingService{
		gateway:       gateway,
		errorReporter: errorReporter{notifier: notifier, logger: logger},
	}
}

func (s *billingService) LoadBill(ctx context.Context, orderID string) (*entity.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, domainerrors.ErrMissingOrderID
	}

	order, err := s.gateway.GetOrder(ctx, orderID)
	if err != nil {
		return nil, s.report(ctx, service.ErrorPolicySilent, failure{title: "failed to load bill"}, err)
	}

	return order, nil
}

// Pay settles the order. Validation happens before any request: the amount
// must be positive and cover the total. An empty method means cash.
func (s *billingService) Pay(ctx context.Context, order *entity.Order, method entity.PaymentMethod, paid decimal.Decimal) (*entity.Receipt, error) {
	if order == nil || order.ID == "" {
		return nil, s.report(ctx, service.ErrorPolicySurface, paymentFailure, domainerrors.ErrMissingOrderID)
	}
	if method == "" {
		method = entity.PaymentMethodCash
	}
	if !method.IsValid() {
		return nil, s.report(ctx, service.ErrorPolicySurface, paymentFailure,
			domainerrors.ErrInvalidPaymentMethod.WithDetailsf("%q is not one of Cash, Card, Mobile Banking", method))
	}
	if !paid.IsPositive() {
		return nil, s.report(ctx, service.ErrorPolicySurface, paymentFailure,
			domainerrors.ErrInvalidAmount.WithDetails("Please enter a valid paid amount."))
	}
	if paid.LessThan(order.Total) {
		return nil, s.report(ctx, service.ErrorPolicySurface, paymentFailure,
			domainerrors.ErrInsufficientPayment.WithDetailsf("Paid amount must be at least %s.", entity.FormatAmount(order.Total)))
	}

	if err := s.gateway.PayOrder(ctx, entity.Payment{OrderID: order.ID, Method: method, PaidAmount: paid}); err != nil {
		return nil, s.report(ctx, service.ErrorPolicySurface, paymentFailure, err)
	}

	settled := *order
	settled.Status = entity.OrderStatusPaid

	s.success(ctx, "Payment Successful", "The order has been marked as paid.")

	return &entity.Receipt{
		Order:  &settled,
		Method: method,
		Paid:   paid,
		Change: entity.ComputeChange(order.Total, paid),
	}, nil
}
