package impl

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"waiter/internal/domain/entity"
	domainerrors "waiter/internal/domain/errors"
	"waiter/internal/domain/service"
	"waiter/internal/usecase"
)

type orderService struct {
	gateway service.OrderGateway
	errorReporter
}

// NewOrderService creates a new order service instance
func NewOrderService(gateway service.OrderGateway, notifier service.Notifier, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		gateway:       gateway,
		errorReporter: errorReporter{notifier: notifier, logger: logger},
	}
}

// CreateOrder validates the draft, computes its totals and posts it. The
// backend's echo is preferred; a missing echo falls back to the local order.
func (s *orderService) CreateOrder(ctx context.Context, draft entity.OrderDraft) (*entity.Order, error) {
	if err := validateDraft(draft); err != nil {
		return nil, s.report(ctx, service.ErrorPolicySurface, createOrderFailure, err)
	}

	local := draft.ToOrder()
	created, err := s.gateway.CreateOrder(ctx, local)
	if err != nil {
		return nil, s.report(ctx, service.ErrorPolicySurface, createOrderFailure, err)
	}
	if created == nil {
		created = local
	}

	s.success(ctx, "Order Created Successfully", "The order has been saved.")

	return created, nil
}

func validateDraft(draft entity.OrderDraft) error {
	if draft.TableNumber < 1 {
		return domainerrors.ErrInvalidTableNumber.WithDetailsf("got %d", draft.TableNumber)
	}
	if len(draft.Items) == 0 {
		return domainerrors.ErrEmptyOrder
	}
	for i, item := range draft.Items {
		switch {
		case strings.TrimSpace(item.Name) == "":
			return domainerrors.ErrInvalidItem.WithDetailsf("item %d has no name", i+1)
		case item.Quantity < 0:
			return domainerrors.ErrInvalidItem.WithDetailsf("item %d has a negative quantity", i+1)
		case item.Price.IsNegative():
			return domainerrors.ErrInvalidItem.WithDetailsf("item %d has a negative price", i+1)
		}
	}

	return nil
}

// ListActiveOrders lists orders in the filter's statuses, narrowed to tables
// whose number contains the table query.
func (s *orderService) ListActiveOrders(ctx context.Context, filter usecase.OrderFilter) ([]*entity.Order, error) {
	statuses := filter.Statuses
	if len(statuses) == 0 {
		statuses = entity.ActiveStatuses
	}

	orders, err := s.gateway.ListOrders(ctx, statuses)
	if err != nil {
		return nil, s.report(ctx, service.ErrorPolicySilent, failure{title: "failed to load active orders"}, err)
	}

	query := strings.ToLower(strings.TrimSpace(filter.TableQuery))
	if query == "" {
		return orders, nil
	}

	return slices.DeleteFunc(orders, func(o *entity.Order) bool {
		return !strings.Contains(strconv.Itoa(o.TableNumber), query)
	}), nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domainerrors.ErrMissingOrderID
	}

	order, err := s.gateway.GetOrder(ctx, id)
	if err != nil {
		return nil, s.report(ctx, service.ErrorPolicySilent, failure{title: "failed to load order"}, err)
	}

	return order, nil
}

// UpdateStatus moves an order forward and returns the refreshed list.
func (s *orderService) UpdateStatus(ctx context.Context, change usecase.StatusChange, filter usecase.OrderFilter) ([]*entity.Order, error) {
	if err := validateStatusChange(change); err != nil {
		return nil, s.report(ctx, service.ErrorPolicySurface, updateStatusFailure, err)
	}

	if err := s.gateway.UpdateOrderStatus(ctx, change.OrderID, change.To); err != nil {
		return nil, s.report(ctx, service.ErrorPolicySurface, updateStatusFailure, err)
	}

	s.success(ctx, "Status Updated", `Order status changed to "`+change.To.String()+`".`)

	// The change is applied already; a failed refresh must not report it as failed.
	orders, err := s.ListActiveOrders(ctx, filter)
	if err != nil {
		s.logger.Warn("order list refresh after status change failed",
			slog.String("order_id", change.OrderID),
			slog.Any("error", err),
		)

		return []*entity.Order{}, nil
	}

	return orders, nil
}

func validateStatusChange(change usecase.StatusChange) error {
	if strings.TrimSpace(change.OrderID) == "" {
		return domainerrors.ErrMissingOrderID
	}
	if change.To == "" {
		return domainerrors.ErrInvalidStatus.WithDetails("Please choose a status before updating.")
	}
	if !slices.Contains(entity.SettableStatuses, change.To) {
		return domainerrors.ErrInvalidStatus.WithDetailsf("%q cannot be set here", change.To)
	}
	if change.From != "" && !change.From.CanAdvanceTo(change.To) {
		return domainerrors.ErrStatusRegression.WithDetailsf("cannot move from %s back to %s", change.From, change.To)
	}

	return nil
}
