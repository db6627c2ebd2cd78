package impl

import (
	"context"
	"testing"

	"waiter/internal/domain/entity"
	domainerrors "waiter/internal/domain/errors"
	"waiter/internal/errors"
	mockSvc "waiter/internal/mocks/service"
	"waiter/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service  usecase.OrderUsecase
	gateway  *mockSvc.MockOrderGateway
	notifier *mockSvc.MockNotifier
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	gateway := mockSvc.NewMockOrderGateway(t)
	notifier := mockSvc.NewMockNotifier(t)

	return orderServiceFixtures{
		service:  NewOrderService(gateway, notifier, newDiscardLogger()),
		gateway:  gateway,
		notifier: notifier,
	}
}

func validDraft() entity.OrderDraft {
	return entity.OrderDraft{
		TableNumber:  12,
		CustomerName: "Rahim",
		Items: []entity.OrderItem{
			{Name: "Soup", Quantity: 2, Price: amount("5")},
			{Name: "Rice", Quantity: 1, Price: amount("15")},
		},
	}
}

func TestOrderService_CreateOrder_PostsComputedTotals(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().CreateOrder(ctx, mock.MatchedBy(func(o *entity.Order) bool {
		return o.TableNumber == 12 &&
			o.Subtotal.Equal(amount("25")) &&
			o.VAT.Equal(amount("1.25")) &&
			o.Total.Equal(amount("26.25")) &&
			o.Status == entity.OrderStatusPending
	})).Return(&entity.Order{ID: "ord-1", TableNumber: 12, Total: amount("26.25"), Status: entity.OrderStatusPending}, nil)
	fx.notifier.EXPECT().Notify(ctx, toastMatching("Order Created Successfully", entity.ToastVariantDefault)).Once()

	created, err := fx.service.CreateOrder(ctx, validDraft())

	require.NoError(t, err)
	assert.Equal(t, "ord-1", created.ID)
}

func TestOrderService_CreateOrder_FallsBackToLocalOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().CreateOrder(ctx, mock.Anything).Return(nil, nil)
	fx.notifier.EXPECT().Notify(ctx, mock.Anything).Once()

	created, err := fx.service.CreateOrder(ctx, validDraft())

	require.NoError(t, err)
	assert.Empty(t, created.ID)
	assert.Equal(t, "26.25", entity.FormatAmount(created.Total))
}

func TestOrderService_CreateOrder_ValidationNeverReachesNetwork(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.OrderDraft)
		want   error
	}{
		{"zero table", func(d *entity.OrderDraft) { d.TableNumber = 0 }, domainerrors.ErrInvalidTableNumber},
		{"negative table", func(d *entity.OrderDraft) { d.TableNumber = -3 }, domainerrors.ErrInvalidTableNumber},
		{"no items", func(d *entity.OrderDraft) { d.Items = nil }, domainerrors.ErrEmptyOrder},
		{"blank name", func(d *entity.OrderDraft) { d.Items[0].Name = "  " }, domainerrors.ErrInvalidItem},
		{"negative quantity", func(d *entity.OrderDraft) { d.Items[1].Quantity = -1 }, domainerrors.ErrInvalidItem},
		{"negative price", func(d *entity.OrderDraft) { d.Items[1].Price = amount("-0.01") }, domainerrors.ErrInvalidItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()
			draft := validDraft()
			tt.mutate(&draft)

			fx.notifier.EXPECT().Notify(ctx, mock.MatchedBy(func(toast entity.Toast) bool {
				return toast.Variant == entity.ToastVariantDestructive
			})).Once()

			_, err := fx.service.CreateOrder(ctx, draft)

			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
			fx.gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_CreateOrder_ZeroQuantityIsAllowed(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	draft := validDraft()
	draft.Items[0].Quantity = 0

	fx.gateway.EXPECT().CreateOrder(ctx, mock.MatchedBy(func(o *entity.Order) bool {
		return o.Subtotal.Equal(amount("15"))
	})).Return(nil, nil)
	fx.notifier.EXPECT().Notify(ctx, mock.Anything).Once()

	_, err := fx.service.CreateOrder(ctx, draft)
	require.NoError(t, err)
}

func TestOrderService_CreateOrder_BackendFailure(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	backendErr := domainerrors.NewNetworkError(nil, 500, "boom", "/orders")

	fx.gateway.EXPECT().CreateOrder(ctx, mock.Anything).Return(nil, backendErr)
	fx.notifier.EXPECT().Notify(ctx, toastWith("Failed to create order", "Please try again.", entity.ToastVariantDestructive)).Once()

	_, err := fx.service.CreateOrder(ctx, validDraft())

	assert.ErrorIs(t, err, backendErr)
}

func TestOrderService_ListActiveOrders(t *testing.T) {
	orders := func() []*entity.Order {
		return []*entity.Order{
			{ID: "1", TableNumber: 3},
			{ID: "2", TableNumber: 12},
			{ID: "3", TableNumber: 21},
		}
	}

	t.Run("default statuses", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		fx.gateway.EXPECT().ListOrders(ctx, entity.ActiveStatuses).Return(orders(), nil)

		got, err := fx.service.ListActiveOrders(ctx, usecase.OrderFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("explicit statuses and table search", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		statuses := []entity.OrderStatus{entity.OrderStatusServed}
		fx.gateway.EXPECT().ListOrders(ctx, statuses).Return(orders(), nil)

		got, err := fx.service.ListActiveOrders(ctx, usecase.OrderFilter{Statuses: statuses, TableQuery: " 2 "})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "2", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
	})

	t.Run("load failure is not toasted", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		fx.gateway.EXPECT().ListOrders(ctx, mock.Anything).Return(nil, domainerrors.NewNetworkError(nil, 503, "", "/orders"))

		_, err := fx.service.ListActiveOrders(ctx, usecase.OrderFilter{})
		assert.Error(t, err)
	})
}

func TestOrderService_GetOrder_MissingID(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.GetOrder(context.Background(), "")

	assert.ErrorIs(t, err, domainerrors.ErrMissingOrderID)
}

func TestOrderService_UpdateStatus_RefetchesList(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	filter := usecase.OrderFilter{TableQuery: "4"}
	refreshed := []*entity.Order{{ID: "ord-1", TableNumber: 4, Status: entity.OrderStatusServed}}

	fx.gateway.EXPECT().UpdateOrderStatus(ctx, "ord-1", entity.OrderStatusServed).Return(nil).Once()
	fx.notifier.EXPECT().Notify(ctx, toastWith("Status Updated", `Order status changed to "Served".`, entity.ToastVariantDefault)).Once()
	fx.gateway.EXPECT().ListOrders(ctx, entity.ActiveStatuses).Return(refreshed, nil).Once()

	got, err := fx.service.UpdateStatus(ctx, usecase.StatusChange{
		OrderID: "ord-1",
		From:    entity.OrderStatusReady,
		To:      entity.OrderStatusServed,
	}, filter)

	require.NoError(t, err)
	assert.Equal(t, refreshed, got)
}

func TestOrderService_UpdateStatus_SameStatusIsSent(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().UpdateOrderStatus(ctx, "ord-1", entity.OrderStatusReady).Return(nil).Once()
	fx.notifier.EXPECT().Notify(ctx, mock.Anything).Once()
	fx.gateway.EXPECT().ListOrders(ctx, mock.Anything).Return([]*entity.Order{}, nil).Once()

	_, err := fx.service.UpdateStatus(ctx, usecase.StatusChange{
		OrderID: "ord-1",
		From:    entity.OrderStatusReady,
		To:      entity.OrderStatusReady,
	}, usecase.OrderFilter{})

	require.NoError(t, err)
}

func TestOrderService_UpdateStatus_RefreshFailureStillSucceeds(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().UpdateOrderStatus(ctx, "ord-1", entity.OrderStatusServed).Return(nil).Once()
	fx.notifier.EXPECT().Notify(ctx, toastMatching("Status Updated", entity.ToastVariantDefault)).Once()
	fx.gateway.EXPECT().ListOrders(ctx, entity.ActiveStatuses).
		Return(nil, domainerrors.NewNetworkError(errors.New("connection reset"), 0, "", "/orders")).Once()

	got, err := fx.service.UpdateStatus(ctx, usecase.StatusChange{OrderID: "ord-1", To: entity.OrderStatusServed}, usecase.OrderFilter{})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestOrderService_UpdateStatus_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		change usecase.StatusChange
		want   error
		title  string
	}{
		{"no status", usecase.StatusChange{OrderID: "o", From: entity.OrderStatusPending}, domainerrors.ErrInvalidStatus, "Select a status"},
		{"paid is not settable", usecase.StatusChange{OrderID: "o", To: entity.OrderStatusPaid}, domainerrors.ErrInvalidStatus, "Select a status"},
		{"unknown status", usecase.StatusChange{OrderID: "o", To: "Cooking"}, domainerrors.ErrInvalidStatus, "Select a status"},
		{"regression", usecase.StatusChange{OrderID: "o", From: entity.OrderStatusServed, To: entity.OrderStatusPreparing}, domainerrors.ErrStatusRegression, "Order status can only move forward"},
		{"missing id", usecase.StatusChange{To: entity.OrderStatusReady}, domainerrors.ErrMissingOrderID, "Order ID is missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()
			fx.notifier.EXPECT().Notify(ctx, toastMatching(tt.title, entity.ToastVariantDestructive)).Once()

			_, err := fx.service.UpdateStatus(ctx, tt.change, usecase.OrderFilter{})

			assert.ErrorIs(t, err, tt.want)
			fx.gateway.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_UpdateStatus_BackendFailure(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().UpdateOrderStatus(ctx, "ord-1", entity.OrderStatusReady).
		Return(domainerrors.NewNetworkError(nil, 500, "", "/orders/:id/status"))
	fx.notifier.EXPECT().Notify(ctx, toastWith("Failed to update status", "Please try again.", entity.ToastVariantDestructive)).Once()

	_, err := fx.service.UpdateStatus(ctx, usecase.StatusChange{OrderID: "ord-1", To: entity.OrderStatusReady}, usecase.OrderFilter{})

	assert.Equal(t, domainerrors.KindNetworkOrServer, domainerrors.KindOf(err))
	fx.gateway.AssertNotCalled(t, "ListOrders", mock.Anything, mock.Anything)
}
