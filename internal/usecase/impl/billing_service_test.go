package impl

import (
	"context"
	"testing"

	"waiter/internal/domain/entity"
	domainerrors "waiter/internal/domain/errors"
	mockSvc "waiter/internal/mocks/service"
	"waiter/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type billingServiceFixtures struct {
	service  usecase.BillingUsecase
	gateway  *mockSvc.MockOrderGateway
	notifier *mockSvc.MockNotifier
}

func createTestBillingService(t *testing.T) billingServiceFixtures {
	gateway := mockSvc.NewMockOrderGateway(t)
	notifier := mockSvc.NewMockNotifier(t)

	return billingServiceFixtures{
		service:  NewBillingService(gateway, notifier, newDiscardLogger()),
		gateway:  gateway,
		notifier: notifier,
	}
}

func servedOrder() *entity.Order {
	return &entity.Order{ID: "ord-7", TableNumber: 5, Total: amount("26.25"), Status: entity.OrderStatusServed}
}

func TestBillingService_Pay_Success(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()
	order := servedOrder()

	fx.gateway.EXPECT().PayOrder(ctx, mock.MatchedBy(func(p entity.Payment) bool {
		return p.OrderID == "ord-7" && p.Method == entity.PaymentMethodCard && p.PaidAmount.Equal(amount("30"))
	})).Return(nil).Once()
	fx.notifier.EXPECT().Notify(ctx, toastWith("Payment Successful", "The order has been marked as paid.", entity.ToastVariantDefault)).Once()

	receipt, err := fx.service.Pay(ctx, order, entity.PaymentMethodCard, amount("30"))

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, receipt.Order.Status)
	assert.Equal(t, entity.OrderStatusServed, order.Status, "caller's order is not mutated")
	assert.Equal(t, "3.75", entity.FormatAmount(receipt.Change))
	assert.Equal(t, entity.PaymentMethodCard, receipt.Method)
}

func TestBillingService_Pay_ExactAmountDefaultsToCash(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().PayOrder(ctx, mock.MatchedBy(func(p entity.Payment) bool {
		return p.Method == entity.PaymentMethodCash
	})).Return(nil).Once()
	fx.notifier.EXPECT().Notify(ctx, mock.Anything).Once()

	receipt, err := fx.service.Pay(ctx, servedOrder(), "", amount("26.25"))

	require.NoError(t, err)
	assert.True(t, receipt.Change.IsZero())
	assert.Equal(t, entity.PaymentMethodCash, receipt.Method)
}

func TestBillingService_Pay_ValidationNeverReachesNetwork(t *testing.T) {
	tests := []struct {
		name        string
		method      entity.PaymentMethod
		paid        decimal.Decimal
		want        error
		title       string
		description string
	}{
		{"zero", entity.PaymentMethodCash, decimal.Zero, domainerrors.ErrInvalidAmount, "Invalid amount", "Please enter a valid paid amount."},
		{"negative", entity.PaymentMethodCash, amount("-5"), domainerrors.ErrInvalidAmount, "Invalid amount", "Please enter a valid paid amount."},
		{"short", entity.PaymentMethodCash, amount("26.24"), domainerrors.ErrInsufficientPayment, "Insufficient amount", "Paid amount must be at least 26.25."},
		{"unknown method", "Cheque", amount("30"), domainerrors.ErrInvalidPaymentMethod, "Unsupported payment method", `"Cheque" is not one of Cash, Card, Mobile Banking`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBillingService(t)
			ctx := context.Background()
			fx.notifier.EXPECT().Notify(ctx, toastWith(tt.title, tt.description, entity.ToastVariantDestructive)).Once()

			_, err := fx.service.Pay(ctx, servedOrder(), tt.method, tt.paid)

			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
			fx.gateway.AssertNotCalled(t, "PayOrder", mock.Anything, mock.Anything)
		})
	}
}

func TestBillingService_Pay_BackendFailure(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().PayOrder(ctx, mock.Anything).Return(domainerrors.NewNetworkError(nil, 500, "", "/orders/:id/pay")).Once()
	fx.notifier.EXPECT().Notify(ctx, toastWith("Payment Failed", "Something went wrong while processing the payment.", entity.ToastVariantDestructive)).Once()

	receipt, err := fx.service.Pay(ctx, servedOrder(), entity.PaymentMethodCash, amount("50"))

	assert.Nil(t, receipt)
	assert.Equal(t, domainerrors.KindNetworkOrServer, domainerrors.KindOf(err))
}

func TestBillingService_LoadBill(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		fx := createTestBillingService(t)

		_, err := fx.service.LoadBill(context.Background(), " ")
		assert.ErrorIs(t, err, domainerrors.ErrMissingOrderID)
	})

	t.Run("found", func(t *testing.T) {
		fx := createTestBillingService(t)
		ctx := context.Background()
		fx.gateway.EXPECT().GetOrder(ctx, "ord-7").Return(servedOrder(), nil)

		order, err := fx.service.LoadBill(ctx, "ord-7")
		require.NoError(t, err)
		assert.Equal(t, "ord-7", order.ID)
	})
}
