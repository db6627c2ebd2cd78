package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"waiter/internal/domain/entity"
	"waiter/internal/errors"
	mockSvc "waiter/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var dispatchedAt = time.Date(2026, 10, 14, 18, 30, 0, 0, time.UTC)

func newTestDispatcher(notifier *mockSvc.MockNotifier, push *mockSvc.MockPushService, tokens []string) *AlertDispatcher {
	d := NewDispatcher(notifier, nil, tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if push != nil {
		d.push = push
	}
	d.now = func() time.Time { return dispatchedAt }

	return d
}

func TestAlertDispatcher_ToastOnly(t *testing.T) {
	notifier := mockSvc.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(toast entity.Toast) bool {
		return toast.Kind == entity.ToastKindReadyAlert &&
			toast.Title == "New order ready" &&
			toast.Description == "Order #o-1 is ready (Table 4)." &&
			toast.At.Equal(dispatchedAt)
	})).Once()

	d := newTestDispatcher(notifier, nil, []string{"tok"})
	d.OnReadyAlert(context.Background(), entity.ReadyAlert{Count: 1, OrderID: "o-1", TableNumber: 4})
}

func TestAlertDispatcher_PushSingleDevice(t *testing.T) {
	notifier := mockSvc.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Once()
	push := mockSvc.NewMockPushService(t)
	push.EXPECT().SendSingleNotification(mock.Anything, "tok-a", "New order ready", mock.Anything, map[string]string{
		"type":        "ready_alert",
		"count":       "1",
		"orderId":     "o-1",
		"tableNumber": "4",
	}).Return(nil).Once()

	d := newTestDispatcher(notifier, push, []string{"tok-a"})
	d.OnReadyAlert(context.Background(), entity.ReadyAlert{Count: 1, OrderID: "o-1", TableNumber: 4})
}

func TestAlertDispatcher_PushBatchAggregate(t *testing.T) {
	notifier := mockSvc.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Once()
	push := mockSvc.NewMockPushService(t)
	push.EXPECT().SendBatchNotification(mock.Anything, []string{"tok-a", "tok-b"}, "New ready orders", "2 orders are ready to serve.", map[string]string{
		"type":  "ready_alert",
		"count": "2",
	}).Return(1, 1, []string{"tok-b"}, nil).Once()

	d := newTestDispatcher(notifier, push, []string{"tok-a", "tok-b"})
	d.OnReadyAlert(context.Background(), entity.ReadyAlert{Count: 2})
}

func TestAlertDispatcher_PushFailureIsSwallowed(t *testing.T) {
	notifier := mockSvc.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Once()
	push := mockSvc.NewMockPushService(t)
	push.EXPECT().SendSingleNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _, _, _ string, _ map[string]string) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)

			return errors.New("fcm down")
		}).Once()

	d := newTestDispatcher(notifier, push, []string{"tok-a"})
	assert.NotPanics(t, func() {
		d.OnReadyAlert(context.Background(), entity.ReadyAlert{Count: 1, OrderID: "o-1", TableNumber: 2})
	})
}
