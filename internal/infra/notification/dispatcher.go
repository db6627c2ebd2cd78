package notification

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"waiter/config"
	"waiter/internal/domain/entity"
	"waiter/internal/domain/service"

	"go.uber.org/fx"
)

// pushTimeout bounds the device push so a slow provider never holds up the poller.
const pushTimeout = 5 * time.Second

// AlertDispatcher turns ready alerts into toasts and mirrors them to the
// waiter's devices when push is configured.
type AlertDispatcher struct {
	notifier service.Notifier
	push     service.PushService
	tokens   []string
	logger   *slog.Logger
	now      func() time.Time
}

// NewDispatcher creates a dispatcher. push may be nil.
func NewDispatcher(notifier service.Notifier, push service.PushService, tokens []string, logger *slog.Logger) *AlertDispatcher {
	return &AlertDispatcher{
		notifier: notifier,
		push:     push,
		tokens:   tokens,
		logger:   logger,
		now:      time.Now,
	}
}

// DispatcherParams holds dependencies for the AlertDispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Config   *config.Config
	Notifier service.Notifier
	Push     service.PushService `optional:"true"`
	Logger   *slog.Logger
}

// NewAlertDispatcher creates the poller's alert sink.
func NewAlertDispatcher(params DispatcherParams) service.AlertSink {
	var tokens []string
	if params.Config.Firebase != nil {
		tokens = params.Config.Firebase.DeviceTokens
	}

	return NewDispatcher(params.Notifier, params.Push, tokens, params.Logger)
}

func (d *AlertDispatcher) OnReadyAlert(ctx context.Context, alert entity.ReadyAlert) {
	toast := alert.Toast()
	toast.At = d.now()
	d.notifier.Notify(ctx, toast)

	if d.push == nil || len(d.tokens) == 0 {
		return
	}

	pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), pushTimeout)
	defer cancel()

	data := map[string]string{
		"type":  string(entity.ToastKindReadyAlert),
		"count": strconv.Itoa(alert.Count),
	}
	if alert.Single() {
		data["orderId"] = alert.OrderID
		data["tableNumber"] = strconv.Itoa(alert.TableNumber)
	}

	if len(d.tokens) == 1 {
		if err := d.push.SendSingleNotification(pushCtx, d.tokens[0], toast.Title, toast.Description, data); err != nil {
			d.logger.Warn("failed to push ready alert", slog.Any("error", err))
		}

		return
	}

	success, failure, invalid, err := d.push.SendBatchNotification(pushCtx, d.tokens, toast.Title, toast.Description, data)
	if err != nil {
		d.logger.Warn("failed to push ready alert", slog.Any("error", err))

		return
	}
	if len(invalid) > 0 {
		d.logger.Warn("device tokens rejected by push provider", slog.Int("count", len(invalid)))
	}
	d.logger.Debug("ready alert pushed",
		slog.Int("success", success),
		slog.Int("failure", failure),
	)
}
