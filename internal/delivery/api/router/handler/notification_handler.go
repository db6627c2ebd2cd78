package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"waiter/internal/delivery/api/response"
	deliverycontext "waiter/internal/delivery/context"
	"waiter/internal/domain/entity"
	"waiter/internal/infra/notification"
	"waiter/internal/poller"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const streamWriteWait = 5 * time.Second

// ReadyPoller is the part of the poller the shell drives.
type ReadyPoller interface {
	Poll(ctx context.Context) poller.Result
	Count() int
}

// ToastFeed is the part of the toast feed the shell reads.
type ToastFeed interface {
	Recent() []entity.Toast
	Subscribe() (<-chan entity.Toast, func())
}

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	Poller *poller.Poller
	Feed   *notification.Feed
	Logger *slog.Logger
}

// NotificationHandler serves the ready badge, the toast list and the live stream.
type NotificationHandler struct {
	poller   ReadyPoller
	feed     ToastFeed
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return newNotificationHandler(params.Poller, params.Feed, params.Logger)
}

func newNotificationHandler(p ReadyPoller, feed ToastFeed, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		poller: p,
		feed:   feed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger,
	}
}

// BadgeResponse is the ready count shown on the header bell.
type BadgeResponse struct {
	Count int    `json:"count"`
	Label string `json:"label"`
}

// NotificationsResponse is the badge plus the remembered toasts, newest first.
type NotificationsResponse struct {
	Badge  BadgeResponse  `json:"badge"`
	Toasts []entity.Toast `json:"toasts"`
}

// RefreshResponse is the outcome of a manual poll.
type RefreshResponse struct {
	Outcome poller.Outcome     `json:"outcome"`
	Badge   BadgeResponse      `json:"badge"`
	Alert   *entity.ReadyAlert `json:"alert,omitempty"`
}

// StreamEvent is one websocket message.
type StreamEvent struct {
	Toast entity.Toast  `json:"toast"`
	Badge BadgeResponse `json:"badge"`
}

func (h *NotificationHandler) badge() BadgeResponse {
	count := h.poller.Count()

	return BadgeResponse{Count: count, Label: entity.BadgeLabel(count)}
}

// List returns the badge and the recent toasts.
func (h *NotificationHandler) List(c echo.Context) error {
	return response.Success(c, http.StatusOK, NotificationsResponse{
		Badge:  h.badge(),
		Toasts: h.feed.Recent(),
	})
}

// Refresh polls immediately. A failed poll keeps the last badge.
func (h *NotificationHandler) Refresh(c echo.Context) error {
	result := h.poller.Poll(c.Request().Context())

	return response.Success(c, http.StatusOK, RefreshResponse{
		Outcome: result.Outcome,
		Badge:   h.badge(),
		Alert:   result.Alert,
	})
}

// Stream pushes every new toast over a websocket until either side goes away.
func (h *NotificationHandler) Stream(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already answered the request.
		return nil //nolint:nilerr
	}
	defer conn.Close()

	logger := deliverycontext.Logger(c.Request().Context(), h.logger)
	toasts, unsubscribe := h.feed.Subscribe()
	defer unsubscribe()

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-gone:
			return nil
		case toast, ok := <-toasts:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
					time.Now().Add(streamWriteWait))

				return nil
			}
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteJSON(StreamEvent{Toast: toast, Badge: h.badge()}); err != nil {
				logger.Debug("notification stream closed", slog.Any("error", err))

				return nil
			}
		}
	}
}
