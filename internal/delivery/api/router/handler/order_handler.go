package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"waiter/internal/delivery/api/response"
	"waiter/internal/domain/entity"
	"waiter/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves order creation, the active orders list and status changes.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// UpdateStatusRequest represents the request body for moving an order along the workflow
type UpdateStatusRequest struct {
	From   entity.OrderStatus `json:"from"`
	Status entity.OrderStatus `json:"status"`
}

// CreateOrder validates the draft and submits it.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var draft entity.OrderDraft
	if err := c.Bind(&draft); err != nil {
		return response.BindingError(c, "Invalid order input")
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), draft)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// ListOrders handles GET /waiter/orders?status=Ready,Served&table=1.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	filter, ok := parseFilter(c)
	if !ok {
		return response.BadRequest(c, "INVALID_STATUS", "Unknown order status in filter")
	}

	orders, err := h.orderUC.ListActiveOrders(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder returns one order.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderUC.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateStatus applies the change and answers with the refreshed list for
// the filter in the query string.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}
	filter, ok := parseFilter(c)
	if !ok {
		return response.BadRequest(c, "INVALID_STATUS", "Unknown order status in filter")
	}

	orders, err := h.orderUC.UpdateStatus(c.Request().Context(), usecase.StatusChange{
		OrderID: c.Param("id"),
		From:    req.From,
		To:      req.Status,
	}, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// parseFilter accepts repeated or comma separated status values.
func parseFilter(c echo.Context) (usecase.OrderFilter, bool) {
	filter := usecase.OrderFilter{TableQuery: strings.TrimSpace(c.QueryParam("table"))}
	for _, raw := range c.QueryParams()["status"] {
		for part := range strings.SplitSeq(raw, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			status, ok := entity.ParseOrderStatus(part)
			if !ok {
				return usecase.OrderFilter{}, false
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	return filter, true
}
