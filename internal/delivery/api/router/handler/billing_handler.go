package handler

import (
	"log/slog"
	"net/http"

	"waiter/internal/delivery/api/response"
	"waiter/internal/domain/entity"
	"waiter/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// BillingHandlerParams holds dependencies for BillingHandler, injected by Fx.
type BillingHandlerParams struct {
	fx.In

	BillingUC usecase.BillingUsecase
	Logger    *slog.Logger
}

// BillingHandler serves the bill of one order and its payment.
type BillingHandler struct {
	billingUC usecase.BillingUsecase
	logger    *slog.Logger
}

// NewBillingHandler is the constructor for BillingHandler
func NewBillingHandler(params BillingHandlerParams) *BillingHandler {
	return &BillingHandler{
		billingUC: params.BillingUC,
		logger:    params.Logger,
	}
}

// PayRequest represents the request body for settling a bill
type PayRequest struct {
	Method     entity.PaymentMethod `json:"paymentMethod"`
	PaidAmount string               `json:"paidAmount" validate:"required,numeric"`
}

// BillResponse is an order with its amounts formatted for display.
type BillResponse struct {
	Order    *entity.Order          `json:"order"`
	Subtotal string                 `json:"subtotal"`
	VAT      string                 `json:"vat"`
	Total    string                 `json:"total"`
	Methods  []entity.PaymentMethod `json:"paymentMethods"`
}

// ReceiptResponse is the outcome of a payment formatted for display.
type ReceiptResponse struct {
	Order  *entity.Order        `json:"order"`
	Method entity.PaymentMethod `json:"paymentMethod"`
	Paid   string               `json:"paid"`
	Change string               `json:"change"`
}

// GetBill returns the order with its display totals.
func (h *BillingHandler) GetBill(c echo.Context) error {
	order, err := h.billingUC.LoadBill(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, BillResponse{
		Order:    order,
		Subtotal: entity.FormatAmount(order.Subtotal),
		VAT:      entity.FormatAmount(order.VAT),
		Total:    entity.FormatAmount(order.Total),
		Methods:  []entity.PaymentMethod{entity.PaymentMethodCash, entity.PaymentMethodCard, entity.PaymentMethodMobileBanking},
	})
}

// Pay loads the bill and settles it.
func (h *BillingHandler) Pay(c echo.Context) error {
	var req PayRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_AMOUNT", err.Error())
	}
	paid, err := decimal.NewFromString(req.PaidAmount)
	if err != nil {
		return response.BadRequest(c, "INVALID_AMOUNT", "paidAmount is not a number")
	}

	ctx := c.Request().Context()
	order, err := h.billingUC.LoadBill(ctx, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	receipt, err := h.billingUC.Pay(ctx, order, req.Method, paid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ReceiptResponse{
		Order:  receipt.Order,
		Method: receipt.Method,
		Paid:   entity.FormatAmount(receipt.Paid),
		Change: entity.FormatAmount(receipt.Change),
	})
}
