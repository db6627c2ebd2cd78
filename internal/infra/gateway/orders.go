package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"waiter/internal/domain/entity"
	domainerrors "waiter/internal/domain/errors"
)

type orderItemPayload struct {
	Name     string      `json:"name"`
	Quantity int         `json:"quantity"`
	Price    json.Number `json:"price"`
}

type orderPayload struct {
	TableNumber  int                `json:"tableNumber"`
	CustomerName string             `json:"customerName"`
	Items        []orderItemPayload `json:"items"`
	Subtotal     json.Number        `json:"subtotal"`
	VAT          json.Number        `json:"vat"`
	Total        json.Number        `json:"total"`
}

type statusPayload struct {
	Status entity.OrderStatus `json:"status"`
}

type paymentPayload struct {
	PaymentMethod entity.PaymentMethod `json:"paymentMethod"`
	PaidAmount    json.Number          `json:"paidAmount"`
}

// ListOrders fetches orders in any of statuses. An empty filter lists everything the backend returns.
func (c *Client) ListOrders(ctx context.Context, statuses []entity.OrderStatus) ([]*entity.Order, error) {
	var query url.Values
	if len(statuses) > 0 {
		names := make([]string, len(statuses))
		for i, s := range statuses {
			names[i] = s.String()
		}
		query = url.Values{"status": []string{strings.Join(names, ",")}}
	}

	raw, err := c.do(ctx, http.MethodGet, "/orders", query, nil)
	if err != nil {
		return nil, err
	}

	return decodeOrderList(raw), nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	if id == "" {
		return nil, domainerrors.ErrMissingOrderID
	}

	raw, err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}

	order, ok := decodeOrder(raw)
	if !ok {
		return nil, domainerrors.NewNetworkError(nil, http.StatusOK, "Order not found", "/orders/:id")
	}
	if order.ID == "" {
		order.ID = id
	}

	return order, nil
}

// CreateOrder posts the order with its locally computed totals. A nil order
// with a nil error means the backend accepted it without echoing it back.
func (c *Client) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	payload := orderPayload{
		TableNumber:  order.TableNumber,
		CustomerName: order.CustomerName,
		Items:        make([]orderItemPayload, len(order.Items)),
		Subtotal:     jsonAmount(order.Subtotal),
		VAT:          jsonAmount(order.VAT),
		Total:        jsonAmount(order.Total),
	}
	for i, item := range order.Items {
		payload.Items[i] = orderItemPayload{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    jsonAmount(item.Price),
		}
	}

	raw, err := c.do(ctx, http.MethodPost, "/orders", nil, payload)
	if err != nil {
		return nil, err
	}

	if echoed, ok := decodeOrder(raw); ok && echoed.ID != "" {
		return echoed, nil
	}

	return nil, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	if id == "" {
		return domainerrors.ErrMissingOrderID
	}

	_, err := c.do(ctx, http.MethodPatch, "/orders/"+url.PathEscape(id)+"/status", nil, statusPayload{Status: status})

	return err
}

func (c *Client) PayOrder(ctx context.Context, payment entity.Payment) error {
	if payment.OrderID == "" {
		return domainerrors.ErrMissingOrderID
	}

	_, err := c.do(ctx, http.MethodPost, "/orders/"+url.PathEscape(payment.OrderID)+"/pay", nil, paymentPayload{
		PaymentMethod: payment.Method,
		PaidAmount:    jsonAmount(payment.PaidAmount),
	})

	return err
}
