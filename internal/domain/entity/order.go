// Package entity contains the core business objects of the waiter client.
// Orders, profiles and settings are owned by the restaurant backend; the
// client only holds read copies of them.
package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// VATRate is the value-added tax applied to an order subtotal at creation time.
var VATRate = decimal.RequireFromString("0.05")

// OrderStatus is the workflow position of an order.
type OrderStatus string

const (
	// OrderStatusPending is an order accepted but not yet started by the kitchen.
	OrderStatusPending OrderStatus = "Pending"
	// OrderStatusPreparing is an order the kitchen is working on.
	OrderStatusPreparing OrderStatus = "Preparing"
	// OrderStatusReady is an order waiting to be served.
	OrderStatusReady OrderStatus = "Ready"
	// OrderStatusServed is an order delivered to the table.
	OrderStatusServed OrderStatus = "Served"
	// OrderStatusPaid is a settled order.
	OrderStatusPaid OrderStatus = "Paid"
)

// statusRank orders the workflow. The client never moves an order to a lower rank.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:   0,
	OrderStatusPreparing: 1,
	OrderStatusReady:     2,
	OrderStatusServed:    3,
	OrderStatusPaid:      4,
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a known workflow value.
func (s OrderStatus) IsValid() bool {
	_, ok := statusRank[s]

	return ok
}

// CanAdvanceTo reports whether moving from s to next keeps the workflow moving
// forward. Staying on the same status is allowed.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		// Unknown current status: the backend is authoritative, only the target is checked.
		return next.IsValid()
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}

	return to >= from
}

// ParseOrderStatus matches a status case-insensitively.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	trimmed := strings.TrimSpace(raw)
	for status := range statusRank {
		if strings.EqualFold(string(status), trimmed) {
			return status, true
		}
	}

	return "", false
}

// SettableStatuses are the statuses a waiter may pick in the status control.
// Paid is only reachable through payment.
var SettableStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusServed,
}

// ActiveStatuses is the default filter of the active orders view.
var ActiveStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
}

// DashboardStatuses is the filter of the dashboard overview.
var DashboardStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusServed,
}

// OrderItem is one line of an order.
type OrderItem struct {
	Name     string          `json:"name"`     // Menu item name as typed by the waiter.
	Quantity int             `json:"quantity"` // Number of portions, never negative.
	Price    decimal.Decimal `json:"price"`    // Unit price, never negative.
}

// LineTotal returns quantity × price.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is the client's view of a restaurant order.
type Order struct {
	ID           string          `json:"id"`           // Opaque backend identifier, stable for the order's lifetime.
	TableNumber  int             `json:"tableNumber"`  // Positive table number.
	CustomerName string          `json:"customerName"` // Optional display name.
	Items        []OrderItem     `json:"items"`        // Ordered line items.
	Subtotal     decimal.Decimal `json:"subtotal"`     // Sum of line totals.
	VAT          decimal.Decimal `json:"vat"`          // Tax on the subtotal.
	Total        decimal.Decimal `json:"total"`        // Subtotal plus VAT.
	Status       OrderStatus     `json:"status"`       // Current workflow status.
}

// Totals holds the derived amounts of an order.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	VAT      decimal.Decimal `json:"vat"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals derives subtotal, VAT and total from line items.
// Values are exact; rounding happens only when they are displayed.
func ComputeTotals(items []OrderItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	vat := subtotal.Mul(VATRate)

	return Totals{
		Subtotal: subtotal,
		VAT:      vat,
		Total:    subtotal.Add(vat),
	}
}

// OrderDraft is what the waiter fills in on the create-order form.
type OrderDraft struct {
	TableNumber  int         `json:"tableNumber" validate:"required,min=1"`
	CustomerName string      `json:"customerName"`
	Items        []OrderItem `json:"items" validate:"required,min=1,dive"`
}

// ToOrder builds the locally computed order for the draft.
func (d OrderDraft) ToOrder() *Order {
	totals := ComputeTotals(d.Items)

	return &Order{
		TableNumber:  d.TableNumber,
		CustomerName: d.CustomerName,
		Items:        d.Items,
		Subtotal:     totals.Subtotal,
		VAT:          totals.VAT,
		Total:        totals.Total,
		Status:       OrderStatusPending,
	}
}

// FormatAmount renders an amount with two decimals.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
