package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	items := []OrderItem{
		{Name: "Soup", Quantity: 2, Price: decimal.NewFromInt(5)},
		{Name: "Rice", Quantity: 1, Price: decimal.NewFromInt(15)},
	}

	totals := ComputeTotals(items)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(25)), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.VAT.Equal(decimal.RequireFromString("1.25")), "vat %s", totals.VAT)
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("26.25")), "total %s", totals.Total)
}

func TestComputeTotals_ExactBeforeRounding(t *testing.T) {
	items := []OrderItem{{Name: "Tea", Quantity: 3, Price: decimal.RequireFromString("0.10")}}

	totals := ComputeTotals(items)

	// 0.30 * 0.05 = 0.015 stays exact until display.
	assert.Equal(t, "0.015", totals.VAT.String())
	assert.Equal(t, "0.32", FormatAmount(totals.Total))
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := ComputeTotals(nil)

	assert.True(t, totals.Total.IsZero())
	assert.Equal(t, "0.00", FormatAmount(totals.Total))
}

func TestOrderStatus_CanAdvanceTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending to preparing", OrderStatusPending, OrderStatusPreparing, true},
		{"ready to served", OrderStatusReady, OrderStatusServed, true},
		{"same status", OrderStatusReady, OrderStatusReady, true},
		{"ready back to pending", OrderStatusReady, OrderStatusPending, false},
		{"paid back to served", OrderStatusPaid, OrderStatusServed, false},
		{"unknown target", OrderStatusPending, OrderStatus("Cancelled"), false},
		{"unknown current", OrderStatus("Queued"), OrderStatusReady, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanAdvanceTo(tt.to))
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, ok := ParseOrderStatus(" ready ")
	require.True(t, ok)
	assert.Equal(t, OrderStatusReady, status)

	_, ok = ParseOrderStatus("cooking")
	assert.False(t, ok)
}

func TestOrderDraft_ToOrder(t *testing.T) {
	draft := OrderDraft{
		TableNumber:  4,
		CustomerName: "Rahim",
		Items:        []OrderItem{{Name: "Burger", Quantity: 2, Price: decimal.NewFromInt(10)}},
	}

	order := draft.ToOrder()

	assert.Empty(t, order.ID)
	assert.Equal(t, 4, order.TableNumber)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, "21.00", FormatAmount(order.Total))
}

func TestComputeChange(t *testing.T) {
	total := decimal.RequireFromString("26.25")

	assert.Equal(t, "3.75", ComputeChange(total, decimal.NewFromInt(30)).StringFixed(2))
	assert.True(t, ComputeChange(total, total).IsZero())
	assert.True(t, ComputeChange(total, decimal.NewFromInt(20)).IsZero())
}

func TestPaymentMethod_IsValid(t *testing.T) {
	assert.True(t, PaymentMethodCash.IsValid())
	assert.True(t, PaymentMethod("Mobile Banking").IsValid())
	assert.False(t, PaymentMethod("Crypto").IsValid())
}

func TestSummarizeOrders(t *testing.T) {
	orders := []*Order{
		{ID: "1", Status: OrderStatusPending, Total: decimal.NewFromInt(10)},
		{ID: "2", Status: OrderStatusPreparing, Total: decimal.NewFromInt(20)},
		{ID: "3", Status: OrderStatusReady, Total: decimal.NewFromInt(30)},
		{ID: "4", Status: OrderStatusServed, Total: decimal.RequireFromString("5.5")},
		{ID: "5", Status: OrderStatusPending, Total: decimal.Zero},
		{ID: "6", Status: OrderStatusReady, Total: decimal.NewFromInt(1)},
	}

	stats, latest := SummarizeOrders(orders)

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.Preparing)
	assert.Equal(t, 2, stats.Ready)
	assert.Equal(t, 1, stats.Served)
	assert.Equal(t, 3, stats.InProgress)
	assert.Equal(t, "66.50", FormatAmount(stats.TotalAmount))
	require.Len(t, latest, 5)
	assert.Equal(t, "5", latest[4].ID)
}
