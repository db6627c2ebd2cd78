package main

import (
	"testing"
	"time"

	"waiter/internal/domain/entity"
	"waiter/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleOrder() *entity.Order {
	draft := entity.OrderDraft{
		TableNumber:  4,
		CustomerName: "Sam",
		Items: []entity.OrderItem{
			{Name: "Chicken Biryani", Quantity: 2, Price: decimal.RequireFromString("12.50")},
		},
	}
	order := draft.ToOrder()
	order.ID = "o-17"

	return order
}

func TestRenderOrders(t *testing.T) {
	out := renderOrders([]*entity.Order{sampleOrder()})

	assert.Contains(t, out, "o-17")
	assert.Contains(t, out, "Sam")
	assert.Contains(t, out, "26.25")
	assert.Contains(t, out, "Pending")

	assert.Contains(t, renderOrders(nil), "No orders found.")
}

func TestRenderBill(t *testing.T) {
	out := renderBill(sampleOrder())

	assert.Contains(t, out, "Bill for order #o-17 (Table 4)")
	assert.Contains(t, out, "Customer: Sam")
	assert.Contains(t, out, "25.00")
	assert.Contains(t, out, "1.25")
	assert.Contains(t, out, "26.25")
}

func TestRenderReceipt(t *testing.T) {
	out := renderReceipt(&entity.Receipt{
		Order:  sampleOrder(),
		Method: entity.PaymentMethodCash,
		Paid:   decimal.NewFromInt(30),
		Change: decimal.RequireFromString("3.75"),
	})

	assert.Contains(t, out, "Order #o-17 paid")
	assert.Contains(t, out, "Cash")
	assert.Contains(t, out, "30.00")
	assert.Contains(t, out, "3.75")
}

func TestRenderProfile(t *testing.T) {
	now := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)
	view := &usecase.ProfileView{
		Profile:     entity.Profile{Name: "Rina", CompletedOrdersCount: 12, AttendanceDates: []string{"2026-10-01", "2026-10-14"}},
		DisplayName: "Rina",
		Calendar:    entity.BuildMonthCalendar(now, []string{"2026-10-01", "2026-10-14"}),
	}

	out := renderProfile(view)

	assert.Contains(t, out, "Rina")
	assert.Contains(t, out, "Completed orders: 12")
	assert.Contains(t, out, "Days attended this month: 2")
	assert.Contains(t, out, "October 2026")
	assert.Contains(t, out, "31")
}

func TestRenderDashboard(t *testing.T) {
	order := sampleOrder()
	stats, latest := entity.SummarizeOrders([]*entity.Order{order})
	d := &entity.Dashboard{
		Waiter:       "Rina",
		Restaurant:   entity.RestaurantSettings{Name: "Spice Route"},
		Stats:        stats,
		LatestOrders: latest,
	}

	out := renderDashboard(d, entity.RoleWaiter, 120)

	assert.Contains(t, out, "Spice Route")
	assert.Contains(t, out, "Waiter")
	assert.Contains(t, out, "ready: 99+")
	assert.Contains(t, out, "Welcome back, Rina")
	assert.Contains(t, out, "o-17")

	assert.NotContains(t, renderDashboard(d, entity.RoleWaiter, 0), "ready:")
}
