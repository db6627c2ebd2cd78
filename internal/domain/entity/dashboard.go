package entity

import (
	"github.com/shopspring/decimal"
)

// latestOrdersLimit is how many orders the dashboard lists.
const latestOrdersLimit = 5

// DashboardStats summarizes the orders on the floor.
type DashboardStats struct {
	Total       int             `json:"total"`
	Pending     int             `json:"pending"`
	Preparing   int             `json:"preparing"`
	Ready       int             `json:"ready"`
	Served      int             `json:"served"`
	InProgress  int             `json:"inProgress"` // Pending plus preparing.
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// Dashboard is the waiter overview page.
type Dashboard struct {
	Waiter       string             `json:"waiter"`
	Restaurant   RestaurantSettings `json:"restaurant"`
	Stats        DashboardStats     `json:"stats"`
	LatestOrders []*Order           `json:"latestOrders"`
}

// SummarizeOrders counts orders by status and sums their totals.
func SummarizeOrders(orders []*Order) (DashboardStats, []*Order) {
	stats := DashboardStats{Total: len(orders), TotalAmount: decimal.Zero}
	for _, o := range orders {
		switch o.Status {
		case OrderStatusPending:
			stats.Pending++
		case OrderStatusPreparing:
			stats.Preparing++
		case OrderStatusReady:
			stats.Ready++
		case OrderStatusServed:
			stats.Served++
		}
		stats.TotalAmount = stats.TotalAmount.Add(o.Total)
	}
	stats.InProgress = stats.Pending + stats.Preparing

	latest := orders
	if len(latest) > latestOrdersLimit {
		latest = latest[:latestOrdersLimit]
	}

	return stats, latest
}
