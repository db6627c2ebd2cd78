package main

import (
	"fmt"
	"strconv"
	"strings"

	"waiter/internal/domain/entity"
	"waiter/internal/usecase"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)

	attendedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	todayStyle    = lipgloss.NewStyle().Underline(true)

	statusColors = map[entity.OrderStatus]lipgloss.Color{
		entity.OrderStatusPending:   lipgloss.Color("214"),
		entity.OrderStatusPreparing: lipgloss.Color("39"),
		entity.OrderStatusReady:     lipgloss.Color("42"),
		entity.OrderStatusServed:    lipgloss.Color("141"),
		entity.OrderStatusPaid:      lipgloss.Color("241"),
	}
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})
}

func renderOrders(orders []*entity.Order) string {
	if len(orders) == 0 {
		return mutedStyle.Render("No orders found.")
	}

	t := newTable("Order", "Table", "Customer", "Items", "Total", "Status")
	for _, o := range orders {
		t.Row(o.ID, strconv.Itoa(o.TableNumber), o.CustomerName, strconv.Itoa(len(o.Items)), entity.FormatAmount(o.Total), o.Status.String())
	}

	statusCol := 5
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if col == statusCol && row >= 0 && row < len(orders) {
			if color, ok := statusColors[orders[row].Status]; ok {
				return cellStyle.Foreground(color)
			}
		}

		return cellStyle
	})

	return t.String()
}

func renderBill(order *entity.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(fmt.Sprintf("Bill for order #%s (Table %d)", order.ID, order.TableNumber)))
	if order.CustomerName != "" {
		fmt.Fprintf(&b, "%s\n", mutedStyle.Render("Customer: "+order.CustomerName))
	}

	t := newTable("Item", "Qty", "Price", "Line total")
	for _, item := range order.Items {
		t.Row(item.Name, strconv.Itoa(item.Quantity), entity.FormatAmount(item.Price), entity.FormatAmount(item.LineTotal()))
	}
	b.WriteString(t.String())
	b.WriteString("\n")

	fmt.Fprintf(&b, "Subtotal: %s\n", entity.FormatAmount(order.Subtotal))
	fmt.Fprintf(&b, "VAT:      %s\n", entity.FormatAmount(order.VAT))
	fmt.Fprintf(&b, "Total:    %s\n", titleStyle.Render(entity.FormatAmount(order.Total)))
	fmt.Fprintf(&b, "Status:   %s", order.Status)

	return b.String()
}

func renderReceipt(receipt *entity.Receipt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(fmt.Sprintf("Order #%s paid", receipt.Order.ID)))
	fmt.Fprintf(&b, "Method: %s\n", receipt.Method)
	fmt.Fprintf(&b, "Total:  %s\n", entity.FormatAmount(receipt.Order.Total))
	fmt.Fprintf(&b, "Paid:   %s\n", entity.FormatAmount(receipt.Paid))
	fmt.Fprintf(&b, "Change: %s", entity.FormatAmount(receipt.Change))

	return b.String()
}

func renderCalendar(cal entity.MonthCalendar) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(fmt.Sprintf("%s %d", cal.Month, cal.Year)))
	b.WriteString(mutedStyle.Render("Su Mo Tu We Th Fr Sa"))
	for _, week := range cal.Weeks {
		b.WriteString("\n")
		cells := make([]string, 0, len(week))
		for _, day := range week {
			if day == nil {
				cells = append(cells, "  ")

				continue
			}
			cell := fmt.Sprintf("%2d", day.Day)
			if day.Attended {
				cell = attendedStyle.Render(cell)
			}
			if day.IsToday {
				cell = todayStyle.Render(cell)
			}
			cells = append(cells, cell)
		}
		b.WriteString(strings.Join(cells, " "))
	}

	return b.String()
}

func renderProfile(view *usecase.ProfileView) string {
	attended := 0
	for _, week := range view.Calendar.Weeks {
		for _, day := range week {
			if day != nil && day.Attended {
				attended++
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(view.DisplayName))
	fmt.Fprintf(&b, "Completed orders: %d\n", view.Profile.CompletedOrdersCount)
	fmt.Fprintf(&b, "Days attended this month: %d\n\n", attended)
	b.WriteString(renderCalendar(view.Calendar))

	return b.String()
}

func renderDashboard(d *entity.Dashboard, role entity.Role, readyCount int) string {
	var b strings.Builder
	header := titleStyle.Render(d.Restaurant.Name) + "  " + badgeStyle.Render(role.Label())
	if label := entity.BadgeLabel(readyCount); label != "" {
		header += "  " + mutedStyle.Render("ready: "+label)
	}
	fmt.Fprintf(&b, "%s\n", header)
	fmt.Fprintf(&b, "Welcome back, %s\n\n", d.Waiter)

	stats := newTable("Total", "Pending", "In progress", "Ready", "Served", "Order value")
	stats.Row(
		strconv.Itoa(d.Stats.Total),
		strconv.Itoa(d.Stats.Pending),
		strconv.Itoa(d.Stats.InProgress),
		strconv.Itoa(d.Stats.Ready),
		strconv.Itoa(d.Stats.Served),
		entity.FormatAmount(d.Stats.TotalAmount),
	)
	b.WriteString(stats.String())
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Latest orders"))
	b.WriteString("\n")
	b.WriteString(renderOrders(d.LatestOrders))

	return b.String()
}
