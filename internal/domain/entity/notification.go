package entity

import (
	"fmt"
	"strconv"
	"time"
)

// ReadyAlert is emitted when orders newly enter the alertable status.
// A single arrival names the order; simultaneous arrivals are reported as a count only.
type ReadyAlert struct {
	Count       int    `json:"count"`                 // Number of newly alertable orders, at least 1.
	OrderID     string `json:"orderId,omitempty"`     // Set only when Count is 1.
	TableNumber int    `json:"tableNumber,omitempty"` // Set only when Count is 1.
}

// Single reports whether the alert names one order.
func (a ReadyAlert) Single() bool {
	return a.Count == 1
}

// Toast renders the alert for the notification surface.
func (a ReadyAlert) Toast() Toast {
	if a.Single() {
		return Toast{
			Title:       "New order ready",
			Description: fmt.Sprintf("Order #%s is ready (Table %d).", a.OrderID, a.TableNumber),
			Variant:     ToastVariantDefault,
			Kind:        ToastKindReadyAlert,
		}
	}

	return Toast{
		Title:       "New ready orders",
		Description: fmt.Sprintf("%d orders are ready to serve.", a.Count),
		Variant:     ToastVariantDefault,
		Kind:        ToastKindReadyAlert,
	}
}

// ToastVariant selects the visual treatment of a toast.
type ToastVariant string

const (
	ToastVariantDefault     ToastVariant = "default"
	ToastVariantDestructive ToastVariant = "destructive"
)

// ToastKind tells sinks where a toast came from.
type ToastKind string

const (
	// ToastKindAction is feedback on a waiter-initiated action.
	ToastKindAction ToastKind = "action"
	// ToastKindReadyAlert is a background order-ready alert.
	ToastKindReadyAlert ToastKind = "ready_alert"
)

// Toast is an ephemeral message on the notification surface. It is never persisted.
type Toast struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Variant     ToastVariant `json:"variant"`
	Kind        ToastKind    `json:"kind"`
	At          time.Time    `json:"at"`
}

// BadgeLabel renders a ready-order count for the bell badge.
func BadgeLabel(count int) string {
	switch {
	case count <= 0:
		return ""
	case count > 99:
		return "99+"
	default:
		return strconv.Itoa(count)
	}
}
