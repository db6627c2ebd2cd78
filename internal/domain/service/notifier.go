package service

import (
	"context"

	"waiter/internal/domain/entity"
)

// Notifier delivers toasts to the notification surface.
type Notifier interface {
	// Notify shows a toast. Delivery is best effort and never fails the caller.
	Notify(ctx context.Context, toast entity.Toast)

	// Close releases any resources held by the notifier
	Close() error
}

// AlertSink receives order-ready alerts from the poller.
type AlertSink interface {
	OnReadyAlert(ctx context.Context, alert entity.ReadyAlert)
}

// ErrorPolicy decides what a failed backend call does to the notification surface.
type ErrorPolicy int

const (
	// ErrorPolicySurface shows a destructive toast and returns the error.
	ErrorPolicySurface ErrorPolicy = iota
	// ErrorPolicySilent only logs the failure. Background work uses it.
	ErrorPolicySilent
)

// String returns the string representation of the ErrorPolicy.
func (p ErrorPolicy) String() string {
	if p == ErrorPolicySilent {
		return "silent"
	}

	return "surface"
}
