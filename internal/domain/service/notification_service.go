package service

import (
	"context"
)

// PushService mirrors ready alerts to the waiter's registered devices
type PushService interface {
	// SendBatchNotification pushes to several device tokens.
	// Tokens the provider reports as invalid or unregistered are returned so they can be dropped.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification pushes to one device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
