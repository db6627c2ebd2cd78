package impl

import (
	"io"
	"log/slog"

	"waiter/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// toastMatching matches an action toast by title and variant.
func toastMatching(title string, variant entity.ToastVariant) any {
	return mock.MatchedBy(func(t entity.Toast) bool {
		return t.Title == title && t.Variant == variant && t.Kind == entity.ToastKindAction
	})
}

func toastWith(title, description string, variant entity.ToastVariant) any {
	return mock.MatchedBy(func(t entity.Toast) bool {
		return t.Title == title && t.Description == description && t.Variant == variant
	})
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
