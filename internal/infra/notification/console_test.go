package notification

import (
	"bytes"
	"context"
	"testing"

	"waiter/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestConsole_Notify(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	console.Notify(context.Background(), entity.Toast{
		Title:       "Payment Successful",
		Description: "Change: 3.75",
		Variant:     entity.ToastVariantDefault,
		Kind:        entity.ToastKindAction,
	})
	console.Notify(context.Background(), entity.ReadyAlert{Count: 3}.Toast())

	out := buf.String()
	assert.Contains(t, out, "Payment Successful")
	assert.Contains(t, out, "Change: 3.75")
	assert.Contains(t, out, "3 orders are ready to serve.")
	assert.NoError(t, console.Close())
}

func TestRenderToast_WithoutDescription(t *testing.T) {
	out := RenderToast(entity.Toast{Title: "Attendance marked"})

	assert.Contains(t, out, "Attendance marked")
	assert.NotContains(t, out, "\n")
}
