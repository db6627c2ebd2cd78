package notification

import (
	"context"
	"io"
	"sync"

	"waiter/internal/domain/entity"

	"github.com/charmbracelet/lipgloss"
)

var (
	toastTitleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	toastDestructiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	toastAlertStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	toastBodyStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	toastBoxStyle         = lipgloss.NewStyle().PaddingLeft(1).BorderStyle(lipgloss.NormalBorder()).BorderLeft(true)
)

// RenderToast formats a toast for a terminal.
func RenderToast(toast entity.Toast) string {
	title := toastTitleStyle
	switch {
	case toast.Variant == entity.ToastVariantDestructive:
		title = toastDestructiveStyle
	case toast.Kind == entity.ToastKindReadyAlert:
		title = toastAlertStyle
	}

	content := title.Render(toast.Title)
	if toast.Description != "" {
		content += "\n" + toastBodyStyle.Render(toast.Description)
	}

	return toastBoxStyle.Render(content)
}

// Console prints toasts to a writer, one block per toast.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsole creates a console notifier writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Notify(_ context.Context, toast entity.Toast) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, _ = io.WriteString(c.out, RenderToast(toast)+"\n")
}

func (c *Console) Close() error {
	return nil
}
