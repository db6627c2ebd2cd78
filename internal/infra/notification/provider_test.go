package notification

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"waiter/config"
	"waiter/internal/domain/entity"
	"waiter/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func notifierParams(t *testing.T, provider string, out io.Writer) (NotifierParams, *fxtest.Lifecycle) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Notification.Provider = provider
	cfg.Notification.RecentLimit = 10
	lc := fxtest.NewLifecycle(t)

	return NotifierParams{
		Lc:      lc,
		Config:  cfg,
		Feed:    NewFeed(cfg.Notification.RecentLimit),
		Metrics: metrics.New(),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Output:  out,
	}, lc
}

func TestNewNotifier_Console(t *testing.T) {
	var buf bytes.Buffer
	params, lc := notifierParams(t, ProviderConsole, &buf)

	notifier, err := NewNotifier(params)
	require.NoError(t, err)

	notifier.Notify(context.Background(), entity.Toast{Title: "Order Created Successfully", Kind: entity.ToastKindAction, Variant: entity.ToastVariantDefault})

	assert.Contains(t, buf.String(), "Order Created Successfully")
	require.Len(t, params.Feed.Recent(), 1)
	assert.InDelta(t, 1.0, testutil.ToFloat64(params.Metrics.ToastsTotal.WithLabelValues("action", "default")), 0)

	lc.RequireStart().RequireStop()
}

func TestNewNotifier_Feed(t *testing.T) {
	var buf bytes.Buffer
	params, lc := notifierParams(t, ProviderFeed, &buf)

	notifier, err := NewNotifier(params)
	require.NoError(t, err)

	notifier.Notify(context.Background(), entity.Toast{Title: "quiet"})

	assert.Empty(t, buf.String())
	assert.Len(t, params.Feed.Recent(), 1)

	lc.RequireStart().RequireStop()
}

func TestNewNotifier_Noop(t *testing.T) {
	params, lc := notifierParams(t, ProviderNoop, nil)

	notifier, err := NewNotifier(params)
	require.NoError(t, err)

	notifier.Notify(context.Background(), entity.Toast{Title: "dropped"})
	assert.Empty(t, params.Feed.Recent())

	lc.RequireStart().RequireStop()
}

func TestNewNotifier_Unknown(t *testing.T) {
	params, _ := notifierParams(t, "carrier-pigeon", nil)

	_, err := NewNotifier(params)
	assert.ErrorContains(t, err, "unknown notification provider")
}

func TestNewPushService_Disabled(t *testing.T) {
	cfg := &config.Config{Firebase: &config.FirebaseConfig{CredentialsPath: "creds.json"}}

	push, err := NewPushService(PushParams{
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.Nil(t, push)
}

func TestChunkTokens(t *testing.T) {
	assert.Nil(t, chunkTokens(nil, 500))

	tokens := make([]string, 1001)
	chunks := chunkTokens(tokens, 500)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 500)
	assert.Len(t, chunks[1], 500)
	assert.Len(t, chunks[2], 1)
}
