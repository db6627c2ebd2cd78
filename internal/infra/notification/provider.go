package notification

import (
	"context"
	"io"
	"log/slog"
	"os"

	"waiter/config"
	"waiter/internal/domain/entity"
	"waiter/internal/domain/service"
	"waiter/internal/errors"
	"waiter/internal/infra/metrics"

	"go.uber.org/fx"
)

// Notification providers.
const (
	// ProviderConsole prints toasts and keeps them in the feed.
	ProviderConsole = "console"
	// ProviderFeed only keeps toasts in the feed for the shell.
	ProviderFeed = "feed"
	// ProviderNoop discards toasts.
	ProviderNoop = "noop"
)

// noopNotifier is used when notifications are switched off
type noopNotifier struct {
	logger *slog.Logger
}

func (n *noopNotifier) Notify(_ context.Context, toast entity.Toast) {
	n.logger.Debug("[NoopNotifier] Toast discarded", slog.String("title", toast.Title))
}

func (n *noopNotifier) Close() error {
	return nil
}

// fanout delivers each toast to every sink and counts it.
type fanout struct {
	sinks    []service.Notifier
	recorder interface{ ObserveToast(kind, variant string) }
}

func (f *fanout) Notify(ctx context.Context, toast entity.Toast) {
	if f.recorder != nil {
		f.recorder.ObserveToast(string(toast.Kind), string(toast.Variant))
	}
	for _, sink := range f.sinks {
		sink.Notify(ctx, toast)
	}
}

func (f *fanout) Close() error {
	var errs []error
	for _, sink := range f.sinks {
		if err := sink.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// FeedParams holds dependencies for the Feed, injected by Fx
type FeedParams struct {
	fx.In

	Config *config.Config
}

// NewFeedFromConfig creates the shared toast feed.
func NewFeedFromConfig(params FeedParams) *Feed {
	return NewFeed(params.Config.Notification.RecentLimit)
}

// NotifierParams holds dependencies for the Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Feed    *Feed
	Metrics *metrics.Metrics `optional:"true"`
	Logger  *slog.Logger
	// Output receives console toasts. Defaults to stdout.
	Output io.Writer `name:"toastOutput" optional:"true"`
}

// NewNotifier creates the Notifier based on configuration
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	logger := params.Logger
	provider := params.Config.Notification.Provider

	var sinks []service.Notifier
	switch provider {
	case "", ProviderConsole:
		out := params.Output
		if out == nil {
			out = os.Stdout
		}
		sinks = []service.Notifier{params.Feed, NewConsole(out)}
	case ProviderFeed:
		sinks = []service.Notifier{params.Feed}
	case ProviderNoop:
		logger.Info("Notifications disabled, using no-op notifier")
		sinks = []service.Notifier{&noopNotifier{logger: logger}}
	default:
		return nil, errors.Errorf("unknown notification provider: %s", provider)
	}

	notifier := &fanout{sinks: sinks}
	if params.Metrics != nil {
		notifier.recorder = params.Metrics
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Debug("Closing notifier")

			return notifier.Close()
		},
	})

	return notifier, nil
}

// PushParams holds dependencies for the PushService, injected by Fx
type PushParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService returns a Firebase push service, or nil when push is not configured.
func NewPushService(params PushParams) (service.PushService, error) {
	cfg := params.Config.Firebase
	if !cfg.Enabled() {
		params.Logger.Debug("Firebase push not configured")

		return nil, nil
	}

	params.Logger.Info("Mirroring ready alerts through Firebase",
		slog.Int("devices", len(cfg.DeviceTokens)),
	)

	return NewFirebaseService(params.Ctx, cfg.CredentialsPath)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewFeedFromConfig,
		NewNotifier,
		NewPushService,
		NewAlertDispatcher,
	),
)
