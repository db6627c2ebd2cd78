package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"waiter/config"
	"waiter/internal/delivery"
	"waiter/internal/domain/lifecycle"
	"waiter/internal/domain/repository"
	"waiter/internal/domain/service"
	"waiter/internal/errors"
	"waiter/internal/guard"
	"waiter/internal/infra/gateway"
	logs "waiter/internal/infra/log"
	"waiter/internal/infra/metrics"
	"waiter/internal/infra/notification"
	"waiter/internal/infra/persistence/badger"
	"waiter/internal/infra/qrcode"
	"waiter/internal/poller"
	"waiter/internal/usecase"
	"waiter/internal/usecase/impl"

	"go.uber.org/fx"
)

// appOptions is the object graph shared by every command and the shell.
func appOptions(configDir string) fx.Option {
	return fx.Options(
		injectInfra(configDir),
		injectRepo(),
		injectService(),
		injectUsecase(),
		poller.Module,
	)
}

func injectInfra(configDir string) fx.Option {
	return fx.Provide(
		func() (*config.Config, error) {
			if configDir == "" {
				return config.New()
			}

			return config.Load(configDir)
		},
		logs.New,
		context.Background,
		metrics.New,
		badger.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			badger.NewSessionRepository,
			func(sessions repository.SessionRepository) repository.SessionReader { return sessions },
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				gateway.New,
				fx.As(new(service.AuthGateway)),
				fx.As(new(service.OrderGateway)),
				fx.As(new(service.WaiterGateway)),
				fx.As(new(service.RestaurantGateway)),
			),
			qrcode.New,
			guard.New,
		),
		notification.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewOrderService,
			impl.NewBillingService,
			impl.NewProfileService,
			impl.NewDashboardService,
		),
	)
}

// cliOutput sends logs to stderr and toasts to out, keeping rendered output clean.
func cliOutput(out io.Writer) fx.Option {
	return fx.Provide(
		fx.Annotated{Name: "logOutput", Target: func() io.Writer { return os.Stderr }},
		fx.Annotated{Name: "toastOutput", Target: func() io.Writer { return out }},
	)
}

// cliDeps is what a command body can use.
type cliDeps struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Guard     *guard.Guard
	Auth      usecase.AuthUsecase
	Orders    usecase.OrderUsecase
	Billing   usecase.BillingUsecase
	Profile   usecase.ProfileUsecase
	Dashboard usecase.DashboardUsecase
	Poller    *poller.Poller
	Feed      *notification.Feed
}

// runOptions tune one command invocation.
type runOptions struct {
	// public skips the route guard.
	public bool
	// extra options, e.g. the poller lifecycle for watch.
	extra []fx.Option
}

// errNotSignedIn is returned when the guard turns a command away.
var errNotSignedIn = errors.New("not signed in, run `waiter login` first")

// withApp starts the graph, runs the guard unless the command is public,
// calls fn, and stops the graph again.
func withApp(ctx context.Context, configDir string, out io.Writer, opts runOptions, fn func(context.Context, cliDeps) error) error {
	var deps cliDeps
	app := fx.New(
		appOptions(configDir),
		cliOutput(out),
		fx.Options(opts.extra...),
		fx.NopLogger,
		fx.Invoke(func(d cliDeps) { deps = d }),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start application")
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			deps.Logger.Warn("application stop failed", slog.Any("error", err))
		}
	}()

	if !opts.public {
		decision, _, err := deps.Guard.Check(ctx)
		if err != nil {
			deps.Logger.Warn("route guard failed", slog.Any("error", err))
		}
		if decision != guard.Allow {
			return errNotSignedIn
		}
	}

	return fn(ctx, deps)
}

type startServerParams struct {
	fx.In

	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				params.Logger.Error("Failed to start server", slog.Any("error", err))
				_ = params.Shutdowner.Shutdown(fx.ExitCode(1))
			}
		}()
	}
}
