// Package api is the local waiter shell: an echo server exposing the
// console's screens as JSON routes behind the route guard.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"waiter/config"
	"waiter/internal/delivery"
	apimiddleware "waiter/internal/delivery/api/middleware"
	"waiter/internal/delivery/api/router"
	"waiter/internal/delivery/api/router/handler"
	"waiter/internal/delivery/api/validator"
	"waiter/internal/delivery/middleware"
	"waiter/internal/domain/lifecycle"
	"waiter/internal/errors"
	"waiter/internal/guard"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewEcho builds the shell's echo instance with middlewares, error handler
// and routes. It has no lifecycle of its own.
func NewEcho(cfg *config.Config, logger *slog.Logger, params router.RouterParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Recover first, request id before the logger so access lines carry it.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params).RegisterRoutes(e)

	return e
}

// NewServer creates the shell server and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: NewEcho(params.Cfg, params.Logger, params.RouterParams),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort(s.cfg.HTTP.Host, strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting waiter shell", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down waiter shell")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

// MiddlewareParams holds dependencies of the shell middlewares.
type MiddlewareParams struct {
	fx.In

	Guard  *guard.Guard
	Logger *slog.Logger
}

func newGuardMiddleware(params MiddlewareParams) *apimiddleware.GuardMiddleware {
	return apimiddleware.NewGuardMiddleware(params.Guard, params.Logger)
}

// Module provides the shell server, its handlers and middlewares.
var Module = fx.Options( //nolint:gochecknoglobals
	fx.Provide(
		newGuardMiddleware,
		handler.NewAuthHandler,
		handler.NewDashboardHandler,
		handler.NewOrderHandler,
		handler.NewBillingHandler,
		handler.NewProfileHandler,
		handler.NewNotificationHandler,
		fx.Annotate(
			NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	),
)
