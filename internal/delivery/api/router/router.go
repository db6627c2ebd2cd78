// Package router wires the shell routes to their handlers.
package router

import (
	"waiter/config"
	"waiter/internal/delivery/api/middleware"
	"waiter/internal/delivery/api/router/handler"
	"waiter/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	DashboardHandler    *handler.DashboardHandler
	OrderHandler        *handler.OrderHandler
	BillingHandler      *handler.BillingHandler
	ProfileHandler      *handler.ProfileHandler
	NotificationHandler *handler.NotificationHandler
	GuardMiddleware     *middleware.GuardMiddleware
	Config              *config.Config
	Metrics             *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	dashboardHandler    *handler.DashboardHandler
	orderHandler        *handler.OrderHandler
	billingHandler      *handler.BillingHandler
	profileHandler      *handler.ProfileHandler
	notificationHandler *handler.NotificationHandler
	guardMiddleware     *middleware.GuardMiddleware
	config              *config.Config
	metrics             *metrics.Metrics
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		dashboardHandler:    params.DashboardHandler,
		orderHandler:        params.OrderHandler,
		billingHandler:      params.BillingHandler,
		profileHandler:      params.ProfileHandler,
		notificationHandler: params.NotificationHandler,
		guardMiddleware:     params.GuardMiddleware,
		config:              params.Config,
		metrics:             params.Metrics,
	}
}

// RegisterRoutes sets up the public routes and the guarded /waiter group.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/", r.authHandler.Home)

	if r.config.Metrics.Enabled && r.metrics != nil {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	e.POST(middleware.LoginPath, r.authHandler.Login)

	waiterGroup := e.Group("/waiter")
	waiterGroup.Use(r.guardMiddleware.Authenticate)
	{
		waiterGroup.POST("/logout", r.authHandler.Logout)
		waiterGroup.GET("/dashboard", r.dashboardHandler.Overview)
		waiterGroup.POST("/report-issue", r.dashboardHandler.ReportIssue)
	}

	ordersGroup := waiterGroup.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.PATCH("/:id/status", r.orderHandler.UpdateStatus)
	}

	billingGroup := waiterGroup.Group("/billing")
	{
		billingGroup.GET("/:id", r.billingHandler.GetBill)
		billingGroup.POST("/:id/pay", r.billingHandler.Pay)
	}

	waiterGroup.GET("/profile", r.profileHandler.GetProfile)
	attendanceGroup := waiterGroup.Group("/attendance")
	{
		attendanceGroup.POST("/mark-today", r.profileHandler.MarkAttendance)
		attendanceGroup.GET("/qr", r.profileHandler.StationQR)
	}

	notificationsGroup := waiterGroup.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.List)
		notificationsGroup.POST("/refresh", r.notificationHandler.Refresh)
		notificationsGroup.GET("/ws", r.notificationHandler.Stream)
	}
}
