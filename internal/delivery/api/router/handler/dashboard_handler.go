package handler

import (
	"log/slog"
	"net/http"

	"waiter/internal/delivery/api/response"
	deliverycontext "waiter/internal/delivery/context"
	"waiter/internal/domain/entity"
	"waiter/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// defaultIssueContext names the screen when the client does not.
const defaultIssueContext = "dashboard"

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	AuthUC      usecase.AuthUsecase
	Logger      *slog.Logger
}

// DashboardHandler serves the overview and the shell chrome around it.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	authUC      usecase.AuthUsecase
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		authUC:      params.AuthUC,
		logger:      params.Logger,
	}
}

// DashboardResponse is the overview plus the header badge.
type DashboardResponse struct {
	*entity.Dashboard
	RoleLabel string `json:"roleLabel"`
}

// ReportIssueRequest represents the request body of the footer's report action
type ReportIssueRequest struct {
	Context string `json:"context"`
	Message string `json:"message" validate:"max=2000"`
}

// Overview backfills the display name, then loads the dashboard.
func (h *DashboardHandler) Overview(c echo.Context) error {
	ctx := c.Request().Context()
	if _, err := h.authUC.EnsureDisplayName(ctx); err != nil {
		deliverycontext.Logger(ctx, h.logger).Debug("display name backfill failed", slog.Any("error", err))
	}

	dashboard, err := h.dashboardUC.Overview(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session, _ := deliverycontext.Session(c)

	return response.Success(c, http.StatusOK, DashboardResponse{
		Dashboard: dashboard,
		RoleLabel: session.Role.Label(),
	})
}

// ReportIssue forwards a support request to the restaurant admin.
func (h *DashboardHandler) ReportIssue(c echo.Context) error {
	var req ReportIssueRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid issue report")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}
	if req.Context == "" {
		req.Context = defaultIssueContext
	}

	if err := h.dashboardUC.ReportIssue(c.Request().Context(), req.Context, req.Message); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"status": "reported"})
}
