package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"waiter/internal/delivery/api/middleware"
	"waiter/internal/delivery/api/response"
	"waiter/internal/domain/entity"
	"waiter/internal/guard"
	"waiter/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardPath is where an admitted waiter lands.
const DashboardPath = "/waiter/dashboard"

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Guard  *guard.Guard
	Logger *slog.Logger
}

// AuthHandler serves login, logout and the home redirect.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	guard  middleware.SessionChecker
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return newAuthHandler(params.AuthUC, params.Guard, params.Logger)
}

func newAuthHandler(authUC usecase.AuthUsecase, checker middleware.SessionChecker, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		guard:  checker,
		logger: logger,
	}
}

// SessionResponse describes the signed-in waiter. The token never leaves the client.
type SessionResponse struct {
	DisplayName string `json:"displayName"`
	Role        string `json:"role,omitempty"`
	RoleLabel   string `json:"roleLabel"`
	Redirect    string `json:"redirect,omitempty"`
}

func newSessionResponse(session entity.Session, redirect string) SessionResponse {
	return SessionResponse{
		DisplayName: session.NameOrDefault(),
		Role:        session.Role.String(),
		RoleLabel:   session.Role.Label(),
		Redirect:    redirect,
	}
}

// Home sends the browser to the dashboard or to the login screen.
func (h *AuthHandler) Home(c echo.Context) error {
	decision, _, err := h.guard.Check(c.Request().Context())
	if err != nil {
		h.logger.Warn("route guard failed", slog.Any("error", err))
	}
	if decision == guard.Allow {
		return c.Redirect(http.StatusFound, DashboardPath)
	}

	return c.Redirect(http.StatusFound, middleware.LoginPath)
}

// Login exchanges credentials for a stored session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req entity.Credentials
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	session, err := h.authUC.Login(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSessionResponse(session, DashboardPath))
}

// Logout clears the stored session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUC.Logout(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"redirect": middleware.LoginPath})
}
