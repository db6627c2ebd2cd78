package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"waiter/config"
	"waiter/internal/delivery/api/response"
	deliverycontext "waiter/internal/delivery/context"
	"waiter/internal/domain/entity"
	"waiter/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ProfileHandler serves the profile page and attendance.
type ProfileHandler struct {
	profileUC      usecase.ProfileUsecase
	defaultStation string
	logger         *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	var station string
	if params.Config.QRCode != nil {
		station = params.Config.QRCode.StationID
	}

	return &ProfileHandler{
		profileUC:      params.ProfileUC,
		defaultStation: station,
		logger:         params.Logger,
	}
}

// MarkAttendanceRequest carries the scanned station code, if any.
type MarkAttendanceRequest struct {
	QR string `json:"qr"`
}

// GetProfile returns the profile with this month's calendar.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	view, err := h.profileUC.GetProfile(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// MarkAttendance records today and answers with the updated profile. The
// current profile is reloaded first so existing dates are kept.
func (h *ProfileHandler) MarkAttendance(c echo.Context) error {
	var req MarkAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid attendance input")
	}

	ctx := c.Request().Context()
	var current *entity.Profile
	if view, err := h.profileUC.GetProfile(ctx); err != nil {
		deliverycontext.Logger(ctx, h.logger).Debug("profile unavailable before attendance", slog.Any("error", err))
	} else {
		current = &view.Profile
	}

	view, err := h.profileUC.MarkAttendance(ctx, current, req.QR)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// StationQR renders the attendance code of ?station=, or of the configured station.
func (h *ProfileHandler) StationQR(c echo.Context) error {
	station := strings.TrimSpace(c.QueryParam("station"))
	if station == "" {
		station = h.defaultStation
	}

	png, err := h.profileUC.StationQR(station)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
