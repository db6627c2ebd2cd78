package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"waiter/internal/domain/entity"
	"waiter/internal/domain/repository"
	"waiter/internal/domain/service"
	"waiter/internal/usecase"
)

type profileService struct {
	gateway  service.WaiterGateway
	sessions repository.SessionReader
	qrcodes  service.QRCodeService
	now      func() time.Time
	errorReporter
}

// NewProfileService creates a new profile service instance
func NewProfileService(
	gateway service.WaiterGateway,
	sessions repository.SessionReader,
	qrcodes service.QRCodeService,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		gateway:       gateway,
		sessions:      sessions,
		qrcodes:       qrcodes,
		now:           time.Now,
		errorReporter: errorReporter{notifier: notifier, logger: logger},
	}
}

func (s *profileService) GetProfile(ctx context.Context) (*usecase.ProfileView, error) {
	profile, err := s.gateway.GetProfile(ctx)
	if err != nil {
		return nil, s.report(ctx, service.ErrorPolicySilent, failure{title: "failed to load profile"}, err)
	}

	return s.view(ctx, *profile), nil
}

// MarkAttendance records today's attendance. A scanned payload must be a
// station code; it is checked before the request goes out.
func (s *profileService) MarkAttendance(ctx context.Context, current *entity.Profile, qrPayload string) (*usecase.ProfileView, error) {
	var stationID string
	if strings.TrimSpace(qrPayload) != "" {
		id, err := s.qrcodes.ParseStationQR(qrPayload)
		if err != nil {
			return nil, s.report(ctx, service.ErrorPolicySurface, attendanceFailure, err)
		}
		stationID = id
	}

	if err := s.gateway.MarkAttendanceToday(ctx, stationID); err != nil {
		return nil, s.report(ctx, service.ErrorPolicySurface, attendanceFailure, err)
	}

	var profile entity.Profile
	if current != nil {
		profile = *current
	}
	profile = profile.WithAttendance(entity.ISODate(s.now()))

	s.success(ctx, "Attendance marked", "Today's attendance has been recorded.")

	return s.view(ctx, profile), nil
}

func (s *profileService) StationQR(stationID string) ([]byte, error) {
	return s.qrcodes.GenerateStationQR(stationID)
}

// view resolves the display name: profile name, then the session's, then the generic one.
func (s *profileService) view(ctx context.Context, profile entity.Profile) *usecase.ProfileView {
	name := profile.Name
	if name == "" {
		session, err := s.sessions.Load(ctx)
		if err != nil {
			s.logger.Debug("session unavailable for display name", slog.Any("error", err))
		}
		name = session.NameOrDefault()
	}

	return &usecase.ProfileView{
		Profile:     profile,
		DisplayName: name,
		Calendar:    entity.BuildMonthCalendar(s.now(), profile.AttendanceDates),
	}
}
