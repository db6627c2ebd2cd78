package usecase

import (
	"context"

	"waiter/internal/domain/entity"
)

// ProfileUsecase defines the interface for the waiter's profile and attendance.
type ProfileUsecase interface {
	GetProfile(ctx context.Context) (*ProfileView, error)
	// MarkAttendance records today's attendance. qrPayload is empty unless a station code was scanned.
	MarkAttendance(ctx context.Context, current *entity.Profile, qrPayload string) (*ProfileView, error)
	StationQR(stationID string) ([]byte, error)
}

// ProfileView is a profile with its display name resolved and this month's calendar.
type ProfileView struct {
	Profile     entity.Profile       `json:"profile"`
	DisplayName string               `json:"displayName"`
	Calendar    entity.MonthCalendar `json:"calendar"`
}
