package impl

import (
	"context"
	"testing"
	"time"

	"waiter/internal/domain/entity"
	domainerrors "waiter/internal/domain/errors"
	"waiter/internal/errors"
	mockRepo "waiter/internal/mocks/repository"
	mockSvc "waiter/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var profileNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

type profileServiceFixtures struct {
	service  *profileService
	gateway  *mockSvc.MockWaiterGateway
	sessions *mockRepo.MockSessionRepository
	qrcodes  *mockSvc.MockQRCodeService
	notifier *mockSvc.MockNotifier
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	gateway := mockSvc.NewMockWaiterGateway(t)
	sessions := mockRepo.NewMockSessionRepository(t)
	qrcodes := mockSvc.NewMockQRCodeService(t)
	notifier := mockSvc.NewMockNotifier(t)

	svc, ok := NewProfileService(gateway, sessions, qrcodes, notifier, newDiscardLogger()).(*profileService)
	require.True(t, ok)
	svc.now = func() time.Time { return profileNow }

	return profileServiceFixtures{
		service:  svc,
		gateway:  gateway,
		sessions: sessions,
		qrcodes:  qrcodes,
		notifier: notifier,
	}
}

func TestProfileService_GetProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().GetProfile(ctx).Return(&entity.Profile{
		Name:                 "Nadia",
		CompletedOrdersCount: 42,
		AttendanceDates:      []string{"2026-10-01", "2026-10-14", "not-a-date"},
	}, nil)

	view, err := fx.service.GetProfile(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Nadia", view.DisplayName)
	assert.Equal(t, 2026, view.Calendar.Year)
	assert.Equal(t, time.October, view.Calendar.Month)

	var attended, today []int
	for _, week := range view.Calendar.Weeks {
		for _, day := range week {
			if day == nil {
				continue
			}
			if day.Attended {
				attended = append(attended, day.Day)
			}
			if day.IsToday {
				today = append(today, day.Day)
			}
		}
	}
	assert.Equal(t, []int{1, 14}, attended)
	assert.Equal(t, []int{14}, today)
}

func TestProfileService_GetProfile_DisplayNameFallbacks(t *testing.T) {
	t.Run("session name", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()
		fx.gateway.EXPECT().GetProfile(ctx).Return(&entity.Profile{}, nil)
		fx.sessions.EXPECT().Load(ctx).Return(entity.Session{Token: "tok", DisplayName: "Nadia R."}, nil)

		view, err := fx.service.GetProfile(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Nadia R.", view.DisplayName)
	})

	t.Run("generic name", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()
		fx.gateway.EXPECT().GetProfile(ctx).Return(&entity.Profile{}, nil)
		fx.sessions.EXPECT().Load(ctx).Return(entity.Session{}, errors.New("store closed"))

		view, err := fx.service.GetProfile(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Waiter", view.DisplayName)
	})
}

func TestProfileService_MarkAttendance_MergesToday(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	current := &entity.Profile{Name: "Nadia", AttendanceDates: []string{"2026-10-13"}}

	fx.gateway.EXPECT().MarkAttendanceToday(ctx, "").Return(nil).Once()
	fx.notifier.EXPECT().Notify(ctx, toastMatching("Attendance marked", entity.ToastVariantDefault)).Once()

	view, err := fx.service.MarkAttendance(ctx, current, "")

	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-13", "2026-10-14"}, view.Profile.AttendanceDates)
	assert.Equal(t, []string{"2026-10-13"}, current.AttendanceDates)
}

func TestProfileService_MarkAttendance_Idempotent(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	current := &entity.Profile{Name: "Nadia", AttendanceDates: []string{"2026-10-14"}}

	fx.gateway.EXPECT().MarkAttendanceToday(ctx, "").Return(nil).Twice()
	fx.notifier.EXPECT().Notify(ctx, mock.Anything).Twice()

	first, err := fx.service.MarkAttendance(ctx, current, "")
	require.NoError(t, err)
	second, err := fx.service.MarkAttendance(ctx, &first.Profile, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-10-14"}, second.Profile.AttendanceDates)
}

func TestProfileService_MarkAttendance_WithStationCode(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	payload := `{"type":"attendance","station_id":"front-desk"}`

	fx.qrcodes.EXPECT().ParseStationQR(payload).Return("front-desk", nil)
	fx.gateway.EXPECT().MarkAttendanceToday(ctx, "front-desk").Return(nil).Once()
	fx.notifier.EXPECT().Notify(ctx, mock.Anything).Once()

	_, err := fx.service.MarkAttendance(ctx, &entity.Profile{Name: "Nadia"}, payload)

	require.NoError(t, err)
}

func TestProfileService_MarkAttendance_BadStationCode(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.qrcodes.EXPECT().ParseStationQR("garbage").Return("", domainerrors.ErrInvalidQRCode.WithDetails("payload is not JSON"))
	fx.notifier.EXPECT().Notify(ctx, toastMatching("Scanned code is not an attendance code", entity.ToastVariantDestructive)).Once()

	_, err := fx.service.MarkAttendance(ctx, &entity.Profile{}, "garbage")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidQRCode)
	fx.gateway.AssertNotCalled(t, "MarkAttendanceToday", mock.Anything, mock.Anything)
}

func TestProfileService_MarkAttendance_BackendFailureKeepsProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	current := &entity.Profile{AttendanceDates: []string{"2026-10-13"}}

	fx.gateway.EXPECT().MarkAttendanceToday(ctx, "").Return(domainerrors.NewNetworkError(nil, 500, "", "/waiter/attendance/mark-today"))
	fx.notifier.EXPECT().Notify(ctx, toastWith("Failed to mark attendance", "Please try again.", entity.ToastVariantDestructive)).Once()

	view, err := fx.service.MarkAttendance(ctx, current, "")

	assert.Error(t, err)
	assert.Nil(t, view)
	assert.Equal(t, []string{"2026-10-13"}, current.AttendanceDates)
}

func TestProfileService_StationQR(t *testing.T) {
	fx := createTestProfileService(t)
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.qrcodes.EXPECT().GenerateStationQR("front-desk").Return(png, nil)

	got, err := fx.service.StationQR("front-desk")
	require.NoError(t, err)
	assert.Equal(t, png, got)
}
