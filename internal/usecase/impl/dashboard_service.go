package impl

import (
	"context"
	"log/slog"
	"strings"

	"waiter/internal/domain/entity"
	"waiter/internal/domain/repository"
	"waiter/internal/domain/service"
	"waiter/internal/usecase"

	"golang.org/x/sync/errgroup"
)

// Fallbacks used in issue reports when the session knows nothing.
const (
	unknownWaiterName = "Unknown"
	guestRole         = "guest"
)

type dashboardService struct {
	orders     service.OrderGateway
	restaurant service.RestaurantGateway
	sessions   repository.SessionReader
	errorReporter
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	orders service.OrderGateway,
	restaurant service.RestaurantGateway,
	sessions repository.SessionReader,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.DashboardUsecase {
	return &dashboardService{
		orders:        orders,
		restaurant:    restaurant,
		sessions:      sessions,
		errorReporter: errorReporter{notifier: notifier, logger: logger},
	}
}

// Overview fetches the floor's orders and the branding concurrently. Only an
// order failure fails the overview.
func (s *dashboardService) Overview(ctx context.Context) (*entity.Dashboard, error) {
	var (
		orders   []*entity.Order
		branding entity.RestaurantSettings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.orders.ListOrders(gctx, entity.DashboardStatuses)

		return err
	})
	g.Go(func() error {
		branding = s.Branding(gctx)

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, s.report(ctx, service.ErrorPolicySilent, failure{title: "failed to load dashboard"}, err)
	}

	session, err := s.sessions.Load(ctx)
	if err != nil {
		s.logger.Debug("session unavailable for dashboard", slog.Any("error", err))
	}

	stats, latest := entity.SummarizeOrders(orders)

	return &entity.Dashboard{
		Waiter:       session.NameOrDefault(),
		Restaurant:   branding,
		Stats:        stats,
		LatestOrders: latest,
	}, nil
}

func (s *dashboardService) Branding(ctx context.Context) entity.RestaurantSettings {
	settings, err := s.restaurant.GetSettings(ctx)
	if err != nil || settings == nil {
		if err != nil {
			s.logger.Debug("restaurant settings unavailable", slog.Any("error", err))
		}

		return entity.RestaurantSettings{}.WithDefaults()
	}

	return settings.WithDefaults()
}

// ReportIssue forwards a support request from screen to the restaurant admin.
func (s *dashboardService) ReportIssue(ctx context.Context, screen, message string) error {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		s.logger.Debug("session unavailable for issue report", slog.Any("error", err))
	}

	report := entity.IssueReport{
		RestaurantName: s.Branding(ctx).Name,
		WaiterName:     session.DisplayName,
		Role:           strings.ToLower(session.Role.String()),
		Context:        screen,
		Source:         entity.IssueSource,
		Message:        strings.TrimSpace(message),
	}
	if report.WaiterName == "" {
		report.WaiterName = unknownWaiterName
	}
	if report.Role == "" {
		report.Role = guestRole
	}
	if report.Message == "" {
		report.Message = entity.DefaultIssueMessage
	}

	if err := s.restaurant.ReportIssue(ctx, report); err != nil {
		return s.report(ctx, service.ErrorPolicySurface, reportIssueFailure, err)
	}

	s.success(ctx, "Issue reported", "Your report has been sent to the restaurant admin.")

	return nil
}
