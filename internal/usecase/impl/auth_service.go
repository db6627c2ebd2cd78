package impl

import (
	"context"
	"log/slog"
	"strings"

	"waiter/internal/domain/entity"
	domainerrors "waiter/internal/domain/errors"
	"waiter/internal/domain/repository"
	"waiter/internal/domain/service"
	"waiter/internal/errors"
	"waiter/internal/usecase"
)

type authService struct {
	gateway  service.AuthGateway
	sessions repository.SessionRepository
	logger   *slog.Logger
	errorReporter
}

// NewAuthService creates a new auth service instance
func NewAuthService(gateway service.AuthGateway, sessions repository.SessionRepository, notifier service.Notifier, logger *slog.Logger) usecase.AuthUsecase {
	return &authService{
		gateway:       gateway,
		sessions:      sessions,
		logger:        logger,
		errorReporter: errorReporter{notifier: notifier, logger: logger},
	}
}

// Login exchanges credentials for a session and persists it. The role is
// stored as reported; the route guard decides whether it may enter.
func (s *authService) Login(ctx context.Context, creds entity.Credentials) (entity.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		err := domainerrors.ErrValidationFailed.WithDetails("email and password are required")

		return entity.Session{}, s.report(ctx, service.ErrorPolicySurface, loginFailure, err)
	}

	result, err := s.gateway.Login(ctx, creds)
	if err != nil {
		// The backend's own message, when it sent one, explains the rejection best.
		f := loginFailure
		if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
			f.description = appErr.Message()
		}

		return entity.Session{}, s.report(ctx, service.ErrorPolicySurface, f, err)
	}

	session := entity.Session{
		Token:       result.AccessToken,
		Role:        result.User.Role,
		DisplayName: result.User.Name,
	}
	if session.DisplayName == "" {
		session.DisplayName = entity.DefaultDisplayName
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return entity.Session{}, errors.Wrap(err, "failed to save session")
	}

	s.logger.Info("waiter signed in",
		slog.String("role", session.Role.String()),
		slog.Bool("token_present", true),
	)

	return session, nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	return nil
}

func (s *authService) CurrentSession(ctx context.Context) (entity.Session, error) {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		return entity.Session{}, errors.Wrap(err, "failed to load session")
	}

	return session, nil
}

// EnsureDisplayName returns the stored display name, asking the backend for
// one when none is stored. Backend failures fall back to the generic name.
func (s *authService) EnsureDisplayName(ctx context.Context) (string, error) {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		return entity.DefaultDisplayName, errors.Wrap(err, "failed to load session")
	}
	if session.DisplayName != "" {
		return session.DisplayName, nil
	}
	if !session.Authenticated() {
		return entity.DefaultDisplayName, nil
	}

	user, err := s.gateway.CurrentUser(ctx)
	if err != nil {
		s.logger.Debug("display name backfill failed", slog.Any("error", err))

		return entity.DefaultDisplayName, nil
	}

	if err := s.sessions.SaveDisplayName(ctx, user.Name); err != nil {
		s.logger.Debug("failed to store display name", slog.Any("error", err))
	}

	return user.Name, nil
}
