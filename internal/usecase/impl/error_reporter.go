package impl

import (
	"context"
	"log/slog"

	deliverycontext "waiter/internal/delivery/context"
	"waiter/internal/domain/entity"
	domainerrors "waiter/internal/domain/errors"
	"waiter/internal/domain/service"
	"waiter/internal/errors"
)

// failure is the destructive toast shown when an action fails on the backend.
type failure struct {
	title       string
	description string
}

var (
	loginFailure        = failure{"Login failed", "Please check your email and password."}
	createOrderFailure  = failure{"Failed to create order", "Please try again."}
	updateStatusFailure = failure{"Failed to update status", "Please try again."}
	paymentFailure      = failure{"Payment Failed", "Something went wrong while processing the payment."}
	attendanceFailure   = failure{"Failed to mark attendance", "Please try again."}
	reportIssueFailure  = failure{"Failed to report issue", "Please try again later."}
)

// errorReporter applies an error policy to a failed call. Validation errors
// speak for themselves; anything else is shown with the action's fixed copy.
type errorReporter struct {
	notifier service.Notifier
	logger   *slog.Logger
}

func (r errorReporter) report(ctx context.Context, policy service.ErrorPolicy, f failure, err error) error {
	logger := deliverycontext.Logger(ctx, r.logger)

	if policy == service.ErrorPolicySilent {
		logger.Debug(f.title, slog.Any("error", err))

		return err
	}

	toast := entity.Toast{
		Title:       f.title,
		Description: f.description,
		Variant:     entity.ToastVariantDestructive,
		Kind:        entity.ToastKindAction,
	}
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.Kind() == domainerrors.KindValidation {
		toast.Title = appErr.Message()
		toast.Description = appErr.Details()
	}

	logger.Warn(f.title, slog.Any("error", err))
	r.notifier.Notify(ctx, toast)

	return err
}

func (r errorReporter) success(ctx context.Context, title, description string) {
	r.notifier.Notify(ctx, entity.Toast{
		Title:       title,
		Description: description,
		Variant:     entity.ToastVariantDefault,
		Kind:        entity.ToastKindAction,
	})
}
