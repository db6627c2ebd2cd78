package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"waiter/internal/domain/entity"
	"waiter/internal/errors"
	"waiter/internal/util"

	"github.com/spf13/cobra"
)

func newDashboardCmd(dir configDirFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show today's overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, dir, func(ctx context.Context, deps cliDeps) error {
				if _, err := deps.Auth.EnsureDisplayName(ctx); err != nil {
					deps.Logger.Debug("display name lookup failed", slog.Any("error", err))
				}
				session, err := deps.Auth.CurrentSession(ctx)
				if err != nil {
					return err
				}
				overview, err := deps.Dashboard.Overview(ctx)
				if err != nil {
					return errors.Wrap(err, "Failed to load the dashboard. Please try again.")
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderDashboard(overview, session.Role, deps.Poller.Count()))

				return nil
			})
		},
	}
}

func newProfileCmd(dir configDirFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show completed orders and this month's attendance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, dir, func(ctx context.Context, deps cliDeps) error {
				view, err := deps.Profile.GetProfile(ctx)
				if err != nil {
					return errors.Wrap(err, "Failed to load profile. Please try again.")
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderProfile(view))

				return nil
			})
		},
	}
}

func newAttendanceCmd(dir configDirFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Mark attendance and print station codes",
	}

	var payload string
	mark := &cobra.Command{
		Use:   "mark",
		Short: "Mark today as attended",
		Long:  "Mark today as attended. With --qr the scanned station code is checked first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, dir, func(ctx context.Context, deps cliDeps) error {
				// A failed load still lets the waiter mark; the backend merges anyway.
				view, err := deps.Profile.GetProfile(ctx)
				if err != nil {
					deps.Logger.Debug("profile load before attendance failed", slog.Any("error", err))
				}
				current := &entity.Profile{}
				if view != nil {
					current = &view.Profile
				}

				updated, err := deps.Profile.MarkAttendance(ctx, current, payload)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderProfile(updated))

				return nil
			})
		},
	}
	mark.Flags().StringVar(&payload, "qr", "", "decoded station QR payload")

	var station, out string
	qr := &cobra.Command{
		Use:   "qr",
		Short: "Write the attendance QR code of a station as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, dir, func(_ context.Context, deps cliDeps) error {
				id := strings.TrimSpace(station)
				if id == "" {
					id = deps.Config.QRCode.StationID
				}
				png, err := deps.Profile.StationQR(id)
				if err != nil {
					return err
				}
				if err := os.WriteFile(out, png, 0o644); err != nil { //nolint:gosec
					return errors.Wrapf(err, "write %s", out)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", out, util.FormatSize(int64(len(png))))

				return nil
			})
		},
	}
	qr.Flags().StringVar(&station, "station", "", "station identifier (default from qrcode.stationId)")
	qr.Flags().StringVar(&out, "out", "attendance.png", "output file")

	cmd.AddCommand(mark, qr)

	return cmd
}

func newReportIssueCmd(dir configDirFunc) *cobra.Command {
	var screen, message string

	cmd := &cobra.Command{
		Use:   "report-issue",
		Short: "Send a support request to the restaurant admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, dir, func(ctx context.Context, deps cliDeps) error {
				if err := deps.Dashboard.ReportIssue(ctx, screen, message); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Issue reported.")

				return nil
			})
		},
	}
	cmd.Flags().StringVar(&screen, "context", "cli", "where the problem happened")
	cmd.Flags().StringVarP(&message, "message", "m", "", "what went wrong")

	return cmd
}
