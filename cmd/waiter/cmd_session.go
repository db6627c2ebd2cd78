package main

import (
	"context"
	"fmt"
	"strings"

	"waiter/internal/domain/entity"
	"waiter/internal/errors"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newLoginCmd(dir configDirFunc) *cobra.Command {
	var creds entity.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if creds.Email == "" || creds.Password == "" {
				if err := promptCredentials(&creds); err != nil {
					return err
				}
			}

			return runWith(cmd, dir, runOptions{public: true}, func(ctx context.Context, deps cliDeps) error {
				session, err := deps.Auth.Login(ctx, creds)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s %s\n", titleStyle.Render(session.NameOrDefault()), badgeStyle.Render(session.Role.Label()))

				return nil
			})
		},
	}
	cmd.Flags().StringVar(&creds.Email, "email", "", "account email")
	cmd.Flags().StringVar(&creds.Password, "password", "", "account password (prompted when omitted)")

	return cmd
}

// promptCredentials asks for whatever the flags did not provide.
func promptCredentials(creds *entity.Credentials) error {
	var fields []huh.Field
	if creds.Email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Value(&creds.Email).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("email is required")
				}

				return nil
			}))
	}
	if creds.Password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&creds.Password).
			Validate(func(s string) error {
				if s == "" {
					return errors.New("password is required")
				}

				return nil
			}))
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return errors.Wrap(err, "read credentials")
	}

	return nil
}

func newLogoutCmd(dir configDirFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWith(cmd, dir, runOptions{public: true}, func(ctx context.Context, deps cliDeps) error {
				if err := deps.Auth.Logout(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")

				return nil
			})
		},
	}
}

func newWhoamiCmd(dir configDirFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in waiter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, dir, func(ctx context.Context, deps cliDeps) error {
				name, err := deps.Auth.EnsureDisplayName(ctx)
				if err != nil {
					return err
				}
				session, err := deps.Auth.CurrentSession(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", titleStyle.Render(name), badgeStyle.Render(session.Role.Label()))

				return nil
			})
		},
	}
}
