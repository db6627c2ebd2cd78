package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"waiter/internal/delivery/api"
	"waiter/internal/poller"
	"waiter/internal/util"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newWatchCmd(dir configDirFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Poll for ready orders and print an alert when new ones appear",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := runOptions{extra: []fx.Option{fx.Invoke(poller.Lifecycle)}}

			return withApp(ctx, dir(), cmd.OutOrStdout(), opts, func(ctx context.Context, deps cliDeps) error {
				fmt.Fprintf(cmd.OutOrStdout(), "%s every %s, Ctrl+C to stop\n",
					titleStyle.Render("Watching ready orders"),
					util.FormatInterval(deps.Config.Poller.Interval),
				)
				<-ctx.Done()

				return nil
			})
		},
	}
}

// serveApp is the long-running shell: the API server plus the poller feeding it.
func serveApp(configDir string) fx.Option {
	return fx.Options(
		appOptions(configDir),
		api.Module,
		fx.Invoke(poller.Lifecycle, startServer),
	)
}

func newServeCmd(dir configDirFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the waiter shell as a local HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			app := fx.New(serveApp(dir()))
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()

			return nil
		},
	}
}
