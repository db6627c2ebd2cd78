package main

import (
	"context"

	"github.com/spf13/cobra"
)

// configDirFunc reads the --config-dir flag after cobra has parsed it.
type configDirFunc func() string

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           "waiter",
		Short:         "Waiter console for the restaurant backend",
		Long:          "Take orders, watch for ready ones, settle bills and mark attendance from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configDir, "config-dir", "", "extra directory searched for config.yaml")

	dir := configDirFunc(func() string { return configDir })

	root.AddCommand(
		newLoginCmd(dir),
		newLogoutCmd(dir),
		newWhoamiCmd(dir),
		newDashboardCmd(dir),
		newOrdersCmd(dir),
		newBillCmd(dir),
		newProfileCmd(dir),
		newAttendanceCmd(dir),
		newReportIssueCmd(dir),
		newWatchCmd(dir),
		newServeCmd(dir),
	)

	return root
}

// run executes fn inside a started application behind the route guard.
func run(cmd *cobra.Command, dir configDirFunc, fn func(context.Context, cliDeps) error) error {
	return runWith(cmd, dir, runOptions{}, fn)
}

func runWith(cmd *cobra.Command, dir configDirFunc, opts runOptions, fn func(context.Context, cliDeps) error) error {
	return withApp(cmd.Context(), dir(), cmd.OutOrStdout(), opts, fn)
}
