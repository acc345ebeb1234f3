// Command tooling runs maintenance tasks against the crudkit database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/jrazmi/crudkit/app/crudkit/config"
	"github.com/jrazmi/crudkit/app/tooling/commands"
	"github.com/jrazmi/crudkit/sdk/environment"
	"github.com/jrazmi/crudkit/sdk/logger"
	"github.com/spf13/cobra"
)

var build = "develop"
var appName = "CRUDKIT"

func main() {
	if err := environment.LoadPath(""); err != nil {
		fmt.Fprintln(os.Stderr, "startup:", err)
		os.Exit(1)
	}

	log, err := logger.NewFromEnv(appName, logger.WithService("tooling"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "startup:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(log, appName).ExecuteContext(ctx); err != nil {
		log.ErrorContext(ctx, "tooling", "err", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(log *logger.Logger, prefix string) *cobra.Command {
	root := &cobra.Command{
		Use:           "tooling",
		Short:         "Maintain the crudkit database",
		Long:          "tooling applies and reports schema migrations and seeds starter data for the store selected by " + prefix + "_STORE.",
		Version:       build,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(prefix)
			if err != nil {
				return err
			}
			if err := commands.Migrate(cmd.Context(), log, prefix, settings); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:     "migrations",
		Aliases: []string{"status"},
		Short:   "Show which schema migrations are applied",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(prefix)
			if err != nil {
				return err
			}
			report, err := commands.Status(cmd.Context(), log, prefix, settings)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT")
			for _, st := range report {
				at := "-"
				if st.AppliedAt != nil {
					at = st.AppliedAt.UTC().Format("2006-01-02 15:04:05")
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", st.Version, st.State, at)
			}
			return tw.Flush()
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Insert the starter todos into an empty store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(prefix)
			if err != nil {
				return err
			}
			n, err := commands.Seed(cmd.Context(), log, prefix, settings)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d todos\n", n)
			return nil
		},
	})

	return root
}
