package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"restaurant_scout/internal/adapters/observability"
	"restaurant_scout/internal/bootstrap"
	"restaurant_scout/internal/shared"
)

type rootState struct {
	cfg     shared.Config
	verbose bool
}

func newRootCmd() *cobra.Command {
	st := &rootState{}
	cmd := &cobra.Command{
		Use:           "scraper",
		Short:         "Find well-rated restaurants by district, food type or name",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			st.cfg = shared.Load()
			level := "info"
			if st.verbose {
				level = "debug"
			}
			// stdout carries results; logs go to stderr in console form
			log.Logger = observability.NewLoggerTo(os.Stderr, "dev", level)
		},
	}
	cmd.PersistentFlags().BoolVarP(&st.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newSearchCmd(st), newBatchCmd(st), newShowCmd(st))
	return cmd
}

func (st *rootState) deps(cmd *cobra.Command) *bootstrap.Deps {
	return bootstrap.Build(cmd.Context(), st.cfg)
}
