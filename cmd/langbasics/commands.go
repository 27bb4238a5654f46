package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alem-hub/langbasics/config"
	"github.com/alem-hub/langbasics/internal/application/demo"
	"github.com/alem-hub/langbasics/pkg/logger"
)

func newRootCmd() (*cobra.Command, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	newRunner := func(cmd *cobra.Command) *demo.Runner {
		return demo.NewRunner(cmd.OutOrStdout(), logger.FromContext(cmd.Context()))
	}

	root := &cobra.Command{
		Use:          cfg.App.Name,
		Short:        "Console demonstrations: namespaces, functions, loops and an employee record",
		Version:      cfg.App.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts := cfg.LoggerOptions()
			opts.Output = cmd.ErrOrStderr()
			log := logger.New(opts).With(
				logger.String("app", cfg.App.Name),
				logger.String("env", string(cfg.App.Environment)),
			)
			cmd.SetContext(logger.WithContext(cmd.Context(), log))
			log.Info("starting", logger.String("version", cfg.App.Version), logger.String("command", cmd.Name()))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newRunner(cmd).Run(cmd.Context())
		},
	}

	for _, s := range demo.NewRunner(nil, nil).Sections() {
		name := s.Name
		root.AddCommand(&cobra.Command{
			Use:   name,
			Short: "Run the " + s.Description + " demonstration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return newRunner(cmd).RunSection(cmd.Context(), name)
			},
		})
	}

	root.AddCommand(&cobra.Command{
		Use:   "sections",
		Short: "List available demonstrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range newRunner(cmd).Sections() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", s.Name, s.Description); err != nil {
					return err
				}
			}
			return nil
		},
	})

	return root, nil
}
