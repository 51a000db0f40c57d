package main

import (
	"github.com/spf13/cobra"

	"github.com/maxjr82/gokrr/pkg/log"
)

func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gokrr",
		Short:         "Kernel ridge regression for potential-energy curves",
		Long:          `Fit a kernel ridge regression model to tabulated curve data and predict energies at new points.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level, _ := cmd.Flags().GetString("log-level")
			log.Setup(level)
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug|info|warn|error)")

	rootCmd.AddCommand(NewFitCmd())

	return rootCmd
}
