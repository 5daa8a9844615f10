package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "malaria",
		Short:         "Malaria prevalence simulator",
		Long:          "malaria simulates malaria transmission between a human population and an aggregate mosquito population over a short horizon, and reports a sample trajectory and the projected infected mosquito series.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().String("scenario", "", "Scenario TOML file (default: $XDG_CONFIG_HOME/malaria/scenario.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log simulation progress to stderr")

	app, err := wireApp(rootCmd.PersistentFlags().Lookup("scenario"))
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if verbose {
			app.logLevel.Set(slog.LevelDebug)
		}
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newReplicateCmd(app),
		newScenarioCmd(app),
	)

	return rootCmd
}
