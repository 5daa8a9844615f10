package cmd

import (
	"errors"
	"fmt"
	"os"

	tomlrepo "github.com/bnema/malaria-prevalence/internal/adapters/repo/toml"
	"github.com/bnema/malaria-prevalence/internal/domain"
	"github.com/spf13/cobra"
)

var errScenarioExists = errors.New("scenario file already exists")

func newScenarioCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Manage the scenario file",
	}

	cmd.AddCommand(
		newScenarioShowCmd(app),
		newScenarioInitCmd(app),
	)

	return cmd
}

func newScenarioShowCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective scenario as TOML",
		Args:  cobra.NoArgs,
	}
	overrides := newScenarioOverrides(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		scenario, err := app.loadScenario(cmd.Context(), overrides)
		if err != nil {
			return err
		}

		data, err := tomlrepo.EncodeScenario(scenario)
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	return cmd
}

func newScenarioInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default scenario file",
		Args:  cobra.NoArgs,
	}
	overrides := newScenarioOverrides(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		path, err := app.scenarioPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s: %w (use --force to overwrite)", path, errScenarioExists)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat scenario file: %w", err)
		}

		scenario := domain.DefaultScenario()
		overrides.apply(&scenario)
		if err := app.scenarios.Save(cmd.Context(), scenario); err != nil {
			return fmt.Errorf("save scenario: %w", err)
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return err
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing scenario file")

	return cmd
}
