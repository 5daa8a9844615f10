package cmd

import (
	"encoding/json"
	"fmt"

	reportadapter "github.com/bnema/malaria-prevalence/internal/adapters/render/report"
	"github.com/bnema/malaria-prevalence/internal/application"
	"github.com/spf13/cobra"
)

type runOutput struct {
	Person application.PersonReport `json:"person"`
	Result application.Result       `json:"result"`
}

func newRunCmd(app *app) *cobra.Command {
	var asJSON bool
	var summary bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the scenario once and print the sample trajectory",
		Args:  cobra.NoArgs,
	}
	overrides := newScenarioOverrides(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		scenario, err := app.loadScenario(cmd.Context(), overrides)
		if err != nil {
			return err
		}

		logger := app.logger(cmd.ErrOrStderr())
		result, err := application.NewSimulator(app.newSource(scenario.Seed), logger).Run(cmd.Context(), scenario)
		if err != nil {
			return fmt.Errorf("run simulation: %w", err)
		}

		person, err := result.Person(scenario.ReportPerson)
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(runOutput{Person: person, Result: result})
		}

		if err := reportadapter.Text(cmd.OutOrStdout(), person, result.MosquitoSeries); err != nil {
			return err
		}
		if !summary {
			return nil
		}

		rendered, err := app.runRenderer(result)
		if err != nil {
			return fmt.Errorf("render summary: %w", err)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return err
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&summary, "summary", false, "Append per-step population counts")

	return cmd
}
