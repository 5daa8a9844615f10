package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/bnema/malaria-prevalence/internal/application"
	"github.com/spf13/cobra"
)

const defaultReplicates = 20

func newReplicateCmd(app *app) *cobra.Command {
	var count int
	var parallel int
	var asJSON bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "replicate",
		Short: "Run independent replicates of the scenario and summarize them",
		Args:  cobra.NoArgs,
	}
	overrides := newScenarioOverrides(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		scenario, err := app.loadScenario(cmd.Context(), overrides)
		if err != nil {
			return err
		}

		service := application.NewReplicateService(app.newSource, app.logger(cmd.ErrOrStderr()))

		var summary application.ReplicateSummary
		run := func(ctx context.Context, progress func(done, total int)) error {
			var runErr error
			summary, runErr = service.WithProgress(progress).Run(ctx, scenario, count, parallel)
			return runErr
		}

		if quiet || asJSON {
			err = run(cmd.Context(), nil)
		} else {
			err = runReplicateProgress(cmd.Context(), cmd.ErrOrStderr(), count, run)
		}
		if err != nil {
			return fmt.Errorf("run replicates: %w", err)
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		}

		rendered, err := app.replicateRenderer(summary)
		if err != nil {
			return fmt.Errorf("render replicates: %w", err)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return err
	}

	cmd.Flags().IntVar(&count, "count", defaultReplicates, "Number of replicates")
	cmd.Flags().IntVar(&parallel, "parallel", runtime.NumCPU(), "Maximum replicates run concurrently")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Hide the progress spinner")

	return cmd
}
