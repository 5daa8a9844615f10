package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/malaria-prevalence/internal/adapters/random"
	reportadapter "github.com/bnema/malaria-prevalence/internal/adapters/render/report"
	tomlrepo "github.com/bnema/malaria-prevalence/internal/adapters/repo/toml"
	"github.com/bnema/malaria-prevalence/internal/application"
	"github.com/bnema/malaria-prevalence/internal/domain"
	"github.com/bnema/malaria-prevalence/internal/ports"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type app struct {
	scenarios         ports.ScenarioRepository
	scenarioPath      func() (string, error)
	newSource         ports.RandomSourceFactory
	runRenderer       func(application.Result) (string, error)
	replicateRenderer func(application.ReplicateSummary) (string, error)
	logLevel          *slog.LevelVar
}

func wireApp(scenarioFlag *pflag.Flag) (*app, error) {
	cfg := viper.New()
	if scenarioFlag != nil {
		if err := cfg.BindPFlag(tomlrepo.ScenarioPathKey, scenarioFlag); err != nil {
			return nil, fmt.Errorf("bind scenario flag: %w", err)
		}
	}

	repo, err := tomlrepo.NewScenarioRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire scenario repository: %w", err)
	}

	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelWarn)

	return &app{
		scenarios:         repo,
		scenarioPath:      repo.Path,
		newSource:         random.Factory,
		runRenderer:       reportadapter.Render,
		replicateRenderer: reportadapter.RenderReplicates,
		logLevel:          logLevel,
	}, nil
}

func (a *app) logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: a.logLevel}))
}

// loadScenario reads the stored scenario and applies command-line overrides.
func (a *app) loadScenario(ctx context.Context, overrides *scenarioOverrides) (domain.Scenario, error) {
	scenario, err := a.scenarios.Load(ctx)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("load scenario: %w", err)
	}

	overrides.apply(&scenario)
	if err := scenario.Validate(); err != nil {
		return domain.Scenario{}, err
	}

	return scenario, nil
}
