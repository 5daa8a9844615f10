package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/bnema/malaria-prevalence/internal/domain"
	"github.com/bnema/malaria-prevalence/internal/ports"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

var ErrInvalidReplicateCount = errors.New("replicate count must be positive")

type ReplicateStep struct {
	Step           int     `json:"step"`
	MeanPrevalence float64 `json:"mean_prevalence"`
	StdPrevalence  float64 `json:"std_prevalence"`
}

type ReplicateSummary struct {
	Scenario                domain.Scenario `json:"scenario"`
	Replicates              int             `json:"replicates"`
	Seeds                   []uint64        `json:"seeds"`
	Steps                   []ReplicateStep `json:"steps"`
	MeanSusceptibleFraction float64         `json:"mean_susceptible_fraction"`
	MeanMosquitoSeries      []float64       `json:"mean_mosquito_series"`
}

// ReplicateService runs independent simulations of one scenario, each on its
// own random stream.
type ReplicateService struct {
	newSource ports.RandomSourceFactory
	logger    *slog.Logger
	progress  func(done, total int)
}

func NewReplicateService(newSource ports.RandomSourceFactory, logger *slog.Logger) *ReplicateService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &ReplicateService{
		newSource: newSource,
		logger:    logger,
	}
}

// WithProgress registers fn to be called after each replicate completes. fn
// may be called from several goroutines.
func (s *ReplicateService) WithProgress(fn func(done, total int)) *ReplicateService {
	s.progress = fn
	return s
}

// Run simulates count replicates with seeds scenario.Seed, scenario.Seed+1,
// ... using at most parallel workers.
func (s *ReplicateService) Run(ctx context.Context, scenario domain.Scenario, count, parallel int) (ReplicateSummary, error) {
	if count <= 0 {
		return ReplicateSummary{}, ErrInvalidReplicateCount
	}
	if err := scenario.Validate(); err != nil {
		return ReplicateSummary{}, err
	}

	results := make([]Result, count)
	seeds := make([]uint64, count)

	var completed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i := range count {
		seed := scenario.Seed + uint64(i)
		seeds[i] = seed
		g.Go(func() error {
			replicate := scenario
			replicate.Seed = seed

			result, err := NewSimulator(s.newSource(seed), s.logger.With("replicate", i)).Run(gctx, replicate)
			if err != nil {
				return fmt.Errorf("replicate %d (seed %d): %w", i, seed, err)
			}
			results[i] = result
			if done := completed.Add(1); s.progress != nil {
				s.progress(int(done), count)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ReplicateSummary{}, err
	}

	return summarize(scenario, seeds, results), nil
}

func summarize(scenario domain.Scenario, seeds []uint64, results []Result) ReplicateSummary {
	finalStep := scenario.FinalStep()
	steps := make([]ReplicateStep, 0, finalStep)
	samples := make([]float64, len(results))
	for step := 1; step <= finalStep; step++ {
		for i, result := range results {
			samples[i] = result.StepCounts[step-1].Prevalence()
		}
		mean, std := meanStdDev(samples)
		steps = append(steps, ReplicateStep{Step: step, MeanPrevalence: mean, StdPrevalence: std})
	}

	for i, result := range results {
		samples[i] = result.SusceptibleFraction
	}
	meanFraction, _ := meanStdDev(samples)

	series := make([]float64, domain.ProjectionLength)
	for j := range series {
		for i, result := range results {
			samples[i] = float64(result.MosquitoSeries[j])
		}
		series[j] = stat.Mean(samples, nil)
	}

	return ReplicateSummary{
		Scenario:                scenario,
		Replicates:              len(results),
		Seeds:                   seeds,
		Steps:                   steps,
		MeanSusceptibleFraction: meanFraction,
		MeanMosquitoSeries:      series,
	}
}

// meanStdDev treats a single sample as having zero spread.
func meanStdDev(samples []float64) (float64, float64) {
	if len(samples) < 2 {
		return stat.Mean(samples, nil), 0
	}
	return stat.MeanStdDev(samples, nil)
}
