package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/malaria-prevalence/internal/domain"
	"github.com/bnema/malaria-prevalence/internal/ports"
)

type Simulator struct {
	rng    ports.RandomSource
	logger *slog.Logger
}

func NewSimulator(rng ports.RandomSource, logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Simulator{
		rng:    rng,
		logger: logger,
	}
}

// Run executes one simulation of the scenario.
func (s *Simulator) Run(ctx context.Context, scenario domain.Scenario) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := scenario.Validate(); err != nil {
		return Result{}, err
	}

	population, err := s.buildPopulation(scenario)
	if err != nil {
		return Result{}, fmt.Errorf("build population: %w", err)
	}

	mosquitoes, err := domain.NewMosquitoPopulation(scenario.TotalMosquitoes, scenario.T0Infected, scenario.DeathRate)
	if err != nil {
		return Result{}, fmt.Errorf("build mosquito population: %w", err)
	}

	foi, err := domain.NewForceOfInfection(population, mosquitoes, scenario.BitingRate)
	if err != nil {
		return Result{}, fmt.Errorf("build force of infection: %w", err)
	}

	machine := NewStateMachine(foi, s.rng, scenario.RecoveryRate, scenario.ProtectionPeriod, s.logger)
	if err := machine.Seed(population); err != nil {
		return Result{}, fmt.Errorf("seed infection status: %w", err)
	}
	s.logger.Debug("population seeded",
		"people", population.Len(),
		"infected", population.CountAt(1, domain.StatusInfected),
	)

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := machine.Advance(population, scenario.StepLimit); err != nil {
		return Result{}, fmt.Errorf("advance infection status: %w", err)
	}

	finalStep := scenario.FinalStep()
	counts := countSteps(population, finalStep)
	for _, count := range counts {
		s.logger.Debug("step complete",
			"step", count.Step,
			"uninfected", count.Uninfected,
			"infected", count.Infected,
			"protected", count.Protected,
		)
	}

	fraction := population.SusceptibleFraction(finalStep)
	series := domain.ProjectMosquitoInfections(mosquitoes, scenario.T0Infected, fraction, scenario.BitingRate)
	s.logger.Debug("mosquito projection complete", "susceptible_fraction", fraction, "series", series)

	return Result{
		Scenario:            scenario,
		Population:          population,
		Mosquitoes:          mosquitoes,
		StepCounts:          counts,
		SusceptibleFraction: fraction,
		MosquitoSeries:      series,
	}, nil
}

func (s *Simulator) buildPopulation(scenario domain.Scenario) (*domain.Population, error) {
	ages := scenario.Ages()
	people := make([]*domain.Person, 0, len(ages))
	for _, age := range ages {
		rate := s.rng.LogNormal(domain.RelativeBitingRateMu, domain.RelativeBitingRateSigma)
		person, err := domain.NewPerson(age, rate)
		if err != nil {
			return nil, err
		}
		people = append(people, person)
	}

	return domain.NewPopulation(people)
}
