package application

import (
	"fmt"
	"log/slog"

	"github.com/bnema/malaria-prevalence/internal/domain"
	"github.com/bnema/malaria-prevalence/internal/ports"
)

// StateMachine advances infection statuses step by step. The risk model is a
// fixed snapshot for the whole run.
type StateMachine struct {
	risk             domain.RiskModel
	rng              ports.RandomSource
	recoveryRate     int
	protectionPeriod int
	logger           *slog.Logger
}

func NewStateMachine(risk domain.RiskModel, rng ports.RandomSource, recoveryRate, protectionPeriod int, logger *slog.Logger) *StateMachine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &StateMachine{
		risk:             risk,
		rng:              rng,
		recoveryRate:     recoveryRate,
		protectionPeriod: protectionPeriod,
		logger:           logger,
	}
}

// Seed writes step 1 for every person from a single draw each.
func (m *StateMachine) Seed(population *domain.Population) error {
	if population.Len() == 0 {
		return domain.ErrEmptyPopulation
	}

	for i, person := range population.People {
		if person.Statuses.Seeded() {
			return fmt.Errorf("seed person %d: already seeded", i)
		}

		bites, probability := m.risk.Risk(person)
		person.SeedExpectedBites = bites
		person.SeedProbability = probability
		person.Statuses.Append(m.roll(probability))
	}

	return nil
}

// Advance fills steps 2..stepLimit-1 for each person in turn.
func (m *StateMachine) Advance(population *domain.Population, stepLimit int) error {
	for i, person := range population.People {
		for step := person.Statuses.Len() + 1; step < stepLimit; step++ {
			if err := m.AdvancePerson(person, step); err != nil {
				return fmt.Errorf("advance person %d: %w", i, err)
			}
		}
	}

	return nil
}

// AdvancePerson writes the status for step, which must be the next unwritten
// step of the person.
func (m *StateMachine) AdvancePerson(person *domain.Person, step int) error {
	previous, ok := person.Statuses.Last()
	if !ok {
		return domain.ErrNotSeeded
	}
	if step != person.Statuses.Len()+1 {
		return fmt.Errorf("step %d out of order, next is %d", step, person.Statuses.Len()+1)
	}

	person.Statuses.Append(m.transition(person, previous, step))
	return nil
}

func (m *StateMachine) transition(person *domain.Person, previous domain.Status, step int) domain.Status {
	switch previous {
	case domain.StatusInfected:
		if step < m.recoveryRate {
			return domain.StatusInfected
		}
		if person.Statuses.TrailingAll(step, domain.InfectionWindow, domain.StatusInfected) {
			return domain.StatusProtected
		}
		return domain.StatusInfected
	case domain.StatusProtected:
		if person.Statuses.TrailingAll(step, m.protectionPeriod, domain.StatusProtected) {
			return m.reroll(person)
		}
		return domain.StatusProtected
	default:
		return m.reroll(person)
	}
}

func (m *StateMachine) reroll(person *domain.Person) domain.Status {
	_, probability := m.risk.Risk(person)
	return m.roll(probability)
}

func (m *StateMachine) roll(probability float64) domain.Status {
	if !domain.ProbabilityInRange(probability) {
		m.logger.Debug("infection probability outside [0,1]", "probability", probability)
	}

	if m.rng.Float64() < probability {
		return domain.StatusInfected
	}
	return domain.StatusUninfected
}
