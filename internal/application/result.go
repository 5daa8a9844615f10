package application

import (
	"fmt"

	"github.com/bnema/malaria-prevalence/internal/domain"
)

type StepCount struct {
	Step       int `json:"step"`
	Uninfected int `json:"uninfected"`
	Infected   int `json:"infected"`
	Protected  int `json:"protected"`
}

func (c StepCount) Total() int {
	return c.Uninfected + c.Infected + c.Protected
}

// Prevalence is the infected share of the counted people.
func (c StepCount) Prevalence() float64 {
	if c.Total() == 0 {
		return 0
	}
	return float64(c.Infected) / float64(c.Total())
}

type Result struct {
	Scenario            domain.Scenario           `json:"scenario"`
	Population          *domain.Population        `json:"-"`
	Mosquitoes          domain.MosquitoPopulation `json:"mosquitoes"`
	StepCounts          []StepCount               `json:"step_counts"`
	SusceptibleFraction float64                   `json:"susceptible_fraction"`
	MosquitoSeries      []int                     `json:"mosquito_series"`
}

// PersonReport is the trajectory of one sampled person.
type PersonReport struct {
	Index              int                   `json:"index"`
	Age                int                   `json:"age"`
	RelativeBitingRate float64               `json:"relative_biting_rate"`
	Immunity           float64               `json:"immunity"`
	Probability        float64               `json:"probability"`
	ExpectedBites      float64               `json:"expected_bites"`
	Statuses           domain.StatusSequence `json:"statuses"`
}

func (r Result) Person(index int) (PersonReport, error) {
	person, err := r.Population.Person(index)
	if err != nil {
		return PersonReport{}, fmt.Errorf("sample person: %w", err)
	}
	if !person.Statuses.Seeded() {
		return PersonReport{}, fmt.Errorf("sample person %d: %w", index, domain.ErrNotSeeded)
	}

	return PersonReport{
		Index:              index,
		Age:                person.Age,
		RelativeBitingRate: person.RelativeBitingRate,
		Immunity:           person.Immunity,
		Probability:        person.SeedProbability,
		ExpectedBites:      person.SeedExpectedBites,
		Statuses:           person.Statuses,
	}, nil
}

func countSteps(population *domain.Population, finalStep int) []StepCount {
	counts := make([]StepCount, 0, finalStep)
	for step := 1; step <= finalStep; step++ {
		counts = append(counts, StepCount{
			Step:       step,
			Uninfected: population.CountAt(step, domain.StatusUninfected),
			Infected:   population.CountAt(step, domain.StatusInfected),
			Protected:  population.CountAt(step, domain.StatusProtected),
		})
	}

	return counts
}
