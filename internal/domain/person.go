package domain

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Log-normal parameters of the relative biting rate draw.
const (
	RelativeBitingRateMu    = 1.0
	RelativeBitingRateSigma = 1.127
)

type Person struct {
	Age                int            `json:"age"`
	RelativeBitingRate float64        `json:"relative_biting_rate"`
	Immunity           float64        `json:"immunity"`
	SeedProbability    float64        `json:"seed_probability"`
	SeedExpectedBites  float64        `json:"seed_expected_bites"`
	Statuses           StatusSequence `json:"statuses"`
}

func NewPerson(age int, relativeBitingRate float64) (*Person, error) {
	if age < 0 {
		return nil, fmt.Errorf("new person aged %d: %w", age, ErrInvalidAge)
	}
	if !(relativeBitingRate > 0) {
		return nil, fmt.Errorf("new person aged %d: %w", age, ErrInvalidBitingRate)
	}

	return &Person{
		Age:                age,
		RelativeBitingRate: relativeBitingRate,
		Immunity:           Immunity(float64(age)),
	}, nil
}

// Population is the fixed, ordered set of people of a run. The order is the
// insertion order and only matters for sampling and reporting.
type Population struct {
	People                   []*Person
	SumOfRelativeBitingRates float64
}

func NewPopulation(people []*Person) (*Population, error) {
	if len(people) == 0 {
		return nil, ErrEmptyPopulation
	}

	rates := make([]float64, len(people))
	for i, person := range people {
		if person == nil {
			return nil, fmt.Errorf("person %d is nil", i)
		}
		if !(person.RelativeBitingRate > 0) {
			return nil, fmt.Errorf("person %d: %w", i, ErrInvalidBitingRate)
		}
		rates[i] = person.RelativeBitingRate
	}

	return &Population{
		People:                   people,
		SumOfRelativeBitingRates: floats.Sum(rates),
	}, nil
}

func (p *Population) Len() int {
	if p == nil {
		return 0
	}
	return len(p.People)
}

func (p *Population) Person(index int) (*Person, error) {
	if index < 0 || index >= p.Len() {
		return nil, fmt.Errorf("person %d of %d: %w", index, p.Len(), ErrPersonNotFound)
	}

	return p.People[index], nil
}

// CountAt returns how many people hold status at step.
func (p *Population) CountAt(step int, status Status) int {
	count := 0
	for _, person := range p.People {
		if got, ok := person.Statuses.At(step); ok && got == status {
			count++
		}
	}

	return count
}

// SusceptibleFraction is the share of the population Uninfected at step.
func (p *Population) SusceptibleFraction(step int) float64 {
	if p.Len() == 0 {
		return 0
	}

	return float64(p.CountAt(step, StatusUninfected)) / float64(p.Len())
}
