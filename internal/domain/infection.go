package domain

import (
	"fmt"
	"math"
)

// ExpectedBites is the number of bites a person with the given relative
// biting rate receives per step. sumOfRBRs must be positive.
func ExpectedBites(relativeBitingRate, sumOfRBRs float64, totalMosquitoes int, bitingRate float64) float64 {
	return (relativeBitingRate / sumOfRBRs) * float64(totalMosquitoes) * bitingRate
}

// ProbabilityInfected returns 1 - (S/N)^bites * immunity. The result is not
// clamped: inputs outside the documented ranges can leave [0,1].
func ProbabilityInfected(susceptibleMosquitoes, totalMosquitoes int, expectedBites, immunity float64) float64 {
	p := 1 - math.Pow(float64(susceptibleMosquitoes)/float64(totalMosquitoes), expectedBites)*immunity
	assertProbability(p)
	return p
}

func ProbabilityInRange(p float64) bool {
	return p >= 0 && p <= 1
}

// RiskModel yields the per-step exposure of a person.
type RiskModel interface {
	Risk(person *Person) (expectedBites, probability float64)
}

// ForceOfInfection evaluates risk against a read-only mosquito snapshot.
type ForceOfInfection struct {
	SumOfRelativeBitingRates float64
	Mosquitoes               MosquitoPopulation
	BitingRate               float64
}

var _ RiskModel = ForceOfInfection{}

func NewForceOfInfection(population *Population, mosquitoes MosquitoPopulation, bitingRate float64) (ForceOfInfection, error) {
	if population.Len() == 0 || !(population.SumOfRelativeBitingRates > 0) {
		return ForceOfInfection{}, ErrEmptyPopulation
	}
	if mosquitoes.Total <= 0 {
		return ForceOfInfection{}, fmt.Errorf("total %d: %w", mosquitoes.Total, ErrInvalidMosquitoTotal)
	}

	return ForceOfInfection{
		SumOfRelativeBitingRates: population.SumOfRelativeBitingRates,
		Mosquitoes:               mosquitoes,
		BitingRate:               bitingRate,
	}, nil
}

func (f ForceOfInfection) Risk(person *Person) (float64, float64) {
	bites := ExpectedBites(person.RelativeBitingRate, f.SumOfRelativeBitingRates, f.Mosquitoes.Total, f.BitingRate)
	return bites, ProbabilityInfected(f.Mosquitoes.Susceptible, f.Mosquitoes.Total, bites, person.Immunity)
}
