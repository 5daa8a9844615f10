package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedBitesSinglePersonIgnoresOwnRate(t *testing.T) {
	for _, rate := range []float64{0.01, 1, 2.718, 40} {
		person, err := NewPerson(20, rate)
		require.NoError(t, err)

		population, err := NewPopulation([]*Person{person})
		require.NoError(t, err)
		assert.Equal(t, rate, population.SumOfRelativeBitingRates)

		got := ExpectedBites(person.RelativeBitingRate, population.SumOfRelativeBitingRates, 200, 3)
		assert.InDelta(t, 600.0, got, 1e-9, "rate %v", rate)
	}
}

func TestExpectedBitesSharesByRelativeRate(t *testing.T) {
	assert.InDelta(t, 150.0, ExpectedBites(1, 4, 200, 3), 1e-12)
	assert.InDelta(t, 450.0, ExpectedBites(3, 4, 200, 3), 1e-12)
}

func TestProbabilityInfectedFormula(t *testing.T) {
	assert.InDelta(t, 1-0.5, ProbabilityInfected(200, 200, 3, 0.5), 1e-12)
	assert.InDelta(t, 1-0.25*0.8, ProbabilityInfected(100, 200, 2, 0.8), 1e-12)
	assert.InDelta(t, 1.0, ProbabilityInfected(0, 200, 2, 0.8), 1e-12)
}

func TestProbabilityInfectedNonIncreasingInSusceptibleMosquitoes(t *testing.T) {
	previous := ProbabilityInfected(0, 200, 2.5, 0.5)
	for susceptible := 1; susceptible <= 200; susceptible++ {
		got := ProbabilityInfected(susceptible, 200, 2.5, 0.5)
		assert.LessOrEqual(t, got, previous, "susceptible %d", susceptible)
		previous = got
	}
}

func TestProbabilityInfectedNonDecreasingInExpectedBites(t *testing.T) {
	previous := ProbabilityInfected(150, 200, 0, 0.7)
	for bites := 0.25; bites <= 20; bites += 0.25 {
		got := ProbabilityInfected(150, 200, bites, 0.7)
		assert.GreaterOrEqual(t, got, previous, "bites %v", bites)
		previous = got
	}
}

func TestProbabilityInfectedStaysInRangeForDocumentedInputs(t *testing.T) {
	for age := 0; age <= 64; age++ {
		for susceptible := 0; susceptible <= 200; susceptible += 10 {
			for _, bites := range []float64{0, 0.01, 0.6, 3, 600} {
				p := ProbabilityInfected(susceptible, 200, bites, Immunity(float64(age)))
				assert.True(t, ProbabilityInRange(p), "age %d susceptible %d bites %v: %v", age, susceptible, bites, p)
			}
		}
	}
}

func TestForceOfInfectionRisk(t *testing.T) {
	first, err := NewPerson(5, 1)
	require.NoError(t, err)
	second, err := NewPerson(40, 3)
	require.NoError(t, err)
	population, err := NewPopulation([]*Person{first, second})
	require.NoError(t, err)

	mosquitoes, err := NewMosquitoPopulation(200, 50, 0.125)
	require.NoError(t, err)

	foi, err := NewForceOfInfection(population, mosquitoes, 3)
	require.NoError(t, err)

	bites, p := foi.Risk(second)
	assert.InDelta(t, 450.0, bites, 1e-9)
	assert.InDelta(t, ProbabilityInfected(150, 200, 450, second.Immunity), p, 1e-12)
}

func TestNewForceOfInfectionRejectsEmptyPopulation(t *testing.T) {
	mosquitoes, err := NewMosquitoPopulation(200, 50, 0.125)
	require.NoError(t, err)

	_, err = NewForceOfInfection(&Population{}, mosquitoes, 3)
	require.ErrorIs(t, err, ErrEmptyPopulation)

	_, err = NewForceOfInfection(nil, mosquitoes, 3)
	require.ErrorIs(t, err, ErrEmptyPopulation)
}
