package domain

import (
	"fmt"
	"sort"
)

const (
	DefaultTotalMosquitoes  = 200
	DefaultBitingRate       = 3.0
	DefaultRecoveryRate     = 7
	DefaultProtectionPeriod = 7
	DefaultT0Infected       = 50
	DefaultDeathRate        = 1.0 / 8
	DefaultStepLimit        = 20
	DefaultReportPerson     = 100
	DefaultSeed             = 1
)

// AgeBand contributes Count people of every age in [From, To].
type AgeBand struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Count int `json:"count"`
}

// Scenario holds the fixed parameters of a run.
type Scenario struct {
	TotalMosquitoes  int       `json:"total_mosquitoes"`
	BitingRate       float64   `json:"biting_rate"`
	RecoveryRate     int       `json:"recovery_rate"`
	ProtectionPeriod int       `json:"protection_period"`
	T0Infected       int       `json:"t0_infected"`
	DeathRate        float64   `json:"death_rate"`
	StepLimit        int       `json:"step_limit"`
	ReportPerson     int       `json:"report_person"`
	Seed             uint64    `json:"seed"`
	AgeBands         []AgeBand `json:"age_bands"`
}

// DefaultAgeBands is 30 people per age 0-14 and 11 per age 15-64.
func DefaultAgeBands() []AgeBand {
	return []AgeBand{
		{From: 0, To: 14, Count: 30},
		{From: 15, To: 64, Count: 11},
	}
}

func DefaultScenario() Scenario {
	return Scenario{
		TotalMosquitoes:  DefaultTotalMosquitoes,
		BitingRate:       DefaultBitingRate,
		RecoveryRate:     DefaultRecoveryRate,
		ProtectionPeriod: DefaultProtectionPeriod,
		T0Infected:       DefaultT0Infected,
		DeathRate:        DefaultDeathRate,
		StepLimit:        DefaultStepLimit,
		ReportPerson:     DefaultReportPerson,
		Seed:             DefaultSeed,
		AgeBands:         DefaultAgeBands(),
	}
}

// FinalStep is the last step the state machine writes.
func (s Scenario) FinalStep() int {
	return s.StepLimit - 1
}

// Ages expands the age bands into one age per person, sorted ascending.
func (s Scenario) Ages() []int {
	ages := make([]int, 0, s.PopulationSize())
	for _, band := range s.AgeBands {
		for age := band.From; age <= band.To; age++ {
			for i := 0; i < band.Count; i++ {
				ages = append(ages, age)
			}
		}
	}
	sort.Ints(ages)

	return ages
}

func (s Scenario) PopulationSize() int {
	size := 0
	for _, band := range s.AgeBands {
		if band.To >= band.From && band.Count > 0 {
			size += (band.To - band.From + 1) * band.Count
		}
	}

	return size
}

func (s Scenario) Validate() error {
	if s.TotalMosquitoes <= 0 {
		return fmt.Errorf("%w: total mosquitoes %d: %w", ErrInvalidScenario, s.TotalMosquitoes, ErrInvalidMosquitoTotal)
	}
	if s.T0Infected < 0 || s.T0Infected > s.TotalMosquitoes {
		return fmt.Errorf("%w: t0 infected %d of %d: %w", ErrInvalidScenario, s.T0Infected, s.TotalMosquitoes, ErrInvalidInfectedCount)
	}
	if !(s.DeathRate > 0 && s.DeathRate < 1) {
		return fmt.Errorf("%w: death rate %v: %w", ErrInvalidScenario, s.DeathRate, ErrInvalidDeathRate)
	}
	if !(s.BitingRate > 0) {
		return fmt.Errorf("%w: biting rate must be positive, got %v", ErrInvalidScenario, s.BitingRate)
	}
	if s.RecoveryRate <= 0 {
		return fmt.Errorf("%w: recovery rate must be positive, got %d", ErrInvalidScenario, s.RecoveryRate)
	}
	if s.ProtectionPeriod <= 0 {
		return fmt.Errorf("%w: protection period must be positive, got %d", ErrInvalidScenario, s.ProtectionPeriod)
	}
	if s.StepLimit < 2 {
		return fmt.Errorf("%w: step limit must be at least 2, got %d", ErrInvalidScenario, s.StepLimit)
	}
	for i, band := range s.AgeBands {
		if band.From < 0 || band.To < band.From || band.Count <= 0 {
			return fmt.Errorf("%w: age band %d (%d-%d x%d)", ErrInvalidScenario, i, band.From, band.To, band.Count)
		}
	}
	if s.PopulationSize() == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, ErrEmptyPopulation)
	}
	if s.ReportPerson < 0 || s.ReportPerson >= s.PopulationSize() {
		return fmt.Errorf("%w: report person %d of %d: %w", ErrInvalidScenario, s.ReportPerson, s.PopulationSize(), ErrPersonNotFound)
	}

	return nil
}
