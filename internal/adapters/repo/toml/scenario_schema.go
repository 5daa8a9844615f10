package toml

import (
	"fmt"

	"github.com/bnema/malaria-prevalence/internal/domain"
)

const currentScenarioSchemaVersion = 1

type scenarioFileSchema struct {
	Version    int             `toml:"version"`
	Mosquitoes mosquitoSchema  `toml:"mosquitoes"`
	Humans     humanSchema     `toml:"humans"`
	Run        runSchema       `toml:"run"`
	Ages       []ageBandSchema `toml:"ages,omitempty"`
}

type mosquitoSchema struct {
	Total      int     `toml:"total"`
	T0Infected *int    `toml:"t0_infected,omitempty"`
	DeathRate  float64 `toml:"death_rate"`
	BitingRate float64 `toml:"biting_rate"`
}

type humanSchema struct {
	RecoveryRate     int `toml:"recovery_rate"`
	ProtectionPeriod int `toml:"protection_period"`
}

type runSchema struct {
	StepLimit    int     `toml:"step_limit"`
	ReportPerson *int    `toml:"report_person,omitempty"`
	Seed         *uint64 `toml:"seed,omitempty"`
}

type ageBandSchema struct {
	From  int `toml:"from"`
	To    int `toml:"to"`
	Count int `toml:"count"`
}

func (s *scenarioFileSchema) applyDefaults() {
	defaults := domain.DefaultScenario()

	if s.Version == 0 {
		s.Version = currentScenarioSchemaVersion
	}
	if s.Mosquitoes.Total == 0 {
		s.Mosquitoes.Total = defaults.TotalMosquitoes
	}
	if s.Mosquitoes.T0Infected == nil {
		t0 := defaults.T0Infected
		s.Mosquitoes.T0Infected = &t0
	}
	if s.Mosquitoes.DeathRate == 0 {
		s.Mosquitoes.DeathRate = defaults.DeathRate
	}
	if s.Mosquitoes.BitingRate == 0 {
		s.Mosquitoes.BitingRate = defaults.BitingRate
	}
	if s.Humans.RecoveryRate == 0 {
		s.Humans.RecoveryRate = defaults.RecoveryRate
	}
	if s.Humans.ProtectionPeriod == 0 {
		s.Humans.ProtectionPeriod = defaults.ProtectionPeriod
	}
	if s.Run.StepLimit == 0 {
		s.Run.StepLimit = defaults.StepLimit
	}
	if s.Run.ReportPerson == nil {
		person := defaults.ReportPerson
		s.Run.ReportPerson = &person
	}
	if s.Run.Seed == nil {
		seed := uint64(defaults.Seed)
		s.Run.Seed = &seed
	}
	if len(s.Ages) == 0 {
		for _, band := range defaults.AgeBands {
			s.Ages = append(s.Ages, ageBandSchema(band))
		}
	}
}

func (s scenarioFileSchema) validateVersion() error {
	if s.Version > currentScenarioSchemaVersion {
		return fmt.Errorf("unsupported scenario schema version %d (current %d)", s.Version, currentScenarioSchemaVersion)
	}

	return nil
}

func toScenarioSchema(scenario domain.Scenario) scenarioFileSchema {
	t0 := scenario.T0Infected
	person := scenario.ReportPerson
	seed := scenario.Seed
	ages := make([]ageBandSchema, 0, len(scenario.AgeBands))
	for _, band := range scenario.AgeBands {
		ages = append(ages, ageBandSchema(band))
	}

	return scenarioFileSchema{
		Version: currentScenarioSchemaVersion,
		Mosquitoes: mosquitoSchema{
			Total:      scenario.TotalMosquitoes,
			T0Infected: &t0,
			DeathRate:  scenario.DeathRate,
			BitingRate: scenario.BitingRate,
		},
		Humans: humanSchema{
			RecoveryRate:     scenario.RecoveryRate,
			ProtectionPeriod: scenario.ProtectionPeriod,
		},
		Run: runSchema{
			StepLimit:    scenario.StepLimit,
			ReportPerson: &person,
			Seed:         &seed,
		},
		Ages: ages,
	}
}

// fromScenarioSchema expects applyDefaults to have run.
func fromScenarioSchema(file scenarioFileSchema) domain.Scenario {
	bands := make([]domain.AgeBand, 0, len(file.Ages))
	for _, band := range file.Ages {
		bands = append(bands, domain.AgeBand(band))
	}

	return domain.Scenario{
		TotalMosquitoes:  file.Mosquitoes.Total,
		BitingRate:       file.Mosquitoes.BitingRate,
		RecoveryRate:     file.Humans.RecoveryRate,
		ProtectionPeriod: file.Humans.ProtectionPeriod,
		T0Infected:       *file.Mosquitoes.T0Infected,
		DeathRate:        file.Mosquitoes.DeathRate,
		StepLimit:        file.Run.StepLimit,
		ReportPerson:     *file.Run.ReportPerson,
		Seed:             *file.Run.Seed,
		AgeBands:         bands,
	}
}

// EncodeScenario renders a scenario in the on-disk TOML layout.
func EncodeScenario(scenario domain.Scenario) ([]byte, error) {
	data, err := marshal(toScenarioSchema(scenario))
	if err != nil {
		return nil, fmt.Errorf("encode scenario: %w", err)
	}
	return data, nil
}
