package cmd

import (
	"github.com/bnema/malaria-prevalence/internal/domain"
	"github.com/spf13/pflag"
)

// scenarioOverrides holds per-invocation parameter flags. Only flags set on
// the command line replace stored scenario values.
type scenarioOverrides struct {
	flags *pflag.FlagSet

	seed         uint64
	person       int
	mosquitoes   int
	t0Infected   int
	bitingRate   float64
	deathRate    float64
	recoveryRate int
	steps        int
}

func newScenarioOverrides(flags *pflag.FlagSet) *scenarioOverrides {
	o := &scenarioOverrides{flags: flags}

	flags.Uint64Var(&o.seed, "seed", domain.DefaultSeed, "Random seed")
	flags.IntVar(&o.person, "person", domain.DefaultReportPerson, "Index of the person to report")
	flags.IntVar(&o.mosquitoes, "mosquitoes", domain.DefaultTotalMosquitoes, "Total number of mosquitoes")
	flags.IntVar(&o.t0Infected, "t0-infected", domain.DefaultT0Infected, "Infected mosquitoes at time 0")
	flags.Float64Var(&o.bitingRate, "biting-rate", domain.DefaultBitingRate, "Bites per person per step")
	flags.Float64Var(&o.deathRate, "death-rate", domain.DefaultDeathRate, "Mosquito death rate per step")
	flags.IntVar(&o.recoveryRate, "recovery-rate", domain.DefaultRecoveryRate, "Steps of infection before protection")
	flags.IntVar(&o.steps, "steps", domain.DefaultStepLimit, "Step limit, exclusive, including the seed step")

	return o
}

func (o *scenarioOverrides) apply(scenario *domain.Scenario) {
	if o == nil || o.flags == nil {
		return
	}

	if o.flags.Changed("seed") {
		scenario.Seed = o.seed
	}
	if o.flags.Changed("person") {
		scenario.ReportPerson = o.person
	}
	if o.flags.Changed("mosquitoes") {
		scenario.TotalMosquitoes = o.mosquitoes
	}
	if o.flags.Changed("t0-infected") {
		scenario.T0Infected = o.t0Infected
	}
	if o.flags.Changed("biting-rate") {
		scenario.BitingRate = o.bitingRate
	}
	if o.flags.Changed("death-rate") {
		scenario.DeathRate = o.deathRate
	}
	if o.flags.Changed("recovery-rate") {
		scenario.RecoveryRate = o.recoveryRate
	}
	if o.flags.Changed("steps") {
		scenario.StepLimit = o.steps
	}
}
