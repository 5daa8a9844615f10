package domain

import "fmt"

// MosquitoPopulation is the aggregate vector state. The infected count is
// always derived from Total and Susceptible.
type MosquitoPopulation struct {
	Total       int     `json:"total"`
	Susceptible int     `json:"susceptible"`
	DeathRate   float64 `json:"death_rate"`
}

func NewMosquitoPopulation(total, infected int, deathRate float64) (MosquitoPopulation, error) {
	if total <= 0 {
		return MosquitoPopulation{}, fmt.Errorf("total %d: %w", total, ErrInvalidMosquitoTotal)
	}
	if infected < 0 || infected > total {
		return MosquitoPopulation{}, fmt.Errorf("%d infected of %d: %w", infected, total, ErrInvalidInfectedCount)
	}
	if !(deathRate > 0 && deathRate < 1) {
		return MosquitoPopulation{}, fmt.Errorf("death rate %v: %w", deathRate, ErrInvalidDeathRate)
	}

	return MosquitoPopulation{
		Total:       total,
		Susceptible: total - infected,
		DeathRate:   deathRate,
	}, nil
}

func (m MosquitoPopulation) Infected() int {
	return m.Total - m.Susceptible
}

// Survival is the per-step decay factor applied to infected mosquitoes.
func (m MosquitoPopulation) Survival() float64 {
	return 1 - m.DeathRate
}
