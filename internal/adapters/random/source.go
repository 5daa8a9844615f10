package random

import (
	"math/rand/v2"

	"github.com/bnema/malaria-prevalence/internal/ports"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source is a seeded PCG stream. Uniform and log-normal draws share the
// stream, so a seed fixes every draw of a run.
type Source struct {
	pcg *rand.PCG
	rng *rand.Rand
}

var _ ports.RandomSource = (*Source)(nil)

func NewSource(seed uint64) *Source {
	pcg := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Source{pcg: pcg, rng: rand.New(pcg)}
}

// Factory satisfies ports.RandomSourceFactory.
func Factory(seed uint64) ports.RandomSource {
	return NewSource(seed)
}

func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

func (s *Source) LogNormal(mu, sigma float64) float64 {
	return distuv.LogNormal{Mu: mu, Sigma: sigma, Src: s.pcg}.Rand()
}
