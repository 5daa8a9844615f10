package ports

// RandomSource is the stochastic collaborator of a simulation run. Tests
// inject scripted implementations to make draws deterministic.
type RandomSource interface {
	// Float64 returns a uniform draw in [0,1).
	Float64() float64
	LogNormal(mu, sigma float64) float64
}

// RandomSourceFactory builds an independent source for a seed.
type RandomSourceFactory func(seed uint64) RandomSource
