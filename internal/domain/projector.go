package domain

import "math"

// ProjectionLength is the number of entries in a mosquito infection series.
const ProjectionLength = 10

// ProjectMosquitoInfections projects the infected mosquito count for steps
// 0..9. susceptibleFraction is the share of Uninfected humans and stays fixed
// for the whole projection. Entries are rounded up for reporting; the
// recurrence carries the unrounded value from step 2 onward.
func ProjectMosquitoInfections(mosquitoes MosquitoPopulation, t0Infected int, susceptibleFraction, bitingRate float64) []int {
	series := make([]int, 0, ProjectionLength)
	series = append(series, t0Infected)

	current := math.Ceil(float64(t0Infected) * mosquitoes.Survival())
	series = append(series, int(current))

	infectedByBite := 1 - math.Pow(susceptibleFraction, bitingRate)
	total := float64(mosquitoes.Total)
	for i := 2; i < ProjectionLength; i++ {
		next := mosquitoes.Survival() * (current + infectedByBite*(total-current))
		series = append(series, int(math.Ceil(next)))
		current = next
	}

	return series
}
