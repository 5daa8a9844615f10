package domain

import "math"

// Immunity maps an age in years to the acquired immunity coefficient used as
// the multiplier of the escape probability. The curve bottoms out at 0.08
// around age 32 and approaches 0.88 at both ends.
func Immunity(age float64) float64 {
	return .88 - (.8 * math.Exp(-.5*math.Pow(-3.5+.1094*age, 2)))
}
