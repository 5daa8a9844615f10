//go:build malariadebug

package domain

import "fmt"

func assertProbability(p float64) {
	if !ProbabilityInRange(p) {
		panic(fmt.Sprintf("infection probability %v outside [0,1]", p))
	}
}
