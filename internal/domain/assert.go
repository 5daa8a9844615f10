//go:build !malariadebug

package domain

func assertProbability(float64) {}
