package domain

import "errors"

var (
	ErrEmptyPopulation      = errors.New("population is empty")
	ErrInvalidBitingRate    = errors.New("relative biting rate must be positive")
	ErrInvalidAge           = errors.New("age must be non-negative")
	ErrInvalidMosquitoTotal = errors.New("mosquito total must be positive")
	ErrInvalidInfectedCount = errors.New("infected mosquito count out of range")
	ErrInvalidDeathRate     = errors.New("mosquito death rate must be in (0,1)")
	ErrInvalidScenario      = errors.New("invalid scenario")
	ErrPersonNotFound       = errors.New("person not found")
	ErrNotSeeded            = errors.New("infection status not seeded")
)
