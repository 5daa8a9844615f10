package domain

import (
	"encoding/json"
	"fmt"
)

type Status string

// InfectionWindow is the number of consecutive Infected steps after which a
// person becomes Protected, independent of the recovery rate gate.
const InfectionWindow = 7

const (
	StatusUninfected Status = "Uninfected"
	StatusInfected   Status = "Infected"
	StatusProtected  Status = "Protected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusUninfected, StatusInfected, StatusProtected:
		return true
	default:
		return false
	}
}

// StatusSequence is the step-indexed infection history of a person. Steps
// start at 1 and the sequence only grows by appending the next step.
type StatusSequence struct {
	statuses []Status
}

func NewStatusSequence(statuses ...Status) StatusSequence {
	seq := StatusSequence{statuses: make([]Status, 0, len(statuses))}
	seq.statuses = append(seq.statuses, statuses...)
	return seq
}

func (s StatusSequence) Len() int {
	return len(s.statuses)
}

func (s StatusSequence) Seeded() bool {
	return len(s.statuses) > 0
}

// Append writes the status for the next step and returns that step.
func (s *StatusSequence) Append(status Status) int {
	s.statuses = append(s.statuses, status)
	return len(s.statuses)
}

func (s StatusSequence) At(step int) (Status, bool) {
	if step < 1 || step > len(s.statuses) {
		return "", false
	}

	return s.statuses[step-1], true
}

func (s StatusSequence) Last() (Status, bool) {
	return s.At(len(s.statuses))
}

// TrailingAll reports whether every step in [end-size, end-1] holds want.
// A window reaching before step 1 or past the last written step never matches.
func (s StatusSequence) TrailingAll(end, size int, want Status) bool {
	first := end - size
	if size <= 0 || first < 1 || end-1 > len(s.statuses) {
		return false
	}

	for step := first; step < end; step++ {
		if s.statuses[step-1] != want {
			return false
		}
	}

	return true
}

func (s StatusSequence) Values() []Status {
	out := make([]Status, len(s.statuses))
	copy(out, s.statuses)
	return out
}

func (s StatusSequence) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

func (s *StatusSequence) UnmarshalJSON(data []byte) error {
	var statuses []Status
	if err := json.Unmarshal(data, &statuses); err != nil {
		return err
	}
	for i, status := range statuses {
		if !status.Valid() {
			return fmt.Errorf("step %d: unknown status %q", i+1, status)
		}
	}

	s.statuses = statuses
	return nil
}
