package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/bnema/malaria-prevalence/internal/application"
	"github.com/bnema/malaria-prevalence/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFieldOrderAndLabels(t *testing.T) {
	var buf bytes.Buffer

	err := Text(&buf, application.PersonReport{
		Age:           3,
		Probability:   0.25,
		ExpectedBites: 0.123456789012345,
		Statuses:      domain.NewStatusSequence(domain.StatusUninfected, domain.StatusInfected, domain.StatusProtected),
	}, []int{50, 44, 61})
	require.NoError(t, err)

	want := strings.Join([]string{
		"Age: 3",
		"Probability Getting Infected by Infectious Mosquito: 0.25",
		"Expected Number of Bites: 0.123456789012",
		"Infection Status: {1: 'Uninfected', 2: 'Infected', 3: 'Protected'}",
		"Infected Mosquitoes per Unit Time 1-10: [50, 44, 61]",
		"--------------------------------------",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestTextCertainInfectionKeepsFloatForm(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Text(&buf, application.PersonReport{
		Age:           40,
		Probability:   1,
		ExpectedBites: 600,
		Statuses:      domain.NewStatusSequence(domain.StatusInfected),
	}, nil))
	assert.Contains(t, buf.String(), "Probability Getting Infected by Infectious Mosquito: 1.0\n")
	assert.Contains(t, buf.String(), "Expected Number of Bites: 600.0\n")
}

func TestTextEmptyTrajectory(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Text(&buf, application.PersonReport{}, nil))
	assert.Contains(t, buf.String(), "Infection Status: {}\n")
	assert.Contains(t, buf.String(), "Infected Mosquitoes per Unit Time 1-10: []\n")
}

func TestFormatFloatUsesTwelveSignificantDigits(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "short", value: 0.5, want: "0.5"},
		{name: "long", value: 1.0 / 3, want: "0.333333333333"},
		{name: "integral", value: 600, want: "600.0"},
		{name: "certain infection", value: 1, want: "1.0"},
		{name: "zero", value: 0, want: "0.0"},
		{name: "negative integral", value: -2, want: "-2.0"},
		{name: "tiny", value: 0.00001234, want: "1.234e-05"},
		{name: "huge", value: 1e16, want: "1e+16"},
		{name: "nan", value: math.NaN(), want: "nan"},
		{name: "inf", value: math.Inf(1), want: "inf"},
		{name: "negative inf", value: math.Inf(-1), want: "-inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFloat(tt.value))
		})
	}
}
