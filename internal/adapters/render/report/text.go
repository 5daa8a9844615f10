package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/bnema/malaria-prevalence/internal/application"
	"github.com/bnema/malaria-prevalence/internal/domain"
)

const separator = "--------------------------------------"

// Text writes the line-oriented report consumed by downstream parsers. Labels
// and their order are fixed.
func Text(w io.Writer, person application.PersonReport, series []int) error {
	lines := []string{
		"Age: " + strconv.Itoa(person.Age),
		"Probability Getting Infected by Infectious Mosquito: " + formatFloat(person.Probability),
		"Expected Number of Bites: " + formatFloat(person.ExpectedBites),
		"Infection Status: " + formatStatuses(person.Statuses),
		"Infected Mosquitoes per Unit Time 1-10: " + formatSeries(series),
		separator,
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// formatFloat prints twelve significant digits and always marks the value as
// a float: integral values end in ".0", non-finite values read nan/inf.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	out := strconv.FormatFloat(v, 'g', 12, 64)
	if !strings.ContainsAny(out, ".e") {
		out += ".0"
	}
	return out
}

func formatStatuses(statuses domain.StatusSequence) string {
	parts := make([]string, 0, statuses.Len())
	for i, status := range statuses.Values() {
		parts = append(parts, fmt.Sprintf("%d: '%s'", i+1, status))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

func formatSeries(series []int) string {
	parts := make([]string, 0, len(series))
	for _, v := range series {
		parts = append(parts, strconv.Itoa(v))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
