package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/malaria-prevalence/internal/application"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 24

// Render draws the per-step summary of a single run.
func Render(result application.Result) (string, error) {
	return run(func(s styles) string {
		return renderRun(result, s)
	})
}

// RenderReplicates draws the aggregate of a replicate batch.
func RenderReplicates(summary application.ReplicateSummary) (string, error) {
	return run(func(s styles) string {
		return renderReplicates(summary, s)
	})
}

func renderRun(result application.Result, s styles) string {
	lines := []string{
		s.title.Render("Malaria Prevalence"),
		s.header.Render(fmt.Sprintf("people: %d  mosquitoes: %d  seed: %d",
			result.Population.Len(), result.Mosquitoes.Total, result.Scenario.Seed)),
	}

	rows := make([]string, 0, len(result.StepCounts))
	for _, count := range result.StepCounts {
		rows = append(rows, stepLine(count, s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

	lines = append(lines,
		s.section.Render(s.detail.Render(fmt.Sprintf("susceptible fraction: %.3f", result.SusceptibleFraction))),
		s.detail.Render("infected mosquitoes: "+formatSeries(result.MosquitoSeries)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func stepLine(count application.StepCount, s styles) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.stepKey.Render(fmt.Sprintf("step %2d", count.Step)),
		"  ",
		s.uninfected.Render(fmt.Sprintf("U %4d", count.Uninfected)),
		"  ",
		s.infected.Render(fmt.Sprintf("I %4d", count.Infected)),
		"  ",
		s.protected.Render(fmt.Sprintf("P %4d", count.Protected)),
		"  ",
		renderBar(count.Prevalence(), s),
		" ",
		s.detail.Render(fmt.Sprintf("%5.1f%%", count.Prevalence()*100)),
	)
}

func renderReplicates(summary application.ReplicateSummary, s styles) string {
	lines := []string{
		s.title.Render("Malaria Prevalence Replicates"),
		s.header.Render(fmt.Sprintf("replicates: %d  seeds: %d-%d",
			summary.Replicates, firstSeed(summary.Seeds), lastSeed(summary.Seeds))),
	}

	rows := make([]string, 0, len(summary.Steps))
	for _, step := range summary.Steps {
		rows = append(rows, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.stepKey.Render(fmt.Sprintf("step %2d", step.Step)),
			"  ",
			renderBar(step.MeanPrevalence, s),
			" ",
			s.infected.Render(fmt.Sprintf("%5.1f%% ± %.1f", step.MeanPrevalence*100, step.StdPrevalence*100)),
		))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

	series := make([]string, 0, len(summary.MeanMosquitoSeries))
	for _, v := range summary.MeanMosquitoSeries {
		series = append(series, fmt.Sprintf("%.1f", v))
	}
	lines = append(lines,
		s.section.Render(s.detail.Render(fmt.Sprintf("mean susceptible fraction: %.3f", summary.MeanSusceptibleFraction))),
		s.detail.Render("mean infected mosquitoes: ["+strings.Join(series, ", ")+"]"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderBar(fraction float64, s styles) string {
	filled := int(math.Round(barWidth * clampFraction(fraction)))
	empty := barWidth - filled

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", empty)),
		s.barBracket.Render("]"),
	)
}

func clampFraction(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func firstSeed(seeds []uint64) uint64 {
	if len(seeds) == 0 {
		return 0
	}
	return seeds[0]
}

func lastSeed(seeds []uint64) uint64 {
	if len(seeds) == 0 {
		return 0
	}
	return seeds[len(seeds)-1]
}
