package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type replicateProgressMsg struct {
	done int
}

type replicatesFinishedMsg struct {
	err error
}

// replicateProgressModel shows a spinner with a done/total counter until the
// batch finishes.
type replicateProgressModel struct {
	spinner  spinner.Model
	counter  lipgloss.Style
	work     tea.Cmd
	total    int
	done     int
	err      error
	finished bool
}

func newReplicateProgressModel(total int, work tea.Cmd) replicateProgressModel {
	return replicateProgressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("203"))),
		),
		counter: lipgloss.NewStyle().Bold(true),
		work:    work,
		total:   total,
	}
}

func (m replicateProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m replicateProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case replicateProgressMsg:
		m.done = max(m.done, msg.done)
		return m, nil
	case replicatesFinishedMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

func (m replicateProgressModel) View() string {
	if m.finished {
		return ""
	}

	counter := m.counter.Render(fmt.Sprintf("%d/%d", m.done, m.total))
	return fmt.Sprintf("%s simulating replicates %s", m.spinner.View(), counter)
}

// runReplicateProgress runs work while drawing progress to output. work
// receives a callback that may be invoked from any goroutine.
func runReplicateProgress(ctx context.Context, output io.Writer, total int, work func(context.Context, func(done, total int)) error) error {
	var p *tea.Program
	report := func(done, _ int) {
		p.Send(replicateProgressMsg{done: done})
	}

	p = tea.NewProgram(
		newReplicateProgressModel(total, func() tea.Msg {
			return replicatesFinishedMsg{err: work(ctx, report)}
		}),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	state, ok := finalModel.(replicateProgressModel)
	if !ok {
		return fmt.Errorf("unexpected final progress model type %T", finalModel)
	}

	return state.err
}
