package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/stonesplit/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type batchDoneMsg struct {
	report domain.BatchReport
	err    error
}

// batchSpinnerModel shows progress while a batch computes and leaves a one
// line summary behind when it finishes.
type batchSpinnerModel struct {
	spinner spinner.Model
	source  string
	compute tea.Cmd
	report  domain.BatchReport
	err     error
	done    bool
}

func newBatchSpinnerModel(source string, compute tea.Cmd) batchSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return batchSpinnerModel{
		spinner: s,
		source:  source,
		compute: compute,
	}
}

func (m batchSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.compute)
}

func (m batchSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case batchDoneMsg:
		m.done = true
		m.report = msg.report
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m batchSpinnerModel) View() string {
	if !m.done {
		return fmt.Sprintf("%s Computing max splits for %s...", m.spinner.View(), m.source)
	}
	if m.err != nil {
		return ""
	}

	return batchSummary(m.report) + "\n"
}

func batchSummary(report domain.BatchReport) string {
	summary := fmt.Sprintf("Computed %d piles from %s", len(report.Results), report.Source)
	if n := len(report.Rejections); n > 0 {
		summary += fmt.Sprintf(", %d rejected", n)
	}
	if n := report.ApproximateCount(); n > 0 {
		summary += fmt.Sprintf(", %d approximate", n)
	}
	if !report.StartedAt.IsZero() && report.FinishedAt.After(report.StartedAt) {
		summary += fmt.Sprintf(" in %s", report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond))
	}
	return summary
}

// runBatchSpinner runs compute behind a spinner on output and returns its report.
func runBatchSpinner(ctx context.Context, output io.Writer, source string, compute func(context.Context) (domain.BatchReport, error)) (domain.BatchReport, error) {
	computeCmd := func() tea.Msg {
		report, err := compute(ctx)
		return batchDoneMsg{report: report, err: err}
	}

	p := tea.NewProgram(
		newBatchSpinnerModel(source, computeCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return domain.BatchReport{}, err
	}

	result, ok := finalModel.(batchSpinnerModel)
	if !ok {
		return domain.BatchReport{}, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.report, result.err
}
