package report

import (
	"errors"
	"io"

	"github.com/bnema/stonesplit/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// layoutMsg fixes the width the report is laid out for; zero means unbounded.
type layoutMsg struct {
	width int
}

// model lays a batch report out once and quits. It never touches a terminal:
// the width comes from RenderOptions rather than a tea.WindowSizeMsg.
type model struct {
	report domain.BatchReport
	opts   RenderOptions
	styles styles
	output string
}

func newModel(report domain.BatchReport, opts RenderOptions) model {
	return model{
		report: report,
		opts:   opts,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	width := m.opts.Width
	return func() tea.Msg {
		return layoutMsg{width: width}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case layoutMsg:
		opts := m.opts
		opts.Width = max(msg.width, 0)
		m.output = renderView(m.report, opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render lays out a batch report without attaching to a terminal.
func Render(report domain.BatchReport, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(report, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
