package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/stonesplit/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// Summary hides the per-pile lines.
	Summary bool
	// MaxRows caps the per-pile lines; zero shows every pile.
	MaxRows int
	// Width wraps rejection reasons; zero leaves them on one line.
	Width int
}

func renderView(report domain.BatchReport, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Max Split Report"),
		s.header.Render(headerLine(report)),
	}

	if len(report.Results) == 0 {
		lines = append(lines, s.empty.Render("No valid piles in input."))
	} else if !opts.Summary {
		lines = append(lines, s.section.Render(renderResults(report.Results, opts.MaxRows, s)))
	}

	if len(report.Rejections) > 0 {
		lines = append(lines, s.section.Render(renderRejections(report.Rejections, opts.Width, s)))
	}

	lines = append(lines, s.section.Render(s.final.Render("Final Result: "+report.FinalResult())))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headerLine(report domain.BatchReport) string {
	parts := []string{
		fmt.Sprintf("piles: %d", len(report.Results)),
		fmt.Sprintf("rejected: %d", len(report.Rejections)),
	}
	if n := report.ApproximateCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("approximate: %d", n))
	}
	if n := report.SaturatedCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("saturated: %d", n))
	}
	if elapsed := elapsedLabel(report.StartedAt, report.FinishedAt); elapsed != "" {
		parts = append(parts, "elapsed: "+elapsed)
	}
	if report.Source != "" {
		parts = append(parts, "source: "+report.Source)
	}

	return strings.Join(parts, "  ")
}

func renderResults(results []domain.SplitResult, maxRows int, s styles) string {
	shown := results
	if maxRows > 0 && len(results) > maxRows {
		shown = results[:maxRows]
	}

	width := len(strconv.Itoa(len(results)))
	rows := make([]string, 0, len(shown)+1)
	for i, result := range shown {
		rows = append(rows, resultLine(i+1, width, result, s))
	}
	if hidden := len(results) - len(shown); hidden > 0 {
		rows = append(rows, s.empty.Render(fmt.Sprintf("... %d more piles", hidden)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func resultLine(index, width int, result domain.SplitResult, s styles) string {
	parts := []string{
		s.index.Render(fmt.Sprintf("#%-*d", width, index)),
		" ",
		s.pile.Render(pileLabel(result.Pile)),
		" -> ",
		s.count.Render(strconv.FormatUint(result.MaxSplits, 10)),
		" ",
		s.mode.Render("(" + result.Mode.Label() + ")"),
	}

	if result.Saturated {
		parts = append(parts, " ", s.warning.Render("[saturated]"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderRejections(rejections []domain.Rejection, width int, s styles) string {
	style := s.rejection
	if width > 0 {
		style = style.Width(width)
	}

	rows := []string{s.warning.Render(fmt.Sprintf("Rejected records (%d)", len(rejections)))}
	for _, rejection := range rejections {
		rows = append(rows, style.Render(fmt.Sprintf("line %d: %q: %s", rejection.Line, rejection.Raw, rejection.Reason)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func pileLabel(pile domain.PileSpec) string {
	divisors := pile.Divisors()
	parts := make([]string, 0, len(divisors))
	for _, d := range divisors {
		parts = append(parts, strconv.FormatInt(d, 10))
	}

	return fmt.Sprintf("%d [%s]", pile.InitialSize(), strings.Join(parts, ","))
}

func elapsedLabel(startedAt, finishedAt time.Time) string {
	if startedAt.IsZero() || finishedAt.IsZero() || finishedAt.Before(startedAt) {
		return ""
	}

	elapsed := finishedAt.Sub(startedAt)
	switch {
	case elapsed < time.Millisecond:
		return elapsed.String()
	case elapsed < time.Second:
		return elapsed.Round(time.Millisecond).String()
	default:
		return elapsed.Round(10 * time.Millisecond).String()
	}
}
