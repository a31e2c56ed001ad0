package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	reportadapter "github.com/bnema/stonesplit/internal/adapters/render/report"
	"github.com/bnema/stonesplit/internal/domain"
	"github.com/spf13/cobra"
)

type reportJSON struct {
	Source      string               `json:"source"`
	FinalResult string               `json:"final_result"`
	Results     []domain.SplitResult `json:"results"`
	Rejections  []rejectionJSON      `json:"rejections"`
	StartedAt   *time.Time           `json:"started_at,omitempty"`
	FinishedAt  *time.Time           `json:"finished_at,omitempty"`
}

type rejectionJSON struct {
	Line   int    `json:"line"`
	Raw    string `json:"raw"`
	Reason string `json:"reason"`
}

func writeReportOutput(cmd *cobra.Command, app *app, report domain.BatchReport, asJSON bool, opts reportadapter.RenderOptions) error {
	if asJSON {
		results := report.Results
		if results == nil {
			results = []domain.SplitResult{}
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(reportJSON{
			Source:      report.Source,
			FinalResult: report.FinalResult(),
			Results:     results,
			Rejections:  toRejectionsJSON(report.Rejections),
			StartedAt:   timePtr(report.StartedAt),
			FinishedAt:  timePtr(report.FinishedAt),
		})
	}

	rendered, err := app.reportRenderer(report, opts)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func toRejectionsJSON(rejections []domain.Rejection) []rejectionJSON {
	out := make([]rejectionJSON, 0, len(rejections))
	for _, rejection := range rejections {
		out = append(out, rejectionJSON{Line: rejection.Line, Raw: rejection.Raw, Reason: rejection.Reason})
	}
	return out
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
