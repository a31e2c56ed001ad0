package cmd

import (
	reportadapter "github.com/bnema/stonesplit/internal/adapters/render/report"
	"github.com/spf13/cobra"
)

func newReportCmd(app *app) *cobra.Command {
	var asJSON bool
	var summary bool
	var maxRows int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the last saved split report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := app.service(nil, nil, app.reports).LoadReport(cmd.Context())
			if err != nil {
				return err
			}

			return writeReportOutput(cmd, app, report, asJSON, reportadapter.RenderOptions{Summary: summary, MaxRows: maxRows})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&summary, "summary", false, "Hide per-pile lines")
	cmd.Flags().IntVar(&maxRows, "max-rows", 0, "Show at most this many pile lines (0: all)")

	return cmd
}
