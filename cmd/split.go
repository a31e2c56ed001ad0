package cmd

import (
	"context"

	reportadapter "github.com/bnema/stonesplit/internal/adapters/render/report"
	"github.com/bnema/stonesplit/internal/application"
	"github.com/bnema/stonesplit/internal/config"
	"github.com/bnema/stonesplit/internal/domain"
	"github.com/bnema/stonesplit/internal/ports"
	"github.com/bnema/stonesplit/internal/splitsearch"
	"github.com/spf13/cobra"
)

func newSplitCmd(app *app) *cobra.Command {
	var asJSON bool
	var summary bool
	var maxRows int
	var quiet bool
	var save bool
	var noSingleton bool

	cmd := &cobra.Command{
		Use:   "split [input-file]",
		Short: "Compute the maximum split count for every pile in a file",
		Long:  "Reads 'size [d1,d2,...]' lines (or a .toml batch) and prints the maximum number of splits per pile followed by the concatenated Final Result. Defaults to Input/input.txt.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engineCfg := app.settings.Engine
			if noSingleton {
				engineCfg.DivisorRule = splitsearch.RuleExclude
			}

			engine, err := app.newEngine(engineCfg.Options()...)
			if err != nil {
				return err
			}

			var reports ports.ReportRepository
			if save {
				reports = app.reports
			}

			path := app.inputPath(args)
			svc := app.service(sourceFor(path), engine, reports)
			runCmd := application.RunCommand{InputPath: path}

			compute := func(ctx context.Context) (domain.BatchReport, error) {
				return svc.Run(ctx, runCmd)
			}

			var report domain.BatchReport
			if asJSON || quiet {
				report, err = compute(cmd.Context())
			} else {
				report, err = runBatchSpinner(cmd.Context(), cmd.ErrOrStderr(), path, compute)
			}
			if err != nil {
				return err
			}

			return writeReportOutput(cmd, app, report, asJSON, reportadapter.RenderOptions{Summary: summary, MaxRows: maxRows})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&summary, "summary", false, "Hide per-pile lines")
	cmd.Flags().IntVar(&maxRows, "max-rows", 0, "Show at most this many pile lines (0: all)")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Do not show the progress spinner")
	cmd.Flags().BoolVar(&save, "save", false, "Save the report to the report path")
	cmd.Flags().BoolVar(&noSingleton, "no-singleton", false, "Shorthand for --divisor-rule exclude")
	cmd.Flags().String("divisor-rule", "", "When splitting into piles of size 1 counts: implicit, listed or exclude")
	cmd.Flags().Int64("threshold", 0, "Largest pile size searched exactly")
	cmd.Flags().Int("iteration-cap", 0, "Maximum greedy steps above the threshold")
	cmd.Flags().Int("workers", 0, "Piles computed in parallel (default: one per CPU)")
	cmd.Flags().String("ceiling", "", "Split count ceiling: max, legacy or a number")

	app.bindFlag(config.ExactnessThresholdKey, cmd.Flags().Lookup("threshold"))
	app.bindFlag(config.IterationCapKey, cmd.Flags().Lookup("iteration-cap"))
	app.bindFlag(config.DivisorRuleKey, cmd.Flags().Lookup("divisor-rule"))
	app.bindFlag(config.WorkersKey, cmd.Flags().Lookup("workers"))
	app.bindFlag(config.SplitCeilingKey, cmd.Flags().Lookup("ceiling"))

	return cmd
}
