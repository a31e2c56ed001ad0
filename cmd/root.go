package cmd

import (
	"github.com/bnema/stonesplit/internal/config"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "stonesplit",
		Short:         "stonesplit: maximum split counts for divisible piles",
		Long:          "stonesplit reads piles of indivisible units with their allowed divisors and computes, for each pile, the maximum number of split operations. Piles above the exactness threshold get a bounded approximation.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentFlags().StringVar(&app.configFile, "config", "", "Config file (default: ~/.stonesplit/config.toml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("report-path", "", "Saved report location (default: ~/.stonesplit/last-report.toml)")
	app.bindFlag(config.LogLevelKey, rootCmd.PersistentFlags().Lookup("log-level"))
	app.bindFlag(reportPathKey, rootCmd.PersistentFlags().Lookup("report-path"))

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return app.prepare(cmd)
	}
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		app.close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSplitCmd(app),
		newCheckCmd(app),
		newReportCmd(app),
	)

	return rootCmd
}
