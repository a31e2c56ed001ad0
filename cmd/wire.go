package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/bnema/stonesplit/internal/adapters/input/text"
	reportadapter "github.com/bnema/stonesplit/internal/adapters/render/report"
	tomlrepo "github.com/bnema/stonesplit/internal/adapters/repo/toml"
	"github.com/bnema/stonesplit/internal/application"
	"github.com/bnema/stonesplit/internal/config"
	"github.com/bnema/stonesplit/internal/domain"
	"github.com/bnema/stonesplit/internal/logging"
	"github.com/bnema/stonesplit/internal/ports"
	"github.com/bnema/stonesplit/internal/splitsearch"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const reportPathKey = tomlrepo.ReportPathKey

type app struct {
	cfg        *viper.Viper
	configFile string
	bindErr    error

	settings config.Config
	logger   *slog.Logger
	closeLog func()
	reports  ports.ReportRepository

	reportRenderer func(domain.BatchReport, reportadapter.RenderOptions) (string, error)
	newEngine      func(...splitsearch.Option) (ports.SplitEngine, error)
	clock          ports.Clock
}

func wireApp() (*app, error) {
	return &app{
		cfg:            viper.New(),
		logger:         slog.New(slog.DiscardHandler),
		reportRenderer: reportadapter.Render,
		newEngine: func(opts ...splitsearch.Option) (ports.SplitEngine, error) {
			return splitsearch.New(opts...)
		},
		clock: ports.SystemClock{},
	}, nil
}

func (a *app) bindFlag(key string, flag *pflag.Flag) {
	if err := a.cfg.BindPFlag(key, flag); err != nil && a.bindErr == nil {
		a.bindErr = fmt.Errorf("bind flag %s: %w", flag.Name, err)
	}
}

// prepare loads configuration after flag parsing so flags take precedence
// over the config file and environment.
func (a *app) prepare(cmd *cobra.Command) error {
	if a.bindErr != nil {
		return a.bindErr
	}
	if a.configFile != "" {
		a.cfg.SetConfigFile(a.configFile)
	}

	settings, err := config.Load(a.cfg)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.settings = settings

	level, err := logging.ParseLevel(settings.Log.Level)
	if err != nil {
		return err
	}
	if settings.Log.File != "" {
		logger, cleanup, err := logging.SetupWithFile(cmd.ErrOrStderr(), settings.Log.File, level)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logger, a.closeLog = logger, cleanup
	} else {
		a.logger = logging.Setup(cmd.ErrOrStderr(), level)
	}

	reports, err := tomlrepo.NewReportRepository(a.cfg)
	if err != nil {
		return fmt.Errorf("wire report repository: %w", err)
	}
	a.reports = reports

	return nil
}

func (a *app) close() {
	if a.closeLog != nil {
		a.closeLog()
		a.closeLog = nil
	}
}

func (a *app) service(source ports.PileSource, engine ports.SplitEngine, reports ports.ReportRepository) *application.Service {
	return application.NewService(source, engine, reports, a.clock, a.logger)
}

func (a *app) inputPath(args []string) string {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0]
	}
	return a.settings.InputPath
}

func sourceFor(path string) ports.PileSource {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return tomlrepo.PileSource{}
	}
	return text.Reader{}
}
