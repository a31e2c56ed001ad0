package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bnema/stonesplit/internal/domain"
	"github.com/bnema/stonesplit/internal/ports"
)

var ErrNoReportRepository = errors.New("no report repository configured")

type Service struct {
	source  ports.PileSource
	engine  ports.SplitEngine
	reports ports.ReportRepository
	clock   ports.Clock
	logger  *slog.Logger
}

// NewService wires a batch service. reports may be nil when results are not
// persisted.
func NewService(source ports.PileSource, engine ports.SplitEngine, reports ports.ReportRepository, clock ports.Clock, logger *slog.Logger) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Service{
		source:  source,
		engine:  engine,
		reports: reports,
		clock:   clock,
		logger:  logger,
	}
}

// Run reads every record, skips the invalid ones, computes the rest and
// returns the report. Engine failures abort the run.
func (s *Service) Run(ctx context.Context, cmd RunCommand) (domain.BatchReport, error) {
	startedAt := s.clock.Now()

	records, err := s.source.ReadPiles(ctx, cmd.InputPath)
	if err != nil {
		return domain.BatchReport{}, fmt.Errorf("read piles: %w", err)
	}

	piles, rejections := s.partition(records)
	s.logger.Info("computing piles", "source", cmd.InputPath, "piles", len(piles), "rejected", len(rejections))

	results, err := s.engine.ComputeResults(ctx, piles)
	if err != nil {
		return domain.BatchReport{}, fmt.Errorf("compute piles: %w", err)
	}
	if len(results) != len(piles) {
		return domain.BatchReport{}, fmt.Errorf("compute piles: got %d results for %d piles", len(results), len(piles))
	}

	for i, result := range results {
		if result.Mode == domain.ModeApproximate {
			s.logger.Debug("pile above exactness threshold", "index", i+1, "size", result.Pile.InitialSize(), "max_splits", result.MaxSplits)
		}
		if result.Saturated {
			s.logger.Warn("split count saturated", "index", i+1, "size", result.Pile.InitialSize(), "ceiling", result.MaxSplits)
		}
	}

	report := domain.BatchReport{
		Source:     cmd.InputPath,
		Results:    results,
		Rejections: rejections,
		StartedAt:  startedAt,
		FinishedAt: s.clock.Now(),
	}

	s.logger.Info("computation complete", "source", cmd.InputPath, "results", len(results), "elapsed", report.FinishedAt.Sub(startedAt))

	if s.reports != nil {
		if err := s.reports.Save(ctx, report); err != nil {
			return report, fmt.Errorf("save report: %w", err)
		}
	}

	return report, nil
}

func (s *Service) Check(ctx context.Context, cmd CheckCommand) (CheckResult, error) {
	records, err := s.source.ReadPiles(ctx, cmd.InputPath)
	if err != nil {
		return CheckResult{}, fmt.Errorf("read piles: %w", err)
	}

	piles, rejections := s.partition(records)

	return CheckResult{
		Source:     cmd.InputPath,
		Valid:      piles,
		Rejections: rejections,
	}, nil
}

func (s *Service) LoadReport(ctx context.Context) (domain.BatchReport, error) {
	if s.reports == nil {
		return domain.BatchReport{}, ErrNoReportRepository
	}

	report, err := s.reports.Load(ctx)
	if err != nil {
		return domain.BatchReport{}, fmt.Errorf("load report: %w", err)
	}

	return report, nil
}

func (s *Service) partition(records []domain.PileRecord) ([]domain.PileSpec, []domain.Rejection) {
	piles := make([]domain.PileSpec, 0, len(records))
	var rejections []domain.Rejection

	for _, record := range records {
		if record.Err != nil {
			s.logger.Warn("skipping invalid record", "line", record.Line, "raw", record.Raw, "error", record.Err)
			rejections = append(rejections, domain.Rejection{
				Line:   record.Line,
				Raw:    record.Raw,
				Reason: record.Err.Error(),
			})
			continue
		}
		piles = append(piles, record.Pile)
	}

	return piles, rejections
}
