package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/bnema/stonesplit/internal/domain"
	"github.com/bnema/stonesplit/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	ReportPathKey    = "report.path"
	reportFileMode   = 0o644
	reportDirMode    = 0o755
	reportConfigDir  = ".stonesplit"
	reportConfigFile = "last-report.toml"
	tempFilePattern  = ".report-*.toml.tmp"
)

type ReportRepository struct {
	reportPath string
	mu         *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ReportRepository = (*ReportRepository)(nil)

// NewReportRepository resolves the report path from cfg, defaulting to
// ~/.stonesplit/last-report.toml.
func NewReportRepository(cfg *viper.Viper) (*ReportRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(ReportPathKey, filepath.Join(homeDir, reportConfigDir, reportConfigFile))

	reportPath := cfg.GetString(ReportPathKey)
	if reportPath == "" {
		return nil, errors.New("report path is empty")
	}
	reportPath, err = normalizeReportPath(reportPath)
	if err != nil {
		return nil, err
	}

	return &ReportRepository{reportPath: reportPath, mu: lockForPath(reportPath)}, nil
}

func (r *ReportRepository) Path() string {
	return r.reportPath
}

func (r *ReportRepository) Save(ctx context.Context, report domain.BatchReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeSchema(toSchema(report))
}

func (r *ReportRepository) Load(ctx context.Context) (domain.BatchReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.BatchReport{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.reportPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.BatchReport{}, fmt.Errorf("%w: %s", domain.ErrReportNotFound, r.reportPath)
		}
		return domain.BatchReport{}, fmt.Errorf("read report file: %w", err)
	}

	var file reportFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.BatchReport{}, fmt.Errorf("decode report file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return domain.BatchReport{}, err
	}
	file.applyDefaults()

	return fromSchema(file)
}

func normalizeReportPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve report path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *ReportRepository) writeSchema(file reportFileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.reportPath), reportDirMode); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode report file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.reportPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp report file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp report file: %w", err)
	}

	if err := tempFile.Chmod(reportFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp report file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp report file: %w", err)
	}

	if err := os.Rename(tempName, r.reportPath); err != nil {
		return fmt.Errorf("replace report file: %w", err)
	}

	cleanup = false
	return nil
}

func toSchema(report domain.BatchReport) reportFileSchema {
	results := make([]resultSchema, 0, len(report.Results))
	for _, result := range report.Results {
		results = append(results, resultSchema{
			InitialSize: result.Pile.InitialSize(),
			Divisors:    result.Pile.Divisors(),
			MaxSplits:   strconv.FormatUint(result.MaxSplits, 10),
			Mode:        string(result.Mode),
			Saturated:   result.Saturated,
		})
	}

	var rejections []rejectionSchema
	for _, rejection := range report.Rejections {
		rejections = append(rejections, rejectionSchema{
			Line:   rejection.Line,
			Raw:    rejection.Raw,
			Reason: rejection.Reason,
		})
	}

	return reportFileSchema{
		Version:     currentReportSchemaVersion,
		Source:      report.Source,
		StartedAt:   formatTime(report.StartedAt),
		FinishedAt:  formatTime(report.FinishedAt),
		FinalResult: report.FinalResult(),
		Results:     results,
		Rejections:  rejections,
	}
}

func fromSchema(file reportFileSchema) (domain.BatchReport, error) {
	results := make([]domain.SplitResult, 0, len(file.Results))
	for i, entry := range file.Results {
		pile, err := domain.NewPileSpec(entry.InitialSize, entry.Divisors)
		if err != nil {
			return domain.BatchReport{}, fmt.Errorf("decode report result %d: %w", i+1, err)
		}

		maxSplits, err := strconv.ParseUint(entry.MaxSplits, 10, 64)
		if err != nil {
			return domain.BatchReport{}, fmt.Errorf("decode report result %d: max_splits %q: %w", i+1, entry.MaxSplits, err)
		}

		results = append(results, domain.SplitResult{
			Pile:      pile,
			MaxSplits: maxSplits,
			Mode:      domain.Mode(entry.Mode),
			Saturated: entry.Saturated,
		})
	}

	var rejections []domain.Rejection
	for _, entry := range file.Rejections {
		rejections = append(rejections, domain.Rejection{
			Line:   entry.Line,
			Raw:    entry.Raw,
			Reason: entry.Reason,
		})
	}

	return domain.BatchReport{
		Source:     file.Source,
		Results:    results,
		Rejections: rejections,
		StartedAt:  parseTime(file.StartedAt),
		FinishedAt: parseTime(file.FinishedAt),
	}, nil
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
