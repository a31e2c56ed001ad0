package ports

import (
	"context"

	"github.com/bnema/stonesplit/internal/domain"
)

type ReportRepository interface {
	Save(ctx context.Context, report domain.BatchReport) error
	Load(ctx context.Context) (domain.BatchReport, error)
}
