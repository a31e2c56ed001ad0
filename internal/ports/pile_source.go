package ports

import (
	"context"

	"github.com/bnema/stonesplit/internal/domain"
)

// PileSource reads every record of an input file. Malformed or invalid
// records come back as records with Err set; only file-level failures are
// returned as an error.
type PileSource interface {
	ReadPiles(ctx context.Context, path string) ([]domain.PileRecord, error)
}
