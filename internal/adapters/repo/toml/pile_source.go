package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bnema/stonesplit/internal/domain"
	"github.com/bnema/stonesplit/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

// PileSource reads a TOML pile batch:
//
//	version = 1
//
//	[[piles]]
//	size = 6
//	divisors = [2, 3]
type PileSource struct{}

var _ ports.PileSource = PileSource{}

func (PileSource) ReadPiles(ctx context.Context, path string) ([]domain.PileRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("input file not found: %s", path)
		}
		return nil, fmt.Errorf("read pile batch file: %w", err)
	}

	var file batchFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode pile batch file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return nil, err
	}
	file.applyDefaults()

	records := make([]domain.PileRecord, 0, len(file.Piles))
	for i, entry := range file.Piles {
		pile, err := domain.NewPileSpec(entry.Size, entry.Divisors)
		records = append(records, domain.PileRecord{
			Line: i + 1,
			Raw:  formatRaw(entry.Size, entry.Divisors),
			Pile: pile,
			Err:  err,
		})
	}

	return records, nil
}

func formatRaw(size int64, divisors []int64) string {
	parts := make([]string, 0, len(divisors))
	for _, d := range divisors {
		parts = append(parts, strconv.FormatInt(d, 10))
	}
	return fmt.Sprintf("%d [%s]", size, strings.Join(parts, ","))
}
