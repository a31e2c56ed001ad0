package toml

import "fmt"

const (
	currentBatchSchemaVersion  = 1
	currentReportSchemaVersion = 1
)

type batchFileSchema struct {
	Version int          `toml:"version"`
	Piles   []pileSchema `toml:"piles"`
}

func (s *batchFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentBatchSchemaVersion
	}
}

func (s batchFileSchema) validateVersion() error {
	if s.Version > currentBatchSchemaVersion {
		return fmt.Errorf("unsupported pile batch schema version %d (current %d)", s.Version, currentBatchSchemaVersion)
	}

	return nil
}

type pileSchema struct {
	Size     int64   `toml:"size"`
	Divisors []int64 `toml:"divisors"`
}

type reportFileSchema struct {
	Version     int               `toml:"version"`
	Source      string            `toml:"source"`
	StartedAt   string            `toml:"started_at"`
	FinishedAt  string            `toml:"finished_at"`
	FinalResult string            `toml:"final_result"`
	Results     []resultSchema    `toml:"results"`
	Rejections  []rejectionSchema `toml:"rejections,omitempty"`
}

func (s *reportFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentReportSchemaVersion
	}
}

func (s reportFileSchema) validateVersion() error {
	if s.Version > currentReportSchemaVersion {
		return fmt.Errorf("unsupported report schema version %d (current %d)", s.Version, currentReportSchemaVersion)
	}

	return nil
}

// resultSchema keeps max_splits as a decimal string: TOML integers are
// signed 64-bit and a saturated count can exceed that range.
type resultSchema struct {
	InitialSize int64   `toml:"initial_size"`
	Divisors    []int64 `toml:"divisors"`
	MaxSplits   string  `toml:"max_splits"`
	Mode        string  `toml:"mode"`
	Saturated   bool    `toml:"saturated"`
}

type rejectionSchema struct {
	Line   int    `toml:"line"`
	Raw    string `toml:"raw"`
	Reason string `toml:"reason"`
}
