package domain

import "encoding/json"

type Mode string

const (
	ModeExact       Mode = "exact"
	ModeApproximate Mode = "approximate"
)

func (m Mode) Label() string {
	switch m {
	case ModeExact:
		return "Exact"
	case ModeApproximate:
		return "Approximate"
	default:
		return string(m)
	}
}

type SplitResult struct {
	Pile      PileSpec
	MaxSplits uint64
	Mode      Mode
	// Saturated marks MaxSplits as a ceiling: the true count is at least this large.
	Saturated bool
}

func (r SplitResult) IsExact() bool {
	return r.Mode == ModeExact && !r.Saturated
}

type splitResultJSON struct {
	InitialSize int64   `json:"initial_size"`
	Divisors    []int64 `json:"divisors"`
	MaxSplits   uint64  `json:"max_splits"`
	Mode        Mode    `json:"mode"`
	Saturated   bool    `json:"saturated"`
}

func (r SplitResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(splitResultJSON{
		InitialSize: r.Pile.InitialSize(),
		Divisors:    r.Pile.Divisors(),
		MaxSplits:   r.MaxSplits,
		Mode:        r.Mode,
		Saturated:   r.Saturated,
	})
}
