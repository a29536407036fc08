package config

import (
	"fmt"

	"github.com/pawn-chess/pawn/internal/errors"
)

// FilterConfig selects which replayed scripts are written.
// All filters are disabled by default.
type FilterConfig struct {
	// Ending conditions; checkmate and stalemate may be combined
	MatchCheck     bool
	MatchCheckmate bool
	MatchStalemate bool

	// Ply bounds on the number of plies actually played
	CheckPlyBounds bool
	MinPly         int
	MaxPly         int

	// Positional criteria, tested against every position reached.
	// Material is a pattern like "KQ:kr"; Placements use rank patterns with
	// wildcards; Sequences are space-separated coordinate moves.
	Material         string
	ExactMaterial    bool
	Placements       []string
	InvertPlacements bool
	Sequences        []string

	// Negate inverts the match
	Negate bool
}

// NewFilterConfig creates a FilterConfig with default values.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Active reports whether any filter is set.
func (f *FilterConfig) Active() bool {
	return f.MatchCheck || f.MatchCheckmate || f.MatchStalemate || f.CheckPlyBounds ||
		f.Negate || f.Positional()
}

// Positional reports whether any positional criterion is set.
func (f *FilterConfig) Positional() bool {
	return f.Material != "" || len(f.Placements) > 0 || len(f.Sequences) > 0
}

// Validate checks that the filter configuration is valid.
func (f *FilterConfig) Validate() error {
	if !f.CheckPlyBounds {
		return nil
	}
	if f.MinPly < 0 || f.MaxPly < 0 {
		return fmt.Errorf("ply bounds (%d, %d) must not be negative: %w",
			f.MinPly, f.MaxPly, errors.ErrInvalidConfig)
	}
	if f.MaxPly > 0 && f.MinPly > f.MaxPly {
		return fmt.Errorf("min ply (%d) > max ply (%d): %w",
			f.MinPly, f.MaxPly, errors.ErrInvalidConfig)
	}
	return nil
}
