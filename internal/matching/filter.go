package matching

import (
	"github.com/pawn-chess/pawn/internal/config"
	"github.com/pawn-chess/pawn/internal/processing"
)

// GameFilter applies a FilterConfig to replay results, positional
// criteria included.
type GameFilter struct {
	cfg        *config.FilterConfig
	positional *CompositeMatcher
}

// NewGameFilter builds the matchers named by the filter configuration.
func NewGameFilter(cfg *config.FilterConfig) (*GameFilter, error) {
	gf := &GameFilter{cfg: cfg, positional: NewCompositeMatcher(MatchAll)}
	if cfg == nil {
		return gf, nil
	}

	if cfg.Material != "" {
		gf.positional.Add(NewMaterialMatcher(cfg.Material, cfg.ExactMaterial))
	}
	if len(cfg.Placements) > 0 {
		pm := NewPositionMatcher()
		for _, p := range cfg.Placements {
			pm.AddPattern(p, "", cfg.InvertPlacements)
		}
		gf.positional.Add(pm)
	}
	if len(cfg.Sequences) > 0 {
		vm := NewVariationMatcher()
		for _, s := range cfg.Sequences {
			if err := vm.AddSequence(s); err != nil {
				return nil, err
			}
		}
		gf.positional.Add(vm)
	}
	return gf, nil
}

// Match reports whether the result passes every criterion, with negation
// applied last. Failed replays never match.
func (gf *GameFilter) Match(r *processing.ReplayResult) bool {
	if !r.Valid() {
		return false
	}
	if gf.cfg == nil || !gf.cfg.Active() {
		return true
	}
	matched := processing.MatchesCriteria(r, gf.cfg) && gf.positional.Match(r)
	return matched != gf.cfg.Negate
}

// Name implements GameMatcher.
func (gf *GameFilter) Name() string {
	return "GameFilter(" + gf.positional.Name() + ")"
}
