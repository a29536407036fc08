package matching

import (
	"strings"

	"github.com/pawn-chess/pawn/internal/chess"
	"github.com/pawn-chess/pawn/internal/processing"
)

// PlacementPattern is a board pattern, rank 8 first, ranks separated by '/'.
// Supports wildcards:
//   - ? matches any square (empty or occupied)
//   - ! matches any non-empty square
//   - * matches zero or more of anything
//   - A matches any white piece
//   - a matches any black piece
//   - _ matches empty square
//   - 1-8 match that many empty squares
//
// Piece letters match exactly. Missing trailing ranks match anything.
type PlacementPattern struct {
	Pattern string
	Label   string // optional label for matched position
	ranks   []string
}

// PositionMatcher provides position-based game filtering.
type PositionMatcher struct {
	patterns []*PlacementPattern
}

// NewPositionMatcher creates a new position matcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{}
}

// AddPattern adds a placement pattern. With includeInvert the colour
// inverted pattern is added too.
func (pm *PositionMatcher) AddPattern(pattern, label string, includeInvert bool) {
	pm.patterns = append(pm.patterns, &PlacementPattern{
		Pattern: pattern,
		Label:   label,
		ranks:   strings.Split(pattern, "/"),
	})

	if includeInvert {
		inverted := invertPattern(pattern)
		pm.patterns = append(pm.patterns, &PlacementPattern{
			Pattern: inverted,
			Label:   label,
			ranks:   strings.Split(inverted, "/"),
		})
	}
}

// MatchGame returns the first pattern matched by any position the replay
// reached, or nil.
func (pm *PositionMatcher) MatchGame(r *processing.ReplayResult) *PlacementPattern {
	if len(pm.patterns) == 0 {
		return nil
	}
	var found *PlacementPattern
	anyPosition(r, func(board *chess.Board) bool {
		found = pm.MatchBoard(board)
		return found != nil
	})
	return found
}

// Match implements GameMatcher.
func (pm *PositionMatcher) Match(r *processing.ReplayResult) bool {
	return pm.MatchGame(r) != nil
}

// Name implements GameMatcher.
func (pm *PositionMatcher) Name() string {
	return "PositionMatcher"
}

// MatchBoard returns the first pattern the board matches, or nil.
func (pm *PositionMatcher) MatchBoard(board *chess.Board) *PlacementPattern {
	boardRanks := boardToRanks(board)
	for _, pattern := range pm.patterns {
		if matchPattern(boardRanks, pattern) {
			return pattern
		}
	}
	return nil
}

// PatternCount returns the number of patterns.
func (pm *PositionMatcher) PatternCount() int {
	return len(pm.patterns)
}

func matchPattern(boardRanks [8]string, pattern *PlacementPattern) bool {
	if len(pattern.ranks) == 0 {
		return false
	}
	for i, patternRank := range pattern.ranks {
		if i >= 8 {
			break
		}
		if !matchRank(boardRanks[7-i], patternRank) {
			return false
		}
	}
	return true
}

// boardToRanks converts a board to rank strings (rank 1 first).
func boardToRanks(board *chess.Board) [8]string {
	var ranks [8]string
	for r := chess.Rank(1); r <= 8; r++ {
		var sb strings.Builder
		for f := chess.File('a'); f <= 'h'; f++ {
			sb.WriteByte(pieceToChar(board.PieceAt(chess.NewPosition(f, r))))
		}
		ranks[r-1] = sb.String()
	}
	return ranks
}

func pieceToChar(piece chess.Piece) byte {
	if piece.IsEmpty() {
		return '_'
	}
	return piece.Letter()
}

// matchRank matches a board rank string against a pattern rank.
func matchRank(boardRank, patternRank string) bool {
	bi := 0 // board index
	pi := 0 // pattern index

	for pi < len(patternRank) {
		if bi >= len(boardRank) && patternRank[pi] != '*' {
			return false
		}

		c := patternRank[pi]

		switch c {
		case '*':
			pi++
			if pi >= len(patternRank) {
				return true // * at end matches rest
			}
			// Try matching rest of pattern at each position
			for bi <= len(boardRank) {
				if matchRank(boardRank[bi:], patternRank[pi:]) {
					return true
				}
				bi++
			}
			return false

		case '?':
			bi++
			pi++

		case '!':
			if boardRank[bi] == '_' {
				return false
			}
			bi++
			pi++

		case 'A':
			if boardRank[bi] < 'A' || boardRank[bi] > 'Z' {
				return false
			}
			bi++
			pi++

		case 'a':
			if boardRank[bi] < 'a' || boardRank[bi] > 'z' {
				return false
			}
			bi++
			pi++

		case '1', '2', '3', '4', '5', '6', '7', '8':
			count := int(c - '0')
			for i := 0; i < count; i++ {
				if bi >= len(boardRank) || boardRank[bi] != '_' {
					return false
				}
				bi++
			}
			pi++

		default:
			// Exact piece match, '_' included
			if boardRank[bi] != c {
				return false
			}
			bi++
			pi++
		}
	}

	return bi == len(boardRank)
}

// invertPattern swaps colours and reverses the rank order.
func invertPattern(pattern string) string {
	var result strings.Builder
	for _, c := range pattern {
		switch {
		case c >= 'A' && c <= 'Z':
			result.WriteRune(c + 32)
		case c >= 'a' && c <= 'z':
			result.WriteRune(c - 32)
		default:
			result.WriteRune(c)
		}
	}

	ranks := strings.Split(result.String(), "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	return strings.Join(ranks, "/")
}
