// Package hashing provides duplicate detection for replayed games.
package hashing

import (
	"github.com/pawn-chess/pawn/internal/engine"
)

// DuplicateDetector tracks seen final positions for duplicate game detection.
type DuplicateDetector struct {
	// hashTable stores seen hash codes
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires equal ply counts
	useExactMatch bool
	// maxCapacity bounds the number of stored signatures; 0 is unlimited
	maxCapacity    int
	stored         int
	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position and side to move
	Hash uint64
	// Plies is the number of half-moves played
	Plies int
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of a game's current position.
func Signature(game *engine.Game) GameSignature {
	board := game.Board()
	return GameSignature{
		Hash:     PositionHash(board, game.ToMove()),
		Plies:    game.Ply(),
		WeakHash: WeakHash(board),
	}
}

// CheckAndAdd checks if a game is a duplicate and adds it to the hash table.
// Returns true if the game is a duplicate. Once the detector is full, new
// signatures are checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(game *engine.Game) bool {
	if game == nil {
		return false
	}
	sig := Signature(game)

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
		d.stored++
	}
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.Plies != b.Plies {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.stored = 0
	d.duplicateCount = 0
}
