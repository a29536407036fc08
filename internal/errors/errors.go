// Package errors provides sentinel errors and error types for the pawn engine.
// It defines the ways a move can be declined and structured error types that
// preserve context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for move legality and engine misuse.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrEmptySource indicates a move attempted from a square with no piece.
	ErrEmptySource = errors.New("no piece on source square")

	// ErrBlocked indicates the destination is unreachable under the piece's
	// movement geometry, or the path to it is obstructed.
	ErrBlocked = errors.New("move blocked")

	// ErrFriendlyCapture indicates the destination holds a piece of the mover's team.
	ErrFriendlyCapture = errors.New("destination occupied by own piece")

	// ErrSelfCheck indicates the move would leave the mover's king in check.
	ErrSelfCheck = errors.New("move leaves king in check")

	// ErrInvalidOperation indicates a structurally impossible request.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInvalidPosition indicates a coordinate that is not on the board.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrOutOfTurn indicates a piece was moved while the other team is to move.
	ErrOutOfTurn = errors.New("not this team's turn")

	// ErrGameOver indicates a move was submitted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with replay context: where the move came from and
// which ply it was. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	File string // Source script name (if known)
	Line int    // Line number in source script (if known)
	Ply  int    // 1-based ply number (0 if not applicable)
	Move string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	}

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
