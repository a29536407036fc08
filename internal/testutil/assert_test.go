package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/pawn-chess/pawn/internal/chess"
)

// These tests verify the assertion helpers on their success paths.
// Since we can't mock *testing.T, failure reporting is covered through
// formatMessage and splitOptions, which are internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, chess.W(chess.King), chess.W(chess.King), "piece %s", "king")
	AssertEqual(t, []chess.Position(nil), []chess.Position{}, cmpopts.EquateEmpty())
}

func TestAssertErrorHelpers_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertNoError(t, nil)
	AssertError(t, sentinel, "expected error from %s", "operation")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
}

func TestAssertStringAndBool_Success(t *testing.T) {
	AssertContains(t, "Move of White Pawn from e2 to e4", "e2 to e4")
	AssertNotContains(t, "Move of White Pawn from e2 to e4", "Capture")
	AssertTrue(t, chess.NumSquares == 64)
	AssertFalse(t, chess.Empty.IsTeam(chess.White))
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"move %s", "e2e4"}, "move e2e4"},
		{"format multiple", []interface{}{"%s %d", "ply", 3}, "ply 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestSplitOptions(t *testing.T) {
	opts, rest := splitOptions([]interface{}{"msg %d", cmpopts.EquateEmpty(), 7})
	if len(opts) != 1 {
		t.Errorf("len(opts) = %d, want 1", len(opts))
	}
	if diff := cmp.Diff([]interface{}{"msg %d", 7}, rest); diff != "" {
		t.Errorf("rest mismatch (-want +got):\n%s", diff)
	}
}
