package parser

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pawn-chess/pawn/internal/chess"
	"github.com/pawn-chess/pawn/internal/errors"
	"github.com/pawn-chess/pawn/internal/testutil"
)

// parseTestScript is a helper that parses a script and fails on error.
func parseTestScript(t *testing.T, text string) *Script {
	t.Helper()
	script, err := ParseString("test.txt", text)
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}
	return script
}

func moveTexts(s *Script) []string {
	var out []string
	for _, m := range s.Moves {
		out = append(out, m.Move.String())
	}
	return out
}

func TestParseSimpleScript(t *testing.T) {
	script := parseTestScript(t, "e2e4\ne7e5\ng1f3\n")

	testutil.AssertEqual(t, script.Name, "test.txt")
	testutil.AssertEqual(t, script.Len(), 3)
	testutil.AssertEqual(t, moveTexts(script), []string{"e2e4", "e7e5", "g1f3"})
	testutil.AssertEqual(t, script.Moves[0].Move, chess.NewMove(testutil.Sq("e2"), testutil.Sq("e4")))
}

func TestParseCommentsAndBlankLines(t *testing.T) {
	text := `# Fool's mate
f2f3

e7e5   # open the diagonal
  g2-g4
d8 h4
`
	script := parseTestScript(t, text)

	testutil.AssertEqual(t, moveTexts(script), []string{"f2f3", "e7e5", "g2g4", "d8h4"})

	var lines []int
	for _, m := range script.Moves {
		lines = append(lines, m.Line)
	}
	testutil.AssertEqual(t, lines, []int{2, 4, 5, 6})
	testutil.AssertEqual(t, script.Moves[1].Text, "e7e5")
	testutil.AssertEqual(t, script.Moves[2].Text, "g2-g4")
}

func TestParseEmptyScript(t *testing.T) {
	for _, text := range []string{"", "\n\n", "# nothing but comments\n#\n"} {
		script := parseTestScript(t, text)
		testutil.AssertEqual(t, script.Len(), 0, "script %q", text)
	}
}

func TestParseMalformedLine(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantLine int
		wantPly  int
		wantMove string
	}{
		{"off-board rank", "e2e4\n\ne7e9\n", 3, 2, "e7e9"},
		{"too short", "e2\n", 1, 1, "e2"},
		{"notation", "e2e4\nNf6\n", 2, 2, "Nf6"},
		{"trailing comment stripped", "e2e4 junk # note\n", 1, 1, "e2e4 junk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString("bad.txt", tt.text)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidPosition)

			var moveErr *errors.MoveError
			if !stderrors.As(err, &moveErr) {
				t.Fatalf("error %v is not a *MoveError", err)
			}
			testutil.AssertEqual(t, moveErr.File, "bad.txt")
			testutil.AssertEqual(t, moveErr.Line, tt.wantLine)
			testutil.AssertEqual(t, moveErr.Ply, tt.wantPly)
			testutil.AssertEqual(t, moveErr.Move, tt.wantMove)
		})
	}
}

func TestLexerTokens(t *testing.T) {
	lexer := NewLexer(strings.NewReader("# header\ne2e4\nxx\n"))

	tok := lexer.NextToken()
	testutil.AssertEqual(t, tok.Type, MoveToken)
	testutil.AssertEqual(t, tok.Line, 2)

	tok = lexer.NextToken()
	testutil.AssertEqual(t, tok.Type, ErrorToken)
	testutil.AssertEqual(t, tok.Text, "xx")
	testutil.AssertError(t, tok.Err)

	tok = lexer.NextToken()
	testutil.AssertEqual(t, tok.Type, EOFToken)
	testutil.AssertEqual(t, lexer.LineNumber(), 3)
	testutil.AssertNoError(t, lexer.Err())
}

func TestTokenTypeString(t *testing.T) {
	testutil.AssertEqual(t, EOFToken.String(), "EOF")
	testutil.AssertEqual(t, MoveToken.String(), "MOVE")
	testutil.AssertEqual(t, ErrorToken.String(), "ERROR_TOKEN")
	testutil.AssertEqual(t, TokenType(99).String(), "UNKNOWN")
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.txt")
	if err := os.WriteFile(path, []byte("e2e4\ne7e5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	script, err := ParseFile(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, script.Name, path)
	testutil.AssertEqual(t, script.Len(), 2)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	testutil.AssertErrorIs(t, err, os.ErrNotExist)
}
