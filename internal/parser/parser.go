package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pawn-chess/pawn/internal/chess"
	"github.com/pawn-chess/pawn/internal/errors"
)

// ScriptMove is one move of a script with its source line.
type ScriptMove struct {
	Move chess.Move
	Line int
	Text string
}

// Script is a named sequence of moves to replay from the initial position.
type Script struct {
	Name  string
	Moves []ScriptMove
}

// Len returns the number of moves in the script.
func (s *Script) Len() int {
	return len(s.Moves)
}

// Parser builds Scripts from lexer tokens.
type Parser struct {
	lexer *Lexer
	name  string
}

// NewParser creates a new parser for the given reader.
// The name is used in error messages and results.
func NewParser(r io.Reader, name string) *Parser {
	return &Parser{
		lexer: NewLexer(r),
		name:  name,
	}
}

// ParseScript reads the whole input. A malformed line fails the parse
// with a *errors.MoveError naming the file, line and offending text.
func (p *Parser) ParseScript() (*Script, error) {
	script := &Script{Name: p.name}

	for {
		tok := p.lexer.NextToken()
		switch tok.Type {
		case EOFToken:
			return script, nil
		case ErrorToken:
			if p.lexer.Err() != nil {
				return nil, errors.Wrapf(tok.Err, "reading %s", p.name)
			}
			return nil, &errors.MoveError{
				Err:  tok.Err,
				File: p.name,
				Line: tok.Line,
				Ply:  script.Len() + 1,
				Move: tok.Text,
			}
		case MoveToken:
			script.Moves = append(script.Moves, ScriptMove{Move: tok.Move, Line: tok.Line, Text: tok.Text})
		}
	}
}

// ParseString parses a script held in memory.
func ParseString(name, text string) (*Script, error) {
	return NewParser(strings.NewReader(text), name).ParseScript()
}

// ParseFile opens and parses the named script file.
func ParseFile(path string) (*Script, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer file.Close() //nolint:errcheck // read-only file

	return NewParser(file, path).ParseScript()
}
