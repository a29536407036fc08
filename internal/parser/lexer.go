package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/pawn-chess/pawn/internal/chess"
)

// Lexer tokenizes move scripts line by line.
type Lexer struct {
	scanner *bufio.Scanner
	lineNum int
	err     error
}

// NewLexer creates a lexer reading from r.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{scanner: bufio.NewScanner(r)}
}

// NextToken returns the next move or error token, skipping blank and
// comment-only lines. At end of input it returns an EOFToken.
func (l *Lexer) NextToken() *Token {
	for l.scanner.Scan() {
		l.lineNum++
		text := stripComment(l.scanner.Text())
		if text == "" {
			continue
		}

		tok := &Token{Text: text, Line: l.lineNum}
		move, err := chess.ParseMove(text)
		if err != nil {
			tok.Type = ErrorToken
			tok.Err = err
			return tok
		}
		tok.Type = MoveToken
		tok.Move = move
		return tok
	}

	if err := l.scanner.Err(); err != nil {
		l.err = err
		return &Token{Type: ErrorToken, Err: err, Line: l.lineNum}
	}
	return &Token{Type: EOFToken, Line: l.lineNum}
}

// LineNumber returns the number of the last line read.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}

// Err returns the read error that ended the input, if any.
func (l *Lexer) Err() error {
	return l.err
}

// stripComment removes a trailing comment and surrounding space.
func stripComment(line string) string {
	if i := strings.IndexByte(line, CommentChar); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
