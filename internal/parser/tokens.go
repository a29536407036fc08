// Package parser reads coordinate move scripts: one move per line, with
// blank lines and '#' comments ignored.
package parser

import "github.com/pawn-chess/pawn/internal/chess"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	EOFToken TokenType = iota
	MoveToken
	ErrorToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:   "EOF",
	MoveToken:  "MOVE",
	ErrorToken: "ERROR_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token is one significant script line.
type Token struct {
	Type TokenType

	// Text is the line with comments and surrounding space removed
	Text string

	// Move holds the parsed move of a MoveToken
	Move chess.Move

	// Err explains an ErrorToken
	Err error

	// Line for error reporting, 1-based
	Line int
}

// CommentChar starts a comment that runs to the end of the line.
const CommentChar = '#'
