package lexer

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF     TokenType = iota // sentinel: end of input, returned forever once reached
	UNKNOWN                  // lexically invalid input

	// Structure
	LPAREN // (
	RPAREN // )
	QUOTE  // '

	// Literals
	ATOM    // identifier, operator name, keyword
	INTEGER // 123
	FLOAT   // 1.5
	BOOLEAN // #t #f
	CHAR    // #\c
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:     "EOF",
	UNKNOWN: "UNKNOWN",
	LPAREN:  "LPAREN",
	RPAREN:  "RPAREN",
	QUOTE:   "QUOTE",
	ATOM:    "ATOM",
	INTEGER: "INTEGER",
	FLOAT:   "FLOAT",
	BOOLEAN: "BOOLEAN",
	CHAR:    "CHAR",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Cursor.
// Only the payload field matching Type is meaningful.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Line   int    // 1-based source line
	Col    int    // 1-based column of the first rune

	Int   int64
	Float float64
	Bool  bool
	Char  rune
}

func (t Token) String() string {
	return fmt.Sprintf("%-8s %-12q  line %d:%d", t.Type, t.Lexeme, t.Line, t.Col)
}

// Err converts an UNKNOWN token into a positioned *Error. It returns nil for
// every other token type.
func (t Token) Err() error {
	if t.Type != UNKNOWN {
		return nil
	}
	return &Error{Line: t.Line, Col: t.Col, Lexeme: t.Lexeme}
}

// Error reports lexically invalid input.
type Error struct {
	Line   int
	Col    int
	Lexeme string
}

func (e *Error) Error() string {
	if e.Lexeme == "" {
		return fmt.Sprintf("lex error at %d:%d: unexpected end of input", e.Line, e.Col)
	}
	return fmt.Sprintf("lex error at %d:%d: invalid token %q", e.Line, e.Col, e.Lexeme)
}
