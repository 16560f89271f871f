// Package lexer turns Scheme source text into a lazy stream of tokens.
//
// A Cursor hands out one token per NextToken call. Invalid input never stops
// the cursor: it produces an UNKNOWN token and the consumer decides how hard
// to fail.
package lexer

import (
	"strconv"
	"unicode"
)

// Cursor holds all mutable state for a single scanning pass over src.
type Cursor struct {
	src  []rune
	pos  int // index of the next rune to consume
	line int // current 1-based source line
	col  int // current 1-based column

	// structural enables parentheses, quote marks and atoms. A literal-only
	// cursor reports all of those as UNKNOWN.
	structural bool
}

// NewCursor returns a cursor that recognises the full token set.
func NewCursor(src string) *Cursor {
	return &Cursor{src: []rune(src), line: 1, col: 1, structural: true}
}

// NewLiteralCursor returns a cursor that only recognises literal tokens.
// The code generator drives one of these directly, without a parser.
func NewLiteralCursor(src string) *Cursor {
	c := NewCursor(src)
	c.structural = false
	return c
}

// peek returns the rune at the current position without advancing.
func (c *Cursor) peek() rune {
	if c.pos >= len(c.src) {
		return 0
	}
	return c.src[c.pos]
}

// advance consumes one rune and returns it.
func (c *Cursor) advance() rune {
	if c.pos >= len(c.src) {
		return 0
	}
	r := c.src[c.pos]
	c.pos++
	if r == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return r
}

func (c *Cursor) atEOF() bool {
	return c.pos >= len(c.src)
}

// atDelimiter reports whether a literal may end at the current position.
func (c *Cursor) atDelimiter() bool {
	if c.atEOF() {
		return true
	}
	r := c.peek()
	return unicode.IsSpace(r) || r == ')'
}

func (c *Cursor) skipWhitespace() {
	for !c.atEOF() && unicode.IsSpace(c.peek()) {
		c.advance()
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// scanDigits consumes a maximal run of ASCII digits.
func (c *Cursor) scanDigits() {
	for !c.atEOF() && isDigit(c.peek()) {
		c.advance()
	}
}

// unknown consumes the rest of the current lexeme (at least one rune) and
// returns it as an UNKNOWN token starting at start.
func (c *Cursor) unknown(tok Token, start int) Token {
	if c.pos == start {
		c.advance()
	}
	for !c.atDelimiter() {
		c.advance()
	}
	tok.Type = UNKNOWN
	tok.Lexeme = string(c.src[start:c.pos])
	return tok
}

// scanNumber collects an integer or floating-point literal.
// The first digit must still be at c.peek().
func (c *Cursor) scanNumber(tok Token) Token {
	start := c.pos
	c.scanDigits()

	if c.peek() == '.' {
		c.advance()
		c.scanDigits()
		if !c.atDelimiter() {
			return c.unknown(tok, start)
		}
		lexeme := string(c.src[start:c.pos])
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			tok.Type, tok.Lexeme = UNKNOWN, lexeme
			return tok
		}
		tok.Type, tok.Lexeme, tok.Float = FLOAT, lexeme, f
		return tok
	}

	if !c.atDelimiter() {
		return c.unknown(tok, start)
	}
	lexeme := string(c.src[start:c.pos])
	i, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		// out of int64 range
		tok.Type, tok.Lexeme = UNKNOWN, lexeme
		return tok
	}
	tok.Type, tok.Lexeme, tok.Int = INTEGER, lexeme, i
	return tok
}

// scanHash collects #t, #f and #\c literals. The '#' is still at c.peek().
func (c *Cursor) scanHash(tok Token) Token {
	start := c.pos
	c.advance() // #
	if c.atEOF() {
		tok.Type, tok.Lexeme = UNKNOWN, "#"
		return tok
	}

	switch c.advance() {
	case 't':
		tok.Type, tok.Bool = BOOLEAN, true
	case 'f':
		tok.Type, tok.Bool = BOOLEAN, false
	case '\\':
		if c.atEOF() {
			tok.Type, tok.Lexeme = UNKNOWN, string(c.src[start:c.pos])
			return tok
		}
		r := c.advance()
		if !c.atDelimiter() {
			return c.unknown(tok, start)
		}
		tok.Type, tok.Char = CHAR, r
	default:
		return c.unknown(tok, start)
	}
	tok.Lexeme = string(c.src[start:c.pos])
	return tok
}

// scanAtom collects a maximal run of non-whitespace characters up to a ')'.
func (c *Cursor) scanAtom(tok Token) Token {
	start := c.pos
	for !c.atEOF() {
		r := c.peek()
		if unicode.IsSpace(r) || r == ')' {
			break
		}
		c.advance()
	}
	tok.Type = ATOM
	tok.Lexeme = string(c.src[start:c.pos])
	return tok
}

// NextToken skips whitespace and returns the next Token. Once the input is
// exhausted every further call returns an EOF token.
func (c *Cursor) NextToken() Token {
	c.skipWhitespace()

	tok := Token{Line: c.line, Col: c.col}
	if c.atEOF() {
		tok.Type = EOF
		return tok
	}

	ch := c.peek()
	if isDigit(ch) {
		return c.scanNumber(tok)
	}
	if ch == '#' {
		return c.scanHash(tok)
	}

	if !c.structural {
		return c.unknown(tok, c.pos)
	}

	switch ch {
	case '(':
		c.advance()
		tok.Type, tok.Lexeme = LPAREN, "("
		return tok
	case ')':
		c.advance()
		tok.Type, tok.Lexeme = RPAREN, ")"
		return tok
	case '\'':
		c.advance()
		tok.Type, tok.Lexeme = QUOTE, "'"
		return tok
	}
	return c.scanAtom(tok)
}

// Lex tokenises src with a structural cursor and returns all tokens
// including the final EOF token.
func Lex(src string) []Token {
	c := NewCursor(src)
	var tokens []Token
	for {
		tok := c.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}
