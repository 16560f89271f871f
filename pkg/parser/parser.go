// Package parser builds symbolic-expression trees from a lexer.Cursor.
package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"goscheme/pkg/lexer"
)

// ErrNotImplemented marks literal kinds the lexer accepts but Value cannot
// represent yet (floats and characters).
var ErrNotImplemented = errors.New("not implemented")

// MaxNestingDepth bounds how deeply lists and quotes may nest. Deeper input
// fails with ErrTooDeep instead of overflowing the Go stack.
const MaxNestingDepth = 10000

// ErrTooDeep is wrapped by the *Error for input nested past MaxNestingDepth.
var ErrTooDeep = errors.New("nesting too deep")

// Error is a positioned parse failure.
type Error struct {
	Line    int
	Col     int
	Msg     string
	Snippet string

	// Incomplete is set when the input ended inside an expression, so more
	// input could still make it valid.
	Incomplete bool

	Err error // underlying cause, if any
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s\n  |> %s", e.Line, e.Msg, e.Snippet)
}

func (e *Error) Unwrap() error { return e.Err }

// IsIncomplete reports whether err means the source ended mid-expression.
func IsIncomplete(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Incomplete
}

// Parser consumes tokens from a structural cursor and builds Values.
//
// Grammar:
//
//	expr  = list | "'" expr | ATOM | INTEGER | BOOLEAN
//	list  = "(" expr* ")"
type Parser struct {
	cur         *lexer.Cursor
	sourceLines []string
	depth       int
}

func NewParser(src string) *Parser {
	return &Parser{cur: lexer.NewCursor(src), sourceLines: strings.Split(src, "\n")}
}

// fmtError builds an *Error pointing at tok, with the offending source line.
func (p *Parser) fmtError(tok lexer.Token, cause error, format string, args ...any) *Error {
	lineIdx := tok.Line - 1 // Lines are 1-based

	snippet := "<source unavailable>"
	if lineIdx >= 0 && lineIdx < len(p.sourceLines) {
		snippet = strings.TrimSpace(p.sourceLines[lineIdx])
	}

	return &Error{
		Line:    tok.Line,
		Col:     tok.Col,
		Msg:     fmt.Sprintf(format, args...),
		Snippet: snippet,
		Err:     cause,
	}
}

// Parse consumes exactly one expression. It returns io.EOF when the input
// holds no further expressions.
func (p *Parser) Parse() (Value, error) {
	tok := p.cur.NextToken()
	if tok.Type == lexer.EOF {
		return Value{}, io.EOF
	}
	return p.parseToken(tok)
}

func (p *Parser) parseToken(tok lexer.Token) (Value, error) {
	switch tok.Type {
	case lexer.ATOM:
		return MakeAtom(tok.Lexeme), nil
	case lexer.INTEGER:
		return MakeInt(tok.Int), nil
	case lexer.BOOLEAN:
		return MakeBool(tok.Bool), nil
	case lexer.LPAREN:
		if err := p.enter(tok); err != nil {
			return Value{}, err
		}
		defer p.leave()
		return p.parseList(tok)
	case lexer.QUOTE:
		if err := p.enter(tok); err != nil {
			return Value{}, err
		}
		defer p.leave()
		next := p.cur.NextToken()
		if next.Type == lexer.EOF {
			e := p.fmtError(tok, nil, "expected an expression after '")
			e.Incomplete = true
			return Value{}, e
		}
		quoted, err := p.parseToken(next)
		if err != nil {
			return Value{}, err
		}
		return MakeList(MakeAtom("quote"), quoted), nil
	case lexer.RPAREN:
		return Value{}, p.fmtError(tok, nil, "unexpected ')'")
	case lexer.FLOAT:
		return Value{}, p.fmtError(tok, ErrNotImplemented, "float literal %s: %v", tok.Lexeme, ErrNotImplemented)
	case lexer.CHAR:
		return Value{}, p.fmtError(tok, ErrNotImplemented, "character literal %s: %v", tok.Lexeme, ErrNotImplemented)
	case lexer.UNKNOWN:
		return Value{}, p.fmtError(tok, tok.Err(), "invalid token %q", tok.Lexeme)
	case lexer.EOF:
		e := p.fmtError(tok, nil, "unexpected end of input")
		e.Incomplete = true
		return Value{}, e
	}
	return Value{}, p.fmtError(tok, nil, "unexpected token %s", tok.Type)
}

// enter and leave track nesting of lists and quotes around tok.
func (p *Parser) enter(tok lexer.Token) error {
	if p.depth >= MaxNestingDepth {
		return p.fmtError(tok, ErrTooDeep, "%v: more than %d levels", ErrTooDeep, MaxNestingDepth)
	}
	p.depth++
	return nil
}

func (p *Parser) leave() { p.depth-- }

// parseList collects expressions up to the ')' matching open.
func (p *Parser) parseList(open lexer.Token) (Value, error) {
	items := []Value{}
	for {
		tok := p.cur.NextToken()
		switch tok.Type {
		case lexer.RPAREN:
			return MakeList(items...), nil
		case lexer.EOF:
			e := p.fmtError(open, nil, "unclosed '(' opened at %d:%d", open.Line, open.Col)
			e.Incomplete = true
			return Value{}, e
		}
		item, err := p.parseToken(tok)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
}

// ParseAll parses every top-level expression in src.
func ParseAll(src string) ([]Value, error) {
	p := NewParser(src)
	var out []Value
	for {
		v, err := p.Parse()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}
