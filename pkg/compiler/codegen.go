package compiler

import (
	"errors"
	"fmt"

	"goscheme/pkg/asm"
	"goscheme/pkg/lexer"
)

// ErrNotImplemented is returned for literal kinds that have no code
// generation yet.
var ErrNotImplemented = errors.New("code generation not implemented")

const anonPrefix = "__scheme__anonymous__function__"

// CodeGen walks the tokens of a source text and emits assembly for each
// literal into a single Builder.
type CodeGen struct {
	cur          *lexer.Cursor
	b            *asm.Builder
	nextFunction int
}

func NewCodeGen(src string) *CodeGen {
	return &CodeGen{
		cur: lexer.NewLiteralCursor(src),
		b:   asm.NewBuilder(),
	}
}

func (cg *CodeGen) newFunctionName() string {
	name := fmt.Sprintf("%s%d", anonPrefix, cg.nextFunction)
	cg.nextFunction++
	return name
}

// Generate consumes the source up to end of input. It stops at the first
// token it cannot compile; the builder is only returned on success.
func (cg *CodeGen) Generate() (*asm.Builder, error) {
	for {
		tok := cg.cur.NextToken()
		switch tok.Type {
		case lexer.EOF:
			return cg.b, nil

		case lexer.INTEGER:
			cg.b.NewFunction(cg.newFunctionName())
			cg.b.Move(asm.MovImmToReg(tok.Int, asm.RAX))
			cg.b.Return()

		case lexer.FLOAT:
			// the constant is recorded so its data record exists once
			// loading through %xmm0 is generated
			cg.b.NewConstant(asm.Float(tok.Float))
			return nil, fmt.Errorf("%d:%d: float %s: %w", tok.Line, tok.Col, tok.Lexeme, ErrNotImplemented)

		case lexer.BOOLEAN:
			return nil, fmt.Errorf("%d:%d: boolean %s: %w", tok.Line, tok.Col, tok.Lexeme, ErrNotImplemented)

		case lexer.CHAR:
			return nil, fmt.Errorf("%d:%d: character %s: %w", tok.Line, tok.Col, tok.Lexeme, ErrNotImplemented)

		default:
			if err := tok.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%d:%d: unexpected token %s", tok.Line, tok.Col, tok)
		}
	}
}
