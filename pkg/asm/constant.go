package asm

import (
	"fmt"
	"math"
)

// LiteralKind is the payload type of a data-section constant.
type LiteralKind int

const (
	IntLiteral LiteralKind = iota
	FloatLiteral
	BoolLiteral
	CharLiteral
)

// Literal is a constant payload. Only the field matching Kind is meaningful.
type Literal struct {
	Kind  LiteralKind
	Int   int64
	Float float64
	Bool  bool
	Char  rune
}

func Int(i int64) Literal     { return Literal{Kind: IntLiteral, Int: i} }
func Float(f float64) Literal { return Literal{Kind: FloatLiteral, Float: f} }
func Bool(b bool) Literal     { return Literal{Kind: BoolLiteral, Bool: b} }
func Char(c rune) Literal     { return Literal{Kind: CharLiteral, Char: c} }

// directive returns the sized data directive for l, padded for its value.
func (l Literal) directive() string {
	switch l.Kind {
	case IntLiteral:
		return fmt.Sprintf(".quad   %d", l.Int)
	case FloatLiteral:
		// the raw IEEE-754 bit pattern
		return fmt.Sprintf(".quad   %#x", math.Float64bits(l.Float))
	case BoolLiteral:
		b := 0
		if l.Bool {
			b = 1
		}
		return fmt.Sprintf(".byte   %d", b)
	case CharLiteral:
		return fmt.Sprintf(".long %d", uint32(l.Char))
	}
	panic(fmt.Sprintf("unknown literal kind %d", int(l.Kind)))
}

// Constant is a labelled record in the data section.
type Constant struct {
	Label string
	Value Literal
}

// Address returns the RIP-relative operand for loading the constant.
func (c *Constant) Address() MemAddr {
	return LabelRef{Label: c.Label, Base: RIP}
}

// String renders the record:
//
//	LC_0:
//	    .quad   0x4000000000000000
func (c *Constant) String() string {
	return fmt.Sprintf("%s:\n    %s\n", c.Label, c.Value.directive())
}
