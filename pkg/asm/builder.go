// Package asm models x86-64 instructions and accumulates them into AT&T
// assembly text.
package asm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnbalanced is returned by Build when NewFunction and Return calls do not
// pair up.
var ErrUnbalanced = errors.New("unbalanced function nesting")

const indent = "        "

// Builder collects code lines and data records in order. Lines are only ever
// appended; Build validates nesting once and renders the text.
type Builder struct {
	lines     []string
	constants []*Constant
	nesting   int
	// underflow records a Return with no open function, even if a later
	// NewFunction brings nesting back to zero.
	underflow bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) add(line string) {
	b.lines = append(b.lines, line)
}

// NewFunction opens a global function named name.
func (b *Builder) NewFunction(name string) {
	b.add(".global " + name)
	b.add(".type " + name + ", @function")
	b.add(name + ":")
	b.nesting++
}

// Move appends one rendered instruction.
func (b *Builder) Move(instr Instruction) {
	b.add(instr.String())
}

// Return closes the innermost open function.
func (b *Builder) Return() {
	b.add("ret")
	b.nesting--
	if b.nesting < 0 {
		b.underflow = true
	}
}

// NewConstant appends a data record labelled LC_<n>, n counting from 0.
func (b *Builder) NewConstant(lit Literal) *Constant {
	c := &Constant{Label: fmt.Sprintf("LC_%d", len(b.constants)), Value: lit}
	b.constants = append(b.constants, c)
	return c
}

// Lines returns the unindented code lines emitted so far.
func (b *Builder) Lines() []string {
	return append([]string(nil), b.lines...)
}

// Constants returns the data records emitted so far.
func (b *Builder) Constants() []*Constant {
	return append([]*Constant(nil), b.constants...)
}

// isFlush reports whether line is a directive or a label, which are written
// without indentation.
func isFlush(line string) bool {
	return strings.HasPrefix(line, ".") || strings.HasSuffix(line, ":")
}

// Build renders every code line followed by every data record.
func (b *Builder) Build() (string, error) {
	if b.underflow {
		return "", fmt.Errorf("%w: ret outside of a function", ErrUnbalanced)
	}
	if b.nesting != 0 {
		return "", fmt.Errorf("%w: %d function(s) left open", ErrUnbalanced, b.nesting)
	}

	var out strings.Builder
	for _, line := range b.lines {
		if !isFlush(line) {
			out.WriteString(indent)
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	for _, c := range b.constants {
		out.WriteString(c.String())
	}
	return out.String(), nil
}
