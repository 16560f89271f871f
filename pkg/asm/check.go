package asm

import (
	"fmt"
	"strings"
	"unicode"
)

// operandCounts lists the mnemonics the builder can emit and how many
// operands each takes.
var operandCounts = map[string]int{
	"movq":  2,
	"movsd": 2,
	"ret":   0,
}

// Listing summarises a checked assembly text.
type Listing struct {
	// Functions maps each .global symbol to the 1-based line of its label.
	Functions map[string]int
	// Constants maps each data label to the 1-based line of its label.
	Constants    map[string]int
	Instructions int
}

type checker struct {
	labels  map[string]int
	globals map[string]bool
}

type parsedLine struct {
	lineNo    int
	indented  bool
	label     string
	directive string
	mnemonic  string
	operands  []string
}

// Check reads text as produced by Builder.Build and reports the first line
// that breaks its layout: directives and labels flush left, instructions
// indented 8 spaces, known mnemonics, and label references that resolve.
func Check(text string) (*Listing, error) {
	c := &checker{labels: make(map[string]int), globals: make(map[string]bool)}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	if err := c.pass1(lines); err != nil {
		return nil, err
	}
	return c.pass2(lines)
}

// pass1 collects labels so pass2 can resolve forward references into the
// data section.
func (c *checker) pass1(lines []string) error {
	for i, raw := range lines {
		p, err := parseLine(raw, i+1)
		if err != nil {
			return err
		}
		if p.label == "" {
			continue
		}
		if prev, exists := c.labels[p.label]; exists {
			return fmt.Errorf("duplicate label '%s' on line %d (first on line %d)", p.label, p.lineNo, prev)
		}
		c.labels[p.label] = p.lineNo
	}
	return nil
}

func (c *checker) pass2(lines []string) (*Listing, error) {
	l := &Listing{Functions: make(map[string]int), Constants: make(map[string]int)}
	inData := false

	for i, raw := range lines {
		p, err := parseLine(raw, i+1)
		if err != nil {
			return nil, err
		}

		switch {
		case p.label != "":
			if p.indented {
				return nil, fmt.Errorf("label '%s' on line %d must not be indented", p.label, p.lineNo)
			}
			if c.globals[p.label] {
				l.Functions[p.label] = p.lineNo
			} else {
				l.Constants[p.label] = p.lineNo
				inData = true
			}

		case p.directive != "":
			if err := c.checkDirective(p, inData); err != nil {
				return nil, err
			}

		case p.mnemonic != "":
			if inData {
				return nil, fmt.Errorf("instruction %s on line %d follows the data section", p.mnemonic, p.lineNo)
			}
			if len(l.Functions) == 0 {
				return nil, fmt.Errorf("instruction %s on line %d is outside of a function", p.mnemonic, p.lineNo)
			}
			if !strings.HasPrefix(raw, indent) || strings.HasPrefix(raw, indent+" ") {
				return nil, fmt.Errorf("instruction on line %d must be indented 8 spaces", p.lineNo)
			}
			if err := c.checkInstruction(p); err != nil {
				return nil, err
			}
			l.Instructions++
		}
	}

	for name := range c.globals {
		if _, ok := l.Functions[name]; !ok {
			return nil, fmt.Errorf("global '%s' has no label", name)
		}
	}
	return l, nil
}

func (c *checker) checkDirective(p parsedLine, inData bool) error {
	switch p.directive {
	case ".global":
		if p.indented || len(p.operands) != 1 {
			return fmt.Errorf("malformed .global on line %d", p.lineNo)
		}
		c.globals[p.operands[0]] = true
	case ".type":
		if p.indented || len(p.operands) != 2 || p.operands[1] != "@function" {
			return fmt.Errorf("malformed .type on line %d", p.lineNo)
		}
	case ".quad", ".byte", ".long":
		// data records are the one place an indented directive is expected
		if !inData || !p.indented || len(p.operands) != 1 {
			return fmt.Errorf("%s on line %d is not inside a data record", p.directive, p.lineNo)
		}
	default:
		return fmt.Errorf("unknown directive on line %d: %s", p.lineNo, p.directive)
	}
	return nil
}

func (c *checker) checkInstruction(p parsedLine) error {
	want, ok := operandCounts[p.mnemonic]
	if !ok {
		return fmt.Errorf("unknown instruction on line %d: %s", p.lineNo, p.mnemonic)
	}
	if len(p.operands) != want {
		return fmt.Errorf("%s expects %d operands on line %d, got %d", p.mnemonic, want, p.lineNo, len(p.operands))
	}
	for _, op := range p.operands {
		if err := c.checkOperand(op, p.lineNo); err != nil {
			return err
		}
	}
	return nil
}

func (c *checker) checkOperand(op string, lineNo int) error {
	switch {
	case strings.HasPrefix(op, "$"), strings.HasPrefix(op, "%"):
		return nil
	case strings.HasPrefix(op, "0x"):
		return nil
	}

	open := strings.IndexByte(op, '(')
	if open < 0 || !strings.HasSuffix(op, ")") {
		return fmt.Errorf("invalid operand '%s' on line %d", op, lineNo)
	}
	base := op[:open]
	if base == "" || base[0] == '-' || unicode.IsDigit(rune(base[0])) {
		return nil
	}
	if !isIdentifier(base) {
		return fmt.Errorf("invalid label '%s' on line %d", base, lineNo)
	}
	if _, ok := c.labels[base]; !ok {
		return fmt.Errorf("undefined label '%s' on line %d", base, lineNo)
	}
	return nil
}

func parseLine(raw string, lineNo int) (parsedLine, error) {
	p := parsedLine{lineNo: lineNo}

	line := strings.TrimSpace(stripComments(raw))
	if line == "" {
		return p, nil
	}
	p.indented = raw[0] == ' ' || raw[0] == '\t'

	if strings.HasSuffix(line, ":") {
		label := strings.TrimSuffix(line, ":")
		if !isIdentifier(label) {
			return p, fmt.Errorf("invalid label '%s' on line %d", label, lineNo)
		}
		p.label = label
		return p, nil
	}

	fields := strings.Fields(normalizeInstructionText(line))
	if len(fields) == 0 {
		return p, fmt.Errorf("stray separator on line %d", lineNo)
	}
	if strings.HasPrefix(fields[0], ".") {
		p.directive = fields[0]
	} else {
		p.mnemonic = fields[0]
	}
	p.operands = fields[1:]
	return p, nil
}

// stripComments drops an AT&T '#' comment.
func stripComments(line string) string {
	if hash := strings.IndexByte(line, '#'); hash >= 0 {
		return line[:hash]
	}
	return line
}

// normalizeInstructionText turns operand separators into spaces. Commas
// inside a memory operand such as 8(%rax,%rbx) are never emitted.
func normalizeInstructionText(line string) string {
	return strings.ReplaceAll(line, ",", " ")
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' && r != '.' {
				return false
			}
			continue
		}

		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '.' {
			return false
		}
	}

	return true
}
