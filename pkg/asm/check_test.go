package asm

import (
	"strings"
	"testing"
)

func TestCheckListing(t *testing.T) {
	b := NewBuilder()
	c := b.NewConstant(Float(1.5))
	b.NewFunction("first")
	b.Move(MovImmToReg(3, RAX))
	b.Return()
	b.NewFunction("second")
	b.Move(MovSd{Src: c.Address(), Dst: XMM0})
	b.Move(MovRegToMem(RAX, Offset{Off: -8, Base: RBP}))
	b.Return()

	text, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	l, err := Check(text)
	if err != nil {
		t.Fatalf("Check() error = %v\n%s", err, text)
	}

	// .global, .type, label: the label is the third line of each function
	if l.Functions["first"] != 3 || l.Functions["second"] != 8 {
		t.Errorf("Functions = %v; want first:3 second:8", l.Functions)
	}
	if l.Constants["LC_0"] != 12 {
		t.Errorf("Constants = %v; want LC_0:12", l.Constants)
	}
	if l.Instructions != 5 {
		t.Errorf("Instructions = %d; want 5", l.Instructions)
	}
}

func TestCheckErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"Unindented Instruction",
			".global f\n.type f, @function\nf:\nmovq $1, %rax\n        ret\n",
			"must be indented",
		},
		{
			"Indented Directive",
			"    .global f\n.type f, @function\nf:\n        ret\n",
			"malformed .global",
		},
		{
			"Unknown Mnemonic",
			".global f\n.type f, @function\nf:\n        addq $1, %rax\n",
			"unknown instruction",
		},
		{
			"Operand Count",
			".global f\n.type f, @function\nf:\n        ret %rax\n",
			"expects 0 operands",
		},
		{
			"Undefined Label",
			".global f\n.type f, @function\nf:\n        movsd LC_9(%rip), %xmm0\n        ret\n",
			"undefined label 'LC_9'",
		},
		{
			"Duplicate Label",
			".global f\n.type f, @function\nf:\n        ret\nf:\n",
			"duplicate label 'f'",
		},
		{
			"Global Without Label",
			".global f\n.type f, @function\n",
			"has no label",
		},
		{
			"Code After Data",
			"LC_0:\n    .quad   1\n        ret\n",
			"follows the data section",
		},
		{
			"Instruction Before Function",
			"        ret\n.global f\n.type f, @function\nf:\n        ret\n",
			"outside of a function",
		},
		{
			"Stray Data Directive",
			"    .quad   1\n",
			"not inside a data record",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Check(tt.text)
			if err == nil {
				t.Fatalf("Check() succeeded; want error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Check() error = %q; want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestCheckIgnoresComments(t *testing.T) {
	text := "# generated\n.global f\n.type f, @function\nf:\n        movq $1, %rax # one\n        ret\n"
	l, err := Check(text)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if l.Functions["f"] != 4 {
		t.Errorf("Functions = %v; want f:4", l.Functions)
	}
}
