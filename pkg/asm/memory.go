package asm

import (
	"fmt"
	"strconv"
)

// MemAddr is a memory operand.
type MemAddr interface {
	memAddr()
	String() string
}

// Address is an absolute address, rendered in hex: 0x123.
type Address int64

// Offset dereferences Base plus a byte offset: -8(%rbp).
type Offset struct {
	Off  int64
	Base Register
}

// LabelRef dereferences a label relative to Base: LC_0(%rip).
type LabelRef struct {
	Label string
	Base  Register
}

func (Address) memAddr()  {}
func (Offset) memAddr()   {}
func (LabelRef) memAddr() {}

func (a Address) String() string  { return "0x" + strconv.FormatUint(uint64(a), 16) }
func (o Offset) String() string   { return fmt.Sprintf("%d(%s)", o.Off, o.Base) }
func (l LabelRef) String() string { return fmt.Sprintf("%s(%s)", l.Label, l.Base) }
