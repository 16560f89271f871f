package asm

import "fmt"

// Instruction is anything the Builder can emit as a code line.
type Instruction interface {
	String() string
}

// MovKind selects the operand shapes of a Mov.
type MovKind int

const (
	RegToReg MovKind = iota
	ImmToReg
	RegToMem
	ImmToMem
	MemToReg
)

// Mov is a 64-bit integer move (movq). Only the fields used by Kind are
// meaningful.
type Mov struct {
	Kind MovKind
	Imm  int64
	Src  Register
	Dst  Register
	Mem  MemAddr
}

func MovRegToReg(src, dst Register) Mov         { return Mov{Kind: RegToReg, Src: src, Dst: dst} }
func MovImmToReg(imm int64, dst Register) Mov   { return Mov{Kind: ImmToReg, Imm: imm, Dst: dst} }
func MovRegToMem(src Register, dst MemAddr) Mov { return Mov{Kind: RegToMem, Src: src, Mem: dst} }
func MovImmToMem(imm int64, dst MemAddr) Mov    { return Mov{Kind: ImmToMem, Imm: imm, Mem: dst} }
func MovMemToReg(src MemAddr, dst Register) Mov { return Mov{Kind: MemToReg, Mem: src, Dst: dst} }

// String renders the move in AT&T order: movq <src>, <dst>.
func (m Mov) String() string {
	switch m.Kind {
	case RegToReg:
		return fmt.Sprintf("movq %s, %s", m.Src, m.Dst)
	case ImmToReg:
		return fmt.Sprintf("movq $%d, %s", m.Imm, m.Dst)
	case RegToMem:
		return fmt.Sprintf("movq %s, %s", m.Src, m.Mem)
	case ImmToMem:
		return fmt.Sprintf("movq $%d, %s", m.Imm, m.Mem)
	case MemToReg:
		return fmt.Sprintf("movq %s, %s", m.Mem, m.Dst)
	}
	return fmt.Sprintf("movq <invalid kind %d>", int(m.Kind))
}

// MovSd loads a scalar double from memory into an SSE register.
type MovSd struct {
	Src MemAddr
	Dst Register
}

func (m MovSd) String() string {
	return fmt.Sprintf("movsd %s, %s", m.Src, m.Dst)
}
