package asm

import "fmt"

// Register is an x86-64 general-purpose or SSE register.
type Register int

const (
	RAX Register = iota
	RBX
	RCX
	RDX
	RSI
	RDI
	RSP
	RBP
	RIP
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
	XMM0
	XMM1
)

var registerNames = [...]string{
	RAX:  "rax",
	RBX:  "rbx",
	RCX:  "rcx",
	RDX:  "rdx",
	RSI:  "rsi",
	RDI:  "rdi",
	RSP:  "rsp",
	RBP:  "rbp",
	RIP:  "rip",
	R8:   "r8",
	R9:   "r9",
	R10:  "r10",
	R11:  "r11",
	R12:  "r12",
	R13:  "r13",
	R14:  "r14",
	R15:  "r15",
	XMM0: "xmm0",
	XMM1: "xmm1",
}

// String renders the register in AT&T syntax, e.g. %rax.
func (r Register) String() string {
	if int(r) >= 0 && int(r) < len(registerNames) {
		return "%" + registerNames[r]
	}
	return fmt.Sprintf("%%reg(%d)", int(r))
}
