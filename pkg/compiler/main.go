// Package compiler turns Scheme literals into x86-64 AT&T assembly.
//
// Pipeline: source → lexer (literal cursor) → Generate → asm.Builder → text
//
// Only integer literals produce code today. Each becomes an anonymous
// function returning the value in %rax.
package compiler
