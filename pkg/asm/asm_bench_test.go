package asm

import (
	"fmt"
	"testing"
)

func buildProgram(functions int) *Builder {
	b := NewBuilder()
	for i := 0; i < functions; i++ {
		b.NewFunction(fmt.Sprintf("f%d", i))
		b.Move(MovImmToReg(int64(i), RAX))
		b.Return()
		b.NewConstant(Float(float64(i)))
	}
	return b
}

func BenchmarkBuildSmall(b *testing.B) {
	prog := buildProgram(10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := prog.Build(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuildLarge(b *testing.B) {
	prog := buildProgram(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := prog.Build(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCheck(b *testing.B) {
	text, err := buildProgram(1000).Build()
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Check(text); err != nil {
			b.Fatal(err)
		}
	}
}
