package compiler

import (
	"fmt"
	"os"
)

// Compile generates and renders assembly for src.
func Compile(src string) (string, error) {
	b, err := NewCodeGen(src).Generate()
	if err != nil {
		return "", fmt.Errorf("codegen error: %w", err)
	}

	assembly, err := b.Build()
	if err != nil {
		return "", fmt.Errorf("assembly error: %w", err)
	}
	return assembly, nil
}

// CompileFile compiles the source at inPath and writes the assembly to
// outPath.
func CompileFile(inPath, outPath string) (string, error) {
	src, err := os.ReadFile(inPath)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", inPath, err)
	}

	assembly, err := Compile(string(src))
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outPath, []byte(assembly), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}
	return assembly, nil
}
