package main

import (
	"fmt"
	"io"
	"os"

	"goscheme/pkg/asm"
	"goscheme/pkg/compiler"
	"goscheme/pkg/lexer"
	"goscheme/pkg/parser"
)

const testSource = `(define (add1 x) (+ x 1))
(add1 41)
`

func main() {
	src := testSource
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		src = string(data)
	}

	if err := dump(os.Stdout, src); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// dump prints every pipeline stage for src. Code generation only covers
// literal-only sources, so its failure is reported inline rather than
// aborting the dump.
func dump(w io.Writer, src string) error {
	fmt.Fprintf(w, "Source:\n%s\n", src)

	// Lex
	tokens := lexer.Lex(src)
	fmt.Fprintf(w, "Tokens (%d)\n", len(tokens))
	for _, tok := range tokens {
		fmt.Fprintln(w, " ", tok)
	}
	fmt.Fprintln(w)

	// Parse
	exprs, err := parser.ParseAll(src)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	fmt.Fprintln(w, "AST")
	for _, e := range exprs {
		fmt.Fprintln(w, " ", e)
	}
	fmt.Fprintln(w)

	// code Generation
	assembly, err := compiler.Compile(src)
	if err != nil {
		fmt.Fprintf(w, "Generated Assembly: none (%v)\n", err)
		return nil
	}

	fmt.Fprintln(w, "Generated Assembly")
	fmt.Fprint(w, assembly)
	fmt.Fprintln(w)

	l, err := asm.Check(assembly)
	if err != nil {
		return fmt.Errorf("assembly check: %w", err)
	}
	fmt.Fprintf(w, "Functions: %d  Constants: %d  Instructions: %d\n", len(l.Functions), len(l.Constants), l.Instructions)
	return nil
}
