//go:build !js

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"goscheme/pkg/compiler"
	"goscheme/pkg/utils"
)

func main() {
	inPath := flag.String("in", "", "input Scheme source file path")
	outPath := flag.String("out", "", "output assembly file path (default: input with .s extension)")
	showAsm := flag.Bool("show-asm", false, "print the generated assembly to stdout")
	flag.Parse()

	if *inPath == "" && flag.NArg() > 0 {
		*inPath = flag.Arg(0)
	}
	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "nothing to do: provide -in <file.scm>")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*inPath, *outPath, *showAsm); err != nil {
		fmt.Fprintf(os.Stderr, "compilation failed: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string, showAsm bool) error {
	if outPath == "" {
		outPath = utils.DefaultOutputPath(inPath, ".s")
	}

	assembly, err := compiler.CompileFile(inPath, outPath)
	if err != nil {
		return err
	}

	if showAsm {
		fmt.Print(assembly)
	}
	fmt.Printf("compiled %d functions -> %s\n", strings.Count(assembly, ".global "), outPath)
	return nil
}
