package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/xyproto/vt"

	"goscheme/pkg/interp"
	"goscheme/pkg/repl"
)

const historyFile = ".goscheme_history"

func red(s string) string   { return vt.LightRed.Get(s) }
func green(s string) string { return vt.LightGreen.Get(s) }

func main() {
	path := flag.String("path", "", "Scheme source file to interpret")
	flag.Parse()

	switch {
	case *path != "":
		os.Exit(runFile(*path, os.Stdout, os.Stderr))
	case flag.NArg() > 0:
		os.Exit(runExpr(strings.Join(flag.Args(), " "), os.Stdout, os.Stderr))
	default:
		os.Exit(runRepl())
	}
}

func runFile(path string, stdout, stderr io.Writer) int {
	v, err := interp.New().InterpretFile(path)
	if err != nil {
		fmt.Fprintln(stderr, red(err.Error()))
		return 1
	}
	fmt.Fprintln(stdout, v)
	return 0
}

// runExpr evaluates every expression in src and prints each result.
func runExpr(src string, stdout, stderr io.Writer) int {
	vals, err := interp.New().EvalSource(src)
	for _, v := range vals {
		fmt.Fprintln(stdout, v)
	}
	if err != nil {
		fmt.Fprintln(stderr, red(err.Error()))
		return 1
	}
	return 0
}

func runRepl() int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Printf("goscheme REPL. Type %s to exit.\n", repl.QuitCommand)

	s := repl.NewSession()
	for {
		line, err := ln.Prompt(s.Prompt())
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl-C drops a half-typed expression
			s.Reset()
			continue
		}
		if err != nil {
			fmt.Println()
			return 0
		}

		res, ok := s.Feed(line)
		if !ok {
			continue
		}
		if res.Quit {
			return 0
		}
		if strings.TrimSpace(res.Source) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(res.Source, "\n", " "))
		printResult(os.Stdout, os.Stderr, res)
	}
}

func printResult(stdout, stderr io.Writer, res repl.Result) {
	for _, v := range res.Values {
		fmt.Fprintln(stdout, green(v.String()))
	}
	if res.Err != nil {
		fmt.Fprintln(stderr, red(res.Err.Error()))
	}
}
