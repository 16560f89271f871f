package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestDumpProgram(t *testing.T) {
	var out bytes.Buffer
	if err := dump(&out, testSource); err != nil {
		t.Fatalf("dump error = %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Tokens (17)",
		"(define (add1 x) (+ x 1))",
		"(add1 41)",
		"Generated Assembly: none",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("dump output missing %q:\n%s", want, got)
		}
	}
}

func TestDumpLiterals(t *testing.T) {
	var out bytes.Buffer
	if err := dump(&out, "5 6"); err != nil {
		t.Fatalf("dump error = %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "movq $6, %rax") {
		t.Errorf("dump output missing assembly:\n%s", got)
	}
	if !strings.Contains(got, "Functions: 2  Constants: 0  Instructions: 4") {
		t.Errorf("dump output missing listing summary:\n%s", got)
	}
}

func TestDumpParseError(t *testing.T) {
	var out bytes.Buffer
	err := dump(&out, "(+ 1")
	if err == nil || !strings.HasPrefix(err.Error(), "parse error:") {
		t.Errorf("dump error = %v; want a parse error", err)
	}
}
