package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"goscheme/pkg/repl"
)

func TestRunExpr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runExpr("(define (add1 x) (+ x 1)) (add1 41)", &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d; stderr = %s", code, stderr.String())
	}
	if got := stdout.String(); got != "#<procedure add1>\n42\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunExprError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runExpr("1 (car 2) 3", &stdout, &stderr)
	if code != 1 {
		t.Errorf("exit code = %d; want 1", code)
	}
	if stdout.String() != "1\n" {
		t.Errorf("stdout = %q; want values before the failure", stdout.String())
	}
	if !strings.Contains(stderr.String(), "car") {
		t.Errorf("stderr = %q; want the car error", stderr.String())
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.scm")
	if err := os.WriteFile(path, []byte("(cons 1 '(2))"), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if code := runFile(path, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d; stderr = %s", code, stderr.String())
	}
	if stdout.String() != "(1 2)\n" {
		t.Errorf("stdout = %q", stdout.String())
	}

	if code := runFile(path+".missing", &stdout, &stderr); code != 1 {
		t.Errorf("exit code for missing file = %d; want 1", code)
	}
}

func TestPrintResult(t *testing.T) {
	s := repl.NewSession()
	res, _ := s.Feed("7 (car 7)")

	var stdout, stderr bytes.Buffer
	printResult(&stdout, &stderr, res)
	if !strings.Contains(stdout.String(), "7") {
		t.Errorf("stdout = %q; want the value", stdout.String())
	}
	if !strings.Contains(stderr.String(), res.Err.Error()) {
		t.Errorf("stderr = %q; want the error", stderr.String())
	}
}
