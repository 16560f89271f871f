package compiler

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCompileFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "answer.scm")
	out := filepath.Join(dir, "answer.s")
	if err := os.WriteFile(in, []byte("42\n"), 0644); err != nil {
		t.Fatal(err)
	}

	code, err := CompileFile(in, out)
	if err != nil {
		t.Fatalf("CompileFile failed: %v", err)
	}
	written, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if string(written) != code {
		t.Errorf("written file differs from returned assembly:\n%s\nvs\n%s", written, code)
	}
	assertContains(t, code, "movq $42, %rax")
}

func TestCompileFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := CompileFile(filepath.Join(dir, "missing.scm"), filepath.Join(dir, "out.s")); err == nil {
		t.Error("CompileFile on a missing input succeeded")
	}

	in := filepath.Join(dir, "bad.scm")
	out := filepath.Join(dir, "bad.s")
	if err := os.WriteFile(in, []byte("(car 1)"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := CompileFile(in, out); err == nil {
		t.Error("CompileFile on an unsupported program succeeded")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output written for a failed compile (stat err = %v)", err)
	}
}
