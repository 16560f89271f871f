package utils

import (
	"path/filepath"
	"testing"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"prog.scm", "prog.s"},
		{"dir/prog.scm", "dir/prog.s"},
		{"prog", "prog.s"},
		{"a.b/prog.scm", "a.b/prog.s"},
	}
	for _, tc := range tests {
		if got := DefaultOutputPath(tc.in, ".s"); got != tc.want {
			t.Errorf("DefaultOutputPath(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestGetPathInfo(t *testing.T) {
	full, dir, err := GetPathInfo(filepath.Join("x", "..", "y", "prog.scm"))
	if err != nil {
		t.Fatalf("GetPathInfo error = %v", err)
	}
	if !filepath.IsAbs(full) || filepath.Base(full) != "prog.scm" {
		t.Errorf("fullPath = %q", full)
	}
	if filepath.Base(dir) != "y" {
		t.Errorf("parentDir = %q; want .../y", dir)
	}
}
