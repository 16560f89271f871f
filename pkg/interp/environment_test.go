package interp

import (
	"testing"

	"goscheme/pkg/parser"
)

func TestEnvironmentLookup(t *testing.T) {
	env := NewEnvironment()
	if _, ok := env.Lookup("x"); ok {
		t.Fatal("lookup in empty environment succeeded")
	}

	env.Bind("x", parser.MakeInt(1))
	env.Bind("y", parser.MakeInt(10))
	env.Bind("x", parser.MakeInt(2)) // rebinding within one frame

	if v, _ := env.Lookup("x"); v.Int != 2 {
		t.Errorf("x = %s; want newest binding 2", v)
	}

	env.PushFrame()
	env.Bind("x", parser.MakeInt(3))
	if v, _ := env.Lookup("x"); v.Int != 3 {
		t.Errorf("x in inner frame = %s; want 3", v)
	}
	if v, ok := env.Lookup("y"); !ok || v.Int != 10 {
		t.Errorf("y through outer frame = %s, %v; want 10", v, ok)
	}
	if env.Depth() != 2 {
		t.Errorf("Depth() = %d; want 2", env.Depth())
	}

	env.PopFrame()
	if v, _ := env.Lookup("x"); v.Int != 2 {
		t.Errorf("x after pop = %s; want 2", v)
	}
	if env.Depth() != 1 {
		t.Errorf("Depth() = %d; want 1", env.Depth())
	}
}

func TestEnvironmentBindGoesToInnermostFrame(t *testing.T) {
	env := NewEnvironment()
	env.PushFrame()
	env.Bind("local", parser.MakeBool(true))
	env.PopFrame()
	if _, ok := env.Lookup("local"); ok {
		t.Error("binding survived its frame")
	}
}

func TestEnvironmentPopRootPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("PopFrame on root frame did not panic")
		}
	}()
	NewEnvironment().PopFrame()
}
