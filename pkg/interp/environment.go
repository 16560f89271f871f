package interp

import "goscheme/pkg/parser"

type binding struct {
	name  string
	value parser.Value
}

// frame is one scope's bindings in insertion order.
type frame []binding

func (f frame) lookup(name string) (parser.Value, bool) {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i].name == name {
			return f[i].value, true
		}
	}
	return parser.Value{}, false
}

// Environment is a stack of frames, innermost last.
// Lookups scan frames from innermost to outermost and, within a frame, from
// the newest binding to the oldest, so both shadowing and rebinding work.
type Environment struct {
	frames []frame
}

// NewEnvironment returns an environment holding one empty root frame.
func NewEnvironment() *Environment {
	return &Environment{frames: []frame{nil}}
}

func (e *Environment) PushFrame() {
	e.frames = append(e.frames, nil)
}

// PopFrame discards the innermost frame. Popping the root frame is a
// programming error.
func (e *Environment) PopFrame() {
	if len(e.frames) <= 1 {
		panic("PopFrame called on root frame")
	}
	e.frames = e.frames[:len(e.frames)-1]
}

// Bind adds name to the innermost frame.
func (e *Environment) Bind(name string, v parser.Value) {
	top := len(e.frames) - 1
	e.frames[top] = append(e.frames[top], binding{name: name, value: v})
}

func (e *Environment) Lookup(name string) (parser.Value, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if v, ok := e.frames[i].lookup(name); ok {
			return v, true
		}
	}
	return parser.Value{}, false
}

// Depth returns the number of frames, root included.
func (e *Environment) Depth() int {
	return len(e.frames)
}
