// Package repl holds the read-eval-print state shared by the terminal and
// desktop front ends.
package repl

import (
	"strings"

	"goscheme/pkg/interp"
	"goscheme/pkg/parser"
)

const (
	PromptMain = "scheme> "
	PromptCont = "    ... "

	QuitCommand = ":quit"
)

// Result is the outcome of one complete chunk of input.
type Result struct {
	Source string
	// Values holds one entry per top-level expression that evaluated before
	// Err, if any.
	Values []parser.Value
	Err    error
	Quit   bool
}

// Lines renders the result for display, one value per line and the error
// last.
func (r Result) Lines() []string {
	out := make([]string, 0, len(r.Values)+1)
	for _, v := range r.Values {
		out = append(out, v.String())
	}
	if r.Err != nil {
		out = append(out, r.Err.Error())
	}
	return out
}

// Session buffers input lines until they parse as complete expressions and
// then evaluates them against one long-lived interpreter.
type Session struct {
	in      *interp.Interpreter
	pending strings.Builder
}

func NewSession() *Session {
	return &Session{in: interp.New()}
}

// Prompt returns the prompt for the next line.
func (s *Session) Prompt() string {
	if s.pending.Len() > 0 {
		return PromptCont
	}
	return PromptMain
}

// Pending reports whether earlier lines are waiting for more input.
func (s *Session) Pending() bool {
	return s.pending.Len() > 0
}

// Reset drops any buffered partial input.
func (s *Session) Reset() {
	s.pending.Reset()
}

// Interpreter exposes the underlying interpreter.
func (s *Session) Interpreter() *interp.Interpreter {
	return s.in
}

// Feed adds one line of input. ok is false while the buffered source is an
// incomplete expression; nothing is evaluated until it completes.
func (s *Session) Feed(line string) (res Result, ok bool) {
	if s.pending.Len() == 0 && strings.TrimSpace(line) == QuitCommand {
		return Result{Source: line, Quit: true}, true
	}

	if s.pending.Len() > 0 {
		s.pending.WriteByte('\n')
	}
	s.pending.WriteString(line)
	src := s.pending.String()

	// parse first so a half-typed chunk never evaluates its leading
	// expressions twice
	if _, err := parser.ParseAll(src); parser.IsIncomplete(err) {
		return Result{}, false
	}

	s.pending.Reset()
	vals, err := s.in.EvalSource(src)
	return Result{Source: src, Values: vals, Err: err}, true
}
