// Package interp evaluates parsed Scheme values against a stacked
// environment.
//
// The special forms are quote, define and if. Every other non-empty list is
// an application: operands are evaluated left to right, then the head atom
// is resolved to a user-defined function or a primitive.
//
// A function call binds its parameters in a fresh frame on top of whatever
// environment is active at the call site. Functions do not capture their
// defining environment.
package interp

import (
	"errors"
	"fmt"
	"io"
	"os"

	"goscheme/pkg/parser"
)

// MaxCallDepth bounds nested user-function calls. Deeper recursion fails
// with ErrResourceExhausted instead of overflowing the Go stack.
const MaxCallDepth = 10000

// ErrNoExpression is returned by Interpret for blank source.
var ErrNoExpression = errors.New("no expression to evaluate")

// Interpreter owns one Environment for its whole lifetime. It is not safe for
// concurrent use.
type Interpreter struct {
	env   *Environment
	depth int
}

func New() *Interpreter {
	return &Interpreter{env: NewEnvironment()}
}

// Environment exposes the interpreter's variable stack.
func (in *Interpreter) Environment() *Environment {
	return in.env
}

// Eval evaluates one value. Errors from sub-evaluations are returned as-is.
func (in *Interpreter) Eval(v parser.Value) (parser.Value, error) {
	switch v.Kind {
	case parser.Atom:
		val, ok := in.env.Lookup(v.Name)
		if !ok {
			return parser.Value{}, newError(ErrUnboundName, "%s", v.Name)
		}
		return val, nil
	case parser.Integer, parser.Boolean, parser.Function:
		return v, nil
	case parser.List:
		if len(v.Items) == 0 {
			return v, nil
		}
		return in.evalList(v.Items[0], v.Items[1:])
	}
	return parser.Value{}, newError(ErrType, "cannot evaluate %s", v.Kind)
}

func (in *Interpreter) evalList(head parser.Value, operands []parser.Value) (parser.Value, error) {
	if head.Kind == parser.Atom {
		switch head.Name {
		case "quote":
			if len(operands) != 1 {
				return parser.Value{}, newError(ErrArity, "quote: expected 1 operand, got %d", len(operands))
			}
			return operands[0], nil
		case "define":
			return in.evalDefine(operands)
		case "if":
			return in.evalIf(operands)
		}
	}
	return in.apply(head, operands)
}

func (in *Interpreter) evalDefine(operands []parser.Value) (parser.Value, error) {
	if len(operands) < 2 {
		return parser.Value{}, newError(ErrArity, "define: expected a target and a value, got %d operands", len(operands))
	}

	target := operands[0]
	switch target.Kind {
	case parser.Atom:
		if len(operands) != 2 {
			return parser.Value{}, newError(ErrArity, "define %s: expected 1 value, got %d", target.Name, len(operands)-1)
		}
		val, err := in.Eval(operands[1])
		if err != nil {
			return parser.Value{}, err
		}
		in.env.Bind(target.Name, val)
		return val, nil

	case parser.List:
		// (define (name param...) body...)
		if len(target.Items) == 0 || target.Items[0].Kind != parser.Atom {
			return parser.Value{}, newError(ErrType, "define: function name must be an atom, got %s", target)
		}
		fn := &parser.Func{Name: target.Items[0].Name}
		for _, p := range target.Items[1:] {
			if p.Kind != parser.Atom {
				return parser.Value{}, newError(ErrType, "define %s: parameter must be an atom, got %s", fn.Name, p)
			}
			fn.Params = append(fn.Params, p.Name)
		}
		fn.Body = operands[1:]
		val := parser.MakeFunction(fn)
		in.env.Bind(fn.Name, val)
		return val, nil
	}
	return parser.Value{}, newError(ErrType, "define: cannot bind to %s %s", target.Kind, target)
}

func (in *Interpreter) evalIf(operands []parser.Value) (parser.Value, error) {
	if len(operands) != 2 && len(operands) != 3 {
		return parser.Value{}, newError(ErrArity, "if: expected 2 or 3 operands, got %d", len(operands))
	}
	cond, err := in.Eval(operands[0])
	if err != nil {
		return parser.Value{}, err
	}
	if !cond.IsFalse() {
		return in.Eval(operands[1])
	}
	if len(operands) == 2 {
		return parser.Value{}, newError(ErrUnspecifiedReturn, "if: condition %s is false and there is no else branch", operands[0])
	}
	return in.Eval(operands[2])
}

func (in *Interpreter) apply(head parser.Value, operands []parser.Value) (parser.Value, error) {
	args := make([]parser.Value, 0, len(operands))
	for _, op := range operands {
		v, err := in.Eval(op)
		if err != nil {
			return parser.Value{}, err
		}
		args = append(args, v)
	}

	if head.Kind != parser.Atom {
		return parser.Value{}, newError(ErrType, "%s is not applicable", head)
	}

	bound, ok := in.env.Lookup(head.Name)
	if ok && bound.Kind == parser.Function {
		return in.call(bound.Fn, args)
	}
	if prim, isPrim := lookupPrimitive(head.Name); isPrim {
		return prim(args)
	}
	if ok {
		return parser.Value{}, newError(ErrType, "%s is bound to %s %s, which is not applicable", head.Name, bound.Kind, bound)
	}
	return parser.Value{}, newError(ErrUnboundName, "%s", head.Name)
}

// call runs fn in a fresh frame. Only the first body expression is
// evaluated.
func (in *Interpreter) call(fn *parser.Func, args []parser.Value) (parser.Value, error) {
	if len(fn.Params) != len(args) {
		return parser.Value{}, newError(ErrArity, "%s: expected %d arguments, got %d", fn.Name, len(fn.Params), len(args))
	}
	if len(fn.Body) == 0 {
		return parser.Value{}, newError(ErrUnspecifiedReturn, "%s: empty body", fn.Name)
	}
	if in.depth >= MaxCallDepth {
		return parser.Value{}, newError(ErrResourceExhausted, "%s: call depth exceeds %d", fn.Name, MaxCallDepth)
	}

	in.depth++
	in.env.PushFrame()
	defer func() {
		in.env.PopFrame()
		in.depth--
	}()

	for i, name := range fn.Params {
		in.env.Bind(name, args[i])
	}
	return in.Eval(fn.Body[0])
}

// EvalSource parses and evaluates every top-level expression in src. On
// failure it returns the values produced before the failing expression.
func (in *Interpreter) EvalSource(src string) ([]parser.Value, error) {
	p := parser.NewParser(src)
	var out []parser.Value
	for {
		expr, err := p.Parse()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		v, err := in.Eval(expr)
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}

// Interpret evaluates src and returns the value of its last expression.
func (in *Interpreter) Interpret(src string) (parser.Value, error) {
	vals, err := in.EvalSource(src)
	if err != nil {
		return parser.Value{}, err
	}
	if len(vals) == 0 {
		return parser.Value{}, ErrNoExpression
	}
	return vals[len(vals)-1], nil
}

// InterpretFile reads path and interprets its contents.
func (in *Interpreter) InterpretFile(path string) (parser.Value, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return parser.Value{}, fmt.Errorf("read %s: %w", path, err)
	}
	return in.Interpret(string(src))
}
