package interp

import (
	"math"

	"goscheme/pkg/parser"
)

// primitive is a built-in procedure applied to already-evaluated operands.
type primitive func(args []parser.Value) (parser.Value, error)

// lookupPrimitive maps a name to its built-in procedure. The table is fixed
// and holds no state.
func lookupPrimitive(name string) (primitive, bool) {
	switch name {
	case "+":
		return foldInts(name, 0, addInt), true
	case "*":
		return foldInts(name, 1, mulInt), true
	case "-":
		return sub, true
	case "car":
		return car, true
	case "cdr":
		return cdr, true
	case "cons":
		return cons, true
	case "=", "eq?":
		return intsEqual(name), true
	}
	return nil, false
}

func expectInt(name string, v parser.Value) (int64, error) {
	if v.Kind != parser.Integer {
		return 0, newError(ErrType, "%s: expected integer, got %s %s", name, v.Kind, v)
	}
	return v.Int, nil
}

// addInt, subInt and mulInt report ok=false when the result does not fit in
// an int64.
func addInt(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

func subInt(a, b int64) (int64, bool) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, false
	}
	return a - b, true
}

func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || c/b != a {
		return 0, false
	}
	return c, true
}

func foldInts(name string, identity int64, op func(acc, i int64) (int64, bool)) primitive {
	return func(args []parser.Value) (parser.Value, error) {
		acc := identity
		for _, a := range args {
			i, err := expectInt(name, a)
			if err != nil {
				return parser.Value{}, err
			}
			next, ok := op(acc, i)
			if !ok {
				return parser.Value{}, newError(ErrOverflow, "%s: %d %s %d does not fit in 64 bits", name, acc, name, i)
			}
			acc = next
		}
		return parser.MakeInt(acc), nil
	}
}

// sub folds subtraction over the operands, seeded by the first one.
// (- 5) is 5, not -5.
func sub(args []parser.Value) (parser.Value, error) {
	if len(args) == 0 {
		return parser.Value{}, newError(ErrArity, "-: expected at least 1 argument, got 0")
	}
	acc, err := expectInt("-", args[0])
	if err != nil {
		return parser.Value{}, err
	}
	for _, a := range args[1:] {
		i, err := expectInt("-", a)
		if err != nil {
			return parser.Value{}, err
		}
		next, ok := subInt(acc, i)
		if !ok {
			return parser.Value{}, newError(ErrOverflow, "-: %d - %d does not fit in 64 bits", acc, i)
		}
		acc = next
	}
	return parser.MakeInt(acc), nil
}

// listArg returns the items of the single non-empty list operand of name.
func listArg(name string, args []parser.Value) ([]parser.Value, error) {
	if len(args) != 1 {
		return nil, newError(ErrType, "%s: expected a single list argument, got %d arguments", name, len(args))
	}
	if args[0].Kind != parser.List {
		return nil, newError(ErrType, "%s: expected list, got %s %s", name, args[0].Kind, args[0])
	}
	if len(args[0].Items) == 0 {
		return nil, newError(ErrType, "%s: empty list", name)
	}
	return args[0].Items, nil
}

func car(args []parser.Value) (parser.Value, error) {
	items, err := listArg("car", args)
	if err != nil {
		return parser.Value{}, err
	}
	return items[0], nil
}

func cdr(args []parser.Value) (parser.Value, error) {
	items, err := listArg("cdr", args)
	if err != nil {
		return parser.Value{}, err
	}
	rest := make([]parser.Value, len(items)-1)
	copy(rest, items[1:])
	return parser.MakeList(rest...), nil
}

func cons(args []parser.Value) (parser.Value, error) {
	if len(args) != 2 {
		return parser.Value{}, newError(ErrArity, "cons: expected 2 arguments, got %d", len(args))
	}
	tail := args[1]
	if tail.Kind != parser.List {
		return parser.Value{}, newError(ErrType, "cons: expected list as second argument, got %s %s", tail.Kind, tail)
	}
	items := make([]parser.Value, 0, len(tail.Items)+1)
	items = append(items, args[0])
	items = append(items, tail.Items...)
	return parser.MakeList(items...), nil
}

// intsEqual is true iff every operand is an integer with the same value.
func intsEqual(name string) primitive {
	return func(args []parser.Value) (parser.Value, error) {
		equal := true
		for i, a := range args {
			n, err := expectInt(name, a)
			if err != nil {
				return parser.Value{}, err
			}
			if i > 0 && n != args[0].Int {
				equal = false
			}
		}
		return parser.MakeBool(equal), nil
	}
}
