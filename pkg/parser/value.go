package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the variants of Value.
type Kind int

const (
	Atom Kind = iota
	List
	Integer
	Boolean
	Function
)

var kindNames = [...]string{
	Atom:     "atom",
	List:     "list",
	Integer:  "integer",
	Boolean:  "boolean",
	Function: "function",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is both the parsed syntax tree and the result of evaluation.
// Only the field matching Kind is meaningful.
//
//	(+ 1 x)
//	Value{Kind: List, Items: [Atom "+", Integer 1, Atom "x"]}
type Value struct {
	Kind  Kind
	Name  string  // Atom
	Items []Value // List
	Int   int64   // Integer
	Bool  bool    // Boolean
	Fn    *Func   // Function
}

// Func is a user-defined procedure. Body holds the unevaluated expressions
// that followed the parameter list in its definition.
type Func struct {
	Name   string
	Params []string
	Body   []Value
}

func MakeAtom(name string) Value        { return Value{Kind: Atom, Name: name} }
func MakeList(items ...Value) Value     { return Value{Kind: List, Items: items} }
func MakeInt(i int64) Value             { return Value{Kind: Integer, Int: i} }
func MakeBool(b bool) Value             { return Value{Kind: Boolean, Bool: b} }
func MakeFunction(fn *Func) Value       { return Value{Kind: Function, Fn: fn} }
func EmptyList() Value                  { return Value{Kind: List, Items: []Value{}} }
func (v Value) IsAtom(name string) bool { return v.Kind == Atom && v.Name == name }

// IsFalse reports whether v is the boolean #f. Every other value is truthy.
func (v Value) IsFalse() bool {
	return v.Kind == Boolean && !v.Bool
}

// Equal reports structural equality. Functions compare by identity.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case Atom:
		return v.Name == o.Name
	case Integer:
		return v.Int == o.Int
	case Boolean:
		return v.Bool == o.Bool
	case Function:
		return v.Fn == o.Fn
	case List:
		if len(v.Items) != len(o.Items) {
			return false
		}
		for i := range v.Items {
			if !v.Items[i].Equal(o.Items[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders v in Scheme notation.
func (v Value) String() string {
	switch v.Kind {
	case Atom:
		return v.Name
	case Integer:
		return strconv.FormatInt(v.Int, 10)
	case Boolean:
		if v.Bool {
			return "#t"
		}
		return "#f"
	case Function:
		if v.Fn == nil || v.Fn.Name == "" {
			return "#<procedure>"
		}
		return "#<procedure " + v.Fn.Name + ">"
	case List:
		parts := make([]string, len(v.Items))
		for i, item := range v.Items {
			parts[i] = item.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	}
	return fmt.Sprintf("#<%s>", v.Kind)
}
