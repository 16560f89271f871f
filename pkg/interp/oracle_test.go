package interp

import (
	"testing"

	"github.com/steelseries/golisp"
)

// golispPrelude supplies the primitives golisp spells differently.
const golispPrelude = "(define (= a b) (== a b))"

// TestAgainstGolisp evaluates the same programs with golisp and checks that
// both interpreters print the same result.
func TestAgainstGolisp(t *testing.T) {
	programs := []struct {
		name string
		src  string
	}{
		{"Add", "(+ 1 2 3)"},
		{"Mul", "(* 4 2 3)"},
		{"Sub", "(- 4 2 3)"},
		{"Car", "(car '(1 2 3))"},
		{"Cdr", "(cdr '(1 2 3))"},
		{"Cons", "(cons 1 '(2 3))"},
		{"Quote", "'(1 (2 3) 4)"},
		{"If", "(if (= 1 2) 10 20)"},
		{"If Equal", "(if (= 3 3) 10 20)"},
		{"Define", "(define x 5) (* x x)"},
		{"Functions", "(define (add1 x) (+ x 1)) (define (add2 x) (+ (add1 x) 1)) (add2 1)"},
		{
			"Fib",
			`(define (fib n) (if (= n 0) 0 (if (= n 1) 1 (+ (fib (- n 1)) (fib (- n 2))))))
			 (fib 15)`,
		},
	}

	for _, p := range programs {
		t.Run(p.name, func(t *testing.T) {
			got, err := New().Interpret(p.src)
			if err != nil {
				t.Fatalf("Interpret error = %v", err)
			}

			env := golisp.NewSymbolTableFrameBelow(golisp.Global, "oracle")
			if _, err := golisp.ParseAndEvalAllInEnvironment(golispPrelude, env); err != nil {
				t.Fatalf("golisp prelude error = %v", err)
			}
			want, err := golisp.ParseAndEvalAllInEnvironment(p.src, env)
			if err != nil {
				t.Fatalf("golisp error = %v", err)
			}

			if got.String() != golisp.String(want) {
				t.Errorf("result = %s; golisp says %s", got, golisp.String(want))
			}
		})
	}
}
