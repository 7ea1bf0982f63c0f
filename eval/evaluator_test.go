package eval

import (
	"bytes"
	"math"
	"testing"

	"github.com/akashmaji946/orin/parser"
	"github.com/akashmaji946/orin/value"
)

// run parses and interprets src, returning captured stdout. It fails the
// test immediately on any parse error.
func run(t *testing.T, src string) string {
	t.Helper()
	p := parser.New(src)
	statements := p.Parse()
	if p.HasErrors() {
		t.Fatalf("unexpected parse errors for %q: %v", src, p.GetErrors())
	}
	var buf bytes.Buffer
	interp := New(&buf)
	result := interp.Interpret(statements)
	if IsError(result) {
		t.Fatalf("unexpected runtime error for %q: %s", src, result.String())
	}
	return buf.String()
}

// Program-to-stdout scenarios modelled on the six concrete ones in §8.

func TestArithmeticPrecedence(t *testing.T) {
	got := run(t, `print 1 + 2 * 3;`)
	want := "7\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBlockScopedShadowing(t *testing.T) {
	got := run(t, `
		let x = 1;
		{
			let x = 2;
			print x;
		}
		print x;
	`)
	want := "2\n1\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestClosureCounter(t *testing.T) {
	got := run(t, `
		fun makeCounter() {
			let n = 0;
			fun counter() {
				n = n + 1;
				return n;
			}
			return counter;
		}
		let c = makeCounter();
		print c();
		print c();
		print c();
	`)
	want := "1\n2\n3\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFibonacciRecursion(t *testing.T) {
	got := run(t, `
		fun fib(n) {
			if (n < 2) { return n; }
			return fib(n - 1) + fib(n - 2);
		}
		print fib(10);
	`)
	want := "55\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWhileLoop(t *testing.T) {
	got := run(t, `
		let i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	want := "0\n1\n2\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEqualityScenario(t *testing.T) {
	got := run(t, `
		print 1 == 1;
		print 1 == 2;
		print 1 == "1";
	`)
	want := "true\nfalse\nfalse\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestClosureCapturesByReference checks that two calls referencing the
// same enclosing scope observe each other's mutations, not independent
// copies (§3/§9).
func TestClosureCapturesByReference(t *testing.T) {
	got := run(t, `
		let n = 0;
		fun increment() { n = n + 1; }
		fun read() { return n; }
		increment();
		increment();
		print read();
	`)
	want := "2\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestScopeRestoredThroughReturnUnwind checks that a Return signal
// raised from inside nested blocks still restores the pre-block scope on
// its way out, rather than leaking the innermost scope (§4.5.1, §8).
func TestScopeRestoredThroughReturnUnwind(t *testing.T) {
	got := run(t, `
		let x = "outer";
		fun f() {
			let x = "inner";
			{
				{
					return x;
				}
			}
		}
		print f();
		print x;
	`)
	want := "inner\nouter\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestShortCircuitOrSkipsRightOperand checks that `or` does not evaluate
// its right operand once the left is truthy — verified via a user-defined
// function that prints when called and so must never be invoked.
func TestShortCircuitOrSkipsRightOperand(t *testing.T) {
	var buf bytes.Buffer
	p := parser.New(`
		fun sideEffect() {
			print "invoked";
			return true;
		}
		true or sideEffect();
	`)
	statements := p.Parse()
	if p.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", p.GetErrors())
	}
	interp := New(&buf)
	result := interp.Interpret(statements)
	if IsError(result) {
		t.Fatalf("unexpected runtime error: %s", result.String())
	}
	if buf.String() != "" {
		t.Fatalf("right operand of a short-circuited 'or' was evaluated: %q", buf.String())
	}
}

// TestShortCircuitAndSkipsRightOperand mirrors the 'or' case for 'and'
// with a falsy left operand.
func TestShortCircuitAndSkipsRightOperand(t *testing.T) {
	var buf bytes.Buffer
	p := parser.New(`
		fun sideEffect() {
			print "invoked";
			return true;
		}
		false and sideEffect();
	`)
	statements := p.Parse()
	if p.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", p.GetErrors())
	}
	interp := New(&buf)
	result := interp.Interpret(statements)
	if IsError(result) {
		t.Fatalf("unexpected runtime error: %s", result.String())
	}
	if buf.String() != "" {
		t.Fatalf("right operand of a short-circuited 'and' was evaluated: %q", buf.String())
	}
}

// TestNumberEqualityIsBitIdentity checks the deliberately preserved quirk
// from §9: NaN == NaN is true, +0 == -0 is false, via bit-pattern
// comparison rather than IEEE-754 float comparison.
func TestNumberEqualityIsBitIdentity(t *testing.T) {
	n := value.Number{F: math.NaN()}
	if !value.Equal(n, n) {
		t.Fatalf("expected NaN == NaN to be true under bit-identity equality")
	}

	posZero := value.Number{F: 0}
	negZero := value.Number{F: math.Copysign(0, -1)}
	if value.Equal(posZero, negZero) {
		t.Fatalf("expected +0 == -0 to be false under bit-identity equality")
	}
}
