package environment

import (
	"testing"

	"github.com/akashmaji946/orin/value"
)

func TestDefineShadowsOuterBindingOnlyInInnerScope(t *testing.T) {
	outer := New(nil)
	outer.Define("a", value.Number{F: 1})

	inner := New(outer)
	inner.Define("a", value.Number{F: 2})

	innerVal, _ := inner.Get("a")
	outerVal, _ := outer.Get("a")
	if innerVal.(value.Number).F != 2 {
		t.Fatalf("inner scope: want 2, got %v", innerVal)
	}
	if outerVal.(value.Number).F != 1 {
		t.Fatalf("outer scope: want 1, got %v", outerVal)
	}
}

func TestGetWalksEnclosingChain(t *testing.T) {
	globals := New(nil)
	globals.Define("x", value.Number{F: 42})
	current := New(New(globals))

	got, ok := current.Get("x")
	if !ok {
		t.Fatal("expected x to resolve through the chain")
	}
	if got.(value.Number).F != 42 {
		t.Fatalf("want 42, got %v", got)
	}
}

func TestGetUndefinedReturnsFalse(t *testing.T) {
	env := New(nil)
	if _, ok := env.Get("missing"); ok {
		t.Fatal("expected ok=false for an undefined name")
	}
}

func TestAssignUpdatesInnermostExistingBindingNeverCreatesNew(t *testing.T) {
	outer := New(nil)
	outer.Define("a", value.Number{F: 1})
	inner := New(outer)

	if !inner.Assign("a", value.Number{F: 99}) {
		t.Fatal("assign should find 'a' in the enclosing scope")
	}
	got, _ := outer.Get("a")
	if got.(value.Number).F != 99 {
		t.Fatalf("outer binding should be mutated in place, got %v", got)
	}
	if _, ok := inner.values["a"]; ok {
		t.Fatal("assign must not create a new binding in the inner scope")
	}
}

func TestAssignUndefinedReturnsFalse(t *testing.T) {
	env := New(nil)
	if env.Assign("never_defined", value.Nil{}) {
		t.Fatal("expected assign to fail for a name never defined anywhere in the chain")
	}
}

func TestSharedReferenceObservesMutationFromEitherHandle(t *testing.T) {
	shared := New(nil)
	shared.Define("counter", value.Number{F: 0})

	// Two independent pointers to the same scope, as a closure and the
	// evaluator's current scope would both hold.
	handleA := shared
	handleB := shared

	handleA.Assign("counter", value.Number{F: 1})
	got, _ := handleB.Get("counter")
	if got.(value.Number).F != 1 {
		t.Fatalf("mutation through handleA must be visible via handleB, got %v", got)
	}
}
