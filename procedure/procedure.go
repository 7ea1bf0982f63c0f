// Package procedure defines the callable abstraction: Native built-ins
// and User-defined functions with a captured closure. Both implement
// value.Value directly; the call logic itself (arity check, new-scope
// creation, body execution, Return unwrapping) lives in package eval,
// which is the only place that already knows how to run a Stmt list.
package procedure

import (
	"fmt"

	"github.com/akashmaji946/orin/ast"
	"github.com/akashmaji946/orin/environment"
	"github.com/akashmaji946/orin/value"
)

// Native is a built-in procedure implemented in Go.
type Native struct {
	Name  string
	Arity int
	Fn    func(args []value.Value) value.Value
}

func (*Native) Type() string { return "callable" }
func (n *Native) String() string {
	return fmt.Sprintf("<native fn %s>", n.Name)
}

// User is a function declared in Orin source. Closure is fixed at
// definition time (the scope active when the FunctionStmt was executed)
// and is never re-bound afterward.
type User struct {
	Name    string
	Params  []string
	Body    []ast.Stmt
	Closure *environment.Environment
}

func (*User) Type() string { return "callable" }
func (u *User) String() string {
	return fmt.Sprintf("<fn %s>", u.Name)
}

// ArityOf returns the parameter count for either kind of procedure.
func ArityOf(p value.Value) int {
	switch p := p.(type) {
	case *Native:
		return p.Arity
	case *User:
		return len(p.Params)
	default:
		return -1
	}
}
