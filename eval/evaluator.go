// Package eval walks the AST, producing values, mutating environments,
// and handling control flow including non-local return.
package eval

import (
	"io"

	"github.com/akashmaji946/orin/ast"
	"github.com/akashmaji946/orin/environment"
	"github.com/akashmaji946/orin/value"
)

// Evaluator holds the two scope references execution needs: a permanent
// Globals (where clock and any other natives are pre-defined) and a
// mutable Current that tracks the active scope. On creation Current is a
// fresh scope enclosed by Globals, matching §4.5.
type Evaluator struct {
	Globals *environment.Environment
	Current *environment.Environment
	Out     io.Writer
}

// New creates an Evaluator writing print output to out.
func New(out io.Writer) *Evaluator {
	globals := environment.New(nil)
	registerBuiltins(globals)
	return &Evaluator{
		Globals: globals,
		Current: environment.New(globals),
		Out:     out,
	}
}

// Interpret executes a top-level statement list and returns the last
// produced value.Value. A Return signal escaping all the way to this
// level is a programmer error — there is no enclosing procedure call to
// catch it — and is reported as a RuntimeError rather than silently
// discarded.
func (e *Evaluator) Interpret(statements []ast.Stmt) value.Value {
	result := e.executeStatements(statements)
	if rs, ok := asReturn(result); ok {
		return runtimeErrorf(0, "return outside a function body (returned %s)", rs.Value.String())
	}
	return result
}

// executeStatements runs each statement in order, stopping immediately
// if one produces an error or a Return signal, and returns the last
// produced value otherwise (or Nil for an empty list).
func (e *Evaluator) executeStatements(statements []ast.Stmt) value.Value {
	var result value.Value = value.Nil{}
	for _, stmt := range statements {
		result = e.execute(stmt)
		if isSignal(result) {
			return result
		}
	}
	return result
}

// execBlock runs statements under newEnv as the active scope, restoring
// the previously active scope unconditionally on every exit path —
// including when a Return signal or RuntimeError is unwinding through
// it — via defer rather than a `?`-style early return that could skip
// the restore.
func (e *Evaluator) execBlock(statements []ast.Stmt, newEnv *environment.Environment) value.Value {
	previous := e.Current
	e.Current = newEnv
	defer func() { e.Current = previous }()
	return e.executeStatements(statements)
}

func (e *Evaluator) runtimeError(line int, format string, args ...interface{}) *RuntimeError {
	return runtimeErrorf(line, format, args...)
}
