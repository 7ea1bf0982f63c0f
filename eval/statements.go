package eval

import (
	"fmt"

	"github.com/akashmaji946/orin/ast"
	"github.com/akashmaji946/orin/environment"
	"github.com/akashmaji946/orin/procedure"
	"github.com/akashmaji946/orin/value"
)

// execute dispatches a single statement by its concrete type (§4.5.1).
// A direct type-switch stands in for the source's visitor abstraction,
// per the language's own design notes.
func (e *Evaluator) execute(stmt ast.Stmt) value.Value {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		return e.evaluate(s.Expr)

	case *ast.PrintStmt:
		v := e.evaluate(s.Expr)
		if isSignal(v) {
			return v
		}
		fmt.Fprintln(e.Out, value.Stringify(v))
		return value.Nil{}

	case *ast.VarStmt:
		var v value.Value = value.Nil{}
		if s.Initializer != nil {
			v = e.evaluate(s.Initializer)
			if isSignal(v) {
				return v
			}
		}
		e.Current.Define(s.Name.Lexeme, v)
		return value.Nil{}

	case *ast.BlockStmt:
		return e.execBlock(s.Statements, environment.New(e.Current))

	case *ast.IfStmt:
		cond := e.evaluate(s.Cond)
		if isSignal(cond) {
			return cond
		}
		if value.Truthy(cond) {
			return e.execute(s.Then)
		} else if s.Else != nil {
			return e.execute(s.Else)
		}
		return value.Nil{}

	case *ast.WhileStmt:
		for {
			cond := e.evaluate(s.Cond)
			if isSignal(cond) {
				return cond
			}
			if !value.Truthy(cond) {
				return value.Nil{}
			}
			result := e.execute(s.Body)
			if isSignal(result) {
				return result
			}
		}

	case *ast.FunctionStmt:
		params := make([]string, len(s.Params))
		for i, p := range s.Params {
			params[i] = p.Lexeme
		}
		fn := &procedure.User{
			Name:    s.Name.Lexeme,
			Params:  params,
			Body:    s.Body,
			Closure: e.Current,
		}
		e.Current.Define(s.Name.Lexeme, fn)
		return value.Nil{}

	case *ast.ReturnStmt:
		var v value.Value = value.Nil{}
		if s.Value != nil {
			v = e.evaluate(s.Value)
			if isSignal(v) {
				return v
			}
		}
		return &returnSignal{Value: v}

	default:
		return runtimeErrorf(0, "unhandled statement type %T", stmt)
	}
}
