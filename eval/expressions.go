package eval

import (
	"math"

	"github.com/akashmaji946/orin/ast"
	"github.com/akashmaji946/orin/environment"
	"github.com/akashmaji946/orin/procedure"
	"github.com/akashmaji946/orin/token"
	"github.com/akashmaji946/orin/value"
)

// evaluate dispatches a single expression by its concrete type (§4.5.2).
func (e *Evaluator) evaluate(expr ast.Expr) value.Value {
	switch ex := expr.(type) {
	case *ast.Literal:
		return literalValue(ex.Value)

	case *ast.Grouping:
		return e.evaluate(ex.Inner)

	case *ast.Variable:
		v, ok := e.Current.Get(ex.Name.Lexeme)
		if !ok {
			return runtimeErrorf(ex.Name.Line, "undefined variable '%s'", ex.Name.Lexeme)
		}
		return v

	case *ast.Assign:
		v := e.evaluate(ex.Value)
		if isSignal(v) {
			return v
		}
		if !e.Current.Assign(ex.Name.Lexeme, v) {
			return runtimeErrorf(ex.Name.Line, "undefined variable '%s'", ex.Name.Lexeme)
		}
		return v

	case *ast.Unary:
		right := e.evaluate(ex.Right)
		if isSignal(right) {
			return right
		}
		switch ex.Op.Kind {
		case token.BANG:
			return value.Boolean{B: !value.Truthy(right)}
		case token.MINUS:
			n, ok := right.(value.Number)
			if !ok {
				return runtimeErrorf(ex.Op.Line, "operand of unary '-' must be a number, got %s", right.Type())
			}
			return value.Number{F: -n.F}
		}
		return runtimeErrorf(ex.Op.Line, "unknown unary operator %s", ex.Op.Lexeme)

	case *ast.Binary:
		return e.evalBinary(ex)

	case *ast.Logical:
		left := e.evaluate(ex.Left)
		if isSignal(left) {
			return left
		}
		switch ex.Op.Kind {
		case token.OR:
			if value.Truthy(left) {
				return left
			}
			return e.evaluate(ex.Right)
		case token.AND:
			if !value.Truthy(left) {
				return left
			}
			return e.evaluate(ex.Right)
		}
		return runtimeErrorf(ex.Op.Line, "unknown logical operator %s", ex.Op.Lexeme)

	case *ast.Call:
		return e.evalCall(ex)

	case *ast.Get:
		obj := e.evaluate(ex.Object)
		if isSignal(obj) {
			return obj
		}
		st, ok := obj.(*value.Struct)
		if !ok {
			return runtimeErrorf(ex.Name.Line, "only structs have fields, got %s", obj.Type())
		}
		if v, ok := st.Get(ex.Name.Lexeme); ok {
			return v
		}
		return value.Nil{}

	case *ast.Set:
		obj := e.evaluate(ex.Object)
		if isSignal(obj) {
			return obj
		}
		st, ok := obj.(*value.Struct)
		if !ok {
			return runtimeErrorf(ex.Name.Line, "only structs have fields, got %s", obj.Type())
		}
		v := e.evaluate(ex.Value)
		if isSignal(v) {
			return v
		}
		st.Set(ex.Name.Lexeme, v)
		return v

	case *ast.StructLiteral:
		st := value.NewStruct()
		for _, field := range ex.Fields {
			v := e.evaluate(field.Value)
			if isSignal(v) {
				return v
			}
			st.Set(field.Name, v)
		}
		return st

	default:
		return runtimeErrorf(0, "unhandled expression type %T", expr)
	}
}

func literalValue(raw interface{}) value.Value {
	switch v := raw.(type) {
	case nil:
		return value.Nil{}
	case float64:
		return value.Number{F: v}
	case string:
		return value.String{S: v}
	case bool:
		return value.Boolean{B: v}
	default:
		return value.Nil{}
	}
}

func (e *Evaluator) evalBinary(ex *ast.Binary) value.Value {
	left := e.evaluate(ex.Left)
	if isSignal(left) {
		return left
	}
	right := e.evaluate(ex.Right)
	if isSignal(right) {
		return right
	}

	switch ex.Op.Kind {
	case token.PLUS:
		if ln, lok := left.(value.Number); lok {
			if rn, rok := right.(value.Number); rok {
				return value.Number{F: ln.F + rn.F}
			}
		}
		if ls, lok := left.(value.String); lok {
			if rs, rok := right.(value.String); rok {
				return value.String{S: ls.S + rs.S}
			}
		}
		return runtimeErrorf(ex.Op.Line, "operands of '+' must both be numbers or both be strings, got %s and %s", left.Type(), right.Type())

	case token.MINUS, token.STAR, token.SLASH, token.PERCENT:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return runtimeErrorf(ex.Op.Line, "operands of '%s' must both be numbers, got %s and %s", ex.Op.Lexeme, left.Type(), right.Type())
		}
		switch ex.Op.Kind {
		case token.MINUS:
			return value.Number{F: ln.F - rn.F}
		case token.STAR:
			return value.Number{F: ln.F * rn.F}
		case token.SLASH:
			return value.Number{F: ln.F / rn.F}
		case token.PERCENT:
			return value.Number{F: math.Mod(ln.F, rn.F)}
		}

	case token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return runtimeErrorf(ex.Op.Line, "operands of '%s' must both be numbers, got %s and %s", ex.Op.Lexeme, left.Type(), right.Type())
		}
		switch ex.Op.Kind {
		case token.LESS:
			return value.Boolean{B: ln.F < rn.F}
		case token.LESS_EQUAL:
			return value.Boolean{B: ln.F <= rn.F}
		case token.GREATER:
			return value.Boolean{B: ln.F > rn.F}
		case token.GREATER_EQUAL:
			return value.Boolean{B: ln.F >= rn.F}
		}

	case token.EQUAL_EQUAL:
		return value.Boolean{B: value.Equal(left, right)}
	case token.BANG_EQUAL:
		return value.Boolean{B: !value.Equal(left, right)}
	}

	return runtimeErrorf(ex.Op.Line, "unknown binary operator %s", ex.Op.Lexeme)
}

func (e *Evaluator) evalCall(ex *ast.Call) value.Value {
	callee := e.evaluate(ex.Callee)
	if isSignal(callee) {
		return callee
	}

	args := make([]value.Value, 0, len(ex.Args))
	for _, a := range ex.Args {
		v := e.evaluate(a)
		if isSignal(v) {
			return v
		}
		args = append(args, v)
	}

	arity := procedure.ArityOf(callee)
	if arity < 0 {
		return runtimeErrorf(ex.Paren.Line, "can only call functions, got %s", callee.Type())
	}
	if len(args) != arity {
		return runtimeErrorf(ex.Paren.Line, "expected %d arguments but got %d", arity, len(args))
	}

	switch fn := callee.(type) {
	case *procedure.Native:
		return fn.Fn(args)
	case *procedure.User:
		return e.callUser(fn, args)
	default:
		return runtimeErrorf(ex.Paren.Line, "can only call functions, got %s", callee.Type())
	}
}

// callUser creates a fresh Environment enclosed by the procedure's
// captured closure (not the caller's scope), binds each parameter, and
// executes the body under it. The call returns the value carried by a
// Return signal raised inside the body, or Nil if the body completes
// normally (§4.4).
func (e *Evaluator) callUser(fn *procedure.User, args []value.Value) value.Value {
	callScope := environment.New(fn.Closure)
	for i, param := range fn.Params {
		callScope.Define(param, args[i])
	}
	result := e.execBlock(fn.Body, callScope)
	if rs, ok := asReturn(result); ok {
		return rs.Value
	}
	if IsError(result) {
		return result
	}
	return value.Nil{}
}
