// Package ast defines the Expression and Statement sum types produced by
// the parser and walked by the evaluator. Both are closed sets of
// concrete struct types implementing a marker-method interface; no
// visitor abstraction is used (a type-switch in eval is equivalent and
// clearer, per the language's own design notes).
package ast

import "github.com/akashmaji946/orin/token"

// Expr is any expression node.
type Expr interface {
	exprNode()
}

// Literal is a constant value baked in at parse time: a number, string,
// boolean, or nil.
type Literal struct {
	Value interface{} // float64 | string | bool | nil
}

// Variable is a reference to a named binding, resolved against the
// active environment chain at evaluation time.
type Variable struct {
	Name token.Token
}

// Grouping is a parenthesized sub-expression, kept only to preserve
// parse structure; it has no evaluation effect beyond its inner Expr.
type Grouping struct {
	Inner Expr
}

// Unary is a single prefix operator (`!` or `-`) applied to Right.
type Unary struct {
	Op    token.Token
	Right Expr
}

// Binary is an infix operator applied to both operands, evaluated left
// before right.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Logical is `and`/`or`, which short-circuits and returns whichever
// operand decided the result rather than a coerced boolean.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Assign evaluates Value and stores it into the nearest enclosing scope
// that already binds Name; it never creates a new binding.
type Assign struct {
	Name  token.Token
	Value Expr
}

// Call invokes Callee with Args. Paren is the closing `)` token, kept for
// error-location reporting.
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

// Get reads a field off a Struct value.
type Get struct {
	Object Expr
	Name   token.Token
}

// Set writes a field on a Struct value and evaluates to the written
// value.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

// StructLiteral builds a Struct value from field-name/expression pairs,
// evaluated in declaration order.
type StructLiteral struct {
	Fields []StructField
}

// StructField is one `name: expr` entry of a StructLiteral.
type StructField struct {
	Name  string
	Value Expr
}

func (*Literal) exprNode()       {}
func (*Variable) exprNode()      {}
func (*Grouping) exprNode()      {}
func (*Unary) exprNode()         {}
func (*Binary) exprNode()        {}
func (*Logical) exprNode()       {}
func (*Assign) exprNode()        {}
func (*Call) exprNode()          {}
func (*Get) exprNode()           {}
func (*Set) exprNode()           {}
func (*StructLiteral) exprNode() {}
