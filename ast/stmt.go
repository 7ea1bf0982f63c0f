package ast

import "github.com/akashmaji946/orin/token"

// Stmt is any statement node.
type Stmt interface {
	stmtNode()
}

// ExpressionStmt evaluates Expr and discards the result.
type ExpressionStmt struct {
	Expr Expr
}

// PrintStmt evaluates Expr, stringifies it, and writes one line to
// standard output.
type PrintStmt struct {
	Expr Expr
}

// VarStmt binds Name in the current scope to the evaluated Initializer,
// or to Nil if Initializer is nil. Also produced for `struct NAME =
// {...};`, a parser-level synonym for `let NAME = {...};`.
type VarStmt struct {
	Name        token.Token
	Initializer Expr // nil if omitted
}

// BlockStmt executes Statements under a fresh scope enclosed by whatever
// scope was active on entry, restoring that scope on every exit path.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt executes Then when Cond is truthy, else Else (if present).
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
}

// WhileStmt repeatedly executes Body while Cond evaluates truthy.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// FunctionStmt declares a user procedure: binds Name in the current
// scope to a User procedure capturing the current scope as its closure.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// ReturnStmt evaluates Value (defaulting to nil-literal semantics when
// omitted) and raises the non-local Return control signal.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil if omitted
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
