package parser

import (
	"github.com/akashmaji946/orin/ast"
	"github.com/akashmaji946/orin/token"
)

// declaration → funDecl | varDecl | structDecl | statement
func (p *Parser) declaration() ast.Stmt {
	var stmt ast.Stmt
	switch {
	case p.match(token.FUN):
		stmt = p.funDecl()
	case p.match(token.LET):
		stmt = p.varDecl()
	case p.match(token.STRUCT):
		stmt = p.structDecl()
	default:
		stmt = p.statement()
	}
	if stmt == nil {
		p.synchronize()
	}
	return stmt
}

// funDecl → "fun" IDENT "(" params? ")" block
func (p *Parser) funDecl() ast.Stmt {
	nameTok, ok := p.expect(token.IDENTIFIER, "expect function name")
	if !ok {
		return nil
	}
	if !p.expectConsume(token.LEFT_PAREN, "expect '(' after function name") {
		return nil
	}
	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= 255 {
				p.errorAtCurrent("can't have more than 255 parameters")
			}
			paramTok, ok := p.expect(token.IDENTIFIER, "expect parameter name")
			if !ok {
				return nil
			}
			params = append(params, paramTok)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if !p.expectConsume(token.RIGHT_PAREN, "expect ')' after parameters") {
		return nil
	}
	if !p.expectConsume(token.LEFT_BRACE, "expect '{' before function body") {
		return nil
	}
	body, ok := p.block()
	if !ok {
		return nil
	}
	return &ast.FunctionStmt{Name: nameTok, Params: params, Body: body}
}

// varDecl → "let" IDENT ("=" expression)? ";"
func (p *Parser) varDecl() ast.Stmt {
	nameTok, ok := p.expect(token.IDENTIFIER, "expect variable name")
	if !ok {
		return nil
	}
	var init ast.Expr
	if p.match(token.EQUAL) {
		init = p.expression()
		if init == nil {
			return nil
		}
	}
	if !p.expectConsume(token.SEMICOLON, "expect ';' after variable declaration") {
		return nil
	}
	return &ast.VarStmt{Name: nameTok, Initializer: init}
}

// structDecl → "struct" IDENT ("=" expression)? ";"
//
// A syntactic synonym for varDecl: `struct NAME = {...};` produces the
// exact same VarStmt node `let NAME = {...};` would (§9).
func (p *Parser) structDecl() ast.Stmt {
	nameTok, ok := p.expect(token.IDENTIFIER, "expect struct name")
	if !ok {
		return nil
	}
	var init ast.Expr
	if p.match(token.EQUAL) {
		init = p.expression()
		if init == nil {
			return nil
		}
	}
	if !p.expectConsume(token.SEMICOLON, "expect ';' after struct declaration") {
		return nil
	}
	return &ast.VarStmt{Name: nameTok, Initializer: init}
}

// statement → printStmt | returnStmt | block | ifStmt | whileStmt | forStmt | exprStmt
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.PRINT):
		return p.printStmt()
	case p.match(token.RETURN):
		return p.returnStmt()
	case p.match(token.LEFT_BRACE):
		stmts, ok := p.block()
		if !ok {
			return nil
		}
		return &ast.BlockStmt{Statements: stmts}
	case p.match(token.IF):
		return p.ifStmt()
	case p.match(token.WHILE):
		return p.whileStmt()
	case p.match(token.FOR):
		return p.forStmt()
	default:
		return p.exprStmt()
	}
}

// block → "{" declaration* "}", assuming the opening "{" was already
// consumed by the caller.
func (p *Parser) block() ([]ast.Stmt, bool) {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if !p.expectConsume(token.RIGHT_BRACE, "expect '}' after block") {
		return nil, false
	}
	return stmts, true
}

// printStmt → "print" expression ";"
func (p *Parser) printStmt() ast.Stmt {
	expr := p.expression()
	if expr == nil {
		return nil
	}
	if !p.expectConsume(token.SEMICOLON, "expect ';' after value") {
		return nil
	}
	return &ast.PrintStmt{Expr: expr}
}

// returnStmt → "return" expression? ";"
func (p *Parser) returnStmt() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
		if value == nil {
			return nil
		}
	}
	if !p.expectConsume(token.SEMICOLON, "expect ';' after return value") {
		return nil
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// ifStmt → "if" "(" expression ")" statement ("else" statement)?
func (p *Parser) ifStmt() ast.Stmt {
	if !p.expectConsume(token.LEFT_PAREN, "expect '(' after 'if'") {
		return nil
	}
	cond := p.expression()
	if cond == nil {
		return nil
	}
	if !p.expectConsume(token.RIGHT_PAREN, "expect ')' after if condition") {
		return nil
	}
	thenStmt := p.statement()
	if thenStmt == nil {
		return nil
	}
	var elseStmt ast.Stmt
	if p.match(token.ELSE) {
		elseStmt = p.statement()
		if elseStmt == nil {
			return nil
		}
	}
	return &ast.IfStmt{Cond: cond, Then: thenStmt, Else: elseStmt}
}

// whileStmt → "while" "(" expression ")" statement
func (p *Parser) whileStmt() ast.Stmt {
	if !p.expectConsume(token.LEFT_PAREN, "expect '(' after 'while'") {
		return nil
	}
	cond := p.expression()
	if cond == nil {
		return nil
	}
	if !p.expectConsume(token.RIGHT_PAREN, "expect ')' after while condition") {
		return nil
	}
	body := p.statement()
	if body == nil {
		return nil
	}
	return &ast.WhileStmt{Cond: cond, Body: body}
}

// forStmt → "for" "(" (varDecl | exprStmt | ";") expression? ";" expression? ")" statement
//
// Desugared at parse time into Block([init, While(cond-or-true,
// Block([body, Expression(step)]))]) exactly per §4.2.
func (p *Parser) forStmt() ast.Stmt {
	if !p.expectConsume(token.LEFT_PAREN, "expect '(' after 'for'") {
		return nil
	}

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		init = nil
	case p.match(token.LET):
		init = p.varDecl()
		if init == nil {
			return nil
		}
	default:
		init = p.exprStmt()
		if init == nil {
			return nil
		}
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
		if cond == nil {
			return nil
		}
	}
	if !p.expectConsume(token.SEMICOLON, "expect ';' after loop condition") {
		return nil
	}

	var step ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		step = p.expression()
		if step == nil {
			return nil
		}
	}
	if !p.expectConsume(token.RIGHT_PAREN, "expect ')' after for clauses") {
		return nil
	}

	body := p.statement()
	if body == nil {
		return nil
	}

	if step != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expr: step}}}
	}
	if cond == nil {
		cond = &ast.Literal{Value: true}
	}
	body = &ast.WhileStmt{Cond: cond, Body: body}
	if init != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{init, body}}
	}
	return body
}

// exprStmt → expression ";"
func (p *Parser) exprStmt() ast.Stmt {
	expr := p.expression()
	if expr == nil {
		return nil
	}
	if !p.expectConsume(token.SEMICOLON, "expect ';' after expression") {
		return nil
	}
	return &ast.ExpressionStmt{Expr: expr}
}
