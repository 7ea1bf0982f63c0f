package parser

import (
	"github.com/akashmaji946/orin/ast"
	"github.com/akashmaji946/orin/token"
)

// expression → assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → (call ".")? IDENT "=" assignment | logic_or
//
// Parsed by first parsing a logic_or, then, if followed by "=",
// recursing on the right-hand side and rewriting the left-hand side: a
// Variable becomes Assign, a Get becomes Set, anything else is a parse
// error.
func (p *Parser) assignment() ast.Expr {
	expr := p.logicOr()
	if expr == nil {
		return nil
	}

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()
		if value == nil {
			return nil
		}

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errorAt(equals, "invalid assignment target")
			return nil
		}
	}

	return expr
}

// logic_or → logic_and ("or" logic_and)*
func (p *Parser) logicOr() ast.Expr {
	expr := p.logicAnd()
	if expr == nil {
		return nil
	}
	for p.match(token.OR) {
		op := p.previous()
		right := p.logicAnd()
		if right == nil {
			return nil
		}
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

// logic_and → equality ("and" equality)*
func (p *Parser) logicAnd() ast.Expr {
	expr := p.equality()
	if expr == nil {
		return nil
	}
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		if right == nil {
			return nil
		}
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

// equality → comparison (("==" | "!=") comparison)*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	if expr == nil {
		return nil
	}
	for p.match(token.EQUAL_EQUAL, token.BANG_EQUAL) {
		op := p.previous()
		right := p.comparison()
		if right == nil {
			return nil
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// comparison → term (("<" | "<=" | ">" | ">=") term)*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	if expr == nil {
		return nil
	}
	for p.match(token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL) {
		op := p.previous()
		right := p.term()
		if right == nil {
			return nil
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// term → factor (("+" | "-" | "%") factor)*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	if expr == nil {
		return nil
	}
	for p.match(token.PLUS, token.MINUS, token.PERCENT) {
		op := p.previous()
		right := p.factor()
		if right == nil {
			return nil
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// factor → unary (("*" | "/") unary)*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	if expr == nil {
		return nil
	}
	for p.match(token.STAR, token.SLASH) {
		op := p.previous()
		right := p.unary()
		if right == nil {
			return nil
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// unary → ("!" | "-") unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		if right == nil {
			return nil
		}
		return &ast.Unary{Op: op, Right: right}
	}
	return p.call()
}

// call → primary ( "(" args? ")" | "." IDENT )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	if expr == nil {
		return nil
	}
	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr = p.finishCall(expr)
			if expr == nil {
				return nil
			}
		case p.match(token.DOT):
			nameTok, ok := p.expect(token.IDENTIFIER, "expect property name after '.'")
			if !ok {
				return nil
			}
			expr = &ast.Get{Object: expr, Name: nameTok}
		default:
			return expr
		}
	}
}

// finishCall parses the comma-separated argument list and closing ")"
// after the callee and opening "(" have already been consumed. Argument
// count is capped at 255, a parser-side diagnostic per §4.2.
func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= 255 {
				p.errorAtCurrent("can't have more than 255 arguments")
			}
			arg := p.expression()
			if arg == nil {
				return nil
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren, ok := p.expect(token.RIGHT_PAREN, "expect ')' after arguments")
	if !ok {
		return nil
	}
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

// primary → NUMBER | STRING | "true" | "false" | "nil"
//
//	| IDENT | "(" expression ")" | structLiteral
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Value: false}
	case p.match(token.TRUE):
		return &ast.Literal{Value: true}
	case p.match(token.NIL):
		return &ast.Literal{Value: nil}
	case p.match(token.NUMBER):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(token.STRING):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(token.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		if expr == nil {
			return nil
		}
		if !p.expectConsume(token.RIGHT_PAREN, "expect ')' after expression") {
			return nil
		}
		return &ast.Grouping{Inner: expr}
	case p.match(token.LEFT_BRACE):
		return p.structLiteral()
	default:
		p.errorAtCurrent("expect expression")
		return nil
	}
}

// structLiteral → "{" (IDENT ":" expression ("," IDENT ":" expression)*)? "}"
//
// The opening "{" has already been consumed by primary.
func (p *Parser) structLiteral() ast.Expr {
	var fields []ast.StructField
	if !p.check(token.RIGHT_BRACE) {
		for {
			nameTok, ok := p.expect(token.IDENTIFIER, "expect field name")
			if !ok {
				return nil
			}
			if !p.expectConsume(token.COLON, "expect ':' after field name") {
				return nil
			}
			val := p.expression()
			if val == nil {
				return nil
			}
			fields = append(fields, ast.StructField{Name: nameTok.Lexeme, Value: val})
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if !p.expectConsume(token.RIGHT_BRACE, "expect '}' after struct literal") {
		return nil
	}
	return &ast.StructLiteral{Fields: fields}
}
