// Package parser implements the recursive-descent, precedence-climbing
// parser described in spec §4.2: token sequence in, ordered statement
// list out.
package parser

import (
	"fmt"

	"github.com/akashmaji946/orin/ast"
	"github.com/akashmaji946/orin/lexer"
	"github.com/akashmaji946/orin/token"
)

// Parser holds the full token sequence (already scanned by an internal
// Lexer, matching the teacher repo's NewParser(src)-owns-a-lexer
// convention) plus one index into it — the current token — and
// collected parse errors. Unlike the teacher parser, Parse never
// evaluates anything inline: lexing, parsing, and evaluation stay in
// strictly separate phases.
type Parser struct {
	tokens    []token.Token
	pos       int
	Errors    []string
	LexErrors []lexer.LexError
}

// New scans src and returns a Parser ready to produce a statement list.
func New(src string) *Parser {
	lx := lexer.New(src)
	toks := lx.Tokens()
	return &Parser{tokens: toks, LexErrors: lx.Errors}
}

// HasErrors reports whether any lexical or parse error was recorded.
func (p *Parser) HasErrors() bool {
	return len(p.Errors) > 0 || len(p.LexErrors) > 0
}

// GetErrors returns every lexical and parse error as formatted strings.
func (p *Parser) GetErrors() []string {
	all := make([]string, 0, len(p.LexErrors)+len(p.Errors))
	for _, le := range p.LexErrors {
		all = append(all, le.Error())
	}
	all = append(all, p.Errors...)
	return all
}

// Parse consumes the entire token sequence and returns the resulting
// statement list (program → declaration* EOF). A statement that fails
// to parse is skipped after the parser synchronizes to the next
// statement boundary, so multiple errors can surface from one run.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

func (p *Parser) peekTok() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) isAtEnd() bool {
	return p.peekTok().Kind == token.EOF
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.pos-1]
}

// advance consumes and returns the current token.
func (p *Parser) advance() token.Token {
	tok := p.peekTok()
	if !p.isAtEnd() {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind token.Kind) bool {
	return p.peekTok().Kind == kind
}

// match advances and returns true if the current token is any of kinds.
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// expect asserts the current token matches kind and advances past it,
// otherwise it records a parse error at the current token and reports
// failure.
func (p *Parser) expect(kind token.Kind, message string) (token.Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	p.errorAtCurrent(message)
	return token.Token{}, false
}

// expectConsume is expect without the consumed token, for callers that
// only care whether the match succeeded.
func (p *Parser) expectConsume(kind token.Kind, message string) bool {
	_, ok := p.expect(kind, message)
	return ok
}

func displayLexeme(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of file"
	}
	return tok.Lexeme
}

func (p *Parser) errorAtCurrent(message string) {
	p.errorAt(p.peekTok(), message)
}

func (p *Parser) errorAt(tok token.Token, message string) {
	p.Errors = append(p.Errors, fmt.Sprintf("[line %d] PARSER ERROR at '%s': %s", tok.Line, displayLexeme(tok), message))
}

// synchronize discards tokens until it reaches a likely statement
// boundary (a consumed ';' or a statement-starting keyword), so parsing
// can continue after an error and surface further diagnostics.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peekTok().Kind {
		case token.FUN, token.LET, token.STRUCT, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
