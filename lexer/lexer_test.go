package lexer

import (
	"testing"

	"github.com/akashmaji946/orin/token"
	"github.com/stretchr/testify/assert"
)

func TestNextTokenSingleCharacterAndTwoCharacterOperators(t *testing.T) {
	src := `(){},.;:+-*/% = == ! != < <= > >=`
	l := New(src)
	tokens := l.Tokens()

	expectedKinds := []token.Kind{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.SEMICOLON, token.COLON,
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT,
		token.EQUAL, token.EQUAL_EQUAL, token.BANG, token.BANG_EQUAL,
		token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL,
		token.EOF,
	}

	assert.Equal(t, len(expectedKinds), len(tokens))
	for i, kind := range expectedKinds {
		assert.Equal(t, kind, tokens[i].Kind, "token %d", i)
	}
	assert.False(t, l.HasErrors())
}

func TestNextTokenKeywordsAndIdentifiers(t *testing.T) {
	src := "and or if else while for fun return let struct true false nil print this super class foo_bar42"
	l := New(src)
	tokens := l.Tokens()

	expectedKinds := []token.Kind{
		token.AND, token.OR, token.IF, token.ELSE, token.WHILE, token.FOR,
		token.FUN, token.RETURN, token.LET, token.STRUCT, token.TRUE,
		token.FALSE, token.NIL, token.PRINT, token.THIS, token.SUPER,
		token.CLASS, token.IDENTIFIER, token.EOF,
	}
	assert.Equal(t, len(expectedKinds), len(tokens))
	for i, kind := range expectedKinds {
		assert.Equal(t, kind, tokens[i].Kind, "token %d", i)
	}
	assert.Equal(t, "foo_bar42", tokens[len(tokens)-2].Lexeme)
}

func TestNextTokenNumberLiteral(t *testing.T) {
	l := New("3.14 42")
	tokens := l.Tokens()
	assert.Equal(t, token.NUMBER, tokens[0].Kind)
	assert.Equal(t, 3.14, tokens[0].Literal)
	assert.Equal(t, token.NUMBER, tokens[1].Kind)
	assert.Equal(t, 42.0, tokens[1].Literal)
}

func TestNextTokenLeadingDotIsNotANumber(t *testing.T) {
	l := New(".5")
	tokens := l.Tokens()
	assert.Equal(t, token.DOT, tokens[0].Kind)
	assert.Equal(t, token.NUMBER, tokens[1].Kind)
	assert.Equal(t, 5.0, tokens[1].Literal)
}

func TestNextTokenStringLiteral(t *testing.T) {
	l := New(`"hello\nworld"`)
	tokens := l.Tokens()
	assert.Equal(t, token.STRING, tokens[0].Kind)
	assert.Equal(t, `hello\nworld`, tokens[0].Literal)
}

func TestNextTokenStringLiteralSpansNewlinesAndAdvancesLine(t *testing.T) {
	l := New("\"line one\nline two\" nextIdent")
	tokens := l.Tokens()
	assert.Equal(t, token.STRING, tokens[0].Kind)
	assert.Equal(t, "line one\nline two", tokens[0].Literal)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestNextTokenUnterminatedStringIsLexError(t *testing.T) {
	l := New(`"never closed`)
	l.Tokens()
	assert.True(t, l.HasErrors())
}

func TestNextTokenHashCommentConsumedToNewline(t *testing.T) {
	l := New("let a = 1; # this is a comment\nlet b = 2;")
	tokens := l.Tokens()
	var kinds []token.Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.NotContains(t, kinds, token.Kind("COMMENT"))
	assert.Equal(t, token.LET, tokens[0].Kind)
	assert.Equal(t, token.LET, tokens[5].Kind)
}

func TestNextTokenUnexpectedCharacterIsLexErrorButScanContinues(t *testing.T) {
	l := New("let a = @ 1;")
	tokens := l.Tokens()
	assert.True(t, l.HasErrors())
	// scanning continued past the bad character to EOF
	assert.Equal(t, token.EOF, tokens[len(tokens)-1].Kind)
}

func TestNextTokenLineCounting(t *testing.T) {
	l := New("let a = 1;\nlet b = 2;\nprint a;")
	tokens := l.Tokens()
	assert.Equal(t, 1, tokens[0].Line)
	// "print" starts the third line
	var printTok token.Token
	for _, tok := range tokens {
		if tok.Kind == token.PRINT {
			printTok = tok
		}
	}
	assert.Equal(t, 3, printTok.Line)
}
