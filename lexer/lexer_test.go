/*
File    : yada/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextToken(t *testing.T) {
	input := `let five = 5;
let add = fn(x, y) {
  x + y;
};
let result = add(five, ten);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
"foobar"
"foo bar"
[1, 2];
{"foo": "bar"}
`

	expected := []Token{
		{LET, "let"}, {IDENT, "five"}, {ASSIGN, "="}, {INT, "5"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "add"}, {ASSIGN, "="}, {FUNCTION, "fn"}, {LPAREN, "("},
		{IDENT, "x"}, {COMMA, ","}, {IDENT, "y"}, {RPAREN, ")"}, {LBRACE, "{"},
		{IDENT, "x"}, {PLUS, "+"}, {IDENT, "y"}, {SEMICOLON, ";"},
		{RBRACE, "}"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "result"}, {ASSIGN, "="}, {IDENT, "add"}, {LPAREN, "("},
		{IDENT, "five"}, {COMMA, ","}, {IDENT, "ten"}, {RPAREN, ")"}, {SEMICOLON, ";"},
		{BANG, "!"}, {MINUS, "-"}, {SLASH, "/"}, {ASTERISK, "*"}, {INT, "5"}, {SEMICOLON, ";"},
		{INT, "5"}, {LT, "<"}, {INT, "10"}, {GT, ">"}, {INT, "5"}, {SEMICOLON, ";"},
		{IF, "if"}, {LPAREN, "("}, {INT, "5"}, {LT, "<"}, {INT, "10"}, {RPAREN, ")"}, {LBRACE, "{"},
		{RETURN, "return"}, {TRUE, "true"}, {SEMICOLON, ";"},
		{RBRACE, "}"}, {ELSE, "else"}, {LBRACE, "{"},
		{RETURN, "return"}, {FALSE, "false"}, {SEMICOLON, ";"},
		{RBRACE, "}"},
		{INT, "10"}, {EQ, "=="}, {INT, "10"}, {SEMICOLON, ";"},
		{INT, "10"}, {NOT_EQ, "!="}, {INT, "9"}, {SEMICOLON, ";"},
		{STRING, "foobar"},
		{STRING, "foo bar"},
		{LBRACKET, "["}, {INT, "1"}, {COMMA, ","}, {INT, "2"}, {RBRACKET, "]"}, {SEMICOLON, ";"},
		{LBRACE, "{"}, {STRING, "foo"}, {COLON, ":"}, {STRING, "bar"}, {RBRACE, "}"},
		{EOF, ""},
	}

	lex := New(input)
	for i, want := range expected {
		got := lex.NextToken()
		require.Equalf(t, want, got, "token %d", i)
	}
}

func TestNoEscapeProcessing(t *testing.T) {
	lex := New(`"a\nb"`)
	tok := lex.NextToken()
	require.Equal(t, STRING, tok.Type)
	require.Equal(t, `a\nb`, tok.Literal, "backslash-n must be two raw bytes, not a newline")
}

func TestUnterminatedStringIsIllegal(t *testing.T) {
	lex := New(`"abc`)
	tok := lex.NextToken()
	require.Equal(t, ILLEGAL, tok.Type)
}

func TestIllegalCharacter(t *testing.T) {
	lex := New(`@`)
	tok := lex.NextToken()
	require.Equal(t, ILLEGAL, tok.Type)
	require.Equal(t, "@", tok.Literal)
}

func TestEOFIsSticky(t *testing.T) {
	lex := New(``)
	require.Equal(t, EOF, lex.NextToken().Type)
	require.Equal(t, EOF, lex.NextToken().Type)
}
