/*
File    : yada/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/yada-lang/yada/lexer"

// Operator precedence levels, lowest to highest. Absent tokens yield LOWEST.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // > <
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x !x
	CALL        // myFunction(x)
	INDEX       // array[index]
)

var precedences = map[lexer.TokenType]int{
	lexer.EQ:       EQUALS,
	lexer.NOT_EQ:   EQUALS,
	lexer.LT:       LESSGREATER,
	lexer.GT:       LESSGREATER,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.SLASH:    PRODUCT,
	lexer.ASTERISK: PRODUCT,
	lexer.LPAREN:   CALL,
	lexer.LBRACKET: INDEX,
}

func precedenceOf(tok lexer.Token) int {
	if p, ok := precedences[tok.Type]; ok {
		return p
	}
	return LOWEST
}

type (
	prefixParseFn func() Expression
	infixParseFn  func(left Expression) Expression
)
