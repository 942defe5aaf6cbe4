/*
File    : yada/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, src string) *Program {
	p := New(src)
	program := p.ParseProgram()
	checkParserErrors(t, p)
	return program
}

func checkParserErrors(t *testing.T, p *Parser) {
	errs := p.Errors()
	if len(errs) == 0 {
		return
	}
	t.Errorf("parser had %d errors", len(errs))
	for _, msg := range errs {
		t.Errorf("parser error: %s", msg)
	}
	t.FailNow()
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input              string
		expectedIdentifier string
	}{
		{"let x = 5;", "x"},
		{"let y = true;", "y"},
		{"let foobar = y;", "foobar"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		require.Len(t, program.Statements, 1)

		stmt, ok := program.Statements[0].(*LetStatement)
		require.True(t, ok)
		require.Equal(t, "let", stmt.TokenLiteral())
		require.Equal(t, tt.expectedIdentifier, stmt.Name.Value)
	}
}

func TestReturnStatements(t *testing.T) {
	program := parseProgram(t, "return 5; return true; return foobar;")
	require.Len(t, program.Statements, 3)

	for _, stmt := range program.Statements {
		rs, ok := stmt.(*ReturnStatement)
		require.True(t, ok)
		require.Equal(t, "return", rs.TokenLiteral())
	}
}

func TestLetMissingSemicolonAtEOF(t *testing.T) {
	program := parseProgram(t, "let x = 5")
	require.Len(t, program.Statements, 1)
}

func TestIdentifierExpression(t *testing.T) {
	program := parseProgram(t, "foobar;")
	stmt, ok := program.Statements[0].(*ExpressionStatement)
	require.True(t, ok)

	ident, ok := stmt.Expr.(*Identifier)
	require.True(t, ok)
	require.Equal(t, "foobar", ident.Value)
}

func TestIntegerLiteralExpression(t *testing.T) {
	program := parseProgram(t, "5;")
	stmt := program.Statements[0].(*ExpressionStatement)
	lit, ok := stmt.Expr.(*IntegerLiteral)
	require.True(t, ok)
	require.Equal(t, int64(5), lit.Value)
}

func TestStringLiteralExpression(t *testing.T) {
	program := parseProgram(t, `"hello world";`)
	stmt := program.Statements[0].(*ExpressionStatement)
	lit, ok := stmt.Expr.(*StringLiteral)
	require.True(t, ok)
	require.Equal(t, "hello world", lit.Value)
}

func TestPrefixExpressions(t *testing.T) {
	tests := []struct {
		input    string
		operator string
		value    int64
	}{
		{"!5;", "!", 5},
		{"-15;", "-", 15},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ExpressionStatement)
		expr, ok := stmt.Expr.(*PrefixExpression)
		require.True(t, ok)
		require.Equal(t, tt.operator, expr.Operator)
		testIntegerLiteral(t, expr.Right, tt.value)
	}
}

func TestInfixExpressions(t *testing.T) {
	tests := []struct {
		input      string
		leftValue  int64
		operator   string
		rightValue int64
	}{
		{"5 + 5;", 5, "+", 5},
		{"5 - 5;", 5, "-", 5},
		{"5 * 5;", 5, "*", 5},
		{"5 / 5;", 5, "/", 5},
		{"5 > 5;", 5, ">", 5},
		{"5 < 5;", 5, "<", 5},
		{"5 == 5;", 5, "==", 5},
		{"5 != 5;", 5, "!=", 5},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ExpressionStatement)
		expr, ok := stmt.Expr.(*InfixExpression)
		require.True(t, ok)
		testIntegerLiteral(t, expr.Left, tt.leftValue)
		require.Equal(t, tt.operator, expr.Operator)
		testIntegerLiteral(t, expr.Right, tt.rightValue)
	}
}

func testIntegerLiteral(t *testing.T, expr Expression, value int64) {
	lit, ok := expr.(*IntegerLiteral)
	require.True(t, ok)
	require.Equal(t, value, lit.Value)
}

// TestOperatorPrecedenceRoundTrip exercises spec.md §8's pretty-printer
// scenarios: the parsed tree's String() form must be the canonical,
// fully-parenthesized rendering.
func TestOperatorPrecedenceRoundTrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"3 + 4; -5 * 5", "(3 + 4)((-5) * 5)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true", "true"},
		{"false", "false"},
		{"3 > 5 == false", "((3 > 5) == false)"},
		{"3 < 5 == true", "((3 < 5) == true)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"2 / (5 + 5)", "(2 / (5 + 5))"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d)"},
		{"add(a * b[2], b[1], 2 * [1, 2][1])", "add((a * (b[2])), (b[1]), (2 * ([1, 2][1])))"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		require.Equal(t, tt.expected, program.String(), "input: %s", tt.input)
	}
}

func TestIfExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x }")
	stmt := program.Statements[0].(*ExpressionStatement)
	expr, ok := stmt.Expr.(*IfExpression)
	require.True(t, ok)
	require.Len(t, expr.Consequence.Statements, 1)
	require.Nil(t, expr.Alternative)
}

func TestIfElseExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x } else { y }")
	stmt := program.Statements[0].(*ExpressionStatement)
	expr, ok := stmt.Expr.(*IfExpression)
	require.True(t, ok)
	require.Len(t, expr.Consequence.Statements, 1)
	require.NotNil(t, expr.Alternative)
	require.Len(t, expr.Alternative.Statements, 1)
}

func TestFunctionLiteralParsing(t *testing.T) {
	program := parseProgram(t, "fn(x, y) { x + y; }")
	stmt := program.Statements[0].(*ExpressionStatement)
	fn, ok := stmt.Expr.(*FunctionLiteral)
	require.True(t, ok)
	require.Len(t, fn.Parameters, 2)
	require.Equal(t, "x", fn.Parameters[0].Value)
	require.Equal(t, "y", fn.Parameters[1].Value)
	require.Len(t, fn.Body.Statements, 1)
}

func TestFunctionParameterParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"fn() {};", []string{}},
		{"fn(x) {};", []string{"x"}},
		{"fn(x, y, z) {};", []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ExpressionStatement)
		fn := stmt.Expr.(*FunctionLiteral)
		require.Len(t, fn.Parameters, len(tt.expected))
		for i, name := range tt.expected {
			require.Equal(t, name, fn.Parameters[i].Value)
		}
	}
}

func TestCallExpressionParsing(t *testing.T) {
	program := parseProgram(t, "add(1, 2 * 3, 4 + 5);")
	stmt := program.Statements[0].(*ExpressionStatement)
	call, ok := stmt.Expr.(*CallExpression)
	require.True(t, ok)

	ident, ok := call.Function.(*Identifier)
	require.True(t, ok)
	require.Equal(t, "add", ident.Value)
	require.Len(t, call.Arguments, 3)
}

func TestArrayLiteralParsing(t *testing.T) {
	program := parseProgram(t, "[1, 2 * 2, 3 + 3]")
	stmt := program.Statements[0].(*ExpressionStatement)
	arr, ok := stmt.Expr.(*ArrayLiteral)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)
	testIntegerLiteral(t, arr.Elements[0], 1)
}

func TestIndexExpressionParsing(t *testing.T) {
	program := parseProgram(t, "myArray[1 + 1]")
	stmt := program.Statements[0].(*ExpressionStatement)
	idx, ok := stmt.Expr.(*IndexExpression)
	require.True(t, ok)

	ident, ok := idx.Left.(*Identifier)
	require.True(t, ok)
	require.Equal(t, "myArray", ident.Value)

	_, ok = idx.Index.(*InfixExpression)
	require.True(t, ok)
}

func TestHashLiteralStringKeys(t *testing.T) {
	program := parseProgram(t, `{"one": 1, "two": 2, "three": 3}`)
	stmt := program.Statements[0].(*ExpressionStatement)
	hash, ok := stmt.Expr.(*HashLiteral)
	require.True(t, ok)
	require.Len(t, hash.Keys, 3)

	expected := map[string]int64{"one": 1, "two": 2, "three": 3}
	for i, keyExpr := range hash.Keys {
		lit, ok := keyExpr.(*StringLiteral)
		require.True(t, ok)
		want, ok := expected[lit.Value]
		require.True(t, ok)
		testIntegerLiteral(t, hash.Vals[i], want)
	}
}

func TestEmptyHashLiteral(t *testing.T) {
	program := parseProgram(t, "{}")
	stmt := program.Statements[0].(*ExpressionStatement)
	hash, ok := stmt.Expr.(*HashLiteral)
	require.True(t, ok)
	require.Len(t, hash.Keys, 0)
}

// TestParseErrorsAccumulateWithoutAborting covers §4.2: a malformed `let`
// records an error and parsing keeps going rather than panicking.
func TestParseErrorsAccumulateWithoutAborting(t *testing.T) {
	p := New("let = 5; let x 5; let y = 10;")
	program := p.ParseProgram()

	require.NotEmpty(t, p.Errors())
	require.NotNil(t, program)
}

func TestNoPrefixParseFnError(t *testing.T) {
	p := New(")")
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
	require.Contains(t, p.Errors()[0], "no prefix parse function for")
}

func TestIntegerLiteralParseFailureIsReported(t *testing.T) {
	// Construct an INT-typed token literal that does not fit int64 parsing
	// by chaining digits well beyond the 64-bit range.
	huge := fmt.Sprintf("%d0000000000000000000000", int64(1)<<62)
	p := New(huge + ";")
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
	require.Contains(t, p.Errors()[0], "could not parse")
}
