/*
File    : yada/main/print_visitor.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"fmt"

	"github.com/yada-lang/yada/parser"
)

const astIndentSize = 4 // Number of spaces per indentation level

// PrintingVisitor walks a parsed AST and renders it as an indented tree,
// one line per node, for the --ast debugging flag. It dispatches on the
// node's concrete type with a type switch rather than a double-dispatch
// Accept method, since parser.Node carries no Accept hook — the tagged
// variants are already exhaustively matched the same way eval.Eval matches
// them.
type PrintingVisitor struct {
	Indent int          // Current indentation level for formatting
	Buf    bytes.Buffer // Buffer to accumulate the formatted output
}

func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

func (p *PrintingVisitor) line(format string, args ...interface{}) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf(format, args...))
	p.Buf.WriteString("\n")
}

// String returns the accumulated formatted output.
func (p *PrintingVisitor) String() string {
	return p.Buf.String()
}

// VisitProgram visits every top-level statement in order.
func (p *PrintingVisitor) VisitProgram(prog *parser.Program) {
	p.line("Program (%d statements)", len(prog.Statements))
	p.Indent += astIndentSize
	for _, stmt := range prog.Statements {
		p.visitStatement(stmt)
	}
	p.Indent -= astIndentSize
}

func (p *PrintingVisitor) visitStatement(stmt parser.Statement) {
	switch s := stmt.(type) {
	case *parser.LetStatement:
		p.line("Let %s =", s.Name.Value)
		p.Indent += astIndentSize
		p.visitExpression(s.Value)
		p.Indent -= astIndentSize

	case *parser.ReturnStatement:
		p.line("Return")
		p.Indent += astIndentSize
		p.visitExpression(s.ReturnValue)
		p.Indent -= astIndentSize

	case *parser.ExpressionStatement:
		p.visitExpression(s.Expr)

	case *parser.BlockStatement:
		p.line("Block (%d statements)", len(s.Statements))
		p.Indent += astIndentSize
		for _, inner := range s.Statements {
			p.visitStatement(inner)
		}
		p.Indent -= astIndentSize

	default:
		p.line("Statement (%s)", stmt.String())
	}
}

func (p *PrintingVisitor) visitExpression(expr parser.Expression) {
	if expr == nil {
		p.line("<nil>")
		return
	}

	switch e := expr.(type) {
	case *parser.IntegerLiteral:
		p.line("Integer (%d)", e.Value)

	case *parser.Boolean:
		p.line("Boolean (%t)", e.Value)

	case *parser.StringLiteral:
		p.line("String (%q)", e.Value)

	case *parser.Identifier:
		p.line("Identifier (%s)", e.Value)

	case *parser.PrefixExpression:
		p.line("Prefix (%s)", e.Operator)
		p.Indent += astIndentSize
		p.visitExpression(e.Right)
		p.Indent -= astIndentSize

	case *parser.InfixExpression:
		p.line("Infix (%s)", e.Operator)
		p.Indent += astIndentSize
		p.visitExpression(e.Left)
		p.visitExpression(e.Right)
		p.Indent -= astIndentSize

	case *parser.IfExpression:
		p.line("If")
		p.Indent += astIndentSize
		p.visitExpression(e.Condition)
		p.visitStatement(e.Consequence)
		if e.Alternative != nil {
			p.visitStatement(e.Alternative)
		}
		p.Indent -= astIndentSize

	case *parser.FunctionLiteral:
		params := make([]string, 0, len(e.Parameters))
		for _, param := range e.Parameters {
			params = append(params, param.Value)
		}
		p.line("Function (%v)", params)
		p.Indent += astIndentSize
		p.visitStatement(e.Body)
		p.Indent -= astIndentSize

	case *parser.CallExpression:
		p.line("Call")
		p.Indent += astIndentSize
		p.visitExpression(e.Function)
		for _, arg := range e.Arguments {
			p.visitExpression(arg)
		}
		p.Indent -= astIndentSize

	case *parser.ArrayLiteral:
		p.line("Array (%d elements)", len(e.Elements))
		p.Indent += astIndentSize
		for _, el := range e.Elements {
			p.visitExpression(el)
		}
		p.Indent -= astIndentSize

	case *parser.IndexExpression:
		p.line("Index")
		p.Indent += astIndentSize
		p.visitExpression(e.Left)
		p.visitExpression(e.Index)
		p.Indent -= astIndentSize

	case *parser.HashLiteral:
		p.line("Hash (%d pairs)", len(e.Keys))
		p.Indent += astIndentSize
		for i, key := range e.Keys {
			p.visitExpression(key)
			p.visitExpression(e.Vals[i])
		}
		p.Indent -= astIndentSize

	default:
		p.line("Expression (%s)", expr.String())
	}
}
