/*
File    : yada/print_visitor.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"fmt"

	"github.com/yada-lang/yada/parser"
)

const demoIndentSize = 4

// PrintingVisitor walks a parsed Program and renders it as an indented
// tree, one line per node. It is the small standalone demo counterpart of
// main/print_visitor.go — see that file for the full node coverage; this
// one only exercises what the four sample programs in main.go use.
type PrintingVisitor struct {
	Indent int
	Buf    bytes.Buffer
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

// VisitProgram prints the program's statement count, then every statement.
func (p *PrintingVisitor) VisitProgram(prog *parser.Program) {
	p.line("Program (%d statements)", len(prog.Statements))
	p.Indent += demoIndentSize
	for _, stmt := range prog.Statements {
		p.visitStatement(stmt)
	}
	p.Indent -= demoIndentSize
}

func (p *PrintingVisitor) visitStatement(stmt parser.Statement) {
	es, ok := stmt.(*parser.ExpressionStatement)
	if !ok {
		p.line("Statement (%s)", stmt.String())
		return
	}
	p.visitExpression(es.Expr)
}

func (p *PrintingVisitor) visitExpression(expr parser.Expression) {
	switch e := expr.(type) {
	case *parser.IntegerLiteral:
		p.line("Integer (%d)", e.Value)
	case *parser.Boolean:
		p.line("Boolean (%t)", e.Value)
	case *parser.PrefixExpression:
		p.line("Prefix (%s)", e.Operator)
		p.Indent += demoIndentSize
		p.visitExpression(e.Right)
		p.Indent -= demoIndentSize
	case *parser.InfixExpression:
		p.line("Infix (%s)", e.Operator)
		p.Indent += demoIndentSize
		p.visitExpression(e.Left)
		p.visitExpression(e.Right)
		p.Indent -= demoIndentSize
	default:
		p.line("Expression (%s)", expr.String())
	}
}

// String returns the accumulated formatted output.
func (p *PrintingVisitor) String() string {
	return p.Buf.String()
}
