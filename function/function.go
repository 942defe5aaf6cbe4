/*
File    : yada/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function holds the Function value: a parameter list, a body, and
// the environment it closed over at the point of definition. It is its own
// package (rather than living in objects) because it needs to refer to the
// parser's AST nodes and the scope package both, and objects must stay free
// of a parser import.
package function

import (
	"bytes"
	"strings"

	"github.com/yada-lang/yada/objects"
	"github.com/yada-lang/yada/parser"
	"github.com/yada-lang/yada/scope"
)

// Function is a closure: Parameters and Body come straight from the
// FunctionLiteral that produced it; Env is the scope active when that
// literal was evaluated, captured by reference so later bindings in that
// scope remain visible to the closure.
type Function struct {
	Parameters []*parser.Identifier
	Body       *parser.BlockStatement
	Env        *scope.Scope
}

func (f *Function) GetType() objects.ObjectType { return objects.FunctionObj }

// ToString renders the display form "fn(p1,p2,…) {\n<body-string>\n}":
// parameters joined by commas without spaces, the body on a line of its own.
func (f *Function) ToString() string {
	var out bytes.Buffer

	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}

	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ","))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")

	return out.String()
}
