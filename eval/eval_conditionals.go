/*
File    : yada/eval/eval_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/yada-lang/yada/objects"
	"github.com/yada-lang/yada/parser"
	"github.com/yada-lang/yada/scope"
)

func (e *Evaluator) evalIfExpression(ie *parser.IfExpression, env *scope.Scope) objects.Value {
	condition := e.Eval(ie.Condition, env)
	if isError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return e.Eval(ie.Consequence, env)
	} else if ie.Alternative != nil {
		return e.Eval(ie.Alternative, env)
	}
	return objects.NULL
}

// isTruthy: a Value is truthy iff it is neither FALSE nor NULL.
func isTruthy(val objects.Value) bool {
	switch val {
	case objects.NULL:
		return false
	case objects.TRUE:
		return true
	case objects.FALSE:
		return false
	default:
		return true
	}
}
