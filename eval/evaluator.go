/*
File    : yada/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval is the tree-walking evaluator: Eval(node, env) recursively
// walks a parsed AST and produces a runtime Value, constructing closures,
// short-circuiting on the first Error encountered, and unwinding
// ReturnValue markers at function and program boundaries.
package eval

import (
	"fmt"

	"github.com/yada-lang/yada/function"
	"github.com/yada-lang/yada/objects"
	"github.com/yada-lang/yada/parser"
	"github.com/yada-lang/yada/scope"
)

// defaultMaxCallDepth bounds recursive Eval nesting through function calls
// when no other limit is configured. It is a soft guard, not a language
// feature: ordinary programs never come close to it, and hitting it
// produces an ordinary Error rather than a host panic.
const defaultMaxCallDepth = 10000

// Evaluator holds the call-depth counter threaded through an
// evaluate(Program, env) walk and the limit it is checked against. It
// carries no other state: the environment chain itself is the evaluator's
// only persistent storage.
type Evaluator struct {
	callDepth    int
	maxCallDepth int
}

// NewEvaluator returns a ready-to-use Evaluator with the default call-depth
// guard.
func NewEvaluator() *Evaluator {
	return &Evaluator{maxCallDepth: defaultMaxCallDepth}
}

// NewEvaluatorWithMaxCallDepth returns an Evaluator whose soft recursion
// guard trips at maxDepth rather than defaultMaxCallDepth. A maxDepth <= 0
// falls back to the default, so a zero-value config field never disables
// the guard outright.
func NewEvaluatorWithMaxCallDepth(maxDepth int) *Evaluator {
	if maxDepth <= 0 {
		maxDepth = defaultMaxCallDepth
	}
	return &Evaluator{maxCallDepth: maxDepth}
}

// Eval is the structural dispatch described in §4.3: one case per AST node
// variant, returning a Value or a first-class Error.
func (e *Evaluator) Eval(node parser.Node, env *scope.Scope) objects.Value {
	switch node := node.(type) {

	case *parser.Program:
		return e.evalProgram(node, env)

	case *parser.ExpressionStatement:
		return e.Eval(node.Expr, env)

	case *parser.BlockStatement:
		return e.evalBlockStatement(node, env)

	case *parser.LetStatement:
		val := e.Eval(node.Value, env)
		if isError(val) {
			return val
		}
		env.Bind(node.Name.Value, val)
		return nil

	case *parser.ReturnStatement:
		val := e.Eval(node.ReturnValue, env)
		if isError(val) {
			return val
		}
		return &objects.ReturnValue{Value: val}

	case *parser.IntegerLiteral:
		return &objects.Integer{Value: node.Value}

	case *parser.StringLiteral:
		return &objects.String{Value: node.Value}

	case *parser.Boolean:
		return objects.NativeBool(node.Value)

	case *parser.Identifier:
		return e.evalIdentifier(node, env)

	case *parser.PrefixExpression:
		right := e.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return e.evalPrefixExpression(node.Operator, right)

	case *parser.InfixExpression:
		left := e.Eval(node.Left, env)
		if isError(left) {
			return left
		}
		right := e.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return e.evalInfixExpression(node.Operator, left, right)

	case *parser.IfExpression:
		return e.evalIfExpression(node, env)

	case *parser.FunctionLiteral:
		return &function.Function{Parameters: node.Parameters, Body: node.Body, Env: env}

	case *parser.CallExpression:
		fn := e.Eval(node.Function, env)
		if isError(fn) {
			return fn
		}
		args := e.evalExpressions(node.Arguments, env)
		if len(args) == 1 && isError(args[0]) {
			return args[0]
		}
		return e.applyFunction(fn, args)

	case *parser.ArrayLiteral:
		elements := e.evalExpressions(node.Elements, env)
		if len(elements) == 1 && isError(elements[0]) {
			return elements[0]
		}
		return &objects.Array{Elements: elements}

	case *parser.IndexExpression:
		left := e.Eval(node.Left, env)
		if isError(left) {
			return left
		}
		index := e.Eval(node.Index, env)
		if isError(index) {
			return index
		}
		return e.evalIndexExpression(left, index)

	case *parser.HashLiteral:
		return e.evalHashLiteral(node, env)
	}

	return nil
}

// evalProgram evaluates each top-level statement in order; a ReturnValue is
// unwrapped and returned immediately (there is no enclosing function for it
// to unwind through further), and an Error is returned as soon as it
// appears.
func (e *Evaluator) evalProgram(program *parser.Program, env *scope.Scope) objects.Value {
	var result objects.Value

	for _, stmt := range program.Statements {
		result = e.Eval(stmt, env)

		switch result := result.(type) {
		case *objects.ReturnValue:
			return result.Value
		case *objects.Error:
			return result
		}
	}

	return result
}

// evalBlockStatement evaluates a block's statements in order. Unlike
// evalProgram it does NOT unwrap a ReturnValue: it passes it (and any
// Error) up unchanged, so a `return` inside a nested if-block keeps
// propagating until it reaches the Program root or a function call site.
func (e *Evaluator) evalBlockStatement(block *parser.BlockStatement, env *scope.Scope) objects.Value {
	var result objects.Value

	for _, stmt := range block.Statements {
		result = e.Eval(stmt, env)

		if result != nil {
			rt := result.GetType()
			if rt == objects.ReturnValueObj || rt == objects.ErrorObj {
				return result
			}
		}
	}

	return result
}

func (e *Evaluator) evalExpressions(exprs []parser.Expression, env *scope.Scope) []objects.Value {
	result := make([]objects.Value, 0, len(exprs))

	for _, expr := range exprs {
		evaluated := e.Eval(expr, env)
		if isError(evaluated) {
			return []objects.Value{evaluated}
		}
		result = append(result, evaluated)
	}

	return result
}

func (e *Evaluator) evalIdentifier(node *parser.Identifier, env *scope.Scope) objects.Value {
	if val, ok := env.LookUp(node.Value); ok {
		return val
	}
	if builtin, ok := objects.Builtins[node.Value]; ok {
		return builtin
	}
	return newError("identifier not found: %s", node.Value)
}

// applyFunction dispatches a Call to either a user-defined Function
// (building a fresh call scope chained to the function's captured
// environment) or a Builtin (invoked directly on the argument slice).
func (e *Evaluator) applyFunction(fn objects.Value, args []objects.Value) objects.Value {
	switch fn := fn.(type) {
	case *function.Function:
		e.callDepth++
		if e.callDepth > e.maxCallDepth {
			e.callDepth--
			return newError("maximum call depth exceeded")
		}
		defer func() { e.callDepth-- }()

		if len(args) != len(fn.Parameters) {
			return newError("wrong number of arguments. got=%d, want=%d", len(args), len(fn.Parameters))
		}

		callScope := scope.NewScope(fn.Env)
		for i, param := range fn.Parameters {
			callScope.Bind(param.Value, args[i])
		}

		evaluated := e.Eval(fn.Body, callScope)
		return unwrapReturnValue(evaluated)

	case *objects.Builtin:
		return fn.Fn(args...)

	default:
		return newError("not a function: %s", fn.GetType())
	}
}

func unwrapReturnValue(val objects.Value) objects.Value {
	if returnValue, ok := val.(*objects.ReturnValue); ok {
		return returnValue.Value
	}
	return val
}

func isError(val objects.Value) bool {
	if val == nil {
		return false
	}
	return val.GetType() == objects.ErrorObj
}

func newError(format string, args ...interface{}) *objects.Error {
	return &objects.Error{Message: fmt.Sprintf(format, args...)}
}
