/*
File    : yada/objects/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"fmt"
	"io"
	"os"
)

// Writer is the sink puts writes to. It defaults to os.Stdout; tests and
// the REPL may swap it to capture or redirect output.
var Writer io.Writer = os.Stdout

// Builtins is the fixed, name-indexed table of host-implemented functions
// (§4.4). It is installed once at package init and never mutated afterward.
var Builtins = map[string]*Builtin{
	"len":   {Fn: builtinLen},
	"first": {Fn: builtinFirst},
	"last":  {Fn: builtinLast},
	"rest":  {Fn: builtinRest},
	"push":  {Fn: builtinPush},
	"puts":  {Fn: builtinPuts},
}

func newError(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

func wrongArgCount(got, want int) *Error {
	return newError("wrong number of arguments. got=%d, want=%d", got, want)
}

func builtinLen(args ...Value) Value {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len(arg.Value))}
	case *Array:
		return &Integer{Value: int64(len(arg.Elements))}
	default:
		return newError("argument to 'len' not supported, got=%s", args[0].GetType())
	}
}

func builtinFirst(args ...Value) Value {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to 'first' must be ARRAY, got=%s", args[0].GetType())
	}
	if len(arr.Elements) > 0 {
		return arr.Elements[0]
	}
	return NULL
}

func builtinLast(args ...Value) Value {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to 'last' must be ARRAY, got=%s", args[0].GetType())
	}
	if n := len(arr.Elements); n > 0 {
		return arr.Elements[n-1]
	}
	return NULL
}

func builtinRest(args ...Value) Value {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to 'rest' must be ARRAY, got=%s", args[0].GetType())
	}
	if n := len(arr.Elements); n > 0 {
		rest := make([]Value, n-1)
		copy(rest, arr.Elements[1:])
		return &Array{Elements: rest}
	}
	return NULL
}

func builtinPush(args ...Value) Value {
	if len(args) != 2 {
		return wrongArgCount(len(args), 2)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to 'push' must be ARRAY, got=%s", args[0].GetType())
	}
	n := len(arr.Elements)
	newElements := make([]Value, n+1)
	copy(newElements, arr.Elements)
	newElements[n] = args[1]
	return &Array{Elements: newElements}
}

func builtinPuts(args ...Value) Value {
	for _, arg := range args {
		fmt.Fprintln(Writer, arg.ToString())
	}
	return NULL
}
