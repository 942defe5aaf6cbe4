/*
File    : yada/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/yada-lang/yada/objects"
	"github.com/yada-lang/yada/parser"
	"github.com/yada-lang/yada/scope"
)

// evalHashLiteral evaluates key and value expressions in source order, key
// before value, requiring each key to be Hashable; later duplicate keys
// overwrite earlier ones.
func (e *Evaluator) evalHashLiteral(node *parser.HashLiteral, env *scope.Scope) objects.Value {
	pairs := make(map[objects.HashKey]objects.HashPair)

	for i, keyNode := range node.Keys {
		key := e.Eval(keyNode, env)
		if isError(key) {
			return key
		}

		hashKey, ok := key.(objects.Hashable)
		if !ok {
			return newError("unusable as hash key: %s", key.GetType())
		}

		value := e.Eval(node.Vals[i], env)
		if isError(value) {
			return value
		}

		pairs[hashKey.HashKey()] = objects.HashPair{Key: key, Value: value}
	}

	return &objects.Hash{Pairs: pairs}
}
