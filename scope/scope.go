/*
File    : yada/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements Yada's Environment: a name-to-value mapping with
// a parent-pointer chain for lexical lookup. A function's captured
// environment is shared by every closure built from it — never copied —
// which is what makes a later mutation of that environment (a new `let` in
// the same defining scope) visible to every closure sharing it.
package scope

import "github.com/yada-lang/yada/objects"

// Scope is a single lexical frame. Lookup walks Parent outward; Bind always
// writes into the current frame, so `let` never reaches into an enclosing
// scope to rebind a name there.
type Scope struct {
	Variables map[string]objects.Value
	Parent    *Scope
}

// NewScope creates a fresh frame whose parent is the given Scope, or a
// top-level frame if parent is nil.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.Value),
		Parent:    parent,
	}
}

// LookUp walks the scope chain outward for name, reporting whether it was
// found anywhere in the chain.
func (s *Scope) LookUp(name string) (objects.Value, bool) {
	val, ok := s.Variables[name]
	if !ok && s.Parent != nil {
		return s.Parent.LookUp(name)
	}
	return val, ok
}

// Bind creates or overwrites name in the current frame only. Repeated let
// of the same name in the same scope is last-write-wins.
func (s *Scope) Bind(name string, val objects.Value) objects.Value {
	s.Variables[name] = val
	return val
}
