// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package hm

import (
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/hm/types"
)

var emptyEnvMap = immutable.NewSortedMap(nil)

// TypeEnv is a type-environment containing mappings from identifiers to declared types.
//
// Bindings are stored in a persistent map: extending an environment creates a new environment
// which shares structure with the original, and leaves the original unchanged. Environments
// which are not modified through Declare or Remove may be shared across threads for inference.
type TypeEnv struct {
	// Next unused type-variable id
	NextVarId int

	vars *immutable.SortedMap
}

// Create a type-environment. The new environment will inherit bindings from the parent, if the parent is not nil.
// Later changes to either environment are not visible to the other.
func NewTypeEnv(parent *TypeEnv) *TypeEnv {
	env := &TypeEnv{vars: emptyEnvMap}
	if parent != nil {
		env.NextVarId, env.vars = parent.NextVarId, parent.bindings()
	}
	return env
}

func (e *TypeEnv) bindings() *immutable.SortedMap {
	if e.vars == nil {
		return emptyEnvMap
	}
	return e.vars
}

func (e *TypeEnv) freshId() int {
	id := e.NextVarId
	e.NextVarId++
	return id
}

// Create a type-variable with a unique id. Type-variables declared within the environment are
// monomorphic: each use of the variable refers to the same (unknown) type.
func (e *TypeEnv) NewVar() *types.Var { return types.NewVar(e.freshId()) }

// Declare a type for an identifier within the type environment.
func (e *TypeEnv) Declare(name string, t types.Type) { e.vars = e.bindings().Set(name, t) }

// Remove the declared type for an identifier within the type environment.
func (e *TypeEnv) Remove(name string) { e.vars = e.bindings().Delete(name) }

// Lookup the type for an identifier in the environment.
func (e *TypeEnv) Lookup(name string) (types.Type, bool) {
	t, ok := e.bindings().Get(name)
	if !ok {
		return nil, false
	}
	return t.(types.Type), true
}

// Get the number of identifiers declared within the environment.
func (e *TypeEnv) Len() int { return e.bindings().Len() }

// Iterate over declared identifiers, sorted by name.
// If f returns false, iteration will be stopped.
func (e *TypeEnv) Range(f func(string, types.Type) bool) {
	iter := e.bindings().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(types.Type)) {
			return
		}
	}
}

// Extend returns a copy of the environment with an additional binding. Any existing binding
// for name is shadowed within the copy. e is not modified.
func (e *TypeEnv) Extend(name string, t types.Type) *TypeEnv {
	return &TypeEnv{NextVarId: e.NextVarId, vars: e.bindings().Set(name, t)}
}

// Apply returns a copy of the environment with s applied to every declared type. e is not modified.
func (e *TypeEnv) Apply(s types.Subst) *TypeEnv {
	if s.Len() == 0 {
		return e
	}
	m := e.bindings()
	e.Range(func(name string, t types.Type) bool {
		if applied := s.Apply(t); applied != t {
			m = m.Set(name, applied)
		}
		return true
	})
	return &TypeEnv{NextVarId: e.NextVarId, vars: m}
}
