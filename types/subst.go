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

package types

import (
	"github.com/benbjohnson/immutable"
	"github.com/hashicorp/go-set/v2"
)

var emptySubstMap = immutable.NewSortedMap(nil)

// Subst contains immutable mappings from type-variable ids to types. Entries are sorted by id.
//
// The zero value is an empty substitution.
type Subst struct {
	m *immutable.SortedMap
}

func EmptySubst() Subst { return Subst{emptySubstMap} }

// Create a Subst with a single entry.
func SingletonSubst(tv *Var, t Type) Subst {
	return Subst{emptySubstMap.Set(tv.Id(), t)}
}

// Get the number of entries in the substitution.
func (s Subst) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Get the type bound to the type-variable with the given id.
func (s Subst) Lookup(id int) (Type, bool) {
	if s.m == nil {
		return nil, false
	}
	t, ok := s.m.Get(id)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Iterate over entries in the substitution, in order of type-variable id.
// If f returns false, iteration will be stopped.
func (s Subst) Range(f func(int, Type) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(int), v.(Type)) {
			return
		}
	}
}

// Bind a type-variable within a copy of the substitution. s is not modified.
func (s Subst) Extend(tv *Var, t Type) Subst {
	m := s.m
	if m == nil {
		m = emptySubstMap
	}
	return Subst{m.Set(tv.Id(), t)}
}

// Apply rewrites t through the substitution. Bound type-variables are resolved transitively;
// a type-variable encountered again while its own binding is being resolved is left in place.
// Sub-trees which are not rewritten are returned as-is.
func (s Subst) Apply(t Type) Type {
	if s.Len() == 0 {
		return t
	}
	return s.apply(t, nil)
}

func (s Subst) apply(t Type, resolving *set.Set[int]) Type {
	switch t := t.(type) {
	case *Var:
		if resolving != nil && resolving.Contains(t.id) {
			return t
		}
		bound, ok := s.Lookup(t.id)
		if !ok {
			return t
		}
		if resolving == nil {
			resolving = set.New[int](4)
		}
		resolving.Insert(t.id)
		bound = s.apply(bound, resolving)
		resolving.Remove(t.id)
		return bound

	case *Arrow:
		arg, ret := s.apply(t.Arg, resolving), s.apply(t.Return, resolving)
		if arg == t.Arg && ret == t.Return {
			return t
		}
		return &Arrow{Arg: arg, Return: ret}

	default:
		return t
	}
}

// Compose returns a substitution equivalent to applying older and then newer.
//
// Each type bound in older is rewritten through newer, then bindings from newer are added.
// Bindings in older take precedence over bindings in newer for the same type-variable, since
// older has already replaced the type-variable by the time newer is applied.
func Compose(older, newer Subst) Subst {
	if newer.Len() == 0 {
		if older.m == nil {
			return EmptySubst()
		}
		return older
	}
	if older.Len() == 0 {
		return newer
	}
	m := newer.m
	older.Range(func(id int, t Type) bool {
		m = m.Set(id, newer.Apply(t))
		return true
	})
	return Subst{m}
}
