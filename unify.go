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
	"github.com/wdamron/hm/types"
)

// Unify finds the most general substitution which makes a and b identical once applied to both.
//
// Unification fails with a *TypeMismatchError when the types have incompatible shapes or
// constant names, or with an *OccursCheckError when a type-variable would be bound to a type
// which contains it.
func Unify(a, b types.Type) (types.Subst, error) {
	switch a := a.(type) {
	case *types.Const:
		if b, ok := b.(*types.Const); ok {
			if a.Name != b.Name {
				return types.Subst{}, &TypeMismatchError{Expected: a, Actual: b}
			}
			return types.EmptySubst(), nil
		}

	case *types.Var:
		return bindVar(a, b)

	case *types.Arrow:
		if b, ok := b.(*types.Arrow); ok {
			s1, err := Unify(a.Arg, b.Arg)
			if err != nil {
				return types.Subst{}, err
			}
			// Constraints found between the arguments must be visible while unifying the returns:
			s2, err := Unify(s1.Apply(a.Return), s1.Apply(b.Return))
			if err != nil {
				return types.Subst{}, err
			}
			return types.Compose(s1, s2), nil
		}
	}

	if b, ok := b.(*types.Var); ok {
		return bindVar(b, a)
	}
	return types.Subst{}, &TypeMismatchError{Expected: a, Actual: b}
}

func bindVar(tv *types.Var, t types.Type) (types.Subst, error) {
	if t, ok := t.(*types.Var); ok && t.Id() == tv.Id() {
		return types.EmptySubst(), nil
	}
	if types.FreeVars(t).Contains(tv.Id()) {
		return types.Subst{}, &OccursCheckError{Var: tv, Type: t}
	}
	return types.SingletonSubst(tv, t), nil
}
