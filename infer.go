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
	"github.com/pkg/errors"

	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

// infer returns the type of e within env and the substitution discovered while inferring it.
// The returned type has already been rewritten through the returned substitution.
//
// If inference fails, the returned substitution contains the bindings discovered before the failure.
func (ti *InferenceContext) infer(env *TypeEnv, e ast.Expr) (types.Type, types.Subst, error) {
	t, s, err := ti.inferExpr(env, e)
	if err == nil && ti.annotate {
		ti.annotations[e] = t
	}
	return t, s, err
}

func (ti *InferenceContext) inferExpr(env *TypeEnv, e ast.Expr) (types.Type, types.Subst, error) {
	switch e := e.(type) {
	case *ast.Int:
		return types.Int, types.EmptySubst(), nil

	case *ast.Bool:
		return types.Bool, types.EmptySubst(), nil

	case *ast.Var:
		t, ok := env.Lookup(e.Name)
		if !ok {
			return nil, types.EmptySubst(), ti.fail(e, &UndeclaredVariableError{Name: e.Name})
		}
		return t, types.EmptySubst(), nil

	case *ast.Func:
		tv := ti.varTracker.New()
		// The parameter is only visible within the body:
		ret, s, err := ti.infer(env.Extend(e.Param, tv), e.Body)
		if err != nil {
			return nil, s, err
		}
		return &types.Arrow{Arg: s.Apply(tv), Return: ret}, s, nil

	case *ast.Call:
		ft, s1, err := ti.infer(env, e.Func)
		if err != nil {
			return nil, s1, err
		}
		at, s2, err := ti.infer(env.Apply(s1), e.Arg)
		s := types.Compose(s1, s2)
		if err != nil {
			return nil, s, err
		}
		ret := ti.varTracker.New()
		s3, err := Unify(s2.Apply(ft), &types.Arrow{Arg: at, Return: ret})
		if err != nil {
			return nil, s, ti.fail(e, err)
		}
		return s3.Apply(ret), types.Compose(s, s3), nil

	case *ast.Cond:
		ct, s1, err := ti.infer(env, e.Cond)
		if err != nil {
			return nil, s1, err
		}
		s2, err := Unify(ct, types.Bool)
		if err != nil {
			return nil, s1, ti.fail(e, &ConditionNotBooleanError{Actual: ct, cause: err})
		}
		s := types.Compose(s1, s2)
		tt, s3, err := ti.infer(env.Apply(s), e.Then)
		s = types.Compose(s, s3)
		if err != nil {
			return nil, s, err
		}
		ft, s4, err := ti.infer(env.Apply(s), e.Else)
		s = types.Compose(s, s4)
		if err != nil {
			return nil, s, err
		}
		// The type of the true branch may refer to type-variables resolved within the false branch:
		tt = s4.Apply(tt)
		s5, err := Unify(tt, ft)
		if err != nil {
			return nil, s, ti.fail(e, &BranchTypeMismatchError{True: tt, False: ft, cause: err})
		}
		return s5.Apply(ft), types.Compose(s, s5), nil
	}

	var exprName string
	if e != nil {
		exprName = "(" + e.ExprName() + ")"
	} else {
		exprName = "(nil)"
	}
	return nil, types.EmptySubst(), ti.fail(e, errors.Errorf("Unhandled expression %s", exprName))
}
