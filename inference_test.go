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
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

func TestIdentityFunc(t *testing.T) {
	env := NewTypeEnv(nil)
	ctx := NewContext()

	expr := &ast.Func{Param: "x", Body: &ast.Var{Name: "x"}}

	exprString := ast.ExprString(expr)
	if exprString != "fun x -> x" {
		t.Fatalf("expr: %s", exprString)
	}

	ty, err := ctx.Infer(expr, env)
	if err != nil {
		t.Fatal(err)
	}

	arrow, ok := ty.(*types.Arrow)
	if !ok {
		t.Fatalf("expected function type, found %s", types.TypeString(ty))
	}
	if _, ok := arrow.Arg.(*types.Var); !ok || !types.Equal(arrow.Arg, arrow.Return) {
		t.Fatalf("expected identical type-variables, found %s", types.TypeString(ty))
	}
	typeString := types.TypeString(ty)
	if typeString != "'a -> 'a" {
		t.Fatalf("type: %s", typeString)
	}
	t.Logf("type: %s", typeString)
}

func TestApplyIdentity(t *testing.T) {
	expr := &ast.Call{
		Func: &ast.Func{Param: "x", Body: &ast.Var{Name: "x"}},
		Arg:  &ast.Int{Value: 5},
	}

	exprString := ast.ExprString(expr)
	if exprString != "(fun x -> x)(5)" {
		t.Fatalf("expr: %s", exprString)
	}

	ty, err := Infer(NewTypeEnv(nil), expr)
	if err != nil {
		t.Fatal(err)
	}
	if !types.Equal(ty, types.Int) {
		t.Fatalf("type: %s", types.TypeString(ty))
	}
}

func TestIntLiteral(t *testing.T) {
	env := NewTypeEnv(nil)
	env.Declare("x", types.Bool)
	env.Declare("f", &types.Arrow{Arg: types.Int, Return: types.Int})
	ctx := NewContext()

	for _, value := range []int64{0, 1, -1, 1 << 40} {
		ty, s, err := ctx.InferSubst(&ast.Int{Value: value}, env)
		if err != nil {
			t.Fatal(err)
		}
		if !types.Equal(ty, types.Int) {
			t.Fatalf("type of %d: %s", value, types.TypeString(ty))
		}
		if s.Len() != 0 {
			t.Fatalf("expected empty substitution, found %s", types.SubstString(s))
		}
	}
}

func TestVarLookup(t *testing.T) {
	env := NewTypeEnv(nil)
	declared := &types.Arrow{Arg: types.Int, Return: types.Bool}
	env.Declare("n", declared)
	ctx := NewContext()

	ty, s, err := ctx.InferSubst(&ast.Var{Name: "n"}, env)
	if err != nil {
		t.Fatal(err)
	}
	if !types.Equal(ty, declared) || s.Len() != 0 {
		t.Fatalf("type: %s, subst: %s", types.TypeString(ty), types.SubstString(s))
	}
}

func TestUndeclaredVariable(t *testing.T) {
	ctx := NewContext()
	expr := &ast.Var{Name: "y"}

	_, err := ctx.Infer(expr, NewTypeEnv(nil))
	if err == nil {
		t.Fatalf("expected undeclared variable error")
	}
	var undeclared *UndeclaredVariableError
	if !errors.As(err, &undeclared) || undeclared.Name != "y" {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.Error() != err {
		t.Fatalf("expected context error to match returned error")
	}
	if ctx.InvalidExpr() != expr {
		t.Fatalf("expected invalid expression %s, found %s", ast.ExprString(expr), ast.ExprString(ctx.InvalidExpr()))
	}
	t.Logf("Passed check for undeclared variable: %v", err)
}

func TestConditionNotBoolean(t *testing.T) {
	expr := &ast.Cond{Cond: &ast.Int{Value: 1}, Then: &ast.Int{Value: 2}, Else: &ast.Int{Value: 3}}

	_, err := Infer(NewTypeEnv(nil), expr)
	var notBool *ConditionNotBooleanError
	if !errors.As(err, &notBool) {
		t.Fatalf("unexpected error: %v", err)
	}
	if !types.Equal(notBool.Actual, types.Int) {
		t.Fatalf("condition type: %s", types.TypeString(notBool.Actual))
	}
	if _, ok := errors.Cause(err).(*TypeMismatchError); !ok {
		t.Fatalf("unexpected cause: %v", errors.Cause(err))
	}
	t.Logf("Passed check for non-boolean condition: %v", err)
}

func TestBranchTypeMismatch(t *testing.T) {
	expr := &ast.Cond{
		Cond: &ast.Bool{Value: true},
		Then: &ast.Int{Value: 1},
		Else: &ast.Func{Param: "x", Body: &ast.Var{Name: "x"}},
	}

	exprString := ast.ExprString(expr)
	if exprString != "if true then 1 else fun x -> x" {
		t.Fatalf("expr: %s", exprString)
	}

	ctx := NewContext()
	_, err := ctx.Infer(expr, NewTypeEnv(nil))
	var mismatch *BranchTypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("unexpected error: %v", err)
	}
	strs := types.TypeStrings(mismatch.True, mismatch.False)
	if strs[0] != "int" || strs[1] != "'a -> 'a" {
		t.Fatalf("branch types: %s, %s", strs[0], strs[1])
	}
	if ctx.InvalidExpr() != expr {
		t.Fatalf("unexpected invalid expression: %s", ast.ExprString(ctx.InvalidExpr()))
	}
	t.Logf("Passed check for branch type mismatch: %v", err)
}

func TestCondUnifiesBranches(t *testing.T) {
	cases := []struct {
		expr ast.Expr
		want string
	}{
		{
			&ast.Func{Param: "x", Body: &ast.Cond{
				Cond: &ast.Bool{Value: true},
				Then: &ast.Var{Name: "x"},
				Else: &ast.Int{Value: 1},
			}},
			"int -> int",
		},
		{
			&ast.Func{Param: "c", Body: &ast.Cond{
				Cond: &ast.Var{Name: "c"},
				Then: &ast.Int{Value: 1},
				Else: &ast.Int{Value: 2},
			}},
			"bool -> int",
		},
		{
			// The true branch is only resolved by the false branch:
			&ast.Func{Param: "x", Body: &ast.Func{Param: "y", Body: &ast.Cond{
				Cond: &ast.Var{Name: "x"},
				Then: &ast.Var{Name: "y"},
				Else: &ast.Var{Name: "x"},
			}}},
			"bool -> bool -> bool",
		},
	}

	ctx := NewContext()
	for _, c := range cases {
		ty, err := ctx.Infer(c.expr, NewTypeEnv(nil))
		if err != nil {
			t.Fatalf("%s: %v", ast.ExprString(c.expr), err)
		}
		if typeString := types.TypeString(ty); typeString != c.want {
			t.Fatalf("%s: type: %s", ast.ExprString(c.expr), typeString)
		}
	}
}

func TestApplyUnknownFunc(t *testing.T) {
	expr := &ast.Func{Param: "f", Body: &ast.Call{Func: &ast.Var{Name: "f"}, Arg: &ast.Int{Value: 1}}}

	ty, err := Infer(NewTypeEnv(nil), expr)
	if err != nil {
		t.Fatal(err)
	}
	typeString := types.TypeString(ty)
	if typeString != "(int -> 'a) -> 'a" {
		t.Fatalf("type: %s", typeString)
	}
	t.Logf("type: %s", typeString)
}

func TestApplyTwice(t *testing.T) {
	f, x := &ast.Var{Name: "f"}, &ast.Var{Name: "x"}
	expr := &ast.Func{Param: "f", Body: &ast.Func{Param: "x", Body: &ast.Call{
		Func: f,
		Arg:  &ast.Call{Func: f, Arg: x},
	}}}

	exprString := ast.ExprString(expr)
	if exprString != "fun f -> fun x -> f(f(x))" {
		t.Fatalf("expr: %s", exprString)
	}

	ty, err := Infer(NewTypeEnv(nil), expr)
	if err != nil {
		t.Fatal(err)
	}
	typeString := types.TypeString(ty)
	if typeString != "('a -> 'a) -> 'a -> 'a" {
		t.Fatalf("type: %s", typeString)
	}
	t.Logf("type: %s", typeString)
}

func TestApplyDeclaredFunc(t *testing.T) {
	env := NewTypeEnv(nil)
	env.Declare("isZero", &types.Arrow{Arg: types.Int, Return: types.Bool})

	good := &ast.Cond{
		Cond: &ast.Call{Func: &ast.Var{Name: "isZero"}, Arg: &ast.Int{Value: 0}},
		Then: &ast.Int{Value: 1},
		Else: &ast.Int{Value: 2},
	}
	ty, err := Infer(env, good)
	if err != nil {
		t.Fatal(err)
	}
	if !types.Equal(ty, types.Int) {
		t.Fatalf("type: %s", types.TypeString(ty))
	}

	bad := &ast.Call{Func: &ast.Var{Name: "isZero"}, Arg: &ast.Bool{Value: false}}
	_, err = Infer(env, bad)
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Logf("Passed check for argument type mismatch: %v", err)

	notFunc := &ast.Call{Func: &ast.Int{Value: 3}, Arg: &ast.Int{Value: 4}}
	_, err = Infer(env, notFunc)
	if !errors.As(err, &mismatch) {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Logf("Passed check for applied non-function: %v", err)
}

func TestSelfApplication(t *testing.T) {
	x := &ast.Var{Name: "x"}
	expr := &ast.Func{Param: "x", Body: &ast.Call{Func: x, Arg: x}}

	_, err := Infer(NewTypeEnv(nil), expr)
	var occurs *OccursCheckError
	if !errors.As(err, &occurs) {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Logf("Passed check for recursive type: %v", err)
}

func TestParamScope(t *testing.T) {
	env := NewTypeEnv(nil)
	env.Declare("x", types.Int)
	envCount := env.Len()

	// The parameter x (bound to bool within the condition) must not be visible in the branches:
	expr := &ast.Cond{
		Cond: &ast.Call{
			Func: &ast.Func{Param: "x", Body: &ast.Var{Name: "x"}},
			Arg:  &ast.Bool{Value: true},
		},
		Then: &ast.Var{Name: "x"},
		Else: &ast.Int{Value: 0},
	}

	ty, err := Infer(env, expr)
	if err != nil {
		t.Fatal(err)
	}
	if !types.Equal(ty, types.Int) {
		t.Fatalf("type: %s", types.TypeString(ty))
	}

	if env.Len() != envCount {
		t.Fatalf("expected unmodified type environment after inference")
	}
	if xt, _ := env.Lookup("x"); !types.Equal(xt, types.Int) {
		t.Fatalf("expected unmodified binding for x, found %s", types.TypeString(xt))
	}
}

func TestShadowedParam(t *testing.T) {
	env := NewTypeEnv(nil)
	env.Declare("x", types.Bool)

	expr := &ast.Func{Param: "x", Body: &ast.Call{
		Func: &ast.Func{Param: "x", Body: &ast.Var{Name: "x"}},
		Arg:  &ast.Int{Value: 1},
	}}

	ty, err := Infer(env, expr)
	if err != nil {
		t.Fatal(err)
	}
	typeString := types.TypeString(ty)
	if typeString != "'a -> int" {
		t.Fatalf("type: %s", typeString)
	}
}

func TestEnvTypeVars(t *testing.T) {
	env := NewTypeEnv(nil)
	a := env.NewVar()
	env.Declare("a", a)
	ctx := NewContext()

	// Type-variables allocated during inference must not collide with those in the environment:
	ty, err := ctx.Infer(&ast.Func{Param: "y", Body: &ast.Var{Name: "y"}}, env)
	if err != nil {
		t.Fatal(err)
	}
	if id := ty.(*types.Arrow).Arg.(*types.Var).Id(); id == a.Id() {
		t.Fatalf("fresh type-variable reused id %d", id)
	}

	expr := &ast.Call{
		Func: &ast.Func{Param: "x", Body: &ast.Cond{
			Cond: &ast.Var{Name: "x"},
			Then: &ast.Var{Name: "a"},
			Else: &ast.Int{Value: 1},
		}},
		Arg: &ast.Bool{Value: true},
	}
	ty, s, err := ctx.InferSubst(expr, env)
	if err != nil {
		t.Fatal(err)
	}
	if !types.Equal(ty, types.Int) {
		t.Fatalf("type: %s", types.TypeString(ty))
	}
	if at, ok := s.Lookup(a.Id()); !ok || !types.Equal(at, types.Int) {
		t.Fatalf("expected %s := int, found %s", types.TypeString(a), types.SubstString(s))
	}
	if ctx.VarCount() != 2 {
		t.Fatalf("expected 2 allocated type-variables, found %d", ctx.VarCount())
	}
}

func TestPartialSubstOnFailure(t *testing.T) {
	f := &ast.Var{Name: "f"}
	expr := &ast.Func{Param: "f", Body: &ast.Cond{
		Cond: &ast.Call{Func: f, Arg: &ast.Int{Value: 1}},
		Then: f,
		Else: &ast.Int{Value: 2},
	}}

	ctx := NewContext()
	_, err := ctx.Infer(expr, NewTypeEnv(nil))
	var mismatch *BranchTypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("unexpected error: %v", err)
	}

	// f was resolved by the condition before the branches failed to unify:
	s := ctx.Subst()
	ft, ok := s.Lookup(0)
	if !ok {
		t.Fatalf("missing binding for f in %s", types.SubstString(s))
	}
	if typeString := types.TypeString(ft); typeString != "int -> bool" {
		t.Fatalf("type of f: %s", typeString)
	}
	if typeString := types.TypeString(mismatch.True); typeString != "int -> bool" {
		t.Fatalf("true branch: %s", typeString)
	}
}

func TestRepeatedInference(t *testing.T) {
	env := NewTypeEnv(nil)
	ctx := NewContext()

	bad := &ast.Var{Name: "missing"}
	good := &ast.Func{Param: "f", Body: &ast.Call{Func: &ast.Var{Name: "f"}, Arg: &ast.Bool{Value: true}}}

	if _, err := ctx.Infer(bad, env); err == nil {
		t.Fatalf("expected error")
	}

	// Infer twice to ensure state is properly reset between calls:

	ty1, err := ctx.Infer(good, env)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Error() != nil || ctx.InvalidExpr() != nil {
		t.Fatalf("expected error state to be reset")
	}
	count := ctx.VarCount()

	ty2, err := ctx.Infer(good, env)
	if err != nil {
		t.Fatal(err)
	}
	if !types.Equal(ty1, ty2) {
		t.Fatalf("types differ: %s, %s", types.TypeString(ty1), types.TypeString(ty2))
	}
	if ctx.VarCount() != count {
		t.Fatalf("expected %d allocated type-variables, found %d", count, ctx.VarCount())
	}
}

func TestAnnotate(t *testing.T) {
	x := &ast.Var{Name: "x"}
	fn := &ast.Func{Param: "x", Body: x}
	five := &ast.Int{Value: 5}
	expr := &ast.Call{Func: fn, Arg: five}

	ctx := NewContext()
	annotations, err := ctx.Annotate(expr, NewTypeEnv(nil))
	if err != nil {
		t.Fatal(err)
	}

	count := 0
	ast.WalkExpr(expr, func(e ast.Expr) {
		count++
		if _, ok := annotations[e]; !ok {
			t.Fatalf("missing annotation for %s", ast.ExprString(e))
		}
	})
	if len(annotations) != count {
		t.Fatalf("expected %d annotations, found %d", count, len(annotations))
	}

	expect := map[ast.Expr]string{
		expr: "int",
		fn:   "int -> int",
		x:    "int",
		five: "int",
	}
	for e, want := range expect {
		if typeString := types.TypeString(annotations[e]); typeString != want {
			t.Fatalf("%s: type: %s", ast.ExprString(e), typeString)
		}
	}

	// Annotations are not recorded by Infer:
	if _, err := ctx.Infer(expr, NewTypeEnv(nil)); err != nil {
		t.Fatal(err)
	}
	if len(ctx.annotations) != 0 {
		t.Fatalf("unexpected annotations after Infer")
	}

	if _, err := ctx.Annotate(&ast.Var{Name: "y"}, NewTypeEnv(nil)); err == nil {
		t.Fatalf("expected error")
	}
}

type unknownExpr struct{}

func (unknownExpr) ExprName() string { return "Unknown" }

func TestInvalidExpr(t *testing.T) {
	ctx := NewContext()

	if _, err := ctx.Infer(nil, NewTypeEnv(nil)); err == nil {
		t.Fatalf("expected error for empty expression")
	}

	_, err := ctx.Infer(&ast.Func{Param: "x", Body: unknownExpr{}}, nil)
	if err == nil || !strings.Contains(err.Error(), "Unhandled expression (Unknown)") {
		t.Fatalf("unexpected error: %v", err)
	}
}
