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

package construct

import (
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

// Types

// Create a new type-variable with the given id.
func TVar(id int) *types.Var {
	return types.NewVar(id)
}

// Type constant: `int`, `bool`, etc
func TConst(name string) *types.Const {
	return &types.Const{Name: name}
}

// Function type: `int -> int`
func TArrow(arg, ret types.Type) *types.Arrow {
	return &types.Arrow{Arg: arg, Return: ret}
}

// Curried function type: `int -> int -> int`
func TArrowN(ret types.Type, args ...types.Type) types.Type {
	t := ret
	for i := len(args) - 1; i >= 0; i-- {
		t = &types.Arrow{Arg: args[i], Return: t}
	}
	return t
}

// Expressions:

// Integer literal
func Int(value int64) *ast.Int {
	return &ast.Int{Value: value}
}

// Boolean literal
func Bool(value bool) *ast.Bool {
	return &ast.Bool{Value: value}
}

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Abstraction: `fun x -> x`
func Func(param string, body ast.Expr) *ast.Func {
	return &ast.Func{Param: param, Body: body}
}

// Curried abstraction: `fun x -> fun y -> x`
func FuncN(params []string, body ast.Expr) ast.Expr {
	e := body
	for i := len(params) - 1; i >= 0; i-- {
		e = &ast.Func{Param: params[i], Body: e}
	}
	return e
}

// Application: `f(x)`
func Call(f, arg ast.Expr) *ast.Call {
	return &ast.Call{Func: f, Arg: arg}
}

// Curried application: `f(x)(y)`
func CallN(f ast.Expr, args ...ast.Expr) ast.Expr {
	e := f
	for _, arg := range args {
		e = &ast.Call{Func: e, Arg: arg}
	}
	return e
}

// Conditional: `if c then a else b`
func Cond(cond, then, els ast.Expr) *ast.Cond {
	return &ast.Cond{Cond: cond, Then: then, Else: els}
}
