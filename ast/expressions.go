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

package ast

// Expr is the base for all expressions. Expressions are never modified during inference.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
}

var (
	_ Expr = (*Int)(nil)
	_ Expr = (*Bool)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Cond)(nil)
)

// Integer literal: `5`
type Int struct {
	Value int64
}

// "Int"
func (e *Int) ExprName() string { return "Int" }

// Boolean literal: `true`
type Bool struct {
	Value bool
}

// "Bool"
func (e *Bool) ExprName() string { return "Bool" }

// Variable
type Var struct {
	Name string
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Abstraction: `fun x -> x`
type Func struct {
	Param string
	Body  Expr
}

// "Func"
func (e *Func) ExprName() string { return "Func" }

// Application: `f(x)`
type Call struct {
	Func Expr
	Arg  Expr
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

// Conditional: `if c then a else b`
type Cond struct {
	Cond Expr
	Then Expr
	Else Expr
}

// "Cond"
func (e *Cond) ExprName() string { return "Cond" }
