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
	"github.com/hashicorp/go-set/v2"
)

// Type-variable
type Var struct {
	id int
}

// Create a new type-variable with the given id.
func NewVar(id int) *Var {
	return &Var{id: id}
}

// Id returns the unique identifier of the type-variable.
func (tv *Var) Id() int { return tv.id }

// Set the unique identifier of the type-variable.
func (tv *Var) SetId(id int) { tv.id = id }

// FreeVars returns the ids of all type-variables occurring within t.
func FreeVars(t Type) *set.Set[int] {
	vars := set.New[int](4)
	collectFreeVars(vars, t)
	return vars
}

func collectFreeVars(vars *set.Set[int], t Type) {
	switch t := t.(type) {
	case *Var:
		vars.Insert(t.id)
	case *Arrow:
		collectFreeVars(vars, t.Arg)
		collectFreeVars(vars, t.Return)
	}
}
