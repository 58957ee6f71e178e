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

// Type is the base interface for all types.
type Type interface {
	TypeName() string
}

func (t *Const) TypeName() string { return "Const" }
func (t *Var) TypeName() string   { return "Var" }
func (t *Arrow) TypeName() string { return "Arrow" }

var (
	_ Type = (*Const)(nil)
	_ Type = (*Var)(nil)
	_ Type = (*Arrow)(nil)
)

// Type constant: `int` or `bool`
type Const struct {
	Name string
}

// Function type: `int -> int`
type Arrow struct {
	Arg    Type
	Return Type
}

// Built-in type constants.
var (
	Int  = &Const{Name: "int"}
	Bool = &Const{Name: "bool"}
)

// Equal reports whether a and b are structurally identical. Constants are compared by name
// and type-variables by id.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Const:
		b, ok := b.(*Const)
		return ok && a.Name == b.Name
	case *Var:
		b, ok := b.(*Var)
		return ok && a.id == b.id
	case *Arrow:
		b, ok := b.(*Arrow)
		return ok && Equal(a.Arg, b.Arg) && Equal(a.Return, b.Return)
	case nil:
		return b == nil
	}
	return false
}
