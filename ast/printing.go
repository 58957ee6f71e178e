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

import (
	"strconv"
	"strings"
)

// ExprString returns a string representation of an expression.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

func exprString(sb *strings.Builder, simple bool, e Expr) {
	switch et := e.(type) {
	case *Int:
		sb.WriteString(strconv.FormatInt(et.Value, 10))

	case *Bool:
		sb.WriteString(strconv.FormatBool(et.Value))

	case *Var:
		sb.WriteString(et.Name)

	case *Call:
		exprString(sb, true, et.Func)
		sb.WriteByte('(')
		exprString(sb, false, et.Arg)
		sb.WriteByte(')')

	case *Func:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("fun ")
		sb.WriteString(et.Param)
		sb.WriteString(" -> ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *Cond:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("if ")
		exprString(sb, false, et.Cond)
		sb.WriteString(" then ")
		exprString(sb, false, et.Then)
		sb.WriteString(" else ")
		exprString(sb, false, et.Else)
		if simple {
			sb.WriteByte(')')
		}

	case nil:
		sb.WriteString("<nil>")
	}
}
