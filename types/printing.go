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
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{idNames: make(map[int]string, 16)}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.idNames {
		delete(p.idNames, k)
	}
	p.sb.Reset()
	printerPool.Put(p)
}

// TypeString returns a string representation of a Type. Type-variables are named in order of
// their first appearance: 'a, 'b, ..., 'z, 'a1, 'b1, ...
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

// TypeStrings returns string representations of several types, with type-variable names
// shared across all of them.
func TypeStrings(ts ...Type) []string {
	p := newTypePrinter()
	strs := make([]string, len(ts))
	for i, t := range ts {
		typeString(p, false, t)
		strs[i] = p.sb.String()
		p.sb.Reset()
	}
	p.Release()
	return strs
}

// SubstString returns a string representation of a Subst, e.g. `{'_0 := int, '_1 := '_0 -> bool}`.
// Type-variables are printed by id so that keys and values may be cross-referenced.
func SubstString(s Subst) string {
	var sb strings.Builder
	sb.WriteByte('{')
	i := 0
	s.Range(func(id int, t Type) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(getUnboundVarName(id))
		sb.WriteString(" := ")
		p := newTypePrinter()
		p.byId = true
		typeString(p, false, t)
		sb.WriteString(p.sb.String())
		p.byId = false
		p.Release()
		i++
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

type typePrinter struct {
	idNames map[int]string
	byId    bool
	sb      strings.Builder
}

var _names [128]string

func init() {
	for i := range _names {
		_names[i] = getVarName(i)
	}
}

func getVarName(i int) string {
	if i < len(_names) && _names[i] != "" {
		return _names[i]
	}
	if i >= 26 {
		return "'" + string(byte(97+i%26)) + strconv.Itoa(i/26)
	}
	return "'" + string(byte(97+i%26))
}

func getUnboundVarName(id int) string {
	return "'_" + strconv.Itoa(id)
}

func (p *typePrinter) nextName() string {
	return getVarName(len(p.idNames))
}

func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case *Const:
		p.sb.WriteString(t.Name)

	case *Var:
		if p.byId {
			p.sb.WriteString(getUnboundVarName(t.Id()))
			return
		}
		if name, ok := p.idNames[t.Id()]; ok {
			p.sb.WriteString(name)
			return
		}
		name := p.nextName()
		p.idNames[t.Id()] = name
		p.sb.WriteString(name)

	case *Arrow:
		if simple {
			p.sb.WriteByte('(')
		}
		typeString(p, true, t.Arg)
		p.sb.WriteString(" -> ")
		typeString(p, false, t.Return)
		if simple {
			p.sb.WriteByte(')')
		}

	case nil:
		p.sb.WriteString("<nil>")
	}
}
