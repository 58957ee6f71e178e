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

var (
	_ error = (*UndeclaredVariableError)(nil)
	_ error = (*TypeMismatchError)(nil)
	_ error = (*OccursCheckError)(nil)
	_ error = (*ConditionNotBooleanError)(nil)
	_ error = (*BranchTypeMismatchError)(nil)
)

// UndeclaredVariableError indicates a variable with no binding in the type-environment.
type UndeclaredVariableError struct {
	Name string
}

func (e *UndeclaredVariableError) Error() string { return "Variable " + e.Name + " not found" }

// TypeMismatchError indicates two type constants with different names, or a type constant
// paired with a function type, during unification.
type TypeMismatchError struct {
	Expected types.Type
	Actual   types.Type
}

func (e *TypeMismatchError) Error() string {
	strs := types.TypeStrings(e.Expected, e.Actual)
	return "Type mismatch: expected " + strs[0] + ", found " + strs[1]
}

// OccursCheckError indicates a type-variable which would be bound to a type containing itself.
type OccursCheckError struct {
	Var  *types.Var
	Type types.Type
}

func (e *OccursCheckError) Error() string {
	strs := types.TypeStrings(e.Var, e.Type)
	return "Implicitly recursive types are not supported: " + strs[0] + " occurs in " + strs[1]
}

// ConditionNotBooleanError indicates a conditional expression with a condition which
// does not unify with bool.
type ConditionNotBooleanError struct {
	Actual types.Type
	cause  error
}

func (e *ConditionNotBooleanError) Error() string {
	return "Condition must be bool, found " + types.TypeString(e.Actual)
}

// Cause returns the unification failure for the condition.
func (e *ConditionNotBooleanError) Cause() error { return e.cause }

func (e *ConditionNotBooleanError) Unwrap() error { return e.cause }

// BranchTypeMismatchError indicates a conditional expression with branches of incompatible types.
type BranchTypeMismatchError struct {
	True  types.Type
	False types.Type
	cause error
}

func (e *BranchTypeMismatchError) Error() string {
	strs := types.TypeStrings(e.True, e.False)
	return "Branch types do not match: " + strs[0] + " and " + strs[1]
}

// Cause returns the unification failure for the branches.
func (e *BranchTypeMismatchError) Cause() error { return e.cause }

func (e *BranchTypeMismatchError) Unwrap() error { return e.cause }
