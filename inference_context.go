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
	"github.com/wdamron/hm/internal/typeutil"
	"github.com/wdamron/hm/types"
)

// InferenceContext is a reusable context for type inference.
//
// An inference context cannot be used concurrently. Independent expressions may be inferred
// in parallel with one context per thread.
type InferenceContext struct {
	varTracker typeutil.VarTracker
	annotate   bool
	needsReset bool

	annotations map[ast.Expr]types.Type

	subst   types.Subst
	err     error
	invalid ast.Expr
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext() *InferenceContext { return &InferenceContext{} }

// Infer the type of expr within a fresh inference context.
func Infer(env *TypeEnv, expr ast.Expr) (types.Type, error) {
	return NewContext().Infer(expr, env)
}

func (ti *InferenceContext) reset() {
	ti.varTracker.Reset()
	for k := range ti.annotations {
		delete(ti.annotations, k)
	}
	ti.subst, ti.err, ti.invalid, ti.needsReset = types.Subst{}, nil, nil, false
}

// Reset the state of the context. The context will be reset automatically before inference.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset()
}

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// Get the substitution produced by the most recent inference. If inference failed, the substitution
// contains the bindings which were discovered before the failure.
func (ti *InferenceContext) Subst() types.Subst { return ti.subst }

// Get the number of type-variables allocated during the most recent inference.
func (ti *InferenceContext) VarCount() int { return ti.varTracker.Count() }

// Infer the type of expr within env. env is not modified.
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	t, _, err := ti.InferSubst(expr, env)
	return t, err
}

// Infer the type of expr within env, along with the substitution which resolves the type-variables
// allocated during inference. env is not modified.
func (ti *InferenceContext) InferSubst(expr ast.Expr, env *TypeEnv) (types.Type, types.Subst, error) {
	t, err := ti.inferRoot(expr, env)
	return t, ti.subst, err
}

// Infer the type of expr within env, and the type of each of its sub-expressions. The types
// will be fully resolved. env and expr are not modified.
//
// All sub-expressions of expr should have unique addresses; a sub-expression which appears
// more than once will be annotated with the type inferred for its last occurrence.
func (ti *InferenceContext) Annotate(expr ast.Expr, env *TypeEnv) (map[ast.Expr]types.Type, error) {
	ti.annotate = true
	_, err := ti.inferRoot(expr, env)
	ti.annotate = false
	if err != nil {
		return nil, err
	}
	annotations := make(map[ast.Expr]types.Type, len(ti.annotations))
	ast.WalkExpr(expr, func(e ast.Expr) {
		if t, ok := ti.annotations[e]; ok {
			annotations[e] = ti.subst.Apply(t)
		}
	})
	return annotations, nil
}

func (ti *InferenceContext) inferRoot(root ast.Expr, env *TypeEnv) (types.Type, error) {
	if ti.needsReset {
		ti.reset()
	}
	ti.needsReset = true
	if root == nil {
		ti.err = errors.New("Empty expression")
		return nil, ti.err
	}
	if env == nil {
		env = NewTypeEnv(nil)
	}
	if ti.annotate && ti.annotations == nil {
		ti.annotations = make(map[ast.Expr]types.Type, 16)
	}
	ti.varTracker.NextId = env.NextVarId
	t, s, err := ti.infer(env, root)
	ti.subst = s
	if err != nil {
		return nil, err
	}
	return s.Apply(t), nil
}

func (ti *InferenceContext) fail(e ast.Expr, err error) error {
	ti.invalid, ti.err = e, err
	return err
}
