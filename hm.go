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

// hm provides Hindley-Milner type inference (Algorithm W) for a minimal lambda calculus with
// integer and boolean literals, variables, single-parameter functions, application and conditionals.
//
// Inference derives the principal (most general) type of an expression within a type-environment,
// or fails at the first unification conflict with a structured error:
//
//   * *UndeclaredVariableError
//   * *TypeMismatchError
//   * *OccursCheckError
//   * *ConditionNotBooleanError
//   * *BranchTypeMismatchError
//
// Type-environments and substitutions are persistent maps, so extending an environment while
// inferring a function body never affects sibling expressions. Bindings are monomorphic; there is
// no let-generalization.
//
// Links:
//
// * Hindley-Milner type system (Wikipedia): https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// * Principal type-schemes for functional programs (Damas, Milner 1982): https://doi.org/10.1145/582153.582176
package hm
