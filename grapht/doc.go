// Copyright (c) 2024 The LensKit Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package grapht is a small binding engine: it records which implementation,
// instance or provider satisfies a contract type, optionally restricted by a
// qualifier and by the chain of components it is used within.
//
// There are two sides to grapht: declaring bindings and exporting them.
//
// # Declaring bindings
//
// A Config is the root Context. Bind starts a Binding for a contract type,
// and one of the terminal operations records it.
//
//	cfg := grapht.New()
//	err := cfg.Bind(grapht.TypeOf[ItemScorer]()).To(grapht.TypeOf[*ItemItemScorer]())
//
// Bindings may be restricted to a qualifier, either any value of a qualifier
// type or one exact qualifier value.
//
//	cfg.Bind(grapht.TypeOf[float64]()).
//		WithQualifier(grapht.TypeOf[Damping]()).
//		ToInstance(0.5)
//
// # Narrowing
//
// In returns a Context whose bindings only apply when the contract is
// required within the given component (and, with InQualified, only when
// that component is itself qualified accordingly).
//
//	scorer := cfg.In(grapht.TypeOf[*ItemItemScorer]())
//	scorer.Bind(grapht.TypeOf[Normalizer]()).To(grapht.TypeOf[*MeanCenter]())
//
// Contexts and bindings are immutable values; narrowing never changes the
// parent context.
//
// # Errors
//
// Problems are reported by the terminal operations, and every failure is
// also accumulated into Config.Err.
//
// # Export
//
// Apply installs the recorded rules into a dig container, using dig names
// for qualifiers and child scopes for narrowed contexts.
package grapht
