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

package lenskit

import "github.com/grouplens/lenskit-go/grapht"

// Bind starts a binding for T in ctx.
func Bind[T any](ctx ConfigContext) grapht.Binding {
	return ctx.Bind(grapht.TypeOf[T]())
}

// BindQualified starts a binding for T in ctx, qualified by any value of
// the qualifier type Q.
func BindQualified[Q, T any](ctx ConfigContext) grapht.Binding {
	return ctx.BindQualified(grapht.TypeOf[Q](), grapht.TypeOf[T]())
}

// Set starts a binding for the value of the parameter P in ctx.
func Set[P Parameter](ctx ConfigContext) grapht.Binding {
	return ctx.Set(grapht.TypeOf[P]())
}

// Within narrows ctx to the component type C.
func Within[C any](ctx ConfigContext) ConfigContext {
	return ctx.Within(grapht.TypeOf[C]())
}
