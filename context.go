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

import (
	"reflect"

	"github.com/grouplens/lenskit-go/grapht"
)

// ConfigContext is a context in which components are configured: a binding
// target scoped to a component type and an optional qualifier.
//
// The Within methods return ConfigContext rather than grapht.Context, so
// chains of narrowing calls stay in terms of this interface.
type ConfigContext interface {
	// Bind starts a binding for the contract type.
	Bind(contract reflect.Type) grapht.Binding

	// BindQualified starts a binding for the contract type, restricted to
	// any qualifier value of the given type.
	BindQualified(qualifier, contract reflect.Type) grapht.Binding

	// Set starts a binding for the value of a parameter. See Parameter.
	Set(param reflect.Type) grapht.Binding

	// Within narrows the context to the component type.
	Within(component reflect.Type) ConfigContext

	// WithinQualified narrows the context to the component type, used with
	// the given qualifier: grapht.ByType for any value of a qualifier type,
	// grapht.ByValue for one exact value.
	WithinQualified(q grapht.Qualifier, component reflect.Type) ConfigContext
}

// Coerce returns ctx as a ConfigContext. If ctx already is one it is
// returned unchanged; otherwise it is wrapped. Coerce(nil) is nil.
func Coerce(ctx grapht.Context) ConfigContext {
	if ctx == nil {
		return nil
	}
	if cc, ok := ctx.(ConfigContext); ok {
		return cc
	}
	return &contextWrapper{base: ctx}
}

// contextWrapper exposes a grapht.Context as a ConfigContext.
type contextWrapper struct {
	base grapht.Context
}

var _ ConfigContext = (*contextWrapper)(nil)

func (w *contextWrapper) Bind(contract reflect.Type) grapht.Binding {
	return w.base.Bind(contract)
}

// BindQualified has no counterpart in grapht.Context, so it binds the
// contract and then restricts the binding.
func (w *contextWrapper) BindQualified(qualifier, contract reflect.Type) grapht.Binding {
	return w.base.Bind(contract).WithQualifier(qualifier)
}

func (w *contextWrapper) Set(param reflect.Type) grapht.Binding {
	return set(w, param)
}

func (w *contextWrapper) Within(component reflect.Type) ConfigContext {
	return Coerce(w.base.In(component))
}

func (w *contextWrapper) WithinQualified(q grapht.Qualifier, component reflect.Type) ConfigContext {
	return Coerce(w.base.InQualified(q, component))
}
