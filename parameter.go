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
	"github.com/pkg/errors"
)

// ErrNotParameter is returned by the terminal operations of a binding made
// with Set for a type that does not implement Parameter.
var ErrNotParameter = errors.New("qualifier is not a parameter")

// Parameter is implemented by qualifier types that name a configuration
// parameter. ParameterType is called on the zero value and reports the type
// of the parameter's value.
//
//	type Damping struct{}
//
//	func (Damping) ParameterType() reflect.Type { return grapht.TypeOf[float64]() }
//
//	cfg.Set(grapht.TypeOf[Damping]()).ToInstance(0.5)
type Parameter interface {
	ParameterType() reflect.Type
}

var _parameterType = grapht.TypeOf[Parameter]()

// set binds the value of param in ctx.
func set(ctx ConfigContext, param reflect.Type) grapht.Binding {
	if param == nil || param.Kind() == reflect.Interface || !param.Implements(_parameterType) {
		return failedBinding{err: errors.Wrapf(ErrNotParameter, "%v", param)}
	}

	v := reflect.Zero(param)
	if param.Kind() == reflect.Ptr {
		v = reflect.New(param.Elem())
	}
	return ctx.BindQualified(param, v.Interface().(Parameter).ParameterType())
}

// failedBinding reports err from every terminal operation.
type failedBinding struct{ err error }

var _ grapht.Binding = failedBinding{}

func (b failedBinding) WithQualifier(reflect.Type) grapht.Binding     { return b }
func (b failedBinding) WithQualifierValue(interface{}) grapht.Binding { return b }
func (b failedBinding) Unqualified() grapht.Binding                   { return b }
func (b failedBinding) To(reflect.Type) error                         { return b.err }
func (b failedBinding) ToInstance(interface{}) error                  { return b.err }
func (b failedBinding) ToProvider(interface{}) error                  { return b.err }
