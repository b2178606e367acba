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

package grapht

import (
	"reflect"

	"github.com/grouplens/lenskit-go/internal/lkreflect"
	"github.com/pkg/errors"
)

// Binding is a fluent builder for one binding rule. Builder methods return
// a new Binding; the terminal methods To, ToInstance and ToProvider record
// the rule in the Config the binding came from.
type Binding interface {
	// WithQualifier restricts the binding to any qualifier value of the
	// given type.
	WithQualifier(qualifier reflect.Type) Binding

	// WithQualifierValue restricts the binding to exactly the given
	// qualifier value.
	WithQualifierValue(qualifier interface{}) Binding

	// Unqualified removes any qualifier restriction.
	Unqualified() Binding

	// To satisfies the contract with the implementation type.
	To(impl reflect.Type) error

	// ToInstance satisfies the contract with a fixed instance.
	ToInstance(instance interface{}) error

	// ToProvider satisfies the contract by calling constructor, a function
	// returning the contract and optionally an error.
	ToProvider(constructor interface{}) error
}

type binding struct {
	ctx       scopedContext
	contract  reflect.Type
	qualifier Qualifier
}

var _ Binding = binding{}

func (b binding) WithQualifier(qualifier reflect.Type) Binding {
	b.qualifier = ByType(qualifier)
	return b
}

func (b binding) WithQualifierValue(qualifier interface{}) Binding {
	b.qualifier = ByValue(qualifier)
	return b
}

func (b binding) Unqualified() Binding {
	b.qualifier = Unqualified()
	return b
}

func (b binding) To(impl reflect.Type) error {
	r := b.rule(TargetType)
	r.Impl = impl

	err := b.check()
	if err == nil {
		switch {
		case impl == nil:
			err = errors.Wrapf(ErrNotAssignable, "nil implementation for %v", b.contract)
		case !impl.AssignableTo(b.contract):
			err = errors.Wrapf(ErrNotAssignable, "%v is not assignable to %v", impl, b.contract)
		}
	}
	return b.ctx.config.record(r, err)
}

func (b binding) ToInstance(instance interface{}) error {
	r := b.rule(TargetInstance)
	r.Instance = instance

	err := b.check()
	if err == nil {
		if instance == nil {
			if !nillable(b.contract) {
				err = errors.Wrapf(ErrNotAssignable, "nil is not assignable to %v", b.contract)
			}
		} else if t := reflect.TypeOf(instance); !t.AssignableTo(b.contract) {
			err = errors.Wrapf(ErrNotAssignable, "%v is not assignable to %v", t, b.contract)
		}
	}
	return b.ctx.config.record(r, err)
}

func (b binding) ToProvider(constructor interface{}) error {
	r := b.rule(TargetProvider)
	r.Provider = constructor

	err := b.check()
	if err == nil {
		err = checkProvider(constructor, b.contract)
	}
	return b.ctx.config.record(r, err)
}

func (b binding) rule(kind TargetKind) BindRule {
	return BindRule{
		Context:   b.ctx.pattern,
		Contract:  b.contract,
		Qualifier: b.qualifier,
		Kind:      kind,
		Location:  lkreflect.Caller(),
	}
}

// check validates everything the terminal operations have in common.
func (b binding) check() error {
	if b.ctx.err != nil {
		return b.ctx.err
	}
	if b.contract == nil {
		return errors.WithStack(ErrNilContract)
	}
	for _, e := range b.ctx.pattern {
		if err := e.Qualifier.validate(); err != nil {
			return errors.Wrapf(err, "within %v", b.ctx.pattern)
		}
	}
	return b.qualifier.validate()
}

func checkProvider(constructor interface{}, contract reflect.Type) error {
	ft := reflect.TypeOf(constructor)
	if ft == nil || ft.Kind() != reflect.Func {
		return errors.Wrapf(ErrBadProvider, "got %T", constructor)
	}
	switch ft.NumOut() {
	case 1:
	case 2:
		if !lkreflect.IsErr(ft.Out(1)) {
			return errors.Wrapf(ErrBadProvider, "second result of %v is not an error", ft)
		}
	default:
		return errors.Wrapf(ErrBadProvider, "%v returns %d values", ft, ft.NumOut())
	}
	if !ft.Out(0).AssignableTo(contract) {
		return errors.Wrapf(ErrBadProvider, "%v does not return %v", ft, contract)
	}
	return nil
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
