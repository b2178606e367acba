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

	"github.com/grouplens/lenskit-go/lkevent"
	"github.com/pkg/errors"
	"go.uber.org/dig"
	"go.uber.org/multierr"
)

// scope is the part of dig.Container and dig.Scope that Apply needs.
type scope interface {
	Provide(f interface{}, opts ...dig.ProvideOption) error
	Scope(name string, opts ...dig.ScopeOption) *dig.Scope
}

var (
	_ scope = (*dig.Container)(nil)
	_ scope = (*dig.Scope)(nil)
)

// Scopes holds the dig scopes Apply created, keyed by the string form of
// the context pattern they stand for.
type Scopes map[string]*dig.Scope

// Lookup returns the scope created for pattern, or nil if no rule was
// declared within it (or it is the root pattern).
func (s Scopes) Lookup(pattern ContextPattern) *dig.Scope {
	return s[pattern.String()]
}

// Apply installs every recorded rule into the container.
//
// Rules declared in the root context are provided to the container itself.
// Rules declared in a narrowed context are provided to a chain of child
// scopes, one per context element, so they are only visible within it.
// Qualified rules are provided under dig.Name(qualifier.String()).
//
// Apply installs as many rules as it can; the errors of the others are
// combined into the returned error.
func (c *Config) Apply(container *dig.Container) (Scopes, error) {
	scopes := make(Scopes)
	var errs error
	for _, r := range c.Rules() {
		s := scopeFor(container, scopes, r.Context)
		err := provideRule(s, r)
		c.log.LogEvent(&lkevent.Applied{
			Rule:  r.String(),
			Scope: r.Context.String(),
			Err:   err,
		})
		errs = multierr.Append(errs, err)
	}
	return scopes, errs
}

func scopeFor(root *dig.Container, scopes Scopes, pattern ContextPattern) scope {
	var s scope = root
	for i := range pattern {
		key := pattern[:i+1].String()
		child, ok := scopes[key]
		if !ok {
			child = s.Scope(pattern[i].String())
			scopes[key] = child
		}
		s = child
	}
	return s
}

func provideRule(s scope, r BindRule) error {
	ctor, err := r.constructor()
	if err != nil {
		return err
	}

	var opts []dig.ProvideOption
	if !IsUnqualified(r.Qualifier) {
		opts = append(opts, dig.Name(r.Qualifier.String()))
	}
	if err := s.Provide(ctor, opts...); err != nil {
		return errors.Wrapf(err, "apply %v", r)
	}
	return nil
}

// constructor builds a function dig can provide, returning exactly the
// contract type.
func (r BindRule) constructor() (interface{}, error) {
	contract := r.Contract
	switch r.Kind {
	case TargetInstance:
		out := reflect.New(contract).Elem()
		if r.Instance != nil {
			out.Set(reflect.ValueOf(r.Instance))
		}
		fnType := reflect.FuncOf(nil, []reflect.Type{contract}, false)
		return reflect.MakeFunc(fnType, func([]reflect.Value) []reflect.Value {
			return []reflect.Value{out}
		}).Interface(), nil

	case TargetType:
		if r.Impl == contract {
			return nil, errors.Wrapf(ErrSelfBinding, "%v", contract)
		}
		fnType := reflect.FuncOf([]reflect.Type{r.Impl}, []reflect.Type{contract}, false)
		return reflect.MakeFunc(fnType, func(args []reflect.Value) []reflect.Value {
			out := reflect.New(contract).Elem()
			out.Set(args[0])
			return []reflect.Value{out}
		}).Interface(), nil

	case TargetProvider:
		ft := reflect.TypeOf(r.Provider)
		if ft.Out(0) == contract {
			return r.Provider, nil
		}

		ins := make([]reflect.Type, ft.NumIn())
		for i := range ins {
			ins[i] = ft.In(i)
		}
		outs := []reflect.Type{contract}
		if ft.NumOut() == 2 {
			outs = append(outs, ft.Out(1))
		}

		fn := reflect.ValueOf(r.Provider)
		fnType := reflect.FuncOf(ins, outs, ft.IsVariadic())
		return reflect.MakeFunc(fnType, func(args []reflect.Value) []reflect.Value {
			var results []reflect.Value
			if ft.IsVariadic() {
				results = fn.CallSlice(args)
			} else {
				results = fn.Call(args)
			}
			out := reflect.New(contract).Elem()
			out.Set(results[0])
			results[0] = out
			return results
		}).Interface(), nil
	}
	return nil, errors.Errorf("unknown target kind %v", r.Kind)
}
