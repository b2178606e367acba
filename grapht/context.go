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
	"strings"

	"github.com/grouplens/lenskit-go/lkevent"
	"github.com/pkg/errors"
)

// Context is a place in which bindings are declared. The root context
// applies everywhere; narrowed contexts apply only within the components
// they were narrowed to.
type Context interface {
	// Bind starts a binding for the contract type.
	Bind(contract reflect.Type) Binding

	// In narrows the context to the component type. It is the same as
	// InQualified(Unqualified(), component).
	In(component reflect.Type) Context

	// InQualified narrows the context to the component type, used with the
	// given qualifier.
	InQualified(q Qualifier, component reflect.Type) Context
}

// TypeOf returns the reflect.Type of T. Unlike reflect.TypeOf it works for
// interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ContextElement is one step of a context pattern: a component type and
// the qualifier it must be used with.
type ContextElement struct {
	Qualifier Qualifier
	Component reflect.Type
}

// Matches reports whether a component of the given type, tagged with tag,
// satisfies the element.
//
// Apply leaves matching to dig scopes; Matches is for resolvers that work
// from Rules directly.
func (e ContextElement) Matches(component reflect.Type, tag interface{}) bool {
	if component == nil || e.Component == nil {
		return false
	}
	if !component.AssignableTo(e.Component) {
		return false
	}
	if e.Qualifier == nil {
		return tag == nil
	}
	return e.Qualifier.Matches(tag)
}

func (e ContextElement) String() string {
	name := "<nil>"
	if e.Component != nil {
		name = e.Component.String()
	}
	if IsUnqualified(e.Qualifier) {
		return name
	}
	return "[" + e.Qualifier.String() + "]" + name
}

// ContextPattern is the chain of elements a context was narrowed through,
// outermost first.
type ContextPattern []ContextElement

func (p ContextPattern) String() string {
	if len(p) == 0 {
		return "/"
	}
	parts := make([]string, len(p))
	for i, e := range p {
		parts[i] = e.String()
	}
	return strings.Join(parts, "/")
}

// scopedContext is the engine's Context implementation.
type scopedContext struct {
	config  *Config
	pattern ContextPattern

	// err is set once the context has been narrowed to something invalid;
	// it is reported by every binding declared from here on.
	err error
}

var _ Context = scopedContext{}

func (c scopedContext) Bind(contract reflect.Type) Binding {
	return binding{
		ctx:       c,
		contract:  contract,
		qualifier: Unqualified(),
	}
}

func (c scopedContext) In(component reflect.Type) Context {
	return c.InQualified(Unqualified(), component)
}

func (c scopedContext) InQualified(q Qualifier, component reflect.Type) Context {
	if q == nil {
		q = Unqualified()
	}

	pattern := make(ContextPattern, len(c.pattern), len(c.pattern)+1)
	copy(pattern, c.pattern)
	pattern = append(pattern, ContextElement{Qualifier: q, Component: component})

	next := scopedContext{
		config:  c.config,
		pattern: pattern,
		err:     c.err,
	}
	if next.err == nil && component == nil {
		next.err = errors.Wrapf(ErrNilComponent, "within %v", c.pattern)
	}

	c.config.log.LogEvent(&lkevent.Narrowed{Context: pattern.String()})
	return next
}
