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
	"go.uber.org/dig"
)

// Configuration is the root of a LensKit configuration. It is both a
// grapht.Context and a ConfigContext, so Coerce returns it unchanged.
type Configuration struct {
	config *grapht.Config
}

var (
	_ ConfigContext  = (*Configuration)(nil)
	_ grapht.Context = (*Configuration)(nil)
)

// New builds an empty Configuration.
func New(opts ...grapht.Option) *Configuration {
	return &Configuration{config: grapht.New(opts...)}
}

// Bind starts a binding in the root context.
func (c *Configuration) Bind(contract reflect.Type) grapht.Binding {
	return c.config.Bind(contract)
}

// BindQualified starts a qualified binding in the root context.
func (c *Configuration) BindQualified(qualifier, contract reflect.Type) grapht.Binding {
	return c.config.Bind(contract).WithQualifier(qualifier)
}

// Set starts a binding for a parameter value in the root context.
func (c *Configuration) Set(param reflect.Type) grapht.Binding {
	return set(c, param)
}

// In narrows the root context, in grapht terms.
func (c *Configuration) In(component reflect.Type) grapht.Context {
	return c.config.In(component)
}

// InQualified narrows the root context to a qualified component, in grapht
// terms.
func (c *Configuration) InQualified(q grapht.Qualifier, component reflect.Type) grapht.Context {
	return c.config.InQualified(q, component)
}

// Within narrows the root context to the component type.
func (c *Configuration) Within(component reflect.Type) ConfigContext {
	return Coerce(c.In(component))
}

// WithinQualified narrows the root context to the qualified component type.
func (c *Configuration) WithinQualified(q grapht.Qualifier, component reflect.Type) ConfigContext {
	return Coerce(c.InQualified(q, component))
}

// Rules returns the rules declared so far.
func (c *Configuration) Rules() []grapht.BindRule {
	return c.config.Rules()
}

// Err returns every binding error reported so far.
func (c *Configuration) Err() error {
	return c.config.Err()
}

// Apply installs the configuration into a dig container. See grapht.Config.Apply.
func (c *Configuration) Apply(container *dig.Container) (grapht.Scopes, error) {
	return c.config.Apply(container)
}
