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
	"sync"

	"github.com/grouplens/lenskit-go/internal/lkreflect"
	"github.com/grouplens/lenskit-go/lkevent"
	"go.uber.org/multierr"
)

// An Option configures a Config.
type Option interface {
	apply(*Config)
}

// WithLogger specifies how the Config logs its events.
// By default nothing is logged.
func WithLogger(l lkevent.Logger) Option {
	return loggerOption{l}
}

type loggerOption struct{ logger lkevent.Logger }

func (o loggerOption) apply(c *Config) {
	if o.logger != nil {
		c.log = o.logger
	}
}

// Config records binding rules. It is the root Context.
//
// A Config is safe for concurrent use.
type Config struct {
	log lkevent.Logger

	mu    sync.Mutex
	rules []BindRule
	err   error
}

var _ Context = (*Config)(nil)

// New builds an empty Config.
func New(opts ...Option) *Config {
	c := &Config{log: lkevent.NopLogger}
	for _, opt := range opts {
		opt.apply(c)
	}
	return c
}

// Root returns the root context of the configuration.
func (c *Config) Root() Context {
	return scopedContext{config: c}
}

// Bind starts a binding in the root context.
func (c *Config) Bind(contract reflect.Type) Binding {
	return c.Root().Bind(contract)
}

// In narrows the root context to the component type.
func (c *Config) In(component reflect.Type) Context {
	return c.Root().In(component)
}

// InQualified narrows the root context to the qualified component type.
func (c *Config) InQualified(q Qualifier, component reflect.Type) Context {
	return c.Root().InQualified(q, component)
}

// Rules returns the recorded rules, in declaration order.
func (c *Config) Rules() []BindRule {
	c.mu.Lock()
	defer c.mu.Unlock()

	rules := make([]BindRule, len(c.rules))
	copy(rules, c.rules)
	return rules
}

// Err returns every error reported by a terminal binding operation so far,
// or nil.
func (c *Config) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Config) record(r BindRule, err error) error {
	c.mu.Lock()
	if err == nil {
		c.rules = append(c.rules, r)
	} else {
		c.err = multierr.Append(c.err, err)
	}
	c.mu.Unlock()

	c.log.LogEvent(&lkevent.Bound{
		Context:   r.Context.String(),
		Contract:  lkreflect.TypeName(r.Contract),
		Qualifier: r.Qualifier.String(),
		Target:    r.Target(),
		Location:  r.Location,
		Err:       err,
	})
	return err
}
