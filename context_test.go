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
	"testing"

	"github.com/grouplens/lenskit-go/grapht"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	op        string
	qualifier grapht.Qualifier
	typ       reflect.Type
}

// fakeContext is a grapht.Context that records its calls and returns
// canned values.
type fakeContext struct {
	binding grapht.Binding
	child   grapht.Context
	calls   []call
}

var _ grapht.Context = (*fakeContext)(nil)

func (c *fakeContext) Bind(contract reflect.Type) grapht.Binding {
	c.calls = append(c.calls, call{op: "Bind", typ: contract})
	return c.binding
}

func (c *fakeContext) In(component reflect.Type) grapht.Context {
	c.calls = append(c.calls, call{op: "In", typ: component})
	return c.child
}

func (c *fakeContext) InQualified(q grapht.Qualifier, component reflect.Type) grapht.Context {
	c.calls = append(c.calls, call{op: "InQualified", qualifier: q, typ: component})
	return c.child
}

// nativeContext implements ConfigContext on its own.
type nativeContext struct {
	fakeContext
}

var _ ConfigContext = (*nativeContext)(nil)

func (c *nativeContext) BindQualified(qualifier, contract reflect.Type) grapht.Binding {
	return c.Bind(contract).WithQualifier(qualifier)
}

func (c *nativeContext) Set(param reflect.Type) grapht.Binding { return set(c, param) }

func (c *nativeContext) Within(component reflect.Type) ConfigContext {
	return Coerce(c.In(component))
}

func (c *nativeContext) WithinQualified(q grapht.Qualifier, component reflect.Type) ConfigContext {
	return Coerce(c.InQualified(q, component))
}

// fakeBinding records the qualifier it was restricted with and returns
// next from WithQualifier.
type fakeBinding struct {
	grapht.Binding

	qualifier reflect.Type
	next      grapht.Binding
}

func (b *fakeBinding) WithQualifier(q reflect.Type) grapht.Binding {
	b.qualifier = q
	return b.next
}

type (
	service   interface{ Serve() }
	component struct{}
	other     struct{}
	qual      struct{}
	tag       string
)

var (
	serviceType   = grapht.TypeOf[service]()
	componentType = grapht.TypeOf[component]()
	otherType     = grapht.TypeOf[other]()
	qualType      = grapht.TypeOf[qual]()
)

func TestCoerce(t *testing.T) {
	t.Parallel()

	t.Run("wraps generic contexts", func(t *testing.T) {
		t.Parallel()

		base := &fakeContext{}
		cc := Coerce(base)
		require.IsType(t, &contextWrapper{}, cc)
		assert.Same(t, base, cc.(*contextWrapper).base)
	})

	t.Run("keeps native contexts", func(t *testing.T) {
		t.Parallel()

		native := &nativeContext{}
		assert.Same(t, native, Coerce(native))
	})

	t.Run("wrappers are not generic contexts", func(t *testing.T) {
		t.Parallel()

		_, isContext := Coerce(&fakeContext{}).(grapht.Context)
		assert.False(t, isContext)
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, Coerce(nil))
	})
}

func TestWrapperBind(t *testing.T) {
	t.Parallel()

	b := &fakeBinding{}
	base := &fakeContext{binding: b}
	w := Coerce(base)

	got := w.Bind(serviceType)
	assert.Same(t, b, got, "Bind must return the base's builder itself")
	assert.Equal(t, []call{{op: "Bind", typ: serviceType}}, base.calls)
	assert.Nil(t, b.qualifier, "Bind must not restrict the builder")
}

func TestWrapperBindQualified(t *testing.T) {
	t.Parallel()

	restricted := &fakeBinding{}
	b := &fakeBinding{next: restricted}
	base := &fakeContext{binding: b}
	w := Coerce(base)

	got := w.BindQualified(qualType, serviceType)
	assert.Same(t, restricted, got, "BindQualified must return what WithQualifier returned")
	assert.Equal(t, []call{{op: "Bind", typ: serviceType}}, base.calls)
	assert.Equal(t, qualType, b.qualifier)
}

func TestWrapperWithin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		within   func(ConfigContext) ConfigContext
		wantCall call
	}{
		{
			name:     "unqualified",
			within:   func(cc ConfigContext) ConfigContext { return cc.Within(componentType) },
			wantCall: call{op: "In", typ: componentType},
		},
		{
			name: "by type",
			within: func(cc ConfigContext) ConfigContext {
				return cc.WithinQualified(grapht.ByType(qualType), componentType)
			},
			wantCall: call{op: "InQualified", qualifier: grapht.ByType(qualType), typ: componentType},
		},
		{
			name: "by value",
			within: func(cc ConfigContext) ConfigContext {
				return cc.WithinQualified(grapht.ByValue(tag("x")), componentType)
			},
			wantCall: call{op: "InQualified", qualifier: grapht.ByValue(tag("x")), typ: componentType},
		},
		{
			name: "nil qualifier type",
			within: func(cc ConfigContext) ConfigContext {
				return cc.WithinQualified(grapht.ByType(nil), componentType)
			},
			wantCall: call{op: "InQualified", qualifier: grapht.Unqualified(), typ: componentType},
		},
		{
			name: "nil qualifier value",
			within: func(cc ConfigContext) ConfigContext {
				return cc.WithinQualified(grapht.ByValue(nil), componentType)
			},
			wantCall: call{op: "InQualified", qualifier: grapht.Unqualified(), typ: componentType},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			t.Run("wraps generic result", func(t *testing.T) {
				child := &fakeContext{}
				base := &fakeContext{child: child}

				got := tt.within(Coerce(base))
				assert.Equal(t, []call{tt.wantCall}, base.calls)
				require.IsType(t, &contextWrapper{}, got)
				assert.Same(t, child, got.(*contextWrapper).base)
			})

			t.Run("keeps native result", func(t *testing.T) {
				child := &nativeContext{}
				base := &fakeContext{child: child}

				got := tt.within(Coerce(base))
				assert.Equal(t, []call{tt.wantCall}, base.calls)
				assert.Same(t, child, got)
			})
		})
	}
}

func TestWrapperChaining(t *testing.T) {
	t.Parallel()

	leafBinding := &fakeBinding{}
	leaf := &fakeContext{binding: leafBinding}
	native := &nativeContext{fakeContext: fakeContext{child: leaf}}
	middle := &fakeContext{child: native}
	root := &fakeContext{child: middle}

	first := Coerce(root).Within(componentType)
	require.IsType(t, &contextWrapper{}, first)
	assert.Same(t, middle, first.(*contextWrapper).base)

	second := first.WithinQualified(grapht.ByType(qualType), otherType)
	assert.Same(t, native, second, "a native link must not be wrapped")

	third := second.Within(serviceType)
	require.IsType(t, &contextWrapper{}, third)
	assert.Same(t, leaf, third.(*contextWrapper).base, "a native link must not be double wrapped either")

	assert.Same(t, leafBinding, third.Bind(serviceType))

	assert.Equal(t, []call{{op: "In", typ: componentType}}, root.calls)
	assert.Equal(t, []call{{op: "InQualified", qualifier: grapht.ByType(qualType), typ: otherType}}, middle.calls)
	assert.Equal(t, []call{{op: "In", typ: serviceType}}, native.calls)
	assert.Equal(t, []call{{op: "Bind", typ: serviceType}}, leaf.calls)
}

func TestWrapperNilChild(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Coerce(&fakeContext{}).Within(componentType))
}
