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
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Qualifier restricts a binding or a context element to components tagged
// with a qualifier. It is one of Unqualified, ByType or ByValue.
type Qualifier interface {
	// Matches reports whether a component tagged with tag satisfies the
	// qualifier. A nil tag means the component is not qualified.
	// Apply maps qualifiers to dig names instead of calling Matches.
	Matches(tag interface{}) bool

	String() string

	validate() error
}

// Unqualified returns the Qualifier matching only components without a
// qualifier.
func Unqualified() Qualifier { return unqualified{} }

// ByType returns a Qualifier matching any qualifier value of type t. A nil t
// is the same as Unqualified.
func ByType(t reflect.Type) Qualifier {
	if t == nil {
		return unqualified{}
	}
	return byType{t: t}
}

// ByValue returns a Qualifier matching exactly the qualifier value v. A nil v
// is the same as Unqualified.
func ByValue(v interface{}) Qualifier {
	if v == nil {
		return unqualified{}
	}
	return byValue{v: v}
}

// IsUnqualified reports whether q is absent or Unqualified.
func IsUnqualified(q Qualifier) bool {
	if q == nil {
		return true
	}
	_, ok := q.(unqualified)
	return ok
}

type unqualified struct{}

func (unqualified) Matches(tag interface{}) bool { return tag == nil }
func (unqualified) String() string               { return "" }
func (unqualified) validate() error              { return nil }

type byType struct{ t reflect.Type }

func (q byType) Matches(tag interface{}) bool {
	return tag != nil && reflect.TypeOf(tag) == q.t
}

func (q byType) String() string { return q.t.String() }

func (q byType) validate() error {
	if !q.t.Comparable() {
		return errors.Wrapf(ErrInvalidQualifier, "qualifier type %v", q.t)
	}
	return nil
}

type byValue struct{ v interface{} }

func (q byValue) Matches(tag interface{}) bool {
	if tag == nil || q.validate() != nil {
		return false
	}
	if reflect.TypeOf(tag) != reflect.TypeOf(q.v) {
		return false
	}
	eq, ok := equal(tag, q.v)
	return ok && eq
}

func (q byValue) String() string { return fmt.Sprintf("%T(%v)", q.v, q.v) }

func (q byValue) validate() error {
	if !reflect.TypeOf(q.v).Comparable() {
		return errors.Wrapf(ErrInvalidQualifier, "qualifier value of type %T", q.v)
	}
	// A comparable type can still hold an uncomparable value in an
	// interface field.
	if _, ok := equal(q.v, q.v); !ok {
		return errors.Wrapf(ErrInvalidQualifier, "qualifier value %v of type %T", q.v, q.v)
	}
	return nil
}

// equal compares a and b with ==. ok is false if the comparison panicked.
func equal(a, b interface{}) (eq, ok bool) {
	defer func() {
		if recover() != nil {
			eq, ok = false, false
		}
	}()
	return a == b, true
}
