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

package lkevent

// Event defines an event emitted by the binding engine.
type Event interface {
	event() // Only lkevent can implement this interface.
}

// Passing events by type to make Event hashable in the future.
func (*Bound) event()    {}
func (*Narrowed) event() {}
func (*Applied) event()  {}

// Bound is emitted whenever a binding is completed with To, ToInstance or
// ToProvider, whether or not it was accepted.
type Bound struct {
	// Context is the context pattern the binding was declared in.
	Context string
	// Contract is the name of the type being bound.
	Contract string
	// Qualifier is the qualifier restricting the binding, if any.
	Qualifier string
	// Target describes what satisfies the contract.
	Target string
	// Location is the function that declared the binding.
	Location string
	// Err is non-nil if the binding was rejected.
	Err error
}

// Narrowed is emitted whenever a context is narrowed to a component.
type Narrowed struct {
	// Context is the resulting context pattern.
	Context string
}

// Applied is emitted when a binding rule is installed into a dig container.
type Applied struct {
	// Rule describes the rule being installed.
	Rule string
	// Scope is the context pattern the rule's dig scope was derived from.
	Scope string
	Err   error
}
