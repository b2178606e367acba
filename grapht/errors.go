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

import "github.com/pkg/errors"

var (
	// ErrNilContract is returned when a binding has no contract type.
	ErrNilContract = errors.New("binding has no contract type")
	// ErrNilComponent is returned for bindings in a context that was
	// narrowed to a nil component type.
	ErrNilComponent = errors.New("context narrowed to a nil component type")
	// ErrInvalidQualifier is returned when a qualifier type or value cannot
	// be compared.
	ErrInvalidQualifier = errors.New("qualifier is not comparable")
	// ErrNotAssignable is returned when a binding target cannot satisfy the
	// contract.
	ErrNotAssignable = errors.New("target is not assignable to the contract")
	// ErrBadProvider is returned when a provider is not a function returning
	// the contract and an optional error.
	ErrBadProvider = errors.New("provider must be a function returning the contract and an optional error")
	// ErrSelfBinding is returned by Apply when a type is bound to itself.
	ErrSelfBinding = errors.New("type cannot be bound to itself")
)
