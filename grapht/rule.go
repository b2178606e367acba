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

	"github.com/grouplens/lenskit-go/internal/lkreflect"
)

// TargetKind identifies what satisfies the contract of a BindRule.
type TargetKind int

const (
	// TargetType binds the contract to an implementation type.
	TargetType TargetKind = iota + 1
	// TargetInstance binds the contract to a fixed instance.
	TargetInstance
	// TargetProvider binds the contract to a provider function.
	TargetProvider
)

func (k TargetKind) String() string {
	switch k {
	case TargetType:
		return "type"
	case TargetInstance:
		return "instance"
	case TargetProvider:
		return "provider"
	default:
		return fmt.Sprintf("TargetKind(%d)", int(k))
	}
}

// BindRule is a recorded binding.
type BindRule struct {
	// Context is the pattern of the context the binding was declared in.
	Context   ContextPattern
	Contract  reflect.Type
	Qualifier Qualifier
	Kind      TargetKind

	// Exactly one of these is set, according to Kind.
	Impl     reflect.Type
	Instance interface{}
	Provider interface{}

	// Location is the function that declared the binding.
	Location string
}

// Target describes what satisfies the contract.
func (r BindRule) Target() string {
	switch r.Kind {
	case TargetType:
		return "type " + lkreflect.TypeName(r.Impl)
	case TargetInstance:
		return fmt.Sprintf("instance %v", r.Instance)
	case TargetProvider:
		return "provider " + lkreflect.FuncName(r.Provider)
	default:
		return r.Kind.String()
	}
}

func (r BindRule) String() string {
	contract := lkreflect.TypeName(r.Contract)
	if !IsUnqualified(r.Qualifier) {
		contract = "[" + r.Qualifier.String() + "]" + contract
	}
	return contract + " => " + r.Target()
}
