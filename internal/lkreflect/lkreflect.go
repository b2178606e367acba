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

// Package lkreflect holds the reflection helpers shared by the binding
// engine and its loggers.
package lkreflect

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// modulePath is the import path prefix of the library's own code.
const modulePath = "github.com/grouplens/lenskit-go"

// Caller returns the formatted name of the first function outside the
// library on the current call stack.
func Caller() string {
	// Ascend at most 16 frames looking for a caller outside the library.
	pcs := make([]uintptr, 16)

	// Don't include this frame.
	n := runtime.Callers(1, pcs)
	if n == 0 {
		return "n/a"
	}

	frames := runtime.CallersFrames(pcs[:n])
	for f, more := frames.Next(); ; f, more = frames.Next() {
		if !shouldIgnoreFrame(f) {
			return f.Function
		}
		if !more {
			break
		}
	}
	return "n/a"
}

// FuncName returns a funcs formatted name
func FuncName(fn interface{}) string {
	fnV := reflect.ValueOf(fn)
	if fnV.Kind() != reflect.Func {
		return "n/a"
	}

	fnName := runtime.FuncForPC(fnV.Pointer()).Name()
	return fmt.Sprintf("%s()", fnName)
}

// TypeName returns the name of t, tolerating nil.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// IsErr reports whether t is the error interface.
func IsErr(t reflect.Type) bool {
	return t == _errType
}

var _errType = reflect.TypeOf((*error)(nil)).Elem()

// Ascend the call stack until we leave the library's production code. This
// allows us to avoid hard-coding a frame skip, which makes this code work
// well even when it's wrapped.
func shouldIgnoreFrame(f runtime.Frame) bool {
	if strings.HasSuffix(f.File, "_test.go") {
		return false
	}
	if strings.HasPrefix(f.Function, "runtime.") {
		return true
	}
	return strings.HasPrefix(f.Function, modulePath)
}
