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

package lkreflect

import (
	"io"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaller(t *testing.T) {
	assert.Equal(t, "github.com/grouplens/lenskit-go/internal/lkreflect.TestCaller", Caller())
}

func callerThroughHelper() string { return Caller() }

func TestCallerSkipsLibraryFrames(t *testing.T) {
	// callerThroughHelper lives in a test file, so it is reported.
	assert.Equal(t,
		"github.com/grouplens/lenskit-go/internal/lkreflect.callerThroughHelper",
		callerThroughHelper())
}

func someFunc() {}

func TestFuncName(t *testing.T) {
	assert.Equal(t, "github.com/grouplens/lenskit-go/internal/lkreflect.someFunc()", FuncName(someFunc))
	assert.Equal(t, "n/a", FuncName(struct{}{}))
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "<nil>", TypeName(nil))
	assert.Equal(t, "io.Reader", TypeName(reflect.TypeOf((*io.Reader)(nil)).Elem()))
}

func TestIsErr(t *testing.T) {
	assert.True(t, IsErr(reflect.TypeOf((*error)(nil)).Elem()))
	assert.False(t, IsErr(reflect.TypeOf("")))
}
