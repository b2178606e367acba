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

// Package lktest provides helpers for testing LensKit configurations.
package lktest

import (
	"github.com/grouplens/lenskit-go/grapht"
	"github.com/grouplens/lenskit-go/internal/testutil"
	"github.com/grouplens/lenskit-go/lkevent"
)

// TB is a subset of the standard library's testing.TB interface. It's
// satisfied by both *testing.T and *testing.B.
type TB interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
}

// NewLogger returns an lkevent.Logger that writes to t's log.
func NewLogger(t TB) lkevent.Logger {
	return &lkevent.ConsoleLogger{W: testutil.WriteSyncer{T: t}}
}

// WithLogger is an option that logs the engine's events to t.
func WithLogger(t TB) grapht.Option {
	return grapht.WithLogger(NewLogger(t))
}

// RequireValid fails the test if any binding in cfg was rejected.
func RequireValid(t TB, cfg interface{ Err() error }) {
	if err := cfg.Err(); err != nil {
		t.Errorf("configuration has invalid bindings: %v", err)
		t.FailNow()
	}
}
