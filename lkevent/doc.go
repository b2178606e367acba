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

// Package lkevent defines a means of changing how LensKit logs the events
// of its binding engine.
//
// # Changing the Logger
//
// By default, the [NopLogger] is used and nothing is written.
//
// Pass grapht.WithLogger (or lenskit.New with the same option) to change
// this behavior.
//
//	cfg := lenskit.New(grapht.WithLogger(&lkevent.ConsoleLogger{W: os.Stderr}))
//
// If you're using Zap inside your application,
// you can use the [ZapLogger] implementation of the interface.
//
//	log, _ := zap.NewProduction()
//	cfg := lenskit.New(grapht.WithLogger(&lkevent.ZapLogger{Logger: log}))
//
// # Implementing a Custom Logger
//
// To implement a custom logger, implement the [Logger] interface.
// [Event] is a union type of all the events the engine can emit;
// use a type switch to handle each of them.
//
//	func (l *MyLogger) LogEvent(e lkevent.Event) {
//		switch e := e.(type) {
//		case *lkevent.Bound:
//			// ...
//		// ...
//		}
//	}
package lkevent
