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

import (
	"go.uber.org/zap"
)

// ZapLogger is an event logger that logs events to Zap.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// LogEvent logs the given event to the provided Zap logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Bound:
		fields := []zap.Field{
			zap.String("context", e.Context),
			zap.String("contract", e.Contract),
		}
		if e.Qualifier != "" {
			fields = append(fields, zap.String("qualifier", e.Qualifier))
		}
		if e.Err != nil {
			fields = append(fields,
				zap.String("location", e.Location),
				zap.Error(e.Err),
			)
			l.Logger.Error("binding rejected", fields...)
		} else {
			fields = append(fields, zap.String("target", e.Target))
			l.Logger.Info("bound", fields...)
		}
	case *Narrowed:
		l.Logger.Debug("narrowed", zap.String("context", e.Context))
	case *Applied:
		if e.Err != nil {
			l.Logger.Error("apply failed",
				zap.String("rule", e.Rule),
				zap.String("scope", e.Scope),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("applied",
				zap.String("rule", e.Rule),
				zap.String("scope", e.Scope),
			)
		}
	}
}
