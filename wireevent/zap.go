// Copyright (c) 2026 Uber Technologies, Inc.
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

package wireevent

import (
	"go.uber.org/zap"
)

// ZapLogger is an autowire event logger that logs events to Zap.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// LogEvent logs the given event to the provided Zap logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		l.Logger.Info("registered",
			zap.String("type", e.TypeName),
			zap.String("name", e.Name),
			zap.Bool("absent", e.Absent),
		)
	case *Mocked:
		if e.Err != nil {
			l.Logger.Error("mock failed",
				zap.String("type", e.TypeName),
				zap.String("name", e.Name),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("mocked",
				zap.String("type", e.TypeName),
				zap.String("name", e.Name),
			)
		}
	case *Instantiated:
		if e.Err != nil {
			l.Logger.Error("instantiation failed",
				zap.String("type", e.TypeName),
				zap.String("name", e.Name),
				zap.String("constructor", e.Constructor),
				zap.String("function", e.Function),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("instantiated",
				zap.String("type", e.TypeName),
				zap.String("name", e.Name),
				zap.String("constructor", e.Constructor),
				zap.String("function", e.Function),
				zap.Int("pass", e.Pass),
			)
		}
	case *Deferred:
		l.Logger.Debug("deferred",
			zap.String("type", e.TypeName),
			zap.String("name", e.Name),
			zap.Int("pass", e.Pass),
			zap.NamedError("reason", e.Reason),
		)
	case *PassCompleted:
		l.Logger.Debug("pass completed",
			zap.Int("pass", e.Pass),
			zap.Int("created", e.Created),
			zap.Int("remaining", e.Remaining),
		)
	case *Wired:
		if e.Err != nil {
			l.Logger.Error("wiring failed",
				zap.Int("slots", e.Slots),
				zap.Int("passes", e.Passes),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("wired",
				zap.Int("slots", e.Slots),
				zap.Int("passes", e.Passes),
			)
		}
	case *Injected:
		l.Logger.Info("injected",
			zap.String("field", e.Field),
			zap.String("type", e.TypeName),
			zap.String("name", e.Name),
		)
	case *Cleared:
		l.Logger.Info("cleared",
			zap.Int("types", e.Types),
			zap.Int("values", e.Values),
		)
	}
}
