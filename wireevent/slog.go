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
	"context"
	"log/slog"
)

var _ Logger = (*SlogLogger)(nil)

// SlogLogger is an autowire event logger that logs events using a slog
// logger.
type SlogLogger struct {
	Logger *slog.Logger

	ctx        context.Context
	logLevel   slog.Level
	errorLevel *slog.Level
}

// UseContext sets the context that will be used when logging to slog.
func (l *SlogLogger) UseContext(ctx context.Context) {
	l.ctx = ctx
}

// UseLogLevel sets the level of non-error logs emitted by autowire to
// level. Per-pass events are always logged at debug level.
func (l *SlogLogger) UseLogLevel(level slog.Level) {
	l.logLevel = level
}

// UseErrorLevel sets the level of error logs emitted by autowire to level.
func (l *SlogLogger) UseErrorLevel(level slog.Level) {
	l.errorLevel = &level
}

func (l *SlogLogger) logEvent(msg string, fields ...any) {
	l.Logger.Log(l.ctx, l.logLevel, msg, fields...)
}

func (l *SlogLogger) logDebug(msg string, fields ...any) {
	l.Logger.Log(l.ctx, slog.LevelDebug, msg, fields...)
}

func (l *SlogLogger) logError(msg string, fields ...any) {
	lvl := slog.LevelError
	if l.errorLevel != nil {
		lvl = *l.errorLevel
	}

	l.Logger.Log(l.ctx, lvl, msg, fields...)
}

// LogEvent logs the given event to the provided slog logger.
func (l *SlogLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		l.logEvent("registered",
			slog.String("type", e.TypeName),
			slog.String("name", e.Name),
			slog.Bool("absent", e.Absent),
		)
	case *Mocked:
		if e.Err != nil {
			l.logError("mock failed",
				slog.String("type", e.TypeName),
				slog.String("name", e.Name),
				slogErr(e.Err),
			)
		} else {
			l.logEvent("mocked",
				slog.String("type", e.TypeName),
				slog.String("name", e.Name),
			)
		}
	case *Instantiated:
		if e.Err != nil {
			l.logError("instantiation failed",
				slog.String("type", e.TypeName),
				slog.String("name", e.Name),
				slog.String("constructor", e.Constructor),
				slog.String("function", e.Function),
				slogErr(e.Err),
			)
		} else {
			l.logEvent("instantiated",
				slog.String("type", e.TypeName),
				slog.String("name", e.Name),
				slog.String("constructor", e.Constructor),
				slog.String("function", e.Function),
				slog.Int("pass", e.Pass),
			)
		}
	case *Deferred:
		l.logDebug("deferred",
			slog.String("type", e.TypeName),
			slog.String("name", e.Name),
			slog.Int("pass", e.Pass),
			slog.Any("reason", e.Reason),
		)
	case *PassCompleted:
		l.logDebug("pass completed",
			slog.Int("pass", e.Pass),
			slog.Int("created", e.Created),
			slog.Int("remaining", e.Remaining),
		)
	case *Wired:
		if e.Err != nil {
			l.logError("wiring failed",
				slog.Int("slots", e.Slots),
				slog.Int("passes", e.Passes),
				slogErr(e.Err),
			)
		} else {
			l.logEvent("wired",
				slog.Int("slots", e.Slots),
				slog.Int("passes", e.Passes),
			)
		}
	case *Injected:
		l.logEvent("injected",
			slog.String("field", e.Field),
			slog.String("type", e.TypeName),
			slog.String("name", e.Name),
		)
	case *Cleared:
		l.logEvent("cleared",
			slog.Int("types", e.Types),
			slog.Int("values", e.Values),
		)
	}
}

func slogErr(err error) slog.Attr {
	return slog.Any("error", err)
}
