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

// Package autowiretest runs an autowire Engine inside a test, failing the
// test when wiring fails and clearing the registry once the test ends.
package autowiretest

import (
	"strings"

	"go.uber.org/autowire"
	"go.uber.org/autowire/wireevent"
)

// TB is a subset of the standard library's testing.TB interface. It's
// satisfied by both *testing.T and *testing.B.
type TB interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
	Cleanup(func())
}

// Engine is an autowire.Engine bound to a test.
type Engine struct {
	*autowire.Engine

	tb TB
}

// New builds an Engine whose events are written to the test log. The
// registry is cleared when the test and its subtests complete.
//
// Options passed to New take precedence over the test logger.
func New(tb TB, opts ...autowire.Option) *Engine {
	allOpts := make([]autowire.Option, 0, len(opts)+1)
	allOpts = append(allOpts, autowire.WithLogger(&wireevent.ConsoleLogger{W: testWriter{tb}}))
	allOpts = append(allOpts, opts...)

	e := &Engine{Engine: autowire.New(allOpts...), tb: tb}
	if err := e.Err(); err != nil {
		tb.Errorf("autowire.New failed: %v", err)
		tb.FailNow()
	}
	tb.Cleanup(e.Clear)
	return e
}

// RequireWire calls Wire, failing the test if any slot cannot be wired.
func (e *Engine) RequireWire(slots ...autowire.Slot) *Engine {
	if err := e.Wire(slots...); err != nil {
		e.tb.Errorf("wiring failed: %v", err)
		e.tb.FailNow()
	}
	return e
}

// RequirePopulate calls Populate, failing the test if the fixture cannot be
// populated.
func (e *Engine) RequirePopulate(target interface{}, opts ...autowire.PopulateOption) *Engine {
	if err := e.Populate(target, opts...); err != nil {
		e.tb.Errorf("populating fixture failed: %v", err)
		e.tb.FailNow()
	}
	return e
}

// Populate builds an Engine for the test and populates target with it.
//
//	var fixture struct {
//		Repo    Repository `autowire:"mock"`
//		Service *Service   `autowire:"instance"`
//	}
//	autowiretest.Populate(t, &fixture, autowire.WithIntrospector(catalog))
func Populate(tb TB, target interface{}, opts ...autowire.Option) *Engine {
	return New(tb, opts...).RequirePopulate(target)
}

type testWriter struct{ tb TB }

func (w testWriter) Write(p []byte) (int, error) {
	w.tb.Logf("%s", strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
