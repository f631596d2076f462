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
	"fmt"
	"io"
)

// ConsoleLogger is an autowire event logger that attempts to write
// human-readable messages to the console.
//
// Use this during development.
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

func (l *ConsoleLogger) logf(msg string, args ...interface{}) {
	fmt.Fprintf(l.W, "[autowire] "+msg+"\n", args...)
}

// LogEvent logs the given event to the provided writer.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		if e.Absent {
			l.logf("REGISTER\t%v %v = NULL", e.TypeName, e.Name)
		} else {
			l.logf("REGISTER\t%v %v", e.TypeName, e.Name)
		}
	case *Mocked:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to mock %v %v: %v", e.TypeName, e.Name, e.Err)
		} else {
			l.logf("MOCK\t\t%v %v", e.TypeName, e.Name)
		}
	case *Instantiated:
		if e.Err != nil {
			l.logf("ERROR\t\tnew %v failed for %v %v: %v", e.Constructor, e.TypeName, e.Name, e.Err)
		} else {
			l.logf("NEW\t\t%v %v <= new %v (pass %d)", e.TypeName, e.Name, e.Constructor, e.Pass)
		}
	case *Deferred:
		l.logf("DEFER\t\t%v %v (pass %d)", e.TypeName, e.Name, e.Pass)
	case *PassCompleted:
		l.logf("PASS %d\t\tcreated %d, remaining %d", e.Pass, e.Created, e.Remaining)
	case *Wired:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to wire %d slots after %d passes:\n%v", e.Slots, e.Passes, e.Err)
		} else {
			l.logf("WIRED\t\t%d slots in %d passes", e.Slots, e.Passes)
		}
	case *Injected:
		l.logf("INJECT\t\t%v <= %v %v", e.Field, e.TypeName, e.Name)
	case *Cleared:
		l.logf("CLEARED\t\t%d values of %d types", e.Values, e.Types)
	}
}
