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

// Package wirelog holds logging helpers for autowire's own tests.
package wirelog

import (
	"reflect"

	"go.uber.org/autowire/wireevent"
)

// Spy is an autowire event logger that captures emitted events for
// later inspection.
type Spy struct {
	events []wireevent.Event
}

var _ wireevent.Logger = &Spy{}

// LogEvent appends an Event.
func (s *Spy) LogEvent(event wireevent.Event) {
	s.events = append(s.events, event)
}

// Events returns all captured events.
func (s *Spy) Events() []wireevent.Event {
	events := make([]wireevent.Event, len(s.events))
	copy(events, s.events)
	return events
}

// EventTypes returns all captured event types.
func (s *Spy) EventTypes() []string {
	types := make([]string, len(s.events))
	for i, e := range s.events {
		types[i] = reflect.TypeOf(e).Elem().Name()
	}
	return types
}

// Filter returns a new Spy holding, in order, the captured events for
// which keep returns true.
func (s *Spy) Filter(keep func(wireevent.Event) bool) *Spy {
	var filtered Spy
	for _, e := range s.events {
		if keep(e) {
			filtered.events = append(filtered.events, e)
		}
	}
	return &filtered
}

// Built lists the names of the slots that were instantiated successfully,
// in the order they were built.
func (s *Spy) Built() []string {
	var names []string
	for _, e := range s.events {
		if inst, ok := e.(*wireevent.Instantiated); ok && inst.Err == nil {
			names = append(names, inst.Name)
		}
	}
	return names
}

// Reset clears all messages from the Spy.
func (s *Spy) Reset() {
	s.events = s.events[:0]
}
