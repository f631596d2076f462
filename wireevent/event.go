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

// Event defines an event emitted by autowire.
type Event interface {
	event() // Only autowire can implement this interface.
}

// Passing events by type to make Event hashable in the future.
func (*Registered) event()    {}
func (*Mocked) event()        {}
func (*Instantiated) event()  {}
func (*Deferred) event()      {}
func (*PassCompleted) event() {}
func (*Wired) event()         {}
func (*Injected) event()      {}
func (*Cleared) event()       {}

// Registered is emitted when a value is bound into the registry, either
// by the caller or as the result of a successful instantiation.
type Registered struct {
	// TypeName is the type the value was registered under.
	TypeName string
	// Name is the name the value was registered under.
	Name string
	// Absent is set when the value was registered without a payload.
	Absent bool
}

// Mocked is emitted after the mock factory was asked for a value.
type Mocked struct {
	TypeName string
	Name     string

	// Err is non-nil if the mock factory failed.
	Err error
}

// Instantiated is emitted after a slot's constructor ran.
type Instantiated struct {
	TypeName string
	Name     string

	// Constructor is the selected constructor, e.g. "Service(*Repo repo)".
	Constructor string
	// Function is the fully qualified name of the constructor function.
	Function string
	// Pass is the scheduling pass the slot was built in, starting at 1.
	Pass int

	// Err is non-nil if the constructor failed while running.
	Err error
}

// Deferred is emitted when a slot could not be built in the current pass
// and was kept for the next one.
type Deferred struct {
	TypeName string
	Name     string
	Pass     int
	Reason   error
}

// PassCompleted is emitted at the end of every scheduling pass.
type PassCompleted struct {
	Pass      int
	Created   int
	Remaining int
}

// Wired is emitted when a wiring call returns.
type Wired struct {
	Slots  int
	Passes int

	// Err is non-nil if some slots could not be built.
	Err error
}

// Injected is emitted when a fixture field is set from the registry.
type Injected struct {
	Field    string
	TypeName string
	Name     string
}

// Cleared is emitted when the registry is reset.
type Cleared struct {
	// Types is the number of distinct types that were registered.
	Types int
	// Values is the number of (type, name) pairs dropped.
	Values int
}
