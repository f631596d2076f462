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

package autowire

import (
	"fmt"
	"reflect"

	"go.uber.org/autowire/internal/wirereflect"
)

// Slot is a named, typed destination that the Engine fills by building a
// value of Type.
type Slot struct {
	Type reflect.Type
	Name string

	// Signature selects a constructor by its ordered parameter types when
	// Type has more than one. A nil Signature means none was supplied; an
	// empty, non-nil Signature selects the constructor without parameters.
	// It is ignored when Type has a single constructor.
	Signature []reflect.Type
}

// NewSlot builds a Slot. Pass signature types to pick among several
// constructors of t.
func NewSlot(t reflect.Type, name string, signature ...reflect.Type) Slot {
	return Slot{Type: t, Name: name, Signature: signature}
}

func (s Slot) String() string {
	return fmt.Sprintf("slot (%s %s)", wirereflect.TypeName(s.Type), s.Name)
}
