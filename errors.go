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
	"errors"
	"fmt"
	"reflect"
	"strings"

	"go.uber.org/autowire/internal/wirereflect"
)

var (
	// ErrNoPublicConstructor is reported for a slot whose type has no
	// public constructor.
	ErrNoPublicConstructor = errors.New("no public constructor found")

	// ErrNoMatchingConstructor is reported for a slot whose type has
	// several public constructors and whose signature selects none of them.
	ErrNoMatchingConstructor = errors.New("no matching constructor found")

	// ErrParameterUndefined is reported for a constructor parameter whose
	// type has nothing registered.
	ErrParameterUndefined = errors.New("no candidate for parameter")

	// ErrParameterNonUnique is reported for a constructor parameter whose
	// type has several registered values, none under the parameter's name.
	ErrParameterNonUnique = errors.New("no unique candidate for parameter")

	// ErrConstruction is matched by errors raised from inside a selected
	// constructor.
	ErrConstruction = errors.New("constructor failed")

	// ErrNotRegistered is returned by lookups of a type with nothing
	// registered.
	ErrNotRegistered = errors.New("not registered")

	// ErrNotUnique is returned by unique lookups of a type with several
	// registered values.
	ErrNotUnique = errors.New("not unique")
)

// SelectionError explains why no constructor could be selected for a type.
type SelectionError struct {
	Type reflect.Type

	// Candidates lists the public constructors of Type when there were
	// several to choose from.
	Candidates []*Constructor

	err error
}

func (e *SelectionError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.err.Error())
	if len(e.Candidates) > 0 {
		sb.WriteString("\n\tavailable candidates are:")
		for _, c := range e.Candidates {
			sb.WriteString("\n\t\t")
			sb.WriteString(c.String())
		}
	}
	return sb.String()
}

func (e *SelectionError) Unwrap() error { return e.err }

// ParameterError explains why a constructor parameter could not be
// resolved.
type ParameterError struct {
	Param Param

	// Candidates lists the names registered under the parameter's type, in
	// registration order, when there were several.
	Candidates []string

	err error
}

func (e *ParameterError) Error() string {
	msg := fmt.Sprintf("%v (%v)", e.err, e.Param)
	if len(e.Candidates) > 0 {
		msg += fmt.Sprintf("\n\t\tavailable candidates are [%s]", strings.Join(e.Candidates, ", "))
	}
	return msg
}

func (e *ParameterError) Unwrap() error { return e.err }

// SlotError is the diagnostic for a slot that could not be built: either
// no constructor was selected, or the selected constructor had
// unresolved parameters.
type SlotError struct {
	Slot Slot

	// Selection is set when no constructor could be selected.
	Selection *SelectionError

	// Constructor is the selected constructor, and Params its unresolved
	// parameters in declaration order.
	Constructor *Constructor
	Params      []*ParameterError
}

func (e *SlotError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Slot.String())
	sb.WriteString(" -> ")
	if e.Selection != nil {
		sb.WriteString(e.Selection.Error())
		return sb.String()
	}

	sb.WriteString("new ")
	sb.WriteString(e.Constructor.String())
	for _, p := range e.Params {
		sb.WriteString("\n\t")
		sb.WriteString(p.Error())
	}
	return sb.String()
}

// Unwrap exposes the selection or parameter errors to errors.Is and
// errors.As.
func (e *SlotError) Unwrap() []error {
	if e.Selection != nil {
		return []error{e.Selection}
	}
	errs := make([]error, len(e.Params))
	for i, p := range e.Params {
		errs[i] = p
	}
	return errs
}

// WiringError is returned when some slots remain unbuilt once wiring stops
// making progress. It reports every such slot at once.
type WiringError struct {
	Slots []*SlotError
}

func (e *WiringError) Error() string {
	blocks := make([]string, len(e.Slots))
	for i, s := range e.Slots {
		blocks[i] = s.Error()
	}
	return fmt.Sprintf("could not wire %d slots:\n%s", len(e.Slots), strings.Join(blocks, "\n"))
}

// Errors returns one error per unbuilt slot. It lets multierr.Errors split
// a WiringError.
func (e *WiringError) Errors() []error {
	errs := make([]error, len(e.Slots))
	for i, s := range e.Slots {
		errs[i] = s
	}
	return errs
}

func (e *WiringError) Unwrap() []error { return e.Errors() }

// ConstructionError is returned when a selected constructor fails while
// running. It aborts the wiring call.
type ConstructionError struct {
	Slot        Slot
	Constructor *Constructor
	Err         error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("unable to instantiate %v with new %v: %v", e.Slot, e.Constructor, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// Is matches ErrConstruction.
func (e *ConstructionError) Is(target error) bool { return target == ErrConstruction }

func notRegisteredError(t reflect.Type, name string) error {
	if name == "" {
		return fmt.Errorf("type %v: %w", wirereflect.TypeName(t), ErrNotRegistered)
	}
	return fmt.Errorf("(%v %v): %w", wirereflect.TypeName(t), name, ErrNotRegistered)
}
