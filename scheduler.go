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

	"go.uber.org/autowire/internal/registry"
	"go.uber.org/autowire/internal/wirereflect"
	"go.uber.org/autowire/wireevent"
	"go.uber.org/multierr"
)

// attempt is the outcome of planning one slot against the current
// registry: either a constructor with all of its arguments, or the reason
// the slot cannot be built yet.
type attempt struct {
	ctor *Constructor
	args []reflect.Value
	err  *SlotError
}

func (e *Engine) plan(s Slot) attempt {
	ctor, serr := selectConstructor(e.introspector, s)
	if serr != nil {
		return attempt{err: &SlotError{Slot: s, Selection: serr}}
	}

	args, perrs := resolveParams(e.registry, ctor)
	if perrs != nil {
		return attempt{ctor: ctor, err: &SlotError{Slot: s, Constructor: ctor, Params: perrs}}
	}
	return attempt{ctor: ctor, args: args}
}

// Wire builds a value for every slot and registers each one under the
// slot's type and name, where it becomes available to the slots built
// after it.
//
// Slots may depend on each other in any order. Wiring runs in passes: each
// pass tries every slot not built yet and keeps those whose constructor
// cannot be selected or whose parameters cannot all be resolved. It stops
// once a pass builds nothing. Slots still unbuilt are then reported
// together in a single *WiringError; a dependency cycle shows up as each
// slot of the cycle missing the other.
//
// A constructor that fails while running aborts Wire immediately with a
// *ConstructionError.
func (e *Engine) Wire(slots ...Slot) (err error) {
	if e.err != nil {
		return e.err
	}
	if err := checkSlots(slots); err != nil {
		return err
	}

	pending := make([]Slot, len(slots))
	copy(pending, slots)

	var passes int
	defer func() {
		e.log.LogEvent(&wireevent.Wired{Slots: len(slots), Passes: passes, Err: err})
	}()

	for len(pending) > 0 {
		passes++
		next := make([]Slot, 0, len(pending))
		for _, s := range pending {
			a := e.plan(s)
			if a.err != nil {
				e.log.LogEvent(&wireevent.Deferred{
					TypeName: s.Type.String(),
					Name:     s.Name,
					Pass:     passes,
					Reason:   a.err,
				})
				next = append(next, s)
				continue
			}
			if err := e.instantiate(s, a, passes); err != nil {
				return err
			}
		}

		created := len(pending) - len(next)
		e.log.LogEvent(&wireevent.PassCompleted{
			Pass:      passes,
			Created:   created,
			Remaining: len(next),
		})
		pending = next
		if created == 0 {
			break
		}
	}

	if len(pending) == 0 {
		return nil
	}

	werr := &WiringError{Slots: make([]*SlotError, 0, len(pending))}
	for _, s := range pending {
		if a := e.plan(s); a.err != nil {
			werr.Slots = append(werr.Slots, a.err)
		}
	}
	return werr
}

func checkSlots(slots []Slot) error {
	var err error
	for i, s := range slots {
		if s.Type == nil {
			err = multierr.Append(err, fmt.Errorf("cannot wire slot %d (%q) without a type", i, s.Name))
		}
	}
	return err
}

func (e *Engine) instantiate(s Slot, a attempt, pass int) error {
	ev := &wireevent.Instantiated{
		TypeName:    s.Type.String(),
		Name:        s.Name,
		Constructor: a.ctor.String(),
		Function:    wirereflect.FuncName(a.ctor.Func()),
		Pass:        pass,
	}

	v, err := e.introspector.Construct(a.ctor, a.args)
	if err == nil && v.IsValid() && !v.Type().AssignableTo(s.Type) {
		err = fmt.Errorf("built %v, not assignable to %v", v.Type(), s.Type)
	}
	if err != nil {
		ev.Err = err
		e.log.LogEvent(ev)
		return &ConstructionError{Slot: s, Constructor: a.ctor, Err: err}
	}

	e.log.LogEvent(ev)
	e.register(s.Type, s.Name, registry.Of(v))
	return nil
}
