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
	"go.uber.org/dig"
	"go.uber.org/multierr"
)

// Engine wires the slots of one test unit. It owns the registry of values
// available to that unit: values registered by the caller, mocks, and
// every value the Engine builds.
//
// An Engine is not safe for concurrent use. Tests running in parallel must
// each use their own Engine; they may share a Catalog.
type Engine struct {
	registry     *registry.Registry
	introspector Introspector
	mocks        MockFactory
	log          wireevent.Logger

	// err is the error, if any, encountered while assembling the Engine.
	err error
}

type engineParams struct {
	dig.In

	Registry     *registry.Registry
	Logger       wireevent.Logger
	Introspector Introspector
}

// New builds an Engine with an empty registry.
//
//	engine := autowire.New(
//		autowire.WithIntrospector(catalog),
//		autowire.WithLogger(&wireevent.ZapLogger{Logger: log}),
//	)
//
// The Introspector and MockFactory may also be built from constructors
// given to ProvideIntrospector and ProvideMockFactory, with their
// dependencies supplied by Provide.
//
// A misconfigured Engine reports its error from Err and from every method
// that returns an error.
func New(opts ...Option) *Engine {
	cfg := config{logger: wireevent.NopLogger}
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	e := &Engine{}
	container := dig.New()

	errs := []error{
		container.Provide(registry.New),
		container.Provide(func() wireevent.Logger { return cfg.logger }),
	}
	if !cfg.provided(_typeOfIntrospector) {
		errs = append(errs, container.Provide(NewCatalog, dig.As(new(Introspector))))
	}
	for _, p := range cfg.provides {
		if err := container.Provide(p.Target, p.Opts...); err != nil {
			errs = append(errs, fmt.Errorf("cannot provide %v: %w", wirereflect.FuncName(p.Target), err))
		}
	}
	if e.err = multierr.Combine(errs...); e.err != nil {
		return e
	}

	err := container.Invoke(func(p engineParams) {
		e.registry = p.Registry
		e.log = p.Logger
		e.introspector = p.Introspector
	})
	if err == nil && cfg.provided(_typeOfMockFactory) {
		err = container.Invoke(func(m MockFactory) { e.mocks = m })
	}
	if err != nil {
		e.err = fmt.Errorf("cannot build engine: %w", err)
		// Only a fully built Engine may be used.
		e.registry = nil
		return e
	}

	if e.introspector == nil {
		e.introspector = NewCatalog()
	}
	return e
}

// Err returns the error encountered while building the Engine, if any.
func (e *Engine) Err() error {
	return e.err
}

// Register binds value to (t, name). A nil value, including a typed nil
// pointer, map, slice, func, chan or interface, is registered as absent:
// parameters resolving to it receive the zero value of their type.
// Registering an existing (t, name) pair replaces its value.
func (e *Engine) Register(t reflect.Type, name string, value interface{}) error {
	if e.err != nil {
		return e.err
	}
	if t == nil {
		return fmt.Errorf("cannot register %q without a type", name)
	}

	var v reflect.Value
	if value != nil {
		v = reflect.ValueOf(value)
		if !v.Type().AssignableTo(t) {
			return fmt.Errorf("cannot register %v as (%v %v): %v is not assignable to %v",
				value, wirereflect.TypeName(t), name, v.Type(), t)
		}
		if v.Type() != t {
			cv := reflect.New(t).Elem()
			cv.Set(v)
			v = cv
		}
	}

	e.register(t, name, registry.Of(v))
	return nil
}

// Supply registers value under its own dynamic type.
func (e *Engine) Supply(name string, value interface{}) error {
	if value == nil {
		return fmt.Errorf("cannot supply untyped nil as %q", name)
	}
	return e.Register(reflect.TypeOf(value), name, value)
}

func (e *Engine) register(t reflect.Type, name string, v registry.Value) {
	e.registry.Register(t, name, v)
	e.log.LogEvent(&wireevent.Registered{
		TypeName: t.String(),
		Name:     name,
		Absent:   v.IsAbsent(),
	})
}

// Lookup returns the value bound to (t, name). The boolean reports whether
// the pair is registered at all; a pair registered as absent yields
// (nil, true).
func (e *Engine) Lookup(t reflect.Type, name string) (interface{}, bool) {
	if e.registry == nil {
		return nil, false
	}
	v, ok := e.registry.Lookup(t, name)
	if !ok {
		return nil, false
	}
	return v.Interface(), true
}

// LookupUnique returns the only value registered under t, whatever its
// name. It fails with ErrNotRegistered or ErrNotUnique otherwise.
func (e *Engine) LookupUnique(t reflect.Type) (interface{}, error) {
	if e.err != nil {
		return nil, e.err
	}
	switch names := e.registry.Names(t); len(names) {
	case 0:
		return nil, notRegisteredError(t, "")
	case 1:
		v, _ := e.registry.LookupUnique(t)
		return v.Interface(), nil
	default:
		return nil, fmt.Errorf("type %v has candidates %v: %w", wirereflect.TypeName(t), names, ErrNotUnique)
	}
}

// Names lists the names registered under t in registration order.
func (e *Engine) Names(t reflect.Type) []string {
	if e.registry == nil {
		return nil
	}
	return e.registry.Names(t)
}

// Clear empties the registry, leaving the Engine as if freshly built.
// Clearing twice is harmless.
func (e *Engine) Clear() {
	if e.registry == nil {
		return
	}
	ev := &wireevent.Cleared{
		Types:  len(e.registry.Types()),
		Values: e.registry.Len(),
	}
	e.registry.Clear()
	e.log.LogEvent(ev)
}
