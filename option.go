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
	"strings"

	"go.uber.org/autowire/internal/wirereflect"
	"go.uber.org/autowire/wireevent"
	"go.uber.org/dig"
)

// An Option configures an Engine.
type Option interface {
	fmt.Stringer

	apply(*config)
}

type config struct {
	logger   wireevent.Logger
	provides []provide
}

// provide is a constructor handed to the Engine's container.
type provide struct {
	Target interface{}
	Opts   []dig.ProvideOption

	// Role is Introspector or MockFactory when the constructor builds the
	// Engine's collaborator, nil otherwise.
	Role reflect.Type
}

func (c *config) provided(role reflect.Type) bool {
	for _, p := range c.provides {
		if p.Role == role {
			return true
		}
	}
	return false
}

var (
	_typeOfIntrospector = reflect.TypeOf((*Introspector)(nil)).Elem()
	_typeOfMockFactory  = reflect.TypeOf((*MockFactory)(nil)).Elem()
)

// WithLogger specifies how the Engine should log its events. By default
// events are discarded.
//
//	autowire.New(
//		autowire.WithLogger(&wireevent.ConsoleLogger{W: os.Stderr}),
//	)
func WithLogger(logger wireevent.Logger) Option {
	return loggerOption{logger}
}

type loggerOption struct{ logger wireevent.Logger }

func (o loggerOption) apply(c *config) {
	if o.logger != nil {
		c.logger = o.logger
	}
}

func (o loggerOption) String() string {
	return fmt.Sprintf("autowire.WithLogger(%v)", o.logger)
}

// WithIntrospector specifies where the Engine finds the constructors of
// slot types. Without it the Engine knows no constructors at all.
//
// An Engine has a single Introspector: combining WithIntrospector with
// another WithIntrospector or with ProvideIntrospector is an error.
func WithIntrospector(in Introspector) Option {
	return introspectorOption{in}
}

type introspectorOption struct{ in Introspector }

func (o introspectorOption) apply(c *config) {
	if o.in != nil {
		in := o.in
		c.provides = append(c.provides, provide{Target: func() Introspector { return in }, Role: _typeOfIntrospector})
	}
}

func (o introspectorOption) String() string {
	return fmt.Sprintf("autowire.WithIntrospector(%v)", o.in)
}

// WithMockFactory specifies the factory producing values for fields
// tagged `autowire:"mock"`.
func WithMockFactory(f MockFactory) Option {
	return mockFactoryOption{f}
}

type mockFactoryOption struct{ f MockFactory }

func (o mockFactoryOption) apply(c *config) {
	if o.f != nil {
		f := o.f
		c.provides = append(c.provides, provide{Target: func() MockFactory { return f }, Role: _typeOfMockFactory})
	}
}

func (o mockFactoryOption) String() string {
	return fmt.Sprintf("autowire.WithMockFactory(%v)", o.f)
}

// Provide registers constructors of the collaborators the Engine's
// Introspector and MockFactory are built from. The constructors are
// resolved by type when the Engine is built, and may depend on each other
// and on the Engine's wireevent.Logger.
//
//	autowire.New(
//		autowire.Provide(loadFixtureConfig),
//		autowire.ProvideIntrospector(func(cfg FixtureConfig) *autowire.Catalog { ... }),
//	)
//
// Constructors that nothing needs are never called.
func Provide(constructors ...interface{}) Option {
	return provideOption{name: "Provide", targets: constructors}
}

// ProvideIntrospector registers the constructor of the Engine's
// Introspector. The constructor may return any type implementing
// Introspector, optionally with an error, and its parameters are resolved
// like those of constructors given to Provide.
func ProvideIntrospector(constructor interface{}) Option {
	return provideOption{name: "ProvideIntrospector", targets: []interface{}{constructor}, as: _typeOfIntrospector}
}

// ProvideMockFactory registers the constructor of the Engine's
// MockFactory, in the same way as ProvideIntrospector.
//
//	autowire.New(
//		autowire.Provide(func() *gomock.Controller { return ctrl }),
//		autowire.ProvideMockFactory(func(ctrl *gomock.Controller) *automock.Factory {
//			return automock.New(ctrl).MustProvide(NewMockRepository)
//		}),
//	)
func ProvideMockFactory(constructor interface{}) Option {
	return provideOption{name: "ProvideMockFactory", targets: []interface{}{constructor}, as: _typeOfMockFactory}
}

type provideOption struct {
	name    string
	targets []interface{}
	as      reflect.Type // interface the result is provided as, if any
}

func (o provideOption) apply(c *config) {
	for _, target := range o.targets {
		p := provide{Target: target, Role: o.as}
		if o.as != nil && !returns(target, o.as) {
			p.Opts = append(p.Opts, dig.As(reflect.New(o.as).Interface()))
		}
		c.provides = append(c.provides, p)
	}
}

func (o provideOption) String() string {
	items := make([]string, len(o.targets))
	for i, t := range o.targets {
		items[i] = wirereflect.FuncName(t)
	}
	return fmt.Sprintf("autowire.%s(%s)", o.name, strings.Join(items, ", "))
}

// returns reports whether fn is a function whose first result is exactly t.
func returns(fn interface{}, t reflect.Type) bool {
	ft := reflect.TypeOf(fn)
	return ft != nil && ft.Kind() == reflect.Func && ft.NumOut() > 0 && ft.Out(0) == t
}
