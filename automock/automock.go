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

package automock

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"go.uber.org/autowire"
	"go.uber.org/mock/gomock"
)

// ErrNoMock is returned by Mock when no registered constructor can build a
// mock of the requested type.
var ErrNoMock = errors.New("no mock registered")

var _typeOfController = reflect.TypeOf((*gomock.Controller)(nil))

var _ autowire.MockFactory = (*Factory)(nil)

// Factory builds gomock mocks from mockgen constructors. It is safe for
// concurrent use.
type Factory struct {
	ctrl *gomock.Controller

	mu    sync.RWMutex
	ctors []mockConstructor
}

type mockConstructor struct {
	Type reflect.Type
	fn   reflect.Value
}

// New returns a Factory whose mocks report to ctrl.
func New(ctrl *gomock.Controller) *Factory {
	return &Factory{ctrl: ctrl}
}

// Provide registers a mockgen constructor: a function with the signature
//
//	func(*gomock.Controller) *MockT
func (f *Factory) Provide(newMock interface{}) error {
	fn := reflect.ValueOf(newMock)
	if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
		return fmt.Errorf("cannot provide mock constructor: must provide a function, got %v (type %T)", newMock, newMock)
	}

	ft := fn.Type()
	if ft.NumIn() != 1 || ft.In(0) != _typeOfController || ft.NumOut() != 1 {
		return fmt.Errorf("cannot provide mock constructor: want func(*gomock.Controller) T, got %v", ft)
	}

	mt := ft.Out(0)
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.ctors {
		if c.Type == mt {
			return fmt.Errorf("cannot provide mock constructor: %v already provided", mt)
		}
	}
	f.ctors = append(f.ctors, mockConstructor{Type: mt, fn: fn})
	return nil
}

// MustProvide is Provide, panicking on error. It returns the Factory so
// that calls may be chained.
func (f *Factory) MustProvide(newMock interface{}) *Factory {
	if err := f.Provide(newMock); err != nil {
		panic(err)
	}
	return f
}

// Mock builds a new mock for t.
func (f *Factory) Mock(t reflect.Type) (interface{}, error) {
	c, err := f.find(t)
	if err != nil {
		return nil, err
	}
	return c.fn.Call([]reflect.Value{reflect.ValueOf(f.ctrl)})[0].Interface(), nil
}

func (f *Factory) find(t reflect.Type) (mockConstructor, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, c := range f.ctors {
		if c.Type == t {
			return c, nil
		}
	}
	if t.Kind() != reflect.Interface {
		return mockConstructor{}, fmt.Errorf("%v: %w", t, ErrNoMock)
	}

	var found []mockConstructor
	for _, c := range f.ctors {
		if c.Type.Implements(t) {
			found = append(found, c)
		}
	}
	switch len(found) {
	case 0:
		return mockConstructor{}, fmt.Errorf("%v: %w", t, ErrNoMock)
	case 1:
		return found[0], nil
	}

	names := make([]string, len(found))
	for i, c := range found {
		names[i] = c.Type.String()
	}
	return mockConstructor{}, fmt.Errorf("%v is implemented by several mocks [%v]", t, strings.Join(names, ", "))
}
