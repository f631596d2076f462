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
)

// Param is one parameter of a Constructor.
type Param struct {
	Type reflect.Type
	Name string
}

func (p Param) String() string {
	return fmt.Sprintf("%s %s", wirereflect.TypeName(p.Type), p.Name)
}

// Constructor is a public constructor of a type: a function producing the
// type from an ordered list of named parameters.
type Constructor struct {
	// Type is the type the constructor produces.
	Type reflect.Type
	// Params lists the constructor's parameters in declaration order.
	Params []Param

	fn      reflect.Value
	returns bool // whether fn also returns an error
}

// NewConstructor builds a Constructor from fn, which must be a
// non-variadic function returning either a single value or a value and an
// error.
//
// Go does not keep parameter names at runtime, so they are supplied
// through paramNames in declaration order. When paramNames is empty the
// parameters are named arg0, arg1 and so on.
//
//	c, err := autowire.NewConstructor(NewService, "repo", "clock")
func NewConstructor(fn interface{}, paramNames ...string) (*Constructor, error) {
	fv := reflect.ValueOf(fn)
	if fn == nil || fv.Kind() != reflect.Func {
		return nil, fmt.Errorf("constructor must be a function, got %T", fn)
	}
	if fv.IsNil() {
		return nil, fmt.Errorf("constructor %T is a nil function", fn)
	}

	ft := fv.Type()
	if ft.IsVariadic() {
		return nil, fmt.Errorf("constructor %v must not be variadic", ft)
	}

	c := &Constructor{fn: fv}
	switch ft.NumOut() {
	case 1:
		if wirereflect.IsErr(ft.Out(0)) {
			return nil, fmt.Errorf("constructor %v must return a value, not only an error", ft)
		}
	case 2:
		if ft.Out(1) != reflect.TypeOf((*error)(nil)).Elem() {
			return nil, fmt.Errorf("second result of constructor %v must be an error", ft)
		}
		c.returns = true
	default:
		return nil, fmt.Errorf("constructor %v must return a value and an optional error", ft)
	}
	c.Type = ft.Out(0)

	if len(paramNames) != 0 && len(paramNames) != ft.NumIn() {
		return nil, fmt.Errorf(
			"constructor %v has %d parameters but %d names were given", ft, ft.NumIn(), len(paramNames))
	}

	c.Params = make([]Param, ft.NumIn())
	for i := range c.Params {
		name := fmt.Sprintf("arg%d", i)
		if len(paramNames) > 0 {
			name = paramNames[i]
		}
		c.Params[i] = Param{Type: ft.In(i), Name: name}
	}
	return c, nil
}

// ParamTypes returns the ordered parameter types of the constructor.
func (c *Constructor) ParamTypes() []reflect.Type {
	types := make([]reflect.Type, len(c.Params))
	for i, p := range c.Params {
		types[i] = p.Type
	}
	return types
}

// Func returns the underlying constructor function.
func (c *Constructor) Func() interface{} {
	return c.fn.Interface()
}

// String renders the constructor as it appears in diagnostics, for
// example "Service(*Repo repo, Clock clock)".
func (c *Constructor) String() string {
	params := make([]string, len(c.Params))
	for i, p := range c.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("%s(%s)", typeBaseName(c.Type), strings.Join(params, ", "))
}

// call runs the constructor. A returned error or a panic inside the
// constructor is reported as an error.
func (c *Constructor) call(args []reflect.Value) (v reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	results := c.fn.Call(args)
	if c.returns {
		if errV := results[1]; !errV.IsNil() {
			return reflect.Value{}, errV.Interface().(error)
		}
	}
	return results[0], nil
}

// typeBaseName names the type a constructor builds without pointer
// indirections, so a constructor of *Service reads as Service(...).
func typeBaseName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr && t.Name() == "" {
		t = t.Elem()
	}
	return wirereflect.TypeName(t)
}
