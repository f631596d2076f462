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
	"sync"
)

// Introspector lists the public constructors of a type and runs them.
//
// Go has no runtime notion of a constructor, so an Introspector is the
// explicit source of that knowledge. Catalog is the default
// implementation.
type Introspector interface {
	// Constructors returns the public constructors producing t, in a
	// stable order. A type without public constructors yields none.
	Constructors(t reflect.Type) []*Constructor

	// Construct runs c with args, which are ordered like c.Params.
	Construct(c *Constructor, args []reflect.Value) (reflect.Value, error)
}

// Catalog is an Introspector backed by explicitly provided constructor
// functions, kept per produced type in the order they were provided.
//
// A Catalog holds no per-test state and is safe for concurrent use, so a
// single Catalog may be shared by parallel tests.
type Catalog struct {
	mu    sync.RWMutex
	ctors map[reflect.Type][]*Constructor
}

var _ Introspector = (*Catalog)(nil)

// NewCatalog builds an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{ctors: make(map[reflect.Type][]*Constructor)}
}

// Provide adds fn as a public constructor of the type it returns. See
// NewConstructor for the accepted shapes of fn and paramNames.
func (c *Catalog) Provide(fn interface{}, paramNames ...string) error {
	ctor, err := NewConstructor(fn, paramNames...)
	if err != nil {
		return fmt.Errorf("cannot provide constructor: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.ctors[ctor.Type] = append(c.ctors[ctor.Type], ctor)
	return nil
}

// MustProvide is like Provide but panics if fn cannot be used as a
// constructor. It simplifies package-level catalogs.
func (c *Catalog) MustProvide(fn interface{}, paramNames ...string) *Catalog {
	if err := c.Provide(fn, paramNames...); err != nil {
		panic(err)
	}
	return c
}

// Constructors returns the constructors provided for t.
func (c *Catalog) Constructors(t reflect.Type) []*Constructor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ctors := make([]*Constructor, len(c.ctors[t]))
	copy(ctors, c.ctors[t])
	return ctors
}

// Construct runs ctor with args.
func (c *Catalog) Construct(ctor *Constructor, args []reflect.Value) (reflect.Value, error) {
	return ctor.call(args)
}
