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

// Package registry holds the values available to a single wiring unit,
// keyed by type and then by name.
package registry

import (
	"fmt"
	"reflect"
)

// Value is a registered payload. A Value is either present, carrying a
// reflect.Value, or absent: explicitly registered without a payload.
type Value struct {
	v       reflect.Value
	present bool
}

// Present wraps v as a present Value.
func Present(v reflect.Value) Value {
	return Value{v: v, present: true}
}

// Absent returns the Value for an entry registered without a payload.
func Absent() Value {
	return Value{}
}

// Of returns Absent for an invalid reflect.Value or a nil pointer, map,
// slice, func, chan or interface, and Present(v) otherwise.
func Of(v reflect.Value) Value {
	if !v.IsValid() {
		return Absent()
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			return Absent()
		}
	}
	return Present(v)
}

// IsAbsent reports whether the Value was registered without a payload.
func (v Value) IsAbsent() bool { return !v.present }

// Reflect returns the payload, or the zero value of t if the Value is
// absent.
func (v Value) Reflect(t reflect.Type) reflect.Value {
	if !v.present {
		return reflect.Zero(t)
	}
	return v.v
}

// Interface returns the payload as an interface{}, nil if absent.
func (v Value) Interface() interface{} {
	if !v.present {
		return nil
	}
	return v.v.Interface()
}

func (v Value) String() string {
	if !v.present {
		return "NULL"
	}
	return fmt.Sprint(v.v.Interface())
}

// Definition classifies how a (type, name) pair can be satisfied.
type Definition int

const (
	// Undefined means nothing is registered under the type.
	Undefined Definition = iota
	// UniqueByTypeAndName means the exact (type, name) pair is registered.
	UniqueByTypeAndName
	// UniqueByType means the name is not registered but the type has
	// exactly one entry.
	UniqueByType
	// NonUniqueByType means the name is not registered and the type has
	// several entries.
	NonUniqueByType
)

func (d Definition) String() string {
	switch d {
	case UniqueByTypeAndName:
		return "UniqueByTypeAndName"
	case UniqueByType:
		return "UniqueByType"
	case NonUniqueByType:
		return "NonUniqueByType"
	default:
		return "Undefined"
	}
}

type bucket struct {
	names  []string
	values map[string]Value
}

// Registry maps type -> name -> Value. Types and names keep their first
// insertion order. It is not safe for concurrent use.
type Registry struct {
	types   []reflect.Type
	buckets map[reflect.Type]*bucket
}

// New builds an empty Registry.
func New() *Registry {
	return &Registry{buckets: make(map[reflect.Type]*bucket)}
}

// Register binds (t, name) to v. Registering an existing pair replaces its
// value and keeps its position.
func (r *Registry) Register(t reflect.Type, name string, v Value) {
	b, ok := r.buckets[t]
	if !ok {
		b = &bucket{values: make(map[string]Value)}
		r.buckets[t] = b
		r.types = append(r.types, t)
	}
	if _, ok := b.values[name]; !ok {
		b.names = append(b.names, name)
	}
	b.values[name] = v
}

// Lookup returns the Value bound to (t, name). The boolean is false when
// the pair was never registered.
func (r *Registry) Lookup(t reflect.Type, name string) (Value, bool) {
	b, ok := r.buckets[t]
	if !ok {
		return Value{}, false
	}
	v, ok := b.values[name]
	return v, ok
}

// LookupUnique returns the only Value registered under t. The boolean is
// false unless t has exactly one entry.
func (r *Registry) LookupUnique(t reflect.Type) (Value, bool) {
	b, ok := r.buckets[t]
	if !ok || len(b.names) != 1 {
		return Value{}, false
	}
	return b.values[b.names[0]], true
}

// Names lists the names registered under t in insertion order.
func (r *Registry) Names(t reflect.Type) []string {
	b, ok := r.buckets[t]
	if !ok {
		return nil
	}
	names := make([]string, len(b.names))
	copy(names, b.names)
	return names
}

// Types lists the registered types in insertion order.
func (r *Registry) Types() []reflect.Type {
	types := make([]reflect.Type, len(r.types))
	copy(types, r.types)
	return types
}

// Len returns the number of registered (type, name) pairs.
func (r *Registry) Len() int {
	n := 0
	for _, b := range r.buckets {
		n += len(b.names)
	}
	return n
}

// Classify reports how a parameter of type t named name would be
// satisfied by the current contents.
func (r *Registry) Classify(t reflect.Type, name string) Definition {
	b, ok := r.buckets[t]
	if !ok || len(b.names) == 0 {
		return Undefined
	}
	if _, ok := b.values[name]; ok {
		return UniqueByTypeAndName
	}
	if len(b.names) == 1 {
		return UniqueByType
	}
	return NonUniqueByType
}

// Clear drops every entry.
func (r *Registry) Clear() {
	r.types = nil
	r.buckets = make(map[reflect.Type]*bucket)
}
