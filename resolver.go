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
	"reflect"

	"go.uber.org/autowire/internal/registry"
)

// resolveParam satisfies a single constructor parameter from the
// registry. An exact (type, name) match wins; failing that, a type with a
// single registered value provides it whatever its name.
func resolveParam(r *registry.Registry, p Param) (reflect.Value, *ParameterError) {
	switch r.Classify(p.Type, p.Name) {
	case registry.UniqueByTypeAndName:
		v, _ := r.Lookup(p.Type, p.Name)
		return v.Reflect(p.Type), nil
	case registry.UniqueByType:
		v, _ := r.LookupUnique(p.Type)
		return v.Reflect(p.Type), nil
	case registry.NonUniqueByType:
		return reflect.Value{}, &ParameterError{
			Param:      p,
			Candidates: r.Names(p.Type),
			err:        ErrParameterNonUnique,
		}
	default:
		return reflect.Value{}, &ParameterError{Param: p, err: ErrParameterUndefined}
	}
}

// resolveParams resolves every parameter of c. It returns the arguments in
// declaration order when all of them resolve, and only the unresolved
// parameters' errors otherwise.
func resolveParams(r *registry.Registry, c *Constructor) ([]reflect.Value, []*ParameterError) {
	args := make([]reflect.Value, len(c.Params))
	var errs []*ParameterError
	for i, p := range c.Params {
		v, err := resolveParam(r, p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		args[i] = v
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return args, nil
}
