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

import "reflect"

// selectConstructor picks exactly one public constructor for the slot's
// type:
//
//   - none available fails with ErrNoPublicConstructor;
//   - a single one is selected whatever the slot's signature;
//   - otherwise the one whose parameter types equal the signature is
//     selected, and ErrNoMatchingConstructor lists all of them if none do.
func selectConstructor(in Introspector, s Slot) (*Constructor, *SelectionError) {
	ctors := in.Constructors(s.Type)
	switch len(ctors) {
	case 0:
		return nil, &SelectionError{Type: s.Type, err: ErrNoPublicConstructor}
	case 1:
		return ctors[0], nil
	}

	if s.Signature != nil {
		for _, c := range ctors {
			if sameTypes(c.ParamTypes(), s.Signature) {
				return c, nil
			}
		}
	}
	return nil, &SelectionError{Type: s.Type, Candidates: ctors, err: ErrNoMatchingConstructor}
}

func sameTypes(a, b []reflect.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
