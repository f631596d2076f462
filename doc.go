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

// Package autowire builds test fixtures without hand-written setup code.
//
// A test declares the values it needs as slots: a type and a name. The
// Engine fills each slot by calling a public constructor of its type,
// taking the constructor's arguments from a registry of values already
// available to the test (plain values, mocks, and the values of slots
// built earlier).
//
// Constructors
//
// Go keeps no constructors or parameter names at runtime, so constructors
// are listed explicitly in a Catalog, along with the names of their
// parameters:
//
//	var catalog = autowire.NewCatalog().
//		MustProvide(NewRegistrationService, "repo", "validator").
//		MustProvide(NewMailComposer)
//
// A type with several constructors needs a signature, the ordered list of
// parameter types, to tell them apart. A type with one constructor always
// uses it.
//
// Resolution
//
// A constructor parameter is resolved against the registry by type, then
// name. The value registered under the parameter's exact type and name
// wins. Failing that, if its type has exactly one registered value, that
// value is used whatever its name. Several values of the type, none with
// the parameter's name, is an error listing the candidates, and so is a
// type with nothing registered. A value registered as nil is a valid
// candidate: the parameter receives the zero value of its type.
//
// Wiring
//
// Wire builds slots in any order. Slots that cannot be built yet are
// retried once other slots have been registered, until a full pass builds
// nothing. Every slot still unbuilt is then reported in one error:
//
//	could not wire 2 slots:
//	slot (*Q q) -> new Q(*P p)
//		no candidate for parameter (*P p)
//	slot (*P p) -> new P(*Q q)
//		no candidate for parameter (*Q q)
//
// Fixtures
//
// Populate scans a fixture struct and runs the whole sequence: plain
// fields are registered, fields tagged `autowire:"mock"` are mocked,
// fields tagged `autowire:"instance"` are wired, and the built values are
// set back on the struct. The autowiretest package wraps this for tests.
//
// Each test owns its Engine. Engines share no state, and Clear empties an
// Engine's registry at the end of a test.
package autowire
