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
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/autowire/internal/registry"
)

var (
	_typeOfString = reflect.TypeOf("")
	_typeOfInt    = reflect.TypeOf(0)
)

func present(v interface{}) registry.Value {
	return registry.Present(reflect.ValueOf(v))
}

func TestResolveParam(t *testing.T) {
	param := Param{Type: _typeOfString, Name: "value"}

	t.Run("Undefined", func(t *testing.T) {
		r := registry.New()
		r.Register(_typeOfInt, "value", present(1))

		_, err := resolveParam(r, param)
		require.NotNil(t, err)
		assert.True(t, errors.Is(err, ErrParameterUndefined))
		assert.Equal(t, "no candidate for parameter (string value)", err.Error())
	})

	t.Run("UniqueByTypeAndName", func(t *testing.T) {
		r := registry.New()
		r.Register(_typeOfString, "a", present("a"))
		r.Register(_typeOfString, "value", present("v"))

		v, err := resolveParam(r, param)
		require.Nil(t, err)
		assert.Equal(t, "v", v.String())
	})

	t.Run("UniqueByTypeIgnoresName", func(t *testing.T) {
		r := registry.New()
		r.Register(_typeOfString, "other", present("o"))

		v, err := resolveParam(r, param)
		require.Nil(t, err)
		assert.Equal(t, "o", v.String())
	})

	t.Run("NonUniqueByType", func(t *testing.T) {
		r := registry.New()
		r.Register(_typeOfString, "b", present("b"))
		r.Register(_typeOfString, "a", present("a"))

		_, err := resolveParam(r, param)
		require.NotNil(t, err)
		assert.True(t, errors.Is(err, ErrParameterNonUnique))
		assert.Equal(t, []string{"b", "a"}, err.Candidates)
		assert.Equal(t,
			"no unique candidate for parameter (string value)\n\t\tavailable candidates are [b, a]",
			err.Error())
	})

	t.Run("AbsentResolves", func(t *testing.T) {
		p := Param{Type: reflect.TypeOf(&widget{}), Name: "w"}
		r := registry.New()
		r.Register(p.Type, "w", registry.Absent())

		v, err := resolveParam(r, p)
		require.Nil(t, err)
		require.True(t, v.IsValid())
		assert.True(t, v.IsNil())
	})
}

func TestResolveParams(t *testing.T) {
	ctor, err := NewConstructor(
		func(string, int, *widget) *pair { return nil },
		"label", "count", "widget",
	)
	require.NoError(t, err)

	t.Run("AllResolved", func(t *testing.T) {
		r := registry.New()
		r.Register(reflect.TypeOf(&widget{}), "w", present(&widget{label: "w"}))
		r.Register(_typeOfInt, "count", present(3))
		r.Register(_typeOfString, "label", present("l"))

		args, errs := resolveParams(r, ctor)
		require.Empty(t, errs)
		require.Len(t, args, 3)
		assert.Equal(t, "l", args[0].Interface())
		assert.Equal(t, 3, args[1].Interface())
		assert.Equal(t, &widget{label: "w"}, args[2].Interface())
	})

	t.Run("OnlyUnresolvedReported", func(t *testing.T) {
		r := registry.New()
		r.Register(_typeOfInt, "count", present(3))

		args, errs := resolveParams(r, ctor)
		assert.Nil(t, args)
		require.Len(t, errs, 2)
		assert.Equal(t, "label", errs[0].Param.Name)
		assert.Equal(t, "widget", errs[1].Param.Name)
	})
}
