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

	"github.com/muir/reflectutils"
	"go.uber.org/autowire/internal/registry"
	"go.uber.org/autowire/wireevent"
	"go.uber.org/multierr"
)

const _tagName = "autowire"

type fieldKind int

const (
	naturalField fieldKind = iota
	mockField
	instanceField
)

type fixtureField struct {
	Field string // Go field name
	Name  string // registration name
	Type  reflect.Type
	Index []int
	Kind  fieldKind
}

// PopulateOption customizes Populate.
type PopulateOption interface {
	applyPopulate(*populateConfig)
}

type populateConfig struct {
	signatures map[string][]reflect.Type
}

// Signature selects the constructor used for the instance field named
// field by its ordered parameter types. It is only needed when the field's
// type has several constructors.
//
//	engine.Populate(&fixture, autowire.Signature("Subject", setType, listType))
func Signature(field string, types ...reflect.Type) PopulateOption {
	sig := make([]reflect.Type, len(types))
	copy(sig, types)
	return signatureOption{field: field, types: sig}
}

type signatureOption struct {
	field string
	types []reflect.Type
}

func (o signatureOption) applyPopulate(c *populateConfig) {
	c.signatures[o.field] = o.types
}

// Populate wires the fixture pointed to by target, which must be a pointer
// to a struct. Exported fields are handled according to their autowire
// tag:
//
//	type fixture struct {
//		Timeout time.Duration                 // registered as is
//		Repo    CustomerRepository `autowire:"mock"`
//		Service *RegistrationService `autowire:"instance"`
//		Skipped *Thing             `autowire:"-"`
//	}
//
// Untagged fields are registered under their type and field name, nil
// values being registered as absent. Mock fields receive a value from the
// Engine's MockFactory. Instance fields become slots wired by Wire. Once
// wiring succeeds, mock and instance fields are set from the registry.
//
// The name a field registers under defaults to the field name and may be
// set with the name option: `autowire:"mock,name=repo"`.
//
// Populate does not clear the registry; call Clear when the test ends.
func (e *Engine) Populate(target interface{}, opts ...PopulateOption) error {
	if e.err != nil {
		return e.err
	}

	if target == nil {
		return fmt.Errorf("cannot populate untyped nil")
	}
	v := reflect.ValueOf(target)
	if t := v.Type(); t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("expected a pointer to a struct, got a %v", t)
	}
	if v.IsNil() {
		return fmt.Errorf("cannot populate nil %v", v.Type())
	}
	v = v.Elem()

	cfg := populateConfig{signatures: make(map[string][]reflect.Type)}
	for _, opt := range opts {
		opt.applyPopulate(&cfg)
	}

	fields, err := scanFixture(v.Type())
	if err != nil {
		return err
	}
	if err := checkSignatures(fields, cfg.signatures); err != nil {
		return err
	}

	var slots []Slot
	for _, f := range fields {
		if f.Kind == naturalField {
			e.register(f.Type, f.Name, registry.Of(v.FieldByIndex(f.Index)))
		}
	}

	for _, f := range fields {
		switch f.Kind {
		case mockField:
			err = multierr.Append(err, e.mock(f))
		case instanceField:
			slots = append(slots, Slot{Type: f.Type, Name: f.Name, Signature: cfg.signatures[f.Field]})
		}
	}
	if err != nil {
		return err
	}

	if err := e.Wire(slots...); err != nil {
		return err
	}

	for _, f := range fields {
		if f.Kind == naturalField {
			continue
		}
		val, ok := e.registry.Lookup(f.Type, f.Name)
		if !ok {
			err = multierr.Append(err, fmt.Errorf("cannot inject field %v: %w", f.Field, notRegisteredError(f.Type, f.Name)))
			continue
		}
		v.FieldByIndex(f.Index).Set(val.Reflect(f.Type))
		e.log.LogEvent(&wireevent.Injected{Field: f.Field, TypeName: f.Type.String(), Name: f.Name})
	}
	return err
}

func (e *Engine) mock(f fixtureField) error {
	if e.mocks == nil {
		return fmt.Errorf("cannot mock field %v: %w", f.Field, ErrNoMockFactory)
	}

	m, err := e.mocks.Mock(f.Type)
	if err == nil {
		err = e.Register(f.Type, f.Name, m)
	}
	e.log.LogEvent(&wireevent.Mocked{TypeName: f.Type.String(), Name: f.Name, Err: err})
	if err != nil {
		return fmt.Errorf("cannot mock field %v: %w", f.Field, err)
	}
	return nil
}

func scanFixture(t reflect.Type) ([]fixtureField, error) {
	var (
		fields []fixtureField
		err    error
	)
	reflectutils.WalkStructElements(t, func(sf reflect.StructField) bool {
		// Skip private fields.
		if sf.PkgPath != "" {
			return false
		}

		f := fixtureField{Field: sf.Name, Name: sf.Name, Type: sf.Type, Index: sf.Index}
		tag, ok := sf.Tag.Lookup(_tagName)
		if !ok {
			fields = append(fields, f)
			return false
		}

		parts := strings.Split(tag, ",")
		switch parts[0] {
		case "-":
			return false
		case "":
			f.Kind = naturalField
		case "mock":
			f.Kind = mockField
		case "instance":
			f.Kind = instanceField
		default:
			err = multierr.Append(err, fmt.Errorf("field %v: unknown autowire tag %q", sf.Name, parts[0]))
			return false
		}

		for _, opt := range parts[1:] {
			key, value, _ := strings.Cut(opt, "=")
			switch key {
			case "name":
				if value == "" {
					err = multierr.Append(err, fmt.Errorf("field %v: empty name in autowire tag", sf.Name))
					return false
				}
				f.Name = value
			default:
				err = multierr.Append(err, fmt.Errorf("field %v: unknown autowire tag option %q", sf.Name, opt))
				return false
			}
		}

		fields = append(fields, f)
		return false
	})
	return fields, err
}

func checkSignatures(fields []fixtureField, signatures map[string][]reflect.Type) error {
	var err error
	for name := range signatures {
		found := false
		for _, f := range fields {
			if f.Field == name && f.Kind == instanceField {
				found = true
				break
			}
		}
		if !found {
			err = multierr.Append(err, fmt.Errorf("signature given for %q, which is not an instance field", name))
		}
	}
	return err
}
