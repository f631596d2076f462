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

package autowire_test

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/autowire"
	"go.uber.org/autowire/internal/wirelog"
	"go.uber.org/multierr"
)

type Customer struct {
	FirstName, LastName, Email string
}

type CustomerRepository interface {
	Save(Customer) Customer
}

type MailSender interface {
	Send(to, subject string)
}

type EmailValidator struct{}

func (EmailValidator) Validate(addr string) error {
	if !strings.Contains(addr, "@") {
		return fmt.Errorf("invalid email address: %s", addr)
	}
	return nil
}

type RegistrationService struct {
	repo      CustomerRepository
	sender    MailSender
	validator *EmailValidator
}

func NewRegistrationService(repo CustomerRepository, sender MailSender, validator *EmailValidator) *RegistrationService {
	return &RegistrationService{repo: repo, sender: sender, validator: validator}
}

func (s *RegistrationService) Register(first, last, email string) (Customer, error) {
	if err := s.validator.Validate(email); err != nil {
		return Customer{}, err
	}
	c := s.repo.Save(Customer{FirstName: first, LastName: last, Email: email})
	s.sender.Send(email, "Welcome "+first+" "+last)
	return c, nil
}

type fakeRepo struct{ saved []Customer }

func (r *fakeRepo) Save(c Customer) Customer {
	r.saved = append(r.saved, c)
	return c
}

type fakeSender struct{ subjects []string }

func (s *fakeSender) Send(_, subject string) { s.subjects = append(s.subjects, subject) }

var (
	_typeOfRepo   = reflect.TypeOf((*CustomerRepository)(nil)).Elem()
	_typeOfSender = reflect.TypeOf((*MailSender)(nil)).Elem()
)

func fakeMocks() autowire.MockFactory {
	return autowire.MockFactoryFunc(func(t reflect.Type) (interface{}, error) {
		switch t {
		case _typeOfRepo:
			return &fakeRepo{}, nil
		case _typeOfSender:
			return &fakeSender{}, nil
		}
		return nil, fmt.Errorf("cannot mock %v", t)
	})
}

var _registrationCatalog = autowire.NewCatalog().
	MustProvide(NewRegistrationService, "repo", "sender", "validator")

func TestPopulate(t *testing.T) {
	t.Run("Fixture", func(t *testing.T) {
		var fixture struct {
			Validator *EmailValidator
			Repo      CustomerRepository   `autowire:"mock,name=repo"`
			Sender    MailSender           `autowire:"mock"`
			Service   *RegistrationService `autowire:"instance"`
		}
		fixture.Validator = &EmailValidator{}

		spy := new(wirelog.Spy)
		e := autowire.New(
			autowire.WithIntrospector(_registrationCatalog),
			autowire.WithMockFactory(fakeMocks()),
			autowire.WithLogger(spy),
		)
		defer e.Clear()

		require.NoError(t, e.Populate(&fixture))
		require.NotNil(t, fixture.Service)
		require.NotNil(t, fixture.Repo)
		require.NotNil(t, fixture.Sender)

		_, err := fixture.Service.Register("Avery", "Buylot", "invalid-email-address")
		assert.EqualError(t, err, "invalid email address: invalid-email-address")

		c, err := fixture.Service.Register("Avery", "Buylot", "avery1987@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Avery", c.FirstName)
		assert.Equal(t, []Customer{c}, fixture.Repo.(*fakeRepo).saved)
		assert.Equal(t, []string{"Welcome Avery Buylot"}, fixture.Sender.(*fakeSender).subjects)

		assert.Equal(t, []string{"repo"}, e.Names(_typeOfRepo))
		assert.Equal(t, []string{
			"Registered", "Registered", "Mocked", "Registered", "Mocked",
			"Instantiated", "Registered", "PassCompleted", "Wired",
			"Injected", "Injected", "Injected",
		}, spy.EventTypes())
	})

	t.Run("NilNaturalIsAbsent", func(t *testing.T) {
		var fixture struct {
			Validator *EmailValidator
			Repo      CustomerRepository   `autowire:"mock"`
			Sender    MailSender           `autowire:"mock"`
			Service   *RegistrationService `autowire:"instance"`
		}

		e := autowire.New(
			autowire.WithIntrospector(_registrationCatalog),
			autowire.WithMockFactory(fakeMocks()),
		)
		require.NoError(t, e.Populate(&fixture))
		assert.Nil(t, fixture.Service.validator)

		v, ok := e.Lookup(reflect.TypeOf(&EmailValidator{}), "Validator")
		assert.True(t, ok)
		assert.Nil(t, v)
	})

	t.Run("IgnoredFields", func(t *testing.T) {
		var fixture struct {
			Skipped  *EmailValidator `autowire:"-"`
			private  *EmailValidator //nolint:unused
			Untagged string
		}

		e := autowire.New()
		require.NoError(t, e.Populate(&fixture))
		assert.Empty(t, e.Names(reflect.TypeOf(&EmailValidator{})))
		assert.Equal(t, []string{"Untagged"}, e.Names(_typeOfString))
	})

	t.Run("Signature", func(t *testing.T) {
		catalog := autowire.NewCatalog().
			MustProvide(func(stringSet, stringList) *multi { return &multi{"Set set, List list"} }, "set", "list").
			MustProvide(func(stringList, stringSet) *multi { return &multi{"List list, Set set"} }, "list", "set")

		var fixture struct {
			Set        stringSet
			List       stringList
			SubjectOne *multi `autowire:"instance"`
			SubjectTwo *multi `autowire:"instance"`
		}
		fixture.Set = stringSet{}
		fixture.List = stringList{}

		e := autowire.New(autowire.WithIntrospector(catalog))
		require.NoError(t, e.Populate(&fixture,
			autowire.Signature("SubjectOne", reflect.TypeOf(stringSet{}), reflect.TypeOf(stringList{})),
			autowire.Signature("SubjectTwo", reflect.TypeOf(stringList{}), reflect.TypeOf(stringSet{})),
		))
		assert.Equal(t, "Set set, List list", fixture.SubjectOne.feedback)
		assert.Equal(t, "List list, Set set", fixture.SubjectTwo.feedback)
	})

	t.Run("WiringFailure", func(t *testing.T) {
		var fixture struct {
			Service *RegistrationService `autowire:"instance"`
		}

		e := autowire.New(autowire.WithIntrospector(_registrationCatalog))
		err := e.Populate(&fixture)
		require.Error(t, err)
		assert.Equal(t,
			"could not wire 1 slots:\n"+
				"slot (*RegistrationService Service) -> new RegistrationService(CustomerRepository repo, MailSender sender, *EmailValidator validator)\n"+
				"\tno candidate for parameter (CustomerRepository repo)\n"+
				"\tno candidate for parameter (MailSender sender)\n"+
				"\tno candidate for parameter (*EmailValidator validator)",
			err.Error())
		assert.Nil(t, fixture.Service)
	})

	t.Run("MockErrorsAggregated", func(t *testing.T) {
		var fixture struct {
			Repo   CustomerRepository `autowire:"mock"`
			Sender MailSender         `autowire:"mock"`
		}

		e := autowire.New()
		err := e.Populate(&fixture)
		require.Error(t, err)
		errs := multierr.Errors(err)
		require.Len(t, errs, 2)
		for _, err := range errs {
			assert.True(t, errors.Is(err, autowire.ErrNoMockFactory))
		}
		assert.Contains(t, errs[0].Error(), "field Repo")
		assert.Contains(t, errs[1].Error(), "field Sender")
	})

	t.Run("MockFactoryFailure", func(t *testing.T) {
		var fixture struct {
			Validator *EmailValidator `autowire:"mock"`
		}

		e := autowire.New(autowire.WithMockFactory(fakeMocks()))
		err := e.Populate(&fixture)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot mock field Validator: cannot mock *autowire_test.EmailValidator")
	})

	t.Run("MockOfWrongType", func(t *testing.T) {
		var fixture struct {
			Repo CustomerRepository `autowire:"mock"`
		}

		e := autowire.New(autowire.WithMockFactory(autowire.MockFactoryFunc(
			func(reflect.Type) (interface{}, error) { return "not a repo", nil },
		)))
		err := e.Populate(&fixture)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not assignable to")
	})

	t.Run("InvalidTargets", func(t *testing.T) {
		e := autowire.New()

		var nilPtr *struct{}
		tests := []struct {
			desc    string
			give    interface{}
			wantErr string
		}{
			{"nil", nil, "cannot populate untyped nil"},
			{"struct", struct{}{}, "expected a pointer to a struct, got a struct {}"},
			{"pointer to int", new(int), "expected a pointer to a struct, got a *int"},
			{"nil pointer", nilPtr, "cannot populate nil *struct {}"},
		}
		for _, tt := range tests {
			t.Run(tt.desc, func(t *testing.T) {
				assert.EqualError(t, e.Populate(tt.give), tt.wantErr)
			})
		}
	})

	t.Run("InvalidTags", func(t *testing.T) {
		var fixture struct {
			A string `autowire:"inject"`
			B string `autowire:"mock,name="`
			C string `autowire:"mock,lazy"`
		}

		err := autowire.New().Populate(&fixture)
		require.Error(t, err)
		assert.Len(t, multierr.Errors(err), 3)
		assert.Contains(t, err.Error(), `unknown autowire tag "inject"`)
		assert.Contains(t, err.Error(), "empty name")
		assert.Contains(t, err.Error(), `unknown autowire tag option "lazy"`)
	})

	t.Run("SignatureForUnknownField", func(t *testing.T) {
		var fixture struct {
			Service *RegistrationService `autowire:"instance"`
		}

		err := autowire.New().Populate(&fixture, autowire.Signature("Missing"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `signature given for "Missing"`)
	})
}
