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

// Package automock backs the mock fields of an autowire fixture with
// gomock mocks.
//
// Register the mockgen constructor of every mock a fixture may need, then
// hand the Factory to the Engine:
//
//	ctrl := gomock.NewController(t)
//	mocks := automock.New(ctrl).
//		MustProvide(NewMockCustomerRepository).
//		MustProvide(NewMockMailSender)
//	engine := autowire.New(autowire.WithMockFactory(mocks))
//
// The Factory may also be built by the Engine, from a controller supplied
// with autowire.Provide:
//
//	engine := autowire.New(
//		autowire.Provide(func() *gomock.Controller { return ctrl }),
//		autowire.ProvideMockFactory(func(ctrl *gomock.Controller) *automock.Factory {
//			return automock.New(ctrl).MustProvide(NewMockCustomerRepository)
//		}),
//	)
//
// A mock field typed as an interface receives a new mock from the only
// registered constructor whose mock implements that interface. A field
// typed as the mock itself receives a mock from that exact constructor.
// Expectations are set by asserting the field back to the mock type:
//
//	fixture.Repo.(*MockCustomerRepository).EXPECT().Save(gomock.Any())
package automock
