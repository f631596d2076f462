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

package wireevent

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give Event
		want string
	}{
		{
			name: "Registered",
			give: &Registered{TypeName: "string", Name: "value"},
			want: "[autowire] REGISTER	string value\n",
		},
		{
			name: "RegisteredAbsent",
			give: &Registered{TypeName: "*Repo", Name: "repo", Absent: true},
			want: "[autowire] REGISTER	*Repo repo = NULL\n",
		},
		{
			name: "Mocked",
			give: &Mocked{TypeName: "Clock", Name: "clock"},
			want: "[autowire] MOCK		Clock clock\n",
		},
		{
			name: "MockedError",
			give: &Mocked{TypeName: "Clock", Name: "clock", Err: errors.New("great sadness")},
			want: "[autowire] ERROR		Failed to mock Clock clock: great sadness\n",
		},
		{
			name: "Instantiated",
			give: &Instantiated{TypeName: "*Service", Name: "service", Constructor: "Service(*Repo repo)", Pass: 2},
			want: "[autowire] NEW		*Service service <= new Service(*Repo repo) (pass 2)\n",
		},
		{
			name: "InstantiatedError",
			give: &Instantiated{TypeName: "*Service", Name: "service", Constructor: "Service()", Err: errors.New("boom")},
			want: "[autowire] ERROR		new Service() failed for *Service service: boom\n",
		},
		{
			name: "Deferred",
			give: &Deferred{TypeName: "*Service", Name: "service", Pass: 1},
			want: "[autowire] DEFER		*Service service (pass 1)\n",
		},
		{
			name: "PassCompleted",
			give: &PassCompleted{Pass: 1, Created: 2, Remaining: 0},
			want: "[autowire] PASS 1		created 2, remaining 0\n",
		},
		{
			name: "Wired",
			give: &Wired{Slots: 2, Passes: 2},
			want: "[autowire] WIRED		2 slots in 2 passes\n",
		},
		{
			name: "WiredError",
			give: &Wired{Slots: 2, Passes: 1, Err: errors.New("nope")},
			want: "[autowire] ERROR		Failed to wire 2 slots after 1 passes:\nnope\n",
		},
		{
			name: "Injected",
			give: &Injected{Field: "Service", TypeName: "*Service", Name: "service"},
			want: "[autowire] INJECT		Service <= *Service service\n",
		},
		{
			name: "Cleared",
			give: &Cleared{Types: 2, Values: 3},
			want: "[autowire] CLEARED\t\t3 values of 2 types\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			(&ConsoleLogger{W: &buf}).LogEvent(tt.give)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestNopLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		NopLogger.LogEvent(&Cleared{})
	})
}
