// Copyright 2026 The sectlog Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pattern

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var renderTime = time.Date(2026, time.August, 25, 1, 22, 36, 53622000, time.UTC)

func mustCompile(t *testing.T, format string) *Template {
	t.Helper()
	tmpl, err := Compile(format)
	if err != nil {
		t.Fatalf("Compile(%q) failed: %v", format, err)
	}
	return tmpl
}

func TestCompile_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		format string
	}{
		{"UnknownVerb", "[%q] %v"},
		{"TrailingPercent", "%v %"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Compile(tc.format); err == nil {
				t.Errorf("Compile(%q) succeeded, want error", tc.format)
			}
		})
	}

	if _, err := Compile(""); !errors.Is(err, ErrEmpty) {
		t.Errorf(`Compile("") error = %v, want ErrEmpty`, err)
	}
}

func TestRender(t *testing.T) {
	rec := Record{
		Time:    renderTime,
		Label:   "warn",
		Name:    "loader",
		Payload: "    | low on memory",
	}

	testCases := []struct {
		name   string
		format string
		want   string
	}{
		{
			"Default",
			"[%H:%M:%S.%f] [%^%l%$] %v",
			"[01:22:36.053622] [warn]     | low on memory",
		},
		{
			"Millis",
			"%H:%M:%S.%e %v",
			"01:22:36.053     | low on memory",
		},
		{
			"NameAndLiteralPercent",
			"%n 100%% %l",
			"loader 100% warn",
		},
		{
			"PayloadOnly",
			"%v",
			"    | low on memory",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := mustCompile(t, tc.format).Render(rec, nil)
			if got != tc.want {
				t.Errorf("Render(%q) = %q, want %q", tc.format, got, tc.want)
			}
		})
	}
}

// TestRender_ColorRegion verifies that the %^…%$ range goes through the
// colorizer exactly once and that everything outside it stays untouched.
func TestRender_ColorRegion(t *testing.T) {
	tmpl := mustCompile(t, "[%^%l%$] %v")
	rec := Record{Time: renderTime, Label: "info", Payload: "hello"}

	calls := 0
	got := tmpl.Render(rec, func(s string) string {
		calls++
		return "<" + s + ">"
	})
	if want := "[<info>] hello"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
	if calls != 1 {
		t.Errorf("colorizer called %d times, want 1", calls)
	}
}

func TestRender_UnterminatedColorRegion(t *testing.T) {
	tmpl := mustCompile(t, "%^%l %v")
	rec := Record{Time: renderTime, Label: "info", Payload: "x"}

	got := tmpl.Render(rec, strings.ToUpper)
	if want := "INFO X"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	const format = "[%H:%M:%S] %v"
	if got := mustCompile(t, format).Format(); got != format {
		t.Errorf("Format() = %q, want %q", got, format)
	}
}
