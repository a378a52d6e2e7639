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

package sectlog

import (
	"testing"
)

// TestLevel_String verifies the display label for every level, including
// out-of-range values.
func TestLevel_String(t *testing.T) {
	testCases := []struct {
		level Level
		want  string
		name  string
	}{
		{LevelTrace, "trace", "Trace"},
		{LevelDebug, "debug", "Debug"},
		{LevelInfo, "info", "Info"},
		{LevelWarn, "warn", "Warn"},
		{LevelError, "error", "Error"},
		{LevelCritical, "critical", "Critical"},
		{LevelOff, "off", "Off"},
		{Level(-1), "unknown(-1)", "BelowTrace"},
		{LevelOff + 1, "unknown(7)", "AboveOff"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.level.String(); got != tc.want {
				t.Errorf("Level(%d).String() = %q, want %q", tc.level, got, tc.want)
			}
		})
	}
}

// TestParseLevel verifies round-tripping of labels plus the accepted
// aliases and case folding.
func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"debug", LevelDebug, false},
		{"info", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"err", LevelError, false},
		{"critical", LevelCritical, false},
		{"off", LevelOff, false},
		{"  INFO  ", LevelInfo, false},
		{"Critical", LevelCritical, false},
		{"", LevelOff, true},
		{"verbose", LevelOff, true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLevel(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

// TestLevelPads_AlignToOneColumn verifies the core alignment property: the
// padding plus label of every message severity occupies the same width, so
// "warn" and "critical" render flush to the same column.
func TestLevelPads_AlignToOneColumn(t *testing.T) {
	want := -1
	for lv := LevelTrace; lv < LevelOff; lv++ {
		width := len(lv.pad()) + len(lv.String())
		if want == -1 {
			want = width
			continue
		}
		if width != want {
			t.Errorf("level %v: pad+label width = %d, want %d", lv, width, want)
		}
	}
	if want != len("critical") {
		t.Errorf("label column width = %d, want %d (widest label)", want, len("critical"))
	}
}

func TestLevelPad_NonMessageLevels(t *testing.T) {
	if got := LevelOff.pad(); got != "" {
		t.Errorf("LevelOff.pad() = %q, want empty", got)
	}
	if got := Level(-3).pad(); got != "" {
		t.Errorf("Level(-3).pad() = %q, want empty", got)
	}
}
