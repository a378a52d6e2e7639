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

import "testing"

func TestLevelSet_EnableDisable(t *testing.T) {
	var s LevelSet

	if s.Enabled(LevelInfo) {
		t.Fatal("zero LevelSet should have nothing enabled")
	}

	s.Enable(LevelInfo)
	if !s.Enabled(LevelInfo) {
		t.Error("LevelInfo should be enabled after Enable")
	}
	if s.Enabled(LevelDebug) {
		t.Error("enabling LevelInfo must not enable LevelDebug")
	}

	// Idempotence.
	s.Enable(LevelInfo)
	if !s.Enabled(LevelInfo) {
		t.Error("double Enable must leave the level enabled")
	}

	s.Disable(LevelInfo)
	if s.Enabled(LevelInfo) {
		t.Error("LevelInfo should be disabled after Disable")
	}
	s.Disable(LevelInfo) // idempotent, no effect
	if s != 0 {
		t.Errorf("set = %b, want empty", s)
	}
}

func TestLevelSet_NonMessageLevelsIgnored(t *testing.T) {
	var s LevelSet
	s.Enable(LevelOff)
	s.Enable(Level(-1))
	if s != 0 {
		t.Errorf("enabling non-message levels changed the set: %b", s)
	}
	if s.Enabled(LevelOff) {
		t.Error("LevelOff must never report enabled")
	}
}

func TestLevelSet_Bulk(t *testing.T) {
	var s LevelSet
	s.EnableAll()
	for lv := LevelTrace; lv < LevelOff; lv++ {
		if !s.Enabled(lv) {
			t.Errorf("EnableAll: %v not enabled", lv)
		}
	}
	s.DisableAll()
	for lv := LevelTrace; lv < LevelOff; lv++ {
		if s.Enabled(lv) {
			t.Errorf("DisableAll: %v still enabled", lv)
		}
	}
}

func TestLevelSet_SetThreshold(t *testing.T) {
	testCases := []struct {
		name      string
		threshold Level
		enabled   []Level
		disabled  []Level
	}{
		{"Trace", LevelTrace, []Level{LevelTrace, LevelCritical}, nil},
		{"Warn", LevelWarn, []Level{LevelWarn, LevelError, LevelCritical}, []Level{LevelTrace, LevelDebug, LevelInfo}},
		{"Critical", LevelCritical, []Level{LevelCritical}, []Level{LevelTrace, LevelError}},
		{"Off", LevelOff, nil, []Level{LevelTrace, LevelCritical}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := AllLevels
			s.SetThreshold(tc.threshold)
			for _, lv := range tc.enabled {
				if !s.Enabled(lv) {
					t.Errorf("threshold %v: %v should be enabled", tc.threshold, lv)
				}
			}
			for _, lv := range tc.disabled {
				if s.Enabled(lv) {
					t.Errorf("threshold %v: %v should be disabled", tc.threshold, lv)
				}
			}
		})
	}
}

func TestLevelSet_Lowest(t *testing.T) {
	var s LevelSet
	if got := s.lowest(); got != LevelOff {
		t.Errorf("empty set lowest() = %v, want LevelOff", got)
	}
	s.Enable(LevelError)
	s.Enable(LevelDebug)
	if got := s.lowest(); got != LevelDebug {
		t.Errorf("lowest() = %v, want LevelDebug", got)
	}
}
