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

// LevelSet is a fixed-size set of message severities, one bit per [Level].
// The zero value is the empty set; use [AllLevels] or [LevelSet.EnableAll]
// for the everything-enabled state a fresh [Logger] starts in.
//
// Unlike a single-threshold filter, a LevelSet can express arbitrary
// combinations such as "warn and trace but not info". The threshold style is
// still available through [LevelSet.SetThreshold].
//
// LevelSet is a plain value; it carries no locking. [Logger] guards its own
// set with the logger mutex.
type LevelSet uint8

// AllLevels is the set with every message severity enabled.
const AllLevels LevelSet = 1<<numLevels - 1

// Enable adds level to the set. Enabling an already-enabled or non-message
// level is a no-op.
func (s *LevelSet) Enable(level Level) {
	if level.valid() {
		*s |= 1 << level
	}
}

// Disable removes level from the set. Disabling an absent or non-message
// level is a no-op.
func (s *LevelSet) Disable(level Level) {
	if level.valid() {
		*s &^= 1 << level
	}
}

// EnableAll enables every message severity.
func (s *LevelSet) EnableAll() { *s = AllLevels }

// DisableAll disables every message severity. This is how muting is
// implemented; call sites stay in place and simply stop producing output.
func (s *LevelSet) DisableAll() { *s = 0 }

// Enabled reports whether level is in the set. LevelOff and out-of-range
// values are never enabled.
func (s LevelSet) Enabled(level Level) bool {
	return level.valid() && s&(1<<level) != 0
}

// SetThreshold replaces the set with "level and above": every severity
// strictly below level is disabled, level and everything above it enabled.
// LevelOff disables all severities.
func (s *LevelSet) SetThreshold(level Level) {
	switch {
	case level <= LevelTrace:
		*s = AllLevels
	case level >= LevelOff:
		*s = 0
	default:
		*s = AllLevels &^ (1<<level - 1)
	}
}

// lowest returns the lowest enabled severity, or LevelOff when the set is
// empty. Used to project the set onto sinks that carry a scalar floor.
func (s LevelSet) lowest() Level {
	for lv := LevelTrace; lv < LevelOff; lv++ {
		if s.Enabled(lv) {
			return lv
		}
	}
	return LevelOff
}
