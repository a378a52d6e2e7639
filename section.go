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
	"fmt"
	"strings"
	"sync"
)

// sectionMarker is the indentation unit prepended once per open section.
const sectionMarker = "| "

// Framing emitted around a section. The braces are a visual convention so
// nested sections brace-match in the output; nothing parses them back.
const (
	sectionStartFormat = "=== start %s === {"
	sectionEndFormat   = "===   end %s === }"
)

// sectionTracker keeps the current nesting depth. Depth is a bare counter
// rather than a stack of names: only visual nesting is needed, and a counter
// keeps nested and concurrent use allocation-free.
type sectionTracker struct {
	mu    sync.Mutex
	depth int
}

// enter increments the depth and returns the new value.
func (t *sectionTracker) enter() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.depth++
	return t.depth
}

// leave decrements the depth, clamped at zero, and returns the new value.
// Over-popping is a common authoring mistake in nested helpers and is
// recovered silently rather than escalated.
func (t *sectionTracker) leave() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.depth > 0 {
		t.depth--
	}
	return t.depth
}

// current returns the depth without changing it.
func (t *sectionTracker) current() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.depth
}

// prefix returns the indentation for the current depth.
func (t *sectionTracker) prefix() string {
	t.mu.Lock()
	d := t.depth
	t.mu.Unlock()
	return strings.Repeat(sectionMarker, d)
}

// Section is a guard that binds a logger and a section name to a lexical
// scope. Obtain one from [Logger.Section], [Logger.SectionAt], or
// [Logger.MutedSection] and release it with a deferred [Section.Close];
// Close then runs on every exit path, including early return and panic
// unwinding.
//
// A normal-mode Section emits the start framing line and bumps the nesting
// depth at construction; Close emits the matching end framing with the name
// captured (already formatted) at construction. A muted Section instead
// snapshots the logger's level gating and disables every severity; Close
// restores the snapshot. Muted sections emit no framing at all; their
// purpose is output as if the enclosed log statements were never written.
//
// Close is idempotent: exactly one release action runs no matter how many
// times it is called. Sections must not be shared; hand the pointer to one
// defer and nothing else.
type Section struct {
	logger *Logger
	name   string
	level  Level
	muted  bool
	prev   LevelSet
	once   sync.Once
}

// Section opens an info-level section and returns its guard.
func (l *Logger) Section(format string, args ...any) *Section {
	return l.SectionAt(LevelInfo, format, args...)
}

// SectionAt opens a section whose framing lines are emitted at level, and
// returns its guard. The name is formatted once, here; Close reuses it.
func (l *Logger) SectionAt(level Level, format string, args ...any) *Section {
	name := fmt.Sprintf(format, args...)
	l.StartSection(level, "%s", name)
	return &Section{logger: l, name: name, level: level}
}

// MutedSection disables all severities until the returned guard is closed,
// then restores the exact gating state from before, including fine-grained
// per-level toggles, not just a threshold. No framing is emitted.
func (l *Logger) MutedSection() *Section {
	prev := l.Levels()
	l.DisableAllLevels()
	return &Section{logger: l, muted: true, prev: prev}
}

// Close releases the section: end framing and depth decrement in normal
// mode, gating restore in muted mode. Subsequent calls are no-ops.
func (s *Section) Close() {
	s.once.Do(func() {
		if s.muted {
			s.logger.SetLevels(s.prev)
			return
		}
		s.logger.EndSection(s.level, "%s", s.name)
	})
}
