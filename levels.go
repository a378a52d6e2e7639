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
)

// Level represents the severity of a log record. Levels are ordered from
// LevelTrace (lowest) to LevelCritical (highest); LevelOff is a pseudo-level
// used only as a gate value (for example by [LevelSet.SetThreshold]) and is
// never a valid message severity.
type Level int

const (
	// LevelTrace is the most verbose severity, for step-by-step diagnostics.
	LevelTrace Level = iota
	// LevelDebug is for information useful while developing or debugging.
	LevelDebug
	// LevelInfo is for routine operational messages.
	LevelInfo
	// LevelWarn is for recoverable anomalies worth surfacing.
	LevelWarn
	// LevelError is for failures of an operation.
	LevelError
	// LevelCritical is the highest message severity.
	LevelCritical
	// LevelOff disables everything when used as a threshold. It is a gate
	// value, not a message severity; logging at LevelOff is a no-op.
	LevelOff
)

// numLevels is the count of message severities (LevelOff excluded).
const numLevels = int(LevelOff)

// levelLabels holds the display label for each level, indexed by Level.
var levelLabels = [numLevels + 1]string{
	"trace",
	"debug",
	"info",
	"warn",
	"error",
	"critical",
	"off",
}

// levelPads holds, per message severity, the run of spaces that left-aligns
// every bracketed label to the same column (the width of the longest label).
// Computed once at package initialization rather than lazily on first use so
// there is no first-call ordering dependency.
var levelPads = computeLevelPads()

func computeLevelPads() [numLevels]string {
	widest := 0
	for _, label := range levelLabels[:numLevels] {
		if len(label) > widest {
			widest = len(label)
		}
	}
	var pads [numLevels]string
	for i, label := range levelLabels[:numLevels] {
		pads[i] = strings.Repeat(" ", widest-len(label))
	}
	return pads
}

// String returns the lowercase display label of the level ("trace" through
// "critical", or "off"). Out-of-range values render as "unknown(N)".
func (l Level) String() string {
	if l < LevelTrace || l > LevelOff {
		return fmt.Sprintf("unknown(%d)", int(l))
	}
	return levelLabels[l]
}

// valid reports whether l is a usable message severity.
func (l Level) valid() bool {
	return l >= LevelTrace && l < LevelOff
}

// pad returns the alignment padding for the level's label, or "" for
// non-message levels.
func (l Level) pad() string {
	if !l.valid() {
		return ""
	}
	return levelPads[l]
}

// ParseLevel converts a level name (case-insensitive) into a Level. It
// accepts the labels produced by [Level.String] plus the common aliases
// "warning" and "err". It returns an error for anything else.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "critical":
		return LevelCritical, nil
	case "off":
		return LevelOff, nil
	}
	return LevelOff, fmt.Errorf("sectlog: unknown level %q", s)
}
