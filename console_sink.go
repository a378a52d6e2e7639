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
	"io"
	"os"

	"github.com/fatih/color"
)

// levelColors maps each severity to the color applied to the %^…%$ range of
// the pattern, following the usual terminal logger convention.
var levelColors = [numLevels]*color.Color{
	LevelTrace:    color.New(color.FgHiBlack),
	LevelDebug:    color.New(color.FgCyan),
	LevelInfo:     color.New(color.FgGreen),
	LevelWarn:     color.New(color.FgYellow),
	LevelError:    color.New(color.FgRed),
	LevelCritical: color.New(color.FgHiWhite, color.BgRed),
}

// ConsoleSink writes rendered lines to a terminal-like stream, optionally
// colorizing the pattern's %^…%$ range by severity.
type ConsoleSink struct {
	streamSink
}

// NewConsoleSink returns a sink on standard output. With colored set, the
// %^…%$ range of the pattern is colorized per severity; ANSI handling and
// terminal detection follow github.com/fatih/color conventions (colors are
// stripped automatically when stdout is not a terminal).
func NewConsoleSink(colored bool) *ConsoleSink {
	var w io.Writer = os.Stdout
	if colored {
		w = color.Output
	}
	return NewConsoleSinkTo(w, colored)
}

// NewConsoleSinkTo returns a console sink on an arbitrary writer. It is
// mainly useful for tests and for redirecting console-style output to
// stderr or a pipe.
func NewConsoleSinkTo(w io.Writer, colored bool) *ConsoleSink {
	s := &ConsoleSink{streamSink: newStreamSink(w)}
	if colored {
		s.streamSink.colorize = colorizeLabel
	}
	return s
}

func colorizeLabel(level Level, text string) string {
	if !level.valid() {
		return text
	}
	return levelColors[level].Sprint(text)
}
