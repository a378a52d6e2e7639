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
	"sync"
	"time"

	"github.com/sectlog/sectlog/internal/pattern"
)

// Sink is a fan-out destination for rendered log lines. A [Logger] calls
// Write once per payload line after its own level gate has passed; the sink
// applies its formatting template (timestamp, severity label) around the
// payload and records the result.
//
// A sink may be attached to several loggers at once, for example one file
// shared by two subsystems. The sink, not the Logger, is responsible for
// serializing concurrent writes into a coherent stream; every sink in this
// package does so with an internal mutex.
//
// Whenever a sink is attached and whenever [Logger.Configure] runs, the
// Logger reapplies its current template and level floor to every attached
// sink, so a late-attached sink is never left in a stale state.
type Sink interface {
	// Write renders and records one payload line at the given severity.
	// A slow or blocked sink blocks the calling goroutine; there is no
	// internal buffering or timeout.
	Write(level Level, payload string) error

	// ApplyTemplate replaces the sink's formatting template. The format is
	// validated; an invalid format leaves the previous template in place.
	ApplyTemplate(format string) error

	// SetMinLevel sets the sink's own severity floor. Records below it are
	// dropped by the sink even when the attached Logger admitted them.
	SetMinLevel(level Level)
}

// loggerNamer is implemented by the built-in sinks so an attaching Logger
// can supply its name for the %n pattern verb. External Sink implementations
// that don't implement it simply render %n empty.
type loggerNamer interface {
	setLoggerName(name string)
}

// streamSink is the shared core of the built-in sinks: a template, a level
// floor, and a destination writer, all guarded by one mutex so concurrent
// writers from several loggers interleave per line rather than per byte.
type streamSink struct {
	mu       sync.Mutex
	w        io.Writer
	tmpl     *pattern.Template
	min      Level
	name     string
	colorize func(level Level, s string) string // nil for plain sinks
}

func newStreamSink(w io.Writer) streamSink {
	tmpl, err := pattern.Compile(DefaultPattern)
	if err != nil {
		// DefaultPattern is a compile-time constant known to be valid.
		panic(err)
	}
	return streamSink{w: w, tmpl: tmpl, min: LevelTrace}
}

func (s *streamSink) Write(level Level, payload string) error {
	if !level.valid() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if level < s.min {
		return nil
	}

	var colorize func(string) string
	if s.colorize != nil {
		lv := level
		colorize = func(text string) string { return s.colorize(lv, text) }
	}
	line := s.tmpl.Render(pattern.Record{
		Time:    time.Now(),
		Label:   level.String(),
		Name:    s.name,
		Payload: payload,
	}, colorize)

	_, err := io.WriteString(s.w, line+"\n")
	return err
}

func (s *streamSink) ApplyTemplate(format string) error {
	tmpl, err := pattern.Compile(format)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.tmpl = tmpl
	s.mu.Unlock()
	return nil
}

func (s *streamSink) SetMinLevel(level Level) {
	s.mu.Lock()
	s.min = level
	s.mu.Unlock()
}

func (s *streamSink) setLoggerName(name string) {
	s.mu.Lock()
	s.name = name
	s.mu.Unlock()
}
