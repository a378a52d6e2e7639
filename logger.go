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
	"io"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sectlog/sectlog/internal/pattern"
)

// Logger is the façade over the logging core: a [LevelSet] gate, an ordered
// list of fan-out [Sink] targets, a section-depth tracker, and a formatting
// template applied uniformly to every attached sink.
//
// A Logger is safe for concurrent use. Level and sink mutation, logging, and
// section open/close may be called from independent goroutines; the section
// depth can never be observed negative. Calls are synchronous: a slow sink
// blocks the calling goroutine.
//
// Message formatting is lazy: when the level gate rejects a call, the
// fmt arguments are never formatted and no sink is invoked, so a disabled
// Tracef with expensive arguments costs a mutex acquisition and a bit test.
type Logger struct {
	name string // unique within the registry, fixed at construction

	mu     sync.Mutex
	levels LevelSet
	format string
	sinks  []Sink

	sections  sectionTracker
	closeOnce sync.Once
}

// New creates a Logger. Configuration resolves in three tiers, each
// overriding the one before: built-in defaults, then the SECTLOG_LEVEL and
// SECTLOG_PATTERN environment variables, then the given options.
//
// The logger registers itself under its (possibly suffixed) name in the
// package default registry, or in the registry given via [WithRegistry].
// When no sink option is present a color console sink on stdout is
// attached, so a bare New() is immediately usable.
//
// New fails fast on invalid configuration: a malformed pattern, an empty
// name, or a sink option whose construction failed (for example an
// unopenable file path).
func New(opts ...Option) (*Logger, error) {
	env := loadEnvConfig()

	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.sinkErr != nil {
		return nil, o.sinkErr
	}

	name := defaultLoggerName
	if o.name != nil {
		name = *o.name
	}
	format := DefaultPattern
	if env.pattern != "" {
		format = env.pattern
	}
	if o.pattern != nil {
		format = *o.pattern
	}

	levels := AllLevels
	if env.level != nil {
		levels.SetThreshold(*env.level)
	}
	if o.level != nil {
		levels.SetThreshold(*o.level)
	}
	if o.levels != nil {
		levels = *o.levels
	}

	if err := validation.Validate(name, validation.Required); err != nil {
		return nil, fmt.Errorf("sectlog: logger name: %w", err)
	}
	if _, err := pattern.Compile(format); err != nil {
		return nil, fmt.Errorf("sectlog: pattern: %w", err)
	}

	registry := o.registry
	if registry == nil {
		registry = defaultRegistry
	}

	l := &Logger{
		levels: levels,
		format: format,
	}
	l.name = registry.register(name, l)

	sinks := o.sinks
	if sinks == nil {
		sinks = []Sink{NewConsoleSink(true)}
	}
	l.mu.Lock()
	l.sinks = sinks
	err := l.reapplyLocked()
	l.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Name returns the logger's registered name, including any collision suffix.
func (l *Logger) Name() string { return l.name }

// Pattern returns the current formatting template string.
func (l *Logger) Pattern() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.format
}

// Log formats the message and emits it at the given severity. If the
// severity is not currently enabled the call is a complete no-op: the
// message is never formatted and no sink is touched.
//
// Multi-line messages (stack traces, dumps) are split on newlines and each
// line is emitted as an independent record carrying the same severity
// padding and section prefix, so nested output stays aligned.
func (l *Logger) Log(level Level, format string, args ...any) {
	if !l.admits(level) {
		return
	}
	l.emit(level, fmt.Sprintf(format, args...))
}

// Tracef logs at LevelTrace.
func (l *Logger) Tracef(format string, args ...any) { l.Log(LevelTrace, format, args...) }

// Debugf logs at LevelDebug.
func (l *Logger) Debugf(format string, args ...any) { l.Log(LevelDebug, format, args...) }

// Infof logs at LevelInfo.
func (l *Logger) Infof(format string, args ...any) { l.Log(LevelInfo, format, args...) }

// Warnf logs at LevelWarn.
func (l *Logger) Warnf(format string, args ...any) { l.Log(LevelWarn, format, args...) }

// Errorf logs at LevelError.
func (l *Logger) Errorf(format string, args ...any) { l.Log(LevelError, format, args...) }

// Criticalf logs at LevelCritical.
func (l *Logger) Criticalf(format string, args ...any) { l.Log(LevelCritical, format, args...) }

// StartSection emits the start framing line at level and then increments
// the nesting depth, so the framing itself sits at the enclosing depth.
// Prefer the [Logger.Section] guard, which pairs the end call automatically.
func (l *Logger) StartSection(level Level, format string, args ...any) {
	l.Log(level, sectionStartFormat, fmt.Sprintf(format, args...))
	l.sections.enter()
}

// EndSection decrements the nesting depth (clamped at zero) and then emits
// the end framing line at level. An EndSection without a matching
// StartSection is harmless.
func (l *Logger) EndSection(level Level, format string, args ...any) {
	l.sections.leave()
	l.Log(level, sectionEndFormat, fmt.Sprintf(format, args...))
}

// Depth returns the current section nesting depth.
func (l *Logger) Depth() int {
	return l.sections.current()
}

// AddSink attaches a fan-out target. The logger's current template, level
// floor, and name are applied to every attached sink, the new one included,
// so a late-attached sink never starts in a stale formatting state.
// Attach order is fan-out order; attaching the same sink twice delivers
// every record to it twice.
//
// If the new sink rejects the current template it is not attached and the
// error is returned.
func (l *Logger) AddSink(s Sink) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := s.ApplyTemplate(l.format); err != nil {
		return fmt.Errorf("sectlog: add sink: %w", err)
	}
	l.sinks = append(l.sinks, s)
	return l.reapplyLocked()
}

// AddConsoleSink attaches a console sink on stdout, colorized when colored
// is set.
func (l *Logger) AddConsoleSink(colored bool) error {
	return l.AddSink(NewConsoleSink(colored))
}

// AddFileSink opens path (truncating when truncate is set, else appending)
// and attaches it as a sink.
func (l *Logger) AddFileSink(path string, truncate bool) error {
	s, err := NewFileSink(path, truncate)
	if err != nil {
		return err
	}
	return l.AddSink(s)
}

// AddRotatingSink attaches a size-rotated file sink on path; see
// [NewRotatingSink] for the rotation parameters.
func (l *Logger) AddRotatingSink(path string, maxSizeMB, maxBackups int) error {
	s, err := NewRotatingSink(path, maxSizeMB, maxBackups)
	if err != nil {
		return err
	}
	return l.AddSink(s)
}

// RemoveAllSinks detaches every sink. Detached sinks are not closed; they
// may be shared with other loggers. Subsequent log calls short-circuit to a
// no-op after the gate check.
func (l *Logger) RemoveAllSinks() {
	l.mu.Lock()
	l.sinks = nil
	l.mu.Unlock()
}

// Configure atomically replaces the level gating and the formatting
// template, then reapplies both to every attached sink. The pattern is
// validated first; on error nothing changes.
func (l *Logger) Configure(levels LevelSet, format string) error {
	if err := validation.Validate(format, validation.Required); err != nil {
		return fmt.Errorf("sectlog: pattern: %w", err)
	}
	if _, err := pattern.Compile(format); err != nil {
		return fmt.Errorf("sectlog: pattern: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.levels = levels
	l.format = format
	return l.reapplyLocked()
}

// SetLevel switches to single-threshold gating: level and above enabled,
// everything below disabled. LevelOff disables all output.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.levels.SetThreshold(level)
	l.reapplyFloorsLocked()
}

// Levels returns a snapshot of the current level gating. The snapshot is
// sufficient to restore the exact state later via [Logger.SetLevels], even
// when fine-grained per-level toggling was used.
func (l *Logger) Levels() LevelSet {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.levels
}

// SetLevels replaces the level gating wholesale.
func (l *Logger) SetLevels(levels LevelSet) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.levels = levels
	l.reapplyFloorsLocked()
}

// EnableLevel enables a single severity without touching the others.
func (l *Logger) EnableLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.levels.Enable(level)
	l.reapplyFloorsLocked()
}

// DisableLevel disables a single severity without touching the others.
func (l *Logger) DisableLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.levels.Disable(level)
	l.reapplyFloorsLocked()
}

// EnableAllLevels enables every severity.
func (l *Logger) EnableAllLevels() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.levels.EnableAll()
	l.reapplyFloorsLocked()
}

// DisableAllLevels disables every severity, silencing the logger without
// detaching anything. [Logger.MutedSection] builds on this.
func (l *Logger) DisableAllLevels() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.levels.DisableAll()
	l.reapplyFloorsLocked()
}

// Close closes every attached sink that implements io.Closer and returns
// the first error. Only call Close when this logger exclusively owns its
// sinks; sinks shared with other loggers must be closed by their owner.
// Safe to call more than once.
func (l *Logger) Close() error {
	var firstErr error
	l.closeOnce.Do(func() {
		l.mu.Lock()
		sinks := l.sinks
		l.sinks = nil
		l.mu.Unlock()
		for _, s := range sinks {
			if c, ok := s.(io.Closer); ok {
				if err := c.Close(); err != nil && firstErr == nil {
					firstErr = err
				}
			}
		}
	})
	return firstErr
}

// admits reports whether a record at level would currently produce output.
func (l *Logger) admits(level Level) bool {
	if !level.valid() {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.levels.Enabled(level) && len(l.sinks) > 0
}

// emit fans one already-formatted message out to the sinks, one record per
// payload line. The sink snapshot is taken under the mutex but writes run
// outside it, so a blocked sink stalls only the calling goroutine.
func (l *Logger) emit(level Level, msg string) {
	l.mu.Lock()
	if !l.levels.Enabled(level) || len(l.sinks) == 0 {
		l.mu.Unlock()
		return
	}
	sinks := make([]Sink, len(l.sinks))
	copy(sinks, l.sinks)
	l.mu.Unlock()

	header := level.pad() + l.sections.prefix()
	for _, line := range strings.Split(msg, "\n") {
		payload := header + line
		for _, s := range sinks {
			// Write failures belong to the sink; the core neither
			// retries nor buffers.
			_ = s.Write(level, payload)
		}
	}
}

// reapplyFloorsLocked pushes the current scalar floor (lowest enabled
// severity) to every sink. Callers hold l.mu.
func (l *Logger) reapplyFloorsLocked() {
	floor := l.levels.lowest()
	for _, s := range l.sinks {
		s.SetMinLevel(floor)
	}
}

// reapplyLocked pushes template, floor, and logger name to every sink.
// Callers hold l.mu.
func (l *Logger) reapplyLocked() error {
	var firstErr error
	for _, s := range l.sinks {
		if err := s.ApplyTemplate(l.format); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("sectlog: apply template: %w", err)
		}
		if n, ok := s.(loggerNamer); ok {
			n.setLoggerName(l.name)
		}
	}
	l.reapplyFloorsLocked()
	return firstErr
}
