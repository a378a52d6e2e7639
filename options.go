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

// Option configures a Logger during [New]. Options apply in order, so a
// later option overrides an earlier one and all of them override the
// SECTLOG_* environment variables.
type Option func(*options)

// options collects settings before resolution. Pointer fields distinguish
// "explicitly set to the zero value" from "not set, fall back to the
// environment or the default".
type options struct {
	name     *string
	level    *Level
	levels   *LevelSet
	pattern  *string
	registry *Registry
	sinks    []Sink
	sinkErr  error // first sink construction failure, surfaced by New
}

// WithName sets the logger's requested registry name. On collision with a
// live logger the registered name gains a "_1", "_2", … suffix.
func WithName(name string) Option {
	return func(o *options) {
		o.name = &name
	}
}

// WithLevel sets single-threshold gating: level and above enabled. This
// overrides SECTLOG_LEVEL.
func WithLevel(level Level) Option {
	return func(o *options) {
		lvl := level
		o.level = &lvl
	}
}

// WithLevels sets the full level gating set, for combinations a single
// threshold cannot express. Takes precedence over WithLevel.
func WithLevels(levels LevelSet) Option {
	return func(o *options) {
		ls := levels
		o.levels = &ls
	}
}

// WithPattern sets the formatting template; see [DefaultPattern] for the
// verb reference. Overrides SECTLOG_PATTERN. An invalid pattern makes New
// fail.
func WithPattern(format string) Option {
	return func(o *options) {
		o.pattern = &format
	}
}

// WithRegistry registers the logger in reg instead of the package default
// registry. Useful for tests and for embedders that namespace loggers per
// tenant.
func WithRegistry(reg *Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithSink attaches a sink at construction. Giving any sink option
// suppresses the default console sink.
func WithSink(s Sink) Option {
	return func(o *options) {
		if s != nil {
			o.sinks = append(o.sinks, s)
		}
	}
}

// WithConsoleSink attaches a console sink on stdout, colorized when colored
// is set.
func WithConsoleSink(colored bool) Option {
	return func(o *options) {
		o.sinks = append(o.sinks, NewConsoleSink(colored))
	}
}

// WithFileSink attaches a file sink on path; see [NewFileSink]. A failure
// to open the file is reported by New.
func WithFileSink(path string, truncate bool) Option {
	return func(o *options) {
		s, err := NewFileSink(path, truncate)
		if err != nil {
			if o.sinkErr == nil {
				o.sinkErr = err
			}
			return
		}
		o.sinks = append(o.sinks, s)
	}
}

// WithRotatingSink attaches a rotating file sink on path; see
// [NewRotatingSink]. Invalid rotation parameters are reported by New.
func WithRotatingSink(path string, maxSizeMB, maxBackups int) Option {
	return func(o *options) {
		s, err := NewRotatingSink(path, maxSizeMB, maxBackups)
		if err != nil {
			if o.sinkErr == nil {
				o.sinkErr = err
			}
			return
		}
		o.sinks = append(o.sinks, s)
	}
}
