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

package grpc

import (
	sectlog "github.com/sectlog/sectlog"
)

// Option configures the interceptors returned by this package.
type Option func(*options)

type options struct {
	level      sectlog.Level
	errorLevel sectlog.Level
	sections   bool
}

func resolveOptions(opts []Option) options {
	o := options{
		level:      sectlog.LevelInfo,
		errorLevel: sectlog.LevelError,
		sections:   true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithLevel sets the severity of section framing and successful-completion
// lines. Defaults to Info.
func WithLevel(level sectlog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithErrorLevel sets the severity used for completion lines of failed
// calls. Defaults to Error.
func WithErrorLevel(level sectlog.Level) Option {
	return func(o *options) {
		o.errorLevel = level
	}
}

// WithSections controls whether server interceptors bracket each call in a
// section. Disabling keeps the single completion line but drops the framing
// and indentation. Defaults to enabled.
func WithSections(enabled bool) Option {
	return func(o *options) {
		o.sections = enabled
	}
}
