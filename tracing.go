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
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"
)

// LogContext behaves like [Logger.Log] but additionally consults the
// OpenTelemetry span context carried by ctx. When a valid span context is
// present, " trace_id=<32 hex> span_id=<16 hex>" is appended to the message
// so section-structured output can be joined with distributed traces.
//
// No spans are created, no headers parsed, and ctx is never mutated;
// upstream instrumentation (propagators, middleware) is expected to have
// populated the span context already. Gating stays lazy: with the severity
// disabled, neither the message nor the trace suffix is formatted.
func (l *Logger) LogContext(ctx context.Context, level Level, format string, args ...any) {
	if !l.admits(level) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		msg += fmt.Sprintf(" trace_id=%s span_id=%s", sc.TraceID(), sc.SpanID())
	}
	l.emit(level, msg)
}

// TraceContext logs at LevelTrace with trace correlation.
func (l *Logger) TraceContext(ctx context.Context, format string, args ...any) {
	l.LogContext(ctx, LevelTrace, format, args...)
}

// DebugContext logs at LevelDebug with trace correlation.
func (l *Logger) DebugContext(ctx context.Context, format string, args ...any) {
	l.LogContext(ctx, LevelDebug, format, args...)
}

// InfoContext logs at LevelInfo with trace correlation.
func (l *Logger) InfoContext(ctx context.Context, format string, args ...any) {
	l.LogContext(ctx, LevelInfo, format, args...)
}

// WarnContext logs at LevelWarn with trace correlation.
func (l *Logger) WarnContext(ctx context.Context, format string, args ...any) {
	l.LogContext(ctx, LevelWarn, format, args...)
}

// ErrorContext logs at LevelError with trace correlation.
func (l *Logger) ErrorContext(ctx context.Context, format string, args ...any) {
	l.LogContext(ctx, LevelError, format, args...)
}

// CriticalContext logs at LevelCritical with trace correlation.
func (l *Logger) CriticalContext(ctx context.Context, format string, args ...any) {
	l.LogContext(ctx, LevelCritical, format, args...)
}
