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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

var (
	testTraceID = trace.TraceID{0x4b, 0xf9, 0x2f, 0x35, 0x77, 0xb3, 0x4d, 0xa6, 0xa3, 0xce, 0x92, 0x9d, 0x0e, 0x0e, 0x47, 0x36}
	testSpanID  = trace.SpanID{0x00, 0xf0, 0x67, 0xaa, 0x0b, 0xa9, 0x02, 0xb7}
)

func spanContext() context.Context {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    testTraceID,
		SpanID:     testSpanID,
		TraceFlags: trace.FlagsSampled,
	})
	return trace.ContextWithSpanContext(context.Background(), sc)
}

func TestLogContext_AppendsTraceCorrelation(t *testing.T) {
	l, sink := newTestLogger(t)

	l.InfoContext(spanContext(), "handled %s", "request")

	require.Equal(t, 1, sink.count())
	payload := sink.payloads()[0]
	assert.Contains(t, payload, "handled request")
	assert.Contains(t, payload, "trace_id="+testTraceID.String())
	assert.Contains(t, payload, "span_id="+testSpanID.String())
}

func TestLogContext_NoSpanNoSuffix(t *testing.T) {
	l, sink := newTestLogger(t)

	l.InfoContext(context.Background(), "plain")

	require.Equal(t, 1, sink.count())
	assert.NotContains(t, sink.payloads()[0], "trace_id=")
}

func TestLogContext_GatedCallIsNoOp(t *testing.T) {
	l, sink := newTestLogger(t)
	l.SetLevel(LevelError)

	l.DebugContext(spanContext(), "dropped")
	assert.Zero(t, sink.count())
}

func TestLogContext_MultiLineKeepsSuffixOnLastLine(t *testing.T) {
	l, sink := newTestLogger(t)

	l.ErrorContext(spanContext(), "failure\nstack")

	require.Equal(t, 2, sink.count())
	assert.NotContains(t, sink.payloads()[0], "trace_id=")
	assert.Contains(t, sink.payloads()[1], "trace_id=")
}
