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

// Package pattern compiles spdlog-style format strings into templates that
// render one log record to one output line.
//
// Supported verbs:
//
//	%H %M %S   zero-padded hour, minute, second
//	%f         microseconds, six digits
//	%e         milliseconds, three digits
//	%l         severity label
//	%n         logger name
//	%v         the payload (padding + section prefix + message line)
//	%%         a literal percent sign
//	%^ %$      begin/end of the range a colorizing sink may highlight;
//	           non-colorizing sinks drop the markers
//
// Compilation fails on an empty format string or an unknown verb, so a bad
// pattern surfaces at configuration time rather than as garbled output.
package pattern

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmpty is returned by Compile for an empty format string.
var ErrEmpty = errors.New("pattern: empty format string")

type kind int

const (
	kindLiteral kind = iota
	kindHour
	kindMinute
	kindSecond
	kindMicros
	kindMillis
	kindLevel
	kindName
	kindPayload
	kindColorStart
	kindColorEnd
)

type part struct {
	kind kind
	lit  string // set only for kindLiteral
}

// Template is a compiled format string. Templates are immutable after
// Compile and safe for concurrent Render calls.
type Template struct {
	format string
	parts  []part
}

// Record carries the per-line inputs a Template renders.
type Record struct {
	Time    time.Time
	Label   string // severity label, e.g. "warn"
	Name    string // owning logger name, may be empty
	Payload string // padding + section prefix + one message line
}

// Compile parses format into a Template. It returns ErrEmpty for an empty
// format and a descriptive error for an unterminated or unknown verb.
func Compile(format string) (*Template, error) {
	if format == "" {
		return nil, ErrEmpty
	}

	t := &Template{format: format}
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			t.parts = append(t.parts, part{kind: kindLiteral, lit: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			lit.WriteByte(c)
			continue
		}
		i++
		if i >= len(format) {
			return nil, fmt.Errorf("pattern: trailing %% in format %q", format)
		}
		var k kind
		switch format[i] {
		case 'H':
			k = kindHour
		case 'M':
			k = kindMinute
		case 'S':
			k = kindSecond
		case 'f':
			k = kindMicros
		case 'e':
			k = kindMillis
		case 'l':
			k = kindLevel
		case 'n':
			k = kindName
		case 'v':
			k = kindPayload
		case '^':
			k = kindColorStart
		case '$':
			k = kindColorEnd
		case '%':
			lit.WriteByte('%')
			continue
		default:
			return nil, fmt.Errorf("pattern: unknown verb %%%c in format %q", format[i], format)
		}
		flush()
		t.parts = append(t.parts, part{kind: k})
	}
	flush()
	return t, nil
}

// Format returns the original format string the template was compiled from.
func (t *Template) Format() string { return t.format }

// Render produces the final output line for rec, without a trailing newline.
//
// When colorize is non-nil it is applied to the text between the %^ and %$
// markers; when nil the markers vanish and the text passes through
// unchanged. An unmatched %^ colors through to the end of the line.
func (t *Template) Render(rec Record, colorize func(string) string) string {
	var out strings.Builder
	out.Grow(len(t.format) + len(rec.Payload))

	var region strings.Builder
	inRegion := false
	dst := func() *strings.Builder {
		if inRegion && colorize != nil {
			return &region
		}
		return &out
	}

	for _, p := range t.parts {
		switch p.kind {
		case kindLiteral:
			dst().WriteString(p.lit)
		case kindHour:
			fmt.Fprintf(dst(), "%02d", rec.Time.Hour())
		case kindMinute:
			fmt.Fprintf(dst(), "%02d", rec.Time.Minute())
		case kindSecond:
			fmt.Fprintf(dst(), "%02d", rec.Time.Second())
		case kindMicros:
			fmt.Fprintf(dst(), "%06d", rec.Time.Nanosecond()/1e3)
		case kindMillis:
			fmt.Fprintf(dst(), "%03d", rec.Time.Nanosecond()/1e6)
		case kindLevel:
			dst().WriteString(rec.Label)
		case kindName:
			dst().WriteString(rec.Name)
		case kindPayload:
			dst().WriteString(rec.Payload)
		case kindColorStart:
			inRegion = true
		case kindColorEnd:
			if inRegion && colorize != nil {
				out.WriteString(colorize(region.String()))
				region.Reset()
			}
			inRegion = false
		}
	}
	if inRegion && colorize != nil {
		out.WriteString(colorize(region.String()))
	}
	return out.String()
}
