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
	"os"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileSink appends (or truncates, then writes) rendered lines to a single
// file. Writes go through an internal switchable writer so [FileSink.Reopen]
// can cooperate with external rotation tools such as logrotate: the tool
// renames the active file and signals the process, which calls Reopen to
// recreate the path and swap the descriptor.
type FileSink struct {
	streamSink

	fileMu sync.Mutex
	path   string
	sw     *switchableWriter
	file   *os.File
}

// NewFileSink opens path for logging. With truncate set, an existing file is
// emptied; otherwise lines are appended. The file is created if missing.
func NewFileSink(path string, truncate bool) (*FileSink, error) {
	if err := validation.Validate(path, validation.Required); err != nil {
		return nil, fmt.Errorf("sectlog: file sink path: %w", err)
	}

	flags := os.O_CREATE | os.O_WRONLY
	if truncate {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("sectlog: open log file %q: %w", path, err)
	}

	sw := newSwitchableWriter(f)
	s := &FileSink{
		streamSink: newStreamSink(sw),
		path:       path,
		sw:         sw,
		file:       f,
	}
	return s, nil
}

// Path returns the file path the sink writes to.
func (s *FileSink) Path() string { return s.path }

// Reopen closes the current descriptor and reopens the sink's path in
// append mode. Intended to run after an external rotation tool has renamed
// the active file. If reopening fails the sink discards further writes and
// the error is returned; logging never panics over a lost file.
func (s *FileSink) Reopen() error {
	s.fileMu.Lock()
	defer s.fileMu.Unlock()

	if s.file != nil {
		if err := s.file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "[sectlog] WARNING: closing log file during reopen: %v\n", err)
		}
		s.file = nil
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		s.sw.set(nil)
		return fmt.Errorf("sectlog: reopen log file %q: %w", s.path, err)
	}
	s.file = f
	s.sw.set(f)
	return nil
}

// Close closes the underlying file. The sink discards anything written
// afterwards. Safe to call more than once.
func (s *FileSink) Close() error {
	s.fileMu.Lock()
	defer s.fileMu.Unlock()
	s.file = nil
	return s.sw.Close()
}

// RotatingSink writes rendered lines to a file that rolls over once it
// reaches a byte-size threshold, keeping a bounded number of rotated
// backups. Rotation is delegated to gopkg.in/natefinch/lumberjack.v2.
type RotatingSink struct {
	streamSink
	lj *lumberjack.Logger
}

// NewRotatingSink returns a rotating sink on path. maxSizeMB is the size in
// megabytes at which the current file rolls over and must be positive;
// maxBackups is the number of rotated files to retain and must not be
// negative (zero keeps every backup, matching lumberjack).
func NewRotatingSink(path string, maxSizeMB, maxBackups int) (*RotatingSink, error) {
	err := validation.Errors{
		"path":        validation.Validate(path, validation.Required),
		"max_size":    validation.Validate(maxSizeMB, validation.Required, validation.Min(1)),
		"max_backups": validation.Validate(maxBackups, validation.Min(0)),
	}.Filter()
	if err != nil {
		return nil, fmt.Errorf("sectlog: rotating sink: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}
	return &RotatingSink{streamSink: newStreamSink(lj), lj: lj}, nil
}

// Close closes the currently open log file. Safe to call more than once.
func (s *RotatingSink) Close() error {
	return s.lj.Close()
}

// Rotate forces an immediate rollover regardless of the current file size,
// for callers that rotate on a schedule instead of by size.
func (s *RotatingSink) Rotate() error {
	return s.lj.Rotate()
}
