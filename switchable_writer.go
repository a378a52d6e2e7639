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
	"os"
	"sync"
)

// switchableWriter is an io.Writer whose underlying writer can be swapped
// atomically. [FileSink] writes through one so Reopen can point the sink at
// a fresh file descriptor (after external logrotate renamed the old one)
// without rebuilding the sink.
type switchableWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func newSwitchableWriter(w io.Writer) *switchableWriter {
	if w == nil {
		w = io.Discard
	}
	return &switchableWriter{w: w}
}

// Write forwards to the current underlying writer. Safe for concurrent use.
func (sw *switchableWriter) Write(p []byte) (int, error) {
	sw.mu.Lock()
	w := sw.w
	sw.mu.Unlock()
	if w == nil {
		return 0, os.ErrClosed
	}
	n, err := w.Write(p)
	if err != nil {
		return n, fmt.Errorf("switchable writer: %w", err)
	}
	return n, nil
}

// set swaps the underlying writer. The previous writer is not closed; its
// lifecycle belongs to the caller. A nil writer redirects to io.Discard.
func (sw *switchableWriter) set(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	sw.mu.Lock()
	sw.w = w
	sw.mu.Unlock()
}

// Close closes the underlying writer if it is an io.Closer and then directs
// further writes to io.Discard. Idempotent.
func (sw *switchableWriter) Close() error {
	sw.mu.Lock()
	w := sw.w
	sw.w = io.Discard
	sw.mu.Unlock()

	if c, ok := w.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("switchable writer: close: %w", err)
		}
	}
	return nil
}

var _ io.WriteCloser = (*switchableWriter)(nil)
