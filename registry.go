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
	"sort"
	"sync"
)

// Registry maps visible logger names to live [Logger] instances. Its only
// job is to guarantee that no two live loggers share a visible name: when a
// requested name collides, a numeric suffix ("_1", "_2", …) is appended,
// incrementing until the name is free.
//
// Entries are inserted at Logger construction and live for the process
// lifetime; nothing removes them. [New] uses the package default registry
// unless [WithRegistry] supplies another, which keeps tests and multi-tenant
// embedders from fighting over names.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[string]*Logger)}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by [New] when no
// explicit registry option is given.
func DefaultRegistry() *Registry { return defaultRegistry }

// register stores l under base, or under the first free "base_N" when base
// is taken, and returns the name actually used.
func (r *Registry) register(base string, l *Logger) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := base
	for n := 1; ; n++ {
		if _, taken := r.loggers[name]; !taken {
			break
		}
		name = fmt.Sprintf("%s_%d", base, n)
	}
	r.loggers[name] = l
	return name
}

// Lookup returns the logger registered under name, if any.
func (r *Registry) Lookup(name string) (*Logger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.loggers[name]
	return l, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
