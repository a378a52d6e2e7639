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

// Package sectlog provides leveled, human-readable logging with visually
// nested "sections" of execution. Log lines are gated by a per-severity
// [LevelSet], prefixed with one "| " marker per open section, aligned to a
// common severity column, and fanned out to every attached [Sink].
//
// The primary entry point is [New], which returns a [Logger] configured
// with sensible defaults:
//   - All severities enabled.
//   - A color console sink on stdout using the spdlog-style pattern
//     "[%H:%M:%S.%f] [%^%l%$] %v".
//   - A process-unique name registered in the package [Registry]
//     (collisions resolved by appending "_1", "_2", …).
//
// Sections bracket a span of execution with start/end framing lines and
// indent everything logged in between:
//
//	log, err := sectlog.New(sectlog.WithName("loader"))
//	if err != nil {
//	    panic(err)
//	}
//	sec := log.Section("load assets")
//	defer sec.Close()
//	log.Infof("loaded %d textures", n)
//
// produces
//
//	    [info] === start load assets === {
//	    [info] | loaded 12 textures
//	    [info] ===   end load assets === }
//
// A muted section ([Logger.MutedSection]) instead snapshots the logger's
// level gating, disables every severity for the lifetime of the guard, and
// restores the snapshot on Close; nothing inside it is observable, not even
// the framing lines.
//
// [RateGate] bounds how often a spammy per-iteration call site may emit:
// ticked once per loop iteration, it enables all severities when the
// configured minimum interval has elapsed and disables them otherwise,
// without touching the call sites themselves.
//
// Environment variables SECTLOG_LEVEL and SECTLOG_PATTERN seed the defaults
// used by [New]; functional options such as [WithLevel] and [WithPattern]
// override them.
//
// # Subpackages
//
//   - [github.com/sectlog/sectlog/grpc] provides client and server
//     interceptors that wrap each RPC in a section and log its method,
//     status code, and duration through a Logger.
package sectlog
