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
)

// Environment variable names consulted by [New]. Options override both.
const (
	// EnvLevel names the minimum severity, e.g. "debug" or "warn".
	EnvLevel = "SECTLOG_LEVEL"
	// EnvPattern names the default formatting template.
	EnvPattern = "SECTLOG_PATTERN"
)

// DefaultPattern is the formatting template used when neither the
// environment nor an option provides one: wall-clock time with
// microseconds, the severity label (colorized on capable sinks), then the
// payload.
const DefaultPattern = "[%H:%M:%S.%f] [%^%l%$] %v"

// defaultLoggerName is the registry name used when WithName is absent.
const defaultLoggerName = "section_logger"

// envConfig holds the defaults read from the environment.
type envConfig struct {
	level   *Level
	pattern string
}

// loadEnvConfig reads the SECTLOG_* variables. An unparsable level is
// reported on stderr and ignored rather than failing construction, so a
// typo in a deployment manifest degrades to defaults instead of taking the
// process down.
func loadEnvConfig() envConfig {
	var cfg envConfig
	if v := os.Getenv(EnvLevel); v != "" {
		lvl, err := ParseLevel(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[sectlog] WARNING: ignoring %s=%q: %v\n", EnvLevel, v, err)
		} else {
			cfg.level = &lvl
		}
	}
	cfg.pattern = os.Getenv(EnvPattern)
	return cfg
}
