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
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/time/rate"
)

// RateGate is a coarse, binary on/off switch for a Logger's output, driven
// by wall-clock time. Ticked once per logical loop iteration (for example
// once per rendered frame), it admits a tick when at least the configured
// minimum interval has elapsed since the last admitted tick, enabling all
// severities on the bound logger, and suppresses it otherwise, disabling
// them all. Call sites between ticks stay untouched; they simply stop
// producing output during suppressed intervals.
//
// The gate does not sample or average: within one interval every tick after
// the first suppresses. Admission is monotonic under a non-decreasing
// clock.
//
// Tick must be called from a single owning goroutine. Concurrent ticking
// would race on the admission state and is out of contract.
type RateGate struct {
	logger  *Logger
	limiter *rate.Limiter
}

// NewRateGate binds a gate to logger, admitting at most maxFrequencyHz
// ticks per second (the minimum interval between admitted ticks is
// 1/maxFrequencyHz). A frequency that is zero, negative, NaN, or infinite
// is an invalid configuration and fails fast.
func NewRateGate(logger *Logger, maxFrequencyHz float64) (*RateGate, error) {
	err := validation.Validate(maxFrequencyHz,
		validation.Required,
		validation.Min(0.0).Exclusive(),
		validation.Max(float64(rate.Inf)).Exclusive(),
	)
	if err != nil {
		return nil, fmt.Errorf("sectlog: rate gate: max frequency %v: %w", maxFrequencyHz, err)
	}
	return &RateGate{
		logger: logger,
		// Burst 1 makes the token bucket equivalent to a plain
		// minimum-interval check.
		limiter: rate.NewLimiter(rate.Limit(maxFrequencyHz), 1),
	}, nil
}

// Tick decides admission for the instant now and toggles the bound logger
// wholesale: all severities enabled on admit, all disabled on suppress. It
// reports whether the tick was admitted. now must not decrease between
// calls.
func (g *RateGate) Tick(now time.Time) bool {
	if g.limiter.AllowN(now, 1) {
		g.logger.EnableAllLevels()
		return true
	}
	g.logger.DisableAllLevels()
	return false
}

// TickNow is Tick at the current wall-clock time.
func (g *RateGate) TickNow() bool {
	return g.Tick(time.Now())
}
