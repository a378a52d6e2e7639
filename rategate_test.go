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
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateGate_InvalidFrequency(t *testing.T) {
	l, _ := newTestLogger(t)

	for _, hz := range []float64{0, -1, -0.001, math.NaN(), math.Inf(1)} {
		_, err := NewRateGate(l, hz)
		assert.Error(t, err, "frequency %v must be rejected", hz)
	}
}

// TestRateGate_TwoHertz pins the admission pattern for a 2 Hz gate
// (minimum interval 0.5s): ticks at t=0.0s and t=0.6s admit and enable all
// severities, the tick at t=0.2s suppresses and disables them.
func TestRateGate_TwoHertz(t *testing.T) {
	l, sink := newTestLogger(t)
	gate, err := NewRateGate(l, 2)
	require.NoError(t, err)

	base := time.Now()

	assert.True(t, gate.Tick(base), "tick 1 at t=0.0s must admit")
	l.Infof("a")
	assert.Equal(t, AllLevels, l.Levels())

	assert.False(t, gate.Tick(base.Add(200*time.Millisecond)), "tick 2 at t=0.2s must suppress")
	l.Infof("suppressed")
	assert.Equal(t, LevelSet(0), l.Levels())

	assert.True(t, gate.Tick(base.Add(600*time.Millisecond)), "tick 3 at t=0.6s must admit")
	l.Infof("b")

	require.Equal(t, 2, sink.count(), "only the admitted intervals may emit")
	assert.Contains(t, sink.payloads()[0], "a")
	assert.Contains(t, sink.payloads()[1], "b")
}

// TestRateGate_BurstSuppressesAllButFirst verifies the gate is binary, not
// averaging: within one interval every tick after the first suppresses.
func TestRateGate_BurstSuppressesAllButFirst(t *testing.T) {
	l, _ := newTestLogger(t)
	gate, err := NewRateGate(l, 10) // 100ms interval
	require.NoError(t, err)

	base := time.Now()
	admitted := 0
	for i := 0; i < 10; i++ {
		if gate.Tick(base.Add(time.Duration(i) * time.Millisecond)) {
			admitted++
		}
	}
	assert.Equal(t, 1, admitted)
}

func TestRateGate_MonotonicUnderSteadyTicks(t *testing.T) {
	l, _ := newTestLogger(t)
	gate, err := NewRateGate(l, 4) // 250ms interval
	require.NoError(t, err)

	base := time.Now()
	var admissions []int
	for i := 0; i < 12; i++ { // every 100ms for 1.1s
		if gate.Tick(base.Add(time.Duration(i) * 100 * time.Millisecond)) {
			admissions = append(admissions, i)
		}
	}
	// Admissions at 0.0, then every >=250ms boundary reachable at 100ms
	// granularity.
	assert.Equal(t, []int{0, 3, 6, 9}, admissions)
}
