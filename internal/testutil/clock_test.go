package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clockBase = time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)

func TestFixedClock_StartsAtBase(t *testing.T) {
	clock := NewFixedClock(clockBase)
	assert.Equal(t, clockBase, clock.Now())
}

func TestFixedClock_AdvancesOneSecondPerCall(t *testing.T) {
	clock := NewFixedClock(clockBase)

	assert.Equal(t, clockBase, clock.Now())
	assert.Equal(t, clockBase.Add(1*time.Second), clock.Now())
	assert.Equal(t, clockBase.Add(2*time.Second), clock.Now())
}

func TestFixedClock_Reset(t *testing.T) {
	clock := NewFixedClock(clockBase)

	clock.Now()
	clock.Now()
	clock.Reset()

	assert.Equal(t, clockBase, clock.Now())
}

func TestFixedClock_ThreadSafe(t *testing.T) {
	clock := NewFixedClock(clockBase)
	const numGoroutines = 50
	const callsPerGoroutine = 20

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	results := make([][]time.Time, numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		results[i] = make([]time.Time, callsPerGoroutine)
		go func(idx int) {
			defer wg.Done()
			for j := 0; j < callsPerGoroutine; j++ {
				results[idx][j] = clock.Now()
			}
		}(i)
	}

	wg.Wait()

	// Every handed-out time must be distinct.
	seen := make(map[time.Time]bool)
	for i := range results {
		for _, ts := range results[i] {
			require.False(t, seen[ts], "duplicate timestamp %v", ts)
			seen[ts] = true
		}
	}
	assert.Len(t, seen, numGoroutines*callsPerGoroutine)
}
