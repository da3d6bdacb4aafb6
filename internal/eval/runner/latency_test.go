package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeLatencyStats_Empty(t *testing.T) {
	assert.Equal(t, LatencyStats{}, ComputeLatencyStats(nil))
}

func TestComputeLatencyStats_SingleValue(t *testing.T) {
	stats := ComputeLatencyStats([]time.Duration{10 * time.Millisecond})

	assert.Equal(t, LatencyStats{
		Min:         10 * time.Millisecond,
		Max:         10 * time.Millisecond,
		Mean:        10 * time.Millisecond,
		P50:         10 * time.Millisecond,
		P95:         10 * time.Millisecond,
		SampleCount: 1,
	}, stats)
}

func TestComputeLatencyStats_Unsorted(t *testing.T) {
	samples := []time.Duration{
		40 * time.Millisecond,
		10 * time.Millisecond,
		30 * time.Millisecond,
		20 * time.Millisecond,
	}

	stats := ComputeLatencyStats(samples)

	assert.Equal(t, 10*time.Millisecond, stats.Min)
	assert.Equal(t, 40*time.Millisecond, stats.Max)
	assert.Equal(t, 25*time.Millisecond, stats.Mean)
	assert.Equal(t, 20*time.Millisecond, stats.P50)
	assert.Equal(t, 40*time.Millisecond, stats.P95)
	assert.Equal(t, 40*time.Millisecond, samples[0], "input must not be reordered")
}
