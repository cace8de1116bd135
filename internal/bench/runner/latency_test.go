package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func micros(vals ...int) []time.Duration {
	out := make([]time.Duration, len(vals))
	for i, v := range vals {
		out[i] = time.Duration(v) * time.Microsecond
	}
	return out
}

func TestComputeLatencyStats(t *testing.T) {
	tests := []struct {
		name       string
		samples    []time.Duration
		wantMin    time.Duration
		wantMax    time.Duration
		wantMean   time.Duration
		wantMedian time.Duration
	}{
		{
			name:       "single sample",
			samples:    micros(7),
			wantMin:    7 * time.Microsecond,
			wantMax:    7 * time.Microsecond,
			wantMean:   7 * time.Microsecond,
			wantMedian: 7 * time.Microsecond,
		},
		{
			name:       "odd count unsorted",
			samples:    micros(50, 10, 30, 20, 40),
			wantMin:    10 * time.Microsecond,
			wantMax:    50 * time.Microsecond,
			wantMean:   30 * time.Microsecond,
			wantMedian: 30 * time.Microsecond,
		},
		{
			name:       "even count interpolates median",
			samples:    micros(10, 20, 30, 40),
			wantMin:    10 * time.Microsecond,
			wantMax:    40 * time.Microsecond,
			wantMean:   25 * time.Microsecond,
			wantMedian: 25 * time.Microsecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeLatencyStats(tt.samples)

			assert.Equal(t, tt.wantMin, stats.Min)
			assert.Equal(t, tt.wantMax, stats.Max)
			assert.Equal(t, tt.wantMean, stats.Mean)
			assert.Equal(t, tt.wantMedian, stats.Median)
			assert.Equal(t, len(tt.samples), stats.SampleCount)
			assert.False(t, stats.IsZero())
		})
	}
}

func TestComputeLatencyStats_Empty(t *testing.T) {
	stats := ComputeLatencyStats(nil)

	assert.True(t, stats.IsZero())
	assert.Zero(t, stats.Mean)
	assert.NotNil(t, stats.Percentiles)
	assert.Zero(t, stats.P99())
}

func TestComputeLatencyStats_KeepsRawOrder(t *testing.T) {
	samples := micros(3, 1, 2)
	stats := ComputeLatencyStats(samples)

	assert.Equal(t, micros(3, 1, 2), stats.Raw)
}

func TestComputeLatencyStats_Percentiles(t *testing.T) {
	samples := make([]time.Duration, 101)
	for i := range samples {
		samples[i] = time.Duration(i) * time.Microsecond
	}
	stats := ComputeLatencyStats(samples)

	assert.Equal(t, 50*time.Microsecond, stats.P50())
	assert.Equal(t, 90*time.Microsecond, stats.P90())
	assert.Equal(t, 99*time.Microsecond, stats.P99())
	assert.Len(t, stats.Percentiles, 3)
}

func TestComputeLatencyStats_Stddev(t *testing.T) {
	flat := ComputeLatencyStats(micros(100, 100, 100))
	assert.Zero(t, flat.Stddev)

	// sample variance of 10, 20, 30 is 100µs², so stddev is 10µs
	spread := ComputeLatencyStats(micros(10, 20, 30))
	assert.Equal(t, 10*time.Microsecond, spread.Stddev)

	single := ComputeLatencyStats(micros(5))
	assert.Zero(t, single.Stddev)
}

func TestMergeLatencyStats(t *testing.T) {
	a := ComputeLatencyStats(micros(10, 20))
	b := ComputeLatencyStats(micros(30, 40))

	merged := MergeLatencyStats(a, b)

	assert.Equal(t, 10*time.Microsecond, merged.Min)
	assert.Equal(t, 40*time.Microsecond, merged.Max)
	assert.Equal(t, 25*time.Microsecond, merged.Mean)
	assert.Equal(t, 4, merged.SampleCount)

	assert.True(t, MergeLatencyStats().IsZero())
}

func TestPercentile_EdgeCases(t *testing.T) {
	one := micros(10)
	assert.Equal(t, 10*time.Microsecond, percentile(one, 0))
	assert.Equal(t, 10*time.Microsecond, percentile(one, 100))

	two := micros(10, 20)
	assert.Equal(t, 10*time.Microsecond, percentile(two, 0))
	assert.Equal(t, 20*time.Microsecond, percentile(two, 100))

	assert.Zero(t, percentile(nil, 50))
}
