// Package perf keeps named running averages of durations, such as shader
// compile and program link times.
package perf

import (
	"sort"
	"time"

	"github.com/gregjohnson2017/xenogl/pkg/log"
)

type average struct {
	// nanoseconds
	total int64
	// recordings
	count int64
}

var enabled bool
var averages = make(map[string]average)

// RecordAverageTime adds one recording of nanos to the average under key.
// Nothing is recorded unless metrics are enabled.
func RecordAverageTime(key string, nanos int64) {
	if !enabled {
		return
	}

	avg := averages[key]
	avg.total += nanos
	avg.count++
	averages[key] = avg
}

// Average returns the mean recorded duration for key.
func Average(key string) (time.Duration, bool) {
	v, ok := averages[key]
	if !ok || v.count == 0 {
		return 0, false
	}
	return time.Duration(v.total / v.count), true
}

func SetMetricsEnabled(enable bool) {
	enabled = enable
}

// Reset forgets every recording.
func Reset() {
	averages = make(map[string]average)
}

// LogMetrics writes every average to the performance logger, sorted by key.
func LogMetrics() {
	if !enabled || len(averages) == 0 {
		return
	}

	keys := make([]string, 0, len(averages))
	for k := range averages {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	log.Perf("average metrics")
	for _, k := range keys {
		if avg, ok := Average(k); ok {
			log.Perff("- %v = %v (%d samples)", k, avg, averages[k].count)
		}
	}
}
