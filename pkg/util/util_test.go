package util_test

import (
	"testing"
	"time"

	"github.com/gregjohnson2017/xenogl/pkg/perf"
	"github.com/gregjohnson2017/xenogl/pkg/util"
	"github.com/stretchr/testify/assert"
)

func TestStopRecordAverage(t *testing.T) {
	perf.Reset()
	perf.SetMetricsEnabled(true)
	defer perf.SetMetricsEnabled(false)

	sw := util.Start()
	time.Sleep(time.Millisecond)
	assert.GreaterOrEqual(t, sw.StopGetNano(), int64(time.Millisecond))

	sw.StopRecordAverage("test.sleep")
	avg, ok := perf.Average("test.sleep")
	assert.True(t, ok)
	assert.GreaterOrEqual(t, avg, time.Millisecond)
}
