//go:build !js

package gl33

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/gregjohnson2017/xenogl/pkg/perf"
)

// Query times the GL commands issued between StartQuery and Stop with a
// TIME_ELAPSED query. Two queries cannot be open at once.
type Query struct {
	id uint32
}

// StartQuery begins timing the commands that follow it.
func StartQuery() Query {
	var q Query
	gl.GenQueries(1, &q.id)
	gl.BeginQuery(gl.TIME_ELAPSED, q.id)
	return q
}

// Stop ends the query and records the GPU time under metricKey(key). It
// blocks until the GPU has executed the timed commands.
func (q Query) Stop(key string) {
	gl.EndQuery(gl.TIME_ELAPSED)
	var elapsed uint64
	gl.GetQueryObjectui64v(q.id, gl.QUERY_RESULT, &elapsed)
	perf.RecordAverageTime(metricKey(key), int64(elapsed))
	gl.DeleteQueries(1, &q.id)
}

// metricKey namespaces GPU timings apart from CPU stopwatch timings.
func metricKey(key string) string {
	return "gl33." + key
}
