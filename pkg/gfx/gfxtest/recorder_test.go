package gfxtest_test

import (
	"testing"

	"github.com/gregjohnson2017/xenogl/pkg/gfx"
	"github.com/gregjohnson2017/xenogl/pkg/gfx/gfxtest"
	"github.com/stretchr/testify/assert"
)

func TestRecorderLocations(t *testing.T) {
	rec := gfxtest.NewRecorder()
	rec.Missing["gone"] = true

	a := rec.GetAttribLocation(1, "position")
	b := rec.GetUniformLocation(1, "time")
	assert.Equal(t, int32(0), a)
	assert.Equal(t, int32(1), b)
	assert.Equal(t, a, rec.GetAttribLocation(2, "position"), "locations are stable per name")
	assert.Equal(t, int32(-1), rec.GetAttribLocation(1, "gone"))
	assert.Equal(t, int32(-1), rec.GetUniformLocation(1, "gone"))
	assert.Equal(t, gfx.InvalidIndex, rec.GetUniformBlockIndex(1, "gone"))
}

func TestRecorderScriptedFailures(t *testing.T) {
	rec := gfxtest.NewRecorder()
	rec.CompileLogs["broken"] = "0:1: syntax error"

	good := rec.CreateShader(gfx.VertexShader)
	rec.ShaderSource(good, "void main() {}")
	bad := rec.CreateShader(gfx.FragmentShader)
	rec.ShaderSource(bad, "broken")
	assert.True(t, rec.ShaderCompiled(good))
	assert.False(t, rec.ShaderCompiled(bad))
	assert.Equal(t, "0:1: syntax error", rec.ShaderInfoLog(bad))

	p := rec.CreateProgram()
	rec.LinkProgram(p)
	assert.True(t, rec.ProgramLinked(p))

	rec.LinkLog = "undefined varying"
	q := rec.CreateProgram()
	rec.LinkProgram(q)
	assert.False(t, rec.ProgramLinked(q))
	assert.Equal(t, "undefined varying", rec.ProgramInfoLog(q))
}

func TestRecorderCalls(t *testing.T) {
	rec := gfxtest.NewRecorder()
	id := rec.CreateBuffer()
	rec.BindBuffer(gfx.ArrayBuffer, id)
	rec.BufferData(gfx.ArrayBuffer, []byte{1, 2}, gfx.StaticDraw)
	rec.BindBuffer(gfx.ArrayBuffer, 0)
	rec.UseProgram(7)

	assert.Equal(t, []string{"CreateBuffer", "BindBuffer", "BufferData", "BindBuffer", "UseProgram"}, rec.Names())
	assert.Equal(t, 2, rec.Count("BindBuffer"))
	assert.Equal(t, 2, rec.Index("BufferData"))
	assert.Equal(t, -1, rec.Index("DrawArrays"))
	assert.Equal(t, []interface{}{gfx.ArrayBuffer, gfx.BufferID(0)}, rec.Filter("BindBuffer")[1].Args)
	assert.Equal(t, gfx.ProgramID(7), rec.CurrentProgram())
	assert.Equal(t, "UseProgram(7)", rec.Calls()[4].String())

	rec.Reset()
	assert.Empty(t, rec.Calls())
	assert.Equal(t, gfx.BufferID(2), rec.CreateBuffer(), "ids keep counting after Reset")
}
