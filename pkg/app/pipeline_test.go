package app_test

import (
	"testing"
	"time"

	"github.com/gregjohnson2017/xenogl/pkg/app"
	"github.com/gregjohnson2017/xenogl/pkg/gfx"
	"github.com/gregjohnson2017/xenogl/pkg/gfx/gfxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastIndex(rec *gfxtest.Recorder, match func(gfxtest.Call) bool) int {
	calls := rec.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if match(calls[i]) {
			return i
		}
	}
	return -1
}

func TestPipelineAttach(t *testing.T) {
	rec := gfxtest.NewRecorder()
	ctx := gfx.NewContext(rec)
	p := app.NewPipeline(app.VertexShaderSource, app.FragmentShaderSource)
	p.Resize(800, 600)
	p.UseTexture(2)
	assert.Empty(t, rec.Calls(), "the pipeline is declared without GL calls")

	id, err := p.Attach(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, id)
	assert.Same(t, p.Program(), ctx.ActiveProgram())
	assert.Equal(t, gfx.PendingCounts{Buffers: 2, Uniforms: 3, VertexArrayObjects: 1, UniformBufferObjects: 1},
		p.Program().Resolved())

	var ints []interface{}
	for _, c := range rec.Filter("Uniform1i") {
		ints = append(ints, c.Args[1])
	}
	assert.Equal(t, []interface{}{int32(2), int32(1)}, ints, "sampler unit, then the textured flag")

	var uniformUploads []gfxtest.Call
	for _, c := range rec.Filter("BufferData") {
		if c.Args[0] == gfx.UniformBuffer {
			uniformUploads = append(uniformUploads, c)
		}
	}
	require.Len(t, uniformUploads, 1)
	assert.Equal(t, []byte(gfx.Float32s([]float32{800, 600, 1, 0})), uniformUploads[0].Args[1])

	vao := lastIndex(rec, func(c gfxtest.Call) bool { return c.Name == "BindVertexArray" })
	elements := lastIndex(rec, func(c gfxtest.Call) bool {
		return c.Name == "BindBuffer" && c.Args[0] == gfx.ElementArrayBuffer && c.Args[1] != gfx.BufferID(0)
	})
	assert.True(t, vao < elements, "the index buffer is bound into the vertex array")
}

func TestPipelineDraw(t *testing.T) {
	rec := gfxtest.NewRecorder()
	ctx := gfx.NewContext(rec)
	p := app.NewPipeline(app.VertexShaderSource, app.FragmentShaderSource)
	_, err := p.Attach(ctx)
	require.NoError(t, err)

	rec.Reset()
	p.Update(1500 * time.Millisecond)
	ctx.Draw(gfx.Triangles)
	assert.Equal(t, []string{"Uniform1f", "DrawElements"}, rec.Names())
	assert.Equal(t, float32(1.5), rec.Calls()[0].Args[1])
	assert.Equal(t, []interface{}{gfx.Triangles, 6, gfx.UnsignedShort, 0}, rec.Calls()[1].Args)

	p.Delete()
	assert.True(t, p.Program().Deleted())
	rec.Reset()
	ctx.Draw(gfx.Triangles)
	assert.Empty(t, rec.Calls())
}

func TestPipelineSwap(t *testing.T) {
	rec := gfxtest.NewRecorder()
	ctx := gfx.NewContext(rec)
	old := app.NewPipeline(app.VertexShaderSource, app.FragmentShaderSource)
	_, err := old.Attach(ctx)
	require.NoError(t, err)
	next := app.NewPipeline(app.VertexShaderSource, app.FragmentShaderSource)
	_, err = next.Attach(ctx)
	require.NoError(t, err)

	require.NoError(t, ctx.ActivateProgram(next.Program()))
	require.NoError(t, old.Detach(ctx))
	assert.True(t, old.Program().Deleted())
	assert.Equal(t, []*gfx.Program{nil, next.Program()}, ctx.Programs())

	vaoID, err := next.Program().VertexArrayObject().Handle()
	require.NoError(t, err)
	ibID, err := next.Program().IndexBuffer().Handle()
	require.NoError(t, err)
	vao := lastIndex(rec, func(c gfxtest.Call) bool { return c.Name == "BindVertexArray" })
	require.NotEqual(t, -1, vao)
	assert.Equal(t, []interface{}{vaoID}, rec.Calls()[vao].Args, "the new vertex array stays bound")
	elements := lastIndex(rec, func(c gfxtest.Call) bool {
		return c.Name == "BindBuffer" && c.Args[0] == gfx.ElementArrayBuffer
	})
	require.True(t, vao < elements)
	assert.Equal(t, ibID, rec.Calls()[elements].Args[1], "the index buffer is bound into it")

	rec.Reset()
	ctx.Draw(gfx.Triangles)
	assert.Equal(t, []interface{}{gfx.Triangles, 6, gfx.UnsignedShort, 0}, rec.Filter("DrawElements")[0].Args)
}

func TestPipelineAttachError(t *testing.T) {
	rec := gfxtest.NewRecorder()
	rec.CompileLogs["broken"] = "0:1: syntax error"
	ctx := gfx.NewContext(rec)
	p := app.NewPipeline(app.VertexShaderSource, "broken")

	id, err := p.Attach(ctx)
	assert.ErrorIs(t, err, gfx.ErrCompileShader)
	assert.Equal(t, -1, id)
	assert.Nil(t, ctx.ActiveProgram())
}
