package gfx_test

import (
	"testing"

	"github.com/gregjohnson2017/xenogl/pkg/gfx"
	"github.com/gregjohnson2017/xenogl/pkg/gfx/gfxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotentInitialization(t *testing.T) {
	t.Run("buffer", func(t *testing.T) {
		rec := gfxtest.NewRecorder()
		p := linkedProgram(t, rec)
		vb := quadBuffer()
		require.NoError(t, p.AttachBuffer(vb))
		first, err := vb.Handle()
		require.NoError(t, err)
		require.NoError(t, p.AttachBuffer(vb))
		second, err := vb.Handle()
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, rec.Count("CreateBuffer"))
		assert.Equal(t, 1, rec.Count("BufferData"))
		assert.Len(t, p.Buffers(), 1)
	})
	t.Run("uniform", func(t *testing.T) {
		rec := gfxtest.NewRecorder()
		p := linkedProgram(t, rec)
		u := gfx.NewUniform("time")
		require.NoError(t, p.AttachUniform(u))
		require.NoError(t, p.AttachUniform(u))
		assert.Equal(t, 1, rec.Count("GetUniformLocation"))
		assert.Equal(t, 1, p.Resolved().Uniforms)
	})
	t.Run("vertex array", func(t *testing.T) {
		rec := gfxtest.NewRecorder()
		p := newProgram()
		vao := gfx.NewVertexArrayObject(quadBuffer(), gfx.VAOConfig{})
		require.NoError(t, p.AttachVertexArrayObject(vao))
		require.NoError(t, p.AttachVertexArrayObject(vao))
		require.NoError(t, p.Link(rec))
		first, err := vao.Handle()
		require.NoError(t, err)
		require.NoError(t, p.AttachVertexArrayObject(vao))
		second, _ := vao.Handle()
		assert.Equal(t, first, second)
		assert.Equal(t, 1, rec.Count("CreateVertexArray"))
		assert.Equal(t, 1, p.Resolved().VertexArrayObjects)
	})
	t.Run("uniform buffer object", func(t *testing.T) {
		rec := gfxtest.NewRecorder()
		p := linkedProgram(t, rec)
		ubo := gfx.NewUniformBufferObject("Camera", nil)
		require.NoError(t, p.AttachUniformBufferObject(ubo))
		require.NoError(t, p.AttachUniformBufferObject(ubo))
		binding, _ := ubo.Binding()
		assert.Equal(t, 0, binding)
		assert.Equal(t, 1, rec.Count("GetUniformBlockIndex"))
		assert.Len(t, p.UniformBufferObjects(), 1)
	})
	t.Run("shader", func(t *testing.T) {
		rec := gfxtest.NewRecorder()
		vs := gfx.NewVertexShader(vertexSource)
		_, err := vs.Handle()
		assert.ErrorIs(t, err, gfx.ErrNotInitialized)
		require.NoError(t, gfx.NewProgram(vs, gfx.NewFragmentShader(fragmentSource)).Link(rec))
		require.NoError(t, gfx.NewProgram(vs, gfx.NewFragmentShader(fragmentSource)).Link(rec))
		assert.Equal(t, 3, rec.Count("CompileShader"), "the shared vertex shader compiles once")
		assert.Equal(t, gfx.VertexShader, vs.Kind())
		assert.Equal(t, vertexSource, vs.Source())
	})
	t.Run("texture", func(t *testing.T) {
		rec := gfxtest.NewRecorder()
		ctx := gfx.NewContext(rec)
		tex := gfx.NewTexture2D(make([]byte, 4), 1, 1, gfx.TextureOptions{})
		assert.Equal(t, 0, ctx.AddTexture(tex))
		assert.Equal(t, 0, ctx.AddTexture(tex))
		assert.Equal(t, 1, rec.Count("CreateTexture"))
	})
	t.Run("transform feedback", func(t *testing.T) {
		rec := gfxtest.NewRecorder()
		ctx := gfx.NewContext(rec)
		tf := gfx.NewTransformFeedback()
		ctx.AddTransformFeedback(tf)
		ctx.AddTransformFeedback(tf)
		assert.Equal(t, 1, rec.Count("CreateTransformFeedback"))
	})
}
