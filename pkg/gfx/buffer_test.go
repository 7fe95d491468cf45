package gfx_test

import (
	"testing"

	"github.com/gregjohnson2017/xenogl/pkg/gfx"
	"github.com/gregjohnson2017/xenogl/pkg/gfx/gfxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttribute(t *testing.T) {
	a := gfx.NewAttribute("position", 3)
	assert.Equal(t, "position", a.Name())
	assert.Equal(t, 3, a.Size())
	assert.True(t, a.Equal(gfx.NewAttribute("position", 3)))
	assert.False(t, a.Equal(gfx.NewAttribute("position", 2)))
	assert.Equal(t, `Attribute("position", size:3)`, a.String())
	assert.Panics(t, func() { gfx.NewAttribute("empty", 0) })
}

func TestBufferDefaults(t *testing.T) {
	vb := quadBuffer()
	assert.Equal(t, gfx.KindVertex, vb.Kind())
	assert.Equal(t, gfx.Float, vb.ElementType())
	assert.Equal(t, gfx.StaticDraw, vb.Usage())
	assert.Equal(t, 5, vb.Stride())
	assert.False(t, vb.Initialized())
	assert.Nil(t, vb.Data(), "nothing is uploaded before initialization")
	assert.Equal(t, 0, vb.Len())

	ib := gfx.NewIndexBuffer(gfx.BufferConfig{})
	assert.Equal(t, gfx.UnsignedShort, ib.ElementType())
	assert.Equal(t, 0, ib.ElementCount())

	_, err := vb.Handle()
	assert.ErrorIs(t, err, gfx.ErrNotInitialized)
}

func TestBufferAttributeLayout(t *testing.T) {
	rec := gfxtest.NewRecorder()
	p := linkedProgram(t, rec)
	vb := gfx.NewVertexBuffer(gfx.BufferConfig{
		Attributes: []gfx.Attribute{
			gfx.NewAttribute("pos", 3),
			gfx.NewAttribute("color", 2),
		},
	})
	require.NoError(t, p.AttachBuffer(vb))

	pointers := rec.Filter("VertexAttribPointer")
	require.Len(t, pointers, 2)
	assert.Equal(t, []interface{}{uint32(0), 3, gfx.Float, false, 20, 0}, pointers[0].Args)
	assert.Equal(t, []interface{}{uint32(1), 2, gfx.Float, false, 20, 12}, pointers[1].Args)
	assert.Equal(t, 2, rec.Count("EnableVertexAttribArray"))
}

func TestBufferUpload(t *testing.T) {
	rec := gfxtest.NewRecorder()
	p := linkedProgram(t, rec)
	vb := quadBuffer()
	require.NoError(t, p.AttachBuffer(vb))

	require.True(t, vb.Initialized())
	assert.Nil(t, vb.Pending())
	assert.Equal(t, 20, vb.Len())
	assert.Equal(t, 4, vb.ElementCount())
	require.Equal(t, 1, rec.Count("BufferData"))

	id, err := vb.Handle()
	require.NoError(t, err)
	rec.Reset()
	vb.BufferData(gfx.Float32s([]float32{0, 0, 0, 0, 0}))
	assert.Equal(t, []string{"BindBuffer", "BufferData", "BindBuffer"}, rec.Names())
	assert.Equal(t, []interface{}{gfx.ArrayBuffer, id}, rec.Calls()[0].Args)
	assert.Equal(t, 1, vb.ElementCount())
}

func TestBufferReserveLength(t *testing.T) {
	rec := gfxtest.NewRecorder()
	p := linkedProgram(t, rec)
	ub := gfx.NewUniformBuffer(gfx.BufferConfig{Payload: gfx.Length(64), Usage: gfx.DynamicDraw})
	require.NoError(t, p.AttachBuffer(ub))

	calls := rec.Filter("BufferDataSize")
	require.Len(t, calls, 1)
	assert.Equal(t, []interface{}{gfx.UniformBuffer, 64, gfx.DynamicDraw}, calls[0].Args)
	assert.Nil(t, ub.Data())
}

func TestBufferActivate(t *testing.T) {
	rec := gfxtest.NewRecorder()
	vb := quadBuffer()
	vb.Activate()
	vb.Deactivate()
	assert.Empty(t, rec.Calls(), "an uninitialized buffer has nothing to activate")

	p := linkedProgram(t, rec)
	require.NoError(t, p.AttachBuffer(vb))
	rec.Reset()

	p.Activate()
	assert.Equal(t, 2, rec.Count("EnableVertexAttribArray"))
	assert.Equal(t, 2, rec.Count("VertexAttribPointer"))
	p.Deactivate()
	assert.Equal(t, 2, rec.Count("DisableVertexAttribArray"))
}

func TestBufferMissingAttribute(t *testing.T) {
	rec := gfxtest.NewRecorder()
	rec.Missing["normal"] = true
	p := linkedProgram(t, rec)
	vb := gfx.NewVertexBuffer(gfx.BufferConfig{
		Attributes: []gfx.Attribute{gfx.NewAttribute("normal", 3)},
	})

	err := p.AttachBuffer(vb)
	var attrErr *gfx.AttributeResolutionError
	require.ErrorAs(t, err, &attrErr)
	assert.Equal(t, "normal", attrErr.Name)
	assert.ErrorIs(t, err, gfx.ErrAttributeNotFound)
	assert.False(t, vb.Initialized())
	assert.Equal(t, 1, rec.Count("DeleteBuffer"))
	assert.Empty(t, p.Buffers())
}

func TestBufferDelete(t *testing.T) {
	rec := gfxtest.NewRecorder()
	vb := quadBuffer()
	require.NoError(t, linkedProgram(t, rec).AttachBuffer(vb))

	vb.Delete()
	assert.False(t, vb.Initialized())
	assert.Nil(t, vb.Data())
	assert.Equal(t, gfx.Float32s(quad()), vb.Pending(), "the last upload is replayed on the next initialization")
	assert.Equal(t, 1, rec.Count("DeleteBuffer"))

	vb.Delete()
	assert.Equal(t, 1, rec.Count("DeleteBuffer"))

	require.NoError(t, linkedProgram(t, rec).AttachBuffer(vb))
	assert.True(t, vb.Initialized())
	assert.Equal(t, 4, vb.ElementCount())
}

func TestDataHelpers(t *testing.T) {
	assert.Len(t, gfx.Float32s([]float32{1, 2, 3}), 12)
	assert.Len(t, gfx.Int32s([]int32{1}), 4)
	assert.Len(t, gfx.Uint32s([]uint32{1, 2}), 8)
	assert.Len(t, gfx.Uint16s([]uint16{1, 2, 3}), 6)
	assert.Empty(t, gfx.Float32s(nil))
	assert.NotNil(t, gfx.Float32s(nil))
}
