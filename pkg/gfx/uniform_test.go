package gfx_test

import (
	"testing"

	"github.com/gregjohnson2017/xenogl/pkg/gfx"
	"github.com/gregjohnson2017/xenogl/pkg/gfx/gfxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformDeferredWrite(t *testing.T) {
	rec := gfxtest.NewRecorder()
	p := newProgram()
	u := gfx.NewUniform("time")
	require.NoError(t, p.AttachUniform(u))

	u.SetFloat(1)
	u.SetFloat(2.5)
	require.NotNil(t, u.Pending())
	assert.Equal(t, gfx.CallScalar, u.Pending().Call)
	assert.Equal(t, int32(-1), u.Location())
	assert.Empty(t, rec.Calls())

	require.NoError(t, p.Link(rec))
	require.True(t, u.Located())
	assert.Nil(t, u.Pending())
	calls := rec.Filter("Uniform1f")
	require.Len(t, calls, 1, "only the latest write is replayed")
	assert.Equal(t, []interface{}{u.Location(), float32(2.5)}, calls[0].Args)

	require.NoError(t, p.Link(rec))
	assert.Equal(t, 1, rec.Count("Uniform1f"), "a second link does not replay")
}

func TestUniformUsesOwningProgram(t *testing.T) {
	rec := gfxtest.NewRecorder()
	p := linkedProgram(t, rec)
	u := gfx.NewUniform("scale")
	require.NoError(t, p.AttachUniform(u))
	id, err := p.Handle()
	require.NoError(t, err)

	rec.Reset()
	u.SetInt(3)
	assert.Equal(t, []string{"UseProgram", "Uniform1i", "UseProgram"}, rec.Names())
	assert.Equal(t, []interface{}{id}, rec.Calls()[0].Args)
	assert.Equal(t, []interface{}{gfx.ProgramID(0)}, rec.Calls()[2].Args)

	rec.UseProgram(id)
	rec.Reset()
	u.SetUint(4)
	assert.Equal(t, []string{"Uniform1ui"}, rec.Names(), "no switch when the owner is in use")
}

func TestUniformVector(t *testing.T) {
	rec := gfxtest.NewRecorder()
	p := linkedProgram(t, rec)
	u := gfx.NewUniform("color")
	require.NoError(t, p.AttachUniform(u))

	require.NoError(t, u.SetVector(gfx.Floats{1, 0.5, 0}))
	require.NoError(t, u.SetVector(gfx.Ints{1, 2}))
	require.NoError(t, u.SetVector(gfx.Uints{1, 2, 3, 4}))
	require.NoError(t, u.SetVector1(gfx.Floats{9}))
	assert.Equal(t, []interface{}{u.Location(), []float32{1, 0.5, 0}}, rec.Filter("Uniform3fv")[0].Args)
	assert.Equal(t, 1, rec.Count("Uniform2iv"))
	assert.Equal(t, 1, rec.Count("Uniform4uiv"))
	assert.Equal(t, 1, rec.Count("Uniform1fv"))

	err := u.SetVector(gfx.Floats{})
	assert.ErrorIs(t, err, gfx.ErrInvalidArity)
	err = u.SetVector(gfx.Floats{1, 2, 3, 4, 5})
	assert.ErrorIs(t, err, gfx.ErrInvalidArity)
}

func TestUniformMatrix(t *testing.T) {
	rec := gfxtest.NewRecorder()
	p := linkedProgram(t, rec)
	u := gfx.NewUniform("transform")
	require.NoError(t, p.AttachUniform(u))

	identity := []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	require.NoError(t, u.SetMatrix(identity))
	require.NoError(t, u.SetMatrix(make([]float32, 9)))
	require.NoError(t, u.SetMatrix(make([]float32, 4)))
	assert.Equal(t, []interface{}{u.Location(), identity}, rec.Filter("UniformMatrix4fv")[0].Args)
	assert.Equal(t, 1, rec.Count("UniformMatrix3fv"))
	assert.Equal(t, 1, rec.Count("UniformMatrix2fv"))

	for _, n := range []int{0, 6, 10} {
		err := u.SetMatrix(make([]float32, n))
		assert.ErrorIs(t, err, gfx.ErrAmbiguousMatrixShape, "%d elements", n)
	}
	assert.Equal(t, 3, rec.Count("UseProgram")/2, "rejected writes issue nothing")
}

func TestUniformFixedWidth(t *testing.T) {
	rec := gfxtest.NewRecorder()
	p := linkedProgram(t, rec)
	u := gfx.NewUniform("offsets")
	require.NoError(t, p.AttachUniform(u))
	rec.Reset()

	assert.ErrorIs(t, u.SetVector2(gfx.Floats{}), gfx.ErrInvalidArity)
	assert.ErrorIs(t, u.SetVector3(gfx.Ints{1, 2}), gfx.ErrInvalidArity)
	assert.ErrorIs(t, u.SetVector4(gfx.Uints{1, 2, 3, 4, 5}), gfx.ErrInvalidArity)
	assert.ErrorIs(t, u.SetMatrix4(make([]float32, 9)), gfx.ErrAmbiguousMatrixShape)
	assert.ErrorIs(t, u.SetMatrix3(nil), gfx.ErrAmbiguousMatrixShape)
	assert.Empty(t, rec.Calls(), "rejected writes issue nothing")
	assert.Nil(t, u.Pending())

	require.NoError(t, u.SetVector2(gfx.Floats{0, 1, 2, 3}))
	require.NoError(t, u.SetMatrix2(make([]float32, 8)))
	calls := rec.Filter("Uniform2fv")
	require.Len(t, calls, 1)
	assert.Equal(t, []interface{}{u.Location(), []float32{0, 1, 2, 3}}, calls[0].Args, "an array of two vec2")
	assert.Equal(t, 1, rec.Count("UniformMatrix2fv"))
}

func TestUniformMissing(t *testing.T) {
	rec := gfxtest.NewRecorder()
	rec.Missing["unused"] = true
	p := newProgram()
	u := gfx.NewUniform("unused")
	require.NoError(t, p.AttachUniform(u))
	u.SetFloat(1)

	require.NoError(t, p.Link(rec))
	assert.False(t, u.Located())
	assert.Equal(t, 1, p.Resolved().Uniforms)
	assert.Equal(t, 0, rec.Count("Uniform1f"))
	assert.NotNil(t, u.Pending(), "writes to an unlocated uniform stay pending")
}
