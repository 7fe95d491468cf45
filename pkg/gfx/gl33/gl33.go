//go:build !js

// Package gl33 implements gfx.Backend on desktop OpenGL 3.3 core profile.
package gl33

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/gregjohnson2017/xenogl/pkg/gfx"
	"github.com/gregjohnson2017/xenogl/pkg/log"
)

// Backend issues gfx calls to the OpenGL context current on the calling
// thread. It must only be used from that thread.
type Backend struct {
	current gfx.ProgramID
}

var _ gfx.Backend = (*Backend)(nil)

// New loads the OpenGL function pointers. A context must be current.
func New() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	log.Infof("OpenGL version %v", gl.GoStr(gl.GetString(gl.VERSION)))
	var current int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &current)
	return &Backend{current: gfx.ProgramID(current)}, nil
}

func cstr(s string) *uint8 {
	return gl.Str(s + "\x00")
}

func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

func (*Backend) CreateBuffer() gfx.BufferID {
	var id uint32
	gl.GenBuffers(1, &id)
	return gfx.BufferID(id)
}

func (*Backend) BindBuffer(target gfx.Target, b gfx.BufferID) {
	gl.BindBuffer(uint32(target), uint32(b))
}

func (*Backend) BufferData(target gfx.Target, data []byte, usage gfx.Usage) {
	gl.BufferData(uint32(target), len(data), ptr(data), uint32(usage))
}

func (*Backend) BufferDataSize(target gfx.Target, size int, usage gfx.Usage) {
	gl.BufferData(uint32(target), size, nil, uint32(usage))
}

func (*Backend) BindBufferBase(target gfx.Target, index uint32, b gfx.BufferID) {
	gl.BindBufferBase(uint32(target), index, uint32(b))
}

func (*Backend) DeleteBuffer(b gfx.BufferID) {
	id := uint32(b)
	gl.DeleteBuffers(1, &id)
}

func (*Backend) CreateShader(kind gfx.ShaderKind) gfx.ShaderID {
	return gfx.ShaderID(gl.CreateShader(uint32(kind)))
}

func (*Backend) ShaderSource(s gfx.ShaderID, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(s), 1, csources, nil)
	free()
}

func (*Backend) CompileShader(s gfx.ShaderID) {
	gl.CompileShader(uint32(s))
}

func (*Backend) ShaderCompiled(s gfx.ShaderID) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (*Backend) ShaderInfoLog(s gfx.ShaderID) string {
	var logLength int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLength)
	info := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(uint32(s), logLength, nil, gl.Str(info))
	return strings.TrimRight(info, "\x00")
}

func (*Backend) DeleteShader(s gfx.ShaderID) {
	gl.DeleteShader(uint32(s))
}

func (*Backend) CreateProgram() gfx.ProgramID {
	return gfx.ProgramID(gl.CreateProgram())
}

func (*Backend) AttachShader(p gfx.ProgramID, s gfx.ShaderID) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (*Backend) TransformFeedbackVaryings(p gfx.ProgramID, varyings []string, mode gfx.FeedbackMode) {
	terminated := make([]string, len(varyings))
	for i, v := range varyings {
		terminated[i] = v + "\x00"
	}
	cvaryings, free := gl.Strs(terminated...)
	gl.TransformFeedbackVaryings(uint32(p), int32(len(varyings)), cvaryings, uint32(mode))
	free()
}

func (*Backend) LinkProgram(p gfx.ProgramID) {
	gl.LinkProgram(uint32(p))
}

func (*Backend) ProgramLinked(p gfx.ProgramID) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (*Backend) ProgramInfoLog(p gfx.ProgramID) string {
	var logLength int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLength)
	info := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(uint32(p), logLength, nil, gl.Str(info))
	return strings.TrimRight(info, "\x00")
}

func (be *Backend) UseProgram(p gfx.ProgramID) {
	gl.UseProgram(uint32(p))
	be.current = p
}

func (be *Backend) CurrentProgram() gfx.ProgramID {
	return be.current
}

func (be *Backend) DeleteProgram(p gfx.ProgramID) {
	gl.DeleteProgram(uint32(p))
	if be.current == p {
		be.current = 0
	}
}

func (*Backend) GetAttribLocation(p gfx.ProgramID, name string) int32 {
	return gl.GetAttribLocation(uint32(p), cstr(name))
}

func (*Backend) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (*Backend) DisableVertexAttribArray(index uint32) {
	gl.DisableVertexAttribArray(index)
}

func (*Backend) VertexAttribPointer(index uint32, size int, typ gfx.ElementType, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(index, int32(size), uint32(typ), normalized, int32(stride), gl.PtrOffset(offset))
}

func (*Backend) GetUniformLocation(p gfx.ProgramID, name string) int32 {
	return gl.GetUniformLocation(uint32(p), cstr(name))
}

func (*Backend) Uniform1f(loc int32, v float32) {
	gl.Uniform1f(loc, v)
}

func (*Backend) Uniform1i(loc int32, v int32) {
	gl.Uniform1i(loc, v)
}

func (*Backend) Uniform1ui(loc int32, v uint32) {
	gl.Uniform1ui(loc, v)
}

func (*Backend) UniformFloats(loc int32, components int, v []float32) {
	count := int32(len(v) / components)
	switch components {
	case 1:
		gl.Uniform1fv(loc, count, &v[0])
	case 2:
		gl.Uniform2fv(loc, count, &v[0])
	case 3:
		gl.Uniform3fv(loc, count, &v[0])
	case 4:
		gl.Uniform4fv(loc, count, &v[0])
	}
}

func (*Backend) UniformInts(loc int32, components int, v []int32) {
	count := int32(len(v) / components)
	switch components {
	case 1:
		gl.Uniform1iv(loc, count, &v[0])
	case 2:
		gl.Uniform2iv(loc, count, &v[0])
	case 3:
		gl.Uniform3iv(loc, count, &v[0])
	case 4:
		gl.Uniform4iv(loc, count, &v[0])
	}
}

func (*Backend) UniformUints(loc int32, components int, v []uint32) {
	count := int32(len(v) / components)
	switch components {
	case 1:
		gl.Uniform1uiv(loc, count, &v[0])
	case 2:
		gl.Uniform2uiv(loc, count, &v[0])
	case 3:
		gl.Uniform3uiv(loc, count, &v[0])
	case 4:
		gl.Uniform4uiv(loc, count, &v[0])
	}
}

func (*Backend) UniformMatrix(loc int32, dim int, v []float32) {
	count := int32(len(v) / (dim * dim))
	switch dim {
	case 2:
		gl.UniformMatrix2fv(loc, count, false, &v[0])
	case 3:
		gl.UniformMatrix3fv(loc, count, false, &v[0])
	case 4:
		gl.UniformMatrix4fv(loc, count, false, &v[0])
	}
}

func (*Backend) GetUniformBlockIndex(p gfx.ProgramID, name string) uint32 {
	return gl.GetUniformBlockIndex(uint32(p), cstr(name))
}

func (*Backend) UniformBlockBinding(p gfx.ProgramID, blockIndex, binding uint32) {
	gl.UniformBlockBinding(uint32(p), blockIndex, binding)
}

func (*Backend) CreateVertexArray() gfx.VertexArrayID {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return gfx.VertexArrayID(id)
}

func (*Backend) BindVertexArray(v gfx.VertexArrayID) {
	gl.BindVertexArray(uint32(v))
}

func (*Backend) DeleteVertexArray(v gfx.VertexArrayID) {
	id := uint32(v)
	gl.DeleteVertexArrays(1, &id)
}

func (*Backend) DrawArrays(mode gfx.DrawMode, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (*Backend) DrawElements(mode gfx.DrawMode, count int, typ gfx.ElementType, offset int) {
	gl.DrawElements(uint32(mode), int32(count), uint32(typ), gl.PtrOffset(offset))
}

func (*Backend) Clear(mask gfx.ClearMask) {
	gl.Clear(uint32(mask))
}

func (*Backend) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (*Backend) Enable(c gfx.Capability) {
	gl.Enable(uint32(c))
}

func (*Backend) Disable(c gfx.Capability) {
	gl.Disable(uint32(c))
}

func (*Backend) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (*Backend) CreateTexture() gfx.TextureID {
	var id uint32
	gl.GenTextures(1, &id)
	return gfx.TextureID(id)
}

func (*Backend) ActiveTexture(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
}

func (*Backend) BindTexture(target gfx.TextureTarget, t gfx.TextureID) {
	gl.BindTexture(uint32(target), uint32(t))
}

func (*Backend) TexImage2D(target gfx.TextureTarget, level int, internalFormat gfx.PixelFormat, width, height int, format gfx.PixelFormat, typ gfx.ElementType, pix []byte) {
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0,
		uint32(format), uint32(typ), ptr(pix))
}

func (*Backend) GenerateMipmap(target gfx.TextureTarget) {
	gl.GenerateMipmap(uint32(target))
}

func (*Backend) TexParameteri(target gfx.TextureTarget, param gfx.TextureParam, value int32) {
	gl.TexParameteri(uint32(target), uint32(param), value)
}

func (*Backend) DeleteTexture(t gfx.TextureID) {
	id := uint32(t)
	gl.DeleteTextures(1, &id)
}

func (*Backend) CreateTransformFeedback() gfx.TransformFeedbackID {
	var id uint32
	gl.GenTransformFeedbacks(1, &id)
	return gfx.TransformFeedbackID(id)
}

func (*Backend) BindTransformFeedback(tf gfx.TransformFeedbackID) {
	gl.BindTransformFeedback(gl.TRANSFORM_FEEDBACK, uint32(tf))
}

func (*Backend) BeginTransformFeedback(mode gfx.DrawMode) {
	gl.BeginTransformFeedback(uint32(mode))
}

func (*Backend) EndTransformFeedback() {
	gl.EndTransformFeedback()
}

func (*Backend) DeleteTransformFeedback(tf gfx.TransformFeedbackID) {
	id := uint32(tf)
	gl.DeleteTransformFeedbacks(1, &id)
}
