//go:build js && wasm

// Package webgl implements gfx.Backend on a browser WebGL2 context.
package webgl

import (
	"fmt"
	"syscall/js"
	"unsafe"

	"github.com/gregjohnson2017/xenogl/pkg/gfx"
)

const (
	compileStatus     = 0x8B81
	linkStatus        = 0x8B82
	texture0          = 0x84C0
	transformFeedback = 0x8E22
)

// Backend issues gfx calls to a WebGL2RenderingContext. WebGL objects are
// JavaScript values; the backend hands out numeric ids for them.
type Backend struct {
	gl js.Value

	objects   map[uint32]js.Value
	next      uint32
	locations map[int32]js.Value
	nextLoc   int32
	current   gfx.ProgramID
}

var _ gfx.Backend = (*Backend)(nil)

// New wraps a WebGL2 context.
func New(gl js.Value) (*Backend, error) {
	if gl.IsUndefined() || gl.IsNull() {
		return nil, fmt.Errorf("webgl2 context is required")
	}
	return &Backend{
		gl:        gl,
		objects:   make(map[uint32]js.Value),
		locations: make(map[int32]js.Value),
	}, nil
}

// FromCanvas gets a WebGL2 context from the canvas element with the given
// id.
func FromCanvas(id string) (*Backend, error) {
	canvas := js.Global().Get("document").Call("getElementById", id)
	if canvas.IsNull() || canvas.IsUndefined() {
		return nil, fmt.Errorf("canvas %q not found", id)
	}
	return New(canvas.Call("getContext", "webgl2"))
}

func (be *Backend) store(v js.Value) uint32 {
	if v.IsNull() || v.IsUndefined() {
		return 0
	}
	be.next++
	be.objects[be.next] = v
	return be.next
}

// object returns the JavaScript object for id, or null for 0.
func (be *Backend) object(id uint32) js.Value {
	if v, ok := be.objects[id]; ok {
		return v
	}
	return js.Null()
}

func (be *Backend) release(id uint32) js.Value {
	v := be.object(id)
	delete(be.objects, id)
	return v
}

func (be *Backend) location(loc int32) js.Value {
	if v, ok := be.locations[loc]; ok {
		return v
	}
	return js.Null()
}

func uint8Array(data []byte) js.Value {
	arr := js.Global().Get("Uint8Array").New(len(data))
	if len(data) > 0 {
		js.CopyBytesToJS(arr, data)
	}
	return arr
}

// typedArray copies data into the typed array WebGL expects for typ.
func typedArray(typ gfx.ElementType, data []byte) js.Value {
	bytes := uint8Array(data)
	var ctor string
	switch typ {
	case gfx.Byte:
		ctor = "Int8Array"
	case gfx.Short:
		ctor = "Int16Array"
	case gfx.UnsignedShort, gfx.HalfFloat:
		ctor = "Uint16Array"
	case gfx.Int:
		ctor = "Int32Array"
	case gfx.UnsignedInt:
		ctor = "Uint32Array"
	case gfx.Float:
		ctor = "Float32Array"
	default:
		return bytes
	}
	return js.Global().Get(ctor).New(bytes.Get("buffer"))
}

func float32Bytes(v []float32) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*4)
}

func (be *Backend) CreateBuffer() gfx.BufferID {
	return gfx.BufferID(be.store(be.gl.Call("createBuffer")))
}

func (be *Backend) BindBuffer(target gfx.Target, b gfx.BufferID) {
	be.gl.Call("bindBuffer", int(target), be.object(uint32(b)))
}

func (be *Backend) BufferData(target gfx.Target, data []byte, usage gfx.Usage) {
	be.gl.Call("bufferData", int(target), uint8Array(data), int(usage))
}

func (be *Backend) BufferDataSize(target gfx.Target, size int, usage gfx.Usage) {
	be.gl.Call("bufferData", int(target), size, int(usage))
}

func (be *Backend) BindBufferBase(target gfx.Target, index uint32, b gfx.BufferID) {
	be.gl.Call("bindBufferBase", int(target), index, be.object(uint32(b)))
}

func (be *Backend) DeleteBuffer(b gfx.BufferID) {
	be.gl.Call("deleteBuffer", be.release(uint32(b)))
}

func (be *Backend) CreateShader(kind gfx.ShaderKind) gfx.ShaderID {
	return gfx.ShaderID(be.store(be.gl.Call("createShader", int(kind))))
}

func (be *Backend) ShaderSource(s gfx.ShaderID, source string) {
	be.gl.Call("shaderSource", be.object(uint32(s)), source)
}

func (be *Backend) CompileShader(s gfx.ShaderID) {
	be.gl.Call("compileShader", be.object(uint32(s)))
}

func (be *Backend) ShaderCompiled(s gfx.ShaderID) bool {
	return be.gl.Call("getShaderParameter", be.object(uint32(s)), compileStatus).Truthy()
}

func (be *Backend) ShaderInfoLog(s gfx.ShaderID) string {
	return be.gl.Call("getShaderInfoLog", be.object(uint32(s))).String()
}

func (be *Backend) DeleteShader(s gfx.ShaderID) {
	be.gl.Call("deleteShader", be.release(uint32(s)))
}

func (be *Backend) CreateProgram() gfx.ProgramID {
	return gfx.ProgramID(be.store(be.gl.Call("createProgram")))
}

func (be *Backend) AttachShader(p gfx.ProgramID, s gfx.ShaderID) {
	be.gl.Call("attachShader", be.object(uint32(p)), be.object(uint32(s)))
}

func (be *Backend) TransformFeedbackVaryings(p gfx.ProgramID, varyings []string, mode gfx.FeedbackMode) {
	names := make([]interface{}, len(varyings))
	for i, v := range varyings {
		names[i] = v
	}
	be.gl.Call("transformFeedbackVaryings", be.object(uint32(p)), js.ValueOf(names), int(mode))
}

func (be *Backend) LinkProgram(p gfx.ProgramID) {
	be.gl.Call("linkProgram", be.object(uint32(p)))
}

func (be *Backend) ProgramLinked(p gfx.ProgramID) bool {
	return be.gl.Call("getProgramParameter", be.object(uint32(p)), linkStatus).Truthy()
}

func (be *Backend) ProgramInfoLog(p gfx.ProgramID) string {
	return be.gl.Call("getProgramInfoLog", be.object(uint32(p))).String()
}

func (be *Backend) UseProgram(p gfx.ProgramID) {
	be.gl.Call("useProgram", be.object(uint32(p)))
	be.current = p
}

func (be *Backend) CurrentProgram() gfx.ProgramID {
	return be.current
}

func (be *Backend) DeleteProgram(p gfx.ProgramID) {
	be.gl.Call("deleteProgram", be.release(uint32(p)))
	if be.current == p {
		be.current = 0
	}
}

func (be *Backend) GetAttribLocation(p gfx.ProgramID, name string) int32 {
	return int32(be.gl.Call("getAttribLocation", be.object(uint32(p)), name).Int())
}

func (be *Backend) EnableVertexAttribArray(index uint32) {
	be.gl.Call("enableVertexAttribArray", index)
}

func (be *Backend) DisableVertexAttribArray(index uint32) {
	be.gl.Call("disableVertexAttribArray", index)
}

func (be *Backend) VertexAttribPointer(index uint32, size int, typ gfx.ElementType, normalized bool, stride, offset int) {
	be.gl.Call("vertexAttribPointer", index, size, int(typ), normalized, stride, offset)
}

// GetUniformLocation returns an id for the WebGLUniformLocation, or -1.
func (be *Backend) GetUniformLocation(p gfx.ProgramID, name string) int32 {
	v := be.gl.Call("getUniformLocation", be.object(uint32(p)), name)
	if v.IsNull() || v.IsUndefined() {
		return -1
	}
	loc := be.nextLoc
	be.nextLoc++
	be.locations[loc] = v
	return loc
}

func (be *Backend) Uniform1f(loc int32, v float32) {
	be.gl.Call("uniform1f", be.location(loc), v)
}

func (be *Backend) Uniform1i(loc int32, v int32) {
	be.gl.Call("uniform1i", be.location(loc), v)
}

func (be *Backend) Uniform1ui(loc int32, v uint32) {
	be.gl.Call("uniform1ui", be.location(loc), v)
}

func (be *Backend) UniformFloats(loc int32, components int, v []float32) {
	be.gl.Call(fmt.Sprintf("uniform%dfv", components), be.location(loc), typedArray(gfx.Float, float32Bytes(v)))
}

func (be *Backend) UniformInts(loc int32, components int, v []int32) {
	be.gl.Call(fmt.Sprintf("uniform%div", components), be.location(loc), typedArray(gfx.Int, gfx.Int32s(v)))
}

func (be *Backend) UniformUints(loc int32, components int, v []uint32) {
	be.gl.Call(fmt.Sprintf("uniform%duiv", components), be.location(loc), typedArray(gfx.UnsignedInt, gfx.Uint32s(v)))
}

func (be *Backend) UniformMatrix(loc int32, dim int, v []float32) {
	be.gl.Call(fmt.Sprintf("uniformMatrix%dfv", dim), be.location(loc), false, typedArray(gfx.Float, float32Bytes(v)))
}

func (be *Backend) GetUniformBlockIndex(p gfx.ProgramID, name string) uint32 {
	return uint32(be.gl.Call("getUniformBlockIndex", be.object(uint32(p)), name).Int())
}

func (be *Backend) UniformBlockBinding(p gfx.ProgramID, blockIndex, binding uint32) {
	be.gl.Call("uniformBlockBinding", be.object(uint32(p)), blockIndex, binding)
}

func (be *Backend) CreateVertexArray() gfx.VertexArrayID {
	return gfx.VertexArrayID(be.store(be.gl.Call("createVertexArray")))
}

func (be *Backend) BindVertexArray(v gfx.VertexArrayID) {
	be.gl.Call("bindVertexArray", be.object(uint32(v)))
}

func (be *Backend) DeleteVertexArray(v gfx.VertexArrayID) {
	be.gl.Call("deleteVertexArray", be.release(uint32(v)))
}

func (be *Backend) DrawArrays(mode gfx.DrawMode, first, count int) {
	be.gl.Call("drawArrays", int(mode), first, count)
}

func (be *Backend) DrawElements(mode gfx.DrawMode, count int, typ gfx.ElementType, offset int) {
	be.gl.Call("drawElements", int(mode), count, int(typ), offset)
}

func (be *Backend) Clear(mask gfx.ClearMask) {
	be.gl.Call("clear", int(mask))
}

func (be *Backend) ClearColor(r, g, b, a float32) {
	be.gl.Call("clearColor", r, g, b, a)
}

func (be *Backend) Enable(c gfx.Capability) {
	be.gl.Call("enable", int(c))
}

func (be *Backend) Disable(c gfx.Capability) {
	be.gl.Call("disable", int(c))
}

func (be *Backend) Viewport(x, y, width, height int) {
	be.gl.Call("viewport", x, y, width, height)
}

func (be *Backend) CreateTexture() gfx.TextureID {
	return gfx.TextureID(be.store(be.gl.Call("createTexture")))
}

func (be *Backend) ActiveTexture(unit int) {
	be.gl.Call("activeTexture", texture0+unit)
}

func (be *Backend) BindTexture(target gfx.TextureTarget, t gfx.TextureID) {
	be.gl.Call("bindTexture", int(target), be.object(uint32(t)))
}

func (be *Backend) TexImage2D(target gfx.TextureTarget, level int, internalFormat gfx.PixelFormat, width, height int, format gfx.PixelFormat, typ gfx.ElementType, pix []byte) {
	pixels := js.Null()
	if len(pix) > 0 {
		pixels = typedArray(typ, pix)
	}
	be.gl.Call("texImage2D", int(target), level, int(internalFormat), width, height, 0, int(format), int(typ), pixels)
}

func (be *Backend) GenerateMipmap(target gfx.TextureTarget) {
	be.gl.Call("generateMipmap", int(target))
}

func (be *Backend) TexParameteri(target gfx.TextureTarget, param gfx.TextureParam, value int32) {
	be.gl.Call("texParameteri", int(target), int(param), value)
}

func (be *Backend) DeleteTexture(t gfx.TextureID) {
	be.gl.Call("deleteTexture", be.release(uint32(t)))
}

func (be *Backend) CreateTransformFeedback() gfx.TransformFeedbackID {
	return gfx.TransformFeedbackID(be.store(be.gl.Call("createTransformFeedback")))
}

func (be *Backend) BindTransformFeedback(tf gfx.TransformFeedbackID) {
	be.gl.Call("bindTransformFeedback", transformFeedback, be.object(uint32(tf)))
}

func (be *Backend) BeginTransformFeedback(mode gfx.DrawMode) {
	be.gl.Call("beginTransformFeedback", int(mode))
}

func (be *Backend) EndTransformFeedback() {
	be.gl.Call("endTransformFeedback")
}

func (be *Backend) DeleteTransformFeedback(tf gfx.TransformFeedbackID) {
	be.gl.Call("deleteTransformFeedback", be.release(uint32(tf)))
}
