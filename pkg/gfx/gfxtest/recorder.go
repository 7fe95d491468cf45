// Package gfxtest provides a gfx.Backend that records calls instead of
// talking to a GPU, for testing code built on package gfx.
package gfxtest

import (
	"fmt"
	"strings"

	"github.com/gregjohnson2017/xenogl/pkg/gfx"
)

// Call is one recorded backend call.
type Call struct {
	Name string
	Args []interface{}
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// Recorder is a gfx.Backend that records every call. Every shader compiles
// and every program links unless told otherwise, and every attribute,
// uniform and uniform block name resolves unless listed in Missing.
type Recorder struct {
	// CompileLogs fails compilation of any shader whose source is a key,
	// with the value as the info log.
	CompileLogs map[string]string
	// LinkLog, when set, fails every link with it as the info log.
	LinkLog string
	// Missing names are not declared by any program.
	Missing map[string]bool

	calls     []Call
	next      uint32
	sources   map[gfx.ShaderID]string
	linked    map[gfx.ProgramID]bool
	locations map[string]int32
	current   gfx.ProgramID
}

var _ gfx.Backend = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{
		CompileLogs: make(map[string]string),
		Missing:     make(map[string]bool),
		sources:     make(map[gfx.ShaderID]string),
		linked:      make(map[gfx.ProgramID]bool),
		locations:   make(map[string]int32),
	}
}

func (r *Recorder) record(name string, args ...interface{}) {
	r.calls = append(r.calls, Call{Name: name, Args: args})
}

func (r *Recorder) id() uint32 {
	r.next++
	return r.next
}

// location returns a stable location per name, or -1 for a missing name.
func (r *Recorder) location(name string) int32 {
	if r.Missing[name] {
		return -1
	}
	loc, ok := r.locations[name]
	if !ok {
		loc = int32(len(r.locations))
		r.locations[name] = loc
	}
	return loc
}

// Calls returns every recorded call in order.
func (r *Recorder) Calls() []Call {
	return r.calls
}

// Names returns the name of every recorded call in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.calls))
	for i, c := range r.calls {
		names[i] = c.Name
	}
	return names
}

// Filter returns the recorded calls with the given name.
func (r *Recorder) Filter(name string) []Call {
	var out []Call
	for _, c := range r.calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many calls with the given name were recorded.
func (r *Recorder) Count(name string) int {
	return len(r.Filter(name))
}

// Index returns the position of the first call with the given name, or -1.
func (r *Recorder) Index(name string) int {
	for i, c := range r.calls {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Reset forgets the recorded calls but keeps object and location state.
func (r *Recorder) Reset() {
	r.calls = nil
}

func (r *Recorder) CreateBuffer() gfx.BufferID {
	id := gfx.BufferID(r.id())
	r.record("CreateBuffer", id)
	return id
}

func (r *Recorder) BindBuffer(target gfx.Target, b gfx.BufferID) {
	r.record("BindBuffer", target, b)
}

func (r *Recorder) BufferData(target gfx.Target, data []byte, usage gfx.Usage) {
	r.record("BufferData", target, append([]byte(nil), data...), usage)
}

func (r *Recorder) BufferDataSize(target gfx.Target, size int, usage gfx.Usage) {
	r.record("BufferDataSize", target, size, usage)
}

func (r *Recorder) BindBufferBase(target gfx.Target, index uint32, b gfx.BufferID) {
	r.record("BindBufferBase", target, index, b)
}

func (r *Recorder) DeleteBuffer(b gfx.BufferID) {
	r.record("DeleteBuffer", b)
}

func (r *Recorder) CreateShader(kind gfx.ShaderKind) gfx.ShaderID {
	id := gfx.ShaderID(r.id())
	r.record("CreateShader", kind, id)
	return id
}

func (r *Recorder) ShaderSource(s gfx.ShaderID, source string) {
	r.sources[s] = source
	r.record("ShaderSource", s, source)
}

func (r *Recorder) CompileShader(s gfx.ShaderID) {
	r.record("CompileShader", s)
}

func (r *Recorder) ShaderCompiled(s gfx.ShaderID) bool {
	_, failed := r.CompileLogs[r.sources[s]]
	return !failed
}

func (r *Recorder) ShaderInfoLog(s gfx.ShaderID) string {
	return r.CompileLogs[r.sources[s]]
}

func (r *Recorder) DeleteShader(s gfx.ShaderID) {
	delete(r.sources, s)
	r.record("DeleteShader", s)
}

func (r *Recorder) CreateProgram() gfx.ProgramID {
	id := gfx.ProgramID(r.id())
	r.record("CreateProgram", id)
	return id
}

func (r *Recorder) AttachShader(p gfx.ProgramID, s gfx.ShaderID) {
	r.record("AttachShader", p, s)
}

func (r *Recorder) TransformFeedbackVaryings(p gfx.ProgramID, varyings []string, mode gfx.FeedbackMode) {
	r.record("TransformFeedbackVaryings", p, varyings, mode)
}

func (r *Recorder) LinkProgram(p gfx.ProgramID) {
	r.linked[p] = r.LinkLog == ""
	r.record("LinkProgram", p)
}

func (r *Recorder) ProgramLinked(p gfx.ProgramID) bool {
	return r.linked[p]
}

func (r *Recorder) ProgramInfoLog(p gfx.ProgramID) string {
	if r.linked[p] {
		return ""
	}
	return r.LinkLog
}

func (r *Recorder) UseProgram(p gfx.ProgramID) {
	r.current = p
	r.record("UseProgram", p)
}

func (r *Recorder) CurrentProgram() gfx.ProgramID {
	return r.current
}

func (r *Recorder) DeleteProgram(p gfx.ProgramID) {
	delete(r.linked, p)
	r.record("DeleteProgram", p)
}

func (r *Recorder) GetAttribLocation(p gfx.ProgramID, name string) int32 {
	loc := r.location(name)
	r.record("GetAttribLocation", p, name)
	return loc
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray", index)
}

func (r *Recorder) DisableVertexAttribArray(index uint32) {
	r.record("DisableVertexAttribArray", index)
}

func (r *Recorder) VertexAttribPointer(index uint32, size int, typ gfx.ElementType, normalized bool, stride, offset int) {
	r.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
}

func (r *Recorder) GetUniformLocation(p gfx.ProgramID, name string) int32 {
	loc := r.location(name)
	r.record("GetUniformLocation", p, name)
	return loc
}

func (r *Recorder) Uniform1f(loc int32, v float32) {
	r.record("Uniform1f", loc, v)
}

func (r *Recorder) Uniform1i(loc int32, v int32) {
	r.record("Uniform1i", loc, v)
}

func (r *Recorder) Uniform1ui(loc int32, v uint32) {
	r.record("Uniform1ui", loc, v)
}

func (r *Recorder) UniformFloats(loc int32, components int, v []float32) {
	r.record(fmt.Sprintf("Uniform%dfv", components), loc, append([]float32(nil), v...))
}

func (r *Recorder) UniformInts(loc int32, components int, v []int32) {
	r.record(fmt.Sprintf("Uniform%div", components), loc, append([]int32(nil), v...))
}

func (r *Recorder) UniformUints(loc int32, components int, v []uint32) {
	r.record(fmt.Sprintf("Uniform%duiv", components), loc, append([]uint32(nil), v...))
}

func (r *Recorder) UniformMatrix(loc int32, dim int, v []float32) {
	r.record(fmt.Sprintf("UniformMatrix%dfv", dim), loc, append([]float32(nil), v...))
}

func (r *Recorder) GetUniformBlockIndex(p gfx.ProgramID, name string) uint32 {
	r.record("GetUniformBlockIndex", p, name)
	loc := r.location(name)
	if loc < 0 {
		return gfx.InvalidIndex
	}
	return uint32(loc)
}

func (r *Recorder) UniformBlockBinding(p gfx.ProgramID, blockIndex, binding uint32) {
	r.record("UniformBlockBinding", p, blockIndex, binding)
}

func (r *Recorder) CreateVertexArray() gfx.VertexArrayID {
	id := gfx.VertexArrayID(r.id())
	r.record("CreateVertexArray", id)
	return id
}

func (r *Recorder) BindVertexArray(v gfx.VertexArrayID) {
	r.record("BindVertexArray", v)
}

func (r *Recorder) DeleteVertexArray(v gfx.VertexArrayID) {
	r.record("DeleteVertexArray", v)
}

func (r *Recorder) DrawArrays(mode gfx.DrawMode, first, count int) {
	r.record("DrawArrays", mode, first, count)
}

func (r *Recorder) DrawElements(mode gfx.DrawMode, count int, typ gfx.ElementType, offset int) {
	r.record("DrawElements", mode, count, typ, offset)
}

func (r *Recorder) Clear(mask gfx.ClearMask) {
	r.record("Clear", mask)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) Enable(c gfx.Capability) {
	r.record("Enable", c)
}

func (r *Recorder) Disable(c gfx.Capability) {
	r.record("Disable", c)
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.record("Viewport", x, y, width, height)
}

func (r *Recorder) CreateTexture() gfx.TextureID {
	id := gfx.TextureID(r.id())
	r.record("CreateTexture", id)
	return id
}

func (r *Recorder) ActiveTexture(unit int) {
	r.record("ActiveTexture", unit)
}

func (r *Recorder) BindTexture(target gfx.TextureTarget, t gfx.TextureID) {
	r.record("BindTexture", target, t)
}

func (r *Recorder) TexImage2D(target gfx.TextureTarget, level int, internalFormat gfx.PixelFormat, width, height int, format gfx.PixelFormat, typ gfx.ElementType, pix []byte) {
	r.record("TexImage2D", target, level, internalFormat, width, height, format, typ, len(pix))
}

func (r *Recorder) GenerateMipmap(target gfx.TextureTarget) {
	r.record("GenerateMipmap", target)
}

func (r *Recorder) TexParameteri(target gfx.TextureTarget, param gfx.TextureParam, value int32) {
	r.record("TexParameteri", target, param, value)
}

func (r *Recorder) DeleteTexture(t gfx.TextureID) {
	r.record("DeleteTexture", t)
}

func (r *Recorder) CreateTransformFeedback() gfx.TransformFeedbackID {
	id := gfx.TransformFeedbackID(r.id())
	r.record("CreateTransformFeedback", id)
	return id
}

func (r *Recorder) BindTransformFeedback(tf gfx.TransformFeedbackID) {
	r.record("BindTransformFeedback", tf)
}

func (r *Recorder) BeginTransformFeedback(mode gfx.DrawMode) {
	r.record("BeginTransformFeedback", mode)
}

func (r *Recorder) EndTransformFeedback() {
	r.record("EndTransformFeedback")
}

func (r *Recorder) DeleteTransformFeedback(tf gfx.TransformFeedbackID) {
	r.record("DeleteTransformFeedback", tf)
}
