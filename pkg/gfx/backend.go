package gfx

// Object ids handed out by a Backend. Zero never names a live object.
type (
	BufferID            uint32
	ShaderID            uint32
	ProgramID           uint32
	VertexArrayID       uint32
	TextureID           uint32
	TransformFeedbackID uint32
)

// Backend is the set of graphics calls the object model issues. It mirrors
// the WebGL2 / OpenGL ES 3.0 API. Implementations are synchronous and must
// be used from a single goroutine.
//
// Attribute and uniform locations are -1 when the linked program does not
// declare the name.
type Backend interface {
	CreateBuffer() BufferID
	BindBuffer(target Target, b BufferID)
	BufferData(target Target, data []byte, usage Usage)
	BufferDataSize(target Target, size int, usage Usage)
	BindBufferBase(target Target, index uint32, b BufferID)
	DeleteBuffer(b BufferID)

	CreateShader(kind ShaderKind) ShaderID
	ShaderSource(s ShaderID, source string)
	CompileShader(s ShaderID)
	ShaderCompiled(s ShaderID) bool
	ShaderInfoLog(s ShaderID) string
	DeleteShader(s ShaderID)

	CreateProgram() ProgramID
	AttachShader(p ProgramID, s ShaderID)
	TransformFeedbackVaryings(p ProgramID, varyings []string, mode FeedbackMode)
	LinkProgram(p ProgramID)
	ProgramLinked(p ProgramID) bool
	ProgramInfoLog(p ProgramID) string
	UseProgram(p ProgramID)
	// CurrentProgram returns the program last passed to UseProgram.
	CurrentProgram() ProgramID
	DeleteProgram(p ProgramID)

	GetAttribLocation(p ProgramID, name string) int32
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int, typ ElementType, normalized bool, stride, offset int)

	GetUniformLocation(p ProgramID, name string) int32
	Uniform1f(loc int32, v float32)
	Uniform1i(loc int32, v int32)
	Uniform1ui(loc int32, v uint32)
	// UniformFloats, UniformInts and UniformUints issue uniform{N}{f,i,ui}v
	// where N is components.
	// Vector and matrix values hold a non-empty whole number of elements.
	UniformFloats(loc int32, components int, v []float32)
	UniformInts(loc int32, components int, v []int32)
	UniformUints(loc int32, components int, v []uint32)
	// UniformMatrix issues uniformMatrix{N}fv without transposing.
	UniformMatrix(loc int32, dim int, v []float32)

	GetUniformBlockIndex(p ProgramID, name string) uint32
	UniformBlockBinding(p ProgramID, blockIndex, binding uint32)

	CreateVertexArray() VertexArrayID
	BindVertexArray(v VertexArrayID)
	DeleteVertexArray(v VertexArrayID)

	DrawArrays(mode DrawMode, first, count int)
	DrawElements(mode DrawMode, count int, typ ElementType, offset int)

	Clear(mask ClearMask)
	ClearColor(r, g, b, a float32)
	Enable(c Capability)
	Disable(c Capability)
	Viewport(x, y, width, height int)

	CreateTexture() TextureID
	ActiveTexture(unit int)
	BindTexture(target TextureTarget, t TextureID)
	TexImage2D(target TextureTarget, level int, internalFormat PixelFormat, width, height int, format PixelFormat, typ ElementType, pix []byte)
	GenerateMipmap(target TextureTarget)
	TexParameteri(target TextureTarget, param TextureParam, value int32)
	DeleteTexture(t TextureID)

	CreateTransformFeedback() TransformFeedbackID
	BindTransformFeedback(tf TransformFeedbackID)
	BeginTransformFeedback(mode DrawMode)
	EndTransformFeedback()
	DeleteTransformFeedback(tf TransformFeedbackID)
}
