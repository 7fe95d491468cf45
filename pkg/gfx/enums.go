package gfx

// Enum values are the OpenGL ES 3.0 / WebGL2 constants, so backends can pass
// them through unchanged.

// Kind selects what a Buffer holds and which target it binds to.
type Kind int

const (
	KindVertex Kind = iota
	KindIndex
	KindUniform
)

// Target returns the bind target for buffers of this kind.
func (k Kind) Target() Target {
	switch k {
	case KindIndex:
		return ElementArrayBuffer
	case KindUniform:
		return UniformBuffer
	default:
		return ArrayBuffer
	}
}

func (k Kind) String() string {
	switch k {
	case KindVertex:
		return "vertex"
	case KindIndex:
		return "index"
	case KindUniform:
		return "uniform"
	}
	return "unknown"
}

// Target is a buffer bind target.
type Target uint32

const (
	ArrayBuffer             Target = 0x8892
	ElementArrayBuffer      Target = 0x8893
	UniformBuffer           Target = 0x8A11
	TransformFeedbackBuffer Target = 0x8C8E
)

// ElementType is the numeric type of one component in a buffer.
type ElementType uint32

const (
	Byte          ElementType = 0x1400
	UnsignedByte  ElementType = 0x1401
	Short         ElementType = 0x1402
	UnsignedShort ElementType = 0x1403
	Int           ElementType = 0x1404
	UnsignedInt   ElementType = 0x1405
	Float         ElementType = 0x1406
	HalfFloat     ElementType = 0x140B
)

// Size returns the width of one element in bytes, or 0 for an unknown type.
func (t ElementType) Size() int {
	switch t {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort, HalfFloat:
		return 2
	case Int, UnsignedInt, Float:
		return 4
	}
	return 0
}

// Usage is the buffer usage hint.
type Usage uint32

const (
	StreamDraw  Usage = 0x88E0
	StreamRead  Usage = 0x88E1
	StreamCopy  Usage = 0x88E2
	StaticDraw  Usage = 0x88E4
	StaticRead  Usage = 0x88E5
	StaticCopy  Usage = 0x88E6
	DynamicDraw Usage = 0x88E8
	DynamicRead Usage = 0x88E9
	DynamicCopy Usage = 0x88EA
)

// DrawMode is a primitive mode for draw calls.
type DrawMode uint32

const (
	Points DrawMode = iota
	Lines
	LineLoop
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
)

// ShaderKind is the pipeline stage of a Shader.
type ShaderKind uint32

const (
	FragmentShader ShaderKind = 0x8B30
	VertexShader   ShaderKind = 0x8B31
)

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return "unknown"
}

// FeedbackMode is how transform feedback varyings are written.
type FeedbackMode uint32

const (
	InterleavedAttribs FeedbackMode = 0x8C8C
	SeparateAttribs    FeedbackMode = 0x8C8D
)

// Capability is a pipeline state flag for Enable and Disable.
type Capability uint32

const (
	CullFace          Capability = 0x0B44
	DepthTest         Capability = 0x0B71
	StencilTest       Capability = 0x0B90
	Blend             Capability = 0x0BE2
	ScissorTest       Capability = 0x0C11
	RasterizerDiscard Capability = 0x8C89
)

// ClearMask selects the buffers cleared by Clear.
type ClearMask uint32

const (
	DepthBufferBit   ClearMask = 0x0100
	StencilBufferBit ClearMask = 0x0400
	ColorBufferBit   ClearMask = 0x4000
)

// TextureTarget is a texture bind target.
type TextureTarget uint32

const Texture2DTarget TextureTarget = 0x0DE1

// PixelFormat is a texture format or internal format.
type PixelFormat uint32

const (
	Alpha     PixelFormat = 0x1906
	RGB       PixelFormat = 0x1907
	RGBA      PixelFormat = 0x1908
	Luminance PixelFormat = 0x1909
	Red       PixelFormat = 0x1903
	RGBA8     PixelFormat = 0x8058
)

// TextureParam names a texture parameter for Texture2D.SetParameter.
type TextureParam uint32

const (
	TextureMagFilter TextureParam = 0x2800
	TextureMinFilter TextureParam = 0x2801
	TextureWrapS     TextureParam = 0x2802
	TextureWrapT     TextureParam = 0x2803
)

// Texture parameter values.
const (
	Nearest              int32 = 0x2600
	Linear               int32 = 0x2601
	NearestMipmapNearest int32 = 0x2700
	LinearMipmapNearest  int32 = 0x2701
	NearestMipmapLinear  int32 = 0x2702
	LinearMipmapLinear   int32 = 0x2703
	Repeat               int32 = 0x2901
	ClampToEdge          int32 = 0x812F
	MirroredRepeat       int32 = 0x8370
)

// InvalidIndex is returned for a uniform block name the program lacks.
const InvalidIndex uint32 = 0xFFFFFFFF
