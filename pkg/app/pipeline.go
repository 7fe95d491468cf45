package app

import (
	"time"

	"github.com/gregjohnson2017/xenogl/pkg/gfx"
)

// Vertices of the demo quad, interleaved as (x, y, r, g, b, s, t).
var quadVertices = []float32{
	-0.5, -0.5, 1.0, 0.2, 0.2, 0.0, 1.0,
	0.5, -0.5, 0.2, 1.0, 0.2, 1.0, 1.0,
	0.5, 0.5, 0.2, 0.2, 1.0, 1.0, 0.0,
	-0.5, 0.5, 1.0, 1.0, 0.2, 0.0, 0.0,
}

var quadIndices = []uint16{0, 1, 2, 2, 3, 0}

// Pipeline is the demo's program and everything attached to it. It is
// assembled before any GL call is made; adding it to a Context links the
// program and uploads the rest.
type Pipeline struct {
	program  *gfx.Program
	vertices *gfx.Buffer
	indices  *gfx.Buffer
	vao      *gfx.VertexArrayObject
	time     *gfx.Uniform
	sampler  *gfx.Uniform
	textured *gfx.Uniform
	globals  *gfx.UniformBufferObject
	scale    float32
}

// NewPipeline declares the demo pipeline for the given shader sources.
func NewPipeline(vertexSource, fragmentSource string) *Pipeline {
	p := &Pipeline{
		program: gfx.NewProgram(gfx.NewVertexShader(vertexSource), gfx.NewFragmentShader(fragmentSource)),
		vertices: gfx.NewVertexBuffer(gfx.BufferConfig{
			Attributes: []gfx.Attribute{
				gfx.NewAttribute("position_in", 2),
				gfx.NewAttribute("color_in", 3),
				gfx.NewAttribute("tex_coords_in", 2),
			},
		}),
		indices:  gfx.NewIndexBuffer(gfx.BufferConfig{Payload: gfx.Uint16s(quadIndices)}),
		time:     gfx.NewUniform("time"),
		sampler:  gfx.NewUniform("frag_tex"),
		textured: gfx.NewUniform("textured"),
		globals: gfx.NewUniformBufferObject("Globals", gfx.NewUniformBuffer(gfx.BufferConfig{
			Usage: gfx.DynamicDraw,
		})),
		scale: 1,
	}
	p.vao = gfx.NewVertexArrayObject(p.vertices, gfx.VAOConfig{Payload: gfx.Float32s(quadVertices)})

	// attach errors only happen for linked programs
	_ = p.program.AttachVertexArrayObject(p.vao)
	_ = p.program.ActivateVertexArrayObject(p.vao)
	_ = p.program.AttachBuffer(p.indices)
	_ = p.program.AttachUniform(p.time)
	_ = p.program.AttachUniform(p.sampler)
	_ = p.program.AttachUniform(p.textured)
	_ = p.program.AttachUniformBufferObject(p.globals)

	p.time.SetFloat(0)
	p.textured.SetInt(0)
	return p
}

// Attach links the program into ctx and returns its id.
func (p *Pipeline) Attach(ctx *gfx.Context) (int, error) {
	id, err := ctx.AddProgram(p.program)
	if err != nil {
		return -1, err
	}
	// the element array binding is vertex array state
	if err := p.program.ActivateIndexBuffer(p.indices); err != nil {
		_ = ctx.RemoveProgram(p.program)
		return -1, err
	}
	return id, nil
}

// Program returns the pipeline's program.
func (p *Pipeline) Program() *gfx.Program {
	return p.program
}

// Update advances the animation to elapsed.
func (p *Pipeline) Update(elapsed time.Duration) {
	p.time.SetFloat(float32(elapsed.Seconds()))
}

// Resize writes the drawable area into the Globals block.
func (p *Pipeline) Resize(width, height int32) {
	// std140: vec2 area, float scale, one float of padding
	p.globals.Buffer().BufferData(gfx.Float32s([]float32{float32(width), float32(height), p.scale, 0}))
}

// UseTexture samples the texture on unit in the fragment shader.
func (p *Pipeline) UseTexture(unit int) {
	p.sampler.SetInt(int32(unit))
	p.textured.SetInt(1)
}

// Detach removes the pipeline's program from ctx, freeing its id, and
// deletes it.
func (p *Pipeline) Detach(ctx *gfx.Context) error {
	return ctx.RemoveProgram(p.program)
}

// Delete frees the program and its buffers.
func (p *Pipeline) Delete() {
	p.program.Delete()
}
