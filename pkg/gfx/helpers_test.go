package gfx_test

import (
	"testing"

	"github.com/gregjohnson2017/xenogl/pkg/gfx"
	"github.com/gregjohnson2017/xenogl/pkg/gfx/gfxtest"
	"github.com/stretchr/testify/require"
)

const (
	vertexSource   = "#version 330 core\nvoid main() {}\n"
	fragmentSource = "#version 330 core\nout vec4 color;\nvoid main() { color = vec4(1.0); }\n"
)

func newProgram(opts ...gfx.ProgramOption) *gfx.Program {
	return gfx.NewProgram(gfx.NewVertexShader(vertexSource), gfx.NewFragmentShader(fragmentSource), opts...)
}

func linkedProgram(t *testing.T, rec *gfxtest.Recorder) *gfx.Program {
	t.Helper()
	p := newProgram()
	require.NoError(t, p.Link(rec))
	return p
}

// quad is four interleaved (x,y,z, u,v) vertices.
func quad() []float32 {
	return []float32{
		-1, -1, 0, 0, 0,
		1, -1, 0, 1, 0,
		1, 1, 0, 1, 1,
		-1, 1, 0, 0, 1,
	}
}

func quadBuffer() *gfx.Buffer {
	return gfx.NewVertexBuffer(gfx.BufferConfig{
		Payload: gfx.Float32s(quad()),
		Attributes: []gfx.Attribute{
			gfx.NewAttribute("position", 3),
			gfx.NewAttribute("uv", 2),
		},
	})
}
