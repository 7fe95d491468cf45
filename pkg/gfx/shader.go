package gfx

import (
	"github.com/gregjohnson2017/xenogl/pkg/util"
)

// Shader is one stage of a Program. It is compiled when its program links.
type Shader struct {
	kind     ShaderKind
	source   string
	id       ShaderID
	be       Backend
	compiled bool
}

// NewShader returns an uncompiled shader of the given kind.
func NewShader(kind ShaderKind, source string) *Shader {
	return &Shader{kind: kind, source: source}
}

func NewVertexShader(source string) *Shader {
	return NewShader(VertexShader, source)
}

func NewFragmentShader(source string) *Shader {
	return NewShader(FragmentShader, source)
}

// compile compiles the source once. On failure the driver log is returned
// in a *ShaderCompileError and the shader object is deleted.
func (s *Shader) compile(be Backend) error {
	if s.compiled {
		return nil
	}
	sw := util.Start()
	defer sw.StopRecordAverage("gfx.compileShader")

	id := be.CreateShader(s.kind)
	if id == 0 {
		return ErrCreateShader
	}
	be.ShaderSource(id, s.source)
	be.CompileShader(id)

	if !be.ShaderCompiled(id) {
		info := be.ShaderInfoLog(id)
		be.DeleteShader(id)
		return &ShaderCompileError{Kind: s.kind, Log: info}
	}

	s.be = be
	s.id = id
	s.compiled = true
	return nil
}

// SetSource replaces the source. A compiled shader is deleted and compiled
// again by the next link.
func (s *Shader) SetSource(source string) {
	s.Delete()
	s.source = source
}

func (s *Shader) Kind() ShaderKind {
	return s.kind
}

func (s *Shader) Source() string {
	return s.source
}

// Compiled reports whether the shader has been compiled successfully.
func (s *Shader) Compiled() bool {
	return s.compiled
}

// Handle returns the GPU shader, or ErrNotInitialized.
func (s *Shader) Handle() (ShaderID, error) {
	if !s.compiled {
		return 0, ErrNotInitialized
	}
	return s.id, nil
}

// Delete tells the backend to delete the shader.
func (s *Shader) Delete() {
	if !s.compiled {
		return
	}
	s.be.DeleteShader(s.id)
	s.id = 0
	s.compiled = false
}
