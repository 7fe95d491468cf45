package gfx

import (
	"fmt"

	"github.com/gregjohnson2017/xenogl/pkg/log"
)

// Values is the payload of a uniform write. Its Go type is the numeric type
// of the uniform: Floats, Ints or Uints.
type Values interface {
	Len() int
}

type (
	Floats []float32
	Ints   []int32
	Uints  []uint32
)

func (v Floats) Len() int { return len(v) }
func (v Ints) Len() int   { return len(v) }
func (v Uints) Len() int  { return len(v) }

// UniformCall selects the family of uniform upload call.
type UniformCall int

const (
	CallScalar UniformCall = iota
	CallVector
	CallMatrix
)

// UniformWrite is a uniform upload waiting for its location.
type UniformWrite struct {
	Call UniformCall
	// Components is the vector width (1-4) or matrix dimension (2-4).
	// Unused for scalars.
	Components int
	Values     Values
}

// Uniform is a named uniform variable. Values can be set at any time; they
// reach the GPU once the owning program is linked.
type Uniform struct {
	name     string
	loc      int32
	located  bool
	be       Backend
	program  ProgramID
	resolved bool
	pending  *UniformWrite
}

func NewUniform(name string) *Uniform {
	return &Uniform{name: name, loc: -1}
}

func (u *Uniform) Name() string {
	return u.name
}

// Located reports whether the uniform has a location in its program.
func (u *Uniform) Located() bool {
	return u.located
}

// Location returns the resolved location, or -1.
func (u *Uniform) Location() int32 {
	return u.loc
}

// Pending returns the write not yet sent to the GPU, or nil.
func (u *Uniform) Pending() *UniformWrite {
	return u.pending
}

// SetFloat sets a float uniform.
func (u *Uniform) SetFloat(v float32) {
	u.write(UniformWrite{Call: CallScalar, Values: Floats{v}})
}

// SetInt sets an int (or sampler) uniform.
func (u *Uniform) SetInt(v int32) {
	u.write(UniformWrite{Call: CallScalar, Values: Ints{v}})
}

// SetUint sets an unsigned int uniform.
func (u *Uniform) SetUint(v uint32) {
	u.write(UniformWrite{Call: CallScalar, Values: Uints{v}})
}

// SetVector picks SetVector1 to SetVector4 from the length of v.
func (u *Uniform) SetVector(v Values) error {
	n := v.Len()
	if n < 1 || n > 4 {
		return fmt.Errorf("uniform %q: %w, got %d", u.name, ErrInvalidArity, n)
	}
	return u.setVector(n, v)
}

// SetVector1 to SetVector4 write one vector, or an array of them when v
// holds a multiple of the width.
func (u *Uniform) SetVector1(v Values) error { return u.setVector(1, v) }
func (u *Uniform) SetVector2(v Values) error { return u.setVector(2, v) }
func (u *Uniform) SetVector3(v Values) error { return u.setVector(3, v) }
func (u *Uniform) SetVector4(v Values) error { return u.setVector(4, v) }

func (u *Uniform) setVector(n int, v Values) error {
	if v.Len() == 0 || v.Len()%n != 0 {
		return fmt.Errorf("uniform %q: %w, got %d values for vec%d", u.name, ErrInvalidArity, v.Len(), n)
	}
	u.write(UniformWrite{Call: CallVector, Components: n, Values: v})
	return nil
}

// SetMatrix picks SetMatrix2 to SetMatrix4 from the length of m. Non-square
// matrices are not supported.
func (u *Uniform) SetMatrix(m []float32) error {
	switch len(m) {
	case 4:
		return u.SetMatrix2(m)
	case 9:
		return u.SetMatrix3(m)
	case 16:
		return u.SetMatrix4(m)
	}
	return fmt.Errorf("uniform %q: %w from %d elements", u.name, ErrAmbiguousMatrixShape, len(m))
}

// SetMatrix2 to SetMatrix4 write one column-major matrix, or an array of
// them when m holds a multiple of its size.
func (u *Uniform) SetMatrix2(m []float32) error { return u.setMatrix(2, m) }
func (u *Uniform) SetMatrix3(m []float32) error { return u.setMatrix(3, m) }
func (u *Uniform) SetMatrix4(m []float32) error { return u.setMatrix(4, m) }

func (u *Uniform) setMatrix(dim int, m []float32) error {
	if len(m) == 0 || len(m)%(dim*dim) != 0 {
		return fmt.Errorf("uniform %q: %w, %d elements for mat%d", u.name, ErrAmbiguousMatrixShape, len(m), dim)
	}
	u.write(UniformWrite{Call: CallMatrix, Components: dim, Values: Floats(m)})
	return nil
}

func (u *Uniform) write(w UniformWrite) {
	u.pending = &w
	u.flush()
}

// flush sends the pending write once and forgets it. Uniform calls apply to
// the program in use, so the owning program is used for the duration of the
// write.
func (u *Uniform) flush() {
	if !u.located || u.pending == nil {
		return
	}
	w := u.pending
	u.pending = nil
	if prev := u.be.CurrentProgram(); prev != u.program {
		u.be.UseProgram(u.program)
		defer u.be.UseProgram(prev)
	}
	switch w.Call {
	case CallScalar:
		switch v := w.Values.(type) {
		case Floats:
			u.be.Uniform1f(u.loc, v[0])
		case Ints:
			u.be.Uniform1i(u.loc, v[0])
		case Uints:
			u.be.Uniform1ui(u.loc, v[0])
		}
	case CallVector:
		switch v := w.Values.(type) {
		case Floats:
			u.be.UniformFloats(u.loc, w.Components, v)
		case Ints:
			u.be.UniformInts(u.loc, w.Components, v)
		case Uints:
			u.be.UniformUints(u.loc, w.Components, v)
		}
	case CallMatrix:
		u.be.UniformMatrix(u.loc, w.Components, w.Values.(Floats))
	}
}

// initOnce resolves the location in program and replays the pending write.
// A name the program lacks leaves the uniform unlocated and its writes
// pending.
func (u *Uniform) initOnce(be Backend, program ProgramID) {
	if u.resolved {
		return
	}
	u.be = be
	u.program = program
	u.resolved = true
	u.loc = be.GetUniformLocation(program, u.name)
	u.located = u.loc >= 0
	if !u.located {
		log.Warnf("gfx: uniform %q is not declared by program %d", u.name, program)
		return
	}
	u.flush()
}

// release forgets the location after the owning program is deleted.
func (u *Uniform) release() {
	u.loc = -1
	u.located = false
}
