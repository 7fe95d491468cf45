package gfx

import (
	"fmt"

	"github.com/gregjohnson2017/xenogl/pkg/log"
)

// ErrNotInitialized indicates that a GPU handle was read before its owning
// resource was resolved against a linked program
const ErrNotInitialized log.ConstErr = "resource is not initialized"

// ErrNotLinked indicates that a program handle was read before linking
const ErrNotLinked log.ConstErr = "program is not linked"

// ErrCompileShader indicates that a shader failed to compile
const ErrCompileShader log.ConstErr = "failed to compile shader"

// ErrCreateShader indicates that a shader couldn't be created
const ErrCreateShader log.ConstErr = "failed to create shader"

// ErrProgramLink indicates that a program failed to link
const ErrProgramLink log.ConstErr = "failed to link program"

// ErrCreateProgram indicates that a program couldn't be created
const ErrCreateProgram log.ConstErr = "failed to create program"

// ErrAttributeNotFound indicates that a linked program has no attribute of
// the requested name
const ErrAttributeNotFound log.ConstErr = "attribute not found in program"

// ErrUniformBlockNotFound indicates that a linked program has no uniform
// block of the requested name
const ErrUniformBlockNotFound log.ConstErr = "uniform block not found in program"

// ErrInvalidArity indicates a vector write whose length is not 1 to 4, or
// not a multiple of the requested width
const ErrInvalidArity log.ConstErr = "invalid vector length"

// ErrAmbiguousMatrixShape indicates a matrix write whose length does not fit
// a square matrix (4, 9 or 16 elements, or a multiple for fixed sizes)
const ErrAmbiguousMatrixShape log.ConstErr = "cannot detect matrix shape"

// ErrProgramDeleted indicates use of a program after Delete
const ErrProgramDeleted log.ConstErr = "program is deleted"

// ErrProgramNotRegistered indicates a program that was never added to a
// Context
const ErrProgramNotRegistered log.ConstErr = "program is not added to the context"

// ErrProgramNotFound indicates a program id outside the registered range
const ErrProgramNotFound log.ConstErr = "program id does not exist"

// ShaderCompileError carries the driver's compile log.
type ShaderCompileError struct {
	Kind ShaderKind
	Log  string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("%v (%v): %v", ErrCompileShader, e.Kind, e.Log)
}

func (e *ShaderCompileError) Unwrap() error {
	return ErrCompileShader
}

// ProgramLinkError carries the driver's link log.
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("%v: %v", ErrProgramLink, e.Log)
}

func (e *ProgramLinkError) Unwrap() error {
	return ErrProgramLink
}

// AttributeResolutionError names a buffer attribute the program lacks.
type AttributeResolutionError struct {
	Name string
}

func (e *AttributeResolutionError) Error() string {
	return fmt.Sprintf("%v: %q", ErrAttributeNotFound, e.Name)
}

func (e *AttributeResolutionError) Unwrap() error {
	return ErrAttributeNotFound
}

// BlockResolutionError names a uniform block the program lacks.
type BlockResolutionError struct {
	Name string
}

func (e *BlockResolutionError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUniformBlockNotFound, e.Name)
}

func (e *BlockResolutionError) Unwrap() error {
	return ErrUniformBlockNotFound
}
