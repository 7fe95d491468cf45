package gfx

import "fmt"

// UniformBufferObject connects a uniform buffer to a named uniform block of
// a program through a binding point.
type UniformBufferObject struct {
	buffer      *Buffer
	blockName   string
	blockIndex  uint32
	binding     int
	initialized bool
}

// NewUniformBufferObject returns a UBO for blockName backed by buf. A nil
// buf gets a new empty uniform buffer. It panics if buf is not a uniform
// buffer.
func NewUniformBufferObject(blockName string, buf *Buffer) *UniformBufferObject {
	if buf == nil {
		buf = NewUniformBuffer(BufferConfig{})
	}
	if buf.Kind() != KindUniform {
		panic(fmt.Sprintf("uniform block %q: buffer kind is %v, want uniform", blockName, buf.Kind()))
	}
	return &UniformBufferObject{
		buffer:     buf,
		blockName:  blockName,
		blockIndex: InvalidIndex,
		binding:    -1,
	}
}

// initOnce binds the block to binding and the buffer to the same binding
// point. A second call does nothing.
func (ubo *UniformBufferObject) initOnce(be Backend, program ProgramID, binding int) error {
	if ubo.initialized {
		return nil
	}
	index := be.GetUniformBlockIndex(program, ubo.blockName)
	if index == InvalidIndex {
		return &BlockResolutionError{Name: ubo.blockName}
	}
	be.UniformBlockBinding(program, index, uint32(binding))
	if err := ubo.buffer.initOnce(be, program, nil); err != nil {
		return err
	}
	be.BindBufferBase(UniformBuffer, uint32(binding), ubo.buffer.id)

	ubo.blockIndex = index
	ubo.binding = binding
	ubo.initialized = true
	return nil
}

func (ubo *UniformBufferObject) BlockName() string {
	return ubo.blockName
}

func (ubo *UniformBufferObject) Buffer() *Buffer {
	return ubo.buffer
}

// Binding returns the binding point once initialized.
func (ubo *UniformBufferObject) Binding() (int, bool) {
	return ubo.binding, ubo.initialized
}

// BlockIndex returns the block's index in its program once initialized.
func (ubo *UniformBufferObject) BlockIndex() (uint32, bool) {
	return ubo.blockIndex, ubo.initialized
}

func (ubo *UniformBufferObject) Initialized() bool {
	return ubo.initialized
}
