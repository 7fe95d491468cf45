package gfx

// VAOConfig describes a VertexArrayObject.
type VAOConfig struct {
	// Payload, if set, is uploaded to the buffer before the vertex array is
	// recorded.
	Payload Payload
	// Attributes, if set, replaces the buffer's active attributes.
	Attributes []Attribute
}

// VertexArrayObject couples one buffer with a GPU vertex array that records
// its attribute layout.
type VertexArrayObject struct {
	buffer      *Buffer
	attributes  []Attribute
	payload     Payload
	id          VertexArrayID
	initialized bool
}

// NewVertexArrayObject returns a vertex array over buf. Nothing is sent to
// the GPU until it is attached to a linked program.
func NewVertexArrayObject(buf *Buffer, cfg VAOConfig) *VertexArrayObject {
	return &VertexArrayObject{
		buffer:     buf,
		attributes: cfg.Attributes,
		payload:    cfg.Payload,
	}
}

// initOnce uploads the configured payload, initializes the buffer and
// records the vertex array. A second call does nothing.
func (vao *VertexArrayObject) initOnce(be Backend, program ProgramID) error {
	if vao.initialized {
		return nil
	}
	if vao.payload != nil {
		vao.buffer.BufferData(vao.payload)
	}
	if err := vao.buffer.initOnce(be, program, vao.attributes); err != nil {
		return err
	}
	id, err := vao.buffer.createVertexArray(be, program, vao.attributes)
	if err != nil {
		return err
	}
	vao.id = id
	vao.initialized = true
	return nil
}

// Buffer returns the buffer bound to the vertex array.
func (vao *VertexArrayObject) Buffer() *Buffer {
	return vao.buffer
}

// Initialized reports whether the vertex array exists on the GPU.
func (vao *VertexArrayObject) Initialized() bool {
	return vao.initialized
}

// Handle returns the GPU vertex array, or ErrNotInitialized.
func (vao *VertexArrayObject) Handle() (VertexArrayID, error) {
	if !vao.initialized {
		return 0, ErrNotInitialized
	}
	return vao.id, nil
}

// Delete frees the GPU vertex array. The buffer is left alone.
func (vao *VertexArrayObject) Delete() {
	if !vao.initialized {
		return
	}
	vao.buffer.be.DeleteVertexArray(vao.id)
	vao.id = 0
	vao.initialized = false
}
