package gfx

import (
	"github.com/gregjohnson2017/xenogl/pkg/log"
)

// BufferConfig describes a Buffer. Zero fields take the defaults of the
// buffer kind.
type BufferConfig struct {
	// Payload is uploaded once the buffer is initialized.
	Payload Payload
	// Attributes is the interleaved vertex layout, e.g. (x,y,z, s,t) ->
	// {position 3}, {uv 2}.
	Attributes []Attribute
	// ElementType defaults to Float, or UnsignedShort for index buffers.
	ElementType ElementType
	// Usage defaults to StaticDraw.
	Usage Usage
}

// Buffer is a block of vertex, index or uniform data and its GPU buffer. It
// can be configured and filled before any program exists; the upload waits
// until a program initializes the buffer.
type Buffer struct {
	kind        Kind
	elementType ElementType
	usage       Usage

	attributes []Attribute
	active     []Attribute
	locations  map[Attribute]uint32
	stride     int

	// pending is applied by flush once the buffer has a handle
	pending Payload
	// last is the most recently uploaded payload, replayed into new VAOs
	last Payload
	data []byte

	be          Backend
	program     ProgramID
	id          BufferID
	initialized bool
}

// NewBuffer returns a buffer of the given kind. Nothing is sent to the GPU
// until the buffer is attached to a linked program.
func NewBuffer(kind Kind, cfg BufferConfig) *Buffer {
	b := &Buffer{
		kind:        kind,
		elementType: cfg.ElementType,
		usage:       cfg.Usage,
		attributes:  cfg.Attributes,
		active:      cfg.Attributes,
		locations:   make(map[Attribute]uint32),
		pending:     cfg.Payload,
	}
	if b.elementType == 0 {
		b.elementType = Float
		if kind == KindIndex {
			b.elementType = UnsignedShort
		}
	}
	if b.usage == 0 {
		b.usage = StaticDraw
	}
	for _, a := range b.attributes {
		b.stride += a.size
	}
	return b
}

// NewVertexBuffer returns a KindVertex buffer.
func NewVertexBuffer(cfg BufferConfig) *Buffer {
	return NewBuffer(KindVertex, cfg)
}

// NewIndexBuffer returns a KindIndex buffer.
func NewIndexBuffer(cfg BufferConfig) *Buffer {
	return NewBuffer(KindIndex, cfg)
}

// NewUniformBuffer returns a KindUniform buffer.
func NewUniformBuffer(cfg BufferConfig) *Buffer {
	return NewBuffer(KindUniform, cfg)
}

// BufferData replaces the pending upload with p. The upload happens now if
// the buffer is initialized, otherwise when it is.
func (b *Buffer) BufferData(p Payload) {
	b.pending = p
	b.flush()
}

func (b *Buffer) flush() {
	if !b.initialized || b.pending == nil {
		return
	}
	target := b.kind.Target()
	b.be.BindBuffer(target, b.id)
	b.upload(b.pending)
	b.be.BindBuffer(target, 0)
	b.pending = nil
}

// upload sends p to whatever buffer is bound to the target.
func (b *Buffer) upload(p Payload) {
	target := b.kind.Target()
	switch v := p.(type) {
	case Data:
		b.be.BufferData(target, v, b.usage)
		b.data = v
	case Length:
		b.be.BufferDataSize(target, int(v), b.usage)
	default:
		return
	}
	b.last = p
}

// Activate enables the active attributes of the buffer. It does nothing
// before initialization, or for an index buffer: its binding belongs to the
// bound vertex array and unbinding it here would clear it.
func (b *Buffer) Activate() {
	if !b.initialized || b.kind == KindIndex {
		return
	}
	target := b.kind.Target()
	b.be.BindBuffer(target, b.id)
	b.pointAttributes()
	b.be.BindBuffer(target, 0)
}

// Deactivate disables the active attributes of the buffer.
func (b *Buffer) Deactivate() {
	if !b.initialized {
		return
	}
	for _, a := range b.active {
		if loc, ok := b.locations[a]; ok {
			b.be.DisableVertexAttribArray(loc)
		}
	}
}

// resolveAttributes looks up the location of every attribute in the program.
func (b *Buffer) resolveAttributes(program ProgramID) error {
	for _, a := range b.attributes {
		if _, ok := b.locations[a]; ok {
			continue
		}
		loc := b.be.GetAttribLocation(program, a.name)
		if loc < 0 {
			return &AttributeResolutionError{Name: a.name}
		}
		b.locations[a] = uint32(loc)
	}
	return nil
}

// pointAttributes enables and points each active attribute at its slice of
// the interleaved vertex. Inactive attributes still advance the offset.
func (b *Buffer) pointAttributes() {
	size := b.elementType.Size()
	// calculate vertex size in bytes
	// ex: (x,y,z,s,t) -> 5*4 = 20 bytes
	strideBytes := size * b.stride
	var offset int
	for _, a := range b.attributes {
		loc, ok := b.locations[a]
		if ok && containsAttribute(b.active, a) {
			b.be.EnableVertexAttribArray(loc)
			b.be.VertexAttribPointer(loc, a.size, b.elementType, false, strideBytes, offset)
		}
		offset += a.size * size
	}
}

func (b *Buffer) configureAttributes(program ProgramID, override []Attribute) error {
	if program == 0 {
		return nil
	}
	if err := b.resolveAttributes(program); err != nil {
		return err
	}
	if override != nil {
		b.active = override
	}
	b.pointAttributes()
	return nil
}

// initOnce creates the GPU buffer, binds its attributes in program and
// flushes the pending upload. A second call does nothing.
func (b *Buffer) initOnce(be Backend, program ProgramID, override []Attribute) error {
	if b.initialized {
		return nil
	}
	target := b.kind.Target()
	b.be = be
	b.id = be.CreateBuffer()
	be.BindBuffer(target, b.id)
	if err := b.configureAttributes(program, override); err != nil {
		be.BindBuffer(target, 0)
		be.DeleteBuffer(b.id)
		b.id = 0
		return err
	}
	b.program = program
	b.initialized = true
	b.flush()

	be.BindBuffer(target, 0)
	log.Debugf("gfx: initialized %v buffer %d", b.kind, b.id)
	return nil
}

// createVertexArray records the buffer's attribute state in a new vertex
// array and replays the last upload under it.
func (b *Buffer) createVertexArray(be Backend, program ProgramID, override []Attribute) (VertexArrayID, error) {
	if !b.initialized {
		return 0, ErrNotInitialized
	}
	target := b.kind.Target()
	vao := be.CreateVertexArray()
	be.BindVertexArray(vao)
	be.BindBuffer(target, b.id)
	if err := b.configureAttributes(program, override); err != nil {
		be.BindBuffer(target, 0)
		be.BindVertexArray(0)
		be.DeleteVertexArray(vao)
		return 0, err
	}
	b.upload(b.last)

	be.BindBuffer(target, 0)
	be.BindVertexArray(0)
	return vao, nil
}

// Handle returns the GPU buffer, or ErrNotInitialized.
func (b *Buffer) Handle() (BufferID, error) {
	if !b.initialized {
		return 0, ErrNotInitialized
	}
	return b.id, nil
}

// Initialized reports whether the buffer has a GPU handle.
func (b *Buffer) Initialized() bool {
	return b.initialized
}

func (b *Buffer) Kind() Kind {
	return b.kind
}

func (b *Buffer) ElementType() ElementType {
	return b.elementType
}

func (b *Buffer) Usage() Usage {
	return b.usage
}

// Attributes returns the declared vertex layout.
func (b *Buffer) Attributes() []Attribute {
	return b.attributes
}

// ActiveAttributes returns the attributes enabled by Activate.
func (b *Buffer) ActiveAttributes() []Attribute {
	return b.active
}

// Stride returns the number of components in one vertex.
func (b *Buffer) Stride() int {
	return b.stride
}

// Pending returns the upload waiting for initialization, or nil.
func (b *Buffer) Pending() Payload {
	return b.pending
}

// Data returns the last uploaded bytes. It is nil until an upload of Data
// has reached the GPU.
func (b *Buffer) Data() []byte {
	return b.data
}

// Len returns the number of elements of ElementType in Data.
func (b *Buffer) Len() int {
	size := b.elementType.Size()
	if size == 0 {
		return 0
	}
	return len(b.data) / size
}

// ElementCount returns how many vertices Data holds.
func (b *Buffer) ElementCount() int {
	if b.stride == 0 {
		return 0
	}
	return b.Len() / b.stride
}

// Delete frees the GPU buffer. The buffer can be initialized again later,
// which uploads the last payload again.
func (b *Buffer) Delete() {
	if !b.initialized {
		return
	}
	b.be.DeleteBuffer(b.id)
	b.id = 0
	b.initialized = false
	if b.pending == nil {
		b.pending = b.last
	}
	b.data = nil
	b.locations = make(map[Attribute]uint32)
}
