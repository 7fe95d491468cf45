package gfx

import (
	"errors"

	"github.com/gregjohnson2017/xenogl/pkg/log"
	"github.com/gregjohnson2017/xenogl/pkg/util"
)

// ProgramOption configures a Program.
type ProgramOption func(*Program)

// WithFeedbackVaryings records varyings for transform feedback in mode.
func WithFeedbackVaryings(mode FeedbackMode, varyings ...string) ProgramOption {
	return func(p *Program) {
		p.feedbackMode = mode
		p.feedbackVaryings = varyings
	}
}

// PendingCounts counts resources of each kind held by a Program.
type PendingCounts struct {
	Buffers              int
	Uniforms             int
	VertexArrayObjects   int
	UniformBufferObjects int
}

// Program is a vertex and fragment shader pair and the buffers, uniforms,
// vertex arrays and uniform buffer objects used with them.
//
// Resources can be attached before or after the program links. Before
// linking they wait in pending queues; Link resolves them in a fixed order
// (buffers, uniforms, vertex arrays, uniform buffer objects). After linking
// attached resources resolve at once.
type Program struct {
	vertex           *Shader
	fragment         *Shader
	feedbackVaryings []string
	feedbackMode     FeedbackMode

	be      Backend
	id      ProgramID
	linked  bool
	deleted bool

	buffers     resolveQueue[*Buffer]
	indexBuffer *Buffer
	uniforms    resolveQueue[*Uniform]
	vaos        resolveQueue[*VertexArrayObject]
	currentVAO  *VertexArrayObject
	ubos        resolveQueue[*UniformBufferObject]

	// contextID is assigned once by Context.AddProgram
	contextID  int
	registered bool
}

// NewProgram returns an unlinked program. Link it directly or add it to a
// Context.
func NewProgram(vs, fs *Shader, opts ...ProgramOption) *Program {
	p := &Program{
		vertex:       vs,
		fragment:     fs,
		feedbackMode: InterleavedAttribs,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AttachBuffer adds a buffer to the program. An index buffer also becomes
// the current index buffer. A buffer already initialized elsewhere is used
// as is.
func (p *Program) AttachBuffer(b *Buffer) error {
	if p.deleted {
		return ErrProgramDeleted
	}
	if b.kind == KindIndex {
		p.indexBuffer = b
	}
	if !p.linked && b.initialized {
		p.buffers.adopt(b)
		return nil
	}
	return p.buffers.attach(b, p.linked, p.resolveAttachedBuffer)
}

func (p *Program) resolveAttachedBuffer(b *Buffer) error {
	if err := b.initOnce(p.be, p.id, nil); err != nil {
		return err
	}
	if b.kind == KindIndex {
		p.be.BindBuffer(ElementArrayBuffer, b.id)
	}
	return nil
}

func (p *Program) resolvePendingBuffer(b *Buffer) error {
	if err := b.initOnce(p.be, p.id, nil); err != nil {
		return err
	}
	if b.kind == KindIndex && p.indexBuffer == nil {
		p.indexBuffer = b
	}
	return nil
}

// ActivateIndexBuffer makes b the index buffer used by Draw.
func (p *Program) ActivateIndexBuffer(b *Buffer) error {
	if p.deleted {
		return ErrProgramDeleted
	}
	p.indexBuffer = b
	if !p.linked {
		return nil
	}
	id, err := b.Handle()
	if err != nil {
		return err
	}
	p.be.BindBuffer(ElementArrayBuffer, id)
	return nil
}

// AttachUniform adds a uniform to the program.
func (p *Program) AttachUniform(u *Uniform) error {
	if p.deleted {
		return ErrProgramDeleted
	}
	return p.uniforms.attach(u, p.linked, p.resolveUniform)
}

func (p *Program) resolveUniform(u *Uniform) error {
	u.initOnce(p.be, p.id)
	return nil
}

// AttachVertexArrayObject adds a vertex array to the program. Its buffer is
// registered with the program when the vertex array resolves.
func (p *Program) AttachVertexArrayObject(vao *VertexArrayObject) error {
	if p.deleted {
		return ErrProgramDeleted
	}
	return p.vaos.attach(vao, p.linked, p.resolveVAO)
}

func (p *Program) resolveVAO(vao *VertexArrayObject) error {
	if err := vao.initOnce(p.be, p.id); err != nil {
		return err
	}
	p.buffers.adopt(vao.buffer)
	return nil
}

// ActivateVertexArrayObject binds vao, now if linked or else when linked.
func (p *Program) ActivateVertexArrayObject(vao *VertexArrayObject) error {
	if p.deleted {
		return ErrProgramDeleted
	}
	p.currentVAO = vao
	if !p.linked {
		return nil
	}
	id, err := vao.Handle()
	if err != nil {
		return err
	}
	p.be.BindVertexArray(id)
	return nil
}

// AttachUniformBufferObject adds a uniform buffer object to the program. UBOs
// get binding points 0, 1, 2... in the order they resolve.
func (p *Program) AttachUniformBufferObject(ubo *UniformBufferObject) error {
	if p.deleted {
		return ErrProgramDeleted
	}
	return p.ubos.attach(ubo, p.linked, p.resolveUBO)
}

func (p *Program) resolveUBO(ubo *UniformBufferObject) error {
	return ubo.initOnce(p.be, p.id, len(p.ubos.resolved))
}

// Link compiles both shaders, links the program and resolves every pending
// resource. A compile or link failure leaves the program unlinked with its
// queues untouched, so Link can be retried after fixing the shader source.
//
// Resources that fail to resolve are dropped and reported together; the
// program is linked regardless. A deleted program cannot be linked again.
func (p *Program) Link(be Backend) error {
	if p.deleted {
		return ErrProgramDeleted
	}
	if p.linked {
		return nil
	}
	sw := util.Start()
	defer sw.StopRecordAverage("gfx.linkProgram")

	if err := p.vertex.compile(be); err != nil {
		return err
	}
	if err := p.fragment.compile(be); err != nil {
		return err
	}

	prog := be.CreateProgram()
	if prog == 0 {
		return ErrCreateProgram
	}
	be.AttachShader(prog, p.vertex.id)
	be.AttachShader(prog, p.fragment.id)
	if len(p.feedbackVaryings) > 0 {
		be.TransformFeedbackVaryings(prog, p.feedbackVaryings, p.feedbackMode)
	}
	be.LinkProgram(prog)

	if !be.ProgramLinked(prog) {
		info := be.ProgramInfoLog(prog)
		be.DeleteProgram(prog)
		return &ProgramLinkError{Log: info}
	}

	p.be = be
	p.id = prog
	p.linked = true
	pending := p.Pending()
	log.Debugf("gfx: linked program %d, resolving %+v", prog, pending)

	return p.drain()
}

func (p *Program) drain() error {
	var errs []error

	errs = append(errs, p.buffers.drain(p.resolvePendingBuffer))
	if p.indexBuffer != nil && p.indexBuffer.initialized {
		p.be.BindBuffer(ElementArrayBuffer, p.indexBuffer.id)
	}

	errs = append(errs, p.uniforms.drain(p.resolveUniform))

	errs = append(errs, p.vaos.drain(p.resolveVAO))
	if p.currentVAO != nil && p.currentVAO.initialized {
		p.be.BindVertexArray(p.currentVAO.id)
	}

	errs = append(errs, p.ubos.drain(p.resolveUBO))

	err := errors.Join(errs...)
	if err != nil {
		log.Warnf("gfx: program %d: %v", p.id, err)
	}
	return err
}

// Draw issues a draw call. With an index buffer holding data it draws every
// index; otherwise it draws the vertices of the first buffer. It does
// nothing before the program is linked.
func (p *Program) Draw(mode DrawMode) {
	p.draw(mode, -1)
}

// DrawCount is Draw with an explicit vertex count for non-indexed drawing.
func (p *Program) DrawCount(mode DrawMode, count int) {
	p.draw(mode, count)
}

func (p *Program) draw(mode DrawMode, count int) {
	if !p.linked || p.deleted {
		return
	}
	if ib := p.indexBuffer; ib != nil && ib.data != nil {
		p.be.DrawElements(mode, ib.Len(), ib.elementType, 0)
		return
	}
	if len(p.buffers.resolved) == 0 {
		return
	}
	if count < 0 {
		count = p.buffers.resolved[0].ElementCount()
	}
	p.be.DrawArrays(mode, 0, count)
}

// Activate binds the current vertex array, enables the attributes of every
// resolved buffer and binds the index buffer into the vertex array.
func (p *Program) Activate() {
	if !p.linked || p.deleted {
		return
	}
	if vao := p.currentVAO; vao != nil && vao.initialized {
		p.be.BindVertexArray(vao.id)
	}
	for _, b := range p.buffers.resolved {
		b.Activate()
	}
	if ib := p.indexBuffer; ib != nil && ib.initialized {
		p.be.BindBuffer(ElementArrayBuffer, ib.id)
	}
}

// Deactivate disables the attributes of every resolved buffer.
func (p *Program) Deactivate() {
	for _, b := range p.buffers.resolved {
		b.Deactivate()
	}
}

// Linked reports whether Link has succeeded. It stays true after Delete.
func (p *Program) Linked() bool {
	return p.linked
}

// Deleted reports whether Delete has run on the linked program.
func (p *Program) Deleted() bool {
	return p.deleted
}

// ID returns the identity assigned by Context.AddProgram.
func (p *Program) ID() (int, bool) {
	return p.contextID, p.registered
}

// Handle returns the GPU program, ErrNotLinked or ErrProgramDeleted.
func (p *Program) Handle() (ProgramID, error) {
	if p.deleted {
		return 0, ErrProgramDeleted
	}
	if !p.linked {
		return 0, ErrNotLinked
	}
	return p.id, nil
}

// IndexBuffer returns the current index buffer, or nil.
func (p *Program) IndexBuffer() *Buffer {
	return p.indexBuffer
}

// VertexArrayObject returns the current vertex array, or nil.
func (p *Program) VertexArrayObject() *VertexArrayObject {
	return p.currentVAO
}

// Pending counts resources waiting for Link.
func (p *Program) Pending() PendingCounts {
	return PendingCounts{
		Buffers:              len(p.buffers.pending),
		Uniforms:             len(p.uniforms.pending),
		VertexArrayObjects:   len(p.vaos.pending),
		UniformBufferObjects: len(p.ubos.pending),
	}
}

// Resolved counts resources resolved against the linked program.
func (p *Program) Resolved() PendingCounts {
	return PendingCounts{
		Buffers:              len(p.buffers.resolved),
		Uniforms:             len(p.uniforms.resolved),
		VertexArrayObjects:   len(p.vaos.resolved),
		UniformBufferObjects: len(p.ubos.resolved),
	}
}

// Buffers returns the resolved buffers in resolution order.
func (p *Program) Buffers() []*Buffer {
	return p.buffers.resolved
}

// UniformBufferObjects returns the resolved UBOs; each one's binding point
// is its index.
func (p *Program) UniformBufferObjects() []*UniformBufferObject {
	return p.ubos.resolved
}

// Delete tells the backend to delete the program, its shaders and every
// resolved buffer and vertex array, and forgets them. Uniforms lose their
// locations and keep later writes pending. A deleted program stays linked
// but draws nothing and accepts no resources. Deleting an unlinked program
// does nothing.
func (p *Program) Delete() {
	if !p.linked || p.deleted {
		return
	}
	for _, vao := range p.vaos.resolved {
		vao.Delete()
	}
	for _, b := range p.buffers.resolved {
		b.Delete()
	}
	for _, u := range p.uniforms.resolved {
		u.release()
	}
	p.vertex.Delete()
	p.fragment.Delete()
	p.be.DeleteProgram(p.id)
	p.id = 0
	p.deleted = true

	p.buffers = resolveQueue[*Buffer]{}
	p.uniforms = resolveQueue[*Uniform]{}
	p.vaos = resolveQueue[*VertexArrayObject]{}
	p.ubos = resolveQueue[*UniformBufferObject]{}
	p.indexBuffer = nil
	p.currentVAO = nil
}
