package gfx

import (
	"fmt"

	"github.com/gregjohnson2017/xenogl/pkg/log"
)

// Context owns the programs, textures and transform feedbacks drawn with
// one Backend, and tracks which program is active.
type Context struct {
	be            Backend
	programs      []*Program
	active        *Program
	textures      []*Texture2D
	activeTexture *Texture2D
	feedbacks     []*TransformFeedback
}

// NewContext returns a Context that issues calls to be.
func NewContext(be Backend) *Context {
	return &Context{be: be}
}

// Backend returns the backend the context draws with.
func (c *Context) Backend() Backend {
	return c.be
}

// AddProgram links p if needed, registers it and returns its id. Ids freed
// by RemoveProgram are reused lowest first. The first program added becomes
// the active one. Adding a registered program again returns the id it
// already has.
func (c *Context) AddProgram(p *Program) (int, error) {
	if id, ok := p.ID(); ok {
		return id, nil
	}
	if err := p.Link(c.be); err != nil {
		return -1, err
	}

	id := len(c.programs)
	for i, q := range c.programs {
		if q == nil {
			id = i
			break
		}
	}
	if id == len(c.programs) {
		c.programs = append(c.programs, nil)
	}
	c.programs[id] = p
	p.contextID = id
	p.registered = true

	if c.active == nil {
		c.active = p
		c.be.UseProgram(p.id)
	}
	log.Debugf("gfx: added program %d as id %d", p.id, p.contextID)
	return p.contextID, nil
}

func (c *Context) lookup(p *Program) (int, error) {
	id, ok := p.ID()
	if !ok || id >= len(c.programs) || c.programs[id] != p {
		return -1, ErrProgramNotRegistered
	}
	return id, nil
}

func (c *Context) program(id int) (*Program, error) {
	if id < 0 || id >= len(c.programs) || c.programs[id] == nil {
		return nil, fmt.Errorf("%w: %d", ErrProgramNotFound, id)
	}
	if p := c.programs[id]; p.Deleted() {
		return nil, fmt.Errorf("%w: %d", ErrProgramDeleted, id)
	}
	return c.programs[id], nil
}

// RemoveProgram deletes p and frees its id. If p was active no program is
// active afterwards.
func (c *Context) RemoveProgram(p *Program) error {
	id, err := c.lookup(p)
	if err != nil {
		return err
	}
	if c.active == p {
		p.Deactivate()
		c.active = nil
	}
	c.programs[id] = nil
	p.registered = false
	p.contextID = 0
	p.Delete()

	// trailing free slots
	for len(c.programs) > 0 && c.programs[len(c.programs)-1] == nil {
		c.programs = c.programs[:len(c.programs)-1]
	}
	log.Debugf("gfx: removed program id %d", id)
	return nil
}

// ActivateProgram deactivates the active program, then uses and activates p.
func (c *Context) ActivateProgram(p *Program) error {
	id, err := c.lookup(p)
	if err != nil {
		return err
	}
	return c.ActivateProgramByID(id)
}

// ActivateProgramByID is ActivateProgram by id.
func (c *Context) ActivateProgramByID(id int) error {
	p, err := c.program(id)
	if err != nil {
		return err
	}
	if c.active != nil {
		c.active.Deactivate()
	}
	c.be.UseProgram(p.id)
	p.Activate()
	c.active = p
	return nil
}

// UseProgram makes p the active program without touching attribute state.
func (c *Context) UseProgram(p *Program) error {
	id, err := c.lookup(p)
	if err != nil {
		return err
	}
	return c.UseProgramByID(id)
}

// UseProgramByID is UseProgram by id.
func (c *Context) UseProgramByID(id int) error {
	p, err := c.program(id)
	if err != nil {
		return err
	}
	c.be.UseProgram(p.id)
	c.active = p
	return nil
}

// DeactivateProgram disables p's attributes.
func (c *Context) DeactivateProgram(p *Program) {
	p.Deactivate()
}

// ActiveProgram returns the program draw calls go to, or nil.
func (c *Context) ActiveProgram() *Program {
	return c.active
}

// Programs returns the registered programs indexed by id. Ids freed by
// RemoveProgram hold nil until reused.
func (c *Context) Programs() []*Program {
	return c.programs
}

// AddTexture uploads t on the next texture unit and returns the unit. The
// first texture added is activated. An uploaded texture keeps its unit.
func (c *Context) AddTexture(t *Texture2D) int {
	if t.initialized {
		return t.unit
	}
	unit := len(c.textures)
	c.textures = append(c.textures, t)
	t.initOnce(c.be, unit)
	if c.activeTexture == nil {
		c.ActivateTexture(t)
	}
	return unit
}

// ActivateTexture selects t's texture unit and binds t to it.
func (c *Context) ActivateTexture(t *Texture2D) {
	t.Activate()
	c.activeTexture = t
}

// ActiveTexture returns the last activated texture, or nil.
func (c *Context) ActiveTexture() *Texture2D {
	return c.activeTexture
}

// AddTransformFeedback creates and binds tf.
func (c *Context) AddTransformFeedback(tf *TransformFeedback) {
	if tf.initialized {
		return
	}
	c.feedbacks = append(c.feedbacks, tf)
	tf.initOnce(c.be)
}

// Draw forwards to the active program's Draw.
func (c *Context) Draw(mode DrawMode) {
	if c.active != nil {
		c.active.Draw(mode)
	}
}

// DrawCount forwards to the active program's DrawCount.
func (c *Context) DrawCount(mode DrawMode, count int) {
	if c.active != nil {
		c.active.DrawCount(mode, count)
	}
}

// Clear clears the buffers selected by mask.
func (c *Context) Clear(mask ClearMask) {
	c.be.Clear(mask)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.be.ClearColor(r, g, b, a)
}

func (c *Context) Enable(capability Capability) {
	c.be.Enable(capability)
}

func (c *Context) Disable(capability Capability) {
	c.be.Disable(capability)
}

func (c *Context) Viewport(x, y, width, height int) {
	c.be.Viewport(x, y, width, height)
}

// Delete deletes every program, texture and transform feedback owned by the
// context.
func (c *Context) Delete() {
	for _, p := range c.programs {
		if p != nil {
			p.Delete()
		}
	}
	for _, t := range c.textures {
		t.Delete()
	}
	for _, tf := range c.feedbacks {
		tf.Delete()
	}
	c.programs = nil
	c.textures = nil
	c.feedbacks = nil
	c.active = nil
	c.activeTexture = nil
}
