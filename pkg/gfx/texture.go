package gfx

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// TextureOptions describes how a Texture2D's pixels are uploaded. Zero fields
// default to a level 0 RGBA texture of unsigned bytes.
type TextureOptions struct {
	Target         TextureTarget
	Level          int
	InternalFormat PixelFormat
	Format         PixelFormat
	Type           ElementType
}

type textureParam struct {
	param TextureParam
	value int32
}

// Texture2D is a texture uploaded once, when it is added to a Context. Its
// texture unit is its index in that Context.
type Texture2D struct {
	pix    []byte
	width  int
	height int
	opts   TextureOptions

	be          Backend
	id          TextureID
	unit        int
	initialized bool

	// applied by initOnce
	params   []textureParam
	activate bool
}

// NewTexture2D returns a texture of width x height pixels.
func NewTexture2D(pix []byte, width, height int, opts TextureOptions) *Texture2D {
	if opts.Target == 0 {
		opts.Target = Texture2DTarget
	}
	if opts.InternalFormat == 0 {
		opts.InternalFormat = RGBA
	}
	if opts.Format == 0 {
		opts.Format = RGBA
	}
	if opts.Type == 0 {
		opts.Type = UnsignedByte
	}
	return &Texture2D{pix: pix, width: width, height: height, opts: opts, unit: -1}
}

// NewTexture2DFromImage converts img to RGBA and returns a mipmapped texture
// of it.
func NewTexture2DFromImage(img image.Image) *Texture2D {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != 4*b.Dx() {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	t := NewTexture2D(rgba.Pix, b.Dx(), b.Dy(), TextureOptions{})
	t.SetParameter(TextureMinFilter, LinearMipmapNearest)
	t.SetParameter(TextureMagFilter, Nearest)
	return t
}

// NewTexture2DFromFile decodes a PNG, JPEG or BMP file into a texture.
func NewTexture2DFromFile(fileName string) (*Texture2D, error) {
	in, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return nil, err
	}
	return NewTexture2DFromImage(img), nil
}

// initOnce uploads the pixels to a new texture on unit and builds mipmaps.
func (t *Texture2D) initOnce(be Backend, unit int) {
	if t.initialized {
		return
	}
	t.be = be
	t.unit = unit
	be.ActiveTexture(unit)
	t.id = be.CreateTexture()
	be.BindTexture(t.opts.Target, t.id)
	be.TexImage2D(t.opts.Target, t.opts.Level, t.opts.InternalFormat, t.width, t.height, t.opts.Format, t.opts.Type, t.pix)
	be.GenerateMipmap(t.opts.Target)
	for _, p := range t.params {
		be.TexParameteri(t.opts.Target, p.param, p.value)
	}
	t.params = nil
	t.initialized = true

	if t.activate {
		t.activate = false
		t.Activate()
	}
}

// Activate selects the texture's unit and binds the texture to it. Before
// the texture is uploaded this is deferred until it is.
func (t *Texture2D) Activate() {
	if !t.initialized {
		t.activate = true
		return
	}
	t.be.ActiveTexture(t.unit)
	t.be.BindTexture(t.opts.Target, t.id)
}

// SetParameter sets a texture parameter such as TextureMinFilter.
func (t *Texture2D) SetParameter(param TextureParam, value int32) {
	if !t.initialized {
		t.params = append(t.params, textureParam{param, value})
		return
	}
	t.be.ActiveTexture(t.unit)
	t.be.BindTexture(t.opts.Target, t.id)
	t.be.TexParameteri(t.opts.Target, param, value)
}

// Unit returns the texture unit, or -1 before the texture is added to a
// Context.
func (t *Texture2D) Unit() int {
	return t.unit
}

func (t *Texture2D) Width() int {
	return t.width
}

func (t *Texture2D) Height() int {
	return t.height
}

func (t *Texture2D) Options() TextureOptions {
	return t.opts
}

func (t *Texture2D) Initialized() bool {
	return t.initialized
}

// Handle returns the GPU texture, or ErrNotInitialized.
func (t *Texture2D) Handle() (TextureID, error) {
	if !t.initialized {
		return 0, ErrNotInitialized
	}
	return t.id, nil
}

// Delete tells the backend to delete the texture.
func (t *Texture2D) Delete() {
	if !t.initialized {
		return
	}
	t.be.DeleteTexture(t.id)
	t.id = 0
	t.initialized = false
}
