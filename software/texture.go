package software

import (
	"errors"
	"image"
)

// Texture errors.
var (
	// ErrNilTexture is returned when a nil texture is supplied.
	ErrNilTexture = errors.New("software: texture is nil")

	// ErrEmptyTexture is returned when a texture has a zero dimension.
	ErrEmptyTexture = errors.New("software: texture has zero width or height")
)

// Texture is a CPU pixel buffer holding premultiplied RGBA, 4 bytes per
// pixel, rows top to bottom. It mirrors what the GPU path samples: the
// origin is the top-left corner, matching uv (0,0).
type Texture struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewTexture creates a transparent texture with the given dimensions.
func NewTexture(width, height int) *Texture {
	return &Texture{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the texture in pixels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the height of the texture in pixels.
func (t *Texture) Height() int {
	return t.height
}

// Data returns the raw pixel data (premultiplied RGBA).
func (t *Texture) Data() []uint8 {
	return t.data
}

// SetPixel sets a single pixel. Out-of-bounds writes are dropped.
func (t *Texture) SetPixel(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	i := (y*t.width + x) * 4
	t.data[i+0] = r
	t.data[i+1] = g
	t.data[i+2] = b
	t.data[i+3] = a
}

// PixelAt returns a single pixel. Out-of-bounds reads return transparent.
func (t *Texture) PixelAt(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return 0, 0, 0, 0
	}
	i := (y*t.width + x) * 4
	return t.data[i+0], t.data[i+1], t.data[i+2], t.data[i+3]
}

// Clear fills the entire texture with a color.
func (t *Texture) Clear(r, g, b, a uint8) {
	for i := 0; i < len(t.data); i += 4 {
		t.data[i+0] = r
		t.data[i+1] = g
		t.data[i+2] = b
		t.data[i+3] = a
	}
}

// ToImage converts the texture to an image.RGBA sharing no storage.
func (t *Texture) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, t.width, t.height))
	copy(img.Pix, t.data)
	return img
}

// asImage wraps the texture storage as an image.RGBA without copying.
// The returned image aliases the texture data.
func (t *Texture) asImage() *image.RGBA {
	return &image.RGBA{
		Pix:    t.data,
		Stride: t.width * 4,
		Rect:   image.Rect(0, 0, t.width, t.height),
	}
}

// FromImage creates a texture from an image.RGBA, copying the pixels.
func FromImage(img *image.RGBA) *Texture {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	t := NewTexture(width, height)

	for y := 0; y < height; y++ {
		srcOff := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(t.data[y*width*4:(y+1)*width*4], img.Pix[srcOff:srcOff+width*4])
	}

	return t
}

// validate checks the texture is usable as a compositing operand.
func (t *Texture) validate() error {
	if t == nil {
		return ErrNilTexture
	}
	if t.width <= 0 || t.height <= 0 {
		return ErrEmptyTexture
	}
	return nil
}
