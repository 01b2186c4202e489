package sdf

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// PixelBuffer is a fixed-size rectangular buffer of 4-channel 8-bit pixels
// in RGBA order, row-major. A buffer is either empty (zero area, no
// backing storage) or fully allocated; it never resizes after construction
// and never aliases external memory.
//
// The zero value is an empty buffer ready to use.
type PixelBuffer struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixelBuffer creates a pixel buffer with the given dimensions.
// Negative dimensions return ErrInvalidDimensions. If either dimension is
// zero the buffer is valid but has no backing storage.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	p := &PixelBuffer{width: width, height: height}
	if width > 0 && height > 0 {
		p.data = make([]uint8, width*height*4)
	}
	return p, nil
}

// PixelBufferFromRGBA creates a pixel buffer by copying width*height
// pixels out of a row-strided RGBA byte source. Row y of the copy starts
// at byte offset y*stride, so the source may carry alignment padding past
// the logical row width; those bytes are never read.
//
// A nil or empty src with a non-zero dimension returns ErrNilSource, a
// negative stride returns ErrInvalidStride, and a src too short for the
// strided extent returns ErrDataTooSmall. A degenerate size returns the
// empty buffer without reading src.
func PixelBufferFromRGBA(src []byte, width, height, stride int) (*PixelBuffer, error) {
	p, err := NewPixelBuffer(width, height)
	if err != nil {
		return nil, err
	}
	if len(src) == 0 && (width != 0 || height != 0) {
		return nil, ErrNilSource
	}
	if stride < 0 {
		return nil, ErrInvalidStride
	}
	if p.Empty() {
		return p, nil
	}
	if len(src) < (height-1)*stride+width*4 {
		return nil, ErrDataTooSmall
	}
	rowBytes := width * 4
	for y := 0; y < height; y++ {
		copy(p.data[y*rowBytes:(y+1)*rowBytes], src[y*stride:y*stride+rowBytes])
	}
	return p, nil
}

// Width returns the width of the buffer in pixels.
func (p *PixelBuffer) Width() int {
	return p.width
}

// Height returns the height of the buffer in pixels.
func (p *PixelBuffer) Height() int {
	return p.height
}

// Empty reports whether the buffer has zero area.
func (p *PixelBuffer) Empty() bool {
	return len(p.data) == 0
}

// Data returns the raw pixel data (RGBA format). Callers populating a
// sized buffer write through this slice; it is nil for an empty buffer.
func (p *PixelBuffer) Data() []uint8 {
	return p.data
}

// PixelOffset returns the byte offset for pixel (x, y).
func (p *PixelBuffer) PixelOffset(x, y int) int {
	return (y*p.width + x) * 4
}

// SetPixel sets the channel values of a single pixel.
// Coordinates outside the buffer bounds are ignored.
func (p *PixelBuffer) SetPixel(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := p.PixelOffset(x, y)
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// GetPixel returns the channel values of a single pixel.
// Returns zeros for coordinates outside the buffer bounds.
func (p *PixelBuffer) GetPixel(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0, 0
	}
	i := p.PixelOffset(x, y)
	return p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3]
}

// ToImage converts the buffer to an image.NRGBA.
func (p *PixelBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the buffer to a PNG file.
func (p *PixelBuffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *PixelBuffer) At(x, y int) color.Color {
	r, g, b, a := p.GetPixel(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements the image.Image interface.
func (p *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *PixelBuffer) ColorModel() color.Model {
	return color.NRGBAModel
}
