package sdf

import (
	"image"
	"math"
)

// insideThreshold is the coverage value at which a pixel classifies as
// inside the glyph. Not configurable: producers and consumers of coverage
// bitmaps agree on this boundary.
const insideThreshold = 128

// Generator converts coverage bitmaps into encoded signed distance fields.
type Generator struct {
	config Config
}

// NewGenerator creates a new SDF generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{
		config: config,
	}
}

// DefaultGenerator creates a new SDF generator with default configuration.
func DefaultGenerator() *Generator {
	return NewGenerator(DefaultConfig())
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.config
}

// SetConfig updates the generator's configuration.
func (g *Generator) SetConfig(config Config) {
	g.config = config
}

// GenerateFromCoverage converts a coverage bitmap into an encoded SDF.
//
// coverage holds one byte per pixel, row-major, pitch bytes per row; pitch
// may exceed width for aligned sources and the excess bytes are never
// read. Bytes >= 128 classify as inside. The result is a
// (width+2*Padding) x (height+2*Padding) pixel buffer with R=G=B=encoded
// distance and A=255.
//
// All arguments are checked before any size-proportional allocation; on
// error no partial result is returned.
func (g *Generator) GenerateFromCoverage(coverage []byte, width, height, pitch int) (*PixelBuffer, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}
	if coverage == nil {
		return nil, ErrNilCoverage
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if pitch < width {
		return nil, ErrInvalidStride
	}
	if len(coverage) < (height-1)*pitch+width {
		return nil, ErrDataTooSmall
	}

	outWidth := width + 2*g.config.Padding
	outHeight := height + 2*g.config.Padding

	Logger().Debug("sdf: generate",
		"width", width,
		"height", height,
		"outWidth", outWidth,
		"outHeight", outHeight,
		"workers", g.config.Workers,
	)

	inside := buildInsideGrid(coverage, width, height, pitch, g.config.Padding)

	// Two independent transforms over the same read-only grid: distance to
	// the nearest outside cell and distance to the nearest inside cell.
	distToOutside := make([]float64, outWidth*outHeight)
	distToInside := make([]float64, outWidth*outHeight)
	squaredDistanceField(inside, outWidth, outHeight, false, distToOutside, g.config.Workers)
	squaredDistanceField(inside, outWidth, outHeight, true, distToInside, g.config.Workers)

	out, err := NewPixelBuffer(outWidth, outHeight)
	if err != nil {
		return nil, err
	}
	g.encode(out, distToOutside, distToInside)
	return out, nil
}

// GenerateFromAlpha converts a rasterized alpha mask into an encoded SDF,
// honoring the mask's own stride and sub-image origin.
func (g *Generator) GenerateFromAlpha(img *image.Alpha) (*PixelBuffer, error) {
	if img == nil {
		return nil, ErrNilCoverage
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrInvalidDimensions
	}
	offset := img.PixOffset(b.Min.X, b.Min.Y)
	return g.GenerateFromCoverage(img.Pix[offset:], b.Dx(), b.Dy(), img.Stride)
}

// GenerateFromMask converts a coverage mask into an encoded SDF.
func (g *Generator) GenerateFromMask(m *Mask) (*PixelBuffer, error) {
	if m == nil {
		return nil, ErrNilCoverage
	}
	return g.GenerateFromCoverage(m.Data(), m.Width(), m.Height(), m.Width())
}

// buildInsideGrid classifies coverage into a padded boolean grid. The
// padding band and anything past the copied region stay false (outside),
// so the glyph is always surrounded by outside space and the distance
// field is well defined at the border.
func buildInsideGrid(coverage []byte, width, height, pitch, padding int) []bool {
	outWidth := width + 2*padding
	outHeight := height + 2*padding
	inside := make([]bool, outWidth*outHeight)

	for y := 0; y < height; y++ {
		srcRow := coverage[y*pitch : y*pitch+width]
		dstRow := inside[(y+padding)*outWidth+padding:]
		for x := 0; x < width; x++ {
			dstRow[x] = srcRow[x] >= insideThreshold
		}
	}
	return inside
}

// encode fuses the two squared-distance grids into signed distance and
// quantizes the result into the output buffer, one byte replicated across
// R, G and B with full opacity.
func (g *Generator) encode(out *PixelBuffer, distToOutside, distToInside []float64) {
	scale := g.config.EncodeScale / math.Max(1, g.config.PixelRange)
	bias := g.config.EncodeBias
	data := out.Data()

	for i := range distToOutside {
		// Positive inside the glyph, negative outside, zero exactly at
		// the boundary transition.
		sd := math.Sqrt(distToOutside[i]) - math.Sqrt(distToInside[i])
		v := encodeDistance(sd, bias, scale)

		j := i * 4
		data[j+0] = v
		data[j+1] = v
		data[j+2] = v
		data[j+3] = 255
	}
}

// encodeDistance maps a signed distance to its byte encoding: bias shifts
// the zero crossing, scale normalizes pixels into the unit interval, and
// clamping saturates distances beyond range rather than wrapping. The
// byte conversion rounds half-up by truncating value*255 + 0.5; consumers
// depend on this exact rounding, so it must not change to a
// round-half-even variant.
func encodeDistance(sd, bias, scale float64) uint8 {
	encoded := bias + sd*scale
	if encoded < 0 {
		encoded = 0
	}
	if encoded > 1 {
		encoded = 1
	}
	return uint8(encoded*255 + 0.5)
}
