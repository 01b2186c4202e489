package strike

import (
	"fmt"
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Rasterize renders the outline of a single rune to an alpha coverage
// image using golang.org/x/image/font. This is the fallback for fonts
// without embedded bitmap strikes.
//
// ppem is the pixel size. Runes missing from the font render the
// .notdef glyph. Whitespace and other glyphs with empty outlines
// return ErrEmptyGlyph.
func Rasterize(fontData []byte, r rune, ppem float64) (*image.Alpha, error) {
	parsed, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("strike: failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    ppem,
		DPI:     72, // ppem == point size at 72 DPI
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("strike: failed to create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	bounds, _, ok := face.GlyphBounds(r)
	if !ok {
		return nil, fmt.Errorf("strike: no glyph bounds for %q", r)
	}

	// Round the fixed-point bounds outward to whole pixels.
	minX := int(bounds.Min.X) >> 6
	minY := int(bounds.Min.Y) >> 6
	maxX := int(bounds.Max.X+63) >> 6
	maxY := int(bounds.Max.Y+63) >> 6

	width := maxX - minX
	height := maxY - minY
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyGlyph, r)
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))

	// Position the pen so the glyph's bounding box lands at the mask
	// origin. The baseline sits at -minY rows from the top.
	drawer := &xfont.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: face,
		Dot:  fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y},
	}
	drawer.DrawString(string(r))

	return mask, nil
}
