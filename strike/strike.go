package strike

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/tiff"
)

// Parse parses raw TTF or OTF font data into a typesetting face.
//
// The returned face selects among bitmap strikes using its XPpem and
// YPpem fields; set them before calling Coverage on fonts that embed
// multiple sizes. font.Face is not safe for concurrent use.
func Parse(data []byte) (*font.Face, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("strike: failed to parse font: %w", err)
	}
	return face, nil
}

// Coverage extracts the embedded bitmap strike for a glyph as an alpha
// coverage image.
//
// Bitmap fonts store glyphs in several encodings. Black and white
// strikes (EBDT, Apple bitmap fonts) expand each bit to 0 or 255
// coverage. PNG (CBDT, sbix), JPEG and TIFF strikes are decoded and
// their alpha channel is used; fully opaque images fall back to
// luminance so formats without alpha still produce usable coverage.
//
// Glyphs without bitmap data return ErrNoBitmap. Callers fall back to
// Rasterize for outline glyphs.
func Coverage(face *font.Face, gid font.GID) (*image.Alpha, error) {
	if face == nil {
		return nil, ErrNilFace
	}

	bitmap, ok := face.GlyphData(gid).(font.GlyphBitmap)
	if !ok {
		return nil, ErrNoBitmap
	}

	switch bitmap.Format {
	case font.BlackAndWhite:
		return expandBilevel(bitmap.Data, bitmap.Width, bitmap.Height)
	case font.PNG:
		img, err := png.Decode(bytes.NewReader(bitmap.Data))
		if err != nil {
			return nil, fmt.Errorf("strike: decoding PNG strike for glyph %d: %w", gid, err)
		}
		return alphaFromImage(img), nil
	case font.JPG:
		img, err := jpeg.Decode(bytes.NewReader(bitmap.Data))
		if err != nil {
			return nil, fmt.Errorf("strike: decoding JPEG strike for glyph %d: %w", gid, err)
		}
		return alphaFromImage(img), nil
	case font.TIFF:
		img, err := tiff.Decode(bytes.NewReader(bitmap.Data))
		if err != nil {
			return nil, fmt.Errorf("strike: decoding TIFF strike for glyph %d: %w", gid, err)
		}
		return alphaFromImage(img), nil
	default:
		return nil, fmt.Errorf("strike: glyph %d: %w: format %d", gid, ErrInvalidBitmap, bitmap.Format)
	}
}

// expandBilevel expands a 1-bit-per-pixel bitmap into 0/255 coverage.
// Bits are MSB first and each row is padded to a whole byte.
func expandBilevel(data []byte, width, height int) (*image.Alpha, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidBitmap
	}
	stride := (width + 7) / 8
	if len(data) < stride*height {
		return nil, fmt.Errorf("strike: %w: have %d bytes, need %d", ErrInvalidBitmap, len(data), stride*height)
	}

	img := image.NewAlpha(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := data[y*stride : y*stride+stride]
		for x := 0; x < width; x++ {
			if row[x>>3]&(0x80>>uint(x&7)) != 0 {
				img.Pix[y*img.Stride+x] = 255
			}
		}
	}
	return img, nil
}

// alphaFromImage converts a decoded strike image to coverage. The alpha
// channel is used when present. Fully opaque images (JPEG has no alpha)
// use luminance instead, treating bright pixels as ink.
func alphaFromImage(src image.Image) *image.Alpha {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	img := image.NewAlpha(image.Rect(0, 0, w, h))

	opaque := true
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			v := uint8(a >> 8)
			img.Pix[y*img.Stride+x] = v
			if v != 255 {
				opaque = false
			}
		}
	}
	if !opaque || w == 0 || h == 0 {
		return img
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			lum := (19595*r + 38470*g + 7471*b + 1<<15) >> 24
			img.Pix[y*img.Stride+x] = uint8(lum)
		}
	}
	return img
}
