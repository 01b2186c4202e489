package strike

import "errors"

// Sentinel errors for the strike package.
var (
	// ErrNilFace indicates a nil font face was passed.
	ErrNilFace = errors.New("strike: nil font face")

	// ErrNoBitmap indicates the glyph carries no bitmap strike. Outline
	// and SVG glyphs take the rasterization path instead.
	ErrNoBitmap = errors.New("strike: glyph has no bitmap strike")

	// ErrInvalidBitmap indicates truncated or malformed bitmap data.
	ErrInvalidBitmap = errors.New("strike: invalid bitmap data")

	// ErrEmptyGlyph indicates the glyph has an empty outline, such as a
	// space or other whitespace character.
	ErrEmptyGlyph = errors.New("strike: glyph has an empty outline")
)
