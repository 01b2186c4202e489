package atlas

import "errors"

// Sentinel errors for the atlas package.
var (
	// ErrGlyphTooLarge is returned when a generated field cannot fit
	// even an empty page.
	ErrGlyphTooLarge = errors.New("atlas: glyph field too large for page")

	// ErrLengthMismatch is returned when keys and coverages have different lengths.
	ErrLengthMismatch = errors.New("atlas: keys and coverages must have same length")
)
