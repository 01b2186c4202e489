package sdf

import "errors"

// Sentinel errors for the sdf package.
var (
	// ErrNilCoverage is returned when generation is handed a nil coverage
	// bitmap.
	ErrNilCoverage = errors.New("sdf: nil coverage data")

	// ErrNilSource is returned when a buffer copy is asked to read from
	// nil source bytes while the requested size is non-zero.
	ErrNilSource = errors.New("sdf: nil source data")

	// ErrInvalidDimensions is returned for negative buffer dimensions or
	// non-positive generation dimensions.
	ErrInvalidDimensions = errors.New("sdf: invalid dimensions")

	// ErrInvalidStride is returned when a row stride is negative or when
	// a coverage pitch is smaller than the logical row width.
	ErrInvalidStride = errors.New("sdf: stride too small for width")

	// ErrDataTooSmall is returned when source bytes end before the
	// strided extent they must cover.
	ErrDataTooSmall = errors.New("sdf: data too small for dimensions")
)
