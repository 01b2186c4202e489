// Package sdf converts glyph coverage bitmaps into signed distance fields
// for runtime font rendering.
//
// # Overview
//
// Outline fonts can derive distance fields directly from their vector
// contours, but embedded bitmap strikes (CBDT/CBLC, EBDT/EBLC, sbix) only
// provide coverage rasters. sdf closes that gap: it classifies coverage
// into a binary inside/outside mask, computes exact squared Euclidean
// distances to both sets with the Felzenszwalb-Huttenlocher two-pass
// transform, and encodes the signed difference into an 8-bit pseudo-SDF
// replicated across the RGB channels of a PixelBuffer.
//
// # Quick Start
//
//	import "github.com/gogpu/sdf"
//
//	gen := sdf.DefaultGenerator()
//
//	// coverage: one byte per pixel, row-major, pitch bytes per row.
//	buf, err := gen.GenerateFromCoverage(coverage, width, height, pitch)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// buf holds RGBA pixels: R=G=B=encoded distance, A=255.
//	_ = buf.SavePNG("glyph-sdf.png")
//
// # Encoding
//
// Signed distance is measured in source pixels, positive inside the glyph
// and negative outside. A distance d maps to the byte value
//
//	clamp(EncodeBias + d*EncodeScale/max(1, PixelRange), 0, 1) * 255
//
// rounded half-up, so the glyph edge sits at EncodeBias (byte 102 with the
// default 0.4) and distances beyond the range saturate instead of wrapping.
// A shader reconstructs alpha from any single channel the same way an
// ordinary SDF texture is sampled.
//
// # Performance
//
// The distance transform is linear in the number of output pixels: each
// column and each row is swept once with the lower-envelope method, never
// with a per-pixel search. Sweeps are independent, so Config.Workers can
// spread them across goroutines; scratch arrays are pooled between calls.
//
// # Sub-packages
//
// The library is organized into:
//   - sdf: coverage classification, distance transform, byte encoding
//   - atlas: shelf-packed glyph atlases with a cached, concurrent manager
//   - strike: coverage sources (embedded bitmap strikes, rasterized outlines)
//   - upload: GPU texture descriptors and copy layouts for generated fields
package sdf

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
