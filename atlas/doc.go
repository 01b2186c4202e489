// Package atlas packs generated glyph distance fields into shared RGBA
// texture pages.
//
// A Manager owns a set of fixed-size pages, a lookup table from GlyphKey
// to Region and the sdf.Generator run on cache misses. Fields of mixed
// sizes share pages through shelf packing, so embedded bitmap strikes of
// different dimensions never force a repack. Each page tracks a dirty
// flag for incremental texture upload.
//
// # Usage
//
//	manager := atlas.NewManagerDefault()
//
//	key := atlas.GlyphKey{FontID: fontHash, GlyphID: gid, PPEM: 32}
//	region, err := manager.Get(key, coverage)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// region.U0..V1 address the field inside the page texture
//	page := manager.GetPage(region.PageIndex)
//
// Sampling a region at its encoded edge threshold reconstructs the glyph
// silhouette; see the root sdf package for the encoding.
package atlas
