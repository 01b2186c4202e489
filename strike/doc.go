// Package strike extracts per-glyph coverage bitmaps from font files.
//
// Coverage bitmaps are the input of the sdf generator: 8-bit alpha
// images where 255 means fully inside the glyph. The package supports
// two sources. Fonts with embedded bitmap strikes (CBDT, sbix, EBDT)
// are read through github.com/go-text/typesetting; everything else is
// rasterized from outlines through golang.org/x/image/font.
//
// # Usage
//
//	face, err := strike.Parse(fontData)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gid, ok := face.NominalGlyph('A')
//	if !ok {
//		log.Fatal("glyph not in font")
//	}
//
//	coverage, err := strike.Coverage(face, gid)
//	if errors.Is(err, strike.ErrNoBitmap) {
//		coverage, err = strike.Rasterize(fontData, 'A', 32)
//	}
//
// The resulting *image.Alpha feeds sdf.Generator.GenerateFromAlpha or
// atlas.Manager.Get.
package strike
