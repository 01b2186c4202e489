// Command sdfdemo bakes text into a signed distance field atlas.
//
// It extracts coverage for each rune of -text, converts the glyphs to
// distance fields, packs them into atlas pages and writes the pages as
// PNG files alongside one standalone glyph field.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sdf"
	"github.com/gogpu/sdf/atlas"
	"github.com/gogpu/sdf/strike"
	"github.com/gogpu/sdf/upload"
)

func main() {
	var (
		text      = flag.String("text", "Hello, SDF!", "text to bake")
		size      = flag.Float64("size", 48, "glyph size in pixels per em")
		fontPath  = flag.String("font", "", "TTF/OTF font file (default: embedded Go Regular)")
		output    = flag.String("output", "atlas", "output PNG prefix")
		padding   = flag.Int("padding", 4, "field padding in pixels")
		distRange = flag.Float64("range", 4, "distance range in pixels")
		pageSize  = flag.Int("page", 512, "atlas page size in pixels")
	)
	flag.Parse()

	fontData := goregular.TTF
	if *fontPath != "" {
		data, err := os.ReadFile(*fontPath)
		if err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
		fontData = data
	}

	face, err := strike.Parse(fontData)
	if err != nil {
		log.Fatalf("Failed to parse font: %v", err)
	}
	// Select the bitmap strike closest to the requested size, if any.
	face.SetPpem(uint16(*size), uint16(*size))

	config := sdf.DefaultConfig()
	config.Padding = *padding
	config.PixelRange = *distRange
	generator := sdf.NewGenerator(config)

	manager, err := atlas.NewManager(atlas.Config{
		PageSize: *pageSize,
		Padding:  2,
		MaxPages: 8,
	})
	if err != nil {
		log.Fatalf("Failed to create atlas: %v", err)
	}
	manager.SetGenerator(generator)

	baked := 0
	var sample *sdf.PixelBuffer
	for _, r := range *text {
		gid, ok := face.NominalGlyph(r)
		if !ok {
			log.Printf("Skipping %q: not in font", r)
			continue
		}

		coverage, err := glyphCoverage(face, fontData, gid, r, *size)
		if errors.Is(err, strike.ErrEmptyGlyph) {
			continue // whitespace
		}
		if err != nil {
			log.Fatalf("Failed to extract coverage for %q: %v", r, err)
		}

		key := atlas.GlyphKey{FontID: 1, GlyphID: uint16(gid), PPEM: uint16(*size)}
		region, err := manager.Get(key, coverage)
		if err != nil {
			log.Fatalf("Failed to bake %q: %v", r, err)
		}
		log.Printf("Baked %q: page %d, %dx%d at (%d,%d)",
			r, region.PageIndex, region.Width, region.Height, region.X, region.Y)
		baked++

		if sample == nil {
			sample, err = generator.GenerateFromAlpha(coverage)
			if err != nil {
				log.Fatalf("Failed to generate sample field for %q: %v", r, err)
			}
		}
	}
	if baked == 0 {
		log.Fatalf("No glyphs baked from %q", *text)
	}

	if sample != nil {
		name := *output + "_glyph.png"
		if err := sample.SavePNG(name); err != nil {
			log.Fatalf("Failed to save glyph field: %v", err)
		}
		log.Printf("Glyph field saved to %s (%dx%d)", name, sample.Width(), sample.Height())
	}

	for _, index := range manager.DirtyPages() {
		page := manager.GetPage(index)
		name := fmt.Sprintf("%s_page%d.png", *output, index)
		if err := page.Buffer().SavePNG(name); err != nil {
			log.Fatalf("Failed to save page %d: %v", index, err)
		}

		desc := upload.DescriptorFor(page.Buffer())
		layout := upload.LayoutFor(page.Size(), page.Size())
		log.Printf("Page %d saved to %s: %dx%d RGBA8, %d glyphs, %.1f%% used, upload rows %d bytes (%d staging bytes)",
			index, name, desc.Width, desc.Height, page.GlyphCount(),
			page.Utilization()*100, layout.BytesPerRow, layout.DataSize)
		manager.MarkClean(index)
	}

	hits, misses, pages := manager.Stats()
	log.Printf("Done: %d glyphs baked, %d pages, %d cache hits, %d misses",
		baked, pages, hits, misses)
}

// glyphCoverage extracts coverage for one glyph, preferring embedded
// bitmap strikes and falling back to outline rasterization.
func glyphCoverage(face *font.Face, fontData []byte, gid font.GID, r rune, ppem float64) (*image.Alpha, error) {
	coverage, err := strike.Coverage(face, gid)
	if err == nil {
		return coverage, nil
	}
	if !errors.Is(err, strike.ErrNoBitmap) {
		return nil, err
	}
	return strike.Rasterize(fontData, r, ppem)
}
