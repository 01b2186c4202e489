// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package upload

import "github.com/gogpu/sdf"

// RowAlignment is the required row pitch alignment for WebGPU
// buffer-to-texture copies. DX12 imposes the same 256-byte alignment.
const RowAlignment = 256

// Layout describes how tightly packed RGBA rows map onto an aligned
// staging allocation for queue writes.
type Layout struct {
	// BytesPerRow is the aligned row pitch in bytes.
	BytesPerRow int

	// RowsPerImage is the number of rows.
	RowsPerImage int

	// DataSize is the total staging size: BytesPerRow * RowsPerImage.
	DataSize int
}

// LayoutFor returns the aligned copy layout for a width x height RGBA
// image. Non-positive dimensions yield a zero layout.
func LayoutFor(width, height int) Layout {
	if width <= 0 || height <= 0 {
		return Layout{}
	}
	bytesPerRow := (width*4 + RowAlignment - 1) &^ (RowAlignment - 1)
	return Layout{
		BytesPerRow:  bytesPerRow,
		RowsPerImage: height,
		DataSize:     bytesPerRow * height,
	}
}

// Padded reports whether rows carry alignment padding beyond the tight
// width*4 pitch.
func (l Layout) Padded(width int) bool {
	return l.BytesPerRow != width*4
}

// Pack copies a field buffer into a freshly allocated slice whose rows
// are padded to RowAlignment, ready for queue.WriteTexture. The
// returned slice is independent of the buffer. Nil or empty buffers
// return nil and a zero layout.
func Pack(buf *sdf.PixelBuffer) ([]byte, Layout) {
	if buf == nil || buf.Empty() {
		return nil, Layout{}
	}

	layout := LayoutFor(buf.Width(), buf.Height())
	out := make([]byte, layout.DataSize)
	tight := buf.Data()
	tightRow := buf.Width() * 4

	if layout.BytesPerRow == tightRow {
		// Rows already aligned - single copy.
		copy(out, tight)
		return out, layout
	}

	for y := 0; y < buf.Height(); y++ {
		copy(out[y*layout.BytesPerRow:], tight[y*tightRow:(y+1)*tightRow])
	}
	return out, layout
}
