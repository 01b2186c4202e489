// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package upload

import (
	"bytes"
	"testing"

	"github.com/gogpu/sdf"
)

func TestLayoutFor(t *testing.T) {
	tests := []struct {
		name            string
		width, height   int
		wantBytesPerRow int
		wantDataSize    int
	}{
		{"narrow rows round up", 16, 16, 256, 4096},
		{"tight rows already aligned", 64, 8, 256, 2048},
		{"wide rows round up to next boundary", 100, 2, 512, 1024},
		{"two boundaries wide", 128, 4, 512, 2048},
		{"zero width", 0, 5, 0, 0},
		{"negative height", 4, -1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := LayoutFor(tt.width, tt.height)
			if layout.BytesPerRow != tt.wantBytesPerRow {
				t.Errorf("BytesPerRow = %d, want %d", layout.BytesPerRow, tt.wantBytesPerRow)
			}
			if layout.DataSize != tt.wantDataSize {
				t.Errorf("DataSize = %d, want %d", layout.DataSize, tt.wantDataSize)
			}
		})
	}
}

func TestLayoutPadded(t *testing.T) {
	if !LayoutFor(16, 16).Padded(16) {
		t.Error("16px rows need padding to reach 256 bytes")
	}
	if LayoutFor(64, 8).Padded(64) {
		t.Error("64px rows are exactly one alignment unit")
	}
}

func TestPack_Aligned(t *testing.T) {
	buf, err := sdf.NewPixelBuffer(64, 2)
	if err != nil {
		t.Fatalf("failed to create buffer: %v", err)
	}
	buf.SetPixel(0, 0, 1, 2, 3, 4)
	buf.SetPixel(63, 1, 5, 6, 7, 8)

	data, layout := Pack(buf)

	if layout.BytesPerRow != 256 || layout.RowsPerImage != 2 {
		t.Fatalf("unexpected layout %+v", layout)
	}
	if len(data) != layout.DataSize {
		t.Fatalf("data length %d, want %d", len(data), layout.DataSize)
	}
	if !bytes.Equal(data, buf.Data()) {
		t.Error("aligned pack should copy rows through unchanged")
	}
}

func TestPack_Padded(t *testing.T) {
	buf, err := sdf.NewPixelBuffer(2, 2)
	if err != nil {
		t.Fatalf("failed to create buffer: %v", err)
	}
	buf.SetPixel(0, 0, 1, 2, 3, 4)
	buf.SetPixel(1, 1, 9, 8, 7, 6)

	data, layout := Pack(buf)

	if layout.BytesPerRow != 256 || layout.DataSize != 512 {
		t.Fatalf("unexpected layout %+v", layout)
	}

	// Row 0 pixel 0 at offset 0, row 1 pixel 1 at aligned offset.
	if got := data[0:4]; !bytes.Equal(got, []byte{1, 2, 3, 4}) {
		t.Errorf("row 0 pixel = %v, want [1 2 3 4]", got)
	}
	off := layout.BytesPerRow + 4
	if got := data[off : off+4]; !bytes.Equal(got, []byte{9, 8, 7, 6}) {
		t.Errorf("row 1 pixel = %v, want [9 8 7 6]", got)
	}

	// Padding bytes stay zero.
	for i := 8; i < layout.BytesPerRow; i++ {
		if data[i] != 0 {
			t.Fatalf("padding byte %d = %d, want 0", i, data[i])
		}
	}
}

func TestPack_Independent(t *testing.T) {
	buf, err := sdf.NewPixelBuffer(4, 1)
	if err != nil {
		t.Fatalf("failed to create buffer: %v", err)
	}
	buf.SetPixel(0, 0, 42, 0, 0, 255)

	data, _ := Pack(buf)
	buf.Data()[0] = 7

	if data[0] != 42 {
		t.Error("packed data should not alias the buffer")
	}
}

func TestPack_Nil(t *testing.T) {
	data, layout := Pack(nil)
	if data != nil {
		t.Error("expected nil data for nil buffer")
	}
	if layout != (Layout{}) {
		t.Errorf("expected zero layout, got %+v", layout)
	}
}

// TestPack_GeneratedField packs a real generator output and checks the
// staging rows line up with the field rows.
func TestPack_GeneratedField(t *testing.T) {
	field, err := sdf.DefaultGenerator().GenerateFromCoverage([]byte{255}, 1, 1, 1)
	if err != nil {
		t.Fatalf("failed to generate field: %v", err)
	}
	// 1x1 coverage with padding 4 gives a 9x9 field.
	if field.Width() != 9 || field.Height() != 9 {
		t.Fatalf("unexpected field size %dx%d", field.Width(), field.Height())
	}

	data, layout := Pack(field)

	if layout.BytesPerRow != 256 || layout.RowsPerImage != 9 {
		t.Fatalf("unexpected layout %+v", layout)
	}
	tight := field.Data()
	for y := 0; y < 9; y++ {
		src := tight[y*9*4 : (y+1)*9*4]
		dst := data[y*layout.BytesPerRow : y*layout.BytesPerRow+9*4]
		if !bytes.Equal(src, dst) {
			t.Fatalf("row %d mismatch", y)
		}
	}
}
