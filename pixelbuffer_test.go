package sdf

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// TestNewPixelBuffer tests construction with valid and degenerate sizes.
func TestNewPixelBuffer(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantLen int
	}{
		{"small", 4, 3, 4 * 3 * 4},
		{"single pixel", 1, 1, 4},
		{"zero width", 0, 5, 0},
		{"zero height", 5, 0, 0},
		{"zero both", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPixelBuffer(tt.width, tt.height)
			if err != nil {
				t.Fatalf("NewPixelBuffer(%d, %d) error: %v", tt.width, tt.height, err)
			}
			if p.Width() != tt.width || p.Height() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", p.Width(), p.Height(), tt.width, tt.height)
			}
			if len(p.Data()) != tt.wantLen {
				t.Errorf("data length = %d, want %d", len(p.Data()), tt.wantLen)
			}
			if wantEmpty := tt.wantLen == 0; p.Empty() != wantEmpty {
				t.Errorf("Empty() = %v, want %v", p.Empty(), wantEmpty)
			}
		})
	}
}

// TestNewPixelBuffer_NegativeDimensions verifies negative sizes are rejected
// before any allocation.
func TestNewPixelBuffer_NegativeDimensions(t *testing.T) {
	cases := []struct{ width, height int }{
		{-1, 5}, {5, -1}, {-1, -1}, {-1000000, 10},
	}
	for _, c := range cases {
		p, err := NewPixelBuffer(c.width, c.height)
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewPixelBuffer(%d, %d) error = %v, want %v", c.width, c.height, err, ErrInvalidDimensions)
		}
		if p != nil {
			t.Errorf("NewPixelBuffer(%d, %d) returned a buffer alongside the error", c.width, c.height)
		}
	}
}

// TestPixelBufferZeroValue verifies the zero value behaves as an empty buffer.
func TestPixelBufferZeroValue(t *testing.T) {
	var p PixelBuffer

	if !p.Empty() {
		t.Error("zero value Empty() = false, want true")
	}
	if p.Width() != 0 || p.Height() != 0 {
		t.Errorf("zero value size = %dx%d, want 0x0", p.Width(), p.Height())
	}

	// Accessors must not panic on the zero value.
	p.SetPixel(0, 0, 1, 2, 3, 4)
	if r, g, b, a := p.GetPixel(0, 0); r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("zero value GetPixel = (%d,%d,%d,%d), want zeros", r, g, b, a)
	}
}

func TestPixelBufferFromRGBA(t *testing.T) {
	src := []byte{
		10, 11, 12, 13, 20, 21, 22, 23,
		30, 31, 32, 33, 40, 41, 42, 43,
	}

	p, err := PixelBufferFromRGBA(src, 2, 2, 8)
	if err != nil {
		t.Fatalf("PixelBufferFromRGBA() error: %v", err)
	}
	if !bytes.Equal(p.Data(), src) {
		t.Errorf("Data() = %v, want %v", p.Data(), src)
	}

	// The copy must not alias the source.
	src[0] = 99
	if p.Data()[0] == 99 {
		t.Error("buffer aliases the source slice")
	}
}

// TestPixelBufferFromRGBA_Strided verifies padding bytes between rows are
// never copied.
func TestPixelBufferFromRGBA_Strided(t *testing.T) {
	const width, height, stride = 2, 2, 12
	src := []byte{
		10, 11, 12, 13, 20, 21, 22, 23, 0xEE, 0xEE, 0xEE, 0xEE,
		30, 31, 32, 33, 40, 41, 42, 43,
	}

	p, err := PixelBufferFromRGBA(src, width, height, stride)
	if err != nil {
		t.Fatalf("PixelBufferFromRGBA() error: %v", err)
	}

	want := []byte{
		10, 11, 12, 13, 20, 21, 22, 23,
		30, 31, 32, 33, 40, 41, 42, 43,
	}
	if !bytes.Equal(p.Data(), want) {
		t.Errorf("Data() = %v, want %v", p.Data(), want)
	}
}

func TestPixelBufferFromRGBA_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     []byte
		width   int
		height  int
		stride  int
		wantErr error
	}{
		{"nil source", nil, 2, 2, 8, ErrNilSource},
		{"empty source", []byte{}, 1, 1, 4, ErrNilSource},
		{"nil source single row", nil, 0, 3, 0, ErrNilSource},
		{"negative width", make([]byte, 16), -1, 2, 8, ErrInvalidDimensions},
		{"negative height", make([]byte, 16), 2, -1, 8, ErrInvalidDimensions},
		{"negative stride", make([]byte, 16), 2, 2, -8, ErrInvalidStride},
		{"source too short", make([]byte, 15), 2, 2, 8, ErrDataTooSmall},
		{"source too short strided", make([]byte, 19), 2, 2, 12, ErrDataTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := PixelBufferFromRGBA(tt.src, tt.width, tt.height, tt.stride)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("PixelBufferFromRGBA() error = %v, want %v", err, tt.wantErr)
			}
			if p != nil {
				t.Error("PixelBufferFromRGBA() returned a buffer alongside the error")
			}
		})
	}
}

// TestPixelBufferFromRGBA_Degenerate verifies zero-area requests succeed
// without reading the source.
func TestPixelBufferFromRGBA_Degenerate(t *testing.T) {
	p, err := PixelBufferFromRGBA([]byte{1, 2, 3}, 0, 0, 0)
	if err != nil {
		t.Fatalf("PixelBufferFromRGBA(0x0) error: %v", err)
	}
	if !p.Empty() {
		t.Error("zero-area buffer Empty() = false, want true")
	}

	// Fully zero dimensions do not require a source at all.
	p, err = PixelBufferFromRGBA(nil, 0, 0, 0)
	if err != nil {
		t.Fatalf("PixelBufferFromRGBA(nil, 0x0) error: %v", err)
	}
	if !p.Empty() {
		t.Error("zero-area buffer from nil source Empty() = false, want true")
	}
}

func TestPixelBufferSetGetPixel(t *testing.T) {
	p, err := NewPixelBuffer(10, 10)
	if err != nil {
		t.Fatalf("NewPixelBuffer() error: %v", err)
	}

	p.SetPixel(5, 5, 128, 64, 32, 255)

	// Verify raw data directly.
	i := (5*10 + 5) * 4
	data := p.Data()
	if data[i+0] != 128 || data[i+1] != 64 || data[i+2] != 32 || data[i+3] != 255 {
		t.Errorf("raw data mismatch: got (%d, %d, %d, %d), want (128, 64, 32, 255)",
			data[i+0], data[i+1], data[i+2], data[i+3])
	}

	r, g, b, a := p.GetPixel(5, 5)
	if r != 128 || g != 64 || b != 32 || a != 255 {
		t.Errorf("GetPixel = (%d, %d, %d, %d), want (128, 64, 32, 255)", r, g, b, a)
	}
}

// TestPixelBufferSetPixel_OutOfBounds verifies out-of-bounds coordinates are
// silently ignored.
func TestPixelBufferSetPixel_OutOfBounds(t *testing.T) {
	p, err := NewPixelBuffer(10, 10)
	if err != nil {
		t.Fatalf("NewPixelBuffer() error: %v", err)
	}

	original := make([]uint8, len(p.Data()))
	copy(original, p.Data())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		p.SetPixel(c.x, c.y, 255, 0, 0, 255)
		if r, g, b, a := p.GetPixel(c.x, c.y); r != 0 || g != 0 || b != 0 || a != 0 {
			t.Errorf("GetPixel(%d, %d) = (%d,%d,%d,%d), want zeros", c.x, c.y, r, g, b, a)
		}
	}

	for i, v := range p.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d: got %d, want %d", i, v, original[i])
		}
	}
}

func TestPixelBufferPixelOffset(t *testing.T) {
	p, err := NewPixelBuffer(7, 3)
	if err != nil {
		t.Fatalf("NewPixelBuffer() error: %v", err)
	}

	if got := p.PixelOffset(0, 0); got != 0 {
		t.Errorf("PixelOffset(0, 0) = %d, want 0", got)
	}
	if got := p.PixelOffset(2, 1); got != (1*7+2)*4 {
		t.Errorf("PixelOffset(2, 1) = %d, want %d", got, (1*7+2)*4)
	}
	if got := p.PixelOffset(6, 2); got != (2*7+6)*4 {
		t.Errorf("PixelOffset(6, 2) = %d, want %d", got, (2*7+6)*4)
	}
}

func TestPixelBufferToImage(t *testing.T) {
	p, err := NewPixelBuffer(3, 2)
	if err != nil {
		t.Fatalf("NewPixelBuffer() error: %v", err)
	}
	p.SetPixel(1, 1, 200, 100, 50, 255)

	img := p.ToImage()
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("image bounds = %v, want (0,0)-(3,2)", img.Bounds())
	}
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{R: 200, G: 100, B: 50, A: 255}) {
		t.Errorf("image pixel (1,1) = %v, want {200 100 50 255}", got)
	}

	// Mutating the image must not touch the buffer.
	img.SetNRGBA(1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	if r, _, _, _ := p.GetPixel(1, 1); r != 200 {
		t.Error("ToImage() result aliases the buffer")
	}
}

// TestPixelBufferImageInterface verifies PixelBuffer satisfies image.Image.
func TestPixelBufferImageInterface(t *testing.T) {
	p, err := NewPixelBuffer(4, 4)
	if err != nil {
		t.Fatalf("NewPixelBuffer() error: %v", err)
	}
	p.SetPixel(2, 3, 10, 20, 30, 40)

	var img image.Image = p
	if img.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() is not color.NRGBAModel")
	}
	if img.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Errorf("Bounds() = %v, want (0,0)-(4,4)", img.Bounds())
	}
	if got := img.At(2, 3); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 40}) {
		t.Errorf("At(2, 3) = %v, want {10 20 30 40}", got)
	}
	if got := img.At(-1, 0); got != (color.NRGBA{}) {
		t.Errorf("At(-1, 0) = %v, want zero color", got)
	}
}

func TestPixelBufferSavePNG(t *testing.T) {
	p, err := NewPixelBuffer(2, 2)
	if err != nil {
		t.Fatalf("NewPixelBuffer() error: %v", err)
	}
	p.SetPixel(0, 0, 230, 230, 230, 255)
	p.SetPixel(1, 0, 102, 102, 102, 255)
	p.SetPixel(0, 1, 0, 0, 0, 255)
	p.SetPixel(1, 1, 255, 255, 255, 255)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := p.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error: %v", err)
	}

	f, err := os.Open(path) //nolint:gosec // test-controlled path
	if err != nil {
		t.Fatalf("opening saved file: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding saved PNG: %v", err)
	}
	if decoded.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("decoded bounds = %v, want (0,0)-(2,2)", decoded.Bounds())
	}
	r, g, b, a := decoded.At(0, 0).RGBA()
	if r>>8 != 230 || g>>8 != 230 || b>>8 != 230 || a>>8 != 255 {
		t.Errorf("decoded pixel (0,0) = (%d, %d, %d, %d), want (230, 230, 230, 255)",
			r>>8, g>>8, b>>8, a>>8)
	}
}

func TestPixelBufferSavePNG_BadPath(t *testing.T) {
	p, err := NewPixelBuffer(1, 1)
	if err != nil {
		t.Fatalf("NewPixelBuffer() error: %v", err)
	}
	if err := p.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG() into a missing directory succeeded, want error")
	}
}
