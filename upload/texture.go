// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package upload

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/sdf"
)

// TextureDescriptor describes parameters for creating a texture.
// This mirrors the WebGPU GPUTextureDescriptor specification.
type TextureDescriptor struct {
	// Label is an optional debug label for the texture.
	Label string

	// Width is the texture width in pixels.
	Width uint32

	// Height is the texture height in pixels.
	Height uint32

	// Depth is the texture depth for 3D textures, or array layer count.
	// Use 1 for regular 2D textures.
	Depth uint32

	// MipLevelCount is the number of mipmap levels.
	// Use 1 for no mipmaps.
	MipLevelCount uint32

	// SampleCount is the number of samples for multisampling.
	// Use 1 for no multisampling.
	SampleCount uint32

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// Usage specifies how the texture will be used.
	Usage TextureUsage
}

// TextureUsage specifies how a texture can be used.
// These flags can be combined with bitwise OR.
type TextureUsage uint32

const (
	// TextureUsageCopySrc allows the texture to be used as a copy source.
	TextureUsageCopySrc TextureUsage = 1 << iota

	// TextureUsageCopyDst allows the texture to be used as a copy destination.
	TextureUsageCopyDst

	// TextureUsageTextureBinding allows the texture to be used in a texture binding.
	TextureUsageTextureBinding

	// TextureUsageStorageBinding allows the texture to be used in a storage binding.
	TextureUsageStorageBinding

	// TextureUsageRenderAttachment allows the texture to be used as a render attachment.
	TextureUsageRenderAttachment
)

// DescriptorFor returns a texture descriptor sized for a generated
// field buffer. The format is always RGBA8Unorm, which is how the
// generator encodes distances, and the usage flags suit a sampled
// texture updated through queue writes.
func DescriptorFor(buf *sdf.PixelBuffer) TextureDescriptor {
	var w, h uint32
	if buf != nil {
		w = uint32(buf.Width())
		h = uint32(buf.Height())
	}
	return TextureDescriptor{
		Width:         w,
		Height:        h,
		Depth:         1,
		MipLevelCount: 1,
		SampleCount:   1,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         TextureUsageTextureBinding | TextureUsageCopyDst,
	}
}
