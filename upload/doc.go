// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package upload prepares generated distance fields for GPU texture
// uploads.
//
// The package performs no device work itself. It produces the CPU-side
// artifacts a WebGPU-style queue write needs: texture descriptors
// matching a field buffer, and staging data with rows padded to the
// 256-byte copy alignment.
//
// # Usage
//
//	field, err := sdf.DefaultGenerator().GenerateFromCoverage(cov, w, h, w)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	desc := upload.DescriptorFor(field)
//	data, layout := upload.Pack(field)
//
//	// Host code then creates the texture from desc and writes data
//	// using layout.BytesPerRow and layout.RowsPerImage.
//
// The DeviceHandle alias names the integration point: hosts hand their
// gpucontext device to whatever component performs the actual writes.
package upload
