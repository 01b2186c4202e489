// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package upload

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// Distance field generation runs entirely on the CPU; uploading the
// resulting pages is the host's job. The host application (e.g. a
// gogpu.App) implements DeviceHandle and passes it wherever textures
// are created, so atlas pages land on the device the host already owns.
//
// Key principle: this package RECEIVES the device from the host, it
// does NOT create one. That keeps GPU resources shared between the
// field generator and the rest of the application.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// package-local name while staying fully compatible with the
// gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used for CPU-only operation where no GPU is available, such as tests
// and offline atlas baking.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// AdapterInfo returns unknown adapter info.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
