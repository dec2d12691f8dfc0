// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frames

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/rendergraph"
)

// ErrFormatMismatch is returned when a host surface's texture format
// differs from a resource's declared format.
var ErrFormatMismatch = errors.New("frames: surface format mismatch")

// DeviceHandle provides GPU device access from the host application.
//
// Hosts that allocate the physical instances registered with a [Ring]
// typically do so against a shared device; DeviceHandle is the standard
// gogpu-ecosystem interface for passing that device around. It is an
// alias for gpucontext.DeviceProvider, keeping frames fully compatible
// with hosts built on gogpu. [TexturesOf] consumes it when validating
// host textures for registration.
type DeviceHandle = gpucontext.DeviceProvider

// TexturesOf validates host-owned textures against res and returns them
// as raw per-frame instances for [Ring.Set]. The handle supplies the
// host's surface format: when both it and the resource's declared format
// are known, they must agree, so an RGBA-vs-BGRA mix-up fails at
// registration instead of mid-frame. A nil handle, or an undefined
// format on either side, skips the check.
//
// The texture list length is the buffering depth; an empty list fails
// with [ErrNoInstances].
func TexturesOf(handle DeviceHandle, res *rendergraph.Resource, textures ...gpucontext.Texture) ([]rendergraph.RawResource, error) {
	if res == nil {
		return nil, rendergraph.ErrUnknownResource
	}
	if len(textures) == 0 {
		return nil, fmt.Errorf("%w: resource %q", ErrNoInstances, res.Name())
	}
	if handle != nil {
		sf := handle.SurfaceFormat()
		if f := res.Desc().Format; sf != gputypes.TextureFormatUndefined &&
			f != gputypes.TextureFormatUndefined && f != sf {
			return nil, fmt.Errorf("%w: resource %q declares format %v, surface has %v",
				ErrFormatMismatch, res.Name(), f, sf)
		}
	}

	raw := make([]rendergraph.RawResource, len(textures))
	for i, t := range textures {
		raw[i] = t
	}
	return raw, nil
}

// NullDeviceHandle is a DeviceHandle with nil implementations, for tests
// and CPU-only hosts that never allocate GPU instances. Its undefined
// surface format makes [TexturesOf] skip format validation.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns unknown adapter metadata for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
