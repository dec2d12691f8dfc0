// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frames

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/rendergraph"
)

// Errors returned by Resolve.
var (
	// ErrUnknownResource is returned when no instances were registered
	// for the requested resource index.
	ErrUnknownResource = errors.New("frames: unknown resource")

	// ErrNoInstances is returned when a resource was registered with an
	// empty instance list.
	ErrNoInstances = errors.New("frames: resource has no instances")

	// ErrNegativeFrame is returned for a negative frame index.
	ErrNegativeFrame = errors.New("frames: negative frame index")
)

// Ring is an N-buffered resource provider: each logical resource index
// maps to a fixed list of physical instances, and frame f resolves to
// instance f modulo the list length. Resources buffered once resolve to
// the same instance every frame.
//
// Registration and resolution are guarded by a mutex, but hosts must not
// replace a ring while an execution that touches it is in flight —
// resolution must stay deterministic within one frame's execution.
type Ring struct {
	mu        sync.RWMutex
	instances map[int][]rendergraph.RawResource
}

var _ rendergraph.ResourceProvider = (*Ring)(nil)

// NewRing creates an empty provider.
func NewRing() *Ring {
	return &Ring{instances: make(map[int][]rendergraph.RawResource)}
}

// Set registers the physical instances backing resource, replacing any
// previous registration. The instance list length is the buffering depth.
func (r *Ring) Set(resource int, instances ...rendergraph.RawResource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances[resource] = instances
}

// SetTextures registers gpucontext textures backing resource. It is a
// typed convenience over Set for the common swapchain-image case.
func (r *Ring) SetTextures(resource int, textures ...gpucontext.Texture) {
	raw := make([]rendergraph.RawResource, len(textures))
	for i, t := range textures {
		raw[i] = t
	}
	r.Set(resource, raw...)
}

// SetSurface registers the host surface textures backing res after
// validating them against the host's surface format with [TexturesOf].
// The ring is left untouched when validation fails.
func (r *Ring) SetSurface(handle DeviceHandle, res *rendergraph.Resource, textures ...gpucontext.Texture) error {
	raw, err := TexturesOf(handle, res, textures...)
	if err != nil {
		return err
	}
	r.Set(res.Index(), raw...)
	return nil
}

// Resolve returns the instance of resource live for frame. It is
// deterministic for a given (resource, frame) pair as long as the ring is
// not mutated between calls.
func (r *Ring) Resolve(resource, frame int) (rendergraph.RawResource, error) {
	if frame < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeFrame, frame)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	instances, ok := r.instances[resource]
	if !ok {
		return nil, fmt.Errorf("%w: index %d", ErrUnknownResource, resource)
	}
	if len(instances) == 0 {
		return nil, fmt.Errorf("%w: index %d", ErrNoInstances, resource)
	}
	return instances[frame%len(instances)], nil
}
