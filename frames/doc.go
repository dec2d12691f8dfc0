// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package frames resolves logical render-graph resources to the physical
// GPU instances live for a given frame index.
//
// Explicit APIs keep several frames in flight, so a logical resource is
// commonly backed by two or three physical instances rotated by frame
// parity (swapchain images being the canonical case). The graph runtime
// asks a [Ring] which instance is live each time a pass touches the
// resource.
//
// Key principle (shared with the wider gogpu ecosystem): this package
// RECEIVES physical instances from the host application, it does NOT
// create them. The host owns allocation, residency, and lifetime; frames
// owns only the per-frame selection.
package frames
