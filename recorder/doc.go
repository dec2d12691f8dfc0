// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recorder provides command-recorder implementations for the
// render graph runtime and a registry for selecting between them.
//
// A native graphics binding plugs in by implementing
// [rendergraph.CommandRecorder] and registering a factory under its own
// name. Two recorders ship built in:
//
//   - "trace" captures every batched barrier submission for inspection;
//     it backs the package's tests and is the tool of choice when
//     debugging barrier placement.
//   - "null" discards everything, for benchmarks and dry runs.
package recorder
