// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recorder

import (
	"sync"

	"github.com/gogpu/rendergraph"
)

// Recorder name constants.
const (
	// NameTrace is the name of the barrier-capturing trace recorder.
	NameTrace = "trace"
	// NameNull is the name of the discarding recorder.
	NameNull = "null"
)

// init registers the built-in recorders on package import.
func init() {
	Register(NameTrace, func() Recorder { return NewTrace() })
	Register(NameNull, func() Recorder { return Null{} })
}

// Batch is one batched barrier submission, in submission order.
type Batch []rendergraph.Barrier

// Trace is a CommandRecorder that captures every barrier batch it
// receives. The runtime reuses its barrier slices between submissions, so
// Trace deep-copies each batch.
//
// Trace is safe for concurrent use, though a single graph execution is
// always sequential; the lock matters only when one Trace is shared
// across executions on purpose.
type Trace struct {
	mu      sync.Mutex
	batches []Batch
}

var _ Recorder = (*Trace)(nil)

// NewTrace creates an empty trace recorder.
func NewTrace() *Trace {
	return &Trace{}
}

// ResourceBarrier records the batch.
func (t *Trace) ResourceBarrier(barriers []rendergraph.Barrier) {
	batch := make(Batch, len(barriers))
	copy(batch, barriers)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.batches = append(t.batches, batch)
}

// Batches returns a copy of all recorded batches in submission order.
func (t *Trace) Batches() []Batch {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Batch, len(t.batches))
	copy(out, t.batches)
	return out
}

// Submissions returns the number of batched barrier calls received.
func (t *Trace) Submissions() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.batches)
}

// BarrierCount returns the total number of individual barriers received.
func (t *Trace) BarrierCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for _, b := range t.batches {
		n += len(b)
	}
	return n
}

// Reset discards all recorded batches.
func (t *Trace) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.batches = nil
}

// Null is a CommandRecorder that discards every submission.
type Null struct{}

var _ Recorder = Null{}

// ResourceBarrier does nothing.
func (Null) ResourceBarrier([]rendergraph.Barrier) {}
