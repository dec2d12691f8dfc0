package rendergraph

// RawResource is the backend-native resource handle a logical [Resource]
// resolves to for a particular frame (e.g. a gpucontext.Texture or a
// driver-level image). rendergraph forwards it to the recorder untouched.
type RawResource = any

// Barrier is one resource-state transition descriptor, matching the
// native barrier model: the named physical resource moves from Before to
// After. Field meaning beyond equality is owned by the wrapped API.
type Barrier struct {
	// Resource is the frame-resolved physical handle.
	Resource RawResource

	// Subresource selects the affected plane, or [SubresourceAll].
	Subresource Subresource

	// Before is the state the resource is currently in.
	Before State

	// After is the state the resource transitions to.
	After State
}

// StateTransition is the compiler-computed record of how one pass touches
// one resource/subresource. Beg is the state assumed entering the pass,
// Mid the state required during the pass body, End the state the resource
// is left in afterwards. For consecutive touches of the same subresource,
// End of one record equals Beg of the next; the first Beg is the declared
// initial state and the last End the declared final state, if any.
//
// Records with Beg == Mid produce no entry barrier and records with
// Mid == End no exit barrier; the record itself is always kept, since it
// is the source of truth for the neighbouring passes' states.
type StateTransition struct {
	// Resource is the logical resource being transitioned.
	Resource *Resource

	// Subresource selects the affected plane, or [SubresourceAll].
	Subresource Subresource

	// Beg is the state entering the pass.
	Beg State

	// Mid is the state required during the pass body.
	Mid State

	// End is the state left after the pass.
	End State
}

// CommandRecorder records GPU commands for one frame execution. It is the
// seam between rendergraph and the native API: pass bodies record their
// own work through it, and the runtime submits transition barriers to it.
//
// ResourceBarrier submits all given transitions as one batched barrier
// command. The runtime batches an entire entry or exit list into a single
// call; implementations must not split or reorder it. The slice is reused
// between calls — implementations that retain barriers must copy them.
//
// Recording is strictly sequential; a CommandRecorder is never shared
// between concurrent executions.
type CommandRecorder interface {
	ResourceBarrier(barriers []Barrier)
}

// ResourceProvider resolves a logical resource index to the physical
// native instance live for a given frame index. Resolution must be
// deterministic for a (resource, frame) pair within one frame's execution.
// Provisioning and rotation strategy (double/triple buffering, swapchain
// acquisition) belong to the provider, not to rendergraph.
//
// The frames package carries a ready-made N-buffered implementation.
type ResourceProvider interface {
	Resolve(resource, frame int) (RawResource, error)
}
