package rendergraph

import "fmt"

// State identifies the execution state a resource must be in for a
// particular kind of GPU access. The legal states and their meaning are
// the contract of the wrapped native API; rendergraph only compares
// states for equality and forwards them to the [CommandRecorder] verbatim.
type State uint32

// Resource execution states.
const (
	// StateUndefined is the zero value. A [ResourceDesc] with
	// FinalState == StateUndefined declares no final state.
	StateUndefined State = iota

	// StateCommon is the neutral state resources start in and return to
	// for cross-context handoff.
	StateCommon

	// StateRenderTarget allows color attachment writes.
	StateRenderTarget

	// StateDepthWrite allows depth/stencil attachment writes.
	StateDepthWrite

	// StateDepthRead allows depth/stencil reads without writes.
	StateDepthRead

	// StateShaderResource allows sampled/constant reads from shaders.
	StateShaderResource

	// StateUnorderedAccess allows unordered shader reads and writes.
	StateUnorderedAccess

	// StateCopySource allows the resource to be the source of a copy.
	StateCopySource

	// StateCopyDest allows the resource to be the target of a copy.
	StateCopyDest

	// StateIndirectArgument allows indirect draw/dispatch argument reads.
	StateIndirectArgument

	// StatePresent is required before a swapchain image is presented.
	StatePresent
)

var stateNames = [...]string{
	StateUndefined:        "undefined",
	StateCommon:           "common",
	StateRenderTarget:     "render-target",
	StateDepthWrite:       "depth-write",
	StateDepthRead:        "depth-read",
	StateShaderResource:   "shader-resource",
	StateUnorderedAccess:  "unordered-access",
	StateCopySource:       "copy-source",
	StateCopyDest:         "copy-dest",
	StateIndirectArgument: "indirect-argument",
	StatePresent:          "present",
}

// String returns the diagnostic name of the state.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint32(s))
}

// Subresource addresses a single plane (mip level or array slice) of a
// resource. Subresource indexing is flat and owned by the native API.
type Subresource uint32

// SubresourceAll addresses every subresource of a resource at once.
const SubresourceAll Subresource = 0xffffffff
