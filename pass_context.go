package rendergraph

import "fmt"

// PassContext is the narrow per-execution view handed to a pass body. It
// exposes only the resources and descriptors the pass declared, plus the
// raw command recorder; anything else fails with [ErrUndeclaredUsage].
// Declaring a usage does not obligate the body to consume it.
//
// A PassContext is valid only for the duration of the Run call it was
// passed to.
type PassContext struct {
	pass  *PassRuntime
	frame int
	rec   CommandRecorder
}

// FrameIndex returns the frame index this execution runs for.
func (pc *PassContext) FrameIndex() int { return pc.frame }

// Recorder returns the native command recorder for this execution.
func (pc *PassContext) Recorder() CommandRecorder { return pc.rec }

// RawResource resolves the physical instance of r live for this frame.
// It fails with [ErrUndeclaredUsage] if the pass did not declare r;
// provider errors propagate unchanged.
func (pc *PassContext) RawResource(r *Resource) (RawResource, error) {
	if r == nil {
		return nil, ErrUnknownResource
	}
	if !pc.sameGraph(r) {
		return nil, pc.undeclared(r)
	}
	if _, ok := pc.pass.declared[r.index]; !ok {
		return nil, pc.undeclared(r)
	}
	return pc.pass.runtime.provider.Resolve(r.index, pc.frame)
}

// Descriptor returns the descriptor slot the pass declared for r. It
// fails with [ErrUndeclaredUsage] if the pass declared no descriptor
// requirement for r.
func (pc *PassContext) Descriptor(r *Resource) (Descriptor, error) {
	if r == nil {
		return InvalidDescriptor, ErrUnknownResource
	}
	if !pc.sameGraph(r) {
		return InvalidDescriptor, pc.undeclared(r)
	}
	d, ok := pc.pass.descriptors[r.index]
	if !ok {
		return InvalidDescriptor, pc.undeclared(r)
	}
	return d, nil
}

// DescriptorRange returns the descriptor range the pass declared for r.
// It fails with [ErrUndeclaredUsage] if the pass declared no range
// requirement for r.
func (pc *PassContext) DescriptorRange(r *Resource) (DescriptorRange, error) {
	if r == nil {
		return DescriptorRange{}, ErrUnknownResource
	}
	if !pc.sameGraph(r) {
		return DescriptorRange{}, pc.undeclared(r)
	}
	dr, ok := pc.pass.ranges[r.index]
	if !ok {
		return DescriptorRange{}, pc.undeclared(r)
	}
	return dr, nil
}

// sameGraph reports whether r belongs to the graph this execution was
// compiled from. Declared-usage maps are keyed by resource index, so a
// handle from another graph must never reach them.
func (pc *PassContext) sameGraph(r *Resource) bool {
	return r.graph == pc.pass.runtime.graph
}

// undeclared names only the resource; [Runtime.Execute] adds the pass
// name when the error surfaces out of a frame.
func (pc *PassContext) undeclared(r *Resource) error {
	return fmt.Errorf("%w: %q", ErrUndeclaredUsage, r.name)
}
