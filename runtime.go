package rendergraph

import "fmt"

// Runtime is a compiled render graph: the ordered [PassRuntime] list plus
// the mapping from logical resources to their frame-specific physical
// instances. It is created by [Graph.Compile], owns no ambient/global
// state, and is immutable, so independent frame executions may run
// concurrently as long as each uses its own [CommandRecorder].
type Runtime struct {
	graph    *Graph
	provider ResourceProvider
	passes   []*PassRuntime
}

// PassCount returns the number of compiled passes.
func (rt *Runtime) PassCount() int { return len(rt.passes) }

// Pass returns the i-th compiled pass in execution order.
func (rt *Runtime) Pass(i int) *PassRuntime { return rt.passes[i] }

// RawResource resolves the physical instance of r live for the given
// frame. Resolution is fresh per call, since the physical instance may
// rotate by frame; provider errors propagate unchanged. A resource from
// a different graph fails with [ErrUnknownResource] — indices are only
// meaningful within the graph this runtime was compiled from.
func (rt *Runtime) RawResource(r *Resource, frame int) (RawResource, error) {
	if r == nil || r.graph != rt.graph {
		return nil, ErrUnknownResource
	}
	return rt.provider.Resolve(r.index, frame)
}

// Execute runs every pass strictly in declared order against rec for the
// given frame index. Passes are never skipped, reordered, or parallelized;
// barrier correctness depends on the declared order. Execution is a
// finite, non-blocking sequence of recorder submissions — there is no
// retry, cancellation, or timeout.
//
// The first failing pass aborts the frame; the error names the pass.
func (rt *Runtime) Execute(frame int, rec CommandRecorder) error {
	if rec == nil {
		return ErrNilRecorder
	}

	// One scratch arena per Execute call: concurrent executions never
	// share barrier buffers, and a single frame reuses them across passes.
	var scratch barrierScratch
	for _, p := range rt.passes {
		if err := p.execute(frame, rec, &scratch); err != nil {
			return fmt.Errorf("rendergraph: pass %q: %w", p.name, err)
		}
	}
	return nil
}
