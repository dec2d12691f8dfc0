package rendergraph

import "fmt"

// Compile validates the declaration and derives, per pass, the state
// transitions every declared resource must undergo around that pass. It
// returns a [Runtime] that resolves physical resources through provider
// and replays the passes in declared order.
//
// For each (resource, subresource) the compiler walks the passes in order
// with a state cursor initialized to the resource's InitialState. Each
// touch yields one [StateTransition]; the exit state of a touch is
// deferred to the next touching pass's required state (or the declared
// FinalState after the last touch), so both the entry and the exit half of
// a state change live on the same pass's record and execution needs no
// lookahead. A consequence is that entry barriers occur only on a
// resource's first touch; every later change rides the previous pass's
// exit batch.
//
// Compilation is all-or-nothing: the first declaration-consistency
// violation aborts with an error and no partial runtime.
func (g *Graph) Compile(provider ResourceProvider) (*Runtime, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}

	type subKey struct {
		res int
		sub Subresource
	}

	rt := &Runtime{graph: g, provider: provider, passes: make([]*PassRuntime, 0, len(g.passes))}

	// granularity tracks whether a resource is addressed whole or per
	// subresource; mixing the two would need a per-plane state ledger the
	// transition model does not carry.
	const (
		granWhole = 1
		granSub   = 2
	)
	granularity := make(map[int]int)

	// last points at the most recent transition record per key so its
	// exit state can be patched when the next touch is seen. Transition
	// slices are preallocated to full capacity, keeping pointers stable.
	last := make(map[subKey]*StateTransition)
	total := 0

	for _, decl := range g.passes {
		if decl.body == nil {
			return nil, fmt.Errorf("%w: pass %q", ErrNilBody, decl.name)
		}

		pr := &PassRuntime{
			runtime:     rt,
			name:        decl.name,
			transitions: make([]StateTransition, 0, len(decl.usages)),
			declared:    make(map[int]struct{}, len(decl.usages)),
		}
		inPass := make(map[subKey]struct{}, len(decl.usages))

		for _, u := range decl.usages {
			r := u.resource
			if r == nil || r.graph != g {
				return nil, fmt.Errorf("%w: pass %q", ErrForeignResource, decl.name)
			}
			if u.state == StateUndefined {
				return nil, fmt.Errorf("%w: pass %q, resource %q", ErrUndefinedState, decl.name, r.name)
			}

			if u.subresource == SubresourceAll {
				if granularity[r.index] == granSub {
					return nil, fmt.Errorf("%w: resource %q", ErrMixedSubresources, r.name)
				}
				granularity[r.index] = granWhole
			} else {
				if granularity[r.index] == granWhole {
					return nil, fmt.Errorf("%w: resource %q", ErrMixedSubresources, r.name)
				}
				granularity[r.index] = granSub
				if uint32(u.subresource) >= r.subresourceCount() {
					return nil, fmt.Errorf("%w: resource %q, subresource %d of %d",
						ErrSubresourceRange, r.name, u.subresource, r.subresourceCount())
				}
			}

			k := subKey{res: r.index, sub: u.subresource}
			if _, ok := inPass[k]; ok {
				return nil, fmt.Errorf("%w: pass %q, resource %q", ErrDuplicateUsage, decl.name, r.name)
			}
			inPass[k] = struct{}{}

			t := StateTransition{
				Resource:    r,
				Subresource: u.subresource,
				Mid:         u.state,
				End:         u.state,
			}
			if prev, ok := last[k]; ok {
				// Deferred exit: the previous touching pass leaves the
				// resource exactly where this pass needs it.
				prev.End = u.state
				t.Beg = u.state
			} else {
				if r.desc.InitialState == StateUndefined {
					return nil, fmt.Errorf("%w: resource %q has no initial state", ErrUndefinedState, r.name)
				}
				t.Beg = r.desc.InitialState
			}

			pr.transitions = append(pr.transitions, t)
			last[k] = &pr.transitions[len(pr.transitions)-1]
			total++

			pr.declared[r.index] = struct{}{}
			if u.descriptor != InvalidDescriptor {
				if pr.descriptors == nil {
					pr.descriptors = make(map[int]Descriptor)
				}
				pr.descriptors[r.index] = u.descriptor
			}
			if u.rangeSet {
				if pr.ranges == nil {
					pr.ranges = make(map[int]DescriptorRange)
				}
				pr.ranges[r.index] = u.descRange
			}
		}

		pr.body = decl.body
		rt.passes = append(rt.passes, pr)
	}

	// Close out resources that declare a final state.
	for k, t := range last {
		if fs := g.resources[k.res].desc.FinalState; fs != StateUndefined {
			t.End = fs
		}
	}

	Logger().Debug("render graph compiled",
		"passes", len(g.passes),
		"resources", len(g.resources),
		"transitions", total)

	return rt, nil
}
