package rendergraph

// PassRuntime is one compiled, executable pass: its transition records,
// its descriptor bindings, and the caller-supplied body. Instances are
// created by [Graph.Compile] and are immutable afterwards; per-execution
// barrier buffers live in the caller's scratch arena, not on the pass.
type PassRuntime struct {
	runtime     *Runtime
	name        string
	transitions []StateTransition
	declared    map[int]struct{}
	descriptors map[int]Descriptor
	ranges      map[int]DescriptorRange
	body        PassBody
}

// barrierScratch holds the entry/exit barrier lists reused across the
// passes of one execution.
type barrierScratch struct {
	entry []Barrier
	exit  []Barrier
}

// Name returns the diagnostic pass name given at declaration.
func (p *PassRuntime) Name() string { return p.name }

// Transitions returns the compiled transition records in declaration
// order. The returned slice is shared; callers must not modify it.
func (p *PassRuntime) Transitions() []StateTransition { return p.transitions }

// Execute runs the pass standalone for the given frame. Most callers go
// through [Runtime.Execute]; this entry point allocates its own barrier
// scratch so concurrent standalone executions stay independent.
func (p *PassRuntime) Execute(frame int, rec CommandRecorder) error {
	if rec == nil {
		return ErrNilRecorder
	}
	var scratch barrierScratch
	return p.execute(frame, rec, &scratch)
}

// execute resolves the pass's transition records against the frame's
// physical resources, submits the entry barriers as one batched call,
// invokes the body exactly once, and submits the exit barriers as one
// batched call. Records whose beg==mid (or mid==end) half is quiet are
// filtered here, at barrier-list construction.
func (p *PassRuntime) execute(frame int, rec CommandRecorder, s *barrierScratch) error {
	s.entry = s.entry[:0]
	s.exit = s.exit[:0]

	for i := range p.transitions {
		t := &p.transitions[i]
		if t.Beg == t.Mid && t.Mid == t.End {
			continue
		}
		raw, err := p.runtime.provider.Resolve(t.Resource.index, frame)
		if err != nil {
			return err
		}
		if t.Beg != t.Mid {
			s.entry = append(s.entry, Barrier{
				Resource:    raw,
				Subresource: t.Subresource,
				Before:      t.Beg,
				After:       t.Mid,
			})
		}
		if t.Mid != t.End {
			s.exit = append(s.exit, Barrier{
				Resource:    raw,
				Subresource: t.Subresource,
				Before:      t.Mid,
				After:       t.End,
			})
		}
	}

	if len(s.entry) > 0 {
		rec.ResourceBarrier(s.entry)
	}

	pc := PassContext{pass: p, frame: frame, rec: rec}
	if err := p.body.Run(&pc); err != nil {
		return err
	}

	if len(s.exit) > 0 {
		rec.ResourceBarrier(s.exit)
	}
	return nil
}
