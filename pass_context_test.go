package rendergraph

import (
	"errors"
	"testing"
)

// runGraph compiles the graph and executes it once, so each pass body can
// inspect its own context.
func runGraph(t *testing.T, g *Graph, provider ResourceProvider, frame int) {
	t.Helper()
	rt, err := g.Compile(provider)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if err := rt.Execute(frame, &captureRecorder{}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}

func TestPassContextFrameIndexAndRecorder(t *testing.T) {
	g := NewGraph()
	rec := &captureRecorder{}
	checked := false
	g.AddPass("p", PassFunc(func(pc *PassContext) error {
		if pc.FrameIndex() != 5 {
			t.Errorf("FrameIndex() = %d, want 5", pc.FrameIndex())
		}
		if pc.Recorder() != rec {
			t.Error("Recorder() did not return the execution's recorder")
		}
		checked = true
		return nil
	}))

	rt, err := g.Compile(singleProvider{})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if err := rt.Execute(5, rec); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !checked {
		t.Fatal("pass body was never invoked")
	}
}

// Every pass must be denied every resource it did not declare, across all
// lookup methods.
func TestPassContextUndeclaredLookups(t *testing.T) {
	g := NewGraph()
	a := g.AddResource("a", ResourceDesc{InitialState: StateCommon})
	b := g.AddResource("b", ResourceDesc{InitialState: StateCommon})

	check := func(pc *PassContext, declared, undeclared *Resource) error {
		if _, err := pc.RawResource(undeclared); !errors.Is(err, ErrUndeclaredUsage) {
			t.Errorf("pass %q: RawResource(%q) error = %v, want ErrUndeclaredUsage",
				pc.pass.name, undeclared.Name(), err)
		}
		if _, err := pc.Descriptor(undeclared); !errors.Is(err, ErrUndeclaredUsage) {
			t.Errorf("pass %q: Descriptor(%q) error = %v, want ErrUndeclaredUsage",
				pc.pass.name, undeclared.Name(), err)
		}
		if _, err := pc.DescriptorRange(undeclared); !errors.Is(err, ErrUndeclaredUsage) {
			t.Errorf("pass %q: DescriptorRange(%q) error = %v, want ErrUndeclaredUsage",
				pc.pass.name, undeclared.Name(), err)
		}
		if _, err := pc.RawResource(declared); err != nil {
			t.Errorf("pass %q: RawResource(%q) error = %v, want nil",
				pc.pass.name, declared.Name(), err)
		}
		return nil
	}

	g.AddPass("usesA", PassFunc(func(pc *PassContext) error {
		return check(pc, a, b)
	})).Use(a, StateShaderResource)
	g.AddPass("usesB", PassFunc(func(pc *PassContext) error {
		return check(pc, b, a)
	})).Use(b, StateShaderResource)

	runGraph(t, g, singleProvider{}, 0)
}

// A resource handle from another graph is denied like any undeclared
// resource, even when its index collides with one this pass declared.
func TestPassContextForeignGraphResource(t *testing.T) {
	other := NewGraph()
	impostor := other.AddResource("impostor", ResourceDesc{InitialState: StateCommon})

	g := NewGraph()
	r := g.AddResource("real", ResourceDesc{InitialState: StateCommon})
	if impostor.Index() != r.Index() {
		t.Fatalf("test needs colliding indices, got %d and %d", impostor.Index(), r.Index())
	}

	g.AddPass("p", PassFunc(func(pc *PassContext) error {
		if _, err := pc.RawResource(impostor); !errors.Is(err, ErrUndeclaredUsage) {
			t.Errorf("RawResource(foreign) error = %v, want ErrUndeclaredUsage", err)
		}
		if _, err := pc.Descriptor(impostor); !errors.Is(err, ErrUndeclaredUsage) {
			t.Errorf("Descriptor(foreign) error = %v, want ErrUndeclaredUsage", err)
		}
		if _, err := pc.DescriptorRange(impostor); !errors.Is(err, ErrUndeclaredUsage) {
			t.Errorf("DescriptorRange(foreign) error = %v, want ErrUndeclaredUsage", err)
		}
		if _, err := pc.RawResource(r); err != nil {
			t.Errorf("RawResource(own) error = %v, want nil", err)
		}
		return nil
	})).UseWithDescriptor(r, StateShaderResource, 1)

	runGraph(t, g, singleProvider{}, 0)
}

func TestPassContextNilResource(t *testing.T) {
	g := NewGraph()
	g.AddPass("p", PassFunc(func(pc *PassContext) error {
		if _, err := pc.RawResource(nil); !errors.Is(err, ErrUnknownResource) {
			t.Errorf("RawResource(nil) error = %v, want ErrUnknownResource", err)
		}
		if _, err := pc.Descriptor(nil); !errors.Is(err, ErrUnknownResource) {
			t.Errorf("Descriptor(nil) error = %v, want ErrUnknownResource", err)
		}
		if _, err := pc.DescriptorRange(nil); !errors.Is(err, ErrUnknownResource) {
			t.Errorf("DescriptorRange(nil) error = %v, want ErrUnknownResource", err)
		}
		return nil
	}))

	runGraph(t, g, singleProvider{}, 0)
}

func TestPassContextDescriptor(t *testing.T) {
	g := NewGraph()
	r := g.AddResource("tex", ResourceDesc{InitialState: StateCommon})
	const slot = Descriptor(42)

	g.AddPass("p", PassFunc(func(pc *PassContext) error {
		d, err := pc.Descriptor(r)
		if err != nil {
			t.Errorf("Descriptor() error = %v", err)
		}
		if d != slot {
			t.Errorf("Descriptor() = %d, want %d", d, slot)
		}
		return nil
	})).UseWithDescriptor(r, StateShaderResource, slot)

	runGraph(t, g, singleProvider{}, 0)
}

func TestPassContextDescriptorRange(t *testing.T) {
	g := NewGraph()
	r := g.AddResource("texarray", ResourceDesc{InitialState: StateCommon})
	want := DescriptorRange{First: 8, Count: 4}

	g.AddPass("p", PassFunc(func(pc *PassContext) error {
		dr, err := pc.DescriptorRange(r)
		if err != nil {
			t.Errorf("DescriptorRange() error = %v", err)
		}
		if dr != want {
			t.Errorf("DescriptorRange() = %+v, want %+v", dr, want)
		}
		return nil
	})).UseWithDescriptorRange(r, StateShaderResource, want)

	runGraph(t, g, singleProvider{}, 0)
}

// A usage without a descriptor requirement grants raw access but no
// descriptor lookup.
func TestPassContextDescriptorNotBound(t *testing.T) {
	g := NewGraph()
	r := g.AddResource("r", ResourceDesc{InitialState: StateCommon})

	g.AddPass("p", PassFunc(func(pc *PassContext) error {
		if _, err := pc.RawResource(r); err != nil {
			t.Errorf("RawResource() error = %v", err)
		}
		if _, err := pc.Descriptor(r); !errors.Is(err, ErrUndeclaredUsage) {
			t.Errorf("Descriptor() error = %v, want ErrUndeclaredUsage", err)
		}
		return nil
	})).Use(r, StateShaderResource)

	runGraph(t, g, singleProvider{}, 0)
}

// Declaring a descriptor requirement does not obligate the body to
// consume it.
func TestPassContextUnconsumedDescriptor(t *testing.T) {
	g := NewGraph()
	r := g.AddResource("r", ResourceDesc{InitialState: StateCommon})
	g.AddPass("p", nopBody()).UseWithDescriptor(r, StateShaderResource, 7)

	runGraph(t, g, singleProvider{}, 0)
}
