package rendergraph

import "github.com/gogpu/gputypes"

// ResourceDesc describes a logical graph resource.
type ResourceDesc struct {
	// Format is the texture pixel format, if the resource is a texture.
	// Diagnostic for the graph itself; backends consume it when they
	// allocate physical instances.
	Format gputypes.TextureFormat

	// Subresources is the number of addressable subresources.
	// Zero means one.
	Subresources uint32

	// InitialState is the state the resource is in when the graph first
	// touches it.
	InitialState State

	// FinalState, when not StateUndefined, is the state the graph must
	// leave the resource in after its last touch.
	FinalState State
}

// Resource is a logical handle to a GPU buffer or texture. Identity is the
// index assigned at declaration; the name is diagnostic only. The physical
// instance backing a Resource may differ per frame (see [ResourceProvider]).
//
// Resources are created by [Graph.AddResource] and are valid only with the
// graph that created them.
type Resource struct {
	graph *Graph
	index int
	name  string
	desc  ResourceDesc
}

// Index returns the resource's identity within its graph.
func (r *Resource) Index() int { return r.index }

// Name returns the diagnostic name given at declaration.
func (r *Resource) Name() string { return r.name }

// Desc returns the declaration-time description.
func (r *Resource) Desc() ResourceDesc { return r.desc }

// subresourceCount returns the declared count, treating zero as one.
func (r *Resource) subresourceCount() uint32 {
	if r.desc.Subresources == 0 {
		return 1
	}
	return r.desc.Subresources
}
