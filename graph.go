package rendergraph

// PassBody is the caller-supplied work of a single pass. Run is invoked
// exactly once per pass execution with a context scoped to the usages the
// pass declared. A returned error aborts the frame's execution.
type PassBody interface {
	Run(*PassContext) error
}

// PassFunc adapts a plain function to the [PassBody] interface.
type PassFunc func(*PassContext) error

// Run calls f.
func (f PassFunc) Run(pc *PassContext) error { return f(pc) }

// Usage declares that a pass touches a resource in a required state,
// optionally binding a descriptor or descriptor range for the pass body to
// look up. Usages are immutable once declared.
type Usage struct {
	resource    *Resource
	subresource Subresource
	state       State
	descriptor  Descriptor
	rangeSet    bool
	descRange   DescriptorRange
}

// Graph is the declaration surface: an ordered list of passes, each with
// its resource usage contract. Declared order is execution order; the
// compiler never reorders passes, since barrier correctness depends on it.
//
// A Graph is not safe for concurrent declaration. Compile may be called
// once the declaration is complete; the graph can be compiled again if the
// declaration changes.
type Graph struct {
	resources []*Resource
	passes    []*passDecl
}

type passDecl struct {
	name   string
	body   PassBody
	usages []Usage
}

// NewGraph creates an empty render graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddResource declares a logical resource and returns its handle. The
// handle is only valid with the graph that created it.
func (g *Graph) AddResource(name string, desc ResourceDesc) *Resource {
	r := &Resource{
		graph: g,
		index: len(g.resources),
		name:  name,
		desc:  desc,
	}
	g.resources = append(g.resources, r)
	return r
}

// AddPass appends a pass to the graph and returns a builder for declaring
// its resource usages. Passes execute in the order they were added.
func (g *Graph) AddPass(name string, body PassBody) *PassBuilder {
	d := &passDecl{name: name, body: body}
	g.passes = append(g.passes, d)
	return &PassBuilder{decl: d}
}

// ResourceCount returns the number of declared resources.
func (g *Graph) ResourceCount() int { return len(g.resources) }

// PassCount returns the number of declared passes.
func (g *Graph) PassCount() int { return len(g.passes) }

// PassBuilder declares the usage contract of one pass. Methods chain in
// the builder style and record declarations verbatim; all validation
// happens in [Graph.Compile] so that a broken declaration fails the whole
// compilation rather than a single call site.
type PassBuilder struct {
	decl *passDecl
}

// Use declares that the pass requires the whole resource in the given state.
func (p *PassBuilder) Use(r *Resource, state State) *PassBuilder {
	return p.add(Usage{resource: r, subresource: SubresourceAll, state: state})
}

// UseSubresource declares that the pass requires one subresource of r in
// the given state.
func (p *PassBuilder) UseSubresource(r *Resource, sub Subresource, state State) *PassBuilder {
	return p.add(Usage{resource: r, subresource: sub, state: state})
}

// UseWithDescriptor is like Use and additionally binds the descriptor slot
// the pass body will retrieve with [PassContext.Descriptor].
func (p *PassBuilder) UseWithDescriptor(r *Resource, state State, d Descriptor) *PassBuilder {
	return p.add(Usage{resource: r, subresource: SubresourceAll, state: state, descriptor: d})
}

// UseWithDescriptorRange is like Use and additionally binds a contiguous
// descriptor range retrievable with [PassContext.DescriptorRange].
func (p *PassBuilder) UseWithDescriptorRange(r *Resource, state State, dr DescriptorRange) *PassBuilder {
	return p.add(Usage{resource: r, subresource: SubresourceAll, state: state, rangeSet: true, descRange: dr})
}

func (p *PassBuilder) add(u Usage) *PassBuilder {
	p.decl.usages = append(p.decl.usages, u)
	return p
}
