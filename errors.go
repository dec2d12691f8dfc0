package rendergraph

import "errors"

// Declaration-consistency errors, reported by [Graph.Compile]. Compilation
// aborts on the first violation; no partial graph is ever produced.
var (
	// ErrNilProvider is returned when compiling without a resource provider.
	ErrNilProvider = errors.New("rendergraph: nil resource provider")

	// ErrNilBody is returned when a pass was declared without a body.
	ErrNilBody = errors.New("rendergraph: pass has no body")

	// ErrForeignResource is returned when a pass uses a resource that was
	// never declared with this graph.
	ErrForeignResource = errors.New("rendergraph: resource not declared in this graph")

	// ErrDuplicateUsage is returned when a pass declares the same
	// resource/subresource twice.
	ErrDuplicateUsage = errors.New("rendergraph: duplicate resource usage in pass")

	// ErrMixedSubresources is returned when a resource is used both as a
	// whole and per subresource across the graph.
	ErrMixedSubresources = errors.New("rendergraph: mixed whole-resource and per-subresource usage")

	// ErrSubresourceRange is returned when a usage names a subresource
	// index beyond the resource's declared count.
	ErrSubresourceRange = errors.New("rendergraph: subresource index out of range")

	// ErrUndefinedState is returned when a usage or initial state is
	// StateUndefined.
	ErrUndefinedState = errors.New("rendergraph: undefined resource state")
)

// Execution errors.
var (
	// ErrNilRecorder is returned by Execute when no recorder is supplied.
	ErrNilRecorder = errors.New("rendergraph: nil command recorder")

	// ErrUndeclaredUsage is returned by [PassContext] lookups for a
	// resource the pass did not declare. A pass body can only touch what
	// it declared.
	ErrUndeclaredUsage = errors.New("rendergraph: undeclared resource usage")

	// ErrUnknownResource is returned when resolving a nil or foreign
	// resource handle.
	ErrUnknownResource = errors.New("rendergraph: unknown resource")
)
