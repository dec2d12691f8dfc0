package rendergraph

// Descriptor is an opaque GPU-visible binding slot referencing a resource,
// assigned during graph declaration by whoever owns descriptor heap
// allocation. rendergraph never dereferences it.
type Descriptor uint64

// InvalidDescriptor is the zero value, representing no descriptor.
const InvalidDescriptor Descriptor = 0

// DescriptorRange is a contiguous run of descriptor slots.
type DescriptorRange struct {
	// First is the first slot of the range.
	First Descriptor

	// Count is the number of slots in the range.
	Count uint32
}

// IsZero reports whether the range is empty.
func (r DescriptorRange) IsZero() bool {
	return r.First == InvalidDescriptor && r.Count == 0
}
