package addrspace

// A VMA is a contiguous memory area of a process. It starts at a fixed
// address and grows upward; End is its break. Allocations are served from
// its free list first.
type VMA struct {
	ID    int
	Start uint64
	End   uint64

	free *FreeList
}

func newVMA(id int, start uint64) *VMA {
	return &VMA{
		ID:    id,
		Start: start,
		End:   start,
		free:  NewFreeList(Region{Start: start, End: start}),
	}
}

// Region returns the extent of the area.
func (v *VMA) Region() Region {
	return Region{Start: v.Start, End: v.End}
}

// FreeRegions returns the free regions of the area in list order.
func (v *VMA) FreeRegions() []Region {
	return v.free.Regions()
}

// blocks tells if the area stands in the way of growing into r. A region
// that touches the area at a boundary does not block it. An empty area still
// reserves its start address.
func (v *VMA) blocks(r Region) bool {
	if v.Region().Overlaps(r) {
		return true
	}

	return v.Start >= r.Start && v.Start < r.End
}
