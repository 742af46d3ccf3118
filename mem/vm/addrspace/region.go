// Package addrspace manages the virtual address space of a process: the
// memory areas, the free regions inside them and the symbol table that names
// the allocated regions.
package addrspace

import (
	"fmt"

	"github.com/sarchlab/vmsim/mem/vm"
)

// A Region is the half-open virtual address interval [Start, End).
type Region struct {
	Start uint64
	End   uint64
}

// Size returns the number of bytes in the region.
func (r Region) Size() uint64 {
	if r.End < r.Start {
		return 0
	}

	return r.End - r.Start
}

// Empty tells if the region holds no byte.
func (r Region) Empty() bool {
	return r.End <= r.Start
}

// Contains tells if addr is inside the region.
func (r Region) Contains(addr uint64) bool {
	return addr >= r.Start && addr < r.End
}

// Overlaps tells if the two regions share at least one byte. Regions that
// only touch at a boundary do not overlap.
func (r Region) Overlaps(o Region) bool {
	return r.Start < o.End && o.Start < r.End
}

func (r Region) String() string {
	return fmt.Sprintf("[0x%x, 0x%x)", r.Start, r.End)
}

// A FreeList keeps the free regions of a memory area in list order.
type FreeList struct {
	regions []Region
}

// NewFreeList creates a list holding a single region. The region may be
// empty, in which case it only marks where the area starts.
func NewFreeList(initial Region) *FreeList {
	return &FreeList{regions: []Region{initial}}
}

// FindFree carves size bytes out of the first region that is large enough.
func (l *FreeList) FindFree(size uint64) (Region, bool) {
	if size == 0 {
		return Region{}, false
	}

	for i, r := range l.regions {
		if r.Size() < size {
			continue
		}

		found := Region{Start: r.Start, End: r.Start + size}

		switch {
		case r.Size() > size:
			l.regions[i].Start += size
		case i == len(l.regions)-1:
			l.regions[i] = Region{Start: r.End, End: r.End}
		default:
			l.regions = append(l.regions[:i], l.regions[i+1:]...)
		}

		return found, true
	}

	return Region{}, false
}

// Release puts a region at the head of the list. Neighbors are not merged.
func (l *FreeList) Release(r Region) error {
	if r.Empty() {
		return fmt.Errorf("releasing region %s: %w", r, vm.ErrInvalidSize)
	}

	l.regions = append([]Region{r}, l.regions...)

	return nil
}

// Regions returns the regions in list order.
func (l *FreeList) Regions() []Region {
	regions := make([]Region, len(l.regions))
	copy(regions, l.regions)

	return regions
}

// Len returns the number of regions in the list, sentinels included.
func (l *FreeList) Len() int {
	return len(l.regions)
}
