package vm

import "fmt"

// A PageTable maps the page numbers of one address space to the location of
// their content. It is a dense table with a fixed number of entries.
type PageTable struct {
	entries []PTE
}

// NewPageTable creates a page table that covers numPages pages. Every entry
// starts unmapped.
func NewPageTable(numPages int) *PageTable {
	if numPages <= 0 {
		panic("a page table needs at least one entry")
	}

	return &PageTable{
		entries: make([]PTE, numPages),
	}
}

// NumPages returns the bound of the table.
func (pt *PageTable) NumPages() int {
	return len(pt.entries)
}

// Contains tells if pgn is inside the bound of the table.
func (pt *PageTable) Contains(pgn PageNum) bool {
	return uint64(pgn) < uint64(len(pt.entries))
}

// Find returns the entry of a page.
func (pt *PageTable) Find(pgn PageNum) (PTE, error) {
	if !pt.Contains(pgn) {
		return PTE{}, fmt.Errorf("page %d beyond the table bound %d: %w",
			pgn, len(pt.entries), ErrInvalidAddress)
	}

	return pt.entries[pgn], nil
}

// Update replaces the entry of a page.
func (pt *PageTable) Update(pgn PageNum, pte PTE) {
	pt.pageMustBeInBound(pgn)
	pt.entries[pgn] = pte
}

// Clear resets the entry of a page to unmapped.
func (pt *PageTable) Clear(pgn PageNum) {
	pt.pageMustBeInBound(pgn)
	pt.entries[pgn] = PTE{}
}

// Mapped calls fn for every mapped entry in page order.
func (pt *PageTable) Mapped(fn func(pgn PageNum, pte PTE)) {
	for i, e := range pt.entries {
		if e.IsMapped() {
			fn(PageNum(i), e)
		}
	}
}

func (pt *PageTable) pageMustBeInBound(pgn PageNum) {
	if !pt.Contains(pgn) {
		panic(fmt.Sprintf("page %d beyond the table bound %d",
			pgn, len(pt.entries)))
	}
}
