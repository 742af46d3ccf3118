package vm

// A VictimFinder decides which resident page should leave RAM when a frame
// is needed.
type VictimFinder interface {
	// FindVictim returns the page to evict without removing it.
	FindVictim() (PageNum, bool)

	// Remove takes a page out of the candidates.
	Remove(pgn PageNum) bool
}

// FIFO records the order in which pages became resident. The page that has
// been resident the longest is the victim. Hits do not change the order.
type FIFO struct {
	pages []PageNum
}

// NewFIFO creates an empty residency list.
func NewFIFO() *FIFO {
	return &FIFO{}
}

// Enlist records that a page has just become resident.
func (f *FIFO) Enlist(pgn PageNum) {
	f.pages = append(f.pages, pgn)
}

// FindVictim returns the oldest resident page.
func (f *FIFO) FindVictim() (PageNum, bool) {
	if len(f.pages) == 0 {
		return 0, false
	}

	return f.pages[0], true
}

// Remove takes a page out of the list, wherever it is.
func (f *FIFO) Remove(pgn PageNum) bool {
	for i, p := range f.pages {
		if p == pgn {
			f.pages = append(f.pages[:i], f.pages[i+1:]...)
			return true
		}
	}

	return false
}

// Contains tells if a page is in the list.
func (f *FIFO) Contains(pgn PageNum) bool {
	for _, p := range f.pages {
		if p == pgn {
			return true
		}
	}

	return false
}

// Len returns the number of resident pages.
func (f *FIFO) Len() int {
	return len(f.pages)
}

// Pages returns the resident pages, oldest first.
func (f *FIFO) Pages() []PageNum {
	pages := make([]PageNum, len(f.pages))
	copy(pages, f.pages)

	return pages
}
