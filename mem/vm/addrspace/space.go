package addrspace

import (
	"fmt"
	"math"

	"github.com/sarchlab/vmsim/mem/vm"
)

// DefaultMaxSymbols is the size of the symbol table unless configured.
const DefaultMaxSymbols = 30

// A PageMapper backs new pages with frames and gives the frames back.
type PageMapper interface {
	// MapPage attaches a frame to an unmapped page.
	MapPage(pt *vm.PageTable, fifo *vm.FIFO, pgn vm.PageNum) error

	// Unmap releases the frame of a page, wherever it lives.
	Unmap(pt *vm.PageTable, fifo *vm.FIFO, pgn vm.PageNum)
}

// Config describes the shape of an address space.
type Config struct {
	Layout     vm.Layout
	NumPages   int
	MaxSymbols int

	// VMAStarts holds the start address of each memory area, in id order.
	// Nil means a single area starting at address 0.
	VMAStarts []uint64
}

type symbol struct {
	live   bool
	vma    int
	region Region
}

// A Symbol is a named live region.
type Symbol struct {
	ID     int
	VMA    int
	Region Region
}

// An AddressSpace is the memory of one process.
type AddressSpace struct {
	pid     vm.PID
	layout  vm.Layout
	vmas    []*VMA
	symbols []symbol
	pt      *vm.PageTable
	fifo    *vm.FIFO
	mapper  PageMapper
}

// New creates an empty address space. Every memory area starts with a break
// equal to its start address.
func New(pid vm.PID, cfg Config, mapper PageMapper) *AddressSpace {
	if cfg.MaxSymbols <= 0 {
		cfg.MaxSymbols = DefaultMaxSymbols
	}

	if len(cfg.VMAStarts) == 0 {
		cfg.VMAStarts = []uint64{0}
	}

	as := &AddressSpace{
		pid:     pid,
		layout:  cfg.Layout,
		symbols: make([]symbol, cfg.MaxSymbols),
		pt:      vm.NewPageTable(cfg.NumPages),
		fifo:    vm.NewFIFO(),
		mapper:  mapper,
	}

	for i, start := range cfg.VMAStarts {
		if cfg.Layout.Offset(start) != 0 {
			panic(fmt.Sprintf("memory area %d starts at 0x%x, "+
				"which is not page aligned", i, start))
		}

		as.vmas = append(as.vmas, newVMA(i, start))
	}

	return as
}

// PID returns the owner of the address space.
func (as *AddressSpace) PID() vm.PID {
	return as.pid
}

// Layout returns how addresses are split into pages.
func (as *AddressSpace) Layout() vm.Layout {
	return as.layout
}

// PageTable returns the page table of the address space.
func (as *AddressSpace) PageTable() *vm.PageTable {
	return as.pt
}

// FIFO returns the residency list of the address space.
func (as *AddressSpace) FIFO() *vm.FIFO {
	return as.fifo
}

// VMA returns a memory area by id.
func (as *AddressSpace) VMA(id int) (*VMA, error) {
	if id < 0 || id >= len(as.vmas) {
		return nil, fmt.Errorf("pid %d, vma %d: %w", as.pid, id, vm.ErrInvalidVMA)
	}

	return as.vmas[id], nil
}

// VMAs returns all the memory areas in id order. The caller must not modify
// them.
func (as *AddressSpace) VMAs() []*VMA {
	return as.vmas
}

// MaxSymbols returns the capacity of the symbol table.
func (as *AddressSpace) MaxSymbols() int {
	return len(as.symbols)
}

// Symbol returns the live region of a symbol.
func (as *AddressSpace) Symbol(id int) (Region, error) {
	if id < 0 || id >= len(as.symbols) || !as.symbols[id].live {
		return Region{}, fmt.Errorf("pid %d, symbol %d: %w",
			as.pid, id, vm.ErrInvalidSymbol)
	}

	return as.symbols[id].region, nil
}

// Symbols returns the live symbols in id order.
func (as *AddressSpace) Symbols() []Symbol {
	var symbols []Symbol

	for id, s := range as.symbols {
		if s.live {
			symbols = append(symbols, Symbol{ID: id, VMA: s.vma, Region: s.region})
		}
	}

	return symbols
}

// Allocate reserves size bytes in a memory area and names them with the
// symbol. It returns the start address of the region.
func (as *AddressSpace) Allocate(vmaID, symbolID int, size uint64) (uint64, error) {
	if size == 0 {
		return 0, fmt.Errorf("pid %d, symbol %d: %w",
			as.pid, symbolID, vm.ErrInvalidSize)
	}

	if symbolID < 0 || symbolID >= len(as.symbols) {
		return 0, fmt.Errorf("pid %d, symbol %d: %w",
			as.pid, symbolID, vm.ErrInvalidSymbol)
	}

	if as.symbols[symbolID].live {
		return 0, fmt.Errorf("pid %d, symbol %d: %w",
			as.pid, symbolID, vm.ErrSymbolInUse)
	}

	vma, err := as.VMA(vmaID)
	if err != nil {
		return 0, err
	}

	region, found := vma.free.FindFree(size)
	if !found {
		region, err = as.grow(vma, size)
		if err != nil {
			return 0, err
		}
	}

	as.symbols[symbolID] = symbol{live: true, vma: vmaID, region: region}

	return region.Start, nil
}

// grow moves the break of the area up by whole pages and maps the new pages.
// The returned region covers size bytes from the old break. The rest of the
// last page goes to the free list.
func (as *AddressSpace) grow(vma *VMA, size uint64) (Region, error) {
	if size > math.MaxUint64-(as.layout.PageSize()-1) {
		return Region{}, fmt.Errorf("pid %d, vma %d cannot grow by %d "+
			"bytes: %w", as.pid, vma.ID, size, vm.ErrOutOfSpace)
	}

	inc := as.layout.AlignUp(size)
	if vma.End+inc < vma.End {
		return Region{}, fmt.Errorf("pid %d, vma %d cannot grow by %d "+
			"bytes: %w", as.pid, vma.ID, size, vm.ErrOutOfSpace)
	}

	candidate := Region{Start: vma.End, End: vma.End + inc}

	err := as.validateGrowth(vma, candidate)
	if err != nil {
		return Region{}, err
	}

	first := as.layout.PageNumber(candidate.Start)
	numPages := inc / as.layout.PageSize()

	for i := uint64(0); i < numPages; i++ {
		err = as.mapper.MapPage(as.pt, as.fifo, first+vm.PageNum(i))
		if err != nil {
			for j := uint64(0); j < i; j++ {
				as.mapper.Unmap(as.pt, as.fifo, first+vm.PageNum(j))
			}

			return Region{}, fmt.Errorf("pid %d, growing vma %d to 0x%x: %w",
				as.pid, vma.ID, candidate.End, err)
		}
	}

	vma.End = candidate.End

	slack := Region{Start: candidate.Start + size, End: candidate.End}
	if !slack.Empty() {
		_ = vma.free.Release(slack)
	}

	return Region{Start: candidate.Start, End: candidate.Start + size}, nil
}

func (as *AddressSpace) validateGrowth(vma *VMA, candidate Region) error {
	lastPage := as.layout.PageNumber(candidate.End - 1)
	if candidate.End < candidate.Start || !as.pt.Contains(lastPage) {
		return fmt.Errorf("pid %d, vma %d cannot grow to 0x%x beyond the "+
			"page table: %w", as.pid, vma.ID, candidate.End, vm.ErrOutOfSpace)
	}

	for _, other := range as.vmas {
		if other == vma {
			continue
		}

		if other.blocks(candidate) {
			return fmt.Errorf("pid %d, vma %d growing to %s crosses vma %d "+
				"%s: %w", as.pid, vma.ID, candidate, other.ID, other.Region(),
				vm.ErrOutOfSpace)
		}
	}

	return nil
}

// Free gives the region of a symbol back to its memory area. The pages stay
// mapped.
func (as *AddressSpace) Free(symbolID int) (Region, error) {
	region, err := as.Symbol(symbolID)
	if err != nil {
		return Region{}, err
	}

	s := as.symbols[symbolID]

	err = as.vmas[s.vma].free.Release(region)
	if err != nil {
		return Region{}, err
	}

	as.symbols[symbolID] = symbol{}

	return region, nil
}

// Teardown releases every frame the address space holds. The address space
// must not be used afterward.
func (as *AddressSpace) Teardown() {
	var pages []vm.PageNum

	as.pt.Mapped(func(pgn vm.PageNum, _ vm.PTE) {
		pages = append(pages, pgn)
	})

	for _, pgn := range pages {
		as.mapper.Unmap(as.pt, as.fifo, pgn)
	}

	for i := range as.symbols {
		as.symbols[i] = symbol{}
	}
}
