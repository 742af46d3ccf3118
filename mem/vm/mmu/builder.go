package mmu

import (
	"fmt"
	"time"

	"github.com/sarchlab/vmsim/mem/vm"
	"github.com/sarchlab/vmsim/mem/vm/addrspace"
	"github.com/sarchlab/vmsim/mem/vm/paging"
	"github.com/sarchlab/vmsim/mem/vm/tlb"
	"github.com/sarchlab/vmsim/memory"
)

// A Builder can build MMU component
type Builder struct {
	pageBits      uint64
	numPages      int
	ramSize       uint64
	swapSize      uint64
	tlbCapacity   int
	maxSymbols    int
	vmaStarts     []uint64
	accessLatency time.Duration
	claims        *vm.ClaimRegistry
	ram           *memory.Device
	swap          *memory.Device
	pager         Pager
}

// MakeBuilder creates a new builder
func MakeBuilder() Builder {
	return Builder{
		pageBits:    8,
		numPages:    16384,
		ramSize:     1 << 20,
		swapSize:    16 << 20,
		tlbCapacity: tlb.DefaultCapacity,
		maxSymbols:  addrspace.DefaultMaxSymbols,
	}
}

// WithPageBits sets the page size as a power of 2.
func (b Builder) WithPageBits(n uint64) Builder {
	b.pageBits = n
	return b
}

// WithNumPages sets the number of entries in the page table of every
// process.
func (b Builder) WithNumPages(n int) Builder {
	b.numPages = n
	return b
}

// WithRAMSize sets the capacity of the RAM created by the builder.
func (b Builder) WithRAMSize(n uint64) Builder {
	b.ramSize = n
	return b
}

// WithSwapSize sets the capacity of the swap device created by the builder.
func (b Builder) WithSwapSize(n uint64) Builder {
	b.swapSize = n
	return b
}

// WithTLBCapacity sets the number of TLB entries.
func (b Builder) WithTLBCapacity(n int) Builder {
	b.tlbCapacity = n
	return b
}

// WithMaxSymbols sets the size of the symbol table of every process.
func (b Builder) WithMaxSymbols(n int) Builder {
	b.maxSymbols = n
	return b
}

// WithVMAStarts sets the start address of each memory area. Allocations go
// to the first one.
func (b Builder) WithVMAStarts(starts ...uint64) Builder {
	b.vmaStarts = starts
	return b
}

// WithAccessLatency sets how long each read and write takes.
func (b Builder) WithAccessLatency(d time.Duration) Builder {
	b.accessLatency = d
	return b
}

// WithClaimRegistry shares a claim registry with other MMUs.
func (b Builder) WithClaimRegistry(r *vm.ClaimRegistry) Builder {
	b.claims = r
	return b
}

// WithRAM uses an existing RAM device instead of creating one.
func (b Builder) WithRAM(d *memory.Device) Builder {
	b.ram = d
	return b
}

// WithSwap uses an existing swap device instead of creating one.
func (b Builder) WithSwap(d *memory.Device) Builder {
	b.swap = d
	return b
}

// WithPager replaces the pager that moves pages between the devices.
func (b Builder) WithPager(p Pager) Builder {
	b.pager = p
	return b
}

// Build creates a new MMU
func (b Builder) Build(name string) *Comp {
	layout := vm.NewLayout(b.pageBits)

	if b.numPages <= 0 {
		panic(fmt.Sprintf("%s: the page table needs at least one entry", name))
	}

	c := &Comp{
		name:       name,
		layout:     layout,
		numPages:   b.numPages,
		maxSymbols: b.maxSymbols,
		vmaStarts:  b.vmaStarts,
		latency:    b.accessLatency,
		claims:     b.claims,
		ram:        b.ram,
		swap:       b.swap,
		pager:      b.pager,
		processes:  make(map[vm.PID]*addrspace.AddressSpace),
	}

	if c.claims == nil {
		c.claims = vm.NewClaimRegistry(vm.DefaultClaimCapacity)
	}

	if c.ram == nil {
		c.ram = memory.NewDevice(name+".RAM", b.ramSize, layout.PageSize())
	}

	if c.swap == nil {
		c.swap = memory.NewDevice(name+".Swap", b.swapSize, layout.PageSize())
	}

	if c.pager == nil {
		c.pager = paging.NewPager(layout, c.ram, c.swap)
	}

	c.tlb = tlb.MakeBuilder().
		WithCapacity(b.tlbCapacity).
		Build(name + ".TLB")

	return c
}
