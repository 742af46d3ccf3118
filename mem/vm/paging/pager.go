// Package paging backs virtual pages with RAM and swap frames. It translates
// page numbers to RAM frames and brings swapped pages back in, evicting the
// oldest resident page when RAM is full.
package paging

import (
	"fmt"

	"github.com/sarchlab/vmsim/mem/vm"
)

// A Pager moves pages between a RAM device and a swap device. It works on the
// page table and residency list of whichever address space it is given.
type Pager struct {
	layout vm.Layout
	ram    vm.FrameDevice
	swap   vm.FrameDevice
}

// NewPager creates a pager. Both devices must use frames of the page size.
func NewPager(layout vm.Layout, ram, swap vm.FrameDevice) *Pager {
	for _, d := range []vm.FrameDevice{ram, swap} {
		if d.FrameSize() != layout.PageSize() {
			panic(fmt.Sprintf("device %s has %d B frames, but pages are %d B",
				d.Name(), d.FrameSize(), layout.PageSize()))
		}
	}

	return &Pager{
		layout: layout,
		ram:    ram,
		swap:   swap,
	}
}

// Layout returns how addresses are split into pages.
func (p *Pager) Layout() vm.Layout {
	return p.layout
}

// RAM returns the RAM device.
func (p *Pager) RAM() vm.FrameDevice {
	return p.ram
}

// Swap returns the swap device.
func (p *Pager) Swap() vm.FrameDevice {
	return p.swap
}

// MapPage backs an unmapped page with a cleared frame. A RAM frame is used
// when one is free, otherwise the page starts on swap.
func (p *Pager) MapPage(pt *vm.PageTable, fifo *vm.FIFO, pgn vm.PageNum) error {
	pte, err := pt.Find(pgn)
	if err != nil {
		return err
	}

	if pte.IsMapped() {
		return fmt.Errorf("page %d is already %s: %w",
			pgn, pte, vm.ErrInvalidAddress)
	}

	frame, err := p.ram.AcquireFrame()
	if err == nil {
		err = p.ram.ZeroFrame(frame)
		if err != nil {
			p.ram.ReleaseFrame(frame)
			return err
		}

		pt.Update(pgn, vm.ResidentPTE(frame))
		fifo.Enlist(pgn)

		return nil
	}

	frame, err = p.swap.AcquireFrame()
	if err != nil {
		return fmt.Errorf("page %d: no RAM or swap frame: %w",
			pgn, vm.ErrOutOfSpace)
	}

	err = p.swap.ZeroFrame(frame)
	if err != nil {
		p.swap.ReleaseFrame(frame)
		return err
	}

	pt.Update(pgn, vm.SwappedPTE(frame))

	return nil
}

// Unmap gives the frame of a page back to its device.
func (p *Pager) Unmap(pt *vm.PageTable, fifo *vm.FIFO, pgn vm.PageNum) {
	pte, err := pt.Find(pgn)
	if err != nil {
		return
	}

	switch pte.Kind() {
	case vm.Resident:
		p.ram.ReleaseFrame(pte.Frame())
		fifo.Remove(pgn)
	case vm.Swapped:
		p.swap.ReleaseFrame(pte.Frame())
	case vm.Unmapped:
		return
	}

	pt.Clear(pgn)
}

// Resolve returns the RAM frame of a page. A swapped page is brought in
// first, and the returned fault tells how.
func (p *Pager) Resolve(
	pt *vm.PageTable,
	fifo *vm.FIFO,
	pgn vm.PageNum,
) (int, *vm.Fault, error) {
	pte, err := pt.Find(pgn)
	if err != nil {
		return 0, nil, err
	}

	switch pte.Kind() {
	case vm.Resident:
		return pte.Frame(), nil, nil
	case vm.Swapped:
		return p.swapIn(pt, fifo, pgn, pte.Frame())
	default:
		return 0, nil, fmt.Errorf("page %d is not mapped: %w",
			pgn, vm.ErrInvalidAddress)
	}
}

func (p *Pager) swapIn(
	pt *vm.PageTable,
	fifo *vm.FIFO,
	pgn vm.PageNum,
	swapFrame int,
) (int, *vm.Fault, error) {
	frame, err := p.ram.AcquireFrame()
	if err == nil {
		err = vm.CopyFrame(p.swap, swapFrame, p.ram, frame)
		if err != nil {
			p.ram.ReleaseFrame(frame)
			return 0, nil, err
		}

		p.swap.ReleaseFrame(swapFrame)
		pt.Update(pgn, vm.ResidentPTE(frame))
		fifo.Enlist(pgn)

		return frame, &vm.Fault{Page: pgn, Frame: frame}, nil
	}

	return p.swapWithVictim(pt, fifo, pgn, swapFrame)
}

// swapWithVictim exchanges the oldest resident page with the target page.
// Nothing changes unless the exchange can complete.
func (p *Pager) swapWithVictim(
	pt *vm.PageTable,
	fifo *vm.FIFO,
	pgn vm.PageNum,
	swapFrame int,
) (int, *vm.Fault, error) {
	victim, found := fifo.FindVictim()
	if !found {
		return 0, nil, fmt.Errorf("page %d: RAM is full and no page "+
			"can be evicted: %w", pgn, vm.ErrOutOfSpace)
	}

	victimPTE, err := pt.Find(victim)
	if err != nil || !victimPTE.IsResident() {
		panic(fmt.Sprintf("page %d is listed as resident but is %s",
			victim, victimPTE))
	}

	frame := victimPTE.Frame()

	newSwapFrame, err := p.swap.AcquireFrame()
	if err != nil {
		return 0, nil, fmt.Errorf("page %d, evicting page %d: %w",
			pgn, victim, vm.ErrSwapExhausted)
	}

	err = vm.CopyFrame(p.ram, frame, p.swap, newSwapFrame)
	if err != nil {
		p.swap.ReleaseFrame(newSwapFrame)
		return 0, nil, err
	}

	err = vm.CopyFrame(p.swap, swapFrame, p.ram, frame)
	if err != nil {
		p.swap.ReleaseFrame(newSwapFrame)
		return 0, nil, err
	}

	pt.Update(victim, vm.SwappedPTE(newSwapFrame))
	pt.Update(pgn, vm.ResidentPTE(frame))
	p.swap.ReleaseFrame(swapFrame)
	fifo.Remove(victim)
	fifo.Enlist(pgn)

	fault := &vm.Fault{
		Page:      pgn,
		Frame:     frame,
		HasVictim: true,
		Victim:    victim,
		SwapFrame: newSwapFrame,
	}

	return frame, fault, nil
}

// ReadValue reads the byte at a virtual address.
func (p *Pager) ReadValue(
	pt *vm.PageTable,
	fifo *vm.FIFO,
	addr uint64,
) (byte, *vm.Fault, error) {
	frame, fault, err := p.Resolve(pt, fifo, p.layout.PageNumber(addr))
	if err != nil {
		return 0, nil, err
	}

	value, err := p.ram.ReadByteAt(
		p.layout.PhysicalAddr(frame, p.layout.Offset(addr)))
	if err != nil {
		return 0, fault, err
	}

	return value, fault, nil
}

// WriteValue writes a byte at a virtual address.
func (p *Pager) WriteValue(
	pt *vm.PageTable,
	fifo *vm.FIFO,
	addr uint64,
	value byte,
) (*vm.Fault, error) {
	frame, fault, err := p.Resolve(pt, fifo, p.layout.PageNumber(addr))
	if err != nil {
		return nil, err
	}

	err = p.ram.WriteByteAt(
		p.layout.PhysicalAddr(frame, p.layout.Offset(addr)), value)
	if err != nil {
		return fault, err
	}

	return fault, nil
}
