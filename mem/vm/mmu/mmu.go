// Package mmu provides the entry points of the virtual memory subsystem:
// process creation and exit, allocation, free, and byte reads and writes by
// symbol and offset.
package mmu

import (
	"fmt"
	"sync"
	"time"

	"github.com/sarchlab/vmsim/mem/vm"
	"github.com/sarchlab/vmsim/mem/vm/addrspace"
	"github.com/sarchlab/vmsim/mem/vm/tlb"
	"github.com/sarchlab/vmsim/memory"
	"github.com/sarchlab/vmsim/sim/hooking"
)

// Comp is the memory management unit. The RAM, the swap device and the TLB
// are shared by all the processes. Calls are serialized.
type Comp struct {
	hooking.HookableBase

	lock sync.Mutex

	name       string
	layout     vm.Layout
	numPages   int
	maxSymbols int
	vmaStarts  []uint64
	latency    time.Duration

	ram    *memory.Device
	swap   *memory.Device
	pager  Pager
	tlb    *tlb.Comp
	claims *vm.ClaimRegistry

	processes map[vm.PID]*addrspace.AddressSpace
}

// Name returns the name of the MMU.
func (c *Comp) Name() string {
	return c.name
}

// Layout returns how addresses are split into pages.
func (c *Comp) Layout() vm.Layout {
	return c.layout
}

// RAM returns the RAM device.
func (c *Comp) RAM() *memory.Device {
	return c.ram
}

// Swap returns the swap device.
func (c *Comp) Swap() *memory.Device {
	return c.swap
}

// TLB returns the translation cache.
func (c *Comp) TLB() *tlb.Comp {
	return c.tlb
}

// Claims returns the write claim registry.
func (c *Comp) Claims() *vm.ClaimRegistry {
	return c.claims
}

// CreateProcess creates an empty address space for pid.
func (c *Comp) CreateProcess(pid vm.PID) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if _, found := c.processes[pid]; found {
		return fmt.Errorf("pid %d: %w", pid, vm.ErrProcessExists)
	}

	cfg := addrspace.Config{
		Layout:     c.layout,
		NumPages:   c.numPages,
		MaxSymbols: c.maxSymbols,
		VMAStarts:  c.vmaStarts,
	}
	c.processes[pid] = addrspace.New(pid, cfg, c.pager)

	return nil
}

// ExitProcess releases every frame, TLB entry and claim of pid.
func (c *Comp) ExitProcess(pid vm.PID) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	as, err := c.process(pid)
	if err != nil {
		return err
	}

	as.Teardown()
	c.claims.ReleaseAll(pid)
	c.tlb.Flush(pid)
	delete(c.processes, pid)

	return nil
}

func (c *Comp) process(pid vm.PID) (*addrspace.AddressSpace, error) {
	as, found := c.processes[pid]
	if !found {
		return nil, fmt.Errorf("pid %d: %w", pid, vm.ErrNoProcess)
	}

	return as, nil
}

// Allocate reserves size bytes in the first memory area of pid and names them
// with the symbol. It returns the start address.
func (c *Comp) Allocate(pid vm.PID, size uint64, symbol int) (uint64, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	event := vm.RegionEvent{PID: pid, Symbol: symbol}

	as, err := c.process(pid)
	if err != nil {
		event.Err = err
		c.invokeHook(vm.HookPosAlloc, event)

		return 0, err
	}

	addr, err := as.Allocate(0, symbol, size)
	if err != nil {
		event.Err = err
		c.invokeHook(vm.HookPosAlloc, event)

		return 0, err
	}

	event.Start = addr
	event.End = addr + size
	c.invokeHook(vm.HookPosAlloc, event)

	return addr, nil
}

// Free gives the region of a symbol back. The claims inside the region and
// the TLB entries of pid are dropped.
func (c *Comp) Free(pid vm.PID, symbol int) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	event := vm.RegionEvent{PID: pid, Symbol: symbol}

	as, err := c.process(pid)
	if err != nil {
		event.Err = err
		c.invokeHook(vm.HookPosFree, event)

		return err
	}

	region, err := as.Free(symbol)
	if err != nil {
		event.Err = err
		c.invokeHook(vm.HookPosFree, event)

		return err
	}

	c.claims.ReleaseRange(pid, region.Start, region.End)
	c.tlb.Flush(pid)

	event.Start = region.Start
	event.End = region.End
	c.invokeHook(vm.HookPosFree, event)

	return nil
}

// Read returns the byte at offset in the region of the symbol.
func (c *Comp) Read(pid vm.PID, symbol int, offset uint64) (byte, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.wait()

	event := vm.AccessEvent{
		PID:    pid,
		Op:     vm.OpRead,
		Symbol: symbol,
		Offset: offset,
	}

	as, addr, err := c.locate(pid, symbol, offset)
	if err != nil {
		return 0, c.accessFailed(event, err)
	}

	pgn := c.layout.PageNumber(addr)
	event.VAddr = addr
	event.Page = pgn

	entry, found := c.tlb.Lookup(pid, pgn)
	if found && entry.Offset == c.layout.Offset(addr) {
		event.Value = entry.Value
		event.TLBHit = true
		c.invokeHook(vm.HookPosAccess, event)

		return entry.Value, nil
	}

	value, fault, err := c.pager.ReadValue(as.PageTable(), as.FIFO(), addr)
	if err != nil {
		return 0, c.accessFailed(event, err)
	}

	c.handleFault(pid, fault)
	c.tlb.Update(pid, pgn, c.layout.Offset(addr), value)

	event.Value = value
	event.Faulted = fault != nil
	c.invokeHook(vm.HookPosAccess, event)

	return value, nil
}

// Write stores value at offset in the region of the symbol. The address is
// claimed for pid while the write is in flight.
func (c *Comp) Write(pid vm.PID, symbol int, offset uint64, value byte) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.wait()

	event := vm.AccessEvent{
		PID:    pid,
		Op:     vm.OpWrite,
		Symbol: symbol,
		Offset: offset,
		Value:  value,
	}

	as, addr, err := c.locate(pid, symbol, offset)
	if err != nil {
		return c.accessFailed(event, err)
	}

	pgn := c.layout.PageNumber(addr)
	event.VAddr = addr
	event.Page = pgn

	err = c.claims.Claim(pid, addr)
	if err != nil {
		return c.accessFailed(event, err)
	}
	defer c.claims.Release(pid, addr)

	_, event.TLBHit = c.tlb.Lookup(pid, pgn)

	fault, err := c.pager.WriteValue(as.PageTable(), as.FIFO(), addr, value)
	if err != nil {
		return c.accessFailed(event, err)
	}

	c.handleFault(pid, fault)
	c.tlb.Update(pid, pgn, c.layout.Offset(addr), value)

	event.Faulted = fault != nil
	c.invokeHook(vm.HookPosAccess, event)

	return nil
}

// locate turns a symbol and an offset into a virtual address.
func (c *Comp) locate(
	pid vm.PID,
	symbol int,
	offset uint64,
) (*addrspace.AddressSpace, uint64, error) {
	as, err := c.process(pid)
	if err != nil {
		return nil, 0, err
	}

	region, err := as.Symbol(symbol)
	if err != nil {
		return nil, 0, err
	}

	if offset >= region.Size() {
		return nil, 0, fmt.Errorf("pid %d, symbol %d, offset %d, size %d: %w",
			pid, symbol, offset, region.Size(), vm.ErrInvalidOffset)
	}

	return as, region.Start + offset, nil
}

func (c *Comp) handleFault(pid vm.PID, fault *vm.Fault) {
	if fault == nil {
		return
	}

	fault.PID = pid
	c.tlb.Flush(pid)
	c.invokeHook(vm.HookPosPageFault, *fault)
}

func (c *Comp) accessFailed(event vm.AccessEvent, err error) error {
	event.Err = err
	c.invokeHook(vm.HookPosAccess, event)

	return err
}

func (c *Comp) wait() {
	if c.latency > 0 {
		time.Sleep(c.latency)
	}
}

func (c *Comp) invokeHook(pos *hooking.HookPos, item any) {
	if c.NumHooks() == 0 {
		return
	}

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    pos,
		Item:   item,
	})
}
