// Package tlb provides a software translation cache. An entry remembers the
// last byte a process accessed in a page.
package tlb

import (
	"fmt"

	"github.com/sarchlab/vmsim/mem/vm"
	"github.com/sarchlab/vmsim/mem/vm/tlb/internal"
	"github.com/sarchlab/vmsim/sim/hooking"
)

// An Entry is a cached access. Each (PID, Page) pair has at most one entry.
type Entry struct {
	PID    vm.PID
	Page   vm.PageNum
	Offset uint64
	Value  byte
}

func (e Entry) String() string {
	return fmt.Sprintf("pid=%d page=%d offset=%d value=%d",
		e.PID, e.Page, e.Offset, e.Value)
}

// A FlushEvent reports the entries dropped for a process.
type FlushEvent struct {
	PID     vm.PID
	Dropped int
}

func (e FlushEvent) String() string {
	return fmt.Sprintf("pid=%d dropped=%d", e.PID, e.Dropped)
}

// Comp is a TLB.
type Comp struct {
	hooking.HookableBase

	name string
	set  internal.Set
}

// Name returns the name of the TLB.
func (c *Comp) Name() string {
	return c.name
}

// Lookup finds the entry of a page of a process.
func (c *Comp) Lookup(pid vm.PID, page vm.PageNum) (Entry, bool) {
	_, block, found := c.set.Lookup(pid, page)
	if !found {
		c.invokeHook(vm.HookPosTLBMiss, Entry{PID: pid, Page: page})
		return Entry{}, false
	}

	entry := entryFromBlock(block)
	c.invokeHook(vm.HookPosTLBHit, entry)

	return entry, true
}

// Update caches an access. The entry of the page is overwritten in place if
// it exists; otherwise the next slot in ring order is used.
func (c *Comp) Update(pid vm.PID, page vm.PageNum, offset uint64, value byte) {
	block := internal.Block{
		PID:    pid,
		Page:   page,
		Offset: offset,
		Value:  value,
		Valid:  true,
	}

	slot, _, found := c.set.Lookup(pid, page)
	if found {
		c.set.Update(slot, block)
		return
	}

	c.set.Insert(block)
}

// Flush drops the entries of a process.
func (c *Comp) Flush(pid vm.PID) {
	dropped := c.set.Flush(pid)
	c.invokeHook(vm.HookPosTLBFlush, FlushEvent{PID: pid, Dropped: dropped})
}

// Entries returns the entries that can currently hit, in slot order.
func (c *Comp) Entries() []Entry {
	blocks := c.set.Blocks()
	entries := make([]Entry, 0, len(blocks))

	for _, b := range blocks {
		entries = append(entries, entryFromBlock(b))
	}

	return entries
}

// Capacity returns the number of slots.
func (c *Comp) Capacity() int {
	return c.set.Capacity()
}

// Len returns the number of slots in the live window.
func (c *Comp) Len() int {
	return c.set.Len()
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

func entryFromBlock(b internal.Block) Entry {
	return Entry{
		PID:    b.PID,
		Page:   b.Page,
		Offset: b.Offset,
		Value:  b.Value,
	}
}
