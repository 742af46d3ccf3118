package mmu

import (
	"sort"

	"github.com/sarchlab/vmsim/mem/vm"
	"github.com/sarchlab/vmsim/mem/vm/addrspace"
	"github.com/sarchlab/vmsim/mem/vm/tlb"
)

// A Snapshot is a copy of the state of the MMU. Changing it does not change
// the MMU.
type Snapshot struct {
	Processes   []ProcessSnapshot
	TLB         []tlb.Entry
	TLBCapacity int
	Devices     []DeviceSnapshot
	NumClaims   int
}

// A ProcessSnapshot is the state of one address space.
type ProcessSnapshot struct {
	PID     vm.PID
	Symbols []addrspace.Symbol
	VMAs    []VMASnapshot
	PTEs    []PTESnapshot
	FIFO    []vm.PageNum
}

// A VMASnapshot is the state of one memory area.
type VMASnapshot struct {
	ID    int
	Start uint64
	End   uint64
	Free  []addrspace.Region
}

// A PTESnapshot is a mapped page.
type PTESnapshot struct {
	Page  vm.PageNum
	Kind  string
	Frame int
}

// A DeviceSnapshot tells how much of a device is used.
type DeviceSnapshot struct {
	Name          string
	FrameSize     uint64
	NumFrames     int
	NumFreeFrames int
}

// Snapshot copies the state of the MMU. Processes are ordered by pid.
func (c *Comp) Snapshot() Snapshot {
	c.lock.Lock()
	defer c.lock.Unlock()

	s := Snapshot{
		TLB:         c.tlb.Entries(),
		TLBCapacity: c.tlb.Capacity(),
		NumClaims:   c.claims.Len(),
	}

	pids := make([]vm.PID, 0, len(c.processes))
	for pid := range c.processes {
		pids = append(pids, pid)
	}

	sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })

	for _, pid := range pids {
		s.Processes = append(s.Processes, snapshotProcess(c.processes[pid]))
	}

	for _, d := range []vm.FrameDevice{c.ram, c.swap} {
		s.Devices = append(s.Devices, DeviceSnapshot{
			Name:          d.Name(),
			FrameSize:     d.FrameSize(),
			NumFrames:     d.NumFrames(),
			NumFreeFrames: d.NumFreeFrames(),
		})
	}

	return s
}

// Process returns the snapshot of one process.
func (s Snapshot) Process(pid vm.PID) (ProcessSnapshot, bool) {
	for _, p := range s.Processes {
		if p.PID == pid {
			return p, true
		}
	}

	return ProcessSnapshot{}, false
}

func snapshotProcess(as *addrspace.AddressSpace) ProcessSnapshot {
	p := ProcessSnapshot{
		PID:     as.PID(),
		Symbols: as.Symbols(),
		FIFO:    as.FIFO().Pages(),
	}

	for _, v := range as.VMAs() {
		p.VMAs = append(p.VMAs, VMASnapshot{
			ID:    v.ID,
			Start: v.Start,
			End:   v.End,
			Free:  v.FreeRegions(),
		})
	}

	as.PageTable().Mapped(func(pgn vm.PageNum, pte vm.PTE) {
		p.PTEs = append(p.PTEs, PTESnapshot{
			Page:  pgn,
			Kind:  pte.Kind().String(),
			Frame: pte.Frame(),
		})
	})

	return p
}
