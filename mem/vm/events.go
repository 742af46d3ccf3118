package vm

import (
	"fmt"

	"github.com/sarchlab/vmsim/sim/hooking"
)

// Hook positions reported by the virtual memory components.
var (
	HookPosAccess    = &hooking.HookPos{Name: "Access"}
	HookPosPageFault = &hooking.HookPos{Name: "PageFault"}
	HookPosAlloc     = &hooking.HookPos{Name: "Alloc"}
	HookPosFree      = &hooking.HookPos{Name: "Free"}
	HookPosTLBHit    = &hooking.HookPos{Name: "TLBHit"}
	HookPosTLBMiss   = &hooking.HookPos{Name: "TLBMiss"}
	HookPosTLBFlush  = &hooking.HookPos{Name: "TLBFlush"}
)

// AccessOp is the kind of a byte access.
type AccessOp string

// The two byte accesses.
const (
	OpRead  AccessOp = "read"
	OpWrite AccessOp = "write"
)

// An AccessEvent describes one read or write request and how it was served.
type AccessEvent struct {
	PID     PID
	Op      AccessOp
	Symbol  int
	Offset  uint64
	VAddr   uint64
	Page    PageNum
	Value   byte
	TLBHit  bool
	Faulted bool
	Err     error
}

// Tags returns the counters this access contributes to.
func (e AccessEvent) Tags() []string {
	tags := []string{string(e.Op)}

	if e.Err != nil {
		return append(tags, "error")
	}

	if e.TLBHit {
		tags = append(tags, "tlb-hit")
	} else {
		tags = append(tags, "tlb-miss")
	}

	return tags
}

// AccessRecord is the row stored for an access.
type AccessRecord struct {
	PID     uint32
	Op      string
	Symbol  int
	Offset  uint64
	VAddr   uint64
	Page    uint64
	Value   uint8
	TLBHit  bool
	Faulted bool
	Error   string
}

// Record returns the table and the row of the access.
func (e AccessEvent) Record() (string, any) {
	r := AccessRecord{
		PID:     uint32(e.PID),
		Op:      string(e.Op),
		Symbol:  e.Symbol,
		Offset:  e.Offset,
		VAddr:   e.VAddr,
		Page:    uint64(e.Page),
		Value:   e.Value,
		TLBHit:  e.TLBHit,
		Faulted: e.Faulted,
	}

	if e.Err != nil {
		r.Error = e.Err.Error()
	}

	return "access", r
}

func (e AccessEvent) String() string {
	if e.Err != nil {
		return fmt.Sprintf("pid=%d %s symbol=%d offset=%d failed: %v",
			e.PID, e.Op, e.Symbol, e.Offset, e.Err)
	}

	return fmt.Sprintf("pid=%d %s symbol=%d offset=%d vaddr=0x%x page=%d "+
		"value=%d tlb-hit=%t fault=%t",
		e.PID, e.Op, e.Symbol, e.Offset, e.VAddr, e.Page,
		e.Value, e.TLBHit, e.Faulted)
}

// A Fault reports how a page fault was resolved.
type Fault struct {
	PID       PID
	Page      PageNum
	Frame     int
	HasVictim bool
	Victim    PageNum
	SwapFrame int
}

// Tags returns the counters this fault contributes to.
func (f Fault) Tags() []string {
	if f.HasVictim {
		return []string{"page-fault", "eviction"}
	}

	return []string{"page-fault"}
}

// FaultRecord is the row stored for a page fault.
type FaultRecord struct {
	PID       uint32
	Page      uint64
	Frame     int
	HasVictim bool
	Victim    uint64
	SwapFrame int
}

// Record returns the table and the row of the fault.
func (f Fault) Record() (string, any) {
	return "fault", FaultRecord{
		PID:       uint32(f.PID),
		Page:      uint64(f.Page),
		Frame:     f.Frame,
		HasVictim: f.HasVictim,
		Victim:    uint64(f.Victim),
		SwapFrame: f.SwapFrame,
	}
}

func (f Fault) String() string {
	if !f.HasVictim {
		return fmt.Sprintf("pid=%d page %d swapped in to free frame %d",
			f.PID, f.Page, f.Frame)
	}

	return fmt.Sprintf("pid=%d page %d swapped in to frame %d, "+
		"page %d evicted to swap frame %d",
		f.PID, f.Page, f.Frame, f.Victim, f.SwapFrame)
}

// A RegionEvent reports an allocation or a free of a symbol.
type RegionEvent struct {
	PID    PID
	Symbol int
	Start  uint64
	End    uint64
	Err    error
}

// Tags returns the counters this event contributes to.
func (e RegionEvent) Tags() []string {
	if e.Err != nil {
		return []string{"error"}
	}

	return nil
}

// RegionRecord is the row stored for an allocation or a free.
type RegionRecord struct {
	PID    uint32
	Symbol int
	Start  uint64
	End    uint64
	Error  string
}

// Record returns the table and the row of the event.
func (e RegionEvent) Record() (string, any) {
	r := RegionRecord{
		PID:    uint32(e.PID),
		Symbol: e.Symbol,
		Start:  e.Start,
		End:    e.End,
	}

	if e.Err != nil {
		r.Error = e.Err.Error()
	}

	return "region", r
}

func (e RegionEvent) String() string {
	if e.Err != nil {
		return fmt.Sprintf("pid=%d symbol=%d failed: %v",
			e.PID, e.Symbol, e.Err)
	}

	return fmt.Sprintf("pid=%d symbol=%d [0x%x, 0x%x)",
		e.PID, e.Symbol, e.Start, e.End)
}
