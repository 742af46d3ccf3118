// Package internal provides the storage of the TLB entries.
package internal

import "github.com/sarchlab/vmsim/mem/vm"

// A Block is one slot of the TLB. It caches the last byte accessed in a page.
type Block struct {
	PID    vm.PID
	Page   vm.PageNum
	Offset uint64
	Value  byte
	Valid  bool
}

// A Set holds a fixed number of blocks filled in ring order.
type Set interface {
	// Lookup finds the slot that holds the page of the process.
	Lookup(pid vm.PID, page vm.PageNum) (slot int, block Block, found bool)

	// Update overwrites a slot.
	Update(slot int, block Block)

	// Insert writes the block at the cursor and advances the cursor.
	Insert(block Block) (slot int)

	// Flush drops the blocks of the process and empties the live window.
	Flush(pid vm.PID) (dropped int)

	// Blocks returns the valid blocks of the live window in slot order.
	Blocks() []Block

	Capacity() int
	Len() int
}

// NewSet creates a set of capacity blocks.
func NewSet(capacity int) Set {
	if capacity <= 0 {
		panic("TLB capacity must be positive")
	}

	return &ringSet{
		blocks: make([]Block, capacity),
	}
}

// ringSet only searches the first live slots. New blocks go to the cursor,
// which wraps to slot 0 once the set is full.
type ringSet struct {
	blocks []Block
	live   int
	cursor int
}

func (s *ringSet) Lookup(pid vm.PID, page vm.PageNum) (int, Block, bool) {
	for i := 0; i < s.live; i++ {
		b := s.blocks[i]
		if b.Valid && b.PID == pid && b.Page == page {
			return i, b, true
		}
	}

	return 0, Block{}, false
}

func (s *ringSet) Update(slot int, block Block) {
	if slot < 0 || slot >= s.live {
		panic("updating a TLB slot outside the live window")
	}

	s.blocks[slot] = block
}

func (s *ringSet) Insert(block Block) int {
	slot := s.cursor
	s.blocks[slot] = block

	s.cursor++
	if s.cursor > s.live {
		s.live = s.cursor
	}

	if s.cursor == len(s.blocks) {
		s.cursor = 0
	}

	return slot
}

func (s *ringSet) Flush(pid vm.PID) int {
	dropped := 0

	for i := range s.blocks {
		if s.blocks[i].Valid && s.blocks[i].PID == pid {
			s.blocks[i] = Block{}
			dropped++
		}
	}

	s.live = 0
	s.cursor = 0

	return dropped
}

func (s *ringSet) Blocks() []Block {
	blocks := make([]Block, 0, s.live)

	for i := 0; i < s.live; i++ {
		if s.blocks[i].Valid {
			blocks = append(blocks, s.blocks[i])
		}
	}

	return blocks
}

func (s *ringSet) Capacity() int {
	return len(s.blocks)
}

func (s *ringSet) Len() int {
	return s.live
}
