package mmu

import (
	"github.com/sarchlab/vmsim/mem/vm"
	"github.com/sarchlab/vmsim/mem/vm/addrspace"
)

// A Pager backs the pages of the address spaces with frames and moves bytes
// in and out of them. paging.Pager is the default implementation.
type Pager interface {
	addrspace.PageMapper

	ReadValue(pt *vm.PageTable, fifo *vm.FIFO, addr uint64) (byte, *vm.Fault, error)
	WriteValue(pt *vm.PageTable, fifo *vm.FIFO, addr uint64, value byte) (*vm.Fault, error)
}
