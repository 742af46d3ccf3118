// Package vm provides the model shared by the virtual memory components:
// address layout, page table entries, the residency list and the events the
// components report.
package vm

import "fmt"

// PID stands for Process ID.
type PID uint32

// PageNum is a virtual page number.
type PageNum uint64

// A Layout splits virtual addresses into a page number and an offset. Frames
// have the same size as pages, so it also composes physical addresses.
type Layout struct {
	PageBits uint64
}

// NewLayout creates a layout with pages of 2^pageBits bytes.
func NewLayout(pageBits uint64) Layout {
	if pageBits == 0 || pageBits > 32 {
		panic(fmt.Sprintf("page bits %d out of range [1, 32]", pageBits))
	}

	return Layout{PageBits: pageBits}
}

// PageSize returns the number of bytes in a page.
func (l Layout) PageSize() uint64 {
	return 1 << l.PageBits
}

// PageNumber returns the page that contains addr.
func (l Layout) PageNumber(addr uint64) PageNum {
	return PageNum(addr >> l.PageBits)
}

// Offset returns the offset of addr inside its page.
func (l Layout) Offset(addr uint64) uint64 {
	return addr & (l.PageSize() - 1)
}

// PageAddr returns the first address of a page.
func (l Layout) PageAddr(pgn PageNum) uint64 {
	return uint64(pgn) << l.PageBits
}

// PhysicalAddr composes the physical address of an offset in a frame.
func (l Layout) PhysicalAddr(frame int, offset uint64) uint64 {
	return uint64(frame)<<l.PageBits | offset
}

// AlignUp rounds size up to a multiple of the page size.
func (l Layout) AlignUp(size uint64) uint64 {
	mask := l.PageSize() - 1
	return (size + mask) &^ mask
}
