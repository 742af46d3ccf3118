package vm

import "errors"

// Errors reported by the virtual memory subsystem. Call sites wrap them with
// the pid, symbol or address involved, so compare with errors.Is.
var (
	// ErrOutOfSpace means that no free region fits and the memory area cannot
	// grow, or that no frame can be found for a page.
	ErrOutOfSpace = errors.New("out of space")

	// ErrInvalidSymbol means the symbol has no live region.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrInvalidOffset means the access is beyond the recorded region size.
	ErrInvalidOffset = errors.New("invalid offset")

	// ErrSwapExhausted means no swap frame is left to hold an evicted page.
	ErrSwapExhausted = errors.New("swap exhausted")

	// ErrWriteConflict means another process has claimed the address.
	ErrWriteConflict = errors.New("write conflict: address occupied")

	ErrInvalidAddress  = errors.New("invalid address")
	ErrInvalidSize     = errors.New("invalid size")
	ErrInvalidVMA      = errors.New("invalid memory area")
	ErrSymbolInUse     = errors.New("symbol already allocated")
	ErrClaimsExhausted = errors.New("claim registry full")
	ErrNoProcess       = errors.New("no such process")
	ErrProcessExists   = errors.New("process already exists")
)
