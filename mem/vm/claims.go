package vm

import (
	"fmt"
	"sync"
)

// DefaultClaimCapacity is the number of addresses a ClaimRegistry tracks
// unless told otherwise.
const DefaultClaimCapacity = 1000

// A ClaimRegistry records which process is writing which address. A second
// process that writes an address claimed by another one is reported as a
// conflict; nothing blocks.
//
// The registry is owned by whoever drives the writes and can be shared by
// several drivers. It is safe for concurrent use.
type ClaimRegistry struct {
	sync.Mutex

	capacity int
	owners   map[uint64]PID
}

// NewClaimRegistry creates a registry that tracks up to capacity addresses.
func NewClaimRegistry(capacity int) *ClaimRegistry {
	if capacity <= 0 {
		panic("claim registry capacity must be positive")
	}

	return &ClaimRegistry{
		capacity: capacity,
		owners:   make(map[uint64]PID),
	}
}

// Claim marks addr as being written by pid. Claiming an address the process
// already holds succeeds.
func (r *ClaimRegistry) Claim(pid PID, addr uint64) error {
	r.Lock()
	defer r.Unlock()

	owner, found := r.owners[addr]
	if found {
		if owner != pid {
			return fmt.Errorf("pid %d, address 0x%x held by pid %d: %w",
				pid, addr, owner, ErrWriteConflict)
		}

		return nil
	}

	if len(r.owners) >= r.capacity {
		return fmt.Errorf("pid %d, address 0x%x: %w",
			pid, addr, ErrClaimsExhausted)
	}

	r.owners[addr] = pid

	return nil
}

// Release drops the claim of pid on addr, if any.
func (r *ClaimRegistry) Release(pid PID, addr uint64) {
	r.Lock()
	defer r.Unlock()

	if r.owners[addr] == pid {
		delete(r.owners, addr)
	}
}

// ReleaseRange drops the claims of pid on the addresses in [start, end).
func (r *ClaimRegistry) ReleaseRange(pid PID, start, end uint64) {
	r.Lock()
	defer r.Unlock()

	for addr, owner := range r.owners {
		if owner == pid && addr >= start && addr < end {
			delete(r.owners, addr)
		}
	}
}

// ReleaseAll drops every claim of pid.
func (r *ClaimRegistry) ReleaseAll(pid PID) {
	r.Lock()
	defer r.Unlock()

	for addr, owner := range r.owners {
		if owner == pid {
			delete(r.owners, addr)
		}
	}
}

// Owner returns the process holding addr.
func (r *ClaimRegistry) Owner(addr uint64) (PID, bool) {
	r.Lock()
	defer r.Unlock()

	owner, found := r.owners[addr]

	return owner, found
}

// Len returns the number of claimed addresses.
func (r *ClaimRegistry) Len() int {
	r.Lock()
	defer r.Unlock()

	return len(r.owners)
}
