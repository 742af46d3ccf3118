package vm

import "fmt"

// PTEKind tells where the content of a page lives.
type PTEKind uint8

// The page is either never mapped, resident in a RAM frame, or swapped out
// to a swap frame.
const (
	Unmapped PTEKind = iota
	Resident
	Swapped
)

func (k PTEKind) String() string {
	switch k {
	case Unmapped:
		return "unmapped"
	case Resident:
		return "resident"
	case Swapped:
		return "swapped"
	default:
		return fmt.Sprintf("PTEKind(%d)", uint8(k))
	}
}

// A PTE is a page table entry. The single frame index is interpreted by the
// kind, so an entry can never point at a RAM frame and a swap frame at the
// same time.
type PTE struct {
	kind  PTEKind
	frame int
}

// ResidentPTE creates an entry for a page held in a RAM frame.
func ResidentPTE(frame int) PTE {
	return PTE{kind: Resident, frame: frame}
}

// SwappedPTE creates an entry for a page held in a swap frame.
func SwappedPTE(frame int) PTE {
	return PTE{kind: Swapped, frame: frame}
}

// Kind returns the kind of the entry.
func (e PTE) Kind() PTEKind { return e.kind }

// Frame returns the RAM frame of a resident page or the swap frame of a
// swapped page. It is meaningless for unmapped entries.
func (e PTE) Frame() int { return e.frame }

// IsResident tells if the page is in RAM.
func (e PTE) IsResident() bool { return e.kind == Resident }

// IsSwapped tells if the page is on the swap device.
func (e PTE) IsSwapped() bool { return e.kind == Swapped }

// IsMapped tells if the page has been mapped at all.
func (e PTE) IsMapped() bool { return e.kind != Unmapped }

func (e PTE) String() string {
	if e.kind == Unmapped {
		return e.kind.String()
	}

	return fmt.Sprintf("%s(%d)", e.kind, e.frame)
}
