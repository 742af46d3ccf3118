package tlb

import "github.com/sarchlab/vmsim/mem/vm/tlb/internal"

// DefaultCapacity is the number of entries of a TLB unless configured.
const DefaultCapacity = 256

// A Builder can build TLBs
type Builder struct {
	capacity int
}

// MakeBuilder returns a Builder
func MakeBuilder() Builder {
	return Builder{
		capacity: DefaultCapacity,
	}
}

// WithCapacity sets the number of entries in the TLB.
func (b Builder) WithCapacity(n int) Builder {
	b.capacity = n
	return b
}

// Build creates a new TLB
func (b Builder) Build(name string) *Comp {
	if b.capacity <= 0 {
		panic("TLB capacity must be positive")
	}

	return &Comp{
		name: name,
		set:  internal.NewSet(b.capacity),
	}
}
