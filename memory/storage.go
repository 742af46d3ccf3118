// Package memory provides the physical side of the simulator: byte-addressable
// storage and the frame-granular devices (RAM and swap) built on top of it.
package memory

import (
	"errors"
	"fmt"
	"slices"
)

// ErrOutOfCapacity is returned when an access goes beyond the storage.
var ErrOutOfCapacity = errors.New(
	"accessing physical address beyond the storage capacity")

// A Storage keeps the bytes of a physical device.
//
// The storage manages its data in units. The unit size is the frame size of
// the owning device. Units that are never touched by Read and Write do not
// allocate memory, so a large swap device costs nothing until it is used.
type Storage struct {
	unitSize uint64
	capacity uint64
	data     map[uint64][]byte
}

// NewStorage creates a storage object with the specified capacity and unit
// size.
func NewStorage(capacity, unitSize uint64) *Storage {
	if unitSize == 0 {
		panic("storage unit size must not be 0")
	}

	storage := new(Storage)

	storage.unitSize = unitSize
	storage.capacity = capacity
	storage.data = make(map[uint64][]byte)

	return storage
}

// Capacity returns the number of bytes the storage can hold.
func (s *Storage) Capacity() uint64 {
	return s.capacity
}

// getUnit retrieves a storage unit, creating it on first use.
func (s *Storage) getUnit(address uint64) ([]byte, error) {
	if address >= s.capacity {
		return nil, fmt.Errorf("address 0x%x: %w", address, ErrOutOfCapacity)
	}

	baseAddr, _ := s.parseAddress(address)

	unit, ok := s.data[baseAddr]
	if !ok {
		unit = make([]byte, s.unitSize)
		s.data[baseAddr] = unit
	}

	return unit, nil
}

// peekUnit returns a unit without creating it.
func (s *Storage) peekUnit(address uint64) ([]byte, bool) {
	baseAddr, _ := s.parseAddress(address)
	unit, ok := s.data[baseAddr]

	return unit, ok
}

func (s *Storage) parseAddress(addr uint64) (baseAddr, inUnitAddr uint64) {
	inUnitAddr = addr % s.unitSize
	baseAddr = addr - inUnitAddr

	return
}

// Read returns length bytes starting from address.
func (s *Storage) Read(address uint64, length uint64) ([]byte, error) {
	if address+length > s.capacity {
		return nil, fmt.Errorf("address 0x%x+%d: %w",
			address, length, ErrOutOfCapacity)
	}

	res := make([]byte, length)
	currAddr := address
	dataOffset := uint64(0)

	for dataOffset < length {
		baseAddr, inUnitAddr := s.parseAddress(currAddr)
		lenToRead := min(length-dataOffset, baseAddr+s.unitSize-currAddr)

		if unit, ok := s.peekUnit(currAddr); ok {
			copy(res[dataOffset:dataOffset+lenToRead],
				unit[inUnitAddr:inUnitAddr+lenToRead])
		}

		dataOffset += lenToRead
		currAddr += lenToRead
	}

	return res, nil
}

// Write stores data starting from address.
func (s *Storage) Write(address uint64, data []byte) error {
	if address+uint64(len(data)) > s.capacity {
		return fmt.Errorf("address 0x%x+%d: %w",
			address, len(data), ErrOutOfCapacity)
	}

	currAddr := address
	dataOffset := uint64(0)

	for dataOffset < uint64(len(data)) {
		unit, err := s.getUnit(currAddr)
		if err != nil {
			return err
		}

		baseAddr, inUnitAddr := s.parseAddress(currAddr)
		lenToWrite := min(uint64(len(data))-dataOffset,
			baseAddr+s.unitSize-currAddr)

		copy(unit[inUnitAddr:inUnitAddr+lenToWrite],
			data[dataOffset:dataOffset+lenToWrite])
		dataOffset += lenToWrite
		currAddr += lenToWrite
	}

	return nil
}

// ReadByteAt returns the byte stored at address.
func (s *Storage) ReadByteAt(address uint64) (byte, error) {
	if address >= s.capacity {
		return 0, fmt.Errorf("address 0x%x: %w", address, ErrOutOfCapacity)
	}

	unit, ok := s.peekUnit(address)
	if !ok {
		return 0, nil
	}

	_, inUnitAddr := s.parseAddress(address)

	return unit[inUnitAddr], nil
}

// WriteByteAt stores a single byte at address.
func (s *Storage) WriteByteAt(address uint64, value byte) error {
	unit, err := s.getUnit(address)
	if err != nil {
		return err
	}

	_, inUnitAddr := s.parseAddress(address)
	unit[inUnitAddr] = value

	return nil
}

// NonZero calls fn for every non-zero byte in ascending address order. It
// does not allocate units.
func (s *Storage) NonZero(fn func(addr uint64, value byte)) {
	bases := make([]uint64, 0, len(s.data))
	for base := range s.data {
		bases = append(bases, base)
	}

	slices.Sort(bases)

	for _, base := range bases {
		for i, b := range s.data[base] {
			if b != 0 {
				fn(base+uint64(i), b)
			}
		}
	}
}
