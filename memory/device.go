package memory

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrNoFreeFrame is returned when a device has no frame left to hand out.
var ErrNoFreeFrame = errors.New("no free frame")

// A Device is a frame-granular physical device, such as the RAM or a swap
// area. It owns the bytes of the device and the list of free frames.
//
// A Device is safe for concurrent use. The simulator shares the RAM and the
// swap devices among all the processes.
type Device struct {
	sync.Mutex

	name       string
	storage    *Storage
	frameSize  uint64
	numFrames  int
	freeFrames []int
	used       []bool
}

// NewDevice creates a device of the given capacity, split into frames of
// frameSize bytes. Every frame starts free. Frames are handed out lowest
// index first.
func NewDevice(name string, capacity, frameSize uint64) *Device {
	if frameSize == 0 || frameSize&(frameSize-1) != 0 {
		panic("frame size must be a power of 2")
	}

	if capacity%frameSize != 0 {
		panic(fmt.Sprintf("device %s: capacity %d is not a multiple of "+
			"the frame size %d", name, capacity, frameSize))
	}

	d := &Device{
		name:      name,
		storage:   NewStorage(capacity, frameSize),
		frameSize: frameSize,
		numFrames: int(capacity / frameSize),
	}

	d.freeFrames = make([]int, d.numFrames)
	for i := range d.freeFrames {
		d.freeFrames[i] = i
	}

	d.used = make([]bool, d.numFrames)

	return d
}

// Name returns the name of the device.
func (d *Device) Name() string {
	return d.name
}

// FrameSize returns the number of bytes in a frame.
func (d *Device) FrameSize() uint64 {
	return d.frameSize
}

// NumFrames returns the total number of frames of the device.
func (d *Device) NumFrames() int {
	return d.numFrames
}

// NumFreeFrames returns the number of frames that can still be acquired.
func (d *Device) NumFreeFrames() int {
	d.Lock()
	defer d.Unlock()

	return len(d.freeFrames)
}

// AcquireFrame takes a frame out of the free list.
func (d *Device) AcquireFrame() (int, error) {
	d.Lock()
	defer d.Unlock()

	if len(d.freeFrames) == 0 {
		return 0, fmt.Errorf("device %s: %w", d.name, ErrNoFreeFrame)
	}

	frame := d.freeFrames[0]
	d.freeFrames = d.freeFrames[1:]
	d.used[frame] = true

	return frame, nil
}

// ReleaseFrame puts a frame back to the free list. Releasing a frame that is
// not in use is a programming error.
func (d *Device) ReleaseFrame(frame int) {
	d.Lock()
	defer d.Unlock()

	d.frameMustBeValid(frame)

	if !d.used[frame] {
		panic(fmt.Sprintf("device %s: frame %d is already free",
			d.name, frame))
	}

	d.used[frame] = false
	d.freeFrames = append(d.freeFrames, frame)
}

// IsFrameUsed tells if the frame has been acquired and not released.
func (d *Device) IsFrameUsed(frame int) bool {
	d.Lock()
	defer d.Unlock()

	d.frameMustBeValid(frame)

	return d.used[frame]
}

func (d *Device) frameMustBeValid(frame int) {
	if frame < 0 || frame >= d.numFrames {
		panic(fmt.Sprintf("device %s: frame %d out of range [0, %d)",
			d.name, frame, d.numFrames))
	}
}

// ReadByteAt reads a single byte at a physical address.
func (d *Device) ReadByteAt(addr uint64) (byte, error) {
	d.Lock()
	defer d.Unlock()

	return d.storage.ReadByteAt(addr)
}

// WriteByteAt writes a single byte at a physical address.
func (d *Device) WriteByteAt(addr uint64, value byte) error {
	d.Lock()
	defer d.Unlock()

	return d.storage.WriteByteAt(addr, value)
}

// ReadFrame returns a copy of the content of a frame.
func (d *Device) ReadFrame(frame int) ([]byte, error) {
	d.Lock()
	defer d.Unlock()

	d.frameMustBeValid(frame)

	return d.storage.Read(uint64(frame)*d.frameSize, d.frameSize)
}

// WriteFrame overwrites the content of a frame. Shorter data leaves the rest
// of the frame untouched.
func (d *Device) WriteFrame(frame int, data []byte) error {
	d.Lock()
	defer d.Unlock()

	d.frameMustBeValid(frame)

	if uint64(len(data)) > d.frameSize {
		return fmt.Errorf("device %s: %d bytes do not fit in a frame of %d",
			d.name, len(data), d.frameSize)
	}

	return d.storage.Write(uint64(frame)*d.frameSize, data)
}

// ZeroFrame clears the content of a frame.
func (d *Device) ZeroFrame(frame int) error {
	return d.WriteFrame(frame, make([]byte, d.frameSize))
}

// Dump writes the non-zero bytes of the device as "[addr, value]" pairs. It
// does not change the device.
func (d *Device) Dump(w io.Writer) error {
	d.Lock()
	defer d.Unlock()

	var err error

	_, err = fmt.Fprintf(w, "Memory content [pos, content] of %s:\n", d.name)
	if err != nil {
		return err
	}

	d.storage.NonZero(func(addr uint64, value byte) {
		if err != nil {
			return
		}

		_, err = fmt.Fprintf(w, "[%d, %d] ", addr, value)
	})

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w)

	return err
}
