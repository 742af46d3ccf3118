package vm

import "fmt"

// A FrameDevice is a physical device that hands out fixed-size frames and
// reads and writes single bytes by physical address. The RAM and the swap
// area are both FrameDevices.
type FrameDevice interface {
	Name() string
	FrameSize() uint64
	NumFrames() int
	NumFreeFrames() int
	AcquireFrame() (int, error)
	ReleaseFrame(frame int)
	ReadByteAt(addr uint64) (byte, error)
	WriteByteAt(addr uint64, value byte) error
	ReadFrame(frame int) ([]byte, error)
	WriteFrame(frame int, data []byte) error
	ZeroFrame(frame int) error
}

// CopyFrame copies the content of one frame into a frame of another device.
func CopyFrame(src FrameDevice, srcFrame int, dst FrameDevice, dstFrame int) error {
	if src.FrameSize() != dst.FrameSize() {
		return fmt.Errorf("cannot copy a frame from %s (%d B) to %s (%d B)",
			src.Name(), src.FrameSize(), dst.Name(), dst.FrameSize())
	}

	data, err := src.ReadFrame(srcFrame)
	if err != nil {
		return fmt.Errorf("copy %s[%d] -> %s[%d]: %w",
			src.Name(), srcFrame, dst.Name(), dstFrame, err)
	}

	err = dst.WriteFrame(dstFrame, data)
	if err != nil {
		return fmt.Errorf("copy %s[%d] -> %s[%d]: %w",
			src.Name(), srcFrame, dst.Name(), dstFrame, err)
	}

	return nil
}
