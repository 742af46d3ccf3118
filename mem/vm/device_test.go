package vm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vmsim/mem/vm"
	"github.com/sarchlab/vmsim/memory"
)

var _ = Describe("CopyFrame", func() {
	It("should copy a frame across devices", func() {
		var ram, swap vm.FrameDevice
		ram = memory.NewDevice("RAM", 64, 16)
		swap = memory.NewDevice("SWAP", 128, 16)

		Expect(swap.WriteByteAt(2*16+3, 42)).To(Succeed())

		Expect(vm.CopyFrame(swap, 2, ram, 1)).To(Succeed())

		value, err := ram.ReadByteAt(16 + 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal(byte(42)))
	})

	It("should refuse different frame sizes", func() {
		ram := memory.NewDevice("RAM", 64, 16)
		swap := memory.NewDevice("SWAP", 64, 32)

		Expect(vm.CopyFrame(swap, 1, ram, 0)).NotTo(Succeed())
	})
})
