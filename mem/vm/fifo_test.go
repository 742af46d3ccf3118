package vm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vmsim/mem/vm"
)

var _ = Describe("FIFO", func() {
	var fifo *vm.FIFO

	BeforeEach(func() {
		fifo = vm.NewFIFO()
	})

	It("should have no victim when empty", func() {
		_, found := fifo.FindVictim()

		Expect(found).To(BeFalse())
	})

	It("should pick the page enlisted first", func() {
		fifo.Enlist(5)
		fifo.Enlist(2)

		victim, found := fifo.FindVictim()

		Expect(found).To(BeTrue())
		Expect(victim).To(Equal(vm.PageNum(5)))
		Expect(fifo.Len()).To(Equal(2))
	})

	It("should remove pages from the middle", func() {
		fifo.Enlist(1)
		fifo.Enlist(2)
		fifo.Enlist(3)

		Expect(fifo.Remove(2)).To(BeTrue())
		Expect(fifo.Remove(2)).To(BeFalse())
		Expect(fifo.Pages()).To(Equal([]vm.PageNum{1, 3}))
		Expect(fifo.Contains(3)).To(BeTrue())
	})

	It("should work as a victim finder", func() {
		var finder vm.VictimFinder = fifo
		fifo.Enlist(9)

		victim, _ := finder.FindVictim()
		finder.Remove(victim)

		Expect(fifo.Len()).To(Equal(0))
	})
})
