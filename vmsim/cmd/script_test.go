package cmd

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vmsim/mem/vm"
	"github.com/sarchlab/vmsim/mem/vm/mmu"
)

var _ = Describe("ParseCommand", func() {
	It("should skip blank lines and comments", func() {
		_, ok, err := ParseCommand(1, "   # nothing here")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("should parse a write", func() {
		c, ok, err := ParseCommand(3, "write 2 5 0x10 255 # trailing")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(c).To(Equal(Command{
			Line:   3,
			Op:     "write",
			PID:    2,
			Symbol: 5,
			Offset: 16,
			Value:  255,
		}))
	})

	It("should parse sizes with suffixes", func() {
		c, _, err := ParseCommand(1, "ALLOC 1 2K 4")
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Op).To(Equal("alloc"))
		Expect(c.Size).To(Equal(uint64(2048)))
		Expect(c.Symbol).To(Equal(4))
	})

	It("should reject unknown commands", func() {
		_, _, err := ParseCommand(7, "jump 1")
		Expect(err).To(MatchError(ContainSubstring("line 7")))
	})

	It("should reject a wrong number of arguments", func() {
		_, _, err := ParseCommand(1, "read 1 2")
		Expect(err).To(MatchError(ContainSubstring("takes 3 arguments")))
	})

	It("should reject values that do not fit a byte", func() {
		_, _, err := ParseCommand(1, "write 1 0 0 256")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Runner", func() {
	var (
		out    *bytes.Buffer
		runner *Runner
	)

	BeforeEach(func() {
		out = new(bytes.Buffer)
		runner = &Runner{
			MMU: mmu.MakeBuilder().
				WithPageBits(4).
				WithNumPages(16).
				WithRAMSize(2 * 16).
				WithSwapSize(4 * 16).
				WithTLBCapacity(4).
				Build("MMU"),
			Out: out,
		}
	})

	It("should run a script", func() {
		script := strings.Join([]string{
			"proc 1",
			"alloc 1 64 0",
			"alloc 1 32 1",
			"write 1 1 3 42",
			"read 1 1 3",
			"free 1 0",
			"exit 1",
		}, "\n")

		Expect(runner.Run(strings.NewReader(script))).To(Succeed())
		Expect(runner.NumErrors).To(BeZero())
		Expect(out.String()).To(ContainSubstring(
			"alloc pid=1 symbol=0 size=64 -> 0x0"))
		Expect(out.String()).To(ContainSubstring(
			"alloc pid=1 symbol=1 size=32 -> 0x40"))
		Expect(out.String()).To(ContainSubstring(
			"read pid=1 symbol=1 offset=3 -> 42"))
	})

	It("should stop at the first failing line", func() {
		script := "proc 1\nread 1 0 0\nproc 2\n"

		err := runner.Run(strings.NewReader(script))

		Expect(err).To(MatchError(vm.ErrInvalidSymbol))
		Expect(err).To(MatchError(ContainSubstring("line 2")))
		Expect(runner.NumErrors).To(Equal(1))
		Expect(out.String()).NotTo(ContainSubstring("proc pid=2"))
	})

	It("should keep going when asked", func() {
		runner.KeepGoing = true
		script := "proc 1\nread 1 0 0\nbogus\nproc 2\n"

		Expect(runner.Run(strings.NewReader(script))).To(Succeed())
		Expect(runner.NumErrors).To(Equal(2))
		Expect(out.String()).To(ContainSubstring("proc pid=2"))
	})

	It("should dump the devices and the TLB", func() {
		script := "proc 1\nalloc 1 8 0\nwrite 1 0 0 1\ndump\n"

		Expect(runner.Run(strings.NewReader(script))).To(Succeed())
		Expect(out.String()).To(ContainSubstring("TLB content of MMU.TLB"))
	})
})

var _ = Describe("runScript", func() {
	It("should print the counters", func() {
		opts := runOptions{Config: Config{
			PageBits:    4,
			NumPages:    16,
			RAMSize:     32,
			SwapSize:    64,
			TLBCapacity: 4,
		}}
		out := new(bytes.Buffer)
		script := "proc 1\nalloc 1 8 0\nwrite 1 0 0 1\nread 1 0 0\n"

		Expect(runScript(opts, strings.NewReader(script), out)).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Counters:"))
		Expect(out.String()).To(ContainSubstring("read: 1"))
	})
})
