package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vmsim/datarecording"
	"github.com/sarchlab/vmsim/mem/vm"
	"github.com/sarchlab/vmsim/sim/hooking"
)

var _ = Describe("Report", func() {
	var (
		writer *datarecording.SQLiteWriter
		tracer *hooking.DBTracer
		runner *Runner
	)

	BeforeEach(func() {
		writer = datarecording.NewSQLiteWriter(
			filepath.Join(GinkgoT().TempDir(), "recording"))
		writer.Init()
		tracer = hooking.NewDBTracer(writer)

		m := buildMMU(Config{
			PageBits:    4,
			NumPages:    16,
			RAMSize:     2 * 16,
			SwapSize:    4 * 16,
			TLBCapacity: 4,
		})
		m.AcceptHook(tracer)

		runner = &Runner{MMU: m, Out: new(bytes.Buffer), KeepGoing: true}
	})

	AfterEach(func() {
		writer.Close()
	})

	summarize := func() []PIDReport {
		tracer.Terminate()

		reader := datarecording.NewReader(writer.Filename())
		defer reader.Close()

		reports, err := Summarize(context.Background(), reader)
		Expect(err).NotTo(HaveOccurred())

		return reports
	}

	It("should sum up the events of each process", func() {
		script := strings.Join([]string{
			"proc 1",
			"proc 2",
			"alloc 1 48 0",
			"write 1 0 40 7",
			"read 1 0 40",
			"read 1 0 41",
			"read 1 3 0",
			"alloc 2 16 0",
		}, "\n")
		Expect(runner.Run(strings.NewReader(script))).To(Succeed())

		reports := summarize()

		Expect(reports).To(Equal([]PIDReport{
			{
				PID:          1,
				Reads:        3,
				Writes:       1,
				TLBHits:      1,
				TLBMisses:    2,
				AccessErrors: 1,
				Faults:       1,
				Evictions:    1,
				RegionEvents: 1,
			},
			{
				PID:          2,
				RegionEvents: 1,
			},
		}))
	})

	It("should skip the tables a run never created", func() {
		Expect(runner.Run(strings.NewReader("proc 1\nalloc 1 8 0\n"))).
			To(Succeed())

		reports := summarize()

		Expect(reports).To(Equal([]PIDReport{{PID: 1, RegionEvents: 1}}))
	})

	It("should print one line per process", func() {
		out := new(bytes.Buffer)

		PrintReports(out, []PIDReport{{PID: vm.PID(3), Reads: 2, Faults: 1}})

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		Expect(lines).To(HaveLen(2))
		Expect(strings.Fields(lines[1])).To(Equal(
			[]string{"3", "2", "0", "0", "0", "0", "1", "0", "0"}))
	})
})
