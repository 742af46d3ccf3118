package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sarchlab/vmsim/datarecording"
	"github.com/sarchlab/vmsim/mem/vm"
)

var reportCmd = &cobra.Command{
	Use:   "report <recording.sqlite3>",
	Short: "Summarize a recording per process.",
	Long: `Report reads back a database written by "run --record" and ` +
		`prints, for each process, its accesses, TLB hits and misses, page ` +
		`faults and evictions.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stat(args[0])
		if err != nil {
			return err
		}

		reader := datarecording.NewReader(args[0])
		defer reader.Close()

		reports, err := Summarize(cmd.Context(), reader)
		if err != nil {
			return err
		}

		PrintReports(cmd.OutOrStdout(), reports)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

// A PIDReport sums up the recorded events of one process.
type PIDReport struct {
	PID          vm.PID
	Reads        int
	Writes       int
	TLBHits      int
	TLBMisses    int
	AccessErrors int
	Faults       int
	Evictions    int
	RegionEvents int
	RegionErrors int
}

type reportTable struct {
	name   string
	sample any
	add    func(r *PIDReport, row any)
}

var reportTables = []reportTable{
	{"access", vm.AccessRecord{}, addAccess},
	{"fault", vm.FaultRecord{}, addFault},
	{"region", vm.RegionRecord{}, addRegion},
}

func addAccess(r *PIDReport, row any) {
	a := row.(*vm.AccessRecord)

	switch a.Op {
	case string(vm.OpRead):
		r.Reads++
	case string(vm.OpWrite):
		r.Writes++
	}

	switch {
	case a.Error != "":
		r.AccessErrors++
	case a.TLBHit:
		r.TLBHits++
	default:
		r.TLBMisses++
	}
}

func addFault(r *PIDReport, row any) {
	r.Faults++

	if row.(*vm.FaultRecord).HasVictim {
		r.Evictions++
	}
}

func addRegion(r *PIDReport, row any) {
	r.RegionEvents++

	if row.(*vm.RegionRecord).Error != "" {
		r.RegionErrors++
	}
}

func rowPID(row any) vm.PID {
	switch r := row.(type) {
	case *vm.AccessRecord:
		return vm.PID(r.PID)
	case *vm.FaultRecord:
		return vm.PID(r.PID)
	case *vm.RegionRecord:
		return vm.PID(r.PID)
	default:
		panic(fmt.Sprintf("unexpected row type %T", row))
	}
}

// Summarize reads every table the recorder writes and groups the rows by
// process. Tables that the run never created are skipped.
func Summarize(
	ctx context.Context,
	reader datarecording.DataReader,
) ([]PIDReport, error) {
	byPID := make(map[vm.PID]*PIDReport)

	for _, t := range reportTables {
		found, err := reader.HasTable(ctx, t.name)
		if err != nil {
			return nil, err
		}

		if !found {
			continue
		}

		reader.MapTable(t.name, t.sample)

		rows, _, err := reader.Query(ctx, t.name, datarecording.QueryParams{})
		if err != nil {
			return nil, fmt.Errorf("reading table %s: %w", t.name, err)
		}

		for _, row := range rows {
			pid := rowPID(row)

			r, ok := byPID[pid]
			if !ok {
				r = &PIDReport{PID: pid}
				byPID[pid] = r
			}

			t.add(r, row)
		}
	}

	reports := make([]PIDReport, 0, len(byPID))
	for _, r := range byPID {
		reports = append(reports, *r)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].PID < reports[j].PID
	})

	return reports, nil
}

// PrintReports writes one line per process.
func PrintReports(w io.Writer, reports []PIDReport) {
	fmt.Fprintf(w, "%6s %8s %8s %8s %8s %8s %8s %8s %8s\n",
		"pid", "reads", "writes", "tlb-hit", "tlb-miss", "errors",
		"faults", "evicted", "regions")

	for _, r := range reports {
		fmt.Fprintf(w, "%6d %8d %8d %8d %8d %8d %8d %8d %8d\n",
			r.PID, r.Reads, r.Writes, r.TLBHits, r.TLBMisses,
			r.AccessErrors+r.RegionErrors, r.Faults, r.Evictions,
			r.RegionEvents)
	}
}
