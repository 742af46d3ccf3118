package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/sarchlab/vmsim/datarecording"
	"github.com/sarchlab/vmsim/mem/vm/mmu"
	"github.com/sarchlab/vmsim/monitoring"
	"github.com/sarchlab/vmsim/sim/hooking"
)

var runCmd = newRunCmd()

func init() {
	rootCmd.AddCommand(runCmd)
}

type runOptions struct {
	Config

	record      string
	verbose     bool
	monitor     bool
	monitorPort int
	openMonitor bool
	keepGoing   bool
}

// newRunCmd creates the run command. The flag defaults are the built-in
// ones; the environment is read when the command runs.
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Run a script against the simulator.",
		Long: `Run executes a script line by line. The script is read from ` +
			`the standard input when no file is given. Commands:

  proc <pid>
  alloc <pid> <size> <symbol>
  free <pid> <symbol>
  read <pid> <symbol> <offset>
  write <pid> <symbol> <offset> <value>
  exit <pid>
  dump`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := runOptionsFromFlags(cmd)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()

			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()

				in = f
			}

			return runScript(opts, in, cmd.OutOrStdout())
		},
	}

	d := DefaultConfig()
	f := cmd.Flags()

	f.Uint64("page-bits", d.PageBits, "log2 of the page size")
	f.Int("num-pages", d.NumPages, "number of entries of each page table")
	f.String("ram-size", fmt.Sprint(d.RAMSize), "RAM capacity, e.g. 1M")
	f.String("swap-size", fmt.Sprint(d.SwapSize), "swap capacity, e.g. 16M")
	f.Int("tlb-capacity", d.TLBCapacity, "number of TLB entries")
	f.Duration("latency", d.AccessLatency, "time taken by each read and write")
	f.String("record", "", "record the events into <record>.sqlite3")
	f.Bool("verbose", false, "log every event to stderr")
	f.Bool("monitor", false, "serve the simulator state over HTTP")
	f.Int("monitor-port", 0, "port of the monitor, random if 0")
	f.Bool("open-monitor", false, "open the monitor in a browser")
	f.Bool("keep-going", false, "continue after a failing line")

	return cmd
}

// runOptionsFromFlags starts from the environment and applies the flags set
// on the command line.
func runOptionsFromFlags(cmd *cobra.Command) (runOptions, error) {
	f := cmd.Flags()
	o := runOptions{Config: envOrDefault()}

	var err error

	if f.Changed("page-bits") {
		o.PageBits, _ = f.GetUint64("page-bits")
	}

	if f.Changed("num-pages") {
		o.NumPages, _ = f.GetInt("num-pages")
	}

	if f.Changed("tlb-capacity") {
		o.TLBCapacity, _ = f.GetInt("tlb-capacity")
	}

	if f.Changed("latency") {
		o.AccessLatency, _ = f.GetDuration("latency")
	}

	if f.Changed("ram-size") {
		ramSize, _ := f.GetString("ram-size")

		o.RAMSize, err = ParseSize(ramSize)
		if err != nil {
			return o, fmt.Errorf("--ram-size: %w", err)
		}
	}

	if f.Changed("swap-size") {
		swapSize, _ := f.GetString("swap-size")

		o.SwapSize, err = ParseSize(swapSize)
		if err != nil {
			return o, fmt.Errorf("--swap-size: %w", err)
		}
	}

	o.record, _ = f.GetString("record")
	o.verbose, _ = f.GetBool("verbose")
	o.monitor, _ = f.GetBool("monitor")
	o.monitorPort, _ = f.GetInt("monitor-port")
	o.openMonitor, _ = f.GetBool("open-monitor")
	o.keepGoing, _ = f.GetBool("keep-going")

	return o, o.Validate()
}

func buildMMU(c Config) *mmu.Comp {
	return mmu.MakeBuilder().
		WithPageBits(c.PageBits).
		WithNumPages(c.NumPages).
		WithRAMSize(c.RAMSize).
		WithSwapSize(c.SwapSize).
		WithTLBCapacity(c.TLBCapacity).
		WithAccessLatency(c.AccessLatency).
		Build("MMU")
}

func runScript(opts runOptions, in io.Reader, out io.Writer) error {
	err := opts.Validate()
	if err != nil {
		return err
	}

	m := buildMMU(opts.Config)

	counter := hooking.NewCountTracer()
	m.AcceptHook(counter)

	if opts.verbose {
		logger := log.New(os.Stderr, "", log.Lmicroseconds)
		m.AcceptHook(hooking.NewLogTracer(logger))
		m.TLB().AcceptHook(hooking.NewLogTracer(logger))
	}

	if opts.record != "" {
		recorder := datarecording.New(opts.record)
		m.AcceptHook(hooking.NewDBTracer(recorder))
	}

	runner := &Runner{
		MMU:       m,
		Out:       out,
		KeepGoing: opts.keepGoing,
	}

	if opts.monitor {
		monitor := monitoring.NewMonitor().WithPortNumber(opts.monitorPort)
		monitor.RegisterMMU(m)
		monitor.RegisterCounter(counter)
		monitor.StartServer()

		runner.Progress = monitor.CreateProgressBar("script", 0)
		defer monitor.CompleteProgressBar(runner.Progress)

		if opts.openMonitor {
			err := browser.OpenURL(monitor.URL())
			if err != nil {
				fmt.Fprintf(os.Stderr, "Cannot open the browser: %v\n", err)
			}
		}
	}

	err = runner.Run(in)

	printCounters(out, counter)

	return err
}

func printCounters(w io.Writer, counter *hooking.CountTracer) {
	fmt.Fprintln(w, "Counters:")

	for _, name := range counter.SortedTagNames() {
		fmt.Fprintf(w, "  %s: %d\n", name, counter.GetTagCount(name))
	}
}
