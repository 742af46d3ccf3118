package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sarchlab/vmsim/mem/vm"
	"github.com/sarchlab/vmsim/mem/vm/mmu"
	"github.com/sarchlab/vmsim/monitoring"
)

// A Command is one line of a script.
type Command struct {
	Line   int
	Op     string
	PID    vm.PID
	Size   uint64
	Symbol int
	Offset uint64
	Value  byte
}

var numArgs = map[string]int{
	"proc":  1,
	"alloc": 3,
	"free":  2,
	"read":  3,
	"write": 4,
	"exit":  1,
	"dump":  0,
}

// ParseCommand parses a script line. Blank lines and lines starting with #
// return false.
func ParseCommand(lineNo int, line string) (Command, bool, error) {
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, false, nil
	}

	c := Command{Line: lineNo, Op: strings.ToLower(fields[0])}
	args := fields[1:]

	n, known := numArgs[c.Op]
	if !known {
		return c, false, fmt.Errorf("line %d: unknown command %q", lineNo, c.Op)
	}

	if len(args) != n {
		return c, false, fmt.Errorf("line %d: %s takes %d arguments, got %d",
			lineNo, c.Op, n, len(args))
	}

	err := c.parseArgs(args)
	if err != nil {
		return c, false, fmt.Errorf("line %d: %w", lineNo, err)
	}

	return c, true, nil
}

func (c *Command) parseArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}

	pid, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("pid %q: %w", args[0], err)
	}

	c.PID = vm.PID(pid)

	switch c.Op {
	case "alloc":
		c.Size, err = ParseSize(args[1])
		if err != nil {
			return fmt.Errorf("size %q: %w", args[1], err)
		}

		c.Symbol, err = strconv.Atoi(args[2])
	case "free":
		c.Symbol, err = strconv.Atoi(args[1])
	case "read", "write":
		c.Symbol, err = strconv.Atoi(args[1])
		if err != nil {
			return err
		}

		c.Offset, err = strconv.ParseUint(args[2], 0, 64)
		if err != nil || c.Op == "read" {
			return err
		}

		var value uint64

		value, err = strconv.ParseUint(args[3], 0, 8)
		c.Value = byte(value)
	}

	return err
}

// A Runner executes scripts against an MMU.
type Runner struct {
	MMU       *mmu.Comp
	Out       io.Writer
	KeepGoing bool
	Progress  *monitoring.ProgressBar

	NumErrors int
}

// Run executes every line of the script. It stops at the first failing line
// unless KeepGoing is set.
func (r *Runner) Run(script io.Reader) error {
	var lines []string

	scanner := bufio.NewScanner(script)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	if r.Progress != nil {
		r.Progress.SetTotal(uint64(len(lines)))
	}

	for i, line := range lines {
		err := r.runLine(i+1, line)
		if r.Progress != nil {
			r.Progress.IncrementFinished(1)
		}

		if err == nil {
			continue
		}

		r.NumErrors++
		fmt.Fprintf(r.Out, "error: %v\n", err)

		if !r.KeepGoing {
			return err
		}
	}

	return nil
}

func (r *Runner) runLine(lineNo int, line string) error {
	c, ok, err := ParseCommand(lineNo, line)
	if err != nil || !ok {
		return err
	}

	err = r.Exec(c)
	if err != nil {
		return fmt.Errorf("line %d: %w", lineNo, err)
	}

	return nil
}

// Exec executes a single command and prints its result.
func (r *Runner) Exec(c Command) error {
	switch c.Op {
	case "proc":
		return r.report(r.MMU.CreateProcess(c.PID), "proc pid=%d", c.PID)
	case "exit":
		return r.report(r.MMU.ExitProcess(c.PID), "exit pid=%d", c.PID)
	case "alloc":
		addr, err := r.MMU.Allocate(c.PID, c.Size, c.Symbol)
		return r.report(err, "alloc pid=%d symbol=%d size=%d -> 0x%x",
			c.PID, c.Symbol, c.Size, addr)
	case "free":
		return r.report(r.MMU.Free(c.PID, c.Symbol),
			"free pid=%d symbol=%d", c.PID, c.Symbol)
	case "read":
		value, err := r.MMU.Read(c.PID, c.Symbol, c.Offset)
		return r.report(err, "read pid=%d symbol=%d offset=%d -> %d",
			c.PID, c.Symbol, c.Offset, value)
	case "write":
		return r.report(r.MMU.Write(c.PID, c.Symbol, c.Offset, c.Value),
			"write pid=%d symbol=%d offset=%d value=%d",
			c.PID, c.Symbol, c.Offset, c.Value)
	case "dump":
		return r.dump()
	default:
		return fmt.Errorf("unknown command %q", c.Op)
	}
}

func (r *Runner) report(err error, format string, args ...any) error {
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(r.Out, format+"\n", args...)

	return err
}

func (r *Runner) dump() error {
	err := r.MMU.RAM().Dump(r.Out)
	if err != nil {
		return err
	}

	err = r.MMU.Swap().Dump(r.Out)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.Out, "TLB content of %s:\n", r.MMU.TLB().Name())

	for _, e := range r.MMU.TLB().Entries() {
		fmt.Fprintf(r.Out, "  %s\n", e)
	}

	return nil
}
