// Command vmsim runs scripts of allocations and byte accesses against the
// virtual memory simulator.
package main

import "github.com/sarchlab/vmsim/vmsim/cmd"

func main() {
	cmd.Execute()
}
