// Command cudl reports where the CUDA driver, runtime and cuBLAS libraries
// are found and which of their functions they export.
package main

import (
	"os"

	"github.com/agiangrant/cudl/cmd/cudl/commands"
)

func main() {
	os.Exit(Main())
}

// Main runs cudl with the process arguments and returns its exit code.
func Main() int {
	return commands.Execute(os.Args[1:], os.Stdout, os.Stderr)
}
