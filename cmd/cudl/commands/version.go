package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/agiangrant/cudl/cublas"
	"github.com/agiangrant/cudl/cuda"
	"github.com/agiangrant/cudl/cudart"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Prints the cudl version, followed by the driver, runtime and cuBLAS
versions for those libraries that can be loaded.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "cudl version %s\n", version)

			if v, err := cuda.DriverVersion(); err == nil {
				fmt.Fprintf(w, "driver  %s\n", formatVersion(v))
			} else {
				slog.Debug("driver version unavailable", "error", err)
			}
			if v, err := cudart.RuntimeVersion(); err == nil {
				fmt.Fprintf(w, "runtime %s\n", formatVersion(v))
			} else {
				slog.Debug("runtime version unavailable", "error", err)
			}
			if major, minor, patch, err := cublas.LibraryVersion(); err == nil {
				fmt.Fprintf(w, "cublas  %d.%d.%d\n", major, minor, patch)
			} else {
				slog.Debug("cuBLAS version unavailable", "error", err)
			}
		},
	}
}

// formatVersion decodes a version encoded as 1000*major + 10*minor.
func formatVersion(v int32) string {
	return fmt.Sprintf("%d.%d", v/1000, (v%1000)/10)
}
