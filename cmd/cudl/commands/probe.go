package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agiangrant/cudl"
)

func newProbeCommand() *cobra.Command {
	var symbols bool
	cmd := &cobra.Command{
		Use:   "probe [module...]",
		Short: "Load modules and report the functions they export",
		Long: `Loads the named modules, or all of them, concurrently and prints the
loaded path with the number of declared functions the library exports.
The exit status is 1 if any module fails to load.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses, err := cudl.Probe(args...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			failed := false
			for _, s := range statuses {
				if s.Err != nil {
					failed = true
					fmt.Fprintf(w, "%s\tFAILED\t%v\n", s.Name, s.Err)
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%d/%d symbols\n", s.Name, s.Path, len(s.Resolved), s.Declared)
				if !symbols {
					continue
				}
				for _, name := range s.Resolved {
					fmt.Fprintf(w, "\t+ %s\n", name)
				}
				for _, name := range s.Missing {
					fmt.Fprintf(w, "\t- %s\n", name)
				}
			}
			if failed {
				return &exitError{code: 1}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&symbols, "symbols", false, "list resolved (+) and missing (-) functions")
	return cmd
}
