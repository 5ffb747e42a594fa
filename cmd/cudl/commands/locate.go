package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agiangrant/cudl"
	"github.com/agiangrant/cudl/internal/ffi"
)

func newLocateCommand() *cobra.Command {
	var candidates bool
	cmd := &cobra.Command{
		Use:   "locate [module...]",
		Short: "Print the library path each module would load",
		Long: `Prints the library path each module would load, without loading it.
With --candidates, every location searched is listed in priority order
and the ones that exist are marked with '*'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mods, err := cudl.SelectModules(args...)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			locator := ffi.DefaultLocator()
			for _, m := range mods {
				fmt.Fprintf(w, "%s\t%s\n", m.Name, m.LibraryPath())
				if !candidates {
					continue
				}
				if path, ok := locator.Override(m.Name); ok {
					fmt.Fprintf(w, "\t= %s (configured)\n", path)
					continue
				}
				for _, c := range locator.Candidates(m.Name) {
					mark := " "
					if fi, err := os.Stat(c.Path()); err == nil && fi.Mode().IsRegular() {
						mark = "*"
					}
					fmt.Fprintf(w, "\t%s %s\n", mark, c.Path())
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&candidates, "candidates", false, "list every candidate path in search order")
	return cmd
}
