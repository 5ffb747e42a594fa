// Package commands implements the cudl command tree.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/agiangrant/cudl"
	"github.com/agiangrant/cudl/internal/slogext"
)

const version = "0.1.0"

// options holds the global flags and the configuration they select.
type options struct {
	configPath string
	logLevel   string
	lines      bool

	config cudl.Config
}

// exitError ends the command with a status code after the failure has
// already been reported.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// NewRootCommand returns the cudl command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "cudl",
		Short: "Locate and probe the CUDA driver, runtime and cuBLAS libraries",
		Long: `cudl shows which CUDA library files would be loaded with the current
environment and configuration, loads them, and reports which of the
declared functions each one exports.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "configuration file (default $"+cudl.ConfigEnv+")")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.lines, "lines", false, "include source locations in log output")

	root.AddCommand(
		newLocateCommand(),
		newProbeCommand(),
		newVersionCommand(),
		newConfigCommand(opts),
	)
	return root
}

// setup installs the logger and applies the configuration.
func (o *options) setup(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q", o.logLevel)
	}
	logger := slogext.NewLogger(cmd.ErrOrStderr(), level, o.lines)
	slog.SetDefault(logger)
	cudl.SetLogger(logger)

	path := o.configPath
	if path == "" {
		path = os.Getenv(cudl.ConfigEnv)
	}
	o.config = cudl.DefaultConfig()
	if path != "" {
		config, err := cudl.LoadConfig(path)
		if err != nil {
			return err
		}
		o.config = config
	}
	return cudl.Configure(o.config)
}

// Execute runs the command tree with args and returns the exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	var exit *exitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exit):
		return exit.code
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}
