package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/sqlformat/internal/options"
	"github.com/dshills/sqlformat/internal/style"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitConfigError  = 1
	ExitUsageError   = 2
	ExitRuntimeError = 3
)

// usageError marks bad flags or arguments.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// Run executes the command line of the current process and returns an exit code.
func Run() int {
	return Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Execute runs sqlformat with args and the given standard streams and returns
// an exit code. Errors are printed to stderr.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

func exitCodeFor(err error) int {
	var ue usageError
	switch {
	case errors.As(err, &ue):
		return ExitUsageError
	case errors.Is(err, options.ErrUnknownOption),
		errors.Is(err, options.ErrInvalidValue),
		errors.Is(err, options.ErrParse),
		errors.Is(err, style.ErrUnknownStyle):
		return ExitConfigError
	default:
		return ExitRuntimeError
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "sqlformat [flags] FILE",
		Short: "Format SQL using layered .sqlparse configuration",
		Long: `sqlformat pretty-prints a SQL file (or stdin when FILE is "-").

Options are resolved, lowest to highest precedence, from the built-in
defaults, the nearest .sqlparse file above FILE (and the style it names
with BasedOnStyle), the --style flag, and the per-option flags.

Subcommand names take precedence over FILE. To format a file named like a
subcommand (config, styles, version, help), give it a path: ./config.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log configuration discovery to stderr")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	addFormatCommand(root, &verbose)
	root.AddCommand(newConfigCmd(&verbose))
	root.AddCommand(newStylesCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// exactArgs is cobra.ExactArgs reported as a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return wrapArgs(cobra.ExactArgs(n))
}

func rangeArgs(lo, hi int) cobra.PositionalArgs {
	return wrapArgs(cobra.RangeArgs(lo, hi))
}

func wrapArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print sqlformat version",
		Args:  exactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sqlformat version %s\n", version)
		},
	}
}
