package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dshills/sqlformat/internal/config"
	"github.com/dshills/sqlformat/internal/format"
	"github.com/dshills/sqlformat/internal/options"
	"github.com/dshills/sqlformat/internal/output"
	"github.com/dshills/sqlformat/internal/style"
)

// overrideFlags maps per-option flags to the option they set. Only flags the
// user actually passed become part of the command-line overlay.
var overrideFlags = map[string]options.Key{
	"keywords":                   options.KeywordCase,
	"identifiers":                options.IdentifierCase,
	"strip-comments":             options.StripComments,
	"strip-whitespace":           options.StripWhitespace,
	"use-space-around-operators": options.UseSpaceAroundOperators,
	"reindent":                   options.Reindent,
	"indent-tabs":                options.IndentTabs,
	"indent-width":               options.IndentWidth,
	"wrap-after":                 options.WrapAfter,
	"comma-first":                options.CommaFirst,
}

type formatFlags struct {
	style      string
	dumpConfig bool
	outfile    string
}

func addFormatCommand(root *cobra.Command, verbose *bool) {
	var f formatFlags

	fl := root.Flags()
	fl.StringVar(&f.style, "style", "", "Style name (e.g. mysql) or inline overlay (e.g. '{IndentWidth: 4}')")
	fl.BoolVar(&f.dumpConfig, "dump-config", false, "Print the resolved configuration instead of formatting")
	fl.StringVarP(&f.outfile, "outfile", "o", "", "Write output to FILE (default: stdout)")

	// Values are read back through the option schema, so the defaults here
	// are placeholders and never applied.
	fl.StringP("keywords", "k", "", choicesUsage("Keyword case", options.KeywordCase))
	fl.StringP("identifiers", "i", "", choicesUsage("Identifier case", options.IdentifierCase))
	fl.Bool("strip-comments", false, "Remove comments")
	fl.Bool("strip-whitespace", false, "Collapse whitespace")
	fl.BoolP("use-space-around-operators", "s", false, "Put spaces around binary operators")
	fl.BoolP("reindent", "r", false, "Reindent statements one clause per line")
	fl.Bool("indent-tabs", false, "Indent with tabs")
	fl.Int("indent-width", 0, "Indentation width in spaces")
	fl.Int("wrap-after", 0, "Wrap column lists after N characters (0 = one per line)")
	fl.Bool("comma-first", false, "Put commas at the start of list lines")

	root.Args = exactArgs(1)
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return runFormat(cmd, f, args[0], *verbose)
	}
}

func choicesUsage(what string, k options.Key) string {
	return fmt.Sprintf("%s (%s)", what, strings.Join(k.Choices(), ", "))
}

// cliOverlay converts the explicitly set option flags into an overlay.
func cliOverlay(fs *pflag.FlagSet) (options.Overlay, error) {
	var o options.Overlay
	var firstErr error
	fs.Visit(func(fl *pflag.Flag) {
		k, ok := overrideFlags[fl.Name]
		if !ok || firstErr != nil {
			return
		}
		v, err := options.Coerce(k, fl.Value.String())
		if err != nil {
			firstErr = fmt.Errorf("--%s: %w", fl.Name, err)
			return
		}
		o.Set(k, v)
	})
	return o, firstErr
}

func runFormat(cmd *cobra.Command, f formatFlags, target string, verbose bool) error {
	cli, err := cliOverlay(cmd.Flags())
	if err != nil {
		return err
	}

	start := target
	if target == "-" {
		if start, err = os.Getwd(); err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
	}

	resolver := config.NewResolver(style.Builtin(), newLogger(cmd.ErrOrStderr(), verbose))
	res, err := resolver.Resolve(config.Request{Path: start, Style: f.style, Overrides: cli})
	if err != nil {
		return err
	}

	if f.dumpConfig {
		return output.Write(cmd.OutOrStdout(), f.outfile, options.Serialize(res.Config))
	}

	sql, err := readInput(cmd.InOrStdin(), target)
	if err != nil {
		return err
	}
	return output.Write(cmd.OutOrStdout(), f.outfile, format.Format(sql, res.Config))
}

func readInput(stdin io.Reader, target string) (string, error) {
	if target == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(target)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}
