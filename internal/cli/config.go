package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/dshills/sqlformat/internal/config"
	"github.com/dshills/sqlformat/internal/options"
	"github.com/dshills/sqlformat/internal/style"
)

func newConfigCmd(verbose *bool) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage .sqlparse configuration files",
	}
	configCmd.AddCommand(newConfigInitCmd())
	configCmd.AddCommand(newConfigShowCmd(verbose))
	configCmd.AddCommand(newConfigSetCmd())
	return configCmd
}

func newConfigInitCmd() *cobra.Command {
	var styleFlag string
	cmd := &cobra.Command{
		Use:   "init [DIR]",
		Short: "Create a .sqlparse file (default: current directory)",
		Args:  rangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path := config.Path(dir)

			text, err := initialConfig(styleFlag)
			if err != nil {
				return err
			}
			if err := config.Create(path, text); err != nil {
				if errors.Is(err, fs.ErrExist) {
					fmt.Fprintf(cmd.ErrOrStderr(), "Config file already exists at %s\n", path)
					return nil
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Config file created at %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&styleFlag, "style", "", "Base the new file on a style name or inline overlay")
	return cmd
}

// initialConfig renders the content of a new config file: every default for
// no style, a BasedOnStyle line for a named style, or the keys of an inline one.
func initialConfig(styleRef string) (string, error) {
	const header = "# sqlformat configuration\n"
	if styleRef == "" {
		return header + options.Serialize(options.Defaults()), nil
	}
	o, err := style.Builtin().Resolve(styleRef)
	if err != nil {
		return "", err
	}
	if !options.IsInline(styleRef) {
		o = options.Overlay{BasedOn: styleRef}
	}
	return header + options.SerializeOverlay(o), nil
}

func newConfigShowCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "show [PATH]",
		Short: "Show the configuration that applies to PATH (default: current directory)",
		Args:  rangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if len(args) == 1 {
				target = args[0]
			}
			resolver := config.NewResolver(style.Builtin(), newLogger(cmd.ErrOrStderr(), *verbose))
			cfg, err := resolver.Load(target)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), options.Serialize(cfg))
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value> [DIR]",
		Short: "Set one option in DIR/.sqlparse, creating the file if needed",
		Long: `Set one option in DIR/.sqlparse (default: current directory).

The file is rewritten from its parsed contents, so comments are not kept.
Flags must come before KEY; everything after it is positional, so values
such as -3 reach validation unchanged.`,
		Args: rangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 3 {
				dir = args[2]
			}

			o, err := config.LoadDir(dir)
			if err != nil {
				return err
			}
			name, err := setOption(&o, args[0], args[1])
			if err != nil {
				return err
			}
			if err := config.Save(dir, o); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", name, args[1])
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// setOption validates and applies one key, returning its external name.
func setOption(o *options.Overlay, key, value string) (string, error) {
	if options.IsBasedOnStyle(key) {
		if _, err := style.Builtin().Lookup(value); err != nil {
			return "", err
		}
		o.BasedOn = value
		return options.BasedOnStyle, nil
	}
	k, err := options.NormalizeKey(key)
	if err != nil {
		return "", err
	}
	v, err := options.Coerce(k, value)
	if err != nil {
		return "", err
	}
	o.Set(k, v)
	return k.ExternalName(), nil
}
