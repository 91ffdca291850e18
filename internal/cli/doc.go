// Package cli wires together the Cobra command tree for the sqlformat binary.
//
// The root command formats one SQL file (or stdin) using the configuration
// resolved from the nearest .sqlparse file, --style and the per-option
// flags; --dump-config prints that configuration instead. Subcommands manage
// configuration files (config), list built-in styles (styles) and print the
// version.
package cli
