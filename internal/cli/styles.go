package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/sqlformat/internal/options"
	"github.com/dshills/sqlformat/internal/style"
)

func newStylesCmd() *cobra.Command {
	stylesCmd := &cobra.Command{
		Use:   "styles",
		Short: "List built-in styles",
		Args:  exactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range style.Builtin().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
	stylesCmd.AddCommand(&cobra.Command{
		Use:   "show <name|{inline}>",
		Short: "Print the options a style sets",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := style.Builtin().Resolve(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), options.SerializeOverlay(o))
			return nil
		},
	})
	return stylesCmd
}
