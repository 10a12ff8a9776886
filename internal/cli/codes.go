package cli

import (
	"fmt"

	"github.com/smokyabdulrahman/tinge"
	"github.com/spf13/cobra"
)

func newCodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List all color and style codes",
		Long:  "Print the table of supported color and style names with their numeric ANSI codes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			fmt.Fprintln(w, "Supported colors:")
			fmt.Fprintln(w)
			fmt.Fprintf(w, "  %-4s %s\n", "Code", "Name")
			fmt.Fprintf(w, "  %-4s %s\n", "────", "────")
			for _, c := range tinge.Colors() {
				fmt.Fprintf(w, "  %-4d %s\n", c.Code(), c)
			}

			fmt.Fprintln(w)
			fmt.Fprintln(w, "Supported styles:")
			fmt.Fprintln(w)
			fmt.Fprintf(w, "  %-4s %s\n", "Code", "Name")
			fmt.Fprintf(w, "  %-4s %s\n", "────", "────")
			for _, s := range tinge.Styles() {
				fmt.Fprintf(w, "  %-4d %s\n", s.Code(), s)
			}

			fmt.Fprintln(w)
			fmt.Fprintln(w, "Use --fg <name> or --style <name> to paint text.")
			return nil
		},
	}
}
