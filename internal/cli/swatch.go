package cli

import (
	"fmt"

	"github.com/smokyabdulrahman/tinge"
	"github.com/spf13/cobra"
)

func newSwatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swatch",
		Short: "Print a swatch of every color and style",
		Long:  "Display every supported color and style. Each cell is rendered in itself,\nlabeled with the escape code it produces.",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			colors := tinge.Colors()

			// Standard colors, then bright, then styles, one row each.
			for _, c := range colors[:8] {
				fmt.Fprintf(w, "%s  ", tinge.Apply(fmt.Sprintf("\\e[1;%dm", c.Code()), c))
			}
			fmt.Fprintln(w)

			for _, c := range colors[8:] {
				fmt.Fprintf(w, "%s  ", tinge.Apply(fmt.Sprintf("\\e[1;%dm", c.Code()), c))
			}
			fmt.Fprintln(w)

			for _, s := range tinge.Styles() {
				fmt.Fprintf(w, "%s  ", tinge.Stylize(fmt.Sprintf("\\e[%dm", s.Code()), s))
			}
			fmt.Fprintln(w)

			return nil
		},
	}
}
