package cli

import (
	"fmt"
	"os"

	"github.com/smokyabdulrahman/tinge"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newEnabledCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enabled",
		Short: "Show whether color output is active",
		Long:  "Display the current color decision along with the inputs that produced it:\nthe override mode, the TERM_COLOR variable, and stdout terminal attachment.",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			envVal := "(not set)"
			if v, ok := os.LookupEnv(tinge.EnvColor); ok {
				envVal = fmt.Sprintf("%q", v)
			}

			fmt.Fprintf(w, "  %-12s %v\n", "enabled", tinge.Enabled())
			fmt.Fprintf(w, "  %-12s %s\n", "mode", tinge.CurrentMode())
			fmt.Fprintf(w, "  %-12s %s\n", tinge.EnvColor, envVal)
			fmt.Fprintf(w, "  %-12s %v\n", "stdout tty", term.IsTerminal(int(os.Stdout.Fd())))
			return nil
		},
	}
}
