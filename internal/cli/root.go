// Package cli implements the tinge command line interface.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/smokyabdulrahman/tinge"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Global flags shared across all subcommands.
var (
	FlagColor string
	FlagFg    string
	FlagStyle string
)

// NewRootCmd creates the root command for the tinge CLI.
// The version parameter is set by the calling binary via ldflags.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tinge [text...]",
		Short:   "Colorize terminal text with ANSI escape codes",
		Long:    "Wrap text in ANSI escape codes, respecting terminal capability and user preference.\nColor is emitted when stdout is a terminal, unless TERM_COLOR disables it or --color overrides both.",
		Version: version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyColorMode(FlagColor)
		},
		// Default action: paint the argument text (or stdin).
		RunE:          runPaint,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Register global persistent flags.
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&FlagColor, "color", "auto", "When to emit color: auto, always or never")

	fl := rootCmd.Flags()
	fl.StringVar(&FlagFg, "fg", "", "Foreground color name (see 'tinge codes')")
	fl.StringVar(&FlagStyle, "style", "", "Text style: bold, faint, italic or underline")

	// Register subcommands.
	rootCmd.AddCommand(newSwatchCmd())
	rootCmd.AddCommand(newCodesCmd())
	rootCmd.AddCommand(newEnabledCmd())

	return rootCmd
}

// applyColorMode maps the --color flag onto the process-wide override.
// auto restores automatic detection; always and never force the decision
// for every formatting call, including the library's env and tty checks.
func applyColorMode(value string) error {
	switch strings.ToLower(value) {
	case "auto":
		tinge.Force(nil)
	case "always":
		on := true
		tinge.Force(&on)
	case "never":
		off := false
		tinge.Force(&off)
	default:
		return fmt.Errorf("invalid --color value %q (valid: auto, always, never)", value)
	}
	return nil
}

// runPaint colorizes the argument text, or stdin when no args are given.
func runPaint(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = strings.TrimRight(string(data), "\n")
	}

	out := text
	if flagWasSet(cmd.Flags(), "fg") {
		c, err := colorByName(FlagFg)
		if err != nil {
			return err
		}
		out = tinge.Apply(out, c).String()
	}
	if flagWasSet(cmd.Flags(), "style") {
		st, err := styleByName(FlagStyle)
		if err != nil {
			return err
		}
		out = tinge.Stylize(out, st).String()
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// flagWasSet checks if a flag was explicitly set on the given flag set.
func flagWasSet(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Changed
}

// colorByName resolves a CLI color name to the closed library enum.
func colorByName(name string) (tinge.Color, error) {
	want := strings.ToLower(name)
	for _, c := range tinge.Colors() {
		if c.String() == want {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown color %q (see 'tinge codes' for valid names)", name)
}

// styleByName resolves a CLI style name to the closed library enum.
func styleByName(name string) (tinge.Style, error) {
	want := strings.ToLower(name)
	for _, s := range tinge.Styles() {
		if s.String() == want {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown style %q (valid: bold, faint, italic, underline)", name)
}
