// Package tinge wraps terminal text in ANSI escape codes while
// respecting terminal capability and user preference.
//
// Whether escape codes are emitted is decided per call by a three-tier
// policy: a process-wide override set with Force, the TERM_COLOR
// environment variable, and whether stdout is attached to a terminal,
// in that order. The override lets test suites and CI pipelines pin a
// deterministic mode; interactive use just works, and piped or
// redirected output degrades to plain text.
//
// The package never writes to stdout itself; it only returns wrapped
// strings for callers to print.
package tinge

import "strconv"

// ANSI escape sequence framing.
const (
	escPrefix = "\x1b["
	escReset  = "\x1b[0m"
)

// Text is a string whose escape codes, if any, were decided when it was
// built. Converting it back to a string returns the same bytes every
// time; the color decision is never re-evaluated.
type Text string

// String returns the underlying text, escape codes included when they
// were applied.
func (t Text) String() string {
	return string(t)
}

// Apply wraps s in the escape sequence for c when color output is
// enabled, and returns s unchanged otherwise.
func Apply(s string, c Color) Text {
	return std.Apply(s, c)
}

// Apply wraps s using this resolver's decision.
func (r *Resolver) Apply(s string, c Color) Text {
	if !r.Enabled() {
		return Text(s)
	}
	return Text(escPrefix + "1;" + strconv.Itoa(c.Code()) + "m" + s + escReset)
}

// Stylize wraps s in the escape sequence for st when color output is
// enabled, and returns s unchanged otherwise.
func Stylize(s string, st Style) Text {
	return std.Stylize(s, st)
}

// Stylize wraps s using this resolver's decision.
func (r *Resolver) Stylize(s string, st Style) Text {
	if !r.Enabled() {
		return Text(s)
	}
	return Text(escPrefix + strconv.Itoa(st.Code()) + "m" + s + escReset)
}

// Black returns s in black.
func Black(s string) Text { return Apply(s, FgBlack) }

// Red returns s in red.
func Red(s string) Text { return Apply(s, FgRed) }

// Green returns s in green.
func Green(s string) Text { return Apply(s, FgGreen) }

// Yellow returns s in yellow.
func Yellow(s string) Text { return Apply(s, FgYellow) }

// Blue returns s in blue.
func Blue(s string) Text { return Apply(s, FgBlue) }

// Magenta returns s in magenta.
func Magenta(s string) Text { return Apply(s, FgMagenta) }

// Cyan returns s in cyan.
func Cyan(s string) Text { return Apply(s, FgCyan) }

// White returns s in white.
func White(s string) Text { return Apply(s, FgWhite) }

// BrightBlack returns s in bright black (gray).
func BrightBlack(s string) Text { return Apply(s, FgHiBlack) }

// BrightRed returns s in bright red.
func BrightRed(s string) Text { return Apply(s, FgHiRed) }

// BrightGreen returns s in bright green.
func BrightGreen(s string) Text { return Apply(s, FgHiGreen) }

// BrightYellow returns s in bright yellow.
func BrightYellow(s string) Text { return Apply(s, FgHiYellow) }

// BrightBlue returns s in bright blue.
func BrightBlue(s string) Text { return Apply(s, FgHiBlue) }

// BrightMagenta returns s in bright magenta.
func BrightMagenta(s string) Text { return Apply(s, FgHiMagenta) }

// BrightCyan returns s in bright cyan.
func BrightCyan(s string) Text { return Apply(s, FgHiCyan) }

// BrightWhite returns s in bright white.
func BrightWhite(s string) Text { return Apply(s, FgHiWhite) }

// Bold returns s in bold.
func Bold(s string) Text { return Stylize(s, StyleBold) }

// Faint returns s in faint/dim.
func Faint(s string) Text { return Stylize(s, StyleFaint) }

// Italic returns s in italic.
func Italic(s string) Text { return Stylize(s, StyleItalic) }

// Underline returns s underlined.
func Underline(s string) Text { return Stylize(s, StyleUnderline) }
