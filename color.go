package tinge

// Color identifies an ANSI foreground color. The constant value is the
// numeric code written into the escape sequence, so the mapping from
// name to code is fixed at compile time.
type Color int

// Standard foreground colors.
const (
	FgBlack Color = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Bright foreground colors.
const (
	FgHiBlack Color = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

// Code returns the numeric ANSI code for the color.
func (c Color) Code() int {
	return int(c)
}

// String returns the lower-case color name, e.g. "red" or "bright-red".
func (c Color) String() string {
	switch c {
	case FgBlack:
		return "black"
	case FgRed:
		return "red"
	case FgGreen:
		return "green"
	case FgYellow:
		return "yellow"
	case FgBlue:
		return "blue"
	case FgMagenta:
		return "magenta"
	case FgCyan:
		return "cyan"
	case FgWhite:
		return "white"
	case FgHiBlack:
		return "bright-black"
	case FgHiRed:
		return "bright-red"
	case FgHiGreen:
		return "bright-green"
	case FgHiYellow:
		return "bright-yellow"
	case FgHiBlue:
		return "bright-blue"
	case FgHiMagenta:
		return "bright-magenta"
	case FgHiCyan:
		return "bright-cyan"
	case FgHiWhite:
		return "bright-white"
	}
	return "unknown"
}

// Colors returns every supported color in display order: the eight
// standard colors followed by their bright variants.
func Colors() []Color {
	return []Color{
		FgBlack, FgRed, FgGreen, FgYellow,
		FgBlue, FgMagenta, FgCyan, FgWhite,
		FgHiBlack, FgHiRed, FgHiGreen, FgHiYellow,
		FgHiBlue, FgHiMagenta, FgHiCyan, FgHiWhite,
	}
}

// Style identifies an ANSI text attribute. As with Color, the constant
// value is the numeric code itself.
type Style int

// Text attributes.
const (
	StyleBold Style = iota + 1
	StyleFaint
	StyleItalic
	StyleUnderline
)

// Code returns the numeric ANSI code for the style.
func (s Style) Code() int {
	return int(s)
}

// String returns the lower-case style name.
func (s Style) String() string {
	switch s {
	case StyleBold:
		return "bold"
	case StyleFaint:
		return "faint"
	case StyleItalic:
		return "italic"
	case StyleUnderline:
		return "underline"
	}
	return "unknown"
}

// Styles returns every supported style in display order.
func Styles() []Style {
	return []Style{StyleBold, StyleFaint, StyleItalic, StyleUnderline}
}
