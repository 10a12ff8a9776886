package tinge

import (
	"os"
	"strings"

	"go.uber.org/atomic"
	"golang.org/x/term"
)

// EnvColor is the environment variable consulted when no override is in
// effect. Setting it to a falsy value ("", "0", "false" or "no", case
// insensitive) disables color output; any other value falls through to
// terminal detection.
const EnvColor = "TERM_COLOR"

// Mode is the process-wide color override.
type Mode int32

const (
	// ModeAuto defers to EnvColor and terminal detection.
	ModeAuto Mode = iota
	// ModeOn emits escape codes unconditionally.
	ModeOn
	// ModeOff never emits escape codes.
	ModeOff
)

// String returns the mode name as accepted by the CLI's --color flag.
func (m Mode) String() string {
	switch m {
	case ModeOn:
		return "always"
	case ModeOff:
		return "never"
	default:
		return "auto"
	}
}

// Resolver decides whether escape codes should be emitted. The decision
// ladder is: forced override, then EnvColor, then whether stdout is
// attached to a terminal. The override cell is atomic, so a concurrent
// Force and Enabled never observe a torn value.
type Resolver struct {
	mode   *atomic.Int32
	getenv func(string) (string, bool)
	isTTY  func() bool
}

// NewResolver builds a resolver using the given environment lookup and
// terminal probe. Tests substitute both to pin down the decision.
func NewResolver(getenv func(string) (string, bool), isTTY func() bool) *Resolver {
	return &Resolver{
		mode:   atomic.NewInt32(int32(ModeAuto)),
		getenv: getenv,
		isTTY:  isTTY,
	}
}

// std is the package-level resolver backing Apply, Force and friends.
var std = NewResolver(os.LookupEnv, stdoutIsTerminal)

// stdoutIsTerminal reports whether stdout is attached to a terminal
// rather than a file or pipe.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Force sets the override: true forces color on, false forces it off,
// nil restores automatic detection. In-memory only; nothing is written
// to the environment and the override resets on process restart.
func (r *Resolver) Force(v *bool) {
	switch {
	case v == nil:
		r.SetMode(ModeAuto)
	case *v:
		r.SetMode(ModeOn)
	default:
		r.SetMode(ModeOff)
	}
}

// SetMode stores the override directly.
func (r *Resolver) SetMode(m Mode) {
	r.mode.Store(int32(m))
}

// Mode returns the current override.
func (r *Resolver) Mode() Mode {
	return Mode(r.mode.Load())
}

// Enabled reports whether escape codes should be emitted right now.
// The override is read once per call, so a concurrent Force cannot
// split a single decision.
func (r *Resolver) Enabled() bool {
	switch r.Mode() {
	case ModeOn:
		return true
	case ModeOff:
		return false
	}
	if v, ok := r.getenv(EnvColor); ok && falsy(v) {
		return false
	}
	return r.isTTY()
}

// falsy reports whether an environment value disables color. Only the
// recognized tokens count; anything else, including whitespace-only
// strings, is truthy. Values are not trimmed.
func falsy(v string) bool {
	switch strings.ToLower(v) {
	case "", "0", "false", "no":
		return true
	}
	return false
}

// Force sets the process-wide override on the default resolver.
func Force(v *bool) {
	std.Force(v)
}

// Enabled reports whether the default resolver would emit escape codes.
func Enabled() bool {
	return std.Enabled()
}

// SetMode stores the override on the default resolver.
func SetMode(m Mode) {
	std.SetMode(m)
}

// CurrentMode returns the default resolver's override.
func CurrentMode() Mode {
	return std.Mode()
}
