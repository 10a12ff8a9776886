package tinge

import (
	"sync"
	"testing"
)

// newTestResolver builds a resolver with a fixed environment and tty state.
func newTestResolver(env map[string]string, tty bool) *Resolver {
	getenv := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	return NewResolver(getenv, func() bool { return tty })
}

func boolPtr(b bool) *bool {
	return &b
}

func TestEnabled_ForceOn_WinsOverEverything(t *testing.T) {
	envs := []map[string]string{
		nil,
		{EnvColor: "0"},
		{EnvColor: "false"},
		{EnvColor: "1"},
	}
	for _, env := range envs {
		for _, tty := range []bool{true, false} {
			r := newTestResolver(env, tty)
			r.Force(boolPtr(true))
			if !r.Enabled() {
				t.Errorf("Enabled() with ForceOn, env=%v, tty=%v = false, want true", env, tty)
			}
		}
	}
}

func TestEnabled_ForceOff_WinsOverEverything(t *testing.T) {
	envs := []map[string]string{
		nil,
		{EnvColor: "1"},
		{EnvColor: "yes"},
	}
	for _, env := range envs {
		for _, tty := range []bool{true, false} {
			r := newTestResolver(env, tty)
			r.Force(boolPtr(false))
			if r.Enabled() {
				t.Errorf("Enabled() with ForceOff, env=%v, tty=%v = true, want false", env, tty)
			}
		}
	}
}

func TestEnabled_Auto_EnvFalsy(t *testing.T) {
	// Recognized falsy tokens disable color regardless of tty attachment.
	falsyValues := []string{"", "0", "false", "no", "FALSE", "No", "fAlSe", "NO"}

	for _, v := range falsyValues {
		t.Run("value="+v, func(t *testing.T) {
			for _, tty := range []bool{true, false} {
				r := newTestResolver(map[string]string{EnvColor: v}, tty)
				if r.Enabled() {
					t.Errorf("Enabled() with %s=%q, tty=%v = true, want false", EnvColor, v, tty)
				}
			}
		})
	}
}

func TestEnabled_Auto_EnvTruthy_FallsThroughToTTY(t *testing.T) {
	// Anything that is not a recognized falsy token falls through to
	// terminal detection, including whitespace and unrecognized strings.
	truthyValues := []string{"1", "true", "yes", "maybe", " ", "  ", " 0", "0 ", "on"}

	for _, v := range truthyValues {
		t.Run("value="+v, func(t *testing.T) {
			r := newTestResolver(map[string]string{EnvColor: v}, true)
			if !r.Enabled() {
				t.Errorf("Enabled() with %s=%q, tty=true = false, want true", EnvColor, v)
			}

			r = newTestResolver(map[string]string{EnvColor: v}, false)
			if r.Enabled() {
				t.Errorf("Enabled() with %s=%q, tty=false = true, want false", EnvColor, v)
			}
		})
	}
}

func TestEnabled_Auto_EnvUnset_UsesTTY(t *testing.T) {
	r := newTestResolver(nil, true)
	if !r.Enabled() {
		t.Error("Enabled() with env unset, tty=true = false, want true")
	}

	r = newTestResolver(nil, false)
	if r.Enabled() {
		t.Error("Enabled() with env unset, tty=false = true, want false")
	}
}

func TestEnabled_EnvSetEmpty_DiffersFromUnset(t *testing.T) {
	// An empty-but-present variable is falsy; an absent one is not.
	set := newTestResolver(map[string]string{EnvColor: ""}, true)
	if set.Enabled() {
		t.Errorf("Enabled() with %s set empty, tty=true = true, want false", EnvColor)
	}

	unset := newTestResolver(map[string]string{}, true)
	if !unset.Enabled() {
		t.Errorf("Enabled() with %s unset, tty=true = false, want true", EnvColor)
	}
}

func TestForce_NilRestoresAuto(t *testing.T) {
	r := newTestResolver(nil, true)

	r.Force(boolPtr(false))
	if r.Enabled() {
		t.Fatal("Enabled() after Force(false) = true, want false")
	}

	r.Force(nil)
	if r.Mode() != ModeAuto {
		t.Errorf("Mode() after Force(nil) = %v, want ModeAuto", r.Mode())
	}
	if !r.Enabled() {
		t.Error("Enabled() after Force(nil) with tty=true = false, want true")
	}
}

func TestSetMode_RoundTrip(t *testing.T) {
	r := newTestResolver(nil, false)

	for _, m := range []Mode{ModeOn, ModeOff, ModeAuto} {
		r.SetMode(m)
		if got := r.Mode(); got != m {
			t.Errorf("Mode() after SetMode(%v) = %v", m, got)
		}
	}
}

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeAuto, "auto"},
		{ModeOn, "always"},
		{ModeOff, "never"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestPackageLevel_ForceAndMode(t *testing.T) {
	defer Force(nil)

	Force(boolPtr(true))
	if CurrentMode() != ModeOn {
		t.Errorf("CurrentMode() after Force(true) = %v, want ModeOn", CurrentMode())
	}
	if !Enabled() {
		t.Error("Enabled() after Force(true) = false, want true")
	}

	Force(boolPtr(false))
	if CurrentMode() != ModeOff {
		t.Errorf("CurrentMode() after Force(false) = %v, want ModeOff", CurrentMode())
	}
	if Enabled() {
		t.Error("Enabled() after Force(false) = true, want false")
	}

	Force(nil)
	if CurrentMode() != ModeAuto {
		t.Errorf("CurrentMode() after Force(nil) = %v, want ModeAuto", CurrentMode())
	}
}

// Concurrent Force and Enabled calls must not race; last write wins.
func TestForce_ConcurrentCallers(t *testing.T) {
	r := newTestResolver(nil, true)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		on := i%2 == 0
		wg.Add(2)
		go func(on bool) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Force(boolPtr(on))
			}
		}(on)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Enabled()
			}
		}()
	}
	wg.Wait()

	// Whatever won, the stored mode must be one of the valid values.
	switch r.Mode() {
	case ModeAuto, ModeOn, ModeOff:
	default:
		t.Errorf("Mode() after concurrent writes = %d, not a valid Mode", r.Mode())
	}
}
