package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/keygroup/pkg/keygroup"
	"github.com/BrandonKowalski/keygroup/pkg/keygroup/constants"
)

func TestParseMappingOverridesSections(t *testing.T) {
	m, err := ParseMapping([]byte(`
[keyboard]
Up = ["W"]
Down = ["S"]

[evdev]
Left = [30]
Right = [32]
`))
	require.NoError(t, err)

	assert.Equal(t, map[sdl.Keycode]constants.VirtualButton{
		sdl.K_w: constants.VirtualButtonUp,
		sdl.K_s: constants.VirtualButtonDown,
	}, m.Keyboard)

	assert.Equal(t, map[evdev.EvCode]constants.VirtualButton{
		30: constants.VirtualButtonLeft,
		32: constants.VirtualButtonRight,
	}, m.Evdev)

	// untouched section keeps its defaults
	assert.Equal(t, DefaultMapping().Controller, m.Controller)
}

func TestParseMappingErrors(t *testing.T) {
	cases := map[string]string{
		"bad toml":          `[keyboard`,
		"unknown button":    "[evdev]\nJump = [57]",
		"code out of range": "[evdev]\nUp = [-1]",
		"unknown key":       "[keyboard]\nUp = [\"NoSuchKey\"]",
		"unknown pad":       "[controller]\nUp = [\"nosuchbutton\"]",
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseMapping([]byte(data))
			require.Error(t, err)
			assert.True(t, keygroup.IsInputError(err))
		})
	}
}

func TestLoadMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.toml")
	require.NoError(t, os.WriteFile(path, []byte("[controller]\nA = [\"b\"]\n"), 0644))

	m, err := LoadMapping(path)
	require.NoError(t, err)
	assert.Equal(t, constants.VirtualButtonA, m.Controller[sdl.CONTROLLER_BUTTON_B])

	_, err = LoadMapping(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, keygroup.IsInputError(err))
}

func TestTranslateEvdev(t *testing.T) {
	m := DefaultMapping()

	be, ok := m.TranslateEvdev(&evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_DOWN, Value: 1})
	require.True(t, ok)
	assert.Equal(t, keygroup.ButtonEvent{Button: constants.VirtualButtonDown, Pressed: true}, be)

	be, ok = m.TranslateEvdev(&evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.BTN_DPAD_LEFT, Value: 0})
	require.True(t, ok)
	assert.Equal(t, keygroup.ButtonEvent{Button: constants.VirtualButtonLeft}, be)

	_, ok = m.TranslateEvdev(&evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_DOWN, Value: 2})
	assert.False(t, ok, "autorepeat is dropped")

	_, ok = m.TranslateEvdev(&evdev.InputEvent{Type: evdev.EV_SYN})
	assert.False(t, ok)

	_, ok = m.TranslateEvdev(&evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_Q, Value: 1})
	assert.False(t, ok)

	_, ok = m.TranslateEvdev(nil)
	assert.False(t, ok)
}

func TestTranslateSDL(t *testing.T) {
	m := DefaultMapping()

	be, ok := m.TranslateSDL(&sdl.KeyboardEvent{State: sdl.PRESSED, Keysym: sdl.Keysym{Sym: sdl.K_UP}})
	require.True(t, ok)
	assert.Equal(t, keygroup.ButtonEvent{Button: constants.VirtualButtonUp, Pressed: true}, be)

	be, ok = m.TranslateSDL(&sdl.KeyboardEvent{State: sdl.RELEASED, Keysym: sdl.Keysym{Sym: sdl.K_UP}})
	require.True(t, ok)
	assert.False(t, be.Pressed)

	_, ok = m.TranslateSDL(&sdl.KeyboardEvent{State: sdl.PRESSED, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_UP}})
	assert.False(t, ok, "OS key repeat is dropped")

	be, ok = m.TranslateSDL(&sdl.ControllerButtonEvent{Button: uint8(sdl.CONTROLLER_BUTTON_DPAD_RIGHT), State: sdl.PRESSED})
	require.True(t, ok)
	assert.Equal(t, constants.VirtualButtonRight, be.Button)

	_, ok = m.TranslateSDL(&sdl.QuitEvent{})
	assert.False(t, ok)
}

func TestReadEvdevMissingDevice(t *testing.T) {
	_, err := ReadEvdev(t.Context(), filepath.Join(t.TempDir(), "event99"), DefaultMapping())
	require.Error(t, err)
	assert.True(t, keygroup.IsInputError(err))
}
