// Package input feeds keygroup.Bindings from real hardware: SDL keyboard and
// game controller events, and raw Linux evdev devices.
package input

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/holoplot/go-evdev"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/keygroup/pkg/keygroup"
	"github.com/BrandonKowalski/keygroup/pkg/keygroup/constants"
)

// Mapping translates physical keys and buttons to virtual buttons.
type Mapping struct {
	Keyboard   map[sdl.Keycode]constants.VirtualButton
	Controller map[sdl.GameControllerButton]constants.VirtualButton
	Evdev      map[evdev.EvCode]constants.VirtualButton
}

// mappingFile is the TOML layout. Each section maps a virtual button name
// to the physical keys that produce it.
type mappingFile struct {
	Keyboard   map[string][]string `toml:"keyboard"`
	Controller map[string][]string `toml:"controller"`
	Evdev      map[string][]int    `toml:"evdev"`
}

// DefaultMapping maps the arrow keys, the d-pad and the evdev arrow and
// d-pad codes to the four directions, plus the usual confirm/back keys.
func DefaultMapping() *Mapping {
	return &Mapping{
		Keyboard: map[sdl.Keycode]constants.VirtualButton{
			sdl.K_UP:     constants.VirtualButtonUp,
			sdl.K_DOWN:   constants.VirtualButtonDown,
			sdl.K_LEFT:   constants.VirtualButtonLeft,
			sdl.K_RIGHT:  constants.VirtualButtonRight,
			sdl.K_RETURN: constants.VirtualButtonA,
			sdl.K_ESCAPE: constants.VirtualButtonB,
			sdl.K_SPACE:  constants.VirtualButtonStart,
		},
		Controller: map[sdl.GameControllerButton]constants.VirtualButton{
			sdl.CONTROLLER_BUTTON_DPAD_UP:    constants.VirtualButtonUp,
			sdl.CONTROLLER_BUTTON_DPAD_DOWN:  constants.VirtualButtonDown,
			sdl.CONTROLLER_BUTTON_DPAD_LEFT:  constants.VirtualButtonLeft,
			sdl.CONTROLLER_BUTTON_DPAD_RIGHT: constants.VirtualButtonRight,
			sdl.CONTROLLER_BUTTON_A:          constants.VirtualButtonA,
			sdl.CONTROLLER_BUTTON_B:          constants.VirtualButtonB,
			sdl.CONTROLLER_BUTTON_START:      constants.VirtualButtonStart,
			sdl.CONTROLLER_BUTTON_BACK:       constants.VirtualButtonSelect,
		},
		Evdev: map[evdev.EvCode]constants.VirtualButton{
			evdev.KEY_UP:         constants.VirtualButtonUp,
			evdev.KEY_DOWN:       constants.VirtualButtonDown,
			evdev.KEY_LEFT:       constants.VirtualButtonLeft,
			evdev.KEY_RIGHT:      constants.VirtualButtonRight,
			evdev.BTN_DPAD_UP:    constants.VirtualButtonUp,
			evdev.BTN_DPAD_DOWN:  constants.VirtualButtonDown,
			evdev.BTN_DPAD_LEFT:  constants.VirtualButtonLeft,
			evdev.BTN_DPAD_RIGHT: constants.VirtualButtonRight,
			evdev.KEY_ENTER:      constants.VirtualButtonA,
			evdev.KEY_ESC:        constants.VirtualButtonB,
		},
	}
}

// LoadMapping reads a TOML mapping file. Sections missing from the file
// keep their defaults; a section present in the file replaces the default
// section entirely.
//
// Single-character key names resolve on their own; names like "Up" go
// through SDL's keymap, so call InitSDL first.
func LoadMapping(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, keygroup.NewInputError("load_mapping", err)
	}
	return ParseMapping(data)
}

// ParseMapping parses TOML mapping data. See LoadMapping.
func ParseMapping(data []byte) (*Mapping, error) {
	var file mappingFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, keygroup.NewInputError("parse_mapping", err)
	}

	m := DefaultMapping()

	if file.Keyboard != nil {
		m.Keyboard = make(map[sdl.Keycode]constants.VirtualButton)
		if err := parseSection(file.Keyboard, func(button constants.VirtualButton, name string) error {
			code := sdl.GetKeyFromName(name)
			if code == sdl.K_UNKNOWN {
				return fmt.Errorf("unknown key %q", name)
			}
			m.Keyboard[code] = button
			return nil
		}); err != nil {
			return nil, keygroup.NewInputError("parse_mapping", fmt.Errorf("keyboard: %w", err))
		}
	}

	if file.Controller != nil {
		m.Controller = make(map[sdl.GameControllerButton]constants.VirtualButton)
		if err := parseSection(file.Controller, func(button constants.VirtualButton, name string) error {
			b := sdl.GameControllerGetButtonFromString(name)
			if b == sdl.CONTROLLER_BUTTON_INVALID {
				return fmt.Errorf("unknown controller button %q", name)
			}
			m.Controller[b] = button
			return nil
		}); err != nil {
			return nil, keygroup.NewInputError("parse_mapping", fmt.Errorf("controller: %w", err))
		}
	}

	if file.Evdev != nil {
		m.Evdev = make(map[evdev.EvCode]constants.VirtualButton)
		for buttonName, codes := range file.Evdev {
			button, ok := constants.ParseVirtualButton(buttonName)
			if !ok {
				return nil, keygroup.NewInputError("parse_mapping", fmt.Errorf("evdev: unknown button %q", buttonName))
			}
			for _, code := range codes {
				if code < 0 || code > int(evdev.KEY_MAX) {
					return nil, keygroup.NewInputError("parse_mapping", fmt.Errorf("evdev: code %d out of range", code))
				}
				m.Evdev[evdev.EvCode(code)] = button
			}
		}
	}

	return m, nil
}

func parseSection(section map[string][]string, add func(constants.VirtualButton, string) error) error {
	for buttonName, names := range section {
		button, ok := constants.ParseVirtualButton(buttonName)
		if !ok {
			return fmt.Errorf("unknown button %q", buttonName)
		}
		for _, name := range names {
			if err := add(button, name); err != nil {
				return err
			}
		}
	}
	return nil
}
