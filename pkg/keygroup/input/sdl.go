package input

import (
	"context"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/keygroup/pkg/keygroup"
	"github.com/BrandonKowalski/keygroup/pkg/keygroup/internal"
)

// frameTimeout is how long the SDL loop waits for an event before ticking
// directional repeats, in milliseconds.
const frameTimeout = 16

var controllers = map[sdl.JoystickID]*sdl.GameController{}

// InitSDL initializes the SDL subsystems needed for input and opens every
// connected game controller.
func InitSDL() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return keygroup.NewInputError("sdl_init", err)
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		openController(i)
	}

	return nil
}

// QuitSDL closes all controllers and shuts SDL down.
func QuitSDL() {
	for id, gc := range controllers {
		gc.Close()
		delete(controllers, id)
	}
	sdl.Quit()
}

// OpenWindow creates a small window so the application receives keyboard
// focus. Rendering into it is left to the caller.
func OpenWindow(title string, width, height int32) (*sdl.Window, error) {
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, keygroup.NewInputError("create_window", err)
	}
	return window, nil
}

func openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}

	gc := sdl.GameControllerOpen(index)
	if gc == nil {
		internal.GetInternalLogger().Warn("Failed to open controller", "index", index, "error", sdl.GetError())
		return
	}

	id := gc.Joystick().InstanceID()
	controllers[id] = gc
	internal.GetInternalLogger().Debug("Opened controller", "index", index, "name", gc.Name())
}

func closeController(id sdl.JoystickID) {
	if gc, ok := controllers[id]; ok {
		gc.Close()
		delete(controllers, id)
		internal.GetInternalLogger().Debug("Closed controller", "id", id)
	}
}

// TranslateSDL converts an SDL keyboard or controller event to a button
// event. Key repeats generated by the OS are dropped; Bindings does its
// own repeat timing.
func (m *Mapping) TranslateSDL(event sdl.Event) (keygroup.ButtonEvent, bool) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return keygroup.ButtonEvent{}, false
		}
		button, ok := m.Keyboard[e.Keysym.Sym]
		if !ok {
			return keygroup.ButtonEvent{}, false
		}
		return keygroup.ButtonEvent{Button: button, Pressed: e.State == sdl.PRESSED}, true

	case *sdl.ControllerButtonEvent:
		button, ok := m.Controller[sdl.GameControllerButton(e.Button)]
		if !ok {
			return keygroup.ButtonEvent{}, false
		}
		return keygroup.ButtonEvent{Button: button, Pressed: e.State == sdl.PRESSED}, true
	}

	return keygroup.ButtonEvent{}, false
}

// RunSDL pumps SDL events into bindings until the window is closed or ctx
// is done. Events arriving on extra (for example from ReadEvdev) are
// dispatched on the same goroutine, so handlers never run concurrently.
// RunSDL must be called from the goroutine that called InitSDL.
func RunSDL(ctx context.Context, bindings *keygroup.Bindings, m *Mapping, extra <-chan keygroup.ButtonEvent) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if event := sdl.WaitEventTimeout(frameTimeout); event != nil {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil

			case *sdl.ControllerDeviceEvent:
				switch e.Type {
				case sdl.CONTROLLERDEVICEADDED:
					openController(int(e.Which))
				case sdl.CONTROLLERDEVICEREMOVED:
					closeController(e.Which)
				}

			default:
				if be, ok := m.TranslateSDL(event); ok {
					bindings.Handle(be)
				}
			}
		}

	drain:
		for {
			select {
			case be, ok := <-extra:
				if !ok {
					extra = nil
					break drain
				}
				bindings.Handle(be)
			default:
				break drain
			}
		}

		bindings.Tick()
	}
}
