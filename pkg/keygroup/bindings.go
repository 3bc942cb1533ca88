package keygroup

import (
	"context"
	"time"

	"github.com/BrandonKowalski/keygroup/pkg/keygroup/constants"
	"github.com/BrandonKowalski/keygroup/pkg/keygroup/internal"
)

// ButtonEvent is a single press or release of a virtual button, as produced
// by an input source.
type ButtonEvent struct {
	Button  constants.VirtualButton
	Pressed bool
}

// Bindings is a Binder backed by a table with at most one handler per
// button. It also turns held directional buttons into repeated presses.
//
// Bindings is not safe for concurrent use. Sources that read input on their
// own goroutine should send ButtonEvents to Drain instead of calling Press.
type Bindings struct {
	handlers    map[constants.VirtualButton]func()
	directional internal.DirectionalInput
	repeat      bool
}

// BindingsOption configures Bindings.
type BindingsOption func(*Bindings)

// WithRepeat sets how long a directional button must be held before it
// repeats, and how often it repeats after that.
func WithRepeat(delay, interval time.Duration) BindingsOption {
	return func(b *Bindings) {
		b.repeat = true
		b.directional = internal.NewDirectionalInputWithTiming(delay, interval)
	}
}

// WithoutRepeat disables repeat; only the initial press fires.
func WithoutRepeat() BindingsOption {
	return func(b *Bindings) {
		b.repeat = false
	}
}

func NewBindings(opts ...BindingsOption) *Bindings {
	b := &Bindings{
		handlers:    make(map[constants.VirtualButton]func()),
		directional: internal.NewDirectionalInput(),
		repeat:      true,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Bind installs handler for button, replacing any existing handler.
func (b *Bindings) Bind(button constants.VirtualButton, handler func()) {
	if _, exists := b.handlers[button]; exists {
		internal.GetInternalLogger().Debug("Replacing binding", "button", button)
	}
	b.handlers[button] = handler
}

// Unbind removes the handler for button. Unbinding an unbound button is a no-op.
func (b *Bindings) Unbind(button constants.VirtualButton) {
	delete(b.handlers, button)
}

// Bound reports whether button has a handler.
func (b *Bindings) Bound(button constants.VirtualButton) bool {
	_, ok := b.handlers[button]
	return ok
}

// Len returns the number of bound buttons.
func (b *Bindings) Len() int {
	return len(b.handlers)
}

// Press handles a key-down. Returns true if a handler ran.
func (b *Bindings) Press(button constants.VirtualButton) bool {
	b.directional.SetHeld(button, true)
	return b.fire(button)
}

// Release handles a key-up.
func (b *Bindings) Release(button constants.VirtualButton) {
	b.directional.SetHeld(button, false)
}

// Handle dispatches a ButtonEvent. Returns true if a handler ran.
func (b *Bindings) Handle(event ButtonEvent) bool {
	if event.Pressed {
		return b.Press(event.Button)
	}
	b.Release(event.Button)
	return false
}

// Tick fires a repeat for a held directional button when one is due.
// Call it once per frame. Returns true if a handler ran.
func (b *Bindings) Tick() bool {
	if !b.repeat {
		return false
	}

	button := b.directional.Update()
	if button == constants.VirtualButtonUnassigned {
		return false
	}
	return b.fire(button)
}

// Drain dispatches events on the calling goroutine until ctx is done or
// events is closed, ticking repeats every frame in between.
func (b *Bindings) Drain(ctx context.Context, events <-chan ButtonEvent) error {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				return nil
			}
			b.Handle(event)
		case <-ticker.C:
			b.Tick()
		}
	}
}

func (b *Bindings) fire(button constants.VirtualButton) bool {
	handler, ok := b.handlers[button]
	if !ok || handler == nil {
		return false
	}

	handler()

	return true
}
