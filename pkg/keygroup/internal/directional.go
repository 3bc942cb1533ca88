package internal

import (
	"time"

	"github.com/BrandonKowalski/keygroup/pkg/keygroup/constants"
)

// directionPriority decides which button repeats when several are held.
var directionPriority = [...]constants.VirtualButton{
	constants.VirtualButtonUp,
	constants.VirtualButtonDown,
	constants.VirtualButtonLeft,
	constants.VirtualButtonRight,
}

// DirectionalInput tracks held directional buttons and decides when a held
// button should fire again.
type DirectionalInput struct {
	held           map[constants.VirtualButton]bool
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with default timing.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		held:           make(map[constants.VirtualButton]bool, len(directionPriority)),
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
		now:            time.Now,
	}
}

// SetClock replaces the time source. Used by tests.
func (d *DirectionalInput) SetClock(now func() time.Time) {
	d.now = now
	d.lastRepeatTime = now()
}

// SetHeld updates the held state for a button.
// Returns true if the button was a directional button.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	if !button.IsDirectional() {
		return false
	}

	if held {
		if !d.held[button] {
			// a fresh press restarts the delay
			d.lastRepeatTime = d.now()
			d.hasRepeated = false
		}
		d.held[button] = true
		return true
	}

	delete(d.held, button)
	d.hasRepeated = false
	return true
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return len(d.held) > 0
}

// HeldButton returns the held button with the highest priority
// (up, down, left, right), or VirtualButtonUnassigned.
func (d *DirectionalInput) HeldButton() constants.VirtualButton {
	for _, b := range directionPriority {
		if d.held[b] {
			return b
		}
	}
	return constants.VirtualButtonUnassigned
}

// Update checks if a repeat should fire based on timing.
// Call this every frame. The first repeat occurs after the delay, later
// repeats after the interval. Returns VirtualButtonUnassigned when nothing
// should fire.
func (d *DirectionalInput) Update() constants.VirtualButton {
	if !d.IsHeld() {
		d.lastRepeatTime = d.now()
		d.hasRepeated = false
		return constants.VirtualButtonUnassigned
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if d.now().Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = d.now()
		d.hasRepeated = true
		return d.HeldButton()
	}

	return constants.VirtualButtonUnassigned
}

// Reset clears all held directions and timing state.
func (d *DirectionalInput) Reset() {
	clear(d.held)
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}
