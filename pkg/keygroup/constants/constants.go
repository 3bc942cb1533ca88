// Package constants defines shared constants, types, and configuration values
// used throughout the keygroup packages.
package constants

import (
	"strings"
	"time"
)

// Environment variables read by keygroup.Init.
const (
	LogLevelEnvVar     = "KEYGROUP_LOG_LEVEL"
	InputMappingEnvVar = "INPUT_MAPPING"
)

// VirtualButton represents an abstract input button, mapped from physical hardware.
// Groups bind handlers to virtual buttons so the same navigation logic works
// with a keyboard, a game controller or a raw evdev device.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

var buttonNames = map[VirtualButton]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonX:          "X",
	VirtualButtonY:          "Y",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
}

func (vb VirtualButton) GetName() string {
	if name, ok := buttonNames[vb]; ok {
		return name
	}
	return "Unknown"
}

// String implements fmt.Stringer so buttons log by name.
func (vb VirtualButton) String() string {
	return vb.GetName()
}

// IsDirectional reports whether the button is one of the four d-pad directions.
func (vb VirtualButton) IsDirectional() bool {
	switch vb {
	case VirtualButtonUp, VirtualButtonDown, VirtualButtonLeft, VirtualButtonRight:
		return true
	}
	return false
}

// ParseVirtualButton resolves a button by its name, ignoring case.
// Returns VirtualButtonUnassigned and false for unknown names.
func ParseVirtualButton(name string) (VirtualButton, bool) {
	for vb, n := range buttonNames {
		if vb == VirtualButtonUnassigned {
			continue
		}
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return vb, true
		}
	}
	return VirtualButtonUnassigned, false
}

// Default directional repeat timing.
const (
	DefaultRepeatDelay    = 300 * time.Millisecond // Hold time before the first repeat
	DefaultRepeatInterval = 50 * time.Millisecond  // Time between subsequent repeats
)
