package input

import (
	"context"
	"sync"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/keygroup/pkg/keygroup"
	"github.com/BrandonKowalski/keygroup/pkg/keygroup/internal"
)

// evdev key event values
const (
	keyReleased = 0
	keyPressed  = 1
)

// TranslateEvdev converts a raw key event to a button event. Kernel
// autorepeat events (value 2) are dropped.
func (m *Mapping) TranslateEvdev(event *evdev.InputEvent) (keygroup.ButtonEvent, bool) {
	if event == nil || event.Type != evdev.EV_KEY {
		return keygroup.ButtonEvent{}, false
	}

	if event.Value != keyPressed && event.Value != keyReleased {
		return keygroup.ButtonEvent{}, false
	}

	button, ok := m.Evdev[event.Code]
	if !ok {
		return keygroup.ButtonEvent{}, false
	}

	return keygroup.ButtonEvent{Button: button, Pressed: event.Value == keyPressed}, true
}

// ReadEvdev opens the device at path and sends its mapped button events on
// the returned channel from a background goroutine. The channel is closed
// and the device released when ctx is done or reading fails.
func ReadEvdev(ctx context.Context, path string, m *Mapping) (<-chan keygroup.ButtonEvent, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, keygroup.NewInputError("open_device", err)
	}

	logger := internal.GetInternalLogger()
	if name, err := device.Name(); err == nil {
		logger.Debug("Opened input device", "path", path, "name", name)
	}

	var closeOnce sync.Once
	closeDevice := func() {
		closeOnce.Do(func() { device.Close() })
	}

	events, _ := readEvents(ctx, path, device, closeDevice, m)

	return events, nil
}

// eventReader is the part of *evdev.InputDevice the read loop needs.
type eventReader interface {
	ReadOne() (*evdev.InputEvent, error)
}

// readEvents runs the read loop and the ctx watcher. closeDevice must be
// safe to call twice. The second channel is closed once the watcher exits,
// which happens on ctx cancellation or when the read loop stops.
func readEvents(ctx context.Context, path string, r eventReader, closeDevice func(), m *Mapping) (<-chan keygroup.ButtonEvent, <-chan struct{}) {
	logger := internal.GetInternalLogger()

	events := make(chan keygroup.ButtonEvent, 16)
	done := make(chan struct{})
	watcherDone := make(chan struct{})

	go func() {
		defer close(watcherDone)

		select {
		case <-ctx.Done():
			// closing the device unblocks ReadOne
			closeDevice()
		case <-done:
		}
	}()

	go func() {
		defer close(events)
		defer close(done)
		defer closeDevice()

		for {
			raw, err := r.ReadOne()
			if err != nil {
				if ctx.Err() == nil {
					logger.Error("Failed to read input device", "path", path, "error", err)
				}
				return
			}

			be, ok := m.TranslateEvdev(raw)
			if !ok {
				continue
			}

			select {
			case events <- be:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, watcherDone
}
