// Command keygroup-demo opens an SDL window and drives a settings menu built
// from a keygroup.Group with the keyboard, a game controller or an evdev
// device. The current selection is shown in the window title and logged.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/BrandonKowalski/keygroup/pkg/keygroup"
	"github.com/BrandonKowalski/keygroup/pkg/keygroup/constants"
	"github.com/BrandonKowalski/keygroup/pkg/keygroup/input"
)

func init() {
	// SDL event handling must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML options file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	options := keygroup.DefaultOptions()
	if configPath != "" {
		var err error
		if options, err = keygroup.LoadOptions(configPath); err != nil {
			return err
		}
	}

	options = keygroup.Init(options)
	defer keygroup.Close()

	logger := keygroup.GetLogger()

	if err := input.InitSDL(); err != nil {
		return err
	}
	defer input.QuitSDL()

	window, err := input.OpenWindow("keygroup", 640, 200)
	if err != nil {
		return err
	}
	defer window.Destroy()

	mapping := input.DefaultMapping()
	if options.MappingFile != "" {
		if mapping, err = input.LoadMapping(options.MappingFile); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bindings := keygroup.NewBindingsFromOptions(options)
	group := keygroup.NewGroup(bindings, options.Vertical, window)

	items := []*keygroup.OptionItem{
		newSetting("Difficulty", "easy", "normal", "hard"),
		newSetting("Sound", "on", "off"),
		newSetting("Text speed", "slow", "normal", "fast"),
	}
	for _, item := range items {
		if err := group.AddChild(item); err != nil {
			return err
		}
	}

	showSelection := func(g *keygroup.Group, _ any) {
		item := g.Selected().(*keygroup.OptionItem)
		window.SetTitle(fmt.Sprintf("%s: %v", item.Item.Text, item.Value()))
		logger.Info("Selection changed", "index", g.Index(), "item", item.Item.Text)
	}
	group.On(keygroup.EventPrevious, showSelection)
	group.On(keygroup.EventNext, showSelection)
	showSelection(group, nil)

	for _, item := range items {
		for i := range item.Options {
			item.Options[i].OnUpdate = func(v interface{}) {
				window.SetTitle(fmt.Sprintf("%s: %v", item.Item.Text, v))
				logger.Info("Setting changed", "item", item.Item.Text, "value", v)
			}
		}
	}

	bindings.Bind(constants.VirtualButtonA, func() {
		for _, item := range items {
			logger.Info("Saved setting", "item", item.Item.Text, "value", item.Value())
		}
		cancel()
	})
	bindings.Bind(constants.VirtualButtonB, cancel)

	if loc, err := keygroup.NewLocalizer(options.Language); err == nil {
		if hints, err := keygroup.Hints(group, loc); err == nil {
			parts := make([]string, len(hints))
			for i, h := range hints {
				parts[i] = h.ButtonText + ": " + h.Label
			}
			logger.Info("Controls", "hints", strings.Join(parts, "  "))
		}
	}

	var extra <-chan keygroup.ButtonEvent
	if options.EvdevDevice != "" {
		if extra, err = input.ReadEvdev(ctx, options.EvdevDevice, mapping); err != nil {
			logger.Warn("Continuing without evdev device", "error", err)
		}
	}

	err = input.RunSDL(ctx, bindings, mapping, extra)
	group.Release()

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func newSetting(name string, values ...string) *keygroup.OptionItem {
	options := make([]keygroup.Option, len(values))
	for i, v := range values {
		options[i] = keygroup.Option{DisplayName: v, Value: v}
	}
	return keygroup.NewOptionItem(name, options...)
}
