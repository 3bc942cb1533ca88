// Package keygroup provides a keyboard and gamepad navigable selection group
// for 2D game UIs: directional buttons move a wrap-around cursor over an
// ordered list of children, and the selected child receives the other pair
// of directional buttons for its own navigation.
//
// The group talks to input through the Binder interface. Bindings is the
// bundled Binder; the input package feeds it from SDL or evdev.
package keygroup

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/keygroup/pkg/keygroup/constants"
	"github.com/BrandonKowalski/keygroup/pkg/keygroup/internal"
)

// Options configures logging and the defaults applications use to build
// their groups and input sources.
type Options struct {
	LogPath        string        `toml:"log_path"`        // Full path for log file including filename (creates parent directories)
	LogLevel       string        `toml:"log_level"`       // Application log level: debug, info, warn, error
	Debug          bool          `toml:"debug"`           // Enable debug logging inside keygroup itself
	Language       string        `toml:"language"`        // Language for Hints, e.g. "en" or "de"
	Vertical       bool          `toml:"vertical"`        // Navigate the group with Up/Down instead of Left/Right
	MappingFile    string        `toml:"mapping_file"`    // Path to a TOML input mapping file
	EvdevDevice    string        `toml:"evdev_device"`    // Optional /dev/input/eventN to read in addition to SDL
	RepeatDelay    time.Duration `toml:"repeat_delay"`    // Hold time before a directional button repeats
	RepeatInterval time.Duration `toml:"repeat_interval"` // Time between repeats
}

// DefaultOptions returns the options used when no file is given.
func DefaultOptions() Options {
	return Options{
		LogLevel:       "info",
		Language:       "en",
		Vertical:       true,
		RepeatDelay:    constants.DefaultRepeatDelay,
		RepeatInterval: constants.DefaultRepeatInterval,
	}
}

// LoadOptions reads a TOML options file on top of DefaultOptions.
// Durations are written as strings, e.g. repeat_delay = "250ms".
func LoadOptions(path string) (Options, error) {
	options := DefaultOptions()

	if _, err := toml.DecodeFile(path, &options); err != nil {
		return options, fmt.Errorf("load options %s: %w", path, err)
	}

	return options, nil
}

// Init applies the logging options. Call it before building groups so
// their debug output goes to the right place. The KEYGROUP_LOG_LEVEL and
// INPUT_MAPPING environment variables override the options.
func Init(options Options) Options {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		options.LogLevel = v
	}
	if v := os.Getenv(constants.InputMappingEnvVar); v != "" {
		options.MappingFile = v
	}

	internal.SetRawLogLevel(options.LogLevel)

	if options.Debug {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	return options
}

// NewBindingsFromOptions creates Bindings with the repeat timing from options.
// A zero delay and interval disables repeat.
func NewBindingsFromOptions(options Options) *Bindings {
	if options.RepeatDelay == 0 && options.RepeatInterval == 0 {
		return NewBindings(WithoutRepeat())
	}
	return NewBindings(WithRepeat(options.RepeatDelay, options.RepeatInterval))
}

// Close releases logging resources.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
