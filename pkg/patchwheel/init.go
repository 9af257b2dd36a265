// Package patchwheel is a touch file browser for synthesizer patches. Folders and
// files are shown on an inertial scroll wheel; choosing a .syx file sends it to the
// synth through an external MIDI tool.
//
// The package handles SDL initialization, theming and input, and provides the browser
// screen and the dialogs it opens: an on-screen keyboard prompt, confirmations, pick
// lists and notices.
package patchwheel

import (
	"log/slog"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/internal"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/themes"
)

// Options configures UI initialization.
type Options struct {
	WindowTitle        string                 // Window title displayed in windowed mode
	ShowBackground     bool                   // Whether to render the theme background image
	WindowOptions      internal.WindowOptions // SDL window flags; zero picks defaults from Fullscreen
	Fullscreen         bool                   // Cover the display when WindowOptions is zero
	Theme              *internal.Theme        // Colours and font; nil uses the solar theme
	LogPath            string                 // Full path for log file including filename (creates parent directories)
	DisablePowerButton bool                   // Do not watch the power key even on a device
}

// Init initializes the SDL subsystems, theming and input handling.
// Must be called before any other UI function.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if options.Theme != nil {
		internal.SetTheme(*options.Theme)
	} else {
		internal.SetTheme(themes.Solar(""))
	}

	pbc := internal.PowerButtonConfig{}
	if !options.DisablePowerButton {
		pbc = internal.DefaultPowerButtonConfig()
	}

	err := internal.Init(internal.Options{
		Title:          options.WindowTitle,
		ShowBackground: options.ShowBackground,
		Window:         options.WindowOptions,
		Fullscreen:     options.Fullscreen,
		PowerButton:    pbc,
	})
	if err != nil {
		return NewInfrastructureError("init", err)
	}
	return nil
}

// Close releases all SDL resources and shuts down the UI.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
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

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
