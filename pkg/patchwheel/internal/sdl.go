package internal

import (
	"fmt"
	"os"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Options configures Init.
type Options struct {
	Title          string
	ShowBackground bool
	Window         WindowOptions // Zero value picks DefaultWindowOptions
	Fullscreen     bool          // Used when Window is zero
	FontSizes      FontSizes     // Zero value uses DefaultFontSizes
	PowerButton    PowerButtonConfig
}

// Init starts SDL, opens the window and loads the fonts of the current theme.
func Init(opts Options) error {
	// Touches arrive as mouse events so the wheel handles a finger and a mouse alike.
	sdl.SetHint(sdl.HINT_TOUCH_MOUSE_EVENTS, "1")

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("init sdl: %w", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("init ttf: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		GetInternalLogger().Warn("Image support unavailable; background images disabled", "error", err)
	}

	InitInputProcessor()

	winOpts := opts.Window
	if winOpts.IsZero() {
		winOpts = DefaultWindowOptions(opts.Fullscreen, constants.IsDevMode())
	}

	w, err := initWindow(opts.Title, opts.ShowBackground, winOpts, os.Getenv)
	if err != nil {
		return err
	}
	window = w

	sizes := opts.FontSizes
	if sizes == (FontSizes{}) {
		sizes = DefaultFontSizes
	}
	if err := initFonts(GetTheme().FontPath, sizes); err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	if !constants.IsDevMode() && opts.PowerButton.DevicePath != "" {
		window.initPowerButtonHandling(opts.PowerButton)
	}

	return nil
}

// SDLCleanup releases everything Init created. It is safe to call after a failed Init.
func SDLCleanup() {
	StopPowerButton()
	if window != nil {
		window.closeWindow()
		window = nil
	}
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
