package internal

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Development window size, portrait like the devices the browser targets.
const (
	devWindowWidth  int32 = 480
	devWindowHeight int32 = 800
)

// Window wraps SDL window and renderer with additional state for the UI framework.
type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
	PowerButtonWG     sync.WaitGroup

	width, height   int32 // Logical size everything is laid out in
	fullscreen      bool
	hasVSync        bool
	lastPresentTime uint64
}

var window *Window

// devWindowSize reads WINDOW_WIDTH and WINDOW_HEIGHT through getenv, falling back to the
// development defaults for missing or invalid values.
func devWindowSize(getenv func(string) string) (int32, int32) {
	parse := func(name string, fallback int32) int32 {
		v := getenv(name)
		if v == "" {
			return fallback
		}
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n <= 0 {
			GetInternalLogger().Warn("Invalid window size; using default", "variable", name, "value", v)
			return fallback
		}
		return int32(n)
	}
	return parse(constants.WindowWidthEnvVar, devWindowWidth), parse(constants.WindowHeightEnvVar, devWindowHeight)
}

func initWindow(title string, displayBackground bool, winOpts WindowOptions, getenv func(string) string) (*Window, error) {
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	var width, height int32

	if constants.IsDevMode() {
		winOpts.Borderless = false
		winOpts.Fullscreen = false
		winOpts.FullscreenDesktop = false
		x, y = 50, 50
		width, height = devWindowSize(getenv)
	} else {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			GetInternalLogger().Error("Failed to get display mode", "error", err)
			width, height = devWindowSize(getenv)
		} else {
			width, height = displayMode.W, displayMode.H
		}
	}

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable; falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_SOFTWARE|sdl.RENDERER_TARGETTEXTURE)
		if err != nil {
			sdlWindow.Destroy()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:            sdlWindow,
		Renderer:          renderer,
		Title:             title,
		DisplayBackground: displayBackground,
		width:             width,
		height:            height,
		fullscreen:        winOpts.IsFullscreen(),
		hasVSync:          vsync,
	}

	win.loadBackground()

	return win, nil
}

func (window *Window) initPowerButtonHandling(pbc PowerButtonConfig) {
	window.PowerButtonWG.Add(1)

	go PowerButtonHandler(&window.PowerButtonWG, pbc)
}

func (window *Window) loadBackground() {
	if window.Background != nil {
		window.Background.Destroy()
		window.Background = nil
	}

	theme := GetTheme()
	if !window.DisplayBackground || theme.BackgroundImagePath == "" {
		return
	}

	bgTexture, err := img.LoadTexture(window.Renderer, theme.BackgroundImagePath)
	if err != nil {
		GetInternalLogger().Warn("Failed to load background image", "path", theme.BackgroundImagePath, "error", err)
		return
	}
	window.Background = bgTexture
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// GetWidth returns the logical width all layout is computed in.
func (window *Window) GetWidth() int32 {
	return window.width
}

// GetHeight returns the logical height all layout is computed in.
func (window *Window) GetHeight() int32 {
	return window.height
}

// IsFullscreen reports whether the window currently covers the display.
func (window *Window) IsFullscreen() bool {
	return window.fullscreen
}

// ToggleFullscreen switches between fullscreen and windowed mode.
func (window *Window) ToggleFullscreen() error {
	var flags uint32
	if !window.fullscreen {
		flags = sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if err := window.Window.SetFullscreen(flags); err != nil {
		return fmt.Errorf("toggle fullscreen: %w", err)
	}
	window.fullscreen = !window.fullscreen
	GetInternalLogger().Debug("Fullscreen toggled", "fullscreen", window.fullscreen)
	return nil
}

// RenderBackground clears to the theme background and draws the background image if
// there is one.
func (window *Window) RenderBackground() {
	bg := GetTheme().BackgroundColor
	window.Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	window.Renderer.Clear()

	if window.Background != nil {
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{X: 0, Y: 0, W: window.width, H: window.height})
	}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
