package internal

import "github.com/veandco/go-sdl2/sdl"

type WindowOptions struct {
	Borderless        bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable         bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen        bool // Fullscreen mode (SDL_WINDOW_FULLSCREEN)
	FullscreenDesktop bool // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	Hidden            bool // Start hidden (omits SDL_WINDOW_SHOWN)
}

// DefaultWindowOptions returns the options used when none are given. Development runs
// get a decorated, resizable window; devices get a fullscreen one unless fullscreen is
// turned off in the config.
func DefaultWindowOptions(fullscreen, devMode bool) WindowOptions {
	if devMode {
		return WindowOptions{Resizable: true}
	}
	if fullscreen {
		return WindowOptions{Borderless: true, FullscreenDesktop: true}
	}
	return WindowOptions{Resizable: true}
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

// IsFullscreen reports whether the options request either fullscreen mode.
func (wo WindowOptions) IsFullscreen() bool {
	return wo.Fullscreen || wo.FullscreenDesktop
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}

	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	if wo.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	return flags
}
