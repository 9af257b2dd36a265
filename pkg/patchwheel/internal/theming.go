package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the colours and font of every screen.
type Theme struct {
	BackgroundColor  sdl.Color // Screen and wheel canvas background
	HeaderColor      sdl.Color // Header bar behind the device pill and folder label
	AccentColor      sdl.Color // Device pill, toolbar outlines, focused dialog options
	ButtonLabelColor sdl.Color // Text drawn on the accent colour
	TextColor        sdl.Color // Default text
	HintColor        sdl.Color // Footer help and secondary text
	SelectedColor    sdl.Color // Wheel row under the selection
	ClickedColor     sdl.Color // Wheel row activated last
	IdleColor        sdl.Color // Other wheel rows and the centre guide lines
	PlaceholderColor sdl.Color // Label of an empty folder
	WarningColor     sdl.Color // Warning notice title
	ErrorColor       sdl.Color // Error notice title

	FontPath            string // Path to the UI font; empty searches the system fonts
	BackgroundImagePath string // Optional image stretched behind the browser
}

var currentTheme Theme

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque colour.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}
