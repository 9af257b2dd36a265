package patchwheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/internal"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/wheel"
)

func TestBrowserLayoutPortrait(t *testing.T) {
	l := computeBrowserLayout(480, 800, 10, 5, false)

	assert.Equal(t, sdl.Rect{X: 0, Y: 0, W: 480, H: 57}, l.header)
	assert.Equal(t, sdl.Rect{X: 8, Y: 4, W: 192, H: 49}, l.pill)
	assert.Equal(t, sdl.Rect{X: 208, Y: 0, W: 264, H: 57}, l.title)

	assert.Len(t, l.toolbar, 10)
	assert.Equal(t, sdl.Rect{X: 4, Y: 61, W: 91, H: 68}, l.toolbar[0])
	assert.Equal(t, sdl.Rect{X: 384, Y: 61, W: 91, H: 68}, l.toolbar[4])
	assert.Equal(t, sdl.Rect{X: 4, Y: 133, W: 91, H: 68}, l.toolbar[5])

	assert.Equal(t, sdl.Rect{X: 0, Y: 205, W: 480, H: 595}, l.canvas, "wheel fills the space under the toolbar")
}

func TestBrowserLayoutToolbarAtBottom(t *testing.T) {
	l := computeBrowserLayout(800, 480, 10, 10, true)

	assert.Equal(t, int32(40), l.header.H)
	assert.Equal(t, sdl.Rect{X: 4, Y: 420, W: 75, H: 56}, l.toolbar[0])
	assert.Equal(t, sdl.Rect{X: 0, Y: 40, W: 800, H: 376}, l.canvas)
}

func TestBrowserLayoutWithoutToolbar(t *testing.T) {
	l := computeBrowserLayout(480, 800, 0, 5, false)

	assert.Empty(t, l.toolbar)
	assert.Equal(t, sdl.Rect{X: 0, Y: 57, W: 480, H: 743}, l.canvas)
}

func TestBrowserLayoutTarget(t *testing.T) {
	l := computeBrowserLayout(480, 800, 10, 5, false)

	assert.Equal(t, pillTarget, l.target(10, 10))
	assert.Equal(t, 4, l.target(390, 70))
	assert.Equal(t, 5, l.target(10, 140))
	assert.Equal(t, noTarget, l.target(300, 20), "folder title")
	assert.Equal(t, noTarget, l.target(2, 300), "wheel canvas")
}

func TestRowColor(t *testing.T) {
	theme := internal.Theme{
		SelectedColor:    sdl.Color{R: 1},
		ClickedColor:     sdl.Color{R: 2},
		IdleColor:        sdl.Color{R: 3},
		PlaceholderColor: sdl.Color{R: 4},
	}

	assert.Equal(t, theme.PlaceholderColor, rowColor(theme, wheel.Placement{Index: -1, Bold: true}))
	assert.Equal(t, theme.ClickedColor, rowColor(theme, wheel.Placement{Index: 2, Bold: true, Active: true}))
	assert.Equal(t, theme.SelectedColor, rowColor(theme, wheel.Placement{Index: 2, Bold: true}))
	assert.Equal(t, theme.IdleColor, rowColor(theme, wheel.Placement{Index: 3}))
}
