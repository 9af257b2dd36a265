package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
)

func TestLRU(t *testing.T) {
	var evicted []string
	c := NewLRU(2, func(k string, v int) { evicted = append(evicted, k) })

	c.Set("a", 1)
	c.Set("b", 2)
	_, _ = c.Get("a")
	c.Set("c", 3)

	assert.Equal(t, []string{"b"}, evicted, "least recently used goes first")
	assert.Equal(t, 2, c.Len())

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = c.Get("b")
	assert.False(t, ok)

	c.Set("a", 10)
	assert.Equal(t, []string{"b", "a"}, evicted, "replaced values are released")
	v, _ = c.Get("a")
	assert.Equal(t, 10, v)

	c.Clear()
	assert.Zero(t, c.Len())
	assert.ElementsMatch(t, []string{"b", "a", "a", "c"}, evicted)
}

func TestLRUMinimumSize(t *testing.T) {
	c := NewLRU[int, int](0, nil)
	c.Set(1, 1)
	c.Set(2, 2)
	assert.Equal(t, 1, c.Len())
}

func TestWindowOptions(t *testing.T) {
	assert.True(t, WindowOptions{}.IsZero())

	flags := WindowOptions{Borderless: true, FullscreenDesktop: true}.ToSDLFlags()
	assert.Equal(t, uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_BORDERLESS|sdl.WINDOW_FULLSCREEN_DESKTOP), flags)
	assert.Zero(t, WindowOptions{Hidden: true}.ToSDLFlags())

	assert.True(t, DefaultWindowOptions(true, false).IsFullscreen())
	assert.False(t, DefaultWindowOptions(false, false).IsFullscreen())
	assert.False(t, DefaultWindowOptions(true, true).IsFullscreen(), "development runs stay windowed")
}

func TestDevWindowSize(t *testing.T) {
	env := map[string]string{}
	getenv := func(k string) string { return env[k] }

	w, h := devWindowSize(getenv)
	assert.Equal(t, devWindowWidth, w)
	assert.Equal(t, devWindowHeight, h)

	env[constants.WindowWidthEnvVar] = "720"
	env[constants.WindowHeightEnvVar] = "tall"
	w, h = devWindowSize(getenv)
	assert.Equal(t, int32(720), w)
	assert.Equal(t, devWindowHeight, h)
}
