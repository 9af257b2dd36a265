package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
)

func TestProcessKeyboard(t *testing.T) {
	p := NewInputProcessor()

	ev := p.ProcessSDLEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, State: sdl.PRESSED, Keysym: sdl.Keysym{Sym: sdl.K_RETURN}})
	require.NotNil(t, ev)
	assert.Equal(t, Event{Button: constants.VirtualButtonA, Pressed: true}, *ev)

	ev = p.ProcessSDLEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, State: sdl.PRESSED, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_DOWN}})
	require.NotNil(t, ev)
	assert.True(t, ev.Repeat)

	ev = p.ProcessSDLEvent(&sdl.KeyboardEvent{Type: sdl.KEYUP, State: sdl.RELEASED, Keysym: sdl.Keysym{Sym: sdl.K_BACKSPACE}})
	require.NotNil(t, ev)
	assert.Equal(t, constants.VirtualButtonB, ev.Button)
	assert.False(t, ev.Pressed)

	assert.Nil(t, p.ProcessSDLEvent(&sdl.KeyboardEvent{State: sdl.PRESSED, Keysym: sdl.Keysym{Sym: sdl.K_a}}), "letters are for text entry")
}

func TestProcessControllerButton(t *testing.T) {
	p := NewInputProcessor()

	ev := p.ProcessSDLEvent(&sdl.ControllerButtonEvent{Button: uint8(sdl.CONTROLLER_BUTTON_LEFTSHOULDER), State: sdl.PRESSED})
	require.NotNil(t, ev)
	assert.Equal(t, constants.VirtualButtonL1, ev.Button)
	assert.True(t, ev.Pressed)
}

func TestProcessAxis(t *testing.T) {
	p := NewInputProcessor()

	ev := p.processAxis(sdl.CONTROLLER_AXIS_LEFTY, -20000)
	require.NotNil(t, ev)
	assert.Equal(t, Event{Button: constants.VirtualButtonUp, Pressed: true}, *ev)

	assert.Nil(t, p.processAxis(sdl.CONTROLLER_AXIS_LEFTY, -30000), "still held")

	ev = p.processAxis(sdl.CONTROLLER_AXIS_LEFTY, 100)
	require.NotNil(t, ev)
	assert.Equal(t, Event{Button: constants.VirtualButtonUp, Pressed: false}, *ev)

	assert.Nil(t, p.processAxis(sdl.CONTROLLER_AXIS_LEFTY, 0), "nothing to release")

	ev = p.processAxis(sdl.CONTROLLER_AXIS_LEFTX, 20000)
	require.NotNil(t, ev)
	assert.Equal(t, constants.VirtualButtonRight, ev.Button)

	assert.Nil(t, p.processAxis(sdl.CONTROLLER_AXIS_RIGHTX, 30000))
}

func TestDirectionalRepeat(t *testing.T) {
	d := NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
	t0 := time.Unix(1000, 0)

	assert.False(t, d.SetHeld(constants.VirtualButtonA, true, t0))
	assert.True(t, d.SetHeld(constants.VirtualButtonDown, true, t0))
	assert.Equal(t, DirectionDown, d.HeldDirection())

	assert.Equal(t, DirectionNone, d.Update(t0.Add(100*time.Millisecond)))
	assert.Equal(t, DirectionDown, d.Update(t0.Add(300*time.Millisecond)))
	assert.Equal(t, DirectionNone, d.Update(t0.Add(320*time.Millisecond)))
	assert.Equal(t, DirectionDown, d.Update(t0.Add(350*time.Millisecond)))

	d.SetHeld(constants.VirtualButtonDown, false, t0.Add(400*time.Millisecond))
	assert.False(t, d.IsHeld())
	assert.Equal(t, DirectionNone, d.Update(t0.Add(time.Second)))

	d.SetHeld(constants.VirtualButtonUp, true, t0.Add(2*time.Second))
	assert.Equal(t, DirectionNone, d.Update(t0.Add(2*time.Second+100*time.Millisecond)), "delay restarts on a new press")

	d.Reset()
	assert.Equal(t, DirectionNone, d.HeldDirection())
}

func TestDirectionNames(t *testing.T) {
	assert.Equal(t, "up", DirectionUp.String())
	assert.Equal(t, constants.VirtualButtonLeft, DirectionLeft.VirtualButton())
	assert.Equal(t, constants.VirtualButtonUnassigned, DirectionNone.VirtualButton())
	assert.Equal(t, DirectionRight, DirectionOf(constants.VirtualButtonRight))
}

func TestPowerTracker(t *testing.T) {
	cfg := PowerButtonConfig{ShortPressMax: 2 * time.Second, CoolDownTime: time.Second}
	t0 := time.Unix(1000, 0)

	t.Run("short press suspends", func(t *testing.T) {
		tr := &powerTracker{cfg: cfg}
		assert.Equal(t, PowerActionNone, tr.handle(1, t0))
		assert.Equal(t, PowerActionSuspend, tr.handle(0, t0.Add(200*time.Millisecond)))
	})

	t.Run("hold shuts down once", func(t *testing.T) {
		tr := &powerTracker{cfg: cfg}
		tr.handle(1, t0)
		assert.Equal(t, PowerActionNone, tr.handle(2, t0.Add(time.Second)))
		assert.Equal(t, PowerActionShutdown, tr.handle(2, t0.Add(2*time.Second)))
		assert.Equal(t, PowerActionNone, tr.handle(2, t0.Add(3*time.Second)))
		assert.Equal(t, PowerActionNone, tr.handle(0, t0.Add(4*time.Second)))
	})

	t.Run("long press without repeats shuts down on release", func(t *testing.T) {
		tr := &powerTracker{cfg: cfg}
		tr.handle(1, t0)
		assert.Equal(t, PowerActionShutdown, tr.handle(0, t0.Add(5*time.Second)))
	})

	t.Run("release without press", func(t *testing.T) {
		tr := &powerTracker{cfg: cfg}
		assert.Equal(t, PowerActionNone, tr.handle(0, t0))
	})

	t.Run("cool down after wake", func(t *testing.T) {
		tr := &powerTracker{cfg: cfg, lastWake: t0}
		assert.Equal(t, PowerActionNone, tr.handle(1, t0.Add(500*time.Millisecond)))
		assert.Equal(t, PowerActionNone, tr.handle(0, t0.Add(600*time.Millisecond)))

		tr.handle(1, t0.Add(2*time.Second))
		assert.Equal(t, PowerActionSuspend, tr.handle(0, t0.Add(2100*time.Millisecond)))
	})

	assert.Equal(t, "shutdown", PowerActionShutdown.String())
}

func TestInputBlocked(t *testing.T) {
	t.Cleanup(func() {
		powerSuspended.Store(false)
		powerWokeAt.Store(time.Time{})
	})
	now := time.Unix(1000, 0)

	assert.False(t, InputBlocked(now))

	powerSuspended.Store(true)
	assert.True(t, InputBlocked(now))
	powerSuspended.Store(false)

	powerWokeAt.Store(now)
	assert.True(t, InputBlocked(now.Add(100*time.Millisecond)))
	assert.False(t, InputBlocked(now.Add(time.Second)))
}

func TestDefaultPowerButtonConfig(t *testing.T) {
	t.Setenv(constants.PlatformEnvVar, "")
	assert.Empty(t, DefaultPowerButtonConfig().DevicePath)

	t.Setenv(constants.PlatformEnvVar, "tg5040")
	cfg := DefaultPowerButtonConfig()
	assert.Equal(t, "/dev/input/event1", cfg.DevicePath)
	assert.Equal(t, uint16(116), cfg.ButtonCode)
}
