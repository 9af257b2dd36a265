package patchwheel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/internal"
)

func TestTextFieldEditing(t *testing.T) {
	f := newTextField("héllo")
	assert.Equal(t, 5, f.cursor, "cursor starts after the initial text")

	f.move(-3)
	f.insert("ü")
	assert.Equal(t, "héüllo", f.String())
	assert.Equal(t, 3, f.cursor)

	f.backspace()
	assert.Equal(t, "héllo", f.String())

	f.deleteForward()
	assert.Equal(t, "hélo", f.String())

	f.home()
	f.backspace()
	assert.Equal(t, "hélo", f.String(), "nothing before the cursor")

	f.end()
	f.deleteForward()
	assert.Equal(t, "hélo", f.String(), "nothing after the cursor")

	f.move(10)
	assert.Equal(t, 4, f.cursor)
	f.move(-10)
	assert.Equal(t, 0, f.cursor)

	f.insert("")
	assert.Equal(t, 0, f.cursor)
}

func TestFieldScroll(t *testing.T) {
	assert.Equal(t, int32(0), fieldScroll(50, 100, 80, 10))
	assert.Equal(t, int32(60), fieldScroll(150, 100, 200, 10))
	assert.Equal(t, int32(20), fieldScroll(150, 100, 120, 10), "never past the end of the text")
}

func TestKeyValue(t *testing.T) {
	k := keyboardKey{kind: keyChar, lower: "q", symbol: "-"}

	assert.Equal(t, "q", k.value(false, false))
	assert.Equal(t, "Q", k.value(true, false))
	assert.Equal(t, "-", k.value(true, true))
}

func TestKeyboardRows(t *testing.T) {
	rows := keyboardRows()
	specs := keySpecs(rows)

	assert.Len(t, rows, 5)
	for _, r := range []int{0, 1, 3, 4} {
		assert.Equal(t, 10, internal.RowUnits(specs[r]), "row %d", r)
	}
	assert.Equal(t, 9, internal.RowUnits(specs[2]))

	for _, row := range rows {
		for _, k := range row {
			if k.kind == keyChar {
				assert.NotEmpty(t, k.symbol, "key %q has a symbol", k.lower)
			}
		}
	}
}

func newTestPrompt(keyboard bool) *promptController {
	return newPromptController("Rename", "New name", "ab", PromptSettings{
		OnScreenKeyboard: keyboard,
		EnterLabel:       "Enter",
		CancelLabel:      "Cancel",
	}, 480, 800)
}

func TestPromptKeys(t *testing.T) {
	c := newTestPrompt(true)

	c.press(1, 0)
	assert.Equal(t, "abq", c.field.String())

	c.press(3, 0)
	assert.True(t, c.shift)
	c.press(1, 1)
	assert.Equal(t, "abqW", c.field.String())
	c.press(3, 0)
	assert.False(t, c.shift)

	c.press(4, 0)
	assert.True(t, c.symbols)
	c.press(0, 0)
	assert.Equal(t, "abqW!", c.field.String())

	c.press(3, 8)
	assert.Equal(t, "abqW", c.field.String())

	c.press(4, 1)
	assert.Equal(t, "abqW ", c.field.String())

	c.press(9, 9)
	assert.Equal(t, "abqW ", c.field.String(), "out of range")

	assert.Equal(t, "Enter", c.keyLabel(c.keys[4][3]))
	assert.Equal(t, "abc", c.keyLabel(c.keys[4][0]))

	c.press(4, 3)
	assert.True(t, c.done)

	c = newTestPrompt(true)
	c.press(4, 2)
	assert.True(t, c.cancelled)
}

func TestPromptKeyLayout(t *testing.T) {
	c := newTestPrompt(true)

	assert.Equal(t, sdl.Rect{X: 12, Y: 468, W: 42, H: 60}, c.rects[0][0])
	assert.Equal(t, int32(35), c.rects[2][0].X, "shorter row is centred")
	assert.Equal(t, sdl.Rect{X: 104, Y: 724, W: 180, H: 60}, c.rects[4][1])
}

func TestPromptNavigate(t *testing.T) {
	c := newTestPrompt(true)
	assert.Equal(t, keyPos{row: 1}, c.selected)

	c.navigate(internal.DirectionLeft)
	assert.Equal(t, keyPos{row: 1, col: 9}, c.selected)
	c.navigate(internal.DirectionRight)
	assert.Equal(t, keyPos{row: 1, col: 0}, c.selected)

	c.navigate(internal.DirectionDown)
	assert.Equal(t, keyPos{row: 2, col: 0}, c.selected)

	c.selected = keyPos{row: 0, col: 6}
	c.navigate(internal.DirectionUp)
	assert.Equal(t, keyPos{row: 4, col: 2}, c.selected, "wraps to the closest key of the last row")
	assert.True(t, c.navigating)
}

func TestPromptButtons(t *testing.T) {
	now := time.Unix(1000, 0)
	press := func(c *promptController, b constants.VirtualButton) {
		c.handleInputEvent(&internal.Event{Button: b, Pressed: true}, now)
	}

	c := newTestPrompt(false)
	press(c, constants.VirtualButtonLeft)
	press(c, constants.VirtualButtonX)
	assert.Equal(t, "a b", c.field.String())
	press(c, constants.VirtualButtonB)
	assert.Equal(t, "ab", c.field.String())
	press(c, constants.VirtualButtonA)
	assert.True(t, c.done, "A confirms without the on-screen keyboard")

	c = newTestPrompt(true)
	press(c, constants.VirtualButtonSelect)
	press(c, constants.VirtualButtonA)
	assert.Equal(t, "abQ", c.field.String())
	assert.False(t, c.done)
	press(c, constants.VirtualButtonY)
	assert.True(t, c.cancelled)
}

func TestPromptPhysicalKeys(t *testing.T) {
	now := time.Unix(1000, 0)
	c := newTestPrompt(false)

	c.handleKey(sdl.K_LEFT, now)
	c.handleKey(sdl.K_BACKSPACE, now)
	assert.Equal(t, "b", c.field.String())

	c.handleKey(sdl.K_END, now)
	c.handleKey(sdl.K_RETURN, now)
	assert.True(t, c.done)

	c = newTestPrompt(false)
	c.handleKey(sdl.K_ESCAPE, now)
	assert.True(t, c.cancelled)
}

func TestCursorBlink(t *testing.T) {
	c := newTestPrompt(false)
	t0 := time.Unix(1000, 0)
	c.resetBlink(t0)

	c.updateCursorBlink(t0.Add(100 * time.Millisecond))
	assert.True(t, c.cursorVisible)
	c.updateCursorBlink(t0.Add(600 * time.Millisecond))
	assert.False(t, c.cursorVisible)

	c.resetBlink(t0.Add(700 * time.Millisecond))
	assert.True(t, c.cursorVisible)
}
