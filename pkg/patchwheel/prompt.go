package patchwheel

import (
	"strings"
	"time"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const cursorBlinkRate = 500 * time.Millisecond

// PromptSettings configures the text prompt.
type PromptSettings struct {
	OnScreenKeyboard bool   // Show the touch keyboard below the text field
	EnterLabel       string // Confirm key and footer label
	CancelLabel      string // Cancel key and footer label
}

// textField is an editable line of text with a cursor counted in runes.
type textField struct {
	text   []rune
	cursor int
}

func newTextField(initial string) textField {
	r := []rune(initial)
	return textField{text: r, cursor: len(r)}
}

func (f *textField) String() string {
	return string(f.text)
}

func (f *textField) insert(s string) {
	r := []rune(s)
	if len(r) == 0 {
		return
	}
	text := make([]rune, 0, len(f.text)+len(r))
	text = append(text, f.text[:f.cursor]...)
	text = append(text, r...)
	text = append(text, f.text[f.cursor:]...)
	f.text = text
	f.cursor += len(r)
}

func (f *textField) backspace() {
	if f.cursor == 0 {
		return
	}
	f.text = append(f.text[:f.cursor-1], f.text[f.cursor:]...)
	f.cursor--
}

func (f *textField) deleteForward() {
	if f.cursor >= len(f.text) {
		return
	}
	f.text = append(f.text[:f.cursor], f.text[f.cursor+1:]...)
}

func (f *textField) move(delta int) {
	f.cursor = min(max(f.cursor+delta, 0), len(f.text))
}

func (f *textField) home() { f.cursor = 0 }

func (f *textField) end() { f.cursor = len(f.text) }

// fieldScroll returns how far the text is shifted left so the cursor stays visible.
func fieldScroll(cursorX, visibleWidth, textWidth, padding int32) int32 {
	offset := int32(0)
	if cursorX > visibleWidth {
		offset = cursorX - visibleWidth + padding
	}
	return min(offset, max(0, textWidth-visibleWidth))
}

type keyKind int

const (
	keyChar keyKind = iota
	keyShift
	keySymbols
	keyBackspace
	keySpace
	keyCancel
	keyEnter
)

type keyboardKey struct {
	kind   keyKind
	lower  string
	symbol string
	span   int
}

// value is the text a character key types.
func (k keyboardKey) value(shift, symbols bool) string {
	switch {
	case symbols:
		return k.symbol
	case shift:
		return strings.ToUpper(k.lower)
	default:
		return k.lower
	}
}

func charKeys(lower, symbols string) []keyboardKey {
	l, s := []rune(lower), []rune(symbols)
	keys := make([]keyboardKey, len(l))
	for i := range l {
		keys[i] = keyboardKey{kind: keyChar, lower: string(l[i]), symbol: string(s[i])}
	}
	return keys
}

func keyboardRows() [][]keyboardKey {
	bottom := []keyboardKey{{kind: keyShift}}
	bottom = append(bottom, charKeys("zxcvbnm", "/:;()&@")...)
	bottom = append(bottom, keyboardKey{kind: keyBackspace, span: 2})

	return [][]keyboardKey{
		charKeys("1234567890", "!@#$%^&*()"),
		charKeys("qwertyuiop", "-_=+[]{}\\|"),
		charKeys("asdfghjkl", "~`'\";:,.?"),
		bottom,
		{
			{kind: keySymbols, span: 2},
			{kind: keySpace, span: 4},
			{kind: keyCancel, span: 2},
			{kind: keyEnter, span: 2},
		},
	}
}

func keySpecs(rows [][]keyboardKey) [][]internal.KeySpec {
	specs := make([][]internal.KeySpec, len(rows))
	for r, row := range rows {
		specs[r] = make([]internal.KeySpec, len(row))
		for c, k := range row {
			specs[r][c] = internal.KeySpec{Label: k.lower, Span: k.span}
		}
	}
	return specs
}

type keyPos struct {
	row, col int
}

type promptController struct {
	title    string
	message  string
	field    textField
	settings PromptSettings

	keys  [][]keyboardKey
	rects [][]sdl.Rect
	dims  internal.KeyboardDimensions

	selected   keyPos
	navigating bool // Highlight the selected key once the d-pad is used
	touched    keyPos
	touching   bool
	shift      bool
	symbols    bool

	cursorVisible bool
	lastBlink     time.Time
	directional   internal.DirectionalInput

	done      bool
	cancelled bool
}

func newPromptController(title, message, initial string, settings PromptSettings, width, height int32) *promptController {
	keys := keyboardRows()
	dims := internal.CalculateKeyboardDimensions(width, height)
	spacing := max(2, dims.Margin/3)

	return &promptController{
		title:         title,
		message:       message,
		field:         newTextField(initial),
		settings:      settings,
		keys:          keys,
		rects:         internal.LayoutKeys(dims.KeyboardRect, keySpecs(keys), spacing),
		dims:          dims,
		selected:      keyPos{row: 1},
		cursorVisible: true,
		lastBlink:     time.Now(),
		directional:   internal.NewDirectionalInput(),
	}
}

// Prompt asks for a line of text. It returns ErrCancelled when the prompt is dismissed.
func Prompt(title, message, initial string, settings PromptSettings) (string, error) {
	window := internal.GetWindow()
	renderer := window.Renderer

	c := newPromptController(title, message, initial, settings, window.GetWidth(), window.GetHeight())
	text := internal.NewTextCache(renderer)
	defer text.Destroy()

	sdl.StartTextInput()
	defer sdl.StopTextInput()

	for !c.done && !c.cancelled {
		now := time.Now()
		c.handleEvents(now)

		if dir := c.directional.Update(now); dir != internal.DirectionNone {
			c.navigate(dir)
		}
		c.updateCursorBlink(now)

		c.render(renderer, window, text)
		window.Present()
	}

	if c.cancelled {
		return "", ErrCancelled
	}
	return c.field.String(), nil
}

func (c *promptController) handleEvents(now time.Time) {
	processor := internal.GetInputProcessor()
	blocked := internal.InputBlocked(now)

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			c.cancelled = true
			return
		}
		if blocked {
			continue
		}

		switch e := event.(type) {
		case *sdl.TextInputEvent:
			c.field.insert(e.GetText())
			c.resetBlink(now)

		case *sdl.KeyboardEvent:
			if e.State == sdl.PRESSED {
				c.handleKey(e.Keysym.Sym, now)
			}

		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT || !c.settings.OnScreenKeyboard {
				continue
			}
			row, col, ok := internal.KeyAt(c.rects, e.X, e.Y)
			if e.Type == sdl.MOUSEBUTTONDOWN {
				c.touched, c.touching = keyPos{row, col}, ok
				continue
			}
			if ok && c.touching && c.touched == (keyPos{row, col}) {
				c.press(row, col)
				c.resetBlink(now)
			}
			c.touching = false

		case *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent, *sdl.ControllerDeviceEvent:
			inputEvent := processor.ProcessSDLEvent(event)
			if inputEvent == nil {
				continue
			}
			c.handleInputEvent(inputEvent, now)
		}

		if c.done || c.cancelled {
			return
		}
	}
}

// handleKey edits the field from a physical keyboard. Printable characters arrive as
// text input events instead.
func (c *promptController) handleKey(sym sdl.Keycode, now time.Time) {
	switch sym {
	case sdl.K_RETURN, sdl.K_KP_ENTER:
		c.done = true
	case sdl.K_ESCAPE:
		c.cancelled = true
	case sdl.K_BACKSPACE:
		c.field.backspace()
	case sdl.K_DELETE:
		c.field.deleteForward()
	case sdl.K_LEFT:
		c.field.move(-1)
	case sdl.K_RIGHT:
		c.field.move(1)
	case sdl.K_HOME:
		c.field.home()
	case sdl.K_END:
		c.field.end()
	default:
		return
	}
	c.resetBlink(now)
}

func (c *promptController) handleInputEvent(inputEvent *internal.Event, now time.Time) {
	if !inputEvent.Pressed {
		c.directional.SetHeld(inputEvent.Button, false, now)
		return
	}

	switch inputEvent.Button {
	case constants.VirtualButtonUp, constants.VirtualButtonDown,
		constants.VirtualButtonLeft, constants.VirtualButtonRight:
		if c.settings.OnScreenKeyboard {
			c.directional.SetHeld(inputEvent.Button, true, now)
			c.navigate(internal.DirectionOf(inputEvent.Button))
		} else if inputEvent.Button == constants.VirtualButtonLeft {
			c.field.move(-1)
		} else if inputEvent.Button == constants.VirtualButtonRight {
			c.field.move(1)
		}
	case constants.VirtualButtonA:
		if c.settings.OnScreenKeyboard {
			c.press(c.selected.row, c.selected.col)
		} else {
			c.done = true
		}
	case constants.VirtualButtonB:
		c.field.backspace()
	case constants.VirtualButtonX:
		c.field.insert(" ")
	case constants.VirtualButtonSelect:
		c.shift = !c.shift
	case constants.VirtualButtonY:
		c.cancelled = true
	case constants.VirtualButtonStart:
		c.done = true
	case constants.VirtualButtonL1:
		c.field.move(-1)
	case constants.VirtualButtonR1:
		c.field.move(1)
	}
	c.resetBlink(now)
}

// press performs the key at row, col.
func (c *promptController) press(row, col int) {
	if row < 0 || row >= len(c.keys) || col < 0 || col >= len(c.keys[row]) {
		return
	}

	k := c.keys[row][col]
	switch k.kind {
	case keyChar:
		c.field.insert(k.value(c.shift, c.symbols))
	case keyShift:
		c.shift = !c.shift
	case keySymbols:
		c.symbols = !c.symbols
	case keyBackspace:
		c.field.backspace()
	case keySpace:
		c.field.insert(" ")
	case keyCancel:
		c.cancelled = true
	case keyEnter:
		c.done = true
	}
}

// navigate moves the key selection. Vertical moves pick the key in the next row
// closest to the current one horizontally. Both axes wrap.
func (c *promptController) navigate(dir internal.Direction) {
	c.navigating = true
	row, col := c.selected.row, c.selected.col

	switch dir {
	case internal.DirectionLeft:
		col = (col - 1 + len(c.keys[row])) % len(c.keys[row])
	case internal.DirectionRight:
		col = (col + 1) % len(c.keys[row])
	case internal.DirectionUp, internal.DirectionDown:
		delta := 1
		if dir == internal.DirectionUp {
			delta = -1
		}
		current := c.rects[row][col]
		row = (row + delta + len(c.keys)) % len(c.keys)
		col = nearestKey(c.rects[row], current.X+current.W/2)
	}

	c.selected = keyPos{row, col}
}

func nearestKey(row []sdl.Rect, x int32) int {
	best, bestDistance := 0, int32(-1)
	for i, r := range row {
		d := r.X + r.W/2 - x
		if d < 0 {
			d = -d
		}
		if bestDistance < 0 || d < bestDistance {
			best, bestDistance = i, d
		}
	}
	return best
}

func (c *promptController) resetBlink(now time.Time) {
	c.cursorVisible = true
	c.lastBlink = now
}

func (c *promptController) updateCursorBlink(now time.Time) {
	if now.Sub(c.lastBlink) > cursorBlinkRate {
		c.cursorVisible = !c.cursorVisible
		c.lastBlink = now
	}
}

func (c *promptController) keyLabel(k keyboardKey) string {
	switch k.kind {
	case keyChar:
		return k.value(c.shift, c.symbols)
	case keyShift:
		if c.shift {
			return "abc"
		}
		return "ABC"
	case keySymbols:
		if c.symbols {
			return "abc"
		}
		return "#+="
	case keyBackspace:
		return "DEL"
	case keyCancel:
		return c.settings.CancelLabel
	case keyEnter:
		return c.settings.EnterLabel
	}
	return ""
}

func (c *promptController) fieldRect() sdl.Rect {
	if c.settings.OnScreenKeyboard {
		return c.dims.TextInputRect
	}
	r := c.dims.TextInputRect
	r.Y = (c.dims.WindowHeight - r.H) / 2
	return r
}

func (c *promptController) render(renderer *sdl.Renderer, window *internal.Window, text *internal.TextCache) {
	theme := internal.GetTheme()
	window.RenderBackground()

	margin := c.dims.Margin
	width := c.dims.WindowWidth
	y := 2 * margin

	if c.title != "" {
		internal.DrawText(renderer, internal.Fonts.LargeFont, c.title, width/2, y, theme.TextColor, constants.TextAlignCenter)
		y += int32(internal.Fonts.LargeFont.Height()) + constants.DefaultTitleSpacing*2
	}
	if c.message != "" {
		internal.RenderMultilineText(renderer, c.message, internal.Fonts.SmallFont, width-4*margin, width/2, y, theme.HintColor, constants.TextAlignCenter)
	}

	c.renderField(renderer, internal.Fonts.MediumFont)

	if c.settings.OnScreenKeyboard {
		c.renderKeys(renderer, text)
		return
	}

	renderFooter(renderer, internal.Fonts.SmallFont, []FooterHelpItem{
		{ButtonName: "Enter", HelpText: c.settings.EnterLabel},
		{ButtonName: "Esc", HelpText: c.settings.CancelLabel},
	}, margin, true, true)
}

func (c *promptController) renderField(renderer *sdl.Renderer, font *ttf.Font) {
	theme := internal.GetTheme()
	rect := c.fieldRect()

	renderer.SetDrawColor(theme.HeaderColor.R, theme.HeaderColor.G, theme.HeaderColor.B, theme.HeaderColor.A)
	renderer.FillRect(&rect)
	internal.OutlineRect(renderer, rect, 2, theme.AccentColor)

	padding := int32(10)
	visibleWidth := rect.W - 2*padding
	lineHeight := int32(font.Height())
	textY := rect.Y + (rect.H-lineHeight)/2

	cursorX := int32(0)
	offset := int32(0)
	if len(c.field.text) > 0 {
		cursorX, _ = internal.MeasureText(font, string(c.field.text[:c.field.cursor]))

		surface, err := font.RenderUTF8Blended(c.field.String(), theme.TextColor)
		if err != nil {
			return
		}
		defer surface.Free()

		texture, err := renderer.CreateTextureFromSurface(surface)
		if err != nil {
			return
		}
		defer texture.Destroy()

		offset = fieldScroll(cursorX, visibleWidth, surface.W, padding)
		src := sdl.Rect{X: offset, Y: 0, W: min(visibleWidth, surface.W), H: surface.H}
		dst := sdl.Rect{X: rect.X + padding, Y: rect.Y + (rect.H-surface.H)/2, W: src.W, H: surface.H}
		renderer.Copy(texture, &src, &dst)
	}

	if c.cursorVisible {
		cursor := sdl.Rect{X: rect.X + padding + cursorX - offset, Y: textY, W: 2, H: lineHeight}
		if cursor.X <= rect.X+padding+visibleWidth {
			renderer.SetDrawColor(theme.TextColor.R, theme.TextColor.G, theme.TextColor.B, theme.TextColor.A)
			renderer.FillRect(&cursor)
		}
	}
}

func (c *promptController) renderKeys(renderer *sdl.Renderer, text *internal.TextCache) {
	theme := internal.GetTheme()
	size := internal.DefaultFontSizes.Medium

	for r, row := range c.keys {
		for col, k := range row {
			rect := c.rects[r][col]
			pos := keyPos{r, col}
			active := (c.touching && c.touched == pos) || (c.navigating && c.selected == pos)

			fill, label := theme.HeaderColor, theme.TextColor
			if active {
				fill, label = theme.AccentColor, theme.ButtonLabelColor
			}
			internal.FillRoundedRect(renderer, rect, 6, fill)
			if (k.kind == keyShift && c.shift) || (k.kind == keySymbols && c.symbols) {
				internal.OutlineRect(renderer, rect, 2, theme.AccentColor)
			}

			if k.kind == keySpace {
				bar := sdl.Rect{X: rect.X + rect.W/4, Y: rect.Y + rect.H*2/3, W: rect.W / 2, H: 3}
				renderer.SetDrawColor(label.R, label.G, label.B, label.A)
				renderer.FillRect(&bar)
				continue
			}

			t, err := text.Get(internal.TextKey{Text: c.keyLabel(k), Size: size, Color: label})
			if err != nil {
				continue
			}
			internal.DrawCachedCentered(renderer, t, rect.X+rect.W/2, rect.Y+rect.H/2)
		}
	}
}
