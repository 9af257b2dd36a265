package patchwheel

import (
	"context"
	"image/color"
	"time"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/app"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/config"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/internal"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/internal/icons"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/locale"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/wheel"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	toolbarGap        int32 = 4
	minButtonHeight   int32 = 44
	maxButtonHeight   int32 = 96
	labelButtonHeight int32 = 56 // Buttons lower than this show the icon only
	maxTruncations          = 512

	noTarget   = -1
	pillTarget = -2
)

// BrowserSettings configures the browser screen.
type BrowserSettings struct {
	Features        config.Features
	Columns         int  // Toolbar buttons per row
	ToolbarAtBottom bool // Landscape layout: wheel above the toolbar
	Locale          *locale.Localizer
}

// browserLayout holds the screen regions of the browser.
type browserLayout struct {
	header  sdl.Rect
	pill    sdl.Rect // MIDI device, tap to pick another
	title   sdl.Rect // Current folder name
	toolbar []sdl.Rect
	canvas  sdl.Rect // Wheel area
}

// computeBrowserLayout splits a width x height screen into header, toolbar grid and
// wheel canvas. The toolbar sits under the header, or along the bottom edge when
// toolbarAtBottom is set.
func computeBrowserLayout(width, height int32, buttons, columns int, toolbarAtBottom bool) browserLayout {
	headerHeight := max(40, height/14)
	if width > height {
		headerHeight = max(40, height/12)
	}

	columns = max(1, min(columns, max(buttons, 1)))
	rows := 0
	if buttons > 0 {
		rows = (buttons + columns - 1) / columns
	}

	cellWidth := (width - toolbarGap*int32(columns+1)) / int32(columns)
	buttonHeight := min(max(cellWidth*3/4, minButtonHeight), maxButtonHeight)
	toolbarHeight := int32(0)
	if rows > 0 {
		toolbarHeight = int32(rows)*buttonHeight + int32(rows+1)*toolbarGap
	}

	l := browserLayout{
		header: sdl.Rect{X: 0, Y: 0, W: width, H: headerHeight},
	}

	pillWidth := width * 2 / 5
	l.pill = sdl.Rect{X: 2 * toolbarGap, Y: toolbarGap, W: pillWidth, H: headerHeight - 2*toolbarGap}
	titleX := l.pill.X + l.pill.W + 2*toolbarGap
	l.title = sdl.Rect{X: titleX, Y: 0, W: max(0, width-titleX-2*toolbarGap), H: headerHeight}

	toolbarY := headerHeight
	canvasY := headerHeight + toolbarHeight
	if toolbarAtBottom {
		toolbarY = height - toolbarHeight
		canvasY = headerHeight
	}
	l.canvas = sdl.Rect{X: 0, Y: canvasY, W: width, H: max(0, height-headerHeight-toolbarHeight)}

	l.toolbar = make([]sdl.Rect, buttons)
	for i := range l.toolbar {
		row, col := int32(i/columns), int32(i%columns)
		l.toolbar[i] = sdl.Rect{
			X: toolbarGap + col*(cellWidth+toolbarGap),
			Y: toolbarY + toolbarGap + row*(buttonHeight+toolbarGap),
			W: cellWidth,
			H: buttonHeight,
		}
	}
	return l
}

// target returns the toolbar index under (x, y), pillTarget for the device pill, or
// noTarget.
func (l browserLayout) target(x, y int32) int {
	if internal.Contains(l.pill, x, y) {
		return pillTarget
	}
	for i, r := range l.toolbar {
		if internal.Contains(r, x, y) {
			return i
		}
	}
	return noTarget
}

// rowColor picks the colour of a wheel row: the row activated last, then the selected
// row, then the rest. The empty folder placeholder has its own colour.
func rowColor(theme internal.Theme, p wheel.Placement) sdl.Color {
	switch {
	case p.Index < 0:
		return theme.PlaceholderColor
	case p.Active:
		return theme.ClickedColor
	case p.Bold:
		return theme.SelectedColor
	default:
		return theme.IdleColor
	}
}

// Browser is the main screen: the wheel over the current folder with a toolbar of
// actions. It is created once and shown again after every dialog.
type Browser struct {
	ctrl     *app.Controller
	settings BrowserSettings
	actions  []app.Action
	labels   []string

	layout      browserLayout
	icons       map[app.Action]*sdl.Texture
	text        *internal.TextCache
	truncations map[truncationKey]string

	directional internal.DirectionalInput
	dragging    bool
	pressed     int
	result      *BrowserResult
}

type truncationKey struct {
	text  internal.TextKey
	width int32
}

// NewBrowser creates the browser for ctrl and renders its toolbar icons. Call Close when
// done.
func NewBrowser(ctrl *app.Controller, settings BrowserSettings) (*Browser, error) {
	if settings.Columns <= 0 {
		settings.Columns = 5
	}
	if settings.Locale == nil {
		settings.Locale = locale.MustCatalog().Localizer()
	}

	window := internal.GetWindow()
	actions := app.Toolbar(settings.Features)

	b := &Browser{
		ctrl:        ctrl,
		settings:    settings,
		actions:     actions,
		labels:      make([]string, len(actions)),
		icons:       make(map[app.Action]*sdl.Texture),
		text:        internal.NewTextCache(window.Renderer),
		truncations: make(map[truncationKey]string),
		directional: internal.NewDirectionalInput(),
		pressed:     noTarget,
	}
	for i, a := range actions {
		b.labels[i] = settings.Locale.T(a.Label(), nil)
	}

	b.layout = b.computeLayout(window)
	if err := b.loadIcons(window.Renderer); err != nil {
		b.Close()
		return nil, NewInfrastructureError("load_icons", err)
	}
	return b, nil
}

func (b *Browser) computeLayout(window *internal.Window) browserLayout {
	return computeBrowserLayout(window.GetWidth(), window.GetHeight(), len(b.actions), b.settings.Columns, b.settings.ToolbarAtBottom)
}

func (b *Browser) loadIcons(renderer *sdl.Renderer) error {
	if len(b.layout.toolbar) == 0 {
		return nil
	}
	button := b.layout.toolbar[0]
	size := int(min(button.W, button.H) * 45 / 100)
	if button.H < labelButtonHeight {
		size = int(min(button.W, button.H) * 60 / 100)
	}

	tc := internal.GetTheme().TextColor
	tint := color.NRGBA{R: tc.R, G: tc.G, B: tc.B, A: tc.A}

	for _, a := range b.actions {
		img, err := icons.Render(a.Icon(), size, tint)
		if err != nil {
			return err
		}
		texture, err := internal.TextureFromImage(renderer, img)
		if err != nil {
			return err
		}
		b.icons[a] = texture
	}
	return nil
}

// Close releases the icon and label textures.
func (b *Browser) Close() {
	for a, t := range b.icons {
		t.Destroy()
		delete(b.icons, a)
	}
	b.text.Destroy()
}

// Show runs the browser until an operation needs a dialog or the window is closed.
func (b *Browser) Show(ctx context.Context) (*BrowserResult, error) {
	window := internal.GetWindow()
	w := b.ctrl.Wheel()

	b.result = nil
	b.dragging = false
	b.pressed = noTarget
	b.directional.Reset()

	for b.result == nil {
		if ctx.Err() != nil {
			return &BrowserResult{Action: BrowserActionQuit}, nil
		}

		now := time.Now()
		b.layout = b.computeLayout(window)
		w.SetViewport(float64(b.layout.canvas.W), float64(b.layout.canvas.H))

		b.handleEvents(ctx, now)
		if b.result != nil {
			break
		}

		if dir := b.directional.Update(now); dir != internal.DirectionNone {
			b.step(dir)
		}

		w.Advance(now)
		b.render(window)
		window.Present()
	}

	return b.result, nil
}

func (b *Browser) handleEvents(ctx context.Context, now time.Time) {
	processor := internal.GetInputProcessor()
	blocked := internal.InputBlocked(now)
	w := b.ctrl.Wheel()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			b.result = &BrowserResult{Action: BrowserActionQuit}
			return
		}
		if blocked {
			continue
		}

		switch e := event.(type) {
		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				b.pointerDown(e.X, e.Y)
			} else {
				b.pointerUp(ctx, e.X, e.Y)
			}

		case *sdl.MouseMotionEvent:
			if b.dragging {
				w.ContinueDrag(float64(e.Y - b.layout.canvas.Y))
			}

		case *sdl.MouseWheelEvent:
			dy := e.Y
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dy = -dy
			}
			w.Wheel(int(dy))

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent, *sdl.ControllerDeviceEvent:
			inputEvent := processor.ProcessSDLEvent(event)
			if inputEvent == nil {
				continue
			}
			b.handleInputEvent(ctx, inputEvent, now)
		}

		if b.result != nil {
			return
		}
	}
}

func (b *Browser) handleInputEvent(ctx context.Context, inputEvent *internal.Event, now time.Time) {
	if !inputEvent.Pressed {
		b.directional.SetHeld(inputEvent.Button, false, now)
		return
	}
	if inputEvent.Repeat {
		return
	}

	switch inputEvent.Button {
	case constants.VirtualButtonUp, constants.VirtualButtonDown:
		b.directional.SetHeld(inputEvent.Button, true, now)
		b.step(internal.DirectionOf(inputEvent.Button))
	case constants.VirtualButtonA:
		if b.ctrl.Wheel().Activate() {
			b.resolve(ctx)
		}
	case constants.VirtualButtonB:
		b.perform(ctx, app.ActionParent)
	case constants.VirtualButtonMenu:
		if err := internal.GetWindow().ToggleFullscreen(); err != nil {
			internal.GetInternalLogger().Error("Failed to toggle fullscreen", "error", err)
		}
	case constants.VirtualButtonSelect:
		b.perform(ctx, app.ActionPickDevice)
	case constants.VirtualButtonL1:
		b.perform(ctx, app.ActionHome)
	case constants.VirtualButtonR1:
		b.perform(ctx, app.ActionBookmarks)
	case constants.VirtualButtonX:
		if b.settings.Features.Search {
			b.perform(ctx, app.ActionSearch)
		}
	case constants.VirtualButtonY:
		b.perform(ctx, app.ActionAddBookmark)
	}
}

func (b *Browser) step(dir internal.Direction) {
	switch dir {
	case internal.DirectionUp:
		b.ctrl.Wheel().MoveSelection(-1)
	case internal.DirectionDown:
		b.ctrl.Wheel().MoveSelection(1)
	}
}

func (b *Browser) pointerDown(x, y int32) {
	if internal.Contains(b.layout.canvas, x, y) {
		b.dragging = true
		b.ctrl.Wheel().BeginDrag(float64(y - b.layout.canvas.Y))
		return
	}
	b.pressed = b.layout.target(x, y)
}

func (b *Browser) pointerUp(ctx context.Context, x, y int32) {
	if b.dragging {
		b.dragging = false
		b.ctrl.Wheel().EndDrag(float64(y - b.layout.canvas.Y))
		b.resolve(ctx)
		return
	}

	pressed := b.pressed
	b.pressed = noTarget
	if pressed == noTarget || b.layout.target(x, y) != pressed {
		return
	}

	if pressed == pillTarget {
		b.perform(ctx, app.ActionPickDevice)
		return
	}
	b.perform(ctx, b.actions[pressed])
}

func (b *Browser) resolve(ctx context.Context) {
	if req := b.ctrl.Resolve(ctx); req != nil {
		b.result = &BrowserResult{Action: BrowserActionRequest, Request: req}
	}
}

func (b *Browser) perform(ctx context.Context, action app.Action) {
	if req := b.ctrl.Perform(ctx, action); req != nil {
		b.result = &BrowserResult{Action: BrowserActionRequest, Request: req}
	}
}

func (b *Browser) render(window *internal.Window) {
	renderer := window.Renderer
	window.RenderBackground()

	b.renderHeader(renderer)
	b.renderToolbar(renderer)
	b.renderWheel(renderer)
}

func (b *Browser) renderHeader(renderer *sdl.Renderer) {
	theme := internal.GetTheme()
	l := b.layout

	renderer.SetDrawColor(theme.HeaderColor.R, theme.HeaderColor.G, theme.HeaderColor.B, theme.HeaderColor.A)
	renderer.FillRect(&l.header)

	pillColor := theme.AccentColor
	if b.pressed == pillTarget {
		pillColor = theme.SelectedColor
	}
	internal.FillRoundedRect(renderer, l.pill, l.pill.H/2, pillColor)

	small := internal.DefaultFontSizes.Small
	b.drawLabel(renderer, b.ctrl.DeviceLabel(), small, false, theme.ButtonLabelColor, l.pill, l.pill.H/2)

	medium := internal.DefaultFontSizes.Medium
	b.drawLabel(renderer, b.ctrl.Title(), medium, true, theme.TextColor, l.title, 0)
}

func (b *Browser) renderToolbar(renderer *sdl.Renderer) {
	theme := internal.GetTheme()
	small := internal.DefaultFontSizes.Small

	for i, rect := range b.layout.toolbar {
		fill := theme.HeaderColor
		if b.pressed == i {
			fill = theme.AccentColor
		}
		internal.FillRoundedRect(renderer, rect, 8, fill)

		icon := b.icons[b.actions[i]]
		showLabel := rect.H >= labelButtonHeight
		if icon != nil {
			_, _, w, h, err := icon.Query()
			if err == nil {
				cy := rect.Y + rect.H/2
				if showLabel {
					cy = rect.Y + rect.H*2/5
				}
				renderer.Copy(icon, nil, &sdl.Rect{X: rect.X + (rect.W-w)/2, Y: cy - h/2, W: w, H: h})
			}
		}

		if showLabel {
			labelArea := sdl.Rect{X: rect.X + 2, Y: rect.Y + rect.H*3/5, W: rect.W - 4, H: rect.H * 2 / 5}
			b.drawLabel(renderer, b.labels[i], small, false, theme.TextColor, labelArea, labelArea.H/2)
		}
	}
}

func (b *Browser) renderWheel(renderer *sdl.Renderer) {
	theme := internal.GetTheme()
	canvas := b.layout.canvas
	if canvas.W <= 0 || canvas.H <= 0 {
		return
	}

	w := b.ctrl.Wheel()
	renderer.SetClipRect(&canvas)
	defer renderer.SetClipRect(nil)

	center := canvas.Y + int32(w.CenterLine(float64(canvas.H)))
	half := int32(w.Settings().ItemHeight / 2)
	margin := canvas.W / 10
	internal.HorizontalLine(renderer, canvas.X+margin, canvas.X+canvas.W-margin, center-half, theme.IdleColor)
	internal.HorizontalLine(renderer, canvas.X+margin, canvas.X+canvas.W-margin, center+half, theme.IdleColor)

	maxWidth := canvas.W - 2*toolbarGap
	for _, p := range w.Layout(float64(canvas.W), float64(canvas.H)) {
		key := internal.TextKey{
			Text:  p.Label,
			Size:  internal.FontSize(p.Size),
			Bold:  p.Bold,
			Color: rowColor(theme, p),
		}
		t, ok := b.fitted(key, maxWidth)
		if !ok {
			continue
		}
		internal.DrawCachedCentered(renderer, t, canvas.X+int32(p.X), canvas.Y+int32(p.Y))
	}
}

// drawLabel draws text centred vertically in area. A zero centreOffset left-aligns the
// text; otherwise it is centred horizontally.
func (b *Browser) drawLabel(renderer *sdl.Renderer, text string, size int, bold bool, c sdl.Color, area sdl.Rect, centreOffset int32) {
	pad := int32(8)
	key := internal.TextKey{Text: text, Size: size, Bold: bold, Color: c}
	t, ok := b.fitted(key, area.W-2*pad)
	if !ok {
		return
	}

	x := area.X + pad
	if centreOffset != 0 {
		x = area.X + (area.W-t.W)/2
	}
	renderer.Copy(t.Texture, nil, &sdl.Rect{X: x, Y: area.Y + (area.H-t.H)/2, W: t.W, H: t.H})
}

// fitted returns the texture of key, shortened with an ellipsis to maxWidth.
func (b *Browser) fitted(key internal.TextKey, maxWidth int32) (internal.TextTexture, bool) {
	t, err := b.text.Get(key)
	if err != nil {
		return internal.TextTexture{}, false
	}
	if t.W <= maxWidth || maxWidth <= 0 {
		return t, true
	}

	tk := truncationKey{text: key, width: maxWidth}
	short, ok := b.truncations[tk]
	if !ok {
		font, err := internal.GetFont(key.Size, key.Bold)
		if err != nil {
			return t, true
		}
		short = internal.TruncateText(key.Text, maxWidth, internal.Measurer(font))
		if len(b.truncations) >= maxTruncations {
			clear(b.truncations)
		}
		b.truncations[tk] = short
	}

	key.Text = short
	t, err = b.text.Get(key)
	return t, err == nil
}
