package patchwheel

import (
	"time"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/internal"
	"github.com/veandco/go-sdl2/sdl"
)

const minPickItemHeight int32 = 44

// PickSettings configures the pick list.
type PickSettings struct {
	InitialSelection int
	FooterHelpItems  []FooterHelpItem
}

type pickListController struct {
	title        string
	items        []string
	selected     int
	visibleStart int
	maxVisible   int

	listTop    int32
	itemHeight int32

	directional      internal.DirectionalInput
	pressed          int
	dragStartY       int32
	dragStartVisible int
	dragging         bool
	dragged          bool

	confirmed bool
	cancelled bool
}

func newPickListController(title string, items []string, settings PickSettings) *pickListController {
	c := &pickListController{
		title:       title,
		items:       items,
		selected:    settings.InitialSelection,
		maxVisible:  1,
		pressed:     -1,
		directional: internal.NewDirectionalInput(),
	}
	if c.selected < 0 || c.selected >= len(items) {
		c.selected = 0
	}
	return c
}

// Pick shows title over a scrolling list of items and returns the index chosen.
// Returns ErrCancelled if the list is dismissed or empty.
func Pick(title string, items []string, settings PickSettings) (int, error) {
	if len(items) == 0 {
		return -1, ErrCancelled
	}

	window := internal.GetWindow()
	renderer := window.Renderer
	c := newPickListController(title, items, settings)

	c.layout(window.GetWidth(), window.GetHeight())
	c.scrollTo(c.selected)

	for !c.confirmed && !c.cancelled {
		now := time.Now()
		c.layout(window.GetWidth(), window.GetHeight())
		c.handleEvents(now)

		if dir := c.directional.Update(now); dir != internal.DirectionNone {
			c.step(dir)
		}

		c.render(renderer, window, settings.FooterHelpItems)
		window.Present()
	}

	if c.cancelled {
		return -1, ErrCancelled
	}
	return c.selected, nil
}

func pickMargin(width int32) int32 {
	return max(12, width/30)
}

// layout sizes the list for a width x height window.
func (c *pickListController) layout(width, height int32) {
	margin := pickMargin(width)
	titleHeight := int32(internal.Fonts.LargeFont.Height()) + 2*constants.DefaultTitleSpacing
	footerHeight := int32(internal.Fonts.SmallFont.Height()) + 2*footerPillPadding + margin

	c.itemHeight = max(minPickItemHeight, int32(internal.Fonts.MediumFont.Height())*2)
	c.listTop = margin + titleHeight + margin
	c.maxVisible = maxVisibleItems(height-c.listTop-footerHeight-margin, c.itemHeight)
	c.visibleStart = c.clampStart(c.visibleStart)
}

func maxVisibleItems(available, itemHeight int32) int {
	if itemHeight <= 0 {
		return 1
	}
	return max(1, int(available/itemHeight))
}

func (c *pickListController) clampStart(start int) int {
	return min(max(start, 0), max(0, len(c.items)-c.maxVisible))
}

// scrollTo brings index into view with some context rows above it.
func (c *pickListController) scrollTo(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	if index >= c.visibleStart && index < c.visibleStart+c.maxVisible {
		return
	}
	contextItems := max(1, c.maxVisible/4)
	c.visibleStart = c.clampStart(index - contextItems)
}

// moveSelection moves the selection by delta rows, wrapping at both ends.
func (c *pickListController) moveSelection(delta int) {
	n := len(c.items)
	if n == 0 {
		return
	}
	c.selected = ((c.selected+delta)%n + n) % n
	c.scrollTo(c.selected)
}

// page moves a screenful without wrapping.
func (c *pickListController) page(direction int) {
	c.selected = min(max(c.selected+direction*c.maxVisible, 0), len(c.items)-1)
	c.scrollTo(c.selected)
}

// itemAt returns the index of the row under y, or -1.
func (c *pickListController) itemAt(y int32) int {
	if y < c.listTop || c.itemHeight <= 0 {
		return -1
	}
	row := int((y - c.listTop) / c.itemHeight)
	if row >= c.maxVisible {
		return -1
	}
	index := c.visibleStart + row
	if index >= len(c.items) {
		return -1
	}
	return index
}

func (c *pickListController) step(dir internal.Direction) {
	switch dir {
	case internal.DirectionUp:
		c.moveSelection(-1)
	case internal.DirectionDown:
		c.moveSelection(1)
	case internal.DirectionLeft:
		c.page(-1)
	case internal.DirectionRight:
		c.page(1)
	}
}

func (c *pickListController) handleEvents(now time.Time) {
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
		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				c.pointerDown(e.Y)
			} else {
				c.pointerUp(e.Y)
			}

		case *sdl.MouseMotionEvent:
			c.pointerMove(e.Y)

		case *sdl.MouseWheelEvent:
			dy := e.Y
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dy = -dy
			}
			c.visibleStart = c.clampStart(c.visibleStart - int(dy))

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent, *sdl.ControllerDeviceEvent:
			inputEvent := processor.ProcessSDLEvent(event)
			if inputEvent == nil {
				continue
			}
			c.handleInputEvent(inputEvent, now)
		}

		if c.confirmed || c.cancelled {
			return
		}
	}
}

func (c *pickListController) handleInputEvent(inputEvent *internal.Event, now time.Time) {
	if !inputEvent.Pressed {
		c.directional.SetHeld(inputEvent.Button, false, now)
		return
	}
	if inputEvent.Repeat {
		return
	}

	switch inputEvent.Button {
	case constants.VirtualButtonUp, constants.VirtualButtonDown,
		constants.VirtualButtonLeft, constants.VirtualButtonRight:
		c.directional.SetHeld(inputEvent.Button, true, now)
		c.step(internal.DirectionOf(inputEvent.Button))
	case constants.VirtualButtonL1:
		c.page(-1)
	case constants.VirtualButtonR1:
		c.page(1)
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		c.confirmed = true
	case constants.VirtualButtonB:
		c.cancelled = true
	}
}

func (c *pickListController) pointerDown(y int32) {
	c.pressed = c.itemAt(y)
	c.dragging = y >= c.listTop
	c.dragged = false
	c.dragStartY = y
	c.dragStartVisible = c.visibleStart
}

func (c *pickListController) pointerMove(y int32) {
	if !c.dragging {
		return
	}
	dy := y - c.dragStartY
	if !c.dragged && (dy > c.itemHeight/3 || dy < -c.itemHeight/3) {
		c.dragged = true
		c.pressed = -1
	}
	if c.dragged {
		c.visibleStart = c.clampStart(c.dragStartVisible - int(dy/c.itemHeight))
	}
}

func (c *pickListController) pointerUp(y int32) {
	if !c.dragged && c.pressed >= 0 && c.itemAt(y) == c.pressed {
		c.selected = c.pressed
		c.confirmed = true
	}
	c.pressed = -1
	c.dragging = false
	c.dragged = false
}

func (c *pickListController) render(renderer *sdl.Renderer, window *internal.Window, footer []FooterHelpItem) {
	theme := internal.GetTheme()
	window.RenderBackground()

	width := window.GetWidth()
	margin := pickMargin(width)
	font := internal.Fonts.MediumFont

	if c.title != "" {
		title := internal.TruncateText(c.title, width-2*margin, internal.Measurer(internal.Fonts.LargeFont))
		internal.DrawText(renderer, internal.Fonts.LargeFont, title, margin, margin, theme.TextColor, constants.TextAlignLeft)
	}

	measure := internal.Measurer(font)
	textWidth := width - 4*margin
	lineHeight := int32(font.Height())

	for row := 0; row < c.maxVisible; row++ {
		index := c.visibleStart + row
		if index >= len(c.items) {
			break
		}

		y := c.listTop + int32(row)*c.itemHeight
		textColor := theme.TextColor
		if index == c.selected || index == c.pressed {
			rect := sdl.Rect{X: margin, Y: y + 2, W: width - 2*margin, H: c.itemHeight - 4}
			internal.FillRoundedRect(renderer, rect, rect.H/2, theme.AccentColor)
			textColor = theme.ButtonLabelColor
		}

		label := internal.TruncateText(c.items[index], textWidth, measure)
		internal.DrawText(renderer, font, label, 2*margin, y+(c.itemHeight-lineHeight)/2, textColor, constants.TextAlignLeft)
	}

	c.renderScrollbar(renderer, width-margin/2, theme.IdleColor)
	renderFooter(renderer, internal.Fonts.SmallFont, footer, margin, false, true)
}

func (c *pickListController) renderScrollbar(renderer *sdl.Renderer, x int32, color sdl.Color) {
	if len(c.items) <= c.maxVisible {
		return
	}
	track := int32(c.maxVisible) * c.itemHeight
	thumb := max(c.itemHeight/2, track*int32(c.maxVisible)/int32(len(c.items)))
	y := c.listTop + (track-thumb)*int32(c.visibleStart)/int32(len(c.items)-c.maxVisible)

	rect := sdl.Rect{X: x - 2, Y: y, W: 4, H: thumb}
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	renderer.FillRect(&rect)
}
