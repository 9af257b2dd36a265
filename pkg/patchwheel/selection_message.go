package patchwheel

import (
	"time"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const optionPadding int32 = 14

// SelectionMessageSettings configures the selection message component.
type SelectionMessageSettings struct {
	// Title is drawn above the message in TitleColor; empty hides it
	Title      string
	TitleColor sdl.Color
	// ConfirmButton is the button used to confirm the selection (default: VirtualButtonA)
	ConfirmButton constants.VirtualButton
	// BackButton is the button used to go back/cancel (default: VirtualButtonB)
	BackButton constants.VirtualButton
	// DisableBackButton disables cancelling; the back button then does nothing
	DisableBackButton bool
	// InitialSelection is the index of the initially selected option (default: 0)
	InitialSelection int
}

// SelectionMessageResult represents the result of a selection message.
type SelectionMessageResult struct {
	SelectedIndex int
	SelectedValue any
}

// SelectionOption is a button of the selection message.
type SelectionOption struct {
	DisplayName string
	Value       any
}

type selectionMessageController struct {
	title           string
	titleColor      sdl.Color
	message         string
	options         []SelectionOption
	optionRects     []sdl.Rect
	selectedIndex   int
	pressedIndex    int
	confirmButton   constants.VirtualButton
	backButton      constants.VirtualButton
	disableBack     bool
	footerHelpItems []FooterHelpItem
	inputDelay      time.Duration
	lastInputTime   time.Time
	confirmed       bool
	cancelled       bool
}

func newSelectionMessageController(message string, options []SelectionOption, footerHelpItems []FooterHelpItem, settings SelectionMessageSettings) *selectionMessageController {
	c := &selectionMessageController{
		title:           settings.Title,
		titleColor:      settings.TitleColor,
		message:         message,
		options:         options,
		selectedIndex:   settings.InitialSelection,
		pressedIndex:    -1,
		confirmButton:   settings.ConfirmButton,
		backButton:      settings.BackButton,
		disableBack:     settings.DisableBackButton,
		footerHelpItems: footerHelpItems,
		inputDelay:      constants.DefaultInputDelay,
		lastInputTime:   time.Now(),
	}

	if c.confirmButton == constants.VirtualButtonUnassigned {
		c.confirmButton = constants.VirtualButtonA
	}
	if c.backButton == constants.VirtualButtonUnassigned {
		c.backButton = constants.VirtualButtonB
	}
	if c.selectedIndex < 0 || c.selectedIndex >= len(options) {
		c.selectedIndex = 0
	}
	return c
}

// SelectionMessage displays a message with a row of option buttons. The user moves
// between them with left/right and confirms with the confirm button, or taps one.
// Returns ErrCancelled if the user presses the back button.
func SelectionMessage(message string, options []SelectionOption, footerHelpItems []FooterHelpItem, settings SelectionMessageSettings) (*SelectionMessageResult, error) {
	if len(options) == 0 {
		return nil, ErrCancelled
	}

	window := internal.GetWindow()
	renderer := window.Renderer
	controller := newSelectionMessageController(message, options, footerHelpItems, settings)

	for !controller.confirmed && !controller.cancelled {
		controller.handleEvents(time.Now())
		controller.render(renderer, window)
		window.Present()
	}

	if controller.cancelled {
		return nil, ErrCancelled
	}

	return &SelectionMessageResult{
		SelectedIndex: controller.selectedIndex,
		SelectedValue: controller.options[controller.selectedIndex].Value,
	}, nil
}

// Confirm asks a yes/no question. No is selected first.
func Confirm(title, message, yes, no string) (bool, error) {
	result, err := SelectionMessage(message, []SelectionOption{
		{DisplayName: yes, Value: true},
		{DisplayName: no, Value: false},
	}, nil, SelectionMessageSettings{
		Title:            title,
		TitleColor:       internal.GetTheme().TextColor,
		InitialSelection: 1,
	})
	if err != nil {
		return false, err
	}
	return result.SelectedValue.(bool), nil
}

// Notice shows a message with a single dismiss button. Any confirm or back press
// closes it.
func Notice(title, message, ok string, titleColor sdl.Color) {
	_, _ = SelectionMessage(message, []SelectionOption{{DisplayName: ok}}, nil, SelectionMessageSettings{
		Title:      title,
		TitleColor: titleColor,
	})
}

func (c *selectionMessageController) handleEvents(now time.Time) {
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
			hit := c.optionAt(e.X, e.Y)
			if e.Type == sdl.MOUSEBUTTONDOWN {
				c.pressedIndex = hit
				continue
			}
			if hit >= 0 && hit == c.pressedIndex {
				c.selectedIndex = hit
				c.confirmed = true
			}
			c.pressedIndex = -1

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent, *sdl.ControllerDeviceEvent:
			inputEvent := processor.ProcessSDLEvent(event)
			if inputEvent == nil || !inputEvent.Pressed {
				continue
			}

			if now.Sub(c.lastInputTime) < c.inputDelay {
				continue
			}
			c.lastInputTime = now
			c.handleButton(inputEvent.Button)
		}

		if c.confirmed || c.cancelled {
			return
		}
	}
}

func (c *selectionMessageController) handleButton(button constants.VirtualButton) {
	switch button {
	case constants.VirtualButtonLeft:
		c.navigateLeft()
	case constants.VirtualButtonRight:
		c.navigateRight()
	case c.confirmButton, constants.VirtualButtonStart:
		c.confirmed = true
	case c.backButton:
		if c.disableBack {
			return
		}
		if len(c.options) == 1 {
			c.confirmed = true
		} else {
			c.cancelled = true
		}
	}
}

func (c *selectionMessageController) navigateLeft() {
	c.selectedIndex--
	if c.selectedIndex < 0 {
		c.selectedIndex = len(c.options) - 1
	}
}

func (c *selectionMessageController) navigateRight() {
	c.selectedIndex++
	if c.selectedIndex >= len(c.options) {
		c.selectedIndex = 0
	}
}

func (c *selectionMessageController) optionAt(x, y int32) int {
	for i, r := range c.optionRects {
		if internal.Contains(r, x, y) {
			return i
		}
	}
	return -1
}

func (c *selectionMessageController) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()
	window.RenderBackground()

	windowWidth := window.GetWidth()
	windowHeight := window.GetHeight()

	titleFont := internal.Fonts.LargeFont
	messageFont := internal.Fonts.SmallFont
	optionFont := internal.Fonts.MediumFont

	maxMessageWidth := min(windowWidth*3/4, 800)

	titleHeight := int32(0)
	if c.title != "" {
		titleHeight = int32(titleFont.Height()) + constants.DefaultTitleSpacing*4
	}
	lines := internal.WrapText(c.message, maxMessageWidth, internal.Measurer(messageFont))
	messageHeight := internal.MultilineHeight(len(lines), int32(messageFont.Height()))
	optionHeight := int32(optionFont.Height()) + 2*optionPadding
	spacing := int32(30)
	totalHeight := titleHeight + messageHeight + spacing + optionHeight

	startY := max(0, (windowHeight-totalHeight)/2)
	centerX := windowWidth / 2

	if c.title != "" {
		internal.DrawText(renderer, titleFont, c.title, centerX, startY, c.titleColor, constants.TextAlignCenter)
	}

	internal.RenderMultilineText(
		renderer,
		c.message,
		messageFont,
		maxMessageWidth,
		centerX,
		startY+titleHeight,
		theme.TextColor,
		constants.TextAlignCenter,
	)

	optionY := startY + titleHeight + messageHeight + spacing
	c.renderOptions(renderer, centerX, optionY, optionFont)

	renderFooter(renderer, internal.Fonts.SmallFont, c.footerHelpItems, 20, false, true)
}

// optionLayout places the option buttons side by side, centred on centerX.
func optionLayout(widths []int32, centerX, y, height, gap int32) []sdl.Rect {
	total := int32(0)
	for i, w := range widths {
		total += w + 2*optionPadding
		if i > 0 {
			total += gap
		}
	}

	rects := make([]sdl.Rect, len(widths))
	x := centerX - total/2
	for i, w := range widths {
		rects[i] = sdl.Rect{X: x, Y: y, W: w + 2*optionPadding, H: height}
		x += rects[i].W + gap
	}
	return rects
}

func (c *selectionMessageController) renderOptions(renderer *sdl.Renderer, centerX, y int32, font *ttf.Font) {
	theme := internal.GetTheme()
	measure := internal.Measurer(font)

	widths := make([]int32, len(c.options))
	minWidth := int32(0)
	for i, opt := range c.options {
		widths[i] = measure(opt.DisplayName)
		minWidth = max(minWidth, widths[i])
	}
	for i := range widths {
		widths[i] = max(widths[i], minWidth)
	}

	height := int32(font.Height()) + 2*optionPadding
	c.optionRects = optionLayout(widths, centerX, y, height, 24)

	for i, opt := range c.options {
		rect := c.optionRects[i]
		fill, label := theme.HeaderColor, theme.TextColor
		if i == c.selectedIndex || i == c.pressedIndex {
			fill, label = theme.AccentColor, theme.ButtonLabelColor
		}
		internal.FillRoundedRect(renderer, rect, height/2, fill)
		internal.DrawTextCentered(renderer, font, opt.DisplayName, rect.X+rect.W/2, rect.Y+rect.H/2, label)
	}
}
