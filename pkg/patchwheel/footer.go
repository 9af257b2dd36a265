package patchwheel

import (
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FooterHelpItem is a button hint shown at the bottom of a dialog.
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

const (
	footerPillPadding int32 = 6
	footerItemGap     int32 = 16
)

// footerWidths returns the pill and label widths of each item and the total width.
func footerWidths(items []FooterHelpItem, measure func(string) int32) ([][2]int32, int32) {
	widths := make([][2]int32, len(items))
	total := int32(0)
	for i, item := range items {
		pill := measure(item.ButtonName) + 2*footerPillPadding
		label := measure(item.HelpText)
		widths[i] = [2]int32{pill, label}
		total += pill + footerPillPadding + label
		if i > 0 {
			total += footerItemGap
		}
	}
	return widths, total
}

// renderFooter draws items along the bottom edge, margin pixels in. Items are centred
// when centered is set, otherwise they start at the left margin. Without
// transparentBackground a header coloured bar is drawn behind them.
func renderFooter(renderer *sdl.Renderer, font *ttf.Font, items []FooterHelpItem, margin int32, transparentBackground bool, centered bool) {
	if len(items) == 0 || font == nil {
		return
	}

	window := internal.GetWindow()
	theme := internal.GetTheme()
	lineHeight := int32(font.Height())
	barHeight := lineHeight + 2*footerPillPadding
	y := window.GetHeight() - margin - barHeight

	if !transparentBackground {
		bar := sdl.Rect{X: 0, Y: y - footerPillPadding, W: window.GetWidth(), H: window.GetHeight() - y + footerPillPadding}
		renderer.SetDrawColor(theme.HeaderColor.R, theme.HeaderColor.G, theme.HeaderColor.B, theme.HeaderColor.A)
		renderer.FillRect(&bar)
	}

	widths, total := footerWidths(items, internal.Measurer(font))
	x := margin
	if centered {
		x = max(margin, (window.GetWidth()-total)/2)
	}

	for i, item := range items {
		pill := sdl.Rect{X: x, Y: y, W: widths[i][0], H: barHeight}
		internal.FillRoundedRect(renderer, pill, barHeight/2, theme.AccentColor)
		internal.DrawTextCentered(renderer, font, item.ButtonName, pill.X+pill.W/2, pill.Y+pill.H/2, theme.ButtonLabelColor)
		x += pill.W + footerPillPadding

		internal.DrawText(renderer, font, item.HelpText, x, y+(barHeight-lineHeight)/2, theme.HintColor, constants.TextAlignLeft)
		x += widths[i][1] + footerItemGap
	}
}
