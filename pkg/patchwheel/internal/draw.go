package internal

import (
	"strings"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const ellipsis = "…"

func renderText(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (TextTexture, error) {
	if text == "" {
		text = " "
	}
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return TextTexture{}, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return TextTexture{}, err
	}
	return TextTexture{Texture: texture, W: surface.W, H: surface.H}, nil
}

// DrawText draws one line of text. x is the left edge, centre or right edge depending
// on align; y is the top. It returns the drawn width and height.
func DrawText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color, align constants.TextAlign) (int32, int32) {
	t, err := renderText(renderer, font, text, color)
	if err != nil {
		GetInternalLogger().Debug("Failed to render text", "text", text, "error", err)
		return 0, 0
	}
	defer t.Texture.Destroy()

	renderer.Copy(t.Texture, nil, &sdl.Rect{X: alignX(x, t.W, align), Y: y, W: t.W, H: t.H})
	return t.W, t.H
}

// DrawTextCentered draws one line centred on (cx, cy).
func DrawTextCentered(renderer *sdl.Renderer, font *ttf.Font, text string, cx, cy int32, color sdl.Color) {
	_, h := MeasureText(font, text)
	DrawText(renderer, font, text, cx, cy-h/2, color, constants.TextAlignCenter)
}

// DrawCachedCentered draws a cached label centred on (cx, cy).
func DrawCachedCentered(renderer *sdl.Renderer, t TextTexture, cx, cy int32) {
	renderer.Copy(t.Texture, nil, &sdl.Rect{X: cx - t.W/2, Y: cy - t.H/2, W: t.W, H: t.H})
}

func alignX(x, w int32, align constants.TextAlign) int32 {
	switch align {
	case constants.TextAlignCenter:
		return x - w/2
	case constants.TextAlignRight:
		return x - w
	default:
		return x
	}
}

// MeasureText returns the pixel size of text in font.
func MeasureText(font *ttf.Font, text string) (int32, int32) {
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, int32(font.Height())
	}
	return int32(w), int32(h)
}

// Measurer returns a width function for WrapText and TruncateText.
func Measurer(font *ttf.Font) func(string) int32 {
	return func(s string) int32 {
		w, _ := MeasureText(font, s)
		return w
	}
}

// WrapText breaks text into lines no wider than maxWidth. Explicit newlines are kept,
// and a single word wider than maxWidth gets a line of its own.
func WrapText(text string, maxWidth int32, measure func(string) int32) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if measure(candidate) > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}

// TruncateText shortens text with an ellipsis until it fits maxWidth.
func TruncateText(text string, maxWidth int32, measure func(string) int32) string {
	if measure(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		candidate := string(runes[:n]) + ellipsis
		if measure(candidate) <= maxWidth {
			return candidate
		}
	}
	return ellipsis
}

// RenderMultilineText draws wrapped text starting at y and returns the height used.
func RenderMultilineText(renderer *sdl.Renderer, text string, font *ttf.Font, maxWidth, x, y int32, color sdl.Color, align constants.TextAlign) int32 {
	lines := WrapText(text, maxWidth, Measurer(font))
	lineHeight := int32(font.Height())
	spacing := lineHeight / 5

	cy := y
	for _, line := range lines {
		if line != "" {
			DrawText(renderer, font, line, x, cy, color, align)
		}
		cy += lineHeight + spacing
	}
	return MultilineHeight(len(lines), lineHeight)
}

// MultilineHeight is the height RenderMultilineText uses for n lines.
func MultilineHeight(n int, lineHeight int32) int32 {
	if n == 0 {
		return 0
	}
	spacing := lineHeight / 5
	return int32(n)*lineHeight + int32(n-1)*spacing
}

// FillRoundedRect fills rect with rounded corners of the given radius.
func FillRoundedRect(renderer *sdl.Renderer, rect sdl.Rect, radius int32, color sdl.Color) {
	radius = min(radius, rect.W/2, rect.H/2)
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)

	if radius <= 0 {
		renderer.FillRect(&rect)
		return
	}

	renderer.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y + radius, W: rect.W, H: rect.H - 2*radius})
	for dy := int32(0); dy < radius; dy++ {
		inset := cornerInset(radius, dy)
		top := sdl.Rect{X: rect.X + inset, Y: rect.Y + dy, W: rect.W - 2*inset, H: 1}
		bottom := sdl.Rect{X: rect.X + inset, Y: rect.Y + rect.H - 1 - dy, W: rect.W - 2*inset, H: 1}
		renderer.FillRect(&top)
		renderer.FillRect(&bottom)
	}
}

// cornerInset is how far row dy of a rounded corner starts from the straight edge.
func cornerInset(radius, dy int32) int32 {
	y := radius - dy
	x := radius
	for x > 0 && x*x+y*y > radius*radius {
		x--
	}
	return radius - x
}

// OutlineRect draws a rectangle border thickness pixels wide inside rect.
func OutlineRect(renderer *sdl.Renderer, rect sdl.Rect, thickness int32, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	for i := int32(0); i < thickness; i++ {
		r := sdl.Rect{X: rect.X + i, Y: rect.Y + i, W: rect.W - 2*i, H: rect.H - 2*i}
		if r.W <= 0 || r.H <= 0 {
			return
		}
		renderer.DrawRect(&r)
	}
}

// HorizontalLine draws a line across [x1, x2] at y.
func HorizontalLine(renderer *sdl.Renderer, x1, x2, y int32, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	renderer.DrawLine(x1, y, x2, y)
}

// Contains reports whether (x, y) lies inside rect.
func Contains(rect sdl.Rect, x, y int32) bool {
	return x >= rect.X && x < rect.X+rect.W && y >= rect.Y && y < rect.Y+rect.H
}
