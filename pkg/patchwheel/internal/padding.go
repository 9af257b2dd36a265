package internal

import "github.com/veandco/go-sdl2/sdl"

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// SymmetricPadding creates a Padding of vertical above and below and horizontal on
// either side.
func SymmetricPadding(vertical, horizontal int32) Padding {
	return Padding{
		Top:    vertical,
		Right:  horizontal,
		Bottom: vertical,
		Left:   horizontal,
	}
}

// Inset shrinks rect by the padding. Sizes never go negative.
func (p Padding) Inset(rect sdl.Rect) sdl.Rect {
	return sdl.Rect{
		X: rect.X + p.Left,
		Y: rect.Y + p.Top,
		W: max(0, rect.W-p.Left-p.Right),
		H: max(0, rect.H-p.Top-p.Bottom),
	}
}
