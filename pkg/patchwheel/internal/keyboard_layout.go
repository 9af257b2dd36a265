package internal

import "github.com/veandco/go-sdl2/sdl"

// KeyboardDimensions holds the on-screen keyboard areas for one window size.
type KeyboardDimensions struct {
	WindowWidth   int32
	WindowHeight  int32
	Margin        int32
	TextInputRect sdl.Rect
	KeyboardRect  sdl.Rect
}

// CalculateKeyboardDimensions places the keyboard along the bottom edge with the text
// field above it. Portrait screens give the keyboard two fifths of the height,
// landscape screens half.
func CalculateKeyboardDimensions(windowWidth, windowHeight int32) KeyboardDimensions {
	margin := max(4, windowWidth/40)

	keyboardHeight := windowHeight / 2
	if windowHeight > windowWidth {
		keyboardHeight = windowHeight * 2 / 5
	}
	textInputHeight := max(32, windowHeight/12)

	keyboard := sdl.Rect{
		X: margin,
		Y: windowHeight - keyboardHeight - margin,
		W: windowWidth - 2*margin,
		H: keyboardHeight,
	}
	textInput := sdl.Rect{
		X: margin,
		Y: keyboard.Y - textInputHeight - 2*margin,
		W: keyboard.W,
		H: textInputHeight,
	}

	return KeyboardDimensions{
		WindowWidth:   windowWidth,
		WindowHeight:  windowHeight,
		Margin:        margin,
		TextInputRect: textInput,
		KeyboardRect:  keyboard,
	}
}

// KeySpec is one key of a layout row. Span is its width in key units; 0 means 1.
type KeySpec struct {
	Label string
	Span  int
}

func (k KeySpec) span() int {
	return max(1, k.Span)
}

// RowUnits returns the width of a row in key units.
func RowUnits(row []KeySpec) int {
	units := 0
	for _, k := range row {
		units += k.span()
	}
	return units
}

// LayoutKeys positions rows of keys inside area. Every key unit has the same width,
// sized so the widest row fills area; narrower rows are centred.
func LayoutKeys(area sdl.Rect, rows [][]KeySpec, spacing int32) [][]sdl.Rect {
	if len(rows) == 0 {
		return nil
	}

	maxUnits := 0
	for _, row := range rows {
		maxUnits = max(maxUnits, RowUnits(row))
	}
	if maxUnits == 0 {
		return make([][]sdl.Rect, len(rows))
	}

	unit := (area.W - spacing*int32(maxUnits-1)) / int32(maxUnits)
	keyHeight := (area.H - spacing*int32(len(rows)-1)) / int32(len(rows))

	rects := make([][]sdl.Rect, len(rows))
	y := area.Y
	for r, row := range rows {
		units := int32(RowUnits(row))
		rowWidth := units*unit + max(0, units-1)*spacing
		x := area.X + (area.W-rowWidth)/2

		rects[r] = make([]sdl.Rect, len(row))
		for c, key := range row {
			span := int32(key.span())
			w := span*unit + (span-1)*spacing
			rects[r][c] = sdl.Rect{X: x, Y: y, W: w, H: keyHeight}
			x += w + spacing
		}
		y += keyHeight + spacing
	}
	return rects
}

// KeyAt returns the row and column of the key containing (x, y).
func KeyAt(rects [][]sdl.Rect, x, y int32) (int, int, bool) {
	for r, row := range rects {
		for c, rect := range row {
			if Contains(rect, x, y) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
