// Package wheel implements the inertial selection list at the centre of the browser.
//
// A Selector owns an ordered set of labels, a selection index and a continuous vertical
// offset. Pointer drags move the offset 1:1; releases are classified as taps or drags and
// the list then settles so that the selected row sits on the centre line. Settling is a
// fixed-point iteration driven one frame at a time by the host event loop.
//
// The package has no SDL dependency; the presentation layer feeds it pointer and key
// events, polls Advance once per loop iteration and draws whatever Layout returns.
package wheel

import "time"

// Settings holds the numeric knobs of a Selector. They are fixed for the life of a screen.
type Settings struct {
	ItemHeight    float64       // Pixel spacing between consecutive rows
	DragThreshold float64       // Max pointer travel that still counts as a tap
	Damping       float64       // Fraction of the remaining distance covered per frame
	BaseFontSize  float64       // Font size at or beyond half the canvas height from centre
	MaxFontSize   float64       // Font size on the centre line
	FrameDelay    time.Duration // Delay between settle frames
	CenterOffset  float64       // Shift of the centre line from the canvas middle
	TapBand       float64       // Half-height of the band around the centre line that activates on tap (0 = ItemHeight/2)
	SnapDistance  float64       // Steps at or below this size snap straight to the target
}

// DefaultSettings returns the settings of the full-size layout.
func DefaultSettings() Settings {
	return Settings{
		ItemHeight:    60,
		DragThreshold: 5,
		Damping:       0.4,
		BaseFontSize:  5,
		MaxFontSize:   30,
		FrameDelay:    3 * time.Millisecond,
		SnapDistance:  1,
	}
}

// CompactSettings returns the settings of the portrait layout where the toolbar pushes the
// centre line up.
func CompactSettings() Settings {
	s := DefaultSettings()
	s.ItemHeight = 45
	s.MaxFontSize = 20
	s.FrameDelay = 2 * time.Millisecond
	s.CenterOffset = -150
	return s
}

func (s Settings) normalized() Settings {
	d := DefaultSettings()
	if s.ItemHeight <= 0 {
		s.ItemHeight = d.ItemHeight
	}
	if s.DragThreshold <= 0 {
		s.DragThreshold = d.DragThreshold
	}
	if s.Damping <= 0 || s.Damping > 1 {
		s.Damping = d.Damping
	}
	if s.MaxFontSize < s.BaseFontSize {
		s.MaxFontSize = s.BaseFontSize
	}
	if s.FrameDelay < 0 {
		s.FrameDelay = 0
	}
	if s.TapBand <= 0 {
		s.TapBand = s.ItemHeight / 2
	}
	if s.SnapDistance <= 0 {
		s.SnapDistance = d.SnapDistance
	}
	return s
}
