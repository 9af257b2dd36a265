package wheel

import "math"

// Placement is where and how one row is drawn.
type Placement struct {
	Index  int    // Item index, -1 for the empty-list placeholder
	Label  string // Text to draw
	X      float64
	Y      float64 // Baseline row centre
	Size   float64 // Font size, largest on the centre line
	Bold   bool    // Row is selected
	Active bool    // Row was the last one activated
}

// CenterLine returns the y coordinate rows settle on for a canvas of the given height.
func (s *Selector) CenterLine(height float64) float64 {
	return height/2 + s.settings.CenterOffset
}

// Layout places every row that falls inside a width x height canvas. It does not
// modify the Selector.
func (s *Selector) Layout(width, height float64) []Placement {
	center := s.CenterLine(height)
	x := width / 2

	if len(s.items) == 0 {
		return []Placement{{
			Index: -1,
			Label: s.Placeholder,
			X:     x,
			Y:     center,
			Size:  s.settings.MaxFontSize,
			Bold:  true,
		}}
	}

	selected := clampIndex(s.selected, len(s.items))
	half := math.Max(1, height/2)

	placements := make([]Placement, 0, int(height/s.settings.ItemHeight)+2)
	for i, label := range s.items {
		y := float64(i)*s.settings.ItemHeight + center + s.offsetY
		if y < 0 || y > height {
			continue
		}

		weight := 1 - math.Min(math.Abs(y-center)/half, 1)
		placements = append(placements, Placement{
			Index:  i,
			Label:  label,
			X:      x,
			Y:      y,
			Size:   s.settings.BaseFontSize + (s.settings.MaxFontSize-s.settings.BaseFontSize)*weight,
			Bold:   i == selected,
			Active: i == s.clicked,
		})
	}
	return placements
}
