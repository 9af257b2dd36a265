package wheel

import (
	"math"
	"time"
)

// Gesture classifies a pointer release.
type Gesture int

const (
	GestureNone  Gesture = iota // Release without a drag in progress
	GestureTap                  // Short tap on the centre band, activates the nearest row
	GestureNudge                // Short tap away from the centre, moves the selection toward it
	GestureDrag                 // Real drag, selection snaps to the row nearest the centre
)

func (g Gesture) String() string {
	switch g {
	case GestureTap:
		return "tap"
	case GestureNudge:
		return "nudge"
	case GestureDrag:
		return "drag"
	default:
		return "none"
	}
}

// DefaultPlaceholder is the label shown when the list is empty.
const DefaultPlaceholder = "Empty Folder"

// State is a snapshot of a Selector's list state.
type State struct {
	Items         []string
	SelectedIndex int // -1 when Items is empty
	ClickedIndex  int // -1 when nothing has been activated since the last Load
	OffsetY       float64
	TargetOffsetY float64
	Dragging      bool
	Animating     bool
}

// Selector is the scrollable selection list. It is not safe for concurrent use; all calls
// must come from the goroutine running the UI loop.
type Selector struct {
	// OnChoose is called when a row is activated by a tap or by Activate.
	OnChoose func(index int, label string)

	// Placeholder is the label laid out when there are no items.
	Placeholder string

	settings Settings
	items    []string

	selected int
	clicked  int

	offsetY       float64
	targetOffsetY float64

	dragging   bool
	animating  bool
	dragStartY float64
	lastY      float64

	width  float64
	height float64

	generation uint64
	next       frame
	now        func() time.Time
}

// New creates an empty Selector. Zero-valued settings fall back to DefaultSettings.
func New(settings Settings) *Selector {
	return &Selector{
		Placeholder: DefaultPlaceholder,
		settings:    settings.normalized(),
		clicked:     -1,
		now:         time.Now,
	}
}

// Settings returns the effective settings.
func (s *Selector) Settings() Settings {
	return s.settings
}

// SetClock replaces the time source used to schedule settle frames.
func (s *Selector) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	s.now = now
}

// SetViewport records the canvas size; the centre line used to classify releases
// depends on it.
func (s *Selector) SetViewport(width, height float64) {
	s.width = width
	s.height = height
}

// Load replaces the items wholesale and resets selection and offset. Any settle
// frame scheduled for the previous items is invalidated.
func (s *Selector) Load(items []string) {
	s.items = append([]string(nil), items...)
	s.selected = 0
	s.clicked = -1
	s.offsetY = 0
	s.targetOffsetY = 0
	s.animating = false
	s.dragging = false
	s.generation++
	s.next = frame{}
}

// Len returns the number of items.
func (s *Selector) Len() int {
	return len(s.items)
}

// Selected returns the selected index, or -1 when the list is empty.
func (s *Selector) Selected() int {
	if len(s.items) == 0 {
		return -1
	}
	return s.selected
}

// Clicked returns the most recently activated index, or -1.
func (s *Selector) Clicked() int {
	return s.clicked
}

// Label returns the label at index.
func (s *Selector) Label(index int) (string, bool) {
	if index < 0 || index >= len(s.items) {
		return "", false
	}
	return s.items[index], true
}

// Offset returns the current scroll offset.
func (s *Selector) Offset() float64 {
	return s.offsetY
}

// Target returns the offset the list is settling toward.
func (s *Selector) Target() float64 {
	return s.targetOffsetY
}

// IsDragging reports whether a pointer drag is in progress.
func (s *Selector) IsDragging() bool {
	return s.dragging
}

// IsAnimating reports whether a settle sequence is running.
func (s *Selector) IsAnimating() bool {
	return s.animating
}

// Generation changes on every Load.
func (s *Selector) Generation() uint64 {
	return s.generation
}

// State returns a copy of the current list state.
func (s *Selector) State() State {
	return State{
		Items:         append([]string(nil), s.items...),
		SelectedIndex: s.Selected(),
		ClickedIndex:  s.clicked,
		OffsetY:       s.offsetY,
		TargetOffsetY: s.targetOffsetY,
		Dragging:      s.dragging,
		Animating:     s.animating,
	}
}

// MoveSelection moves the selection by delta rows and starts settling. Moves that would
// leave the list are ignored. Reports whether the selection changed.
func (s *Selector) MoveSelection(delta int) bool {
	s.clamp()
	next := s.selected + delta
	if delta == 0 || next < 0 || next >= len(s.items) {
		return false
	}
	s.selected = next
	s.targetOffsetY = s.restingOffset()
	s.settle()
	return true
}

// Wheel maps a mouse wheel movement to a single row move. Positive values scroll up.
func (s *Selector) Wheel(dy int) bool {
	switch {
	case dy > 0:
		return s.MoveSelection(-1)
	case dy < 0:
		return s.MoveSelection(1)
	}
	return false
}

// Restore jumps to a remembered position without animating. Both indices are clamped;
// a clicked index outside the list is dropped.
func (s *Selector) Restore(selected, clicked int) {
	s.selected = selected
	s.clicked = clicked
	s.clamp()
	s.targetOffsetY = s.restingOffset()
	s.offsetY = s.targetOffsetY
	s.animating = false
	s.next = frame{}
}

// Activate marks the selected row as clicked and emits it. Reports false on an empty list.
func (s *Selector) Activate() bool {
	s.clamp()
	if len(s.items) == 0 {
		return false
	}
	s.clicked = s.selected
	s.settle()
	s.emit()
	return true
}

// BeginDrag starts tracking a pointer at y.
func (s *Selector) BeginDrag(y float64) {
	s.dragging = true
	s.dragStartY = y
	s.lastY = y
}

// ContinueDrag moves the list by the pointer's travel since the last call.
func (s *Selector) ContinueDrag(y float64) {
	if !s.dragging {
		return
	}
	s.offsetY += y - s.lastY
	s.lastY = y
}

// EndDrag finishes a drag at y, classifies it, updates the selection and starts settling.
func (s *Selector) EndDrag(y float64) Gesture {
	if !s.dragging {
		return GestureNone
	}
	s.dragging = false

	deltaY := y - s.dragStartY
	fromCenter := y - s.centerLine()
	short := math.Abs(deltaY) < s.settings.DragThreshold

	var gesture Gesture
	switch {
	case short && math.Abs(fromCenter) < s.settings.TapBand:
		gesture = GestureTap
		s.selected = s.nearestToCenter()
		s.clicked = s.selected
	case short:
		gesture = GestureNudge
		rows := math.Floor((fromCenter + s.settings.ItemHeight/3) / s.settings.ItemHeight)
		s.selected += int(rows)
	default:
		gesture = GestureDrag
		s.selected = s.nearestToCenter()
	}

	s.clamp()
	s.settle()

	if gesture == GestureTap {
		s.emit()
	}
	return gesture
}

func (s *Selector) emit() {
	if s.OnChoose == nil || len(s.items) == 0 || s.clicked < 0 {
		return
	}
	s.OnChoose(s.clicked, s.items[s.clicked])
}

func (s *Selector) centerLine() float64 {
	return s.height/2 + s.settings.CenterOffset
}

func (s *Selector) restingOffset() float64 {
	if len(s.items) == 0 {
		return 0
	}
	return -float64(s.selected) * s.settings.ItemHeight
}

// nearestToCenter returns the row closest to the centre line for the current offset.
// Ties go to the lower index.
func (s *Selector) nearestToCenter() int {
	if len(s.items) == 0 {
		return 0
	}
	index := int(math.Ceil(-s.offsetY/s.settings.ItemHeight - 0.5))
	return clampIndex(index, len(s.items))
}

func (s *Selector) clamp() {
	s.selected = clampIndex(s.selected, len(s.items))
	if s.clicked >= len(s.items) || s.clicked < -1 {
		s.clicked = -1
	}
}

func clampIndex(index, n int) int {
	if n == 0 || index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}
