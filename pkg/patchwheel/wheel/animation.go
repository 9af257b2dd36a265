package wheel

import (
	"math"
	"time"
)

// maxCatchUpFrames bounds the frames run by a single Advance after a slow loop iteration.
const maxCatchUpFrames = 64

// frame is the single pending settle step. It belongs to the list generation that
// scheduled it and is dropped if the list has been replaced since.
type frame struct {
	due        time.Time
	generation uint64
	pending    bool
}

// settle starts a settle sequence, or resumes one that a drag paused. A sequence that
// already has a frame queued picks up the new target on its own; an overdue frame is
// moved to now so a held drag does not replay as catch-up frames.
func (s *Selector) settle() {
	if s.animating && s.hasFrame() {
		if now := s.now(); s.next.due.Before(now) {
			s.next.due = now
		}
		return
	}
	s.step(s.now())
}

// Tick advances the settle animation by one frame.
func (s *Selector) Tick() {
	s.step(s.now())
}

func (s *Selector) step(at time.Time) {
	s.next = frame{}
	s.targetOffsetY = s.restingOffset()

	delta := (s.targetOffsetY - s.offsetY) * s.settings.Damping
	if math.Abs(delta) > s.settings.SnapDistance {
		s.offsetY += delta
		s.animating = true
		if !s.dragging {
			s.schedule(at)
		}
		return
	}

	s.offsetY = s.targetOffsetY
	s.animating = false
}

func (s *Selector) schedule(from time.Time) {
	s.next = frame{
		due:        from.Add(s.settings.FrameDelay),
		generation: s.generation,
		pending:    true,
	}
}

func (s *Selector) hasFrame() bool {
	return s.next.pending && s.next.generation == s.generation
}

// Pending returns when the next settle frame is due.
func (s *Selector) Pending() (time.Time, bool) {
	if !s.hasFrame() {
		return time.Time{}, false
	}
	return s.next.due, true
}

// Advance runs every settle frame that is due at now. The host loop calls it once per
// iteration; it reports whether the offset changed and the list needs redrawing.
// Frames are held back while a drag is in progress and resume when it ends.
func (s *Selector) Advance(now time.Time) bool {
	if s.next.pending && s.next.generation != s.generation {
		s.next = frame{}
	}

	changed := false
	for i := 0; i < maxCatchUpFrames; i++ {
		if !s.hasFrame() || s.dragging || now.Before(s.next.due) {
			break
		}
		s.step(s.next.due)
		changed = true
	}
	return changed
}
