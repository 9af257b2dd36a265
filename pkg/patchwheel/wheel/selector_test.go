package wheel

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestSelector(t *testing.T, n int) (*Selector, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	s := New(DefaultSettings())
	s.SetClock(clock.Now)
	s.SetViewport(480, 600)
	s.Load(labels(n))
	return s, clock
}

func labels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("patch-%02d.syx", i)
	}
	return out
}

// settleAll advances the clock one frame at a time until the animation stops.
func settleAll(t *testing.T, s *Selector, clock *fakeClock) {
	t.Helper()
	for i := 0; i < 1000 && s.IsAnimating(); i++ {
		clock.now = clock.now.Add(s.Settings().FrameDelay)
		s.Advance(clock.now)
	}
	require.False(t, s.IsAnimating(), "animation did not settle")
}

func TestLoadResetsState(t *testing.T) {
	for _, n := range []int{1, 2, 7, 40} {
		t.Run(fmt.Sprintf("%d items", n), func(t *testing.T) {
			s, clock := newTestSelector(t, n)
			s.MoveSelection(1)
			settleAll(t, s, clock)
			s.BeginDrag(100)
			s.ContinueDrag(40)

			s.Load(labels(n))

			assert.Equal(t, 0, s.Selected())
			assert.Equal(t, -1, s.Clicked())
			assert.Zero(t, s.Offset())
			assert.Zero(t, s.Target())
			assert.False(t, s.IsAnimating())
			assert.Equal(t, State{Items: labels(n), SelectedIndex: 0, ClickedIndex: -1}, s.State())
		})
	}
}

func TestLoadEmpty(t *testing.T) {
	s, _ := newTestSelector(t, 0)

	assert.Equal(t, -1, s.Selected())
	assert.False(t, s.MoveSelection(1))
	assert.False(t, s.Activate())

	s.BeginDrag(300)
	assert.Equal(t, GestureTap, s.EndDrag(301))
	assert.Equal(t, -1, s.Selected())
	assert.Equal(t, -1, s.Clicked())
}

func TestMoveSelectionRoundTrip(t *testing.T) {
	const n = 6
	for start := 0; start < n-1; start++ {
		s, clock := newTestSelector(t, n)
		s.Restore(start, -1)
		target := s.Target()

		require.True(t, s.MoveSelection(1))
		settleAll(t, s, clock)
		require.True(t, s.MoveSelection(-1))
		settleAll(t, s, clock)

		assert.Equal(t, start, s.Selected())
		assert.Equal(t, target, s.Target())
		assert.Equal(t, target, s.Offset())
	}
}

func TestMoveSelectionBoundaries(t *testing.T) {
	s, _ := newTestSelector(t, 3)
	s.Restore(2, -1)

	assert.False(t, s.MoveSelection(1))
	assert.Equal(t, 2, s.Selected())

	s.Restore(0, -1)
	assert.False(t, s.MoveSelection(-1))
	assert.Equal(t, 0, s.Selected())
	assert.False(t, s.IsAnimating())
}

func TestTickConvergesWithoutOvershoot(t *testing.T) {
	s, _ := newTestSelector(t, 10)
	s.selected = 5

	steps := 0
	for {
		s.Tick()
		steps++
		require.LessOrEqual(t, math.Abs(s.Offset()), 300.0)
		if !s.IsAnimating() {
			break
		}
		require.Less(t, steps, 100)
	}

	assert.Equal(t, -300.0, s.Offset())
	assert.Equal(t, -300.0, s.Target())
	_, pending := s.Pending()
	assert.False(t, pending)
}

func TestTickIsMonotonic(t *testing.T) {
	s, clock := newTestSelector(t, 10)
	s.MoveSelection(1)
	s.MoveSelection(1)
	s.MoveSelection(1)

	prev := s.Offset()
	for i := 0; i < 100 && s.IsAnimating(); i++ {
		clock.now = clock.now.Add(s.Settings().FrameDelay)
		s.Advance(clock.now)
		require.LessOrEqual(t, s.Offset(), prev)
		require.GreaterOrEqual(t, s.Offset(), s.Target())
		prev = s.Offset()
	}
	assert.Equal(t, -180.0, s.Offset())
}

func TestTapClassification(t *testing.T) {
	tests := []struct {
		name       string
		startY     float64
		endY       float64
		wantChosen bool
		wantIndex  int
		gesture    Gesture
	}{
		{name: "tap on centre", startY: 308, endY: 310, wantChosen: true, wantIndex: 0, gesture: GestureTap},
		{name: "tap just inside band", startY: 327, endY: 329, wantChosen: true, wantIndex: 0, gesture: GestureTap},
		{name: "tap below centre", startY: 343, endY: 345, wantChosen: false, wantIndex: 1, gesture: GestureNudge},
		{name: "tap just past band stays", startY: 333, endY: 335, wantChosen: false, wantIndex: 0, gesture: GestureNudge},
		{name: "tap two rows below", startY: 420, endY: 421, wantChosen: false, wantIndex: 2, gesture: GestureNudge},
		{name: "long drag", startY: 345, endY: 300, wantChosen: false, wantIndex: 1, gesture: GestureDrag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSelector(t, 5)
			chosen := -1
			s.OnChoose = func(index int, label string) {
				chosen = index
			}

			s.BeginDrag(tt.startY)
			s.ContinueDrag(tt.endY)
			got := s.EndDrag(tt.endY)

			assert.Equal(t, tt.gesture, got)
			assert.Equal(t, tt.wantChosen, chosen >= 0)
			assert.Equal(t, tt.wantIndex, s.Selected())
			if tt.wantChosen {
				assert.Equal(t, tt.wantIndex, chosen)
				assert.Equal(t, tt.wantIndex, s.Clicked())
			}
		})
	}
}

func TestNudgeAboveCentre(t *testing.T) {
	s, _ := newTestSelector(t, 5)
	s.Restore(2, -1)

	s.BeginDrag(255)
	assert.Equal(t, GestureNudge, s.EndDrag(255))
	assert.Equal(t, 1, s.Selected())
}

func TestNudgeClampsToBounds(t *testing.T) {
	s, _ := newTestSelector(t, 3)

	s.BeginDrag(590)
	s.EndDrag(590)
	assert.Equal(t, 2, s.Selected())

	s.BeginDrag(5)
	s.EndDrag(5)
	assert.Equal(t, 0, s.Selected())
}

func TestDragSnapsToNearestRow(t *testing.T) {
	s, clock := newTestSelector(t, 8)

	s.BeginDrag(300)
	s.ContinueDrag(200)
	s.ContinueDrag(170)
	assert.Equal(t, -130.0, s.Offset())
	assert.Equal(t, 0, s.Selected(), "dragging must not move the selection")

	assert.Equal(t, GestureDrag, s.EndDrag(170))
	assert.Equal(t, 2, s.Selected())
	assert.True(t, s.IsAnimating())

	settleAll(t, s, clock)
	assert.Equal(t, -120.0, s.Offset())
}

func TestDragPastEndClamps(t *testing.T) {
	s, clock := newTestSelector(t, 4)

	s.BeginDrag(500)
	s.ContinueDrag(-400)
	s.EndDrag(-400)

	assert.Equal(t, 3, s.Selected())
	settleAll(t, s, clock)
	assert.Equal(t, -180.0, s.Offset())
}

func TestDragPausesFrames(t *testing.T) {
	s, clock := newTestSelector(t, 8)
	s.MoveSelection(1)
	_, pending := s.Pending()
	require.True(t, pending)

	s.BeginDrag(300)
	offset := s.Offset()
	clock.now = clock.now.Add(time.Second)
	assert.False(t, s.Advance(clock.now))
	assert.Equal(t, offset, s.Offset())

	s.EndDrag(300 + 60)
	assert.True(t, s.IsAnimating())

	due, pending := s.Pending()
	require.True(t, pending)
	assert.False(t, due.Before(clock.now), "the held frame resumes from the release")

	clock.now = clock.now.Add(s.Settings().FrameDelay)
	assert.True(t, s.Advance(clock.now))
	assert.True(t, s.IsAnimating(), "one loop iteration after a long hold must not finish the settle")

	settleAll(t, s, clock)
	assert.Equal(t, -s.Settings().ItemHeight*float64(s.Selected()), s.Offset())
}

func TestMoveDuringDragResumesOnRelease(t *testing.T) {
	s, clock := newTestSelector(t, 8)
	s.BeginDrag(300)
	s.MoveSelection(1)

	_, pending := s.Pending()
	assert.False(t, pending, "no frames are queued while dragging")
	assert.True(t, s.IsAnimating())

	s.EndDrag(300)
	_, pending = s.Pending()
	assert.True(t, pending)
	settleAll(t, s, clock)
}

func TestLoadInvalidatesPendingFrame(t *testing.T) {
	s, clock := newTestSelector(t, 8)
	s.MoveSelection(1)
	s.MoveSelection(1)
	gen := s.Generation()

	s.Load(labels(3))
	assert.NotEqual(t, gen, s.Generation())

	clock.now = clock.now.Add(time.Second)
	assert.False(t, s.Advance(clock.now))
	assert.Zero(t, s.Offset())
	assert.False(t, s.IsAnimating())
}

func TestAdvanceCatchesUp(t *testing.T) {
	s, clock := newTestSelector(t, 8)
	s.MoveSelection(1)

	clock.now = clock.now.Add(time.Second)
	assert.True(t, s.Advance(clock.now))
	assert.False(t, s.IsAnimating())
	assert.Equal(t, -60.0, s.Offset())
}

func TestActivate(t *testing.T) {
	s, clock := newTestSelector(t, 4)
	var got []string
	s.OnChoose = func(index int, label string) {
		got = append(got, label)
	}

	s.MoveSelection(1)
	settleAll(t, s, clock)
	require.True(t, s.Activate())

	assert.Equal(t, []string{"patch-01.syx"}, got)
	assert.Equal(t, 1, s.Clicked())
	assert.Equal(t, 1, s.Selected())
}

func TestWheel(t *testing.T) {
	s, _ := newTestSelector(t, 4)

	assert.True(t, s.Wheel(-1))
	assert.Equal(t, 1, s.Selected())
	assert.True(t, s.Wheel(1))
	assert.Equal(t, 0, s.Selected())
	assert.False(t, s.Wheel(1))
	assert.False(t, s.Wheel(0))
}

func TestStaleSelectionIsClamped(t *testing.T) {
	s, _ := newTestSelector(t, 10)
	s.Restore(9, 9)

	s.items = s.items[:3]

	assert.NotPanics(t, func() { s.Layout(480, 600) })
	assert.True(t, s.MoveSelection(-1))
	assert.Equal(t, 1, s.Selected())
	assert.Equal(t, -1, s.Clicked())
}

func TestRestore(t *testing.T) {
	s, _ := newTestSelector(t, 5)

	s.Restore(3, 3)
	assert.Equal(t, 3, s.Selected())
	assert.Equal(t, 3, s.Clicked())
	assert.Equal(t, -180.0, s.Offset())
	assert.False(t, s.IsAnimating())

	s.Restore(12, 7)
	assert.Equal(t, 4, s.Selected())
	assert.Equal(t, -1, s.Clicked())
}

func TestCompactCentreLine(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	s := New(CompactSettings())
	s.SetClock(clock.Now)
	s.SetViewport(480, 640)
	s.Load(labels(5))

	chosen := -1
	s.OnChoose = func(index int, _ string) { chosen = index }

	// centre line is 640/2 - 150 = 170
	s.BeginDrag(175)
	s.EndDrag(176)
	assert.Equal(t, 0, chosen)
}

func TestSettingsNormalized(t *testing.T) {
	s := New(Settings{})
	got := s.Settings()

	assert.Equal(t, 60.0, got.ItemHeight)
	assert.Equal(t, 5.0, got.DragThreshold)
	assert.Equal(t, 0.4, got.Damping)
	assert.Equal(t, 30.0, got.TapBand)
	assert.Equal(t, 1.0, got.SnapDistance)
}
