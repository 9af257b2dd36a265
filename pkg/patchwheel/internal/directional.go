package internal

import (
	"time"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
)

// Direction represents a cardinal direction for navigation.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// DirectionalInput tracks held directions and handles repeat timing, so holding the
// d-pad keeps stepping the wheel or a list.
type DirectionalInput struct {
	held           [DirectionRight + 1]bool
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalInput creates a DirectionalInput with default timing.
// Default delay is 300ms before first repeat, then 80ms between repeats.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 80*time.Millisecond)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
	}
}

// DirectionOf returns the direction of a d-pad button, or DirectionNone.
func DirectionOf(button constants.VirtualButton) Direction {
	switch button {
	case constants.VirtualButtonUp:
		return DirectionUp
	case constants.VirtualButtonDown:
		return DirectionDown
	case constants.VirtualButtonLeft:
		return DirectionLeft
	case constants.VirtualButtonRight:
		return DirectionRight
	}
	return DirectionNone
}

// SetHeld updates the held state for a direction based on a virtual button.
// Returns true if the button was a directional button. A new press restarts the
// repeat delay from now.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool, now time.Time) bool {
	dir := DirectionOf(button)
	if dir == DirectionNone {
		return false
	}
	if held && !d.held[dir] {
		d.lastRepeatTime = now
	}
	d.held[dir] = held
	d.hasRepeated = false
	return true
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.HeldDirection() != DirectionNone
}

// HeldDirection returns the currently held direction.
// If multiple directions are held, priority is: up, down, left, right.
func (d *DirectionalInput) HeldDirection() Direction {
	for dir := DirectionUp; dir <= DirectionRight; dir++ {
		if d.held[dir] {
			return dir
		}
	}
	return DirectionNone
}

// Update returns the direction to repeat at now, or DirectionNone. Call it every frame.
// The first repeat occurs after repeatDelay, subsequent repeats after repeatInterval.
func (d *DirectionalInput) Update(now time.Time) Direction {
	if !d.IsHeld() {
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return DirectionNone
}

// Reset clears all held directions and timing state.
func (d *DirectionalInput) Reset() {
	d.held = [DirectionRight + 1]bool{}
	d.hasRepeated = false
}

// VirtualButton returns the VirtualButton constant for a Direction.
func (d Direction) VirtualButton() constants.VirtualButton {
	switch d {
	case DirectionUp:
		return constants.VirtualButtonUp
	case DirectionDown:
		return constants.VirtualButtonDown
	case DirectionLeft:
		return constants.VirtualButtonLeft
	case DirectionRight:
		return constants.VirtualButtonRight
	default:
		return constants.VirtualButtonUnassigned
	}
}

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}
