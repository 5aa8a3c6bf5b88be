package internal

import (
	"time"

	"github.com/cobblekit/actionmenu/pkg/actionmenu/constants"
)

// Direction is a vertical navigation direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

// DirectionalInput tracks held up/down buttons and drives repeat timing, so
// holding a button scrolls through a level. Embed it in an input loop and
// call Update every frame.
type DirectionalInput struct {
	upHeld, downHeld bool
	lastRepeatTime   time.Time
	repeatDelay      time.Duration
	repeatInterval   time.Duration
	hasRepeated      bool
}

// NewDirectionalInput creates a DirectionalInput with default timing:
// 300ms before the first repeat, 50ms between repeats.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
	}
}

// SetHeld updates the held state for a button. Returns true if the button
// was one of the two directional buttons.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	switch button {
	case constants.VirtualButtonUp:
		d.upHeld = held
	case constants.VirtualButtonDown:
		d.downHeld = held
	default:
		return false
	}
	if !held {
		d.hasRepeated = false
	}
	return true
}

// HeldDirection returns the held direction; up wins when both are held.
func (d *DirectionalInput) HeldDirection() Direction {
	if d.upHeld {
		return DirectionUp
	}
	if d.downHeld {
		return DirectionDown
	}
	return DirectionNone
}

// Update returns the direction that should repeat this frame, or
// DirectionNone. The first repeat fires after the configured delay,
// subsequent ones after the interval.
func (d *DirectionalInput) Update() Direction {
	dir := d.HeldDirection()
	if dir == DirectionNone {
		d.lastRepeatTime = time.Now()
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}
	if time.Since(d.lastRepeatTime) < threshold {
		return DirectionNone
	}
	d.lastRepeatTime = time.Now()
	d.hasRepeated = true
	return dir
}

// Reset clears held state and timing.
func (d *DirectionalInput) Reset() {
	d.upHeld = false
	d.downHeld = false
	d.hasRepeated = false
	d.lastRepeatTime = time.Now()
}
