package actionmenu

import (
	"time"

	"github.com/cobblekit/actionmenu/pkg/actionmenu/constants"
)

// Rect is a rectangle in logical display coordinates.
type Rect struct {
	X, Y, W, H int32
}

// Color is a plain RGBA color, independent of any rendering backend.
type Color struct {
	R, G, B, A uint8
}

var (
	// ColorBlack and ColorWhite are the two colors of the target display.
	ColorBlack = Color{0, 0, 0, 255}
	ColorWhite = Color{255, 255, 255, 255}
)

// Glyph is a tiny 1-bit bitmap, one byte per row, least significant bit
// leftmost. Used for the submenu arrow.
type Glyph struct {
	W, H int32
	Rows []byte
}

// Curve selects an animation easing curve.
type Curve int

const (
	CurveLinear Curve = iota
	CurveEaseInOut
)

// Screen is an opaque surface a Host can present once the menu has closed.
// The menu never inspects it; each host defines what it accepts.
type Screen interface{}

// Host bundles the platform capabilities a Menu consumes: the window stack,
// the animation engine, and text measurement. The SDL host in
// platform/sdlhost provides the real one; tests substitute fakes.
type Host interface {
	// OpenSurface creates the full-screen menu surface, pushes it onto the
	// window stack, and binds it to the session. Returns nil if a surface
	// cannot be created.
	OpenSurface(m *Menu) Surface

	// Animator returns the property-animation engine.
	Animator() Animator

	// Present pushes a follow-up screen onto the window stack.
	Present(s Screen, animated bool)

	// TextHeight reports the height of text word-wrapped to wrapWidth,
	// rendered in the host's menu font.
	TextHeight(text string, wrapWidth int32) int32
}

// Surface is the on-screen presentation of a menu session: a full-screen
// window holding the gutter column and the row list. The session drives it;
// the surface queries the session back for row count, sizing, and drawing.
type Surface interface {
	// Frame returns the surface's current frame on the display.
	Frame() Rect

	// SetFrame moves the surface. Called by the animation engine while a
	// slide is in flight.
	SetFrame(r Rect)

	// Highlighted returns the index of the highlighted row.
	Highlighted() int

	// SetHighlighted moves the highlight to the given row, aligning it
	// within the visible list.
	SetHighlighted(row int, align constants.Align, animated bool)

	// MoveHighlight moves the highlight by delta rows, clamping at the
	// ends, and keeps the highlighted row in view.
	MoveHighlight(delta int, animated bool)

	// Reload re-queries row count and heights after the displayed level
	// changed.
	Reload()

	// Remove takes the surface off the window stack. The host fires the
	// session's SurfaceWillDisappear and, once teardown finishes,
	// SurfaceDidUnload.
	Remove(animated bool)
}

// Animation is a scheduled property animation. Unschedule cancels a pending
// or running animation without invoking its stopped handler; a preempted
// slide must never fire.
type Animation interface {
	Schedule()
	Unschedule()
	Scheduled() bool
}

// Animator creates property animations between two surface frames.
type Animator interface {
	// FrameAnimation animates s from its current frame to the given frame
	// over d. The stopped handler, if any, runs exactly once when the
	// animation finishes on its own; it does not run on Unschedule.
	FrameAnimation(s Surface, to Rect, d time.Duration, curve Curve, stopped func(finished bool)) Animation
}

// Canvas is the minimal drawing capability the session needs to render rows
// and the depth gutter. Implemented over SDL by the host.
type Canvas interface {
	FillRect(r Rect, c Color)
	FillRoundedRect(r Rect, radius int32, c Color)
	FillCircle(cx, cy, radius int32, c Color)
	// DrawText renders word-wrapped text inside bounds, top-left aligned.
	DrawText(text string, bounds Rect, c Color)
	DrawGlyph(g Glyph, x, y int32, c Color)
}
