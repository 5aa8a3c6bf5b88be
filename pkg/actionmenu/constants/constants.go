// Package constants defines shared constants, types, and configuration values
// used throughout the actionmenu widget and its platform hosts.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
// In development mode the SDL host runs windowed on a desktop instead of
// claiming the watch framebuffer.
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// VirtualButton represents one of the four physical watch buttons, mapped
// from whatever hardware or keyboard actually produced the press.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonSelect
	VirtualButtonBack
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonBack:
		return "Back"
	default:
		return "Unassigned"
	}
}

// Align specifies vertical alignment, both for the menu as a whole and for
// positioning the highlighted row inside the visible list.
type Align int

const (
	AlignTop    Align = iota // Pin to the top edge
	AlignCenter              // Center vertically
)

// Nominal display geometry of the target watch. The SDL host scales this
// logical canvas up by an integer factor.
const (
	DisplayWidth  int32 = 144
	DisplayHeight int32 = 168
)

// GutterWidth is the width of the left column that carries the depth crumbs.
// The menu surface slides exactly this far off-screen during a transition.
const GutterWidth int32 = 14

// SlideDuration is the length of one leg of the level-change slide.
const SlideDuration = 150 * time.Millisecond

// Row metrics.
const (
	CellPadding    int32 = 16 // added to the wrapped label height in wide mode
	ThinRowHeight  int32 = 24 // fixed row height in thin (grid) display mode
	DepthDotRadius int32 = 2
	DepthDotPitch  int32 = 8
	DepthDotTop    int32 = 10
)

// DefaultInputDelay is the debounce delay between accepted input events.
const DefaultInputDelay = 20 * time.Millisecond
