package actionmenu

import "github.com/cobblekit/actionmenu/pkg/actionmenu/constants"

// CloseFunc is the signature of the will-close and did-close hooks.
// performed is the leaf item the user committed, nil if the menu closed
// without a selection.
type CloseFunc func(menu *Menu, performed *Item, context any)

// Colors configures the depth-crumb gutter: Background fills the column,
// Foreground draws the crumbs.
type Colors struct {
	Background Color
	Foreground Color
}

// Config describes a menu session. It is copied when the menu opens; later
// mutation of the caller's copy has no effect on a running session.
type Config struct {
	// Root is the level the session opens on. The tree stays owned by the
	// caller; close never destroys it.
	Root *Level

	// Context is handed back verbatim to every action and close callback.
	Context any

	Colors Colors

	// WillClose runs when the menu is about to leave the screen, DidClose
	// after it has been fully torn down.
	WillClose CloseFunc
	DidClose  CloseFunc

	// Align is accepted for API compatibility but has no effect: the menu
	// always top-aligns the highlighted row, matching the firmware widget
	// this package stands in for.
	Align constants.Align
}
