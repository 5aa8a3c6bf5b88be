package actionmenu

import (
	"go.uber.org/atomic"

	"github.com/cobblekit/actionmenu/pkg/actionmenu/constants"
)

type sessionState int

const (
	stateIdle sessionState = iota
	stateDisplaying
	stateTransitioning
	stateClosing
	stateClosed
)

// Menu is a live session walking a Level tree. It owns its surface and its
// copied Config; it only borrows the tree.
//
// All session methods are called on the host's event loop. The one
// exception is Freeze/Unfreeze, which an asynchronous action may toggle
// from another goroutine while it waits on external data.
type Menu struct {
	cfg  Config
	host Host

	surface Surface
	anim    Animation

	current   *Level
	pending   *Level
	performed *Item

	frozen atomic.Bool
	result Screen

	state         sessionState
	closeAnimated bool
}

// Open opens a new menu session on the default host. The menu fills the
// whole display and starts on cfg.Root. Returns nil if the config has no
// root level or no host has been set up.
func Open(cfg Config) *Menu {
	return OpenWith(cfg, DefaultHost())
}

// OpenWith opens a menu session on an explicit host.
func OpenWith(cfg Config, host Host) *Menu {
	if cfg.Root == nil || host == nil {
		return nil
	}
	m := &Menu{
		cfg:     cfg,
		host:    host,
		current: cfg.Root,
		state:   stateIdle,
	}
	m.surface = host.OpenSurface(m)
	if m.surface == nil {
		return nil
	}
	m.state = stateDisplaying
	return m
}

// Context returns the context pointer the session was opened with.
func (m *Menu) Context() any {
	if m == nil {
		return nil
	}
	return m.cfg.Context
}

// RootLevel returns the level the session was opened with, nil if the
// session is invalid.
func (m *Menu) RootLevel() *Level {
	if m == nil {
		return nil
	}
	return m.cfg.Root
}

// CurrentLevel returns the level currently displayed.
func (m *Menu) CurrentLevel() *Level {
	if m == nil {
		return nil
	}
	return m.current
}

// Freeze stops the menu from responding to user input. Use it from a leaf
// action that has to wait for an asynchronous operation before deciding
// how to proceed. While frozen only Close works; directional, select, and
// back presses are dropped silently.
func (m *Menu) Freeze() {
	if m == nil {
		return
	}
	m.frozen.Store(true)
}

// Unfreeze reverses Freeze.
func (m *Menu) Unfreeze() {
	if m == nil {
		return
	}
	m.frozen.Store(false)
}

// Frozen reports whether the session is currently frozen.
func (m *Menu) Frozen() bool {
	return m != nil && m.frozen.Load()
}

// SetResultScreen stores the screen to present once this session closes.
// Only one result screen is ever kept; repeated calls replace the previous
// value, and nil clears it.
func (m *Menu) SetResultScreen(s Screen) {
	if m == nil {
		return
	}
	m.result = s
}

// Close tears down the session whether it is frozen or not. A frozen menu
// is typically closed once the data needed to build the result screen has
// arrived and the result screen has been set.
func (m *Menu) Close(animated bool) {
	if m == nil || m.state == stateClosing || m.state == stateClosed {
		return
	}
	m.state = stateClosing
	m.closeAnimated = animated
	m.destroyAnimation()
	m.surface.Remove(animated)
}

// HandleSelect is the select-button intent. On a submenu link it starts a
// transition into the child level; on a leaf it records the item as the
// performed action, runs its callback, and closes unless the callback
// froze the session.
func (m *Menu) HandleSelect() {
	if !m.acceptsInput() {
		return
	}
	it := m.current.Item(m.surface.Highlighted())
	if it == nil {
		return
	}
	switch {
	case it.child != nil:
		m.beginTransition(it.child)
	case it.perform != nil:
		m.performed = it
		it.perform(m, it, m.cfg.Context)
		if m.frozen.Load() {
			return
		}
		m.Close(true)
	}
}

// HandleUp is the up-button intent.
func (m *Menu) HandleUp() {
	if m.acceptsInput() {
		m.surface.MoveHighlight(-1, true)
	}
}

// HandleDown is the down-button intent.
func (m *Menu) HandleDown() {
	if m.acceptsInput() {
		m.surface.MoveHighlight(1, true)
	}
}

// HandleBack is the back-button intent: one level up, or close when the
// session is already at the root.
func (m *Menu) HandleBack() {
	if !m.acceptsInput() {
		return
	}
	if m.current.parent != nil {
		m.beginTransition(m.current.parent)
	} else {
		m.Close(true)
	}
}

func (m *Menu) acceptsInput() bool {
	if m == nil || m.frozen.Load() {
		return false
	}
	return m.state == stateDisplaying || m.state == stateTransitioning
}

// beginTransition starts the two-phase slide towards another level. A
// transition already in flight is cancelled; its completion handler never
// fires and its pending level is discarded.
func (m *Menu) beginTransition(to *Level) {
	m.pending = to
	m.state = stateTransitioning
	m.startSlide(-constants.GutterWidth, m.slideOutStopped)
}

// slideOutStopped runs when the outbound slide finishes on its own. The
// level swap, highlight reset, and row re-layout happen here, atomically
// from the event loop's point of view, before the inbound slide starts.
func (m *Menu) slideOutStopped(finished bool) {
	m.current = m.pending
	m.pending = nil
	m.surface.SetHighlighted(0, constants.AlignTop, false)
	m.surface.Reload()
	m.state = stateDisplaying
	// The inbound slide has no stopped handler; it simply ends with the
	// surface at rest.
	m.startSlide(0, nil)
}

func (m *Menu) startSlide(targetX int32, stopped func(finished bool)) {
	to := m.surface.Frame()
	to.X = targetX
	m.destroyAnimation()
	m.anim = m.host.Animator().FrameAnimation(m.surface, to, constants.SlideDuration, CurveEaseInOut, stopped)
	m.anim.Schedule()
}

func (m *Menu) destroyAnimation() {
	if m.anim == nil {
		return
	}
	if m.anim.Scheduled() {
		m.anim.Unschedule()
	}
	m.anim = nil
}

// SurfaceWillDisappear is called by the host when the menu window is about
// to leave the screen.
func (m *Menu) SurfaceWillDisappear() {
	if m == nil || m.state == stateClosed {
		return
	}
	if m.cfg.WillClose != nil {
		m.cfg.WillClose(m, m.performed, m.cfg.Context)
	}
}

// SurfaceDidUnload is called by the host once the menu window is fully
// torn down. It runs the did-close hook, presents the result screen if one
// was set, and releases the session's copied configuration. The level tree
// is untouched; destroy it with DestroyHierarchy when done.
func (m *Menu) SurfaceDidUnload() {
	if m == nil || m.state == stateClosed {
		return
	}
	m.destroyAnimation()
	if m.cfg.DidClose != nil {
		m.cfg.DidClose(m, m.performed, m.cfg.Context)
	}
	if m.result != nil {
		m.host.Present(m.result, m.closeAnimated)
	}
	m.cfg = Config{}
	m.surface = nil
	m.current = nil
	m.pending = nil
	m.result = nil
	m.state = stateClosed
}
