package sdlhost

import (
	"github.com/cobblekit/actionmenu/pkg/actionmenu"
	"github.com/cobblekit/actionmenu/pkg/actionmenu/constants"
)

// Window is a full-screen surface managed by the window Stack. The top
// window receives button input and is rendered each frame.
type Window interface {
	// Frame and SetFrame position the window on screen; push and remove
	// animations move the frame.
	Frame() actionmenu.Rect
	SetFrame(actionmenu.Rect)

	// Load is called when the window enters the stack, Disappear when it
	// begins leaving the screen, and Unload when it has fully left the
	// stack. Unload is the place to release resources.
	Load()
	Disappear()
	Unload()

	Render(c *Canvas)
	HandleButton(b constants.VirtualButton)
}

// Stack manages the pile of windows on the display. Only the top window
// is visible, matching the single-window-at-a-time model of the watch.
type Stack struct {
	entries  []Window
	removing map[Window]bool
	animator *Animator
}

func newStack(animator *Animator) *Stack {
	return &Stack{
		entries:  make([]Window, 0),
		removing: make(map[Window]bool),
		animator: animator,
	}
}

// Push adds a window to the top of the stack. When animated, the window
// slides in from the right edge of the display.
func (s *Stack) Push(w Window, animated bool) {
	if w == nil {
		return
	}
	w.Load()
	s.entries = append(s.entries, w)

	onScreen := actionmenu.Rect{X: 0, Y: 0, W: constants.DisplayWidth, H: constants.DisplayHeight}
	if !animated {
		w.SetFrame(onScreen)
		return
	}
	start := onScreen
	start.X = constants.DisplayWidth
	w.SetFrame(start)
	anim := s.animator.frameAnimation(w, onScreen, constants.SlideDuration, actionmenu.CurveEaseInOut, nil)
	anim.Schedule()
}

// Remove takes a window out of the stack. Disappear fires immediately;
// Unload fires once the window has left the screen, after the slide-out
// when animated. Removing a window twice is a no-op.
func (s *Stack) Remove(w Window, animated bool) {
	if w == nil || s.removing[w] || !s.contains(w) {
		return
	}
	s.removing[w] = true
	w.Disappear()

	if !animated {
		s.finishRemove(w)
		return
	}
	off := w.Frame()
	off.X = constants.DisplayWidth
	anim := s.animator.frameAnimation(w, off, constants.SlideDuration, actionmenu.CurveEaseInOut, func(bool) {
		s.finishRemove(w)
	})
	anim.Schedule()
}

func (s *Stack) finishRemove(w Window) {
	for i, e := range s.entries {
		if e == w {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	delete(s.removing, w)
	w.Unload()
}

// Top returns the topmost window that is not mid-removal, or nil.
func (s *Stack) Top() Window {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if !s.removing[s.entries[i]] {
			return s.entries[i]
		}
	}
	return nil
}

// Visible returns the windows to draw this frame, bottom first: the top
// live window plus any windows still animating out above it.
func (s *Stack) Visible() []Window {
	start := 0
	for i := len(s.entries) - 1; i >= 0; i-- {
		if !s.removing[s.entries[i]] {
			start = i
			break
		}
	}
	return s.entries[start:]
}

func (s *Stack) contains(w Window) bool {
	for _, e := range s.entries {
		if e == w {
			return true
		}
	}
	return false
}

// Len returns the number of windows in the stack, including any that are
// still animating out.
func (s *Stack) Len() int {
	return len(s.entries)
}
