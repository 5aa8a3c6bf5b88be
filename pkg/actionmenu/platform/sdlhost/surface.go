package sdlhost

import (
	"github.com/cobblekit/actionmenu/pkg/actionmenu"
	"github.com/cobblekit/actionmenu/pkg/actionmenu/constants"
)

// menuSurface is the on-screen rendition of an open menu. It implements
// actionmenu.Surface for the session core and Window for the stack, and
// delegates row content and input intents back to the menu.
type menuSurface struct {
	host *Host
	menu *actionmenu.Menu

	frame        actionmenu.Rect
	highlighted  int
	scrollOffset int32
}

func newMenuSurface(h *Host, m *actionmenu.Menu) *menuSurface {
	return &menuSurface{
		host: h,
		menu: m,
		frame: actionmenu.Rect{
			X: 0, Y: 0,
			W: constants.DisplayWidth,
			H: constants.DisplayHeight,
		},
	}
}

func (s *menuSurface) Frame() actionmenu.Rect {
	return s.frame
}

func (s *menuSurface) SetFrame(r actionmenu.Rect) {
	s.frame = r
}

func (s *menuSurface) Highlighted() int {
	return s.highlighted
}

func (s *menuSurface) SetHighlighted(row int, align constants.Align, animated bool) {
	s.highlighted = s.clampRow(row)
	top, height := s.rowExtent(s.highlighted)
	switch align {
	case constants.AlignCenter:
		s.scrollOffset = top - (s.frame.H-height)/2
	default:
		s.scrollOffset = top
	}
	s.clampScroll()
}

func (s *menuSurface) MoveHighlight(delta int, animated bool) {
	s.highlighted = s.clampRow(s.highlighted + delta)
	s.scrollToVisible(s.highlighted)
}

func (s *menuSurface) Reload() {
	s.highlighted = s.clampRow(s.highlighted)
	s.clampScroll()
}

func (s *menuSurface) Remove(animated bool) {
	s.host.stack.Remove(s, animated)
}

// Window lifecycle.

func (s *menuSurface) Load() {}

func (s *menuSurface) Disappear() {
	s.menu.SurfaceWillDisappear()
}

func (s *menuSurface) Unload() {
	s.menu.SurfaceDidUnload()
}

func (s *menuSurface) HandleButton(b constants.VirtualButton) {
	switch b {
	case constants.VirtualButtonUp:
		s.menu.HandleUp()
	case constants.VirtualButtonDown:
		s.menu.HandleDown()
	case constants.VirtualButtonSelect:
		s.menu.HandleSelect()
	case constants.VirtualButtonBack:
		s.menu.HandleBack()
	}
}

func (s *menuSurface) Render(c *Canvas) {
	gutter := actionmenu.Rect{X: s.frame.X, Y: s.frame.Y, W: constants.GutterWidth, H: s.frame.H}
	s.menu.DrawGutter(c, gutter)

	rowWidth := s.frame.W - constants.GutterWidth
	y := s.frame.Y - s.scrollOffset
	for i := 0; i < s.menu.NumRows(); i++ {
		h := s.menu.RowHeight(i)
		if y+h > s.frame.Y && y < s.frame.Y+s.frame.H {
			bounds := actionmenu.Rect{X: s.frame.X + constants.GutterWidth, Y: y, W: rowWidth, H: h}
			s.menu.DrawRow(c, i, bounds, i == s.highlighted)
		}
		y += h
	}
}

func (s *menuSurface) clampRow(row int) int {
	last := s.menu.NumRows() - 1
	if row > last {
		row = last
	}
	if row < 0 {
		row = 0
	}
	return row
}

// rowExtent returns the top offset and height of a row within the
// scrollable content.
func (s *menuSurface) rowExtent(row int) (int32, int32) {
	var top int32
	for i := 0; i < row; i++ {
		top += s.menu.RowHeight(i)
	}
	return top, s.menu.RowHeight(row)
}

func (s *menuSurface) contentHeight() int32 {
	var h int32
	for i := 0; i < s.menu.NumRows(); i++ {
		h += s.menu.RowHeight(i)
	}
	return h
}

// scrollToVisible nudges the scroll offset just enough to bring a row
// fully on screen.
func (s *menuSurface) scrollToVisible(row int) {
	top, height := s.rowExtent(row)
	if top < s.scrollOffset {
		s.scrollOffset = top
	} else if top+height > s.scrollOffset+s.frame.H {
		s.scrollOffset = top + height - s.frame.H
	}
	s.clampScroll()
}

func (s *menuSurface) clampScroll() {
	max := s.contentHeight() - s.frame.H
	if max < 0 {
		max = 0
	}
	if s.scrollOffset > max {
		s.scrollOffset = max
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
}
