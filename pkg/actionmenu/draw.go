package actionmenu

import "github.com/cobblekit/actionmenu/pkg/actionmenu/constants"

// Row sizing and drawing callbacks. The surface queries these every frame;
// the session answers from whatever level is currently displayed.

var arrowGlyph = Glyph{
	W:    constants.ArrowGlyphWidth,
	H:    constants.ArrowGlyphHeight,
	Rows: constants.ArrowGlyphRows[:],
}

const (
	rowTextInset  int32 = 8 // left inset of the label inside its row
	rowPlateInset int32 = 4 // horizontal inset of the highlight plate
	arrowMargin   int32 = 7 // gap between the arrow glyph and the right edge
)

// NumRows returns the number of rows in the displayed level.
func (m *Menu) NumRows() int {
	if m == nil || m.current == nil {
		return 0
	}
	return m.current.NumItems()
}

// RowHeight returns the height of one row: the wrapped label height plus
// fixed padding in wide mode, a compact constant in thin mode.
func (m *Menu) RowHeight(row int) int32 {
	if m == nil || m.current == nil {
		return 0
	}
	it := m.current.Item(row)
	if it == nil {
		return 0
	}
	if m.current.mode == DisplayModeThin {
		return constants.ThinRowHeight
	}
	return m.host.TextHeight(it.label, constants.DisplayWidth) + constants.CellPadding
}

// DrawRow renders one row into bounds. The highlighted row gets an
// inverted rounded plate, and an arrow glyph on the right when it links to
// a child level.
func (m *Menu) DrawRow(c Canvas, row int, bounds Rect, highlighted bool) {
	if m == nil || m.current == nil {
		return
	}
	it := m.current.Item(row)
	if it == nil {
		return
	}

	textColor := ColorBlack
	textBounds := bounds
	if highlighted {
		c.FillRect(bounds, ColorWhite)
		plate := bounds
		plate.X += rowPlateInset
		plate.W -= 2 * rowPlateInset
		c.FillRoundedRect(plate, rowPlateInset, ColorBlack)
		textColor = ColorWhite
	}
	textBounds.X += rowTextInset
	textBounds.W -= 2 * rowTextInset
	textBounds.Y += rowPlateInset
	c.DrawText(it.label, textBounds, textColor)

	if highlighted && it.child != nil {
		x := bounds.X + bounds.W - arrowGlyph.W - arrowMargin
		y := bounds.Y + bounds.H/2 - arrowGlyph.H/2
		c.DrawGlyph(arrowGlyph, x, y, textColor)
	}
}

// DrawGutter renders the depth-crumb column: the configured background
// fill with one foreground dot per level of depth.
func (m *Menu) DrawGutter(c Canvas, bounds Rect) {
	if m == nil || m.current == nil {
		return
	}
	c.FillRect(bounds, m.cfg.Colors.Background)
	cx := bounds.X + bounds.W/2
	for i := 0; i < m.current.depth; i++ {
		cy := bounds.Y + constants.DepthDotTop + int32(i)*constants.DepthDotPitch
		c.FillCircle(cx, cy, constants.DepthDotRadius, m.cfg.Colors.Foreground)
	}
}
