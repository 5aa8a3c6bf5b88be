package actionmenu_test

import (
	"testing"

	"github.com/cobblekit/actionmenu/pkg/actionmenu"
	"github.com/cobblekit/actionmenu/pkg/actionmenu/constants"
)

// fakeCanvas records drawing calls for assertions.
type fakeCanvas struct {
	fills    []actionmenu.Rect
	plates   []actionmenu.Rect
	circles  int
	texts    []string
	glyphs   int
	lastText actionmenu.Color
}

func (c *fakeCanvas) FillRect(r actionmenu.Rect, col actionmenu.Color) {
	c.fills = append(c.fills, r)
}

func (c *fakeCanvas) FillRoundedRect(r actionmenu.Rect, radius int32, col actionmenu.Color) {
	c.plates = append(c.plates, r)
}

func (c *fakeCanvas) FillCircle(cx, cy, radius int32, col actionmenu.Color) {
	c.circles++
}

func (c *fakeCanvas) DrawText(text string, bounds actionmenu.Rect, col actionmenu.Color) {
	c.texts = append(c.texts, text)
	c.lastText = col
}

func (c *fakeCanvas) DrawGlyph(g actionmenu.Glyph, x, y int32, col actionmenu.Color) {
	c.glyphs++
}

func TestRowHeightWideUsesWrappedText(t *testing.T) {
	host := newFakeHost()
	host.textHeight = 18

	root := actionmenu.NewLevel(1)
	root.AddAction("a fairly long label", noopAction, nil)
	m := actionmenu.OpenWith(actionmenu.Config{Root: root}, host)

	want := int32(18) + constants.CellPadding
	if got := m.RowHeight(0); got != want {
		t.Errorf("RowHeight = %d, want %d", got, want)
	}
}

func TestRowHeightThinIsFixed(t *testing.T) {
	host := newFakeHost()
	root := actionmenu.NewLevel(1)
	root.SetDisplayMode(actionmenu.DisplayModeThin)
	root.AddAction("x", noopAction, nil)
	m := actionmenu.OpenWith(actionmenu.Config{Root: root}, host)

	if got := m.RowHeight(0); got != constants.ThinRowHeight {
		t.Errorf("RowHeight = %d, want %d", got, constants.ThinRowHeight)
	}
}

func TestNumRowsTracksCurrentLevel(t *testing.T) {
	host := newFakeHost()
	child := actionmenu.NewLevel(3)
	child.AddAction("a", noopAction, nil)
	child.AddAction("b", noopAction, nil)
	child.AddAction("c", noopAction, nil)
	root := actionmenu.NewLevel(1)
	root.AddChild(child, "more")

	m := actionmenu.OpenWith(actionmenu.Config{Root: root}, host)
	if got := m.NumRows(); got != 1 {
		t.Errorf("NumRows = %d, want 1 at the root", got)
	}
	m.HandleSelect()
	host.settle()
	if got := m.NumRows(); got != 3 {
		t.Errorf("NumRows = %d, want 3 on the child", got)
	}
}

func TestDrawRowHighlightedWithChildArrow(t *testing.T) {
	host := newFakeHost()
	child := actionmenu.NewLevel(1)
	child.AddAction("leaf", noopAction, nil)
	root := actionmenu.NewLevel(2)
	root.AddChild(child, "more")
	root.AddAction("send", noopAction, nil)
	m := actionmenu.OpenWith(actionmenu.Config{Root: root}, host)

	bounds := actionmenu.Rect{X: 14, Y: 0, W: 130, H: 34}

	c := &fakeCanvas{}
	m.DrawRow(c, 0, bounds, true)
	if len(c.fills) != 1 || len(c.plates) != 1 {
		t.Error("a highlighted row should paint the inverted plate")
	}
	if c.glyphs != 1 {
		t.Error("a highlighted child link should show the arrow glyph")
	}
	if len(c.texts) != 1 || c.texts[0] != "more" {
		t.Errorf("texts = %v, want the row label", c.texts)
	}
	if c.lastText != actionmenu.ColorWhite {
		t.Error("highlighted label should be drawn inverted")
	}

	c = &fakeCanvas{}
	m.DrawRow(c, 1, bounds, true)
	if c.glyphs != 0 {
		t.Error("a leaf row should not show the arrow glyph")
	}

	c = &fakeCanvas{}
	m.DrawRow(c, 0, bounds, false)
	if len(c.fills) != 0 || len(c.plates) != 0 || c.glyphs != 0 {
		t.Error("an unhighlighted row should only draw its label")
	}
	if c.lastText != actionmenu.ColorBlack {
		t.Error("unhighlighted label should be drawn in the foreground color")
	}
}

func TestDrawGutterDotsMatchDepth(t *testing.T) {
	host := newFakeHost()
	grandchild := actionmenu.NewLevel(1)
	grandchild.AddAction("deep", noopAction, nil)
	child := actionmenu.NewLevel(1)
	child.AddChild(grandchild, "deeper")
	root := actionmenu.NewLevel(1)
	root.AddChild(child, "more")

	m := actionmenu.OpenWith(actionmenu.Config{Root: root}, host)
	bounds := actionmenu.Rect{X: 0, Y: 0, W: constants.GutterWidth, H: constants.DisplayHeight}

	c := &fakeCanvas{}
	m.DrawGutter(c, bounds)
	if c.circles != 1 {
		t.Errorf("dots at the root = %d, want 1", c.circles)
	}

	m.HandleSelect()
	host.settle()
	m.HandleSelect()
	host.settle()

	c = &fakeCanvas{}
	m.DrawGutter(c, bounds)
	if c.circles != 3 {
		t.Errorf("dots at depth 3 = %d, want 3", c.circles)
	}
	if len(c.fills) != 1 {
		t.Error("the gutter should paint its background")
	}
}
