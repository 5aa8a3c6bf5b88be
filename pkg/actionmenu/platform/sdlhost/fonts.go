package sdlhost

import (
	"strings"

	"github.com/veandco/go-sdl2/ttf"

	"github.com/cobblekit/actionmenu/pkg/actionmenu"
	"github.com/cobblekit/actionmenu/pkg/actionmenu/internal"
)

// fontSet holds the menu font and implements word-wrapped measurement.
// All sizes are in the logical 144x168 coordinate space.
type fontSet struct {
	Menu *ttf.Font
}

func loadFonts(theme internal.Theme) (*fontSet, error) {
	font, err := ttf.OpenFont(theme.FontPath, theme.FontSize)
	if err != nil {
		return nil, actionmenu.NewInfrastructureError("open_font", err)
	}
	return &fontSet{Menu: font}, nil
}

func (f *fontSet) close() {
	if f.Menu != nil {
		f.Menu.Close()
		f.Menu = nil
	}
}

func (f *fontSet) lineHeight() int32 {
	_, h, err := f.Menu.SizeUTF8("Aj")
	if err != nil {
		return int32(f.Menu.Height())
	}
	return int32(h)
}

// wrapText greedily breaks text into lines no wider than maxWidth.
// Explicit newlines are respected; a word wider than a full line gets a
// line of its own and overflows to the right.
func (f *fontSet) wrapText(text string, maxWidth int32) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		current := ""
		for _, word := range words {
			test := current
			if test != "" {
				test += " "
			}
			test += word

			width, _, err := f.Menu.SizeUTF8(test)
			if err == nil && int32(width) > maxWidth && current != "" {
				out = append(out, current)
				current = word
			} else {
				current = test
			}
		}
		out = append(out, current)
	}
	return out
}

// wrappedHeight is the height of text wrapped to maxWidth, the quantity
// the menu uses to size wide rows.
func (f *fontSet) wrappedHeight(text string, maxWidth int32) int32 {
	if text == "" {
		return 0
	}
	return int32(len(f.wrapText(text, maxWidth))) * f.lineHeight()
}
