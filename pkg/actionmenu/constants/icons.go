package constants

// ArrowGlyphWidth and ArrowGlyphHeight are the dimensions of the built-in
// submenu arrow glyph.
const (
	ArrowGlyphWidth  int32 = 7
	ArrowGlyphHeight int32 = 5
)

// ArrowGlyphRows is the built-in 7x5 "more levels" chevron, one byte per row,
// least significant bit leftmost. Drawn on the highlighted row when it links
// to a child level, unless the theme supplies an SVG replacement.
//
//	XX.XX..
//	.XX.XX.
//	..XX.XX
//	.XX.XX.
//	XX.XX..
var ArrowGlyphRows = [5]byte{0x1b, 0x36, 0x6c, 0x36, 0x1b}
