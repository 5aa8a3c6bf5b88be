package sdlhost

import (
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/cobblekit/actionmenu/pkg/actionmenu"
)

// rasterizeArrowIcon renders an SVG to a 1-bit glyph of the given size.
// Themes use this to swap the built-in chevron for their own arrow.
func rasterizeArrowIcon(path string, w, h int32) (actionmenu.Glyph, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return actionmenu.Glyph{}, actionmenu.NewInfrastructureError("read_svg", err)
	}

	width, height := int(w), int(h)
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	// Threshold coverage into packed rows, LSB first.
	bytesPerRow := (width + 7) / 8
	rows := make([]byte, bytesPerRow*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a >= 0x8000 {
				rows[y*bytesPerRow+x/8] |= 1 << (x % 8)
			}
		}
	}

	return actionmenu.Glyph{W: w, H: h, Rows: rows}, nil
}
