package internal

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// RGBA is a plain color value, kept free of any rendering backend so the
// theme can be parsed without linking SDL.
type RGBA struct {
	R, G, B, A uint8
}

// Theme defines the visual appearance of the menu host. Values come from a
// watch theme file in TOML form; anything missing keeps its default.
type Theme struct {
	TextColor       RGBA   // label text on unhighlighted rows
	BackgroundColor RGBA   // screen background behind the row list
	CrumbBackground RGBA   // gutter column fill
	CrumbForeground RGBA   // depth crumbs
	FontPath        string // path to the menu font
	FontSize        int    // point size at scale 1
	Scale           int32  // integer upscale of the 144x168 canvas
	ArrowIconPath   string // optional SVG replacing the built-in arrow glyph
}

// DefaultTheme is the monochrome appearance of the stock firmware.
func DefaultTheme() Theme {
	return Theme{
		TextColor:       RGBA{0, 0, 0, 255},
		BackgroundColor: RGBA{255, 255, 255, 255},
		CrumbBackground: RGBA{0, 0, 0, 255},
		CrumbForeground: RGBA{255, 255, 255, 255},
		FontPath:        "/usr/share/fonts/gothic-18-bold.ttf",
		FontSize:        18,
		Scale:           1,
	}
}

type themeFile struct {
	Text            string `toml:"text"`
	Background      string `toml:"background"`
	CrumbBackground string `toml:"crumb_background"`
	CrumbForeground string `toml:"crumb_foreground"`
	FontPath        string `toml:"font_path"`
	FontSize        int    `toml:"font_size"`
	Scale           int32  `toml:"scale"`
	ArrowIconPath   string `toml:"arrow_icon"`
}

// LoadTheme reads a TOML theme file and overlays it on DefaultTheme.
// On any error the defaults are returned alongside the error, so a caller
// may log and keep going.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()

	data, err := os.ReadFile(path)
	if err != nil {
		return theme, fmt.Errorf("read theme %s: %w", path, err)
	}

	var tf themeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return theme, fmt.Errorf("parse theme %s: %w", path, err)
	}

	if err := overlayColor(&theme.TextColor, tf.Text); err != nil {
		return theme, err
	}
	if err := overlayColor(&theme.BackgroundColor, tf.Background); err != nil {
		return theme, err
	}
	if err := overlayColor(&theme.CrumbBackground, tf.CrumbBackground); err != nil {
		return theme, err
	}
	if err := overlayColor(&theme.CrumbForeground, tf.CrumbForeground); err != nil {
		return theme, err
	}
	if tf.FontPath != "" {
		theme.FontPath = tf.FontPath
	}
	if tf.FontSize > 0 {
		theme.FontSize = tf.FontSize
	}
	if tf.Scale > 0 {
		theme.Scale = tf.Scale
	}
	if tf.ArrowIconPath != "" {
		theme.ArrowIconPath = tf.ArrowIconPath
	}
	return theme, nil
}

func overlayColor(dst *RGBA, value string) error {
	if value == "" {
		return nil
	}
	c, err := ParseHexColor(value)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}

// ParseHexColor parses "#RGB", "#RRGGBB", or "#RRGGBBAA".
func ParseHexColor(s string) (RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return RGBA{}, fmt.Errorf("invalid color %q: must start with '#'", s)
	}
	hex := s[1:]

	nib := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}
	byteAt := func(i int) (uint8, bool) {
		hi, ok1 := nib(hex[i])
		lo, ok2 := nib(hex[i+1])
		return hi<<4 | lo, ok1 && ok2
	}

	c := RGBA{A: 255}
	switch len(hex) {
	case 3:
		for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
			v, ok := nib(hex[i])
			if !ok {
				return RGBA{}, fmt.Errorf("invalid color %q", s)
			}
			*dst = v<<4 | v
		}
	case 6, 8:
		parts := []*uint8{&c.R, &c.G, &c.B, &c.A}
		for i := 0; i < len(hex)/2; i++ {
			v, ok := byteAt(i * 2)
			if !ok {
				return RGBA{}, fmt.Errorf("invalid color %q", s)
			}
			*parts[i] = v
		}
	default:
		return RGBA{}, fmt.Errorf("invalid color %q: want #RGB, #RRGGBB, or #RRGGBBAA", s)
	}
	return c, nil
}
