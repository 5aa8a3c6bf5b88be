// Package sdlhost is the SDL2 platform host for the action menu: it owns
// the window stack, the property-animation engine, font rendering, and
// button input (SDL events in development, evdev devices on the watch).
package sdlhost

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/cobblekit/actionmenu/pkg/actionmenu"
	"github.com/cobblekit/actionmenu/pkg/actionmenu/constants"
	"github.com/cobblekit/actionmenu/pkg/actionmenu/internal"
)

// Options configures the SDL host.
type Options struct {
	WindowTitle      string        // Window title in windowed (development) mode
	ThemePath        string        // Path to a TOML theme file; empty keeps defaults
	ButtonDevicePath string        // evdev device for the physical buttons; empty disables
	LogPath          string        // Full path for the log file including filename
	Scale            int32         // Integer upscale of the 144x168 canvas; 0 uses the theme's
	WindowOptions    WindowOptions // SDL window flags (borderless, always-on-top, etc.)
}

// Host implements actionmenu.Host on top of SDL2.
type Host struct {
	window   *display
	stack    *Stack
	animator *Animator
	fonts    *fontSet
	canvas   *Canvas
	theme    internal.Theme

	buttons  *buttonReader
	input    inputProcessor
	quitting bool

	// FrameFunc, when set, runs once per event-loop iteration before
	// animations step. Work finishing on other goroutines can flag a
	// completion and apply it here, on the loop goroutine.
	FrameFunc func()
}

// Init brings up SDL, loads the theme and fonts, opens the display, and
// installs the host as the actionmenu default.
func Init(opts Options) (*Host, error) {
	if opts.LogPath != "" {
		internal.SetLogPath(opts.LogPath)
	}
	log := internal.GetFrameworkLogger()

	theme := internal.DefaultTheme()
	if opts.ThemePath != "" {
		var err error
		theme, err = internal.LoadTheme(opts.ThemePath)
		if err != nil {
			log.Warn("theme load failed, using defaults", "path", opts.ThemePath, "error", err)
		}
	}
	if opts.Scale > 0 {
		theme.Scale = opts.Scale
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return nil, actionmenu.NewInfrastructureError("sdl_init", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, actionmenu.NewInfrastructureError("ttf_init", err)
	}

	window, err := initWindow(opts.WindowTitle, theme, opts.WindowOptions)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return nil, err
	}

	fonts, err := loadFonts(theme)
	if err != nil {
		window.close()
		ttf.Quit()
		sdl.Quit()
		return nil, err
	}

	h := &Host{
		window:   window,
		animator: newAnimator(),
		fonts:    fonts,
		theme:    theme,
		input:    newInputProcessor(),
	}
	h.stack = newStack(h.animator)
	h.canvas = newCanvas(window.Renderer, fonts)

	if theme.ArrowIconPath != "" {
		glyph, err := rasterizeArrowIcon(theme.ArrowIconPath, constants.ArrowGlyphWidth, constants.ArrowGlyphHeight)
		if err != nil {
			log.Warn("arrow icon load failed, keeping built-in glyph", "path", theme.ArrowIconPath, "error", err)
		} else {
			h.canvas.arrowOverride = &glyph
		}
	}

	if opts.ButtonDevicePath != "" {
		h.buttons, err = openButtonReader(opts.ButtonDevicePath)
		if err != nil {
			log.Warn("button device unavailable, SDL input only", "path", opts.ButtonDevicePath, "error", err)
		}
	}

	actionmenu.SetDefaultHost(h)
	return h, nil
}

// Close releases all SDL resources.
func (h *Host) Close() {
	if h.buttons != nil {
		h.buttons.close()
	}
	h.input.closeControllers()
	h.canvas.destroy()
	h.fonts.close()
	h.window.close()
	ttf.Quit()
	sdl.Quit()
	internal.CloseLogger()
}

// OpenSurface implements actionmenu.Host.
func (h *Host) OpenSurface(m *actionmenu.Menu) actionmenu.Surface {
	if m == nil {
		return nil
	}
	s := newMenuSurface(h, m)
	h.stack.Push(s, true)
	return s
}

// Animator implements actionmenu.Host.
func (h *Host) Animator() actionmenu.Animator {
	return h.animator
}

// Present implements actionmenu.Host. The screen must be a stack Window;
// anything else is logged and dropped.
func (h *Host) Present(s actionmenu.Screen, animated bool) {
	w, ok := s.(Window)
	if !ok {
		internal.GetFrameworkLogger().Warn("result screen does not implement sdlhost.Window, dropped")
		return
	}
	h.stack.Push(w, animated)
}

// Dismiss removes an application window pushed via Present.
func (h *Host) Dismiss(w Window, animated bool) {
	h.stack.Remove(w, animated)
}

// TextHeight implements actionmenu.Host: height of text word-wrapped to
// wrapWidth in the menu font.
func (h *Host) TextHeight(text string, wrapWidth int32) int32 {
	return h.fonts.wrappedHeight(text, wrapWidth)
}

// Run drives the event loop until the window stack empties or the program
// is asked to quit. Input, animation completion, and rendering all happen
// here on one goroutine.
func (h *Host) Run() error {
	for !h.quitting && h.stack.Len() > 0 {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				h.quitting = true
			default:
				if press, ok := h.input.process(event); ok {
					h.dispatch(press)
				}
			}
		}
		if h.buttons != nil {
			for {
				b, ok := h.buttons.poll()
				if !ok {
					break
				}
				h.dispatch(buttonPress{button: b, pressed: true})
			}
		}
		if repeat := h.input.repeats(); repeat != constants.VirtualButtonUnassigned {
			h.deliver(repeat)
		}

		if h.FrameFunc != nil {
			h.FrameFunc()
		}
		h.animator.Step(time.Now())
		h.render()
		h.window.Present()
	}
	return nil
}

// Quit asks Run to return after the current frame.
func (h *Host) Quit() {
	h.quitting = true
}

func (h *Host) dispatch(p buttonPress) {
	if !h.input.accept(p) {
		return
	}
	if p.pressed {
		h.deliver(p.button)
	}
}

func (h *Host) deliver(b constants.VirtualButton) {
	if top := h.stack.Top(); top != nil {
		top.HandleButton(b)
	}
}

func (h *Host) render() {
	bg := h.theme.BackgroundColor
	h.window.Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	h.window.Renderer.Clear()
	// Windows animating out are still drawn above the one replacing them.
	for _, w := range h.stack.Visible() {
		w.Render(h.canvas)
	}
}

// Theme returns the loaded theme, for applications that want to reuse its
// colors in their menu Config.
func (h *Host) Theme() internal.Theme {
	return h.theme
}

// ThemeColor converts an internal theme color to an actionmenu color.
func ThemeColor(c internal.RGBA) actionmenu.Color {
	return actionmenu.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
