package sdlhost

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/cobblekit/actionmenu/pkg/actionmenu/constants"
	"github.com/cobblekit/actionmenu/pkg/actionmenu/internal"
)

type buttonPress struct {
	button  constants.VirtualButton
	pressed bool
}

// inputProcessor turns SDL keyboard and controller events into the four
// virtual buttons, debounces them, and generates held-button repeats for
// the directional pair.
type inputProcessor struct {
	directional internal.DirectionalInput
	lastAccept  map[constants.VirtualButton]time.Time
	controllers []*sdl.GameController
}

func newInputProcessor() inputProcessor {
	return inputProcessor{
		directional: internal.NewDirectionalInput(),
		lastAccept:  make(map[constants.VirtualButton]time.Time),
	}
}

func (p *inputProcessor) process(event sdl.Event) (buttonPress, bool) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return buttonPress{}, false
		}
		b := keycodeToButton(e.Keysym.Sym)
		if b == constants.VirtualButtonUnassigned {
			return buttonPress{}, false
		}
		pressed := e.State == sdl.PRESSED
		p.trackHeld(b, pressed)
		return buttonPress{button: b, pressed: pressed}, true

	case *sdl.ControllerButtonEvent:
		b := controllerButtonToButton(sdl.GameControllerButton(e.Button))
		if b == constants.VirtualButtonUnassigned {
			return buttonPress{}, false
		}
		pressed := e.State == sdl.PRESSED
		p.trackHeld(b, pressed)
		return buttonPress{button: b, pressed: pressed}, true

	case *sdl.ControllerDeviceEvent:
		if e.Type == sdl.CONTROLLERDEVICEADDED {
			if c := sdl.GameControllerOpen(int(e.Which)); c != nil {
				p.controllers = append(p.controllers, c)
			}
		}
		return buttonPress{}, false
	}
	return buttonPress{}, false
}

func (p *inputProcessor) trackHeld(b constants.VirtualButton, pressed bool) {
	p.directional.SetHeld(b, pressed)
}

func (p *inputProcessor) closeControllers() {
	for _, c := range p.controllers {
		c.Close()
	}
	p.controllers = nil
}

// accept drops presses arriving faster than the debounce window.
func (p *inputProcessor) accept(press buttonPress) bool {
	if !press.pressed {
		return true
	}
	now := time.Now()
	if last, ok := p.lastAccept[press.button]; ok && now.Sub(last) < constants.DefaultInputDelay {
		return false
	}
	p.lastAccept[press.button] = now
	return true
}

// repeats returns the directional button to auto-repeat this frame, if
// one is held past the repeat delay.
func (p *inputProcessor) repeats() constants.VirtualButton {
	switch p.directional.Update() {
	case internal.DirectionUp:
		return constants.VirtualButtonUp
	case internal.DirectionDown:
		return constants.VirtualButtonDown
	}
	return constants.VirtualButtonUnassigned
}

func keycodeToButton(sym sdl.Keycode) constants.VirtualButton {
	switch sym {
	case sdl.K_UP, sdl.K_w:
		return constants.VirtualButtonUp
	case sdl.K_DOWN, sdl.K_s:
		return constants.VirtualButtonDown
	case sdl.K_RETURN, sdl.K_RIGHT, sdl.K_d, sdl.K_SPACE:
		return constants.VirtualButtonSelect
	case sdl.K_ESCAPE, sdl.K_LEFT, sdl.K_a, sdl.K_BACKSPACE:
		return constants.VirtualButtonBack
	}
	return constants.VirtualButtonUnassigned
}

func controllerButtonToButton(b sdl.GameControllerButton) constants.VirtualButton {
	switch b {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_A:
		return constants.VirtualButtonSelect
	case sdl.CONTROLLER_BUTTON_B:
		return constants.VirtualButtonBack
	}
	return constants.VirtualButtonUnassigned
}
