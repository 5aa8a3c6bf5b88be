package sdlhost

import (
	"github.com/holoplot/go-evdev"

	"github.com/cobblekit/actionmenu/pkg/actionmenu"
	"github.com/cobblekit/actionmenu/pkg/actionmenu/constants"
	"github.com/cobblekit/actionmenu/pkg/actionmenu/internal"
)

// buttonReader feeds physical button presses from an evdev device into
// the event loop. The watch buttons show up as a plain input device, not
// through SDL, so they get their own reader goroutine.
type buttonReader struct {
	device  *evdev.InputDevice
	presses chan constants.VirtualButton
	done    chan struct{}
}

func openButtonReader(path string) (*buttonReader, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, actionmenu.NewInfrastructureError("open_button_device", err)
	}

	r := &buttonReader{
		device:  device,
		presses: make(chan constants.VirtualButton, 8),
		done:    make(chan struct{}),
	}
	go r.readLoop()
	return r, nil
}

func (r *buttonReader) readLoop() {
	log := internal.GetFrameworkLogger()
	for {
		event, err := r.device.ReadOne()
		if err != nil {
			select {
			case <-r.done:
			default:
				log.Warn("button device read failed", "error", err)
			}
			return
		}
		// Value 1 is press; 0 (release) and 2 (kernel autorepeat) are
		// ignored, repeats are generated host-side.
		if event.Type != evdev.EV_KEY || event.Value != 1 {
			continue
		}
		b := keyCodeToButton(event.Code)
		if b == constants.VirtualButtonUnassigned {
			continue
		}
		select {
		case r.presses <- b:
		default:
			// Drop when the loop is behind; stale presses are worse
			// than lost ones on a 150ms animation cadence.
		}
	}
}

// poll returns the next pending press without blocking.
func (r *buttonReader) poll() (constants.VirtualButton, bool) {
	select {
	case b := <-r.presses:
		return b, true
	default:
		return constants.VirtualButtonUnassigned, false
	}
}

func (r *buttonReader) close() {
	close(r.done)
	r.device.Close()
}

func keyCodeToButton(code evdev.EvCode) constants.VirtualButton {
	switch code {
	case evdev.KEY_UP:
		return constants.VirtualButtonUp
	case evdev.KEY_DOWN:
		return constants.VirtualButtonDown
	case evdev.KEY_ENTER, evdev.KEY_SELECT:
		return constants.VirtualButtonSelect
	case evdev.KEY_BACK, evdev.KEY_ESC:
		return constants.VirtualButtonBack
	}
	return constants.VirtualButtonUnassigned
}
