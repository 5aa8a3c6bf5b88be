package internal_test

import (
	"testing"
	"time"

	"github.com/cobblekit/actionmenu/pkg/actionmenu/constants"
	"github.com/cobblekit/actionmenu/pkg/actionmenu/internal"
)

func TestDirectionalInputHeldDirection(t *testing.T) {
	d := internal.NewDirectionalInput()

	if got := d.HeldDirection(); got != internal.DirectionNone {
		t.Errorf("idle direction = %v, want none", got)
	}

	d.SetHeld(constants.VirtualButtonDown, true)
	if got := d.HeldDirection(); got != internal.DirectionDown {
		t.Errorf("direction = %v, want down", got)
	}

	// Up wins when both are held.
	d.SetHeld(constants.VirtualButtonUp, true)
	if got := d.HeldDirection(); got != internal.DirectionUp {
		t.Errorf("direction = %v, want up", got)
	}

	d.SetHeld(constants.VirtualButtonUp, false)
	d.SetHeld(constants.VirtualButtonDown, false)
	if got := d.HeldDirection(); got != internal.DirectionNone {
		t.Errorf("released direction = %v, want none", got)
	}
}

func TestDirectionalInputIgnoresOtherButtons(t *testing.T) {
	d := internal.NewDirectionalInput()
	if d.SetHeld(constants.VirtualButtonSelect, true) {
		t.Error("select is not a directional button")
	}
	if got := d.HeldDirection(); got != internal.DirectionNone {
		t.Errorf("direction = %v, want none", got)
	}
}

func TestDirectionalInputRepeatTiming(t *testing.T) {
	d := internal.NewDirectionalInputWithTiming(0, 0)

	if got := d.Update(); got != internal.DirectionNone {
		t.Errorf("update with nothing held = %v, want none", got)
	}

	d.SetHeld(constants.VirtualButtonDown, true)
	if got := d.Update(); got != internal.DirectionDown {
		t.Errorf("first repeat = %v, want down", got)
	}
	if got := d.Update(); got != internal.DirectionDown {
		t.Errorf("subsequent repeat = %v, want down", got)
	}

	d.Reset()
	if got := d.HeldDirection(); got != internal.DirectionNone {
		t.Error("reset should clear held state")
	}
}

func TestDirectionalInputDelayBeforeFirstRepeat(t *testing.T) {
	d := internal.NewDirectionalInputWithTiming(time.Hour, 0)
	d.SetHeld(constants.VirtualButtonUp, true)
	if got := d.Update(); got != internal.DirectionNone {
		t.Errorf("repeat before the delay = %v, want none", got)
	}
}
