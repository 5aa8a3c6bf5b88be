package sdlhost

import (
	"testing"
	"time"

	"github.com/cobblekit/actionmenu/pkg/actionmenu"
)

type tweenTarget struct {
	frame actionmenu.Rect
}

func (t *tweenTarget) Frame() actionmenu.Rect     { return t.frame }
func (t *tweenTarget) SetFrame(r actionmenu.Rect) { t.frame = r }

func TestAnimationCompletesAndFiresStoppedOnce(t *testing.T) {
	an := newAnimator()
	target := &tweenTarget{frame: actionmenu.Rect{X: 0, Y: 0, W: 144, H: 168}}
	to := actionmenu.Rect{X: -14, Y: 0, W: 144, H: 168}

	stops := 0
	a := an.frameAnimation(target, to, 100*time.Millisecond, actionmenu.CurveEaseInOut, func(finished bool) {
		stops++
		if !finished {
			t.Error("natural completion should report finished")
		}
	})
	a.Schedule()
	if !a.Scheduled() {
		t.Fatal("Schedule should mark the animation scheduled")
	}

	start := time.Now()
	an.Step(start)
	an.Step(start.Add(50 * time.Millisecond))
	if target.frame == to {
		t.Error("frame should not reach the target mid-flight")
	}
	if stops != 0 {
		t.Fatal("stopped must not fire before the duration elapses")
	}

	an.Step(start.Add(150 * time.Millisecond))
	if target.frame != to {
		t.Errorf("frame = %+v, want %+v at completion", target.frame, to)
	}
	if stops != 1 {
		t.Fatalf("stopped fired %d times, want 1", stops)
	}
	if a.Scheduled() {
		t.Error("a finished animation should no longer be scheduled")
	}

	an.Step(start.Add(time.Second))
	if stops != 1 {
		t.Error("further steps must not refire the stopped handler")
	}
}

func TestAnimationUnscheduleSkipsStoppedHandler(t *testing.T) {
	an := newAnimator()
	target := &tweenTarget{frame: actionmenu.Rect{X: 0, Y: 0, W: 144, H: 168}}
	to := actionmenu.Rect{X: -14, Y: 0, W: 144, H: 168}

	stops := 0
	a := an.frameAnimation(target, to, 100*time.Millisecond, actionmenu.CurveEaseInOut, func(bool) {
		stops++
	})
	a.Schedule()

	start := time.Now()
	an.Step(start)
	a.Unschedule()

	an.Step(start.Add(time.Second))
	if stops != 0 {
		t.Error("a cancelled animation must never run its stopped handler")
	}
	if target.frame == to {
		t.Error("a cancelled animation must not snap to its target")
	}
	if a.Scheduled() {
		t.Error("Unschedule should clear the scheduled flag")
	}
}

func TestAnimationUnscheduleBeforeFirstStep(t *testing.T) {
	an := newAnimator()
	target := &tweenTarget{frame: actionmenu.Rect{X: 0, Y: 0, W: 144, H: 168}}
	before := target.frame

	stops := 0
	a := an.frameAnimation(target, actionmenu.Rect{X: -14}, 100*time.Millisecond, actionmenu.CurveLinear, func(bool) {
		stops++
	})
	a.Schedule()
	a.Unschedule()

	an.Step(time.Now().Add(time.Second))
	if stops != 0 || target.frame != before {
		t.Error("an animation cancelled before starting must leave no trace")
	}
}

func TestStoppedHandlerCanScheduleFollowUp(t *testing.T) {
	an := newAnimator()
	target := &tweenTarget{frame: actionmenu.Rect{X: 0, Y: 0, W: 144, H: 168}}
	out := actionmenu.Rect{X: -14, Y: 0, W: 144, H: 168}
	in := actionmenu.Rect{X: 0, Y: 0, W: 144, H: 168}

	// Mirrors the two-phase slide: the outbound handler starts the inbound
	// leg from inside Step.
	var second *Animation
	first := an.frameAnimation(target, out, 100*time.Millisecond, actionmenu.CurveEaseInOut, func(bool) {
		second = an.frameAnimation(target, in, 100*time.Millisecond, actionmenu.CurveEaseInOut, nil)
		second.Schedule()
	})
	first.Schedule()

	start := time.Now()
	an.Step(start)
	an.Step(start.Add(150 * time.Millisecond))

	if second == nil || !second.Scheduled() {
		t.Fatal("the follow-up animation should be scheduled by the handler")
	}

	an.Step(start.Add(200 * time.Millisecond))
	an.Step(start.Add(400 * time.Millisecond))
	if target.frame != in {
		t.Errorf("frame = %+v, want %+v after the follow-up completes", target.frame, in)
	}
	if second.Scheduled() {
		t.Error("the follow-up should finish and unschedule itself")
	}
}

func TestZeroDurationAnimationFinishesOnFirstStep(t *testing.T) {
	an := newAnimator()
	target := &tweenTarget{}
	to := actionmenu.Rect{X: 7, Y: 7, W: 10, H: 10}

	stops := 0
	a := an.frameAnimation(target, to, 0, actionmenu.CurveLinear, func(bool) { stops++ })
	a.Schedule()
	an.Step(time.Now())

	if target.frame != to || stops != 1 {
		t.Errorf("frame = %+v, stops = %d; want immediate completion", target.frame, stops)
	}
}
