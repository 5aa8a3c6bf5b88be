package sdlhost

import (
	"time"

	"github.com/cobblekit/actionmenu/pkg/actionmenu"
)

// frameTarget is anything whose on-screen frame can be tweened. Both
// menu surfaces and stack windows satisfy it.
type frameTarget interface {
	Frame() actionmenu.Rect
	SetFrame(actionmenu.Rect)
}

// Animation tweens a target's frame toward a destination rect. The from
// rect is captured at the first step after scheduling, so retargeting a
// moving frame picks up wherever it currently is.
type Animation struct {
	animator *Animator
	target   frameTarget
	from, to actionmenu.Rect
	duration time.Duration
	curve    actionmenu.Curve
	stopped  func(finished bool)

	startTime time.Time
	started   bool
	scheduled bool
}

// Schedule registers the animation with its animator. Scheduling an
// already scheduled animation is a no-op.
func (a *Animation) Schedule() {
	if a == nil || a.scheduled {
		return
	}
	a.scheduled = true
	a.started = false
	a.animator.add(a)
}

// Unschedule cancels the animation. The stopped handler does not fire;
// it is reserved for natural completion.
func (a *Animation) Unschedule() {
	if a == nil || !a.scheduled {
		return
	}
	a.scheduled = false
	a.animator.remove(a)
}

// Scheduled reports whether the animation is pending or running.
func (a *Animation) Scheduled() bool {
	return a != nil && a.scheduled
}

func (a *Animation) step(now time.Time) bool {
	if !a.started {
		a.started = true
		a.startTime = now
		a.from = a.target.Frame()
	}

	t := 1.0
	if a.duration > 0 {
		t = float64(now.Sub(a.startTime)) / float64(a.duration)
	}
	if t >= 1 {
		a.target.SetFrame(a.to)
		return true
	}
	if t < 0 {
		t = 0
	}

	e := ease(a.curve, t)
	a.target.SetFrame(actionmenu.Rect{
		X: lerp(a.from.X, a.to.X, e),
		Y: lerp(a.from.Y, a.to.Y, e),
		W: lerp(a.from.W, a.to.W, e),
		H: lerp(a.from.H, a.to.H, e),
	})
	return false
}

func lerp(from, to int32, t float64) int32 {
	return from + int32(float64(to-from)*t)
}

func ease(curve actionmenu.Curve, t float64) float64 {
	switch curve {
	case actionmenu.CurveEaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - 2*(1-t)*(1-t)
	default:
		return t
	}
}

// Animator steps all scheduled animations once per rendered frame, on
// the event-loop goroutine.
type Animator struct {
	active []*Animation
}

func newAnimator() *Animator {
	return &Animator{}
}

// FrameAnimation implements actionmenu.Animator.
func (an *Animator) FrameAnimation(s actionmenu.Surface, to actionmenu.Rect, d time.Duration, curve actionmenu.Curve, stopped func(finished bool)) actionmenu.Animation {
	target, ok := s.(frameTarget)
	if !ok {
		return nil
	}
	return an.frameAnimation(target, to, d, curve, stopped)
}

func (an *Animator) frameAnimation(target frameTarget, to actionmenu.Rect, d time.Duration, curve actionmenu.Curve, stopped func(finished bool)) *Animation {
	return &Animation{
		animator: an,
		target:   target,
		to:       to,
		duration: d,
		curve:    curve,
		stopped:  stopped,
	}
}

// Step advances every scheduled animation. Finished animations are
// removed before their stopped handlers run, so a handler scheduling a
// follow-up slide sees a clean slate.
func (an *Animator) Step(now time.Time) {
	var finished []*Animation
	remaining := an.active[:0]
	for _, a := range an.active {
		if a.step(now) {
			a.scheduled = false
			finished = append(finished, a)
		} else {
			remaining = append(remaining, a)
		}
	}
	an.active = remaining

	for _, a := range finished {
		if a.stopped != nil {
			a.stopped(true)
		}
	}
}

func (an *Animator) add(a *Animation) {
	an.active = append(an.active, a)
}

func (an *Animator) remove(a *Animation) {
	for i, e := range an.active {
		if e == a {
			an.active = append(an.active[:i], an.active[i+1:]...)
			return
		}
	}
}
